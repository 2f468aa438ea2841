package qr

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestEncodeScanRoundTrip(t *testing.T) {
	payload := "bitcoin:1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa?amount=0.001"

	data, err := Encode(payload)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	got, err := Scan(img)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if got != payload {
		t.Errorf("Scan() = %q, want %q", got, payload)
	}
}

func TestScanNoCode(t *testing.T) {
	data, err := Encode("x")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	// crop away the finder patterns so no code remains
	type subImager interface {
		SubImage(r image.Rectangle) image.Image
	}
	cropped := img.(subImager).SubImage(image.Rect(100, 100, 156, 156))
	if _, err := Scan(cropped); err == nil {
		t.Error("Scan() on cropped image expected error")
	}
}
