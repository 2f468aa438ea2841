package qr

import (
	"image"

	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/skip2/go-qrcode"
)

// Scan reads a QR code out of img and returns its payload.
func Scan(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", err
	}
	result, err := zxqrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", err
	}
	return result.String(), nil
}

// Encode renders payload as a 256x256 PNG QR code.
func Encode(payload string) ([]byte, error) {
	return qrcode.Encode(payload, qrcode.Medium, 256)
}
