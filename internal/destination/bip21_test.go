package destination

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

func TestDecodeBitcoinURI(t *testing.T) {
	uri, err := DecodeBitcoinURI(
		"bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4?amount=0.001&label=test&message=hello%20there",
		&chaincfg.MainNetParams)
	if err != nil {
		t.Fatalf("DecodeBitcoinURI() error = %v", err)
	}
	if uri.Amount != btcutil.Amount(100_000) {
		t.Errorf("Amount = %d, want 100000", uri.Amount)
	}
	if uri.Label != "test" {
		t.Errorf("Label = %q, want test", uri.Label)
	}
	if uri.Message != "hello there" {
		t.Errorf("Message = %q, want %q", uri.Message, "hello there")
	}
}

func TestDecodeBitcoinURIBareAddress(t *testing.T) {
	uri, err := DecodeBitcoinURI("1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", &chaincfg.MainNetParams)
	if err != nil {
		t.Fatalf("DecodeBitcoinURI() error = %v", err)
	}
	if uri.Amount != 0 {
		t.Errorf("Amount = %d, want 0", uri.Amount)
	}
}

func TestDecodeBitcoinURIErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		net   *chaincfg.Params
	}{
		{name: "empty", input: "", net: &chaincfg.MainNetParams},
		{name: "empty with query", input: "?amount=1", net: &chaincfg.MainNetParams},
		{name: "junk", input: "notanaddress", net: &chaincfg.MainNetParams},
		{name: "bad amount", input: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa?amount=xyz", net: &chaincfg.MainNetParams},
		{name: "wrong network", input: "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", net: &chaincfg.RegressionNetParams},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeBitcoinURI(tt.input, tt.net); err == nil {
				t.Errorf("DecodeBitcoinURI(%q) expected error", tt.input)
			}
		})
	}
}
