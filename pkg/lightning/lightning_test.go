package lightning

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/lightningnetwork/lnd/lnwire"
)

// 1,000,000 sat regtest invoice.
const testPayReq = "lnbcrt10m1p5y4z9epp5hh09qu0605hcjvc5r6dv3ma0z45h7pxjcp4xv383avzxk4yf0tlsdqqcqzzsxqyz5vqsp5nzsy8g59gvlp694x7rc7gxfllk0wswl95vvk5eguc30jrvcqeuws9qxpqysgqmfdaryxsaze7s26ew6y4zu3hk8p9sj8ezcpcvt6rchjuxva5zvwyq7897ffw4mjmsg6efugt5k7qhfy04j6wxnlzpfu48r5mjsruzugqjp04ec"

func TestDecodeInvoice(t *testing.T) {
	invoice, err := DecodeInvoice(testPayReq, &chaincfg.RegressionNetParams)
	if err != nil {
		t.Fatalf("DecodeInvoice() error = %v", err)
	}
	if invoice.AmountMsat != lnwire.MilliSatoshi(1_000_000_000) {
		t.Errorf("AmountMsat = %d, want 1000000000", invoice.AmountMsat)
	}
	if invoice.Destination == nil {
		t.Error("Destination = nil, want recovered node key")
	}
	if invoice.PaymentRequest != testPayReq {
		t.Error("PaymentRequest not carried through")
	}
	if invoice.Expiry.IsZero() {
		t.Error("Expiry not set")
	}
}

func TestDecodeInvoiceWrongNetwork(t *testing.T) {
	if _, err := DecodeInvoice(testPayReq, &chaincfg.MainNetParams); err == nil {
		t.Fatal("expected error decoding a regtest invoice against mainnet")
	}
}

func TestIsInvoice(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{testPayReq, true},
		{"lightning:" + testPayReq, true},
		{"LNBC20N1PSSCEHD", true},
		{"lnbc20n1psscehd but not a single word", false},
		{"bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsInvoice(tt.input); got != tt.want {
			t.Errorf("IsInvoice(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
