package lightning

import (
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/lightningnetwork/lnd/lnwire"
	"github.com/lightningnetwork/lnd/zpay32"
)

// bech32 human-readable prefixes of bolt11 payment requests per network.
var invoicePrefixes = []string{"lnbcrt", "lnbc", "lntbs", "lntb", "lnsb"}

// IsInvoice is used to check if a string matches a bolt11 invoice pattern.
// It is a cheap plausibility check only; DecodeInvoice decides for real.
func IsInvoice(payRequest string) bool {
	payRequest = strings.ToLower(strings.TrimPrefix(payRequest, "lightning:"))
	if strings.Contains(payRequest, " ") {
		return false
	}
	for _, prefix := range invoicePrefixes {
		if strings.HasPrefix(payRequest, prefix) {
			return true
		}
	}
	return false
}

// Invoice is the decoded form of a bolt11 payment request, reduced to
// the fields the wallet acts on.
type Invoice struct {
	PaymentRequest string
	Destination    *btcec.PublicKey
	AmountMsat     lnwire.MilliSatoshi
	PaymentHash    [32]byte
	Description    string
	RouteHints     [][]zpay32.HopHint
	Expiry         time.Time
}

// DecodeInvoice decodes a bolt11 payment request for the given network.
// The amount is zero for invoices that leave it open.
func DecodeInvoice(payRequest string, net *chaincfg.Params) (*Invoice, error) {
	bolt11, err := zpay32.Decode(payRequest, net)
	if err != nil {
		return nil, err
	}
	invoice := &Invoice{
		PaymentRequest: payRequest,
		Destination:    bolt11.Destination,
		RouteHints:     bolt11.RouteHints,
		Expiry:         bolt11.Timestamp.Add(bolt11.Expiry()),
	}
	if bolt11.MilliSat != nil {
		invoice.AmountMsat = *bolt11.MilliSat
	}
	if bolt11.Description != nil {
		invoice.Description = *bolt11.Description
	}
	if bolt11.PaymentHash != nil {
		invoice.PaymentHash = *bolt11.PaymentHash
	}
	return invoice, nil
}
