package destination

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	log "github.com/sirupsen/logrus"

	"github.com/lnwallet/walletcore/pkg/lightning"
)

// Destination is the closed set of payable destination formats a user
// input can resolve to.
type Destination interface {
	payable()
}

// Invoice is a destination backed by a decoded bolt11 payment request.
type Invoice struct {
	*lightning.Invoice
}

// OnChainURI is a destination backed by a bitcoin payment URI.
type OnChainURI struct {
	Address btcutil.Address
	Amount  btcutil.Amount
	Label   string
	Message string
}

// LnUrl is a destination referencing LNURL payment metadata that still
// has to be fetched out-of-band.
type LnUrl struct {
	Encoded string // lnurl as found in the input
	URL     string // decoded callback URL
}

func (*Invoice) payable()    {}
func (*OnChainURI) payable() {}
func (*LnUrl) payable()      {}

// ClassificationError aggregates the parse failures of every attempted
// format. It is returned only when no format matched.
type ClassificationError struct {
	Invoice error
	OnChain error
	LnUrl   error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("not a payable destination (invoice: %v; onchain: %v; lnurl: %v)",
		e.Invoice, e.OnChain, e.LnUrl)
}

// Resolver classifies raw payment strings for a single chain.
type Resolver struct {
	net *chaincfg.Params
}

func NewResolver(net *chaincfg.Params) *Resolver {
	return &Resolver{net: net}
}

var errNoInvoicePrefix = errors.New("no bolt11 payment request prefix")

// Resolve interprets raw as, in order, a bolt11 payment request, a
// bitcoin URI and an LNURL, returning the first successful
// interpretation. The first two work on the normalized input; the
// LNURL attempt works on the raw input because lnurl strings carry
// their own prefix scheme.
func (r *Resolver) Resolve(raw string) (Destination, error) {
	text := Normalize(raw)

	invoiceErr := errNoInvoicePrefix
	if lightning.IsInvoice(text) {
		invoice, err := lightning.DecodeInvoice(text, r.net)
		if err == nil {
			return &Invoice{Invoice: invoice}, nil
		}
		invoiceErr = err
		log.Debugf("[resolve] not an invoice: %s", invoiceErr)
	}

	uri, onChainErr := DecodeBitcoinURI(text, r.net)
	if onChainErr == nil {
		return uri, nil
	}
	log.Debugf("[resolve] not a bitcoin uri: %s", onChainErr)

	lnUrl, lnUrlErr := DecodeLnUrl(raw)
	if lnUrlErr == nil {
		return lnUrl, nil
	}
	log.Debugf("[resolve] not an lnurl: %s", lnUrlErr)

	return nil, &ClassificationError{Invoice: invoiceErr, OnChain: onChainErr, LnUrl: lnUrlErr}
}
