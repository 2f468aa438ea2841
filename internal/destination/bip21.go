package destination

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// DecodeBitcoinURI parses the scheme-stripped form of a BIP21 payment
// URI: an address optionally followed by amount/label/message query
// parameters. The amount parameter is denominated in whole bitcoin.
func DecodeBitcoinURI(text string, net *chaincfg.Params) (*OnChainURI, error) {
	addr := text
	var query url.Values
	if i := strings.Index(text, "?"); i >= 0 {
		var err error
		addr = text[:i]
		query, err = url.ParseQuery(text[i+1:])
		if err != nil {
			return nil, err
		}
	}
	if addr == "" {
		return nil, errors.New("empty address")
	}
	address, err := btcutil.DecodeAddress(addr, net)
	if err != nil {
		return nil, err
	}
	uri := &OnChainURI{
		Address: address,
		Label:   query.Get("label"),
		Message: query.Get("message"),
	}
	if amt := query.Get("amount"); amt != "" {
		value, err := strconv.ParseFloat(amt, 64)
		if err != nil {
			return nil, err
		}
		uri.Amount, err = btcutil.NewAmount(value)
		if err != nil {
			return nil, err
		}
	}
	return uri, nil
}
