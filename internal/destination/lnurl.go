package destination

import (
	"errors"
	"strings"

	"github.com/fiatjaf/go-lnurl"
)

// DecodeLnUrl classifies text as an LNURL reference: a lightning
// address (internet identifier), a bare http(s) URL, or a
// bech32-encoded lnurl anywhere in the text. No network request is
// made here; callers fetch the referenced parameters separately.
func DecodeLnUrl(text string) (*LnUrl, error) {
	text = strings.TrimSpace(text)
	if name, domain, ok := lnurl.ParseInternetIdentifier(text); ok {
		rawurl := domain + "/.well-known/lnurlp/" + name
		if strings.HasSuffix(domain, ".onion") {
			rawurl = "http://" + rawurl
		} else {
			rawurl = "https://" + rawurl
		}
		return &LnUrl{Encoded: text, URL: rawurl}, nil
	}
	if strings.HasPrefix(text, "http") {
		return &LnUrl{Encoded: text, URL: text}, nil
	}
	found, ok := lnurl.FindLNURLInText(text)
	if !ok {
		return nil, errors.New("invalid bech32-encoded lnurl: " + text)
	}
	rawurl, err := lnurl.LNURLDecode(found)
	if err != nil {
		return nil, err
	}
	return &LnUrl{Encoded: found, URL: rawurl}, nil
}
