package lnurl

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/fiatjaf/go-lnurl"
	"github.com/imroc/req"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// Client talks to LNURL services on behalf of the wallet.
type Client struct{}

// NewClient returns an LNURL client, routing requests through httpProxy
// when one is configured. The proxy applies to the process-wide req
// transport, so all Clients share the last proxy that was set.
func NewClient(httpProxy string) (*Client, error) {
	if httpProxy != "" {
		if err := req.SetProxyUrl(httpProxy); err != nil {
			return nil, err
		}
	}
	return &Client{}, nil
}

// FetchParams retrieves the LNURL parameters behind rawurl and
// dispatches them by tag. Auth and fast-withdraw requests are answered
// from the query string without a round trip.
func (c *Client) FetchParams(rawurl string) (lnurl.LNURLParams, error) {
	parsed, err := url.Parse(rawurl)
	if err != nil {
		return nil, err
	}

	query := parsed.Query()
	switch query.Get("tag") {
	case "login":
		value, err := lnurl.HandleAuth(rawurl, parsed, query)
		return value, err
	case "withdrawRequest":
		if value, ok := lnurl.HandleFastWithdraw(query); ok {
			return value, nil
		}
	}

	resp, err := req.Get(rawurl)
	if err != nil {
		return nil, err
	}

	j := gjson.ParseBytes(resp.Bytes())
	if j.Get("status").String() == "ERROR" {
		log.Errorf("[lnurl] %s answered: %s", parsed.Host, j.Get("reason").String())
		return nil, lnurl.LNURLErrorResponse{
			URL:    parsed,
			Reason: j.Get("reason").String(),
			Status: "ERROR",
		}
	}

	switch j.Get("tag").String() {
	case "withdrawRequest":
		value, err := lnurl.HandleWithdraw(j)
		return value, err
	case "payRequest":
		value, err := lnurl.HandlePay(j)
		return value, err
	case "channelRequest":
		value, err := lnurl.HandleChannel(j)
		return value, err
	default:
		return nil, errors.New("unknown response tag " + j.String())
	}
}

// RequestInvoice asks an LNURL-pay callback for an invoice over
// amountMsat. The service must answer inside the min/max sendable
// bounds it advertised; the caller is expected to have checked those.
func (c *Client) RequestInvoice(params lnurl.LNURLPayResponse1, amountMsat int64) (string, error) {
	callbackUrl, err := url.Parse(params.Callback)
	if err != nil {
		return "", err
	}
	qs := callbackUrl.Query()
	qs.Set("amount", strconv.FormatInt(amountMsat, 10))
	callbackUrl.RawQuery = qs.Encode()

	resp, err := req.Get(callbackUrl.String())
	if err != nil {
		return "", err
	}
	var response lnurl.LNURLPayResponse2
	if err := resp.ToJSON(&response); err != nil {
		return "", err
	}
	if len(response.PR) < 1 {
		return "", errors.New("could not receive invoice (wrong address?)")
	}
	return response.PR, nil
}
