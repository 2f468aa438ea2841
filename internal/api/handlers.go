package api

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"time"

	"github.com/fiatjaf/go-lnurl"
	decodepay "github.com/nbd-wtf/ln-decodepay"
	"github.com/lightningnetwork/lnd/lnwire"
	log "github.com/sirupsen/logrus"

	"github.com/lnwallet/walletcore/internal/destination"
	"github.com/lnwallet/walletcore/internal/qr"
	"github.com/lnwallet/walletcore/pkg/lightning"
)

type resolveRequest struct {
	Input string `json:"input"`
}

type invoiceDetails struct {
	Destination string `json:"destination"`
	AmountMsat  uint64 `json:"amount_msat"`
	PaymentHash string `json:"payment_hash"`
	Description string `json:"description,omitempty"`
	ExpiresAt   int64  `json:"expires_at"`
}

type onChainDetails struct {
	Address   string `json:"address"`
	AmountSat int64  `json:"amount_sat"`
	Label     string `json:"label,omitempty"`
	Message   string `json:"message,omitempty"`
}

type lnUrlDetails struct {
	Encoded string `json:"encoded"`
	URL     string `json:"url"`
}

type resolveResponse struct {
	Kind    string          `json:"kind"`
	Invoice *invoiceDetails `json:"invoice,omitempty"`
	OnChain *onChainDetails `json:"onchain,omitempty"`
	LnUrl   *lnUrlDetails   `json:"lnurl,omitempty"`
}

func (s *Server) resolveInput(input string) (*resolveResponse, error) {
	resolved, err := s.resolver.Resolve(input)
	if err != nil {
		s.logResolution(input, "", false)
		return nil, err
	}
	response := &resolveResponse{}
	switch d := resolved.(type) {
	case *destination.Invoice:
		response.Kind = "invoice"
		response.Invoice = &invoiceDetails{
			Destination: hex.EncodeToString(d.Destination.SerializeCompressed()),
			AmountMsat:  uint64(d.AmountMsat),
			PaymentHash: hex.EncodeToString(d.PaymentHash[:]),
			Description: d.Description,
			ExpiresAt:   d.Expiry.Unix(),
		}
	case *destination.OnChainURI:
		response.Kind = "onchain"
		response.OnChain = &onChainDetails{
			Address:   d.Address.EncodeAddress(),
			AmountSat: int64(d.Amount),
			Label:     d.Label,
			Message:   d.Message,
		}
	case *destination.LnUrl:
		response.Kind = "lnurl"
		response.LnUrl = &lnUrlDetails{Encoded: d.Encoded, URL: d.URL}
	}
	s.logResolution(input, response.Kind, true)
	return response, nil
}

func (s *Server) handleResolve(writer http.ResponseWriter, request *http.Request) {
	var body resolveRequest
	if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
		writeError(writer, http.StatusBadRequest, err)
		return
	}
	response, err := s.resolveInput(body.Input)
	if err != nil {
		writeError(writer, http.StatusUnprocessableEntity, err)
		return
	}
	if err := writeResponse(writer, response); err != nil {
		log.Errorln(err)
	}
}

type trampolineRequest struct {
	Invoice    string `json:"invoice"`
	AmountMsat uint64 `json:"amount_msat"`
}

type trampolineResponse struct {
	Trampoline bool   `json:"trampoline"`
	NodeID     string `json:"node_id,omitempty"`
	FeeMsat    uint64 `json:"fee_msat"`
	TotalMsat  uint64 `json:"total_msat"`
}

func (s *Server) handleTrampoline(writer http.ResponseWriter, request *http.Request) {
	var body trampolineRequest
	if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
		writeError(writer, http.StatusBadRequest, err)
		return
	}
	invoice, err := lightning.DecodeInvoice(destination.Normalize(body.Invoice), s.net)
	if err != nil {
		writeError(writer, http.StatusBadRequest, fmt.Errorf("could not decode invoice: %w", err))
		return
	}
	amount := lnwire.MilliSatoshi(body.AmountMsat)
	if amount == 0 {
		amount = invoice.AmountMsat
	}

	decision := s.policy.Decide(amount, invoice)
	response := trampolineResponse{
		Trampoline: decision.NodeID != nil,
		FeeMsat:    uint64(decision.FeeMsat),
		TotalMsat:  uint64(amount + decision.FeeMsat),
	}
	if decision.NodeID != nil {
		response.NodeID = hex.EncodeToString(decision.NodeID.SerializeCompressed())
	}
	s.logResolution(body.Invoice, "invoice", true,
		ResolutionAmount(uint64(amount)),
		ResolutionFee(uint64(decision.FeeMsat), response.Trampoline))
	if err := writeResponse(writer, response); err != nil {
		log.Errorln(err)
	}
}

type summaryRequest struct {
	Invoice string `json:"invoice"`
}

type summaryResponse struct {
	AmountSat   int64  `json:"amount_sat"`
	Description string `json:"description,omitempty"`
}

// handleInvoiceSummary serves the short form shown on payment
// confirmation screens.
func (s *Server) handleInvoiceSummary(writer http.ResponseWriter, request *http.Request) {
	var body summaryRequest
	if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
		writeError(writer, http.StatusBadRequest, err)
		return
	}
	bolt11, err := decodepay.Decodepay(destination.Normalize(body.Invoice))
	if err != nil {
		writeError(writer, http.StatusBadRequest, fmt.Errorf("could not decode invoice: %w", err))
		return
	}
	response := summaryResponse{
		AmountSat:   bolt11.MSatoshi / 1000,
		Description: bolt11.Description,
	}
	if err := writeResponse(writer, response); err != nil {
		log.Errorln(err)
	}
}

func (s *Server) handleScanQr(writer http.ResponseWriter, request *http.Request) {
	img, _, err := image.Decode(request.Body)
	if err != nil {
		writeError(writer, http.StatusBadRequest, err)
		return
	}
	payload, err := qr.Scan(img)
	if err != nil {
		writeError(writer, http.StatusUnprocessableEntity,
			fmt.Errorf("could not recognize a payment code: %w", err))
		return
	}
	response, err := s.resolveInput(payload)
	if err != nil {
		writeError(writer, http.StatusUnprocessableEntity, err)
		return
	}
	if err := writeResponse(writer, response); err != nil {
		log.Errorln(err)
	}
}

func (s *Server) handleReceiveQr(writer http.ResponseWriter, request *http.Request) {
	payload := request.URL.Query().Get("payload")
	if payload == "" {
		writeError(writer, http.StatusBadRequest, errors.New("payload is required"))
		return
	}
	png, err := qr.Encode(payload)
	if err != nil {
		writeError(writer, http.StatusInternalServerError, err)
		return
	}
	writer.Header().Set("Content-Type", "image/png")
	if _, err := writer.Write(png); err != nil {
		log.Errorln(err)
	}
}

type cachedParams struct {
	URL    string          `json:"url"`
	Params json.RawMessage `json:"params"`
}

func (c *cachedParams) Key() string { return "lnurl:" + c.URL }

const lnurlCacheTTL = 10 * time.Minute

func (s *Server) handleLnUrlParams(writer http.ResponseWriter, request *http.Request) {
	input := request.URL.Query().Get("input")
	if input == "" {
		writeError(writer, http.StatusBadRequest, errors.New("input is required"))
		return
	}
	lnUrl, err := destination.DecodeLnUrl(input)
	if err != nil {
		writeError(writer, http.StatusUnprocessableEntity, err)
		return
	}

	cached := &cachedParams{URL: lnUrl.URL}
	if s.cache != nil {
		if err := s.cache.Get(cached); err == nil {
			writer.Header().Set("Content-Type", "application/json")
			if _, err := writer.Write(cached.Params); err != nil {
				log.Errorln(err)
			}
			return
		}
	}

	params, err := s.lnurl.FetchParams(lnUrl.URL)
	if err != nil {
		writeError(writer, http.StatusBadGateway, err)
		return
	}
	raw, err := json.Marshal(params)
	if err != nil {
		writeError(writer, http.StatusInternalServerError, err)
		return
	}
	if s.cache != nil {
		cached.Params = raw
		if err := s.cache.SetWithTTL(cached, lnurlCacheTTL); err != nil {
			log.Errorf("[api] Could not cache lnurl params: %s", err)
		}
	}
	writer.Header().Set("Content-Type", "application/json")
	if _, err := writer.Write(raw); err != nil {
		log.Errorln(err)
	}
}

type lnUrlInvoiceRequest struct {
	Input      string `json:"input"`
	AmountMsat int64  `json:"amount_msat"`
}

func (s *Server) handleLnUrlInvoice(writer http.ResponseWriter, request *http.Request) {
	var body lnUrlInvoiceRequest
	if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
		writeError(writer, http.StatusBadRequest, err)
		return
	}
	lnUrl, err := destination.DecodeLnUrl(body.Input)
	if err != nil {
		writeError(writer, http.StatusUnprocessableEntity, err)
		return
	}
	params, err := s.lnurl.FetchParams(lnUrl.URL)
	if err != nil {
		writeError(writer, http.StatusBadGateway, err)
		return
	}
	payParams, ok := params.(lnurl.LNURLPayResponse1)
	if !ok {
		writeError(writer, http.StatusUnprocessableEntity, errors.New("not an lnurl-pay destination"))
		return
	}
	if body.AmountMsat < payParams.MinSendable || body.AmountMsat > payParams.MaxSendable {
		writeError(writer, http.StatusBadRequest,
			fmt.Errorf("amount must be between %d and %d msat", payParams.MinSendable, payParams.MaxSendable))
		return
	}
	pr, err := s.lnurl.RequestInvoice(payParams, body.AmountMsat)
	if err != nil {
		writeError(writer, http.StatusBadGateway, err)
		return
	}
	if err := writeResponse(writer, map[string]string{"pr": pr}); err != nil {
		log.Errorln(err)
	}
}
