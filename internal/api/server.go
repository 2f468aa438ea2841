package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/lnwallet/walletcore/internal/destination"
	lnurlclient "github.com/lnwallet/walletcore/internal/lnurl"
	"github.com/lnwallet/walletcore/internal/storage"
	"github.com/lnwallet/walletcore/internal/trampoline"
)

// Server is the HTTP surface the mobile app talks to.
type Server struct {
	httpServer *http.Server
	net        *chaincfg.Params
	resolver   *destination.Resolver
	policy     *trampoline.Policy
	lnurl      *lnurlclient.Client
	database   *gorm.DB
	cache      *storage.DB
}

func NewServer(addr string, net *chaincfg.Params, resolver *destination.Resolver,
	policy *trampoline.Policy, lnurl *lnurlclient.Client,
	database *gorm.DB, cache *storage.DB) *Server {
	srv := &http.Server{
		Addr: addr,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}
	apiServer := &Server{
		httpServer: srv,
		net:        net,
		resolver:   resolver,
		policy:     policy,
		lnurl:      lnurl,
		database:   database,
		cache:      cache,
	}
	apiServer.httpServer.Handler = apiServer.newRouter()
	return apiServer
}

func (s *Server) newRouter() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/resolve", s.handleResolve).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/trampoline", s.handleTrampoline).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/invoice/summary", s.handleInvoiceSummary).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/qr/scan", s.handleScanQr).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/receive/qr", s.handleReceiveQr).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/lnurl/params", s.handleLnUrlParams).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/lnurl/invoice", s.handleLnUrlInvoice).Methods(http.MethodPost)
	return router
}

// Start serves the API until the listener fails or is closed.
func (s *Server) Start() error {
	log.Infof("[api] Server started at %s", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func writeResponse(writer http.ResponseWriter, response interface{}) error {
	jsonResponse, err := json.Marshal(response)
	if err != nil {
		return err
	}
	writer.Header().Set("Content-Type", "application/json")
	_, err = writer.Write(jsonResponse)
	return err
}

func writeError(writer http.ResponseWriter, status int, err error) {
	log.Errorln(err)
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	json.NewEncoder(writer).Encode(map[string]string{"error": err.Error()})
}
