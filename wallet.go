package main

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	log "github.com/sirupsen/logrus"

	"github.com/lnwallet/walletcore/internal/api"
	"github.com/lnwallet/walletcore/internal/destination"
	lnurlclient "github.com/lnwallet/walletcore/internal/lnurl"
	"github.com/lnwallet/walletcore/internal/storage"
	"github.com/lnwallet/walletcore/internal/trampoline"
)

type WalletService struct {
	net    *chaincfg.Params
	server *api.Server
}

// NewWalletService migrates data and wires the API server together.
func NewWalletService() WalletService {
	net, err := netParams(Configuration.Wallet.Network)
	if err != nil {
		panic(err)
	}
	database := migration()
	cache := storage.NewBunt(cacheDbPath())

	nodeID, err := trampoline.ParseNodeID(Configuration.Wallet.TrampolineNode)
	if err != nil {
		panic(err)
	}

	lnurlClient, err := lnurlclient.NewClient(Configuration.Wallet.HttpProxy)
	if err != nil {
		panic(err)
	}

	server := api.NewServer(Configuration.Api.ListenAddr, net,
		destination.NewResolver(net), trampoline.NewPolicy(nodeID),
		lnurlClient, database, cache)
	return WalletService{net: net, server: server}
}

// Start will initialize logging and serve the API until it fails.
func (w WalletService) Start() {
	setLogger()
	log.Infof("[Wallet] Serving %s wallet requests", w.net.Name)
	if err := w.server.Start(); err != nil {
		log.Errorf("[Wallet] Server stopped: %s", err.Error())
	}
}

// setLogger will initialize the log format
func setLogger() {
	log.SetLevel(log.DebugLevel)
	customFormatter := new(log.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	log.SetFormatter(customFormatter)
}

func netParams(network string) (*chaincfg.Params, error) {
	switch network {
	case "mainnet", "":
		return &chaincfg.MainNetParams, nil
	case "testnet":
		return &chaincfg.TestNet3Params, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "simnet":
		return &chaincfg.SimNetParams, nil
	default:
		return nil, fmt.Errorf("unknown network %q", network)
	}
}
