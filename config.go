package main

import (
	"path/filepath"

	"github.com/jinzhu/configor"

	"github.com/lnwallet/walletcore/internal/trampoline"
)

var Configuration = struct {
	Wallet   WalletConfiguration   `yaml:"wallet"`
	Api      ApiConfiguration      `yaml:"api"`
	Database DatabaseConfiguration `yaml:"database"`
}{}

type WalletConfiguration struct {
	Network        string `yaml:"network" default:"mainnet"`
	TrampolineNode string `yaml:"trampoline_node"`
	HttpProxy      string `yaml:"http_proxy"`
	DataDir        string `yaml:"data_dir" default:"data"`
}

type ApiConfiguration struct {
	ListenAddr string `yaml:"listen_addr" default:"127.0.0.1:9740"`
}

type DatabaseConfiguration struct {
	HistoryPath string `yaml:"history_path"`
	CachePath   string `yaml:"cache_path"`
}

func init() {
	err := configor.Load(&Configuration, "config.yaml")
	if err != nil {
		panic(err)
	}
	if Configuration.Wallet.TrampolineNode == "" {
		Configuration.Wallet.TrampolineNode = trampoline.DefaultNodeID
	}
}

// chainDir separates state per network so switching chains never mixes
// records.
func chainDir() string {
	return filepath.Join(Configuration.Wallet.DataDir, Configuration.Wallet.Network)
}

func historyDbPath() string {
	if Configuration.Database.HistoryPath != "" {
		return Configuration.Database.HistoryPath
	}
	return filepath.Join(chainDir(), "history.db")
}

func cacheDbPath() string {
	if Configuration.Database.CachePath != "" {
		return Configuration.Database.CachePath
	}
	return filepath.Join(chainDir(), "cache.db")
}
