// Package main - Entry point for the quote-engine pricing server
package main

import (
	"flag"
	"net/http"
	"os"

	"go.uber.org/zap"

	"quote-engine/adapters/storage"
	"quote-engine/api"
	"quote-engine/internal/config"
	"quote-engine/internal/logging"
)

const version = "1.0.0"

func main() {
	addr := flag.String("addr", ":8080", "server address")
	cfgPath := flag.String("config", "", "config file path")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			logging.Error("load config", zap.Error(err))
			os.Exit(1)
		}
		cfg = loaded
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Error("initialize logging", zap.Error(err))
		os.Exit(1)
	}
	defer logging.Sync()

	store, err := storage.Open(cfg.Storage)
	if err != nil {
		logging.Error("open quote store", zap.Error(err))
		os.Exit(1)
	}
	defer store.Close()

	server := api.NewServerWithStore(version, store)

	logging.Info("pricing server listening",
		zap.String("addr", *addr),
		zap.String("version", version),
		zap.String("storage", cfg.Storage.Backend))

	if err := http.ListenAndServe(*addr, server); err != nil {
		logging.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
