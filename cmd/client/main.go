// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/hymusic-sync/internal/adapter"
	"github.com/MKhiriev/hymusic-sync/internal/client"
	"github.com/MKhiriev/hymusic-sync/internal/config"
	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/service"
	"github.com/MKhiriev/hymusic-sync/internal/session"
	"github.com/MKhiriev/hymusic-sync/internal/store"
	"github.com/MKhiriev/hymusic-sync/internal/tui"
	"github.com/MKhiriev/hymusic-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const openStoreTimeout = 10 * time.Second

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("hymusic-client", cfg.Log.File)
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Warn().Err(err).Str("level", cfg.Log.Level).Msg("unknown log level, keeping debug")
	}

	if err = run(cfg, log); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.ClientConfig, log *logger.Logger) error {
	lock, err := client.LockStore(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			log.Warn().Err(unlockErr).Msg("release local store lock")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), openStoreTimeout)
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	cancel()
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer storages.Close()

	sess := session.New(storages.SessionRepository, log)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, sess, log)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	services := service.NewClientServices(storages, serverAdapter, sess, cfg.Workers, log)
	ui := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	return client.NewApp(services, ui, log).Run()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
