// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/MKhiriev/go-notes/internal/client"
	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewClientLogger("go-notes-client")

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if buildVersion != "" {
		cfg.Version = buildVersion
	}
	log.Debug().Str("build_date", buildDate).Str("build_commit", buildCommit).Msg("client starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open session store: %v\n", err)
		return 1
	}
	defer func() {
		if err := localStorage.Close(); err != nil {
			log.Err(err).Msg("error closing session store")
		}
	}()

	services := service.NewClientServices(localStorage, serverAdapter, cfg.Version, log)

	if err = client.NewApp(services, os.Stdout, log).Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, client.Describe(err))
		return 1
	}
	return 0
}
