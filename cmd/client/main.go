// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-qnexus/internal/adapter"
	"github.com/MKhiriev/go-qnexus/internal/client"
	"github.com/MKhiriev/go-qnexus/internal/config"
	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/internal/service"
	"github.com/MKhiriev/go-qnexus/internal/tui"
	"github.com/MKhiriev/go-qnexus/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("qnexus-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	args := flag.Args()
	if len(args) > 0 && args[0] == "version" {
		printBuildInfo()
		return
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, *cfg, log)
	ui := tui.New(services.JobService, log)
	app := client.NewApp(services, ui, os.Stdout, os.Stderr, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = app.Run(ctx, args); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}

func printBuildInfo() {
	fmt.Print(models.NewBuildInfo(buildVersion, buildDate, buildCommit))
}
