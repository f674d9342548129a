// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-qnexus/internal/config"
	"github.com/MKhiriev/go-qnexus/internal/handler"
	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/internal/server"
	"github.com/MKhiriev/go-qnexus/internal/service"
	"github.com/MKhiriev/go-qnexus/internal/store"
	"github.com/MKhiriev/go-qnexus/internal/workers"
	"github.com/MKhiriev/go-qnexus/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("qnexus-stub")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	pool := workers.NewJobPool(cfg.Workers, log)
	services, err := service.NewServices(storages, pool, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var wg sync.WaitGroup
	wg.Go(func() {
		workers.NewWorkers(pool.Runner(services.JobExecutor)).Run(ctx)
	})

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
	stop()
	wg.Wait()
}

func printBuildInfo() {
	fmt.Print(models.NewBuildInfo(buildVersion, buildDate, buildCommit))
}
