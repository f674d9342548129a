// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/MKhiriev/go-qnexus/internal/config"
	"github.com/MKhiriev/go-qnexus/internal/handler"
	"github.com/MKhiriev/go-qnexus/internal/logger"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	probeInterval time.Duration

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.StructuredConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{probeInterval: cfg.Workers.PollInterval, logger: logger}

	if cfg.Server.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg.Server, logger)
	}
	if cfg.Server.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg.Server, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer(ctx context.Context) error {
	// listen first so that an unavailable address fails before anything runs
	var httpLis, grpcLis net.Listener
	var err error
	if s.httpServer != nil {
		if httpLis, err = s.httpServer.Listen(); err != nil {
			return err
		}
	}
	if s.gRPCServer != nil {
		if grpcLis, err = s.gRPCServer.Listen(); err != nil {
			if httpLis != nil {
				httpLis.Close()
			}
			return err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errs := make(chan error, 2)
	var wg sync.WaitGroup

	if s.httpServer != nil {
		wg.Go(func() {
			if err := s.httpServer.Serve(httpLis); err != nil {
				errs <- err
			}
		})
	}
	if s.gRPCServer != nil {
		wg.Go(func() { s.gRPCServer.handler.Monitor(ctx, s.probeInterval) })
		wg.Go(func() {
			if err := s.gRPCServer.Serve(grpcLis); err != nil {
				errs <- err
			}
		})
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errs:
		s.logger.Err(runErr).Str("func", "*server.RunServer").Msg("server failed")
	}
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer stop()
	s.Shutdown(shutdownCtx)

	wg.Wait()
	s.logger.Info().Msg("server shutdown gracefully")

	return runErr
}

func (s *server) Shutdown(ctx context.Context) {
	if s.httpServer != nil {
		s.httpServer.Shutdown(ctx)
	}
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown(ctx)
	}
}
