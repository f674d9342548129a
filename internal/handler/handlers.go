// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-qnexus/internal/config"
	"github.com/MKhiriev/go-qnexus/internal/handler/grpc"
	"github.com/MKhiriev/go-qnexus/internal/handler/http"
	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/internal/service"
)

// Handlers holds the transport handlers enabled by the server config. A
// handler is nil when its listen address is empty.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		h, err := http.NewHandler(services, cfg, logger)
		if err != nil {
			return nil, err
		}
		handlers.HTTP = h
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
