// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/internal/store"
)

type healthService struct {
	storages *store.Storages

	logger *logger.Logger
}

func NewHealthService(storages *store.Storages, logger *logger.Logger) HealthService {
	return &healthService{storages: storages, logger: logger}
}

func (s *healthService) Ping(ctx context.Context) error {
	if err := s.storages.Ping(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "*healthService.Ping").Msg("storage is unreachable")
		return fmt.Errorf("health check: %w", err)
	}
	return nil
}
