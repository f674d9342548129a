// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-qnexus/internal/adapter"
	"github.com/MKhiriev/go-qnexus/internal/config"
	"github.com/MKhiriev/go-qnexus/internal/logger"
)

type ClientServices struct {
	ProjectService ClientProjectService
	HUGRService    ClientHUGRService
	JobService     ClientJobService
	TokenService   ClientTokenService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		ProjectService: NewClientProjectService(serverAdapter, logger),
		HUGRService:    NewClientHUGRService(serverAdapter, logger),
		JobService:     NewClientJobService(serverAdapter, cfg.Workers, logger),
		TokenService:   NewClientTokenService(cfg.App),
	}
}
