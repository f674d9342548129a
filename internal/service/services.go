// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-qnexus/internal/config"
	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/internal/store"
	"github.com/MKhiriev/go-qnexus/internal/utils"
)

// Services bundles the business services of the stub service.
type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
	HealthService  HealthService
	ProjectService ProjectService
	ProgramService ProgramService
	JobService     JobService
	JobExecutor    JobExecutor
	ResultService  ResultService
	CostService    CostService
}

func NewServices(storages *store.Storages, queue JobQueue, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	ids := utils.NewUUIDGenerator()
	jobs, executor := NewJobService(storages, queue, ids, cfg, logger)

	return &Services{
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfo,
		HealthService:  NewHealthService(storages, logger),
		ProjectService: NewProjectService(storages, ids, logger),
		ProgramService: NewProgramService(storages, ids, logger),
		JobService:     NewJobValidationService().Wrap(jobs),
		JobExecutor:    executor,
		ResultService:  NewResultService(storages, logger),
		CostService:    NewCostService(storages, logger),
	}, nil
}
