// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged [StructuredConfig] used by the stub service.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.Files.ArtifactDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.PoolSize <= 0 || cfg.Workers.QueueSize <= 0 || cfg.Workers.ExecutionDelay < 0 {
		return ErrInvalidWorkerConfigs
	}

	switch cfg.Emulator.Mode {
	case "ideal", "random":
	default:
		return fmt.Errorf("%w: mode %q", ErrInvalidEmulatorConfigs, cfg.Emulator.Mode)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.PollInterval <= 0 || cfg.Workers.WaitTimeout <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
