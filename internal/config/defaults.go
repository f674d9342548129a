// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "qnexus-stub",
			TokenDuration: 24 * time.Hour,
			Version:       "0.1.0",
		},
		Storage: Storage{
			DB:    DB{DSN: "qnexus.db"},
			Files: Files{ArtifactDir: "artifacts"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			GRPCAddress:    "localhost:9090",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			PoolSize:       4,
			QueueSize:      64,
			PollInterval:   time.Second,
			WaitTimeout:    15 * time.Minute,
			ExecutionDelay: 100 * time.Millisecond,
		},
		Emulator: Emulator{Mode: "ideal"},
	}
}
