// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-qnexus binaries. It aggregates all sub-configurations and is populated
// by merging defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the request digest key and the version.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database and artifact store settings of
	// the stub service.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts of the stub service.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client-side view of the remote service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds job execution pool and polling settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Emulator selects how the stub service samples outcomes.
	Emulator Emulator `envPrefix:"EMULATOR_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Files Files `envPrefix:"FILES_"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret used to sign and verify bearer tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a token remains valid (e.g. "24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the key of the X-Content-Digest request body digest. An
	// empty key disables digests.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the REST listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the gRPC health service listen address.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by scheme: "postgres://" and "postgresql://"
	// use pgx, anything else is a sqlite path or "file:" URI.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for uploaded program artifacts.
type Files struct {
	// ArtifactDir is where artifacts are stored under their content id.
	// Env: STORAGE_FILES_ARTIFACT_DIR
	ArtifactDir string `env:"ARTIFACT_DIR"`
}

// Adapter holds the settings the client uses to reach the service.
type Adapter struct {
	// HTTPAddress is the base URL of the REST API (e.g.
	// "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token sent with every request.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Workers holds job execution and polling settings.
type Workers struct {
	// PoolSize is the number of concurrent job runners in the service.
	// Env: WORKERS_POOL_SIZE
	PoolSize int `env:"POOL_SIZE"`

	// QueueSize is the capacity of the pending job queue.
	// Env: WORKERS_QUEUE_SIZE
	QueueSize int `env:"QUEUE_SIZE"`

	// PollInterval is the default status poll interval of the waiter.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// WaitTimeout is the default upper bound of a wait.
	// Env: WORKERS_WAIT_TIMEOUT
	WaitTimeout time.Duration `env:"WAIT_TIMEOUT"`

	// ExecutionDelay is slept by a runner between status transitions so that
	// intermediate states are observable.
	// Env: WORKERS_EXECUTION_DELAY
	ExecutionDelay time.Duration `env:"EXECUTION_DELAY"`
}

// Emulator selects the outcome sampler of the stub service.
type Emulator struct {
	// Mode is "ideal" or "random".
	// Env: EMULATOR_MODE
	Mode string `env:"MODE"`

	// Seed seeds the random sampler; zero picks a fresh seed per job.
	// Env: EMULATOR_SEED
	Seed uint64 `env:"SEED"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. Later sources override non-zero fields of earlier
// ones:
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
