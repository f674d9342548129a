// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

var (
	parseOnce   sync.Once
	parsedFlags *StructuredConfig
	parseErr    error
)

// ParseFlags parses the process command line once and returns the values as
// a partial config. Positional arguments stay available via flag.Args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-s service base URL used by the client
//	-f artifact storage directory
//	-d database DSN
//	-c/-config json file path with configs
//	-token token sent by the client
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-hash-key request digest key
//	-workers job runner count
//	-poll-interval waiter poll interval
//	-wait-timeout waiter timeout
//	-emulator-mode ideal or random
//	-emulator-seed random sampler seed
func ParseFlags() (*StructuredConfig, error) {
	parseOnce.Do(func() {
		parsedFlags, parseErr = parseFlags(flag.CommandLine, os.Args[1:])
	})
	return parsedFlags, parseErr
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var (
		serviceURL     string
		artifactDir    string
		databaseDSN    string
		jsonConfigPath string
		token          string
		tokenSignKey   string
		tokenIssuer    string
		tokenDuration  time.Duration
		requestTimeout time.Duration
		hashKey        string
		poolSize       int
		pollInterval   time.Duration
		waitTimeout    time.Duration
		emulatorMode   string
		emulatorSeed   uint64
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&serviceURL, "s", "", "Service base URL")
	fs.StringVar(&artifactDir, "f", "", "Artifact storage directory")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&token, "token", "", "Bearer token")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&hashKey, "hash-key", "", "Request digest key")
	fs.IntVar(&poolSize, "workers", 0, "Job runner count")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Status poll interval")
	fs.DurationVar(&waitTimeout, "wait-timeout", 0, "Wait timeout")
	fs.StringVar(&emulatorMode, "emulator-mode", "", "Outcome sampler: ideal or random")
	fs.Uint64Var(&emulatorSeed, "emulator-seed", 0, "Random sampler seed")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			HashKey:       hashKey,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{ArtifactDir: artifactDir},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    serviceURL,
			RequestTimeout: requestTimeout,
			Token:          token,
		},
		Workers: Workers{
			PoolSize:     poolSize,
			PollInterval: pollInterval,
			WaitTimeout:  waitTimeout,
		},
		Emulator: Emulator{
			Mode: emulatorMode,
			Seed: emulatorSeed,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
