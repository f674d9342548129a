// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"

	"github.com/MKhiriev/go-qnexus/internal/config"
	myGRPC "github.com/MKhiriev/go-qnexus/internal/handler/grpc"
	"github.com/MKhiriev/go-qnexus/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer()
	handler.Register(s)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  s,
		logger:  logger,
	}
}

func (g *grpcServer) Listen() (net.Listener, error) {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return nil, fmt.Errorf("gRPC server listen on %q: %w", g.address, err)
	}
	return lis, nil
}

func (g *grpcServer) Serve(lis net.Listener) error {
	g.logger.Info().Str("address", lis.Addr().String()).Msg("launching gRPC server")
	if err := g.server.Serve(lis); err != nil {
		return fmt.Errorf("gRPC server serve: %w", err)
	}
	return nil
}

// Shutdown waits for in-flight RPCs and forces the stop when ctx expires.
func (g *grpcServer) Shutdown(ctx context.Context) {
	g.logger.Info().Msg("gRPC server shutdown")

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		g.server.Stop()
	}
}
