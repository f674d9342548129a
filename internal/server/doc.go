// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the transport servers of the stub job service.
//
// The HTTP server serves the REST API and the gRPC server serves the health
// service. Both stop gracefully when the context passed to RunServer is
// done.
package server
