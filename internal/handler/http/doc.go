// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the stub job service.
//
// Routes live under /api/v1 and require a bearer token; /api/version is
// public. Request tracing, access logging, gzip, authentication and the
// optional body digest check run as middleware before a request reaches a
// handler.
// Errors are written as {"code", "message"} JSON with a status taken from
// errorStatusMap.
package http
