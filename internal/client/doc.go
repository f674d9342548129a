// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the qnexus command line application.
//
// It maps subcommands onto the client services: uploading programs,
// estimating their cost, running HCL job files end to end and inspecting
// jobs and results by id.
package client
