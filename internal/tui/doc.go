// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the terminal views of the qnexus CLI: an interactive
// wait view that follows a job until it reaches a terminal state, and static
// renderers for results and cost estimates.
package tui
