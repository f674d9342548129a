// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package emulator runs inspected programs on stand-in backends and prices
// them. It produces results with the same shape as the hosted service without
// simulating any quantum state.
package emulator
