// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package hugr inspects uploaded program artifacts.
//
// The artifact layout is owned by the compiler toolchain. This package only
// reads what the stub service needs: the optional envelope header, the JSON
// node list, the declared result tags, qubit allocations and gate counts used
// for costing. Artifacts it cannot read are still accepted for upload; they
// simply declare no results.
package hugr
