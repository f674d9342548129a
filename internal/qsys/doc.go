// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package qsys holds pure functions over execution result payloads: raw tag
// parsing, conversion from the raw encoding to the collated one, and
// aggregation of shots into outcome counts.
package qsys
