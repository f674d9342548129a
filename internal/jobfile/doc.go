// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package jobfile decodes HCL job definition files used by the qnexus CLI.
//
// A file names the project the jobs run in and declares one or more jobs:
//
//	project = "teleport examples"
//
//	job "teleport" {
//	  program "bell" {
//	    path    = "example_bell.hugr.json"
//	    n_shots = 10
//	  }
//
//	  backend "selene" {
//	    n_qubits = env.N_QUBITS
//	  }
//	}
//
// Expressions can read the process environment through the env object and
// call a small set of string and numeric functions. Program paths are
// resolved relative to the directory of the file.
package jobfile
