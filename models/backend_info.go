// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BackendInfo describes the target a result was produced on.
type BackendInfo struct {
	Name                          string            `json:"name"`
	DeviceName                    string            `json:"device_name"`
	Version                       string            `json:"version"`
	NQubits                       int               `json:"n_qubits"`
	GateSet                       []string          `json:"gate_set"`
	SupportsMidCircuitMeasurement bool              `json:"supports_midcircuit_measurement"`
	Misc                          map[string]string `json:"misc,omitempty"`
}
