// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultCostSystem is the syntax-checker device used for cost estimates when
// the request does not name one.
const DefaultCostSystem = "Helios-1SC"

// CostRequest asks for a cost estimate of running Programs with the matching
// NShots.
type CostRequest struct {
	ProjectID  string   `json:"project_id"`
	Programs   []string `json:"programs"`
	NShots     []int    `json:"n_shots"`
	SystemName string   `json:"system_name,omitempty"`
}

// CostResponse carries a single point estimate.
type CostResponse struct {
	Cost float64 `json:"cost"`
}

// CostConfidenceResponse carries estimates ordered by increasing confidence
// level.
type CostConfidenceResponse struct {
	Confidence []float64 `json:"confidence"`
}
