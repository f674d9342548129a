// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// JobStatus is the lifecycle state of a job.
type JobStatus string

const (
	JobStatusSubmitted JobStatus = "SUBMITTED"
	JobStatusQueued    JobStatus = "QUEUED"
	JobStatusRunning   JobStatus = "RUNNING"
	JobStatusCompleted JobStatus = "COMPLETED"
	JobStatusError     JobStatus = "ERROR"
	JobStatusCancelled JobStatus = "CANCELLED"
)

// IsTerminal reports whether no further transitions are possible.
func (s JobStatus) IsTerminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusError, JobStatusCancelled:
		return true
	default:
		return false
	}
}

// IsFailure reports whether s is a terminal state without results.
func (s JobStatus) IsFailure() bool {
	return s == JobStatusError || s == JobStatusCancelled
}

// JobStatusInfo is a point-in-time view of a job's status.
type JobStatusInfo struct {
	Status    JobStatus `json:"status"`
	Message   string    `json:"message,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ExecuteJobRequest submits one or more programs for execution. Programs and
// NShots are parallel lists.
type ExecuteJobRequest struct {
	Name          string        `json:"name"`
	ProjectID     string        `json:"project_id"`
	Programs      []string      `json:"programs"`
	NShots        []int         `json:"n_shots"`
	BackendConfig BackendConfig `json:"backend_config"`
}

// MarshalJSON encodes the backend config as a tagged envelope.
func (r ExecuteJobRequest) MarshalJSON() ([]byte, error) {
	type alias ExecuteJobRequest
	aux := struct {
		alias
		BackendConfig json.RawMessage `json:"backend_config"`
	}{alias: alias(r)}

	raw, err := MarshalBackendConfig(r.BackendConfig)
	if err != nil {
		return nil, err
	}
	aux.BackendConfig = raw

	return json.Marshal(aux)
}

// UnmarshalJSON decodes the tagged backend config envelope.
func (r *ExecuteJobRequest) UnmarshalJSON(data []byte) error {
	type alias ExecuteJobRequest
	aux := struct {
		*alias
		BackendConfig json.RawMessage `json:"backend_config"`
	}{alias: (*alias)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if len(aux.BackendConfig) == 0 || string(aux.BackendConfig) == "null" {
		return ErrUnknownBackendConfig
	}

	cfg, err := UnmarshalBackendConfig(aux.BackendConfig)
	if err != nil {
		return err
	}
	r.BackendConfig = cfg

	return nil
}

// Job is the stub service's record of a submitted job.
type Job struct {
	Ref JobRef

	Programs  []string
	NShots    []int
	Status    JobStatus
	Message   string
	UpdatedAt time.Time
}

// StatusInfo returns the externally visible status of the job.
func (j Job) StatusInfo() JobStatusInfo {
	return JobStatusInfo{Status: j.Status, Message: j.Message, UpdatedAt: j.UpdatedAt}
}

// ValidateShots reports ErrInputMismatch unless programs is non-empty,
// nShots has the same length and every shot count is positive.
func ValidateShots(programs []string, nShots []int) error {
	if len(programs) == 0 {
		return fmt.Errorf("%w: no programs given", ErrInputMismatch)
	}
	if len(programs) != len(nShots) {
		return fmt.Errorf("%w: %d programs, %d shot counts", ErrInputMismatch, len(programs), len(nShots))
	}
	for i, n := range nShots {
		if n <= 0 {
			return fmt.Errorf("%w: shot count %d at index %d", ErrInputMismatch, n, i)
		}
	}
	return nil
}
