// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ProjectRef identifies a project. Every uploaded program and every submitted
// job belongs to exactly one project.
type ProjectRef struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Archived    bool      `json:"archived"`
}

// HUGRRef identifies an uploaded program artifact. It is immutable once
// created.
type HUGRRef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ProjectID   string `json:"project_id"`

	// ContentID is the CIDv1 of the uploaded bytes.
	ContentID string    `json:"content_id"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// JobType names the kind of work a job performs.
type JobType string

const (
	JobTypeExecute JobType = "execute"
)

// JobRef identifies a submitted job.
type JobRef struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	ProjectID     string        `json:"project_id"`
	JobType       JobType       `json:"job_type"`
	BackendConfig BackendConfig `json:"backend_config"`
	CreatedAt     time.Time     `json:"created_at"`
}

// ExecutionResultRef identifies the result of one program inside a completed
// execute job. Index is the position of the program in the submission.
type ExecutionResultRef struct {
	ID        string `json:"id"`
	JobID     string `json:"job_id"`
	Index     int    `json:"index"`
	ProgramID string `json:"program_id"`
	ProjectID string `json:"project_id"`
	NShots    int    `json:"n_shots"`
}

// CreateProjectRequest is the body of a project creation call.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// HUGRUpload carries a compiled program to be uploaded.
type HUGRUpload struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ProjectID   string `json:"project_id"`

	// Content is the serialized program. It travels base64-encoded in JSON.
	Content []byte `json:"content"`
}
