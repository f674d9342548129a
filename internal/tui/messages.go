// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-qnexus/models"

type statusMsg models.JobStatusInfo

type waitDoneMsg struct {
	info models.JobStatusInfo
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
