// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-qnexus/models"
)

var (
	appStyle     = lipgloss.NewStyle().Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	labelStyle   = lipgloss.NewStyle().Faint(true).Width(12)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

var statusColors = map[models.JobStatus]lipgloss.Color{
	models.JobStatusSubmitted: lipgloss.Color("8"),
	models.JobStatusQueued:    lipgloss.Color("11"),
	models.JobStatusRunning:   lipgloss.Color("12"),
	models.JobStatusCompleted: lipgloss.Color("10"),
	models.JobStatusError:     lipgloss.Color("9"),
	models.JobStatusCancelled: lipgloss.Color("13"),
}

func statusStyle(s models.JobStatus) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	if c, ok := statusColors[s]; ok {
		style = style.Foreground(c)
	}
	return style
}
