// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-qnexus/models"
)

const uiDivider = "────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		if !strings.HasSuffix(data, "\n") {
			b.WriteString("\n")
		}
	} else {
		b.WriteString("-\n")
	}

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(uiDivider)
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(hotKeys))
	}

	return appStyle.Render(b.String())
}

func field(label, value string) string {
	if strings.TrimSpace(value) == "" {
		value = "-"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value) + "\n"
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

// backendLabel names the device a job runs on, e.g. "selene (5 qubits)" or
// "Helios-1E-lite emulator (5 qubits)".
func backendLabel(cfg models.BackendConfig) string {
	switch c := cfg.(type) {
	case models.SeleneConfig:
		return fmt.Sprintf("selene (%d qubits)", c.NQubits)
	case *models.SeleneConfig:
		if c == nil {
			return models.BackendTypeSelene
		}
		return backendLabel(*c)
	case models.HeliosConfig:
		if c.EmulatorConfig == nil {
			return c.SystemName
		}
		return fmt.Sprintf("%s emulator (%d qubits)", c.SystemName, c.QubitCapacity())
	case *models.HeliosConfig:
		if c == nil {
			return models.BackendTypeHelios
		}
		return backendLabel(*c)
	default:
		return cfg.BackendType()
	}
}
