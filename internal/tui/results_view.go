// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-qnexus/internal/qsys"
	"github.com/MKhiriev/go-qnexus/models"
)

const (
	maxShownShots = 5
	maxBarWidth   = 30
)

// ResultView is everything RenderResult shows for one result.
type ResultView struct {
	Ref     models.ExecutionResultRef
	Backend models.BackendInfo
	Payload models.ExecutionPayload
}

// RenderResult draws a result box: identity, backend, the first shots and,
// for collated payloads, a histogram of outcome counts.
func RenderResult(v ResultView) string {
	var b strings.Builder

	b.WriteString(field("result", v.Ref.ID))
	b.WriteString(field("program", v.Ref.ProgramID))
	b.WriteString(field("backend", v.Backend.Name))
	if v.Payload == nil {
		return boxStyle.Render(titleStyle.Render(fmt.Sprintf("Result #%d", v.Ref.Index)) + "\n" + b.String())
	}

	b.WriteString(field("encoding", v.Payload.Version().String()))
	b.WriteString(field("shots", strconv.Itoa(v.Payload.NShots())))

	var shots []models.QsysShot
	switch p := v.Payload.(type) {
	case *models.QsysResult:
		shots = p.Results
	case *models.RawQsysResult:
		shots = p.Results
	}

	for i, shot := range shots {
		if i == maxShownShots {
			b.WriteString(helpStyle.Render(fmt.Sprintf("… %d more shots", len(shots)-maxShownShots)))
			b.WriteString("\n")
			break
		}
		b.WriteString(field(fmt.Sprintf("shot %d", i), renderShot(shot)))
	}

	if collated, ok := v.Payload.(*models.QsysResult); ok {
		if counts := qsys.CollatedCounts(collated); len(counts) > 0 {
			b.WriteString("\n")
			b.WriteString(renderCounts(counts))
		}
	}

	return boxStyle.Render(titleStyle.Render(fmt.Sprintf("Result #%d", v.Ref.Index)) + "\n" + strings.TrimRight(b.String(), "\n"))
}

func renderShot(shot models.QsysShot) string {
	parts := make([]string, len(shot.Entries))
	for i, e := range shot.Entries {
		parts[i] = e.Tag + "=" + e.Value.String()
	}
	return fitText(strings.Join(parts, " "), 80)
}

func renderCounts(counts qsys.Counts) string {
	total := counts.Total()
	if total == 0 {
		return ""
	}

	rows := counts.Sorted()
	keyWidth := 0
	for _, r := range rows {
		keyWidth = max(keyWidth, len(r.Key))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("counts"))
	b.WriteString("\n")
	for _, r := range rows {
		width := max(r.Count*maxBarWidth/total, 1)
		fmt.Fprintf(&b, "%-*s %s %d\n", keyWidth, r.Key, barStyle.Render(strings.Repeat("█", width)), r.Count)
	}
	return b.String()
}

// RenderCost draws a point estimate and, if given, the confidence list.
func RenderCost(systemName string, cost float64, confidence []float64) string {
	var b strings.Builder

	b.WriteString(field("system", systemName))
	b.WriteString(field("cost", strconv.FormatFloat(cost, 'f', -1, 64)))
	for i, c := range confidence {
		b.WriteString(field(fmt.Sprintf("level %d", i), strconv.FormatFloat(c, 'f', -1, 64)))
	}

	return renderPage("Cost estimate", b.String(), "")
}
