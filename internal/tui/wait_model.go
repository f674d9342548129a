// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-qnexus/models"
)

// waitModel follows a single job. The wait itself runs outside the model
// and reports through statusMsg and waitDoneMsg.
type waitModel struct {
	job     models.JobRef
	spinner spinner.Model

	current models.JobStatusInfo
	history []models.JobStatus

	done       bool
	info       models.JobStatusInfo
	err        error
	quitByUser bool
	notice     string

	copyToClp func(string) error
}

func newWaitModel(job models.JobRef) waitModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = spinnerStyle

	return waitModel{
		job:       job,
		spinner:   s,
		current:   models.JobStatusInfo{Status: models.JobStatusSubmitted},
		copyToClp: clipboard.WriteAll,
	}
}

func (m waitModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m waitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopyJobID()
		}
	case statusMsg:
		info := models.JobStatusInfo(msg)
		if len(m.history) == 0 || m.history[len(m.history)-1] != info.Status {
			m.history = append(m.history, info.Status)
		}
		m.current = info
	case waitDoneMsg:
		m.done = true
		m.info = msg.info
		m.err = msg.err
		if msg.info.Status != "" {
			m.current = msg.info
		}
		return m, tea.Quit
	case copiedMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.notice = "job id copied"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.notice = ""
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m waitModel) View() string {
	var b strings.Builder

	b.WriteString(field("job", m.job.ID))
	if m.job.Name != "" {
		b.WriteString(field("name", m.job.Name))
	}
	if m.job.BackendConfig != nil {
		b.WriteString(field("backend", backendLabel(m.job.BackendConfig)))
	}

	status := statusStyle(m.current.Status).Render(string(m.current.Status))
	if !m.done {
		status = m.spinner.View() + " " + status
	}
	b.WriteString(field("status", status))

	if m.current.Message != "" {
		b.WriteString(field("message", fitText(m.current.Message, 80)))
	}
	if len(m.history) > 1 {
		steps := make([]string, len(m.history))
		for i, s := range m.history {
			steps[i] = string(s)
		}
		b.WriteString(field("history", strings.Join(steps, " → ")))
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(humanizeError(m.err)))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(helpStyle.Render(m.notice))
		b.WriteString("\n")
	}

	hotKeys := "c: copy job id  q: stop waiting"
	if m.done {
		hotKeys = ""
	}
	return renderPage("Waiting for job", b.String(), hotKeys)
}

func (m waitModel) cmdCopyJobID() tea.Cmd {
	id := m.job.ID
	copyFn := m.copyToClp
	return func() tea.Msg {
		if err := copyFn(id); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
