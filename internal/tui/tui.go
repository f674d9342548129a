// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/internal/service"
	"github.com/MKhiriev/go-qnexus/models"
)

type TUI struct {
	jobs service.ClientJobService
	in   io.Reader
	out  io.Writer

	logger *logger.Logger
}

func New(jobs service.ClientJobService, logger *logger.Logger) *TUI {
	return &TUI{jobs: jobs, in: os.Stdin, out: os.Stdout, logger: logger}
}

// WaitForJob waits for job like [service.ClientJobService.WaitForJob]
// while showing its progress. Quitting the view cancels the wait and
// returns ErrUserQuit.
func (t *TUI) WaitForJob(ctx context.Context, job models.JobRef, opts service.WaitOptions) (models.JobStatusInfo, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newWaitModel(job),
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)

	onStatus := opts.OnStatus
	opts.OnStatus = func(info models.JobStatusInfo) {
		if onStatus != nil {
			onStatus(info)
		}
		p.Send(statusMsg(info))
	}

	go func() {
		info, err := t.jobs.WaitForJob(ctx, job, opts)
		p.Send(waitDoneMsg{info: info, err: err})
	}()

	final, runErr := p.Run()
	result, ok := final.(waitModel)
	switch {
	case ok && result.done:
		return result.info, result.err
	case ok && result.quitByUser:
		return models.JobStatusInfo{}, ErrUserQuit
	case runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled):
		t.logger.Err(runErr).Str("func", "*TUI.WaitForJob").Msg("wait view failed")
		return models.JobStatusInfo{}, runErr
	default:
		if err := ctx.Err(); err != nil {
			return models.JobStatusInfo{}, err
		}
		return models.JobStatusInfo{}, tea.ErrProgramKilled
	}
}
