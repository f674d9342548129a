// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-qnexus/internal/jobfile"
	"github.com/MKhiriev/go-qnexus/internal/service"
	"github.com/MKhiriev/go-qnexus/internal/tui"
	"github.com/MKhiriev/go-qnexus/models"
)

func (a *App) upload(ctx context.Context, args []string) error {
	fs := a.flagSet("upload")
	projectName := fs.String("project", "", "create a project with this name")
	projectID := fs.String("project-id", "", "existing project id")
	name := fs.String("name", "", "program name (default: file name)")
	description := fs.String("description", "", "program description")
	if err := a.parse(fs, args, 1); err != nil {
		return err
	}

	path := fs.Arg(0)
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read program: %w", err)
	}

	project := models.ProjectRef{ID: *projectID}
	if project.ID == "" {
		if *projectName == "" {
			return fmt.Errorf("%w: -project or -project-id is required", ErrUsage)
		}
		project, err = a.services.ProjectService.CreateProject(ctx, *projectName, "")
		if err != nil {
			return err
		}
		fmt.Fprintf(a.errOut, "created project %s (%s)\n", project.ID, project.Name)
	}

	if *name == "" {
		*name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	ref, err := a.services.HUGRService.UploadHUGR(ctx, models.HUGRUpload{
		Name:        *name,
		Description: *description,
		Content:     content,
	}, project)
	if err != nil {
		return err
	}
	return a.printJSON(ref)
}

func (a *App) runJobFile(ctx context.Context, args []string) error {
	fs := a.flagSet("run")
	jobName := fs.String("job", "", "job to run when the file declares several")
	keep := fs.Bool("keep", false, "keep the project after the run")
	plain := fs.Bool("plain", false, "poll without the interactive view")
	timeout := fs.Duration("timeout", 0, "wait timeout")
	if err := a.parse(fs, args, 1); err != nil {
		return err
	}

	file, err := jobfile.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	job, err := file.Job(*jobName)
	if err != nil {
		return err
	}

	run := func(ctx context.Context, project models.ProjectRef) error {
		return a.runJob(ctx, file, job, project, a.waitOptions(*plain, *timeout), *plain)
	}

	if *keep {
		project, err := a.services.ProjectService.CreateProject(ctx, file.Project, file.Description)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "project %s\n", project.ID)
		return run(ctx, project)
	}
	return a.services.ProjectService.WithProject(ctx, file.Project, run)
}

func (a *App) runJob(ctx context.Context, file *jobfile.File, job jobfile.Job, project models.ProjectRef, opts service.WaitOptions, plain bool) error {
	programs := make([]models.HUGRRef, len(job.Programs))
	for i, p := range job.Programs {
		content, err := os.ReadFile(file.ProgramPath(p))
		if err != nil {
			return fmt.Errorf("read program %q: %w", p.Name, err)
		}

		programs[i], err = a.services.HUGRService.UploadHUGR(ctx, models.HUGRUpload{
			Name:        p.Name,
			Description: p.Description,
			Content:     content,
		}, project)
		if err != nil {
			return err
		}
	}

	backend, err := job.Backend.Config()
	if err != nil {
		return err
	}

	ref, err := a.services.JobService.StartExecuteJob(ctx, service.ExecuteJob{
		Name:          job.Name,
		Programs:      programs,
		NShots:        job.NShots(),
		BackendConfig: backend,
		Project:       project,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "job %s submitted\n", ref.ID)

	if _, err = a.waiterFor(plain).WaitForJob(ctx, ref, opts); err != nil {
		return err
	}
	return a.printResults(ctx, ref, job.Version())
}

func (a *App) wait(ctx context.Context, args []string) error {
	fs := a.flagSet("wait")
	plain := fs.Bool("plain", false, "poll without the interactive view")
	timeout := fs.Duration("timeout", 0, "wait timeout")
	if err := a.parse(fs, args, 1); err != nil {
		return err
	}

	info, err := a.waiterFor(*plain).WaitForJob(ctx, models.JobRef{ID: fs.Arg(0)}, a.waitOptions(*plain, *timeout))
	if err != nil {
		return err
	}
	return a.printJSON(info)
}

func (a *App) status(ctx context.Context, args []string) error {
	fs := a.flagSet("status")
	if err := a.parse(fs, args, 1); err != nil {
		return err
	}

	info, err := a.services.JobService.Status(ctx, models.JobRef{ID: fs.Arg(0)})
	if err != nil {
		return err
	}
	return a.printJSON(info)
}

func (a *App) results(ctx context.Context, args []string) error {
	fs := a.flagSet("results")
	version := fs.String("version", "", "result encoding: 3 (collated) or 4 (raw)")
	if err := a.parse(fs, args, 1); err != nil {
		return err
	}

	v, err := models.ParseResultVersion(*version)
	if err != nil {
		return err
	}
	return a.printResults(ctx, models.JobRef{ID: fs.Arg(0)}, v)
}

func (a *App) printResults(ctx context.Context, job models.JobRef, version models.ResultVersion) error {
	handles, err := a.services.JobService.Results(ctx, job)
	if err != nil {
		return err
	}

	for _, h := range handles {
		info, err := h.BackendInfo(ctx)
		if err != nil {
			return err
		}
		payload, err := h.Download(ctx, version)
		if err != nil {
			return err
		}

		fmt.Fprintln(a.out, tui.RenderResult(tui.ResultView{Ref: h.Ref, Backend: info, Payload: payload}))
	}
	return nil
}

func (a *App) cost(ctx context.Context, args []string) error {
	fs := a.flagSet("cost")
	projectID := fs.String("project-id", "", "project the programs belong to")
	system := fs.String("system", models.DefaultCostSystem, "costing system")
	if err := a.parse(fs, args, -1); err != nil {
		return err
	}

	programs, shots, err := parseProgramShots(fs.Args())
	if err != nil {
		return err
	}

	cost, err := a.services.HUGRService.Cost(ctx, programs, shots, models.ProjectRef{ID: *projectID}, *system)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, tui.RenderCost(*system, cost, nil))
	return nil
}

func (a *App) costConfidence(ctx context.Context, args []string) error {
	fs := a.flagSet("cost-confidence")
	projectID := fs.String("project-id", "", "project the programs belong to")
	system := fs.String("system", models.DefaultCostSystem, "costing system")
	if err := a.parse(fs, args, -1); err != nil {
		return err
	}

	programs, shots, err := parseProgramShots(fs.Args())
	if err != nil {
		return err
	}

	confidence, err := a.services.HUGRService.CostConfidence(ctx, programs, shots, models.ProjectRef{ID: *projectID}, *system)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, tui.RenderCost(*system, confidence[0], confidence))
	return nil
}

func (a *App) token(_ context.Context, args []string) error {
	fs := a.flagSet("token")
	if err := a.parse(fs, args, 1); err != nil {
		return err
	}

	token, err := a.services.TokenService.MintToken(fs.Arg(0))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, token)
	return nil
}

func (a *App) waiterFor(plain bool) Waiter {
	if plain {
		return a.services.JobService
	}
	return a.waiter
}

func (a *App) waitOptions(plain bool, timeout time.Duration) service.WaitOptions {
	opts := service.WaitOptions{Timeout: timeout}
	if plain {
		opts.OnStatus = func(info models.JobStatusInfo) {
			fmt.Fprintf(a.errOut, "status %s\n", info.Status)
		}
	}
	return opts
}

// parseProgramShots parses PROGRAM_ID:SHOTS pairs.
func parseProgramShots(args []string) ([]models.HUGRRef, []int, error) {
	programs := make([]models.HUGRRef, 0, len(args))
	shots := make([]int, 0, len(args))

	for _, arg := range args {
		id, n, ok := strings.Cut(arg, ":")
		if !ok || id == "" {
			return nil, nil, fmt.Errorf("%w: %q is not PROGRAM_ID:SHOTS", ErrUsage, arg)
		}
		count, err := strconv.Atoi(n)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: shot count in %q: %w", ErrUsage, arg, err)
		}
		programs = append(programs, models.HUGRRef{ID: id})
		shots = append(shots, count)
	}
	return programs, shots, nil
}
