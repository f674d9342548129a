// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/internal/service"
)

var commandUsage = map[string]string{
	"upload":          "upload [-project NAME | -project-id ID] [-name NAME] [-description TEXT] FILE",
	"run":             "run [-job NAME] [-keep] [-plain] [-timeout D] FILE.hcl",
	"wait":            "wait [-plain] [-timeout D] JOB_ID",
	"status":          "status JOB_ID",
	"results":         "results [-version 3|4] JOB_ID",
	"cost":            "cost -project-id ID [-system NAME] PROGRAM_ID:SHOTS...",
	"cost-confidence": "cost-confidence -project-id ID [-system NAME] PROGRAM_ID:SHOTS...",
	"token":           "token CLIENT",
}

var commands = map[string]func(a *App, ctx context.Context, args []string) error{
	"upload":          (*App).upload,
	"run":             (*App).runJobFile,
	"wait":            (*App).wait,
	"status":          (*App).status,
	"results":         (*App).results,
	"cost":            (*App).cost,
	"cost-confidence": (*App).costConfidence,
	"token":           (*App).token,
}

type App struct {
	services *service.ClientServices
	waiter   Waiter

	out    io.Writer
	errOut io.Writer

	logger *logger.Logger
}

// NewApp returns the CLI. waiter follows jobs unless a command is run with
// -plain, in which case the job service polls without a view.
func NewApp(services *service.ClientServices, waiter Waiter, out, errOut io.Writer, logger *logger.Logger) *App {
	if waiter == nil {
		waiter = services.JobService
	}
	return &App{
		services: services,
		waiter:   waiter,
		out:      out,
		errOut:   errOut,
		logger:   logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	name, rest := args[0], args[1:]
	run, ok := commands[name]
	if !ok {
		a.usage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	a.logger.Debug().Str("func", "*App.Run").Str("command", name).Strs("args", rest).Msg("running command")

	if err := run(a, ctx, rest); err != nil {
		a.logger.Err(err).Str("func", "*App.Run").Str("command", name).Msg("command failed")
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (a *App) usage() {
	names := make([]string, 0, len(commandUsage))
	for name := range commandUsage {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("usage: qnexus [flags] COMMAND [args]\n\ncommands:\n")
	for _, name := range names {
		b.WriteString("  ")
		b.WriteString(commandUsage[name])
		b.WriteString("\n")
	}
	fmt.Fprint(a.errOut, b.String())
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	fs.Usage = func() {
		fmt.Fprintf(a.errOut, "usage: qnexus %s\n", commandUsage[name])
		fs.PrintDefaults()
	}
	return fs
}

func (a *App) parse(fs *flag.FlagSet, args []string, nArgs int) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if nArgs >= 0 && fs.NArg() != nArgs {
		fs.Usage()
		return fmt.Errorf("%w: expected %d argument(s), got %d", ErrUsage, nArgs, fs.NArg())
	}
	return nil
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
