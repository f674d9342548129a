// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-qnexus/internal/adapter"
	"github.com/MKhiriev/go-qnexus/internal/config"
	handlerhttp "github.com/MKhiriev/go-qnexus/internal/handler/http"
	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/internal/service"
	"github.com/MKhiriev/go-qnexus/internal/store"
	"github.com/MKhiriev/go-qnexus/internal/workers"
	"github.com/MKhiriev/go-qnexus/models"
)

var (
	exampleJobFile = filepath.Join("..", "..", "testdata", "example_bell.hcl")
	exampleProgram = filepath.Join("..", "..", "testdata", "example_bell.hugr.json")
)

type testApp struct {
	*App

	out    *bytes.Buffer
	errOut *bytes.Buffer
}

// newTestApp starts a stub service backed by in-memory sqlite and a running
// job pool, and returns a CLI talking to it over HTTP.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), config.Storage{
		DB:    config.DB{DSN: ":memory:"},
		Files: config.Files{ArtifactDir: t.TempDir()},
	}, logger.Nop())
	require.NoError(t, err)

	cfg := config.StructuredConfig{
		App: config.App{
			Version:       "test",
			TokenSignKey:  "cli-test-key",
			TokenIssuer:   "qnexus-test",
			TokenDuration: time.Hour,
			HashKey:       "cli-digest",
		},
		Workers:  config.Workers{PoolSize: 2, QueueSize: 8, PollInterval: 10 * time.Millisecond},
		Emulator: config.Emulator{Mode: "ideal"},
	}

	pool := workers.NewJobPool(cfg.Workers, logger.Nop())
	services, err := service.NewServices(storages, pool, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Go(func() { pool.Runner(services.JobExecutor).Run(ctx) })

	h, err := handlerhttp.NewHandler(services, cfg, logger.Nop())
	require.NoError(t, err)
	srv := httptest.NewServer(h.Init())

	t.Cleanup(func() {
		srv.Close()
		cancel()
		wg.Wait()
		storages.Close()
	})

	clientCfg := config.NewClientConfig(&cfg)
	clientCfg.Adapter = config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 5 * time.Second}
	clientCfg.Workers = config.ClientWorkers{PollInterval: 10 * time.Millisecond, WaitTimeout: 10 * time.Second}

	token, err := service.NewClientTokenService(clientCfg.App).MintToken("cli")
	require.NoError(t, err)
	clientCfg.Adapter.Token = token

	serverAdapter, err := adapter.NewHTTPServerAdapter(clientCfg.Adapter, clientCfg.App, logger.Nop())
	require.NoError(t, err)
	clientServices := service.NewClientServices(serverAdapter, *clientCfg, logger.Nop())

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return &testApp{
		App:    NewApp(clientServices, nil, out, errOut, logger.Nop()),
		out:    out,
		errOut: errOut,
	}
}

func (a *testApp) reset() {
	a.out.Reset()
	a.errOut.Reset()
}

var jobIDPattern = regexp.MustCompile(`job (\S+) submitted`)

func TestApp_RunJobFile(t *testing.T) {
	app := newTestApp(t)

	err := app.Run(context.Background(), []string{"run", "-plain", exampleJobFile})
	require.NoError(t, err)

	out := app.out.String()
	assert.Regexp(t, jobIDPattern, out)
	assert.Contains(t, out, "Result #0")
	assert.Contains(t, out, "selene")
	assert.Contains(t, out, "teleported=1")
	assert.Contains(t, app.errOut.String(), "status COMPLETED")
}

func TestApp_RunKeepThenResults(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, app.Run(ctx, []string{"run", "-plain", "-keep", exampleJobFile}))
	m := jobIDPattern.FindStringSubmatch(app.out.String())
	require.Len(t, m, 2)
	jobID := m[1]

	app.reset()
	require.NoError(t, app.Run(ctx, []string{"results", "-version", "4", jobID}))
	assert.Contains(t, app.out.String(), "USER:BOOL:teleported=1")

	app.reset()
	require.NoError(t, app.Run(ctx, []string{"status", jobID}))
	var info models.JobStatusInfo
	require.NoError(t, json.Unmarshal(app.out.Bytes(), &info))
	assert.Equal(t, models.JobStatusCompleted, info.Status)

	app.reset()
	require.NoError(t, app.Run(ctx, []string{"wait", "-plain", jobID}))
	assert.Contains(t, app.out.String(), "COMPLETED")

	err := app.Run(ctx, []string{"results", "-version", "7", jobID})
	assert.ErrorIs(t, err, models.ErrDecodeVersionUnsupported)
}

func TestApp_UploadAndCost(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, app.Run(ctx, []string{"upload", "-project", "costing", exampleProgram}))
	assert.Contains(t, app.errOut.String(), "created project")

	var ref models.HUGRRef
	require.NoError(t, json.Unmarshal(app.out.Bytes(), &ref))
	assert.Equal(t, "example_bell.hugr", ref.Name)
	require.NotEmpty(t, ref.ProjectID)

	app.reset()
	require.NoError(t, app.Run(ctx, []string{"cost", "-project-id", ref.ProjectID, ref.ID + ":10"}))
	assert.Contains(t, app.out.String(), "5.076")

	app.reset()
	require.NoError(t, app.Run(ctx, []string{"cost-confidence", "-project-id", ref.ProjectID, ref.ID + ":10"}))
	assert.Contains(t, app.out.String(), "level 0")

	err := app.Run(ctx, []string{"cost", "-project-id", ref.ProjectID, ref.ID + ":10", ref.ID + ":0"})
	assert.ErrorIs(t, err, models.ErrInputMismatch)
}

func TestApp_Usage(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	err := app.Run(ctx, nil)
	assert.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, app.errOut.String(), "cost-confidence")

	err = app.Run(ctx, []string{"teleport"})
	assert.ErrorIs(t, err, ErrUnknownCommand)

	err = app.Run(ctx, []string{"wait"})
	assert.ErrorIs(t, err, ErrUsage)

	err = app.Run(ctx, []string{"upload", exampleProgram})
	assert.ErrorIs(t, err, ErrUsage)

	err = app.Run(ctx, []string{"cost", "-project-id", "p", "no-shots"})
	assert.ErrorIs(t, err, ErrUsage)

	err = app.Run(ctx, []string{"status", "missing-job"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestApp_Token(t *testing.T) {
	app := newTestApp(t)

	require.NoError(t, app.Run(context.Background(), []string{"token", "alice"}))
	assert.Regexp(t, `^[\w-]+\.[\w-]+\.[\w-]+\n$`, app.out.String())
}

func TestParseProgramShots(t *testing.T) {
	programs, shots, err := parseProgramShots([]string{"a:10", "b:20"})
	require.NoError(t, err)
	assert.Equal(t, []models.HUGRRef{{ID: "a"}, {ID: "b"}}, programs)
	assert.Equal(t, []int{10, 20}, shots)

	_, _, err = parseProgramShots([]string{"a:x"})
	assert.ErrorIs(t, err, ErrUsage)
	_, _, err = parseProgramShots([]string{":10"})
	assert.ErrorIs(t, err, ErrUsage)
}
