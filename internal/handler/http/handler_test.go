// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-qnexus/internal/config"
	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/internal/service"
	"github.com/MKhiriev/go-qnexus/internal/store"
	"github.com/MKhiriev/go-qnexus/internal/utils"
	"github.com/MKhiriev/go-qnexus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Test server
// ─────────────────────────────────────────────

type nopQueue struct {
	mu  sync.Mutex
	ids []string
}

func (q *nopQueue) Enqueue(_ context.Context, jobID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ids = append(q.ids, jobID)
	return nil
}

type testServer struct {
	*httptest.Server

	services *service.Services
	token    string
	hasher   *utils.Hasher
}

func newTestServer(t *testing.T, hashKey string) *testServer {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), config.Storage{
		DB:    config.DB{DSN: ":memory:"},
		Files: config.Files{ArtifactDir: t.TempDir()},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	cfg := config.StructuredConfig{
		App: config.App{
			Version:       "1.2.3",
			TokenSignKey:  "test-key",
			TokenIssuer:   "qnexus-test",
			TokenDuration: time.Hour,
			HashKey:       hashKey,
		},
		Emulator: config.Emulator{Mode: "ideal"},
	}

	services, err := service.NewServices(storages, &nopQueue{}, cfg, logger.Nop())
	require.NoError(t, err)

	h, err := NewHandler(services, cfg, logger.Nop())
	require.NoError(t, err)

	token, err := services.AuthService.CreateToken(context.Background(), "tester")
	require.NoError(t, err)

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	ts := &testServer{Server: srv, services: services, token: token.String()}
	if hashKey != "" {
		ts.hasher, err = utils.NewHasher(hashKey)
		require.NoError(t, err)
	}
	return ts
}

// do sends body as JSON with the test token and digest, and decodes the
// response into out when it is not nil.
func (s *testServer) do(t *testing.T, method, path string, body, out any) *http.Response {
	t.Helper()

	var reader io.Reader
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, s.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+s.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		if s.hasher != nil {
			req.Header.Set(utils.DigestHeader, s.hasher.HashString(payload))
		}
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil && len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, out), string(data))
	}
	return resp
}

func readBellExample(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "..", "testdata", "example_bell.hugr.json"))
	require.NoError(t, err)
	return data
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_Digest(t *testing.T) {
	h, err := NewHandler(&service.Services{}, config.StructuredConfig{}, logger.Nop())
	require.NoError(t, err)
	assert.Nil(t, h.hasher)

	h, err = NewHandler(&service.Services{}, config.StructuredConfig{App: config.App{HashKey: "k"}}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, h.hasher)
}

func TestNewHandler_TooLongHashKey(t *testing.T) {
	key := string(bytes.Repeat([]byte("k"), 65))
	_, err := NewHandler(&service.Services{}, config.StructuredConfig{App: config.App{HashKey: key}}, logger.Nop())
	assert.Error(t, err)
}

// ─────────────────────────────────────────────
// Routes
// ─────────────────────────────────────────────

func TestVersion_IsPublic(t *testing.T) {
	srv := newTestServer(t, "")

	resp, err := http.Get(srv.URL + "/api/version")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1.2.3", string(body))
	assert.NotEmpty(t, resp.Header.Get(traceIDHeader))
}

func TestJobLifecycle(t *testing.T) {
	srv := newTestServer(t, "")
	ctx := context.Background()

	var project models.ProjectRef
	resp := srv.do(t, http.MethodPost, "/api/v1/projects", models.CreateProjectRequest{Name: "bell"}, &project)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, project.ID)

	var program models.HUGRRef
	resp = srv.do(t, http.MethodPost, "/api/v1/hugr", models.HUGRUpload{
		Name:      "teleport",
		ProjectID: project.ID,
		Content:   readBellExample(t),
	}, &program)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, project.ID, program.ProjectID)
	assert.NotEmpty(t, program.ContentID)

	var fetched models.HUGRRef
	resp = srv.do(t, http.MethodGet, "/api/v1/hugr/"+program.ID, nil, &fetched)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, program.ID, fetched.ID)

	costReq := models.CostRequest{ProjectID: project.ID, Programs: []string{program.ID}, NShots: []int{10}}

	var cost models.CostResponse
	resp = srv.do(t, http.MethodPost, "/api/v1/hugr/cost", costReq, &cost)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.InDelta(t, 5.076, cost.Cost, 1e-9)

	var confidence models.CostConfidenceResponse
	resp = srv.do(t, http.MethodPost, "/api/v1/hugr/cost-confidence", costReq, &confidence)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, confidence.Confidence)

	var job models.JobRef
	resp = srv.do(t, http.MethodPost, "/api/v1/jobs/execute", models.ExecuteJobRequest{
		Name:          "teleport-run",
		ProjectID:     project.ID,
		Programs:      []string{program.ID},
		NShots:        []int{10},
		BackendConfig: models.SeleneConfig{NQubits: 5},
	}, &job)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, models.SeleneConfig{NQubits: 5}, job.BackendConfig)

	var errResp models.ErrorResponse
	resp = srv.do(t, http.MethodGet, "/api/v1/jobs/"+job.ID+"/results", nil, &errResp)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "result_not_ready", errResp.Code)

	require.NoError(t, srv.services.JobExecutor.ExecuteJob(ctx, job.ID))

	var status models.JobStatusInfo
	resp = srv.do(t, http.MethodGet, "/api/v1/jobs/"+job.ID+"/status", nil, &status)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.JobStatusCompleted, status.Status)

	var results []models.ExecutionResultRef
	resp = srv.do(t, http.MethodGet, "/api/v1/jobs/"+job.ID+"/results", nil, &results)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, results, 1)
	resultID := results[0].ID

	var input models.HUGRRef
	resp = srv.do(t, http.MethodGet, "/api/v1/results/"+resultID+"/input", nil, &input)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, program.ID, input.ID)

	var info models.BackendInfo
	resp = srv.do(t, http.MethodGet, "/api/v1/results/"+resultID+"/backend-info", nil, &info)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 5, info.NQubits)

	var collated models.QsysResult
	resp = srv.do(t, http.MethodGet, "/api/v1/results/"+resultID, nil, &collated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "3", resp.Header.Get(ResultVersionHeader))
	require.Len(t, collated.Results, 10)
	assert.Equal(t, models.Entry{Tag: "teleported", Value: models.IntValue(1)}, collated.Results[0].Entries[0])

	var raw models.RawQsysResult
	resp = srv.do(t, http.MethodGet, "/api/v1/results/"+resultID+"?version=4", nil, &raw)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "4", resp.Header.Get(ResultVersionHeader))
	require.Len(t, raw.Results, 10)
	assert.Equal(t, models.Entry{Tag: "USER:BOOL:teleported", Value: models.IntValue(1)}, raw.Results[0].Entries[0])

	resp = srv.do(t, http.MethodGet, "/api/v1/results/"+resultID+"?version=7", nil, &errResp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "decode_version_unsupported", errResp.Code)

	resp = srv.do(t, http.MethodDelete, "/api/v1/projects/"+project.ID, nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = srv.do(t, http.MethodGet, "/api/v1/projects/"+project.ID, nil, &errResp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not_found", errResp.Code)
}

func TestExecuteJob_Rejected(t *testing.T) {
	srv := newTestServer(t, "")

	var project models.ProjectRef
	srv.do(t, http.MethodPost, "/api/v1/projects", models.CreateProjectRequest{Name: "p"}, &project)

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantCode   string
	}{
		{
			name: "mismatched lists",
			body: models.ExecuteJobRequest{
				ProjectID:     project.ID,
				Programs:      []string{"a", "b"},
				NShots:        []int{10},
				BackendConfig: models.SeleneConfig{NQubits: 5},
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "input_mismatch",
		},
		{
			name:       "missing backend config",
			body:       map[string]any{"project_id": project.ID, "programs": []string{"a"}, "n_shots": []int{1}},
			wantStatus: http.StatusBadRequest,
			wantCode:   "unknown_backend_config",
		},
		{
			name:       "unknown backend config",
			body:       map[string]any{"project_id": project.ID, "programs": []string{"a"}, "n_shots": []int{1}, "backend_config": map[string]any{"type": "QuantinuumConfig"}},
			wantStatus: http.StatusBadRequest,
			wantCode:   "unknown_backend_config",
		},
		{
			name:       "malformed body",
			body:       "not an object",
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_argument",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errResp models.ErrorResponse
			resp := srv.do(t, http.MethodPost, "/api/v1/jobs/execute", tt.body, &errResp)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantCode, errResp.Code)
			assert.NotEmpty(t, errResp.Message)
		})
	}
}

func TestUploadProgram_Empty(t *testing.T) {
	srv := newTestServer(t, "")

	var project models.ProjectRef
	srv.do(t, http.MethodPost, "/api/v1/projects", models.CreateProjectRequest{Name: "p"}, &project)

	var errResp models.ErrorResponse
	resp := srv.do(t, http.MethodPost, "/api/v1/hugr", models.HUGRUpload{Name: "x", ProjectID: project.ID}, &errResp)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid_program", errResp.Code)
}

func TestRouting_NotFoundAndMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, "")

	var errResp models.ErrorResponse
	resp := srv.do(t, http.MethodGet, "/api/v1/unknown", nil, &errResp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not_found", errResp.Code)

	resp = srv.do(t, http.MethodPut, "/api/v1/projects/some-id", nil, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "GET, DELETE", resp.Header.Get("Allow"))
}

// ─────────────────────────────────────────────
// statusFromError
// ─────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"input mismatch", models.ErrInputMismatch, http.StatusBadRequest},
		{"not found", store.ErrJobNotFound, http.StatusNotFound},
		{"unauthorized", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"not ready", models.ErrResultNotReady, http.StatusConflict},
		{"job failed", models.ErrJobFailed, http.StatusConflict},
		{"constraint inside statement error", errors.Join(store.ErrExecutingStatement, store.ErrForeignKey), http.StatusBadRequest},
		{"duplicate inside statement error", errors.Join(store.ErrExecutingStatement, store.ErrAlreadyExists), http.StatusConflict},
		{"plain query error", store.ErrExecutingQuery, http.StatusInternalServerError},
		{"unknown", io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_HidesInternalErrors(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeError(rr, req, "test", errors.Join(store.ErrExecutingQuery, io.ErrUnexpectedEOF))

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "internal", errResp.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), errResp.Message)
}
