// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-qnexus/internal/config"
	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/internal/mock"
	"github.com/MKhiriev/go-qnexus/internal/utils"
	"github.com/MKhiriev/go-qnexus/models"
)

func newMockClientServices(t *testing.T) (*ClientServices, *mock.MockServerAdapter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	cfg := config.ClientConfig{
		App: config.ClientApp{
			TokenSignKey:  "secret",
			TokenIssuer:   "qnexus-test",
			TokenDuration: time.Hour,
		},
		Workers: config.ClientWorkers{PollInterval: time.Millisecond, WaitTimeout: time.Second},
	}
	return NewClientServices(serverAdapter, cfg, logger.Nop()), serverAdapter
}

var (
	testProject = models.ProjectRef{ID: "p-1", Name: "bell"}
	testProgram = models.HUGRRef{ID: "h-1", Name: "teleport", ProjectID: "p-1"}
	testJob     = models.JobRef{ID: "j-1", ProjectID: "p-1", JobType: models.JobTypeExecute}
)

func TestClientJobService_StartExecuteJob(t *testing.T) {
	tests := []struct {
		name    string
		req     ExecuteJob
		wantErr error
	}{
		{
			name:    "length mismatch",
			req:     ExecuteJob{Programs: []models.HUGRRef{testProgram}, NShots: []int{10, 20}, BackendConfig: models.SeleneConfig{NQubits: 5}, Project: testProject},
			wantErr: models.ErrInputMismatch,
		},
		{
			name:    "no programs",
			req:     ExecuteJob{BackendConfig: models.SeleneConfig{NQubits: 5}, Project: testProject},
			wantErr: models.ErrInputMismatch,
		},
		{
			name:    "zero shots",
			req:     ExecuteJob{Programs: []models.HUGRRef{testProgram}, NShots: []int{0}, BackendConfig: models.SeleneConfig{NQubits: 5}, Project: testProject},
			wantErr: models.ErrInputMismatch,
		},
		{
			name:    "nil backend",
			req:     ExecuteJob{Programs: []models.HUGRRef{testProgram}, NShots: []int{10}, Project: testProject},
			wantErr: models.ErrUnknownBackendConfig,
		},
		{
			name:    "no project",
			req:     ExecuteJob{Programs: []models.HUGRRef{testProgram}, NShots: []int{10}, BackendConfig: models.SeleneConfig{NQubits: 5}},
			wantErr: models.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no EXPECT: any adapter call fails the test
			services, _ := newMockClientServices(t)

			_, err := services.JobService.StartExecuteJob(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientJobService_StartExecuteJob_Sends(t *testing.T) {
	services, serverAdapter := newMockClientServices(t)

	serverAdapter.EXPECT().
		ExecuteJob(gomock.Any(), models.ExecuteJobRequest{
			Name:          "run",
			ProjectID:     "p-1",
			Programs:      []string{"h-1"},
			NShots:        []int{10},
			BackendConfig: models.SeleneConfig{NQubits: 5},
		}).
		Return(testJob, nil)

	job, err := services.JobService.StartExecuteJob(context.Background(), ExecuteJob{
		Name:          "run",
		Programs:      []models.HUGRRef{testProgram},
		NShots:        []int{10},
		BackendConfig: models.SeleneConfig{NQubits: 5},
		Project:       testProject,
	})
	require.NoError(t, err)
	assert.Equal(t, testJob, job)
}

func TestClientJobService_WaitForJob(t *testing.T) {
	t.Run("completes", func(t *testing.T) {
		services, serverAdapter := newMockClientServices(t)

		gomock.InOrder(
			serverAdapter.EXPECT().JobStatus(gomock.Any(), "j-1").Return(models.JobStatusInfo{Status: models.JobStatusQueued}, nil),
			serverAdapter.EXPECT().JobStatus(gomock.Any(), "j-1").Return(models.JobStatusInfo{Status: models.JobStatusRunning}, nil),
			serverAdapter.EXPECT().JobStatus(gomock.Any(), "j-1").Return(models.JobStatusInfo{Status: models.JobStatusCompleted}, nil),
		)

		var seen []models.JobStatus
		info, err := services.JobService.WaitForJob(context.Background(), testJob, WaitOptions{
			OnStatus: func(i models.JobStatusInfo) { seen = append(seen, i.Status) },
		})
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusCompleted, info.Status)
		assert.Equal(t, []models.JobStatus{models.JobStatusQueued, models.JobStatusRunning, models.JobStatusCompleted}, seen)
	})

	t.Run("failed", func(t *testing.T) {
		services, serverAdapter := newMockClientServices(t)

		serverAdapter.EXPECT().JobStatus(gomock.Any(), "j-1").
			Return(models.JobStatusInfo{Status: models.JobStatusError, Message: "program requires 6 qubits"}, nil)

		info, err := services.JobService.WaitForJob(context.Background(), testJob, WaitOptions{})
		assert.ErrorIs(t, err, models.ErrJobFailed)
		assert.ErrorContains(t, err, "program requires 6 qubits")
		assert.Equal(t, models.JobStatusError, info.Status)
	})

	t.Run("cancelled", func(t *testing.T) {
		services, serverAdapter := newMockClientServices(t)

		serverAdapter.EXPECT().JobStatus(gomock.Any(), "j-1").
			Return(models.JobStatusInfo{Status: models.JobStatusCancelled}, nil)

		_, err := services.JobService.WaitForJob(context.Background(), testJob, WaitOptions{})
		assert.ErrorIs(t, err, models.ErrJobFailed)
	})

	t.Run("timeout", func(t *testing.T) {
		services, serverAdapter := newMockClientServices(t)

		serverAdapter.EXPECT().JobStatus(gomock.Any(), "j-1").
			Return(models.JobStatusInfo{Status: models.JobStatusRunning}, nil).
			AnyTimes()

		_, err := services.JobService.WaitForJob(context.Background(), testJob, WaitOptions{
			Interval: time.Millisecond,
			Timeout:  20 * time.Millisecond,
		})
		assert.ErrorIs(t, err, models.ErrJobTimeout)
	})

	t.Run("caller cancels", func(t *testing.T) {
		services, serverAdapter := newMockClientServices(t)

		ctx, cancel := context.WithCancel(context.Background())
		serverAdapter.EXPECT().JobStatus(gomock.Any(), "j-1").
			DoAndReturn(func(context.Context, string) (models.JobStatusInfo, error) {
				cancel()
				return models.JobStatusInfo{Status: models.JobStatusRunning}, nil
			})

		_, err := services.JobService.WaitForJob(ctx, testJob, WaitOptions{Interval: time.Hour})
		assert.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, models.ErrJobTimeout)
	})

	t.Run("status error", func(t *testing.T) {
		services, serverAdapter := newMockClientServices(t)

		serverAdapter.EXPECT().JobStatus(gomock.Any(), "j-1").
			Return(models.JobStatusInfo{}, models.ErrNotFound)

		_, err := services.JobService.WaitForJob(context.Background(), testJob, WaitOptions{})
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestClientJobService_Results(t *testing.T) {
	services, serverAdapter := newMockClientServices(t)

	refs := []models.ExecutionResultRef{
		{ID: "r-0", JobID: "j-1", Index: 0, ProgramID: "h-1", NShots: 10},
		{ID: "r-1", JobID: "j-1", Index: 1, ProgramID: "h-2", NShots: 20},
	}
	serverAdapter.EXPECT().JobResults(gomock.Any(), "j-1").Return(refs, nil)

	handles, err := services.JobService.Results(context.Background(), testJob)
	require.NoError(t, err)
	require.Len(t, handles, 2)
	assert.Equal(t, refs[0], handles[0].Ref)
	assert.Equal(t, refs[1], handles[1].Ref)

	serverAdapter.EXPECT().JobResults(gomock.Any(), "j-1").Return(nil, models.ErrResultNotReady)
	_, err = services.JobService.Results(context.Background(), testJob)
	assert.ErrorIs(t, err, models.ErrResultNotReady)
}

func TestResultHandle_CachesPerVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	collated := &models.QsysResult{Results: []models.QsysShot{
		{Entries: []models.Entry{{Tag: "teleported", Value: models.BoolValue(true)}}},
	}}
	raw := &models.RawQsysResult{Results: []models.QsysShot{
		{Entries: []models.Entry{{Tag: "USER:BOOL:teleported", Value: models.IntValue(1)}}},
	}}

	serverAdapter.EXPECT().DownloadResult(gomock.Any(), "r-0", models.ResultVersionDefault).Return(collated, nil).Times(1)
	serverAdapter.EXPECT().DownloadResult(gomock.Any(), "r-0", models.ResultVersionRaw).Return(raw, nil).Times(1)
	serverAdapter.EXPECT().BackendInfo(gomock.Any(), "r-0").Return(models.BackendInfo{Name: "selene", NQubits: 5}, nil).Times(1)
	serverAdapter.EXPECT().ResultInput(gomock.Any(), "r-0").Return(testProgram, nil).Times(1)

	h := NewResultHandle(models.ExecutionResultRef{ID: "r-0"}, serverAdapter)
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			c, err := h.Collated(ctx)
			assert.NoError(t, err)
			assert.Same(t, collated, c)

			r, err := h.Raw(ctx)
			assert.NoError(t, err)
			assert.Same(t, raw, r)

			info, err := h.BackendInfo(ctx)
			assert.NoError(t, err)
			assert.Equal(t, "selene", info.Name)

			input, err := h.Input(ctx)
			assert.NoError(t, err)
			assert.Equal(t, testProgram.ID, input.ID)
		})
	}
	wg.Wait()
}

func TestResultHandle_UnsupportedVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	h := NewResultHandle(models.ExecutionResultRef{ID: "r-0"}, serverAdapter)
	_, err := h.Download(context.Background(), models.ResultVersion(7))
	assert.ErrorIs(t, err, models.ErrDecodeVersionUnsupported)
}

func TestResultHandle_ErrorNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	gomock.InOrder(
		serverAdapter.EXPECT().BackendInfo(gomock.Any(), "r-0").Return(models.BackendInfo{}, errors.New("connection reset")),
		serverAdapter.EXPECT().BackendInfo(gomock.Any(), "r-0").Return(models.BackendInfo{Name: "selene"}, nil),
	)

	h := NewResultHandle(models.ExecutionResultRef{ID: "r-0"}, serverAdapter)
	_, err := h.BackendInfo(context.Background())
	require.Error(t, err)

	info, err := h.BackendInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "selene", info.Name)
}

func TestClientHUGRService_Upload(t *testing.T) {
	services, serverAdapter := newMockClientServices(t)
	ctx := context.Background()

	_, err := services.HUGRService.UploadHUGR(ctx, models.HUGRUpload{Name: "empty"}, testProject)
	assert.ErrorIs(t, err, models.ErrInvalidProgram)

	_, err = services.HUGRService.UploadHUGR(ctx, models.HUGRUpload{Name: "x", Content: []byte("{}")}, models.ProjectRef{})
	assert.ErrorIs(t, err, models.ErrInvalidArgument)

	serverAdapter.EXPECT().
		UploadHUGR(gomock.Any(), models.HUGRUpload{Name: "teleport", ProjectID: "p-1", Content: []byte("{}")}).
		Return(testProgram, nil)

	ref, err := services.HUGRService.UploadHUGR(ctx, models.HUGRUpload{Name: " teleport ", Content: []byte("{}")}, testProject)
	require.NoError(t, err)
	assert.Equal(t, testProgram, ref)
}

func TestClientHUGRService_Cost(t *testing.T) {
	services, serverAdapter := newMockClientServices(t)
	ctx := context.Background()
	programs := []models.HUGRRef{testProgram}

	_, err := services.HUGRService.Cost(ctx, programs, []int{10, 10}, testProject, "")
	assert.ErrorIs(t, err, models.ErrInputMismatch)
	_, err = services.HUGRService.CostConfidence(ctx, programs, nil, testProject, "")
	assert.ErrorIs(t, err, models.ErrInputMismatch)

	serverAdapter.EXPECT().
		Cost(gomock.Any(), models.CostRequest{ProjectID: "p-1", Programs: []string{"h-1"}, NShots: []int{10}, SystemName: models.DefaultCostSystem}).
		Return(models.CostResponse{Cost: 5.076}, nil)

	cost, err := services.HUGRService.Cost(ctx, programs, []int{10}, testProject, "")
	require.NoError(t, err)
	assert.InDelta(t, 5.076, cost, 1e-9)

	serverAdapter.EXPECT().
		CostConfidence(gomock.Any(), models.CostRequest{ProjectID: "p-1", Programs: []string{"h-1"}, NShots: []int{10}, SystemName: "H2-1SC"}).
		Return(models.CostConfidenceResponse{Confidence: []float64{5.076, 5.1}}, nil)

	confidence, err := services.HUGRService.CostConfidence(ctx, programs, []int{10}, testProject, "H2-1SC")
	require.NoError(t, err)
	assert.Equal(t, []float64{5.076, 5.1}, confidence)

	serverAdapter.EXPECT().CostConfidence(gomock.Any(), gomock.Any()).Return(models.CostConfidenceResponse{}, nil)
	_, err = services.HUGRService.CostConfidence(ctx, programs, []int{10}, testProject, "")
	assert.Error(t, err)
}

func TestClientProjectService_WithProject(t *testing.T) {
	callbackErr := errors.New("callback failed")
	deleteErr := errors.New("delete failed")

	tests := []struct {
		name      string
		callback  error
		deleteErr error
		wantErrs  []error
	}{
		{name: "success"},
		{name: "callback error", callback: callbackErr, wantErrs: []error{callbackErr}},
		{name: "teardown error", deleteErr: deleteErr, wantErrs: []error{deleteErr}},
		{name: "both fail", callback: callbackErr, deleteErr: deleteErr, wantErrs: []error{callbackErr, deleteErr}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services, serverAdapter := newMockClientServices(t)

			gomock.InOrder(
				serverAdapter.EXPECT().CreateProject(gomock.Any(), models.CreateProjectRequest{Name: "bell"}).Return(testProject, nil),
				serverAdapter.EXPECT().DeleteProject(gomock.Any(), "p-1").Return(tt.deleteErr),
			)

			var got models.ProjectRef
			err := services.ProjectService.WithProject(context.Background(), "bell", func(ctx context.Context, project models.ProjectRef) error {
				got = project
				return tt.callback
			})
			assert.Equal(t, testProject, got)

			if len(tt.wantErrs) == 0 {
				assert.NoError(t, err)
			}
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestClientProjectService_WithProject_Panic(t *testing.T) {
	services, serverAdapter := newMockClientServices(t)

	serverAdapter.EXPECT().CreateProject(gomock.Any(), gomock.Any()).Return(testProject, nil)
	serverAdapter.EXPECT().DeleteProject(gomock.Any(), "p-1").Return(nil)

	assert.PanicsWithValue(t, "boom", func() {
		_ = services.ProjectService.WithProject(context.Background(), "bell", func(context.Context, models.ProjectRef) error {
			panic("boom")
		})
	})
}

func TestClientProjectService_WithProject_CancelledContext(t *testing.T) {
	services, serverAdapter := newMockClientServices(t)

	ctx, cancel := context.WithCancel(context.Background())
	serverAdapter.EXPECT().CreateProject(gomock.Any(), gomock.Any()).Return(testProject, nil)
	serverAdapter.EXPECT().DeleteProject(gomock.Any(), "p-1").
		DoAndReturn(func(ctx context.Context, _ string) error {
			return ctx.Err()
		})

	err := services.ProjectService.WithProject(ctx, "bell", func(context.Context, models.ProjectRef) error {
		cancel()
		return nil
	})
	assert.NoError(t, err)
}

func TestClientProjectService_CreateFails(t *testing.T) {
	services, serverAdapter := newMockClientServices(t)

	_, err := services.ProjectService.CreateProject(context.Background(), " ", "")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)

	serverAdapter.EXPECT().CreateProject(gomock.Any(), gomock.Any()).Return(models.ProjectRef{}, models.ErrUnauthorized)

	called := false
	err = services.ProjectService.WithProject(context.Background(), "bell", func(context.Context, models.ProjectRef) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, models.ErrUnauthorized)
	assert.False(t, called)
}

func TestClientTokenService_MintToken(t *testing.T) {
	services, _ := newMockClientServices(t)

	signed, err := services.TokenService.MintToken("alice")
	require.NoError(t, err)

	token, err := utils.ValidateAndParseJWTToken(signed, "secret", "qnexus-test")
	require.NoError(t, err)
	client, err := token.GetClient()
	require.NoError(t, err)
	assert.Equal(t, "alice", client)

	_, err = services.TokenService.MintToken("")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)

	_, err = NewClientTokenService(config.ClientApp{}).MintToken("alice")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
