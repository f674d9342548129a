// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-qnexus/internal/store"
	"github.com/MKhiriev/go-qnexus/models"
)

func TestProjectService_CreateGetDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.services.ProjectService.CreateProject(ctx, models.CreateProjectRequest{Name: "  "})
	assert.ErrorIs(t, err, models.ErrInvalidArgument)

	project := env.project(t, "scratch")
	assert.NotEmpty(t, project.ID)

	got, err := env.services.ProjectService.GetProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "scratch", got.Name)

	program := env.upload(t, project.ID)
	_, err = env.storages.ArtifactStorage.Load(ctx, program.ContentID)
	require.NoError(t, err)

	require.NoError(t, env.services.ProjectService.DeleteProject(ctx, project.ID))

	_, err = env.services.ProjectService.GetProject(ctx, project.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = env.services.ProgramService.GetProgram(ctx, program.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = env.storages.ArtifactStorage.Load(ctx, program.ContentID)
	assert.ErrorIs(t, err, store.ErrArtifactNotFound)

	err = env.services.ProjectService.DeleteProject(ctx, project.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestProjectService_DeleteKeepsSharedArtifact(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	a := env.project(t, "a")
	b := env.project(t, "b")
	programA := env.upload(t, a.ID)
	programB := env.upload(t, b.ID)
	require.Equal(t, programA.ContentID, programB.ContentID)

	require.NoError(t, env.services.ProjectService.DeleteProject(ctx, a.ID))

	_, err := env.storages.ArtifactStorage.Load(ctx, programB.ContentID)
	assert.NoError(t, err)
}

func TestProgramService_Upload(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.project(t, "uploads")

	ref := env.upload(t, project.ID)
	assert.Equal(t, "teleport", ref.Name)
	assert.Equal(t, project.ID, ref.ProjectID)
	assert.Equal(t, int64(len(readBellExample(t))), ref.Size)
	assert.NotEmpty(t, ref.ContentID)

	got, err := env.services.ProgramService.GetProgram(ctx, ref.ID)
	require.NoError(t, err)
	assert.Equal(t, ref.ContentID, got.ContentID)

	tests := []struct {
		name    string
		upload  models.HUGRUpload
		wantErr error
	}{
		{
			name:    "empty content",
			upload:  models.HUGRUpload{Name: "x", ProjectID: project.ID},
			wantErr: models.ErrInvalidProgram,
		},
		{
			name:    "not a program",
			upload:  models.HUGRUpload{Name: "x", ProjectID: project.ID, Content: []byte("OPENQASM 2.0;")},
			wantErr: models.ErrInvalidProgram,
		},
		{
			name:    "no project",
			upload:  models.HUGRUpload{Name: "x", Content: readBellExample(t)},
			wantErr: models.ErrInvalidArgument,
		},
		{
			name:    "unknown project",
			upload:  models.HUGRUpload{Name: "x", ProjectID: "nope", Content: readBellExample(t)},
			wantErr: models.ErrNotFound,
		},
		{
			name:    "no name",
			upload:  models.HUGRUpload{ProjectID: project.ID, Content: readBellExample(t)},
			wantErr: models.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.services.ProgramService.UploadProgram(ctx, tt.upload)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCostService(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	project := env.project(t, "costs")
	program := env.upload(t, project.ID)

	req := models.CostRequest{ProjectID: project.ID, Programs: []string{program.ID}, NShots: []int{10}}

	cost, err := env.services.CostService.Cost(ctx, req)
	require.NoError(t, err)
	assert.InDelta(t, 5.076, cost.Cost, 1e-9)

	confidence, err := env.services.CostService.CostConfidence(ctx, req)
	require.NoError(t, err)
	require.Len(t, confidence.Confidence, 5)
	assert.InDelta(t, 5.078, confidence.Confidence[0], 1e-9)
	assert.InDelta(t, 5.08, confidence.Confidence[4], 1e-9)
	assert.IsNonDecreasing(t, confidence.Confidence)

	twice := models.CostRequest{ProjectID: project.ID, Programs: []string{program.ID, program.ID}, NShots: []int{10, 10}}
	cost, err = env.services.CostService.Cost(ctx, twice)
	require.NoError(t, err)
	assert.InDelta(t, 10.152, cost.Cost, 1e-9)

	_, err = env.services.CostService.Cost(ctx, models.CostRequest{ProjectID: project.ID, Programs: []string{program.ID}, NShots: []int{10, 20}})
	assert.ErrorIs(t, err, models.ErrInputMismatch)

	_, err = env.services.CostService.CostConfidence(ctx, models.CostRequest{ProjectID: project.ID})
	assert.ErrorIs(t, err, models.ErrInputMismatch)
}
