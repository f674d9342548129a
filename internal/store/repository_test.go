// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/models"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		dialect:            dialectPostgres,
		placeholder:        sq.Dollar,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateProject_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectExec("INSERT INTO projects").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.CreateProject(context.Background(), models.ProjectRef{ID: "p", Name: "n"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProject_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM projects WHERE id = \\$1").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetProject(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteProject_NotFoundRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT DISTINCT p.content_id").
		WithArgs("p", "p").
		WillReturnRows(sqlmock.NewRows([]string{"content_id"}))
	mock.ExpectExec("DELETE FROM projects").
		WithArgs("p").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.DeleteProject(context.Background(), "p")
	assert.ErrorIs(t, err, ErrProjectNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProject_ReturnsOrphanedContentIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT DISTINCT p.content_id").
		WillReturnRows(sqlmock.NewRows([]string{"content_id"}).AddRow("cid-a").AddRow("cid-b"))
	mock.ExpectExec("DELETE FROM projects").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	orphaned, err := repo.DeleteProject(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, []string{"cid-a", "cid-b"}, orphaned)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPrograms_PreservesOrderAndReportsMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProgramRepository(db)
	now := time.Now()

	rows := sqlmock.NewRows(programColumns).
		AddRow("b", "x", "second", "", "cid-b", 2, now).
		AddRow("a", "x", "first", "", "cid-a", 1, now)
	mock.ExpectQuery("SELECT (.+) FROM programs WHERE id IN").
		WithArgs("a", "b").
		WillReturnRows(rows)

	programs, err := repo.GetPrograms(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	require.Len(t, programs, 2)
	assert.Equal(t, "first", programs[0].Name)
	assert.Equal(t, "second", programs[1].Name)

	mock.ExpectQuery("SELECT (.+) FROM programs").
		WillReturnRows(sqlmock.NewRows(programColumns).AddRow("a", "x", "first", "", "cid-a", 1, now))

	_, err = repo.GetPrograms(context.Background(), []string{"a", "zzz"})
	assert.ErrorIs(t, err, ErrProgramNotFound)
}

func TestCreateJob_InsertsJobAndResultsInOneTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJobRepository(db)
	now := time.Now()

	job := models.Job{
		Ref: models.JobRef{
			ID:            "j",
			ProjectID:     "x",
			Name:          "bell",
			JobType:       models.JobTypeExecute,
			BackendConfig: models.SeleneConfig{NQubits: 5},
			CreatedAt:     now,
		},
		Status:    models.JobStatusSubmitted,
		UpdatedAt: now,
	}
	results := []models.ExecutionResultRef{{ID: "r", JobID: "j", ProgramID: "p", ProjectID: "x", NShots: 10}}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO jobs").
		WithArgs("j", "x", "bell", "execute", `{"type":"SeleneConfig","n_qubits":5}`, "SUBMITTED", "", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO execution_results").
		WithArgs("r", "j", 0, "p", "x", 10).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.CreateJob(context.Background(), job, results))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateJob_ForeignKeyViolationRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJobRepository(db)

	job := models.Job{Ref: models.JobRef{ID: "j", BackendConfig: models.SeleneConfig{NQubits: 1}}}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO jobs").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
	mock.ExpectRollback()

	err := repo.CreateJob(context.Background(), job, []models.ExecutionResultRef{{ID: "r"}})
	assert.ErrorIs(t, err, ErrForeignKey)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateJob_UnknownBackendConfig(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewJobRepository(db)

	err := repo.CreateJob(context.Background(), models.Job{}, nil)
	assert.ErrorIs(t, err, ErrEncodingColumn)
	assert.ErrorIs(t, err, models.ErrUnknownBackendConfig)
}

func TestGetJob_DecodesBackendConfigAndPrograms(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJobRepository(db)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM jobs WHERE id = \\$1").
		WithArgs("j").
		WillReturnRows(sqlmock.NewRows(jobColumns).AddRow(
			"j", "x", "bell", "execute",
			`{"type":"HeliosConfig","system_name":"Helios-1E","emulator_config":{"n_qubits":8}}`,
			"RUNNING", "", now, now,
		))
	mock.ExpectQuery("SELECT (.+) FROM execution_results WHERE job_id = \\$1 ORDER BY idx").
		WithArgs("j").
		WillReturnRows(sqlmock.NewRows(resultColumns).
			AddRow("r0", "j", 0, "p0", "x", 10).
			AddRow("r1", "j", 1, "p1", "x", 20))

	job, err := repo.GetJob(context.Background(), "j")
	require.NoError(t, err)

	assert.Equal(t, models.JobStatusRunning, job.Status)
	assert.Equal(t, []string{"p0", "p1"}, job.Programs)
	assert.Equal(t, []int{10, 20}, job.NShots)

	helios, ok := job.Ref.BackendConfig.(models.HeliosConfig)
	require.True(t, ok)
	assert.Equal(t, "Helios-1E", helios.SystemName)
	assert.Equal(t, 8, helios.QubitCapacity())
}

func TestGetJob_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJobRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM jobs").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetJob(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestUpdateJobStatus_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJobRepository(db)

	mock.ExpectExec("UPDATE jobs SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateJobStatus(context.Background(), "nope", models.JobStatusInfo{Status: models.JobStatusQueued})
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestCompleteJob_StoresPayloadsThenStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJobRepository(db)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE execution_results SET payload").
		WithArgs(`{"results":[]}`, "r0").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE jobs SET status").
		WithArgs("COMPLETED", "", now, "j").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CompleteJob(context.Background(), "j",
		[]ResultPayload{{ResultID: "r0", Raw: []byte(`{"results":[]}`)}},
		models.JobStatusInfo{Status: models.JobStatusCompleted, UpdatedAt: now})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteJob_MissingResultRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJobRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE execution_results SET payload").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.CompleteJob(context.Background(), "j",
		[]ResultPayload{{ResultID: "gone"}},
		models.JobStatusInfo{Status: models.JobStatusCompleted})
	assert.ErrorIs(t, err, ErrResultNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListUnfinishedJobs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewJobRepository(db)

	mock.ExpectQuery("SELECT id FROM jobs WHERE status NOT IN").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a").AddRow("b"))

	ids, err := repo.ListUnfinishedJobs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestGetResultPayload(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewResultRepository(db)

	t.Run("stored", func(t *testing.T) {
		mock.ExpectQuery("SELECT payload FROM execution_results").
			WithArgs("r").
			WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(`{"results":[]}`))

		raw, err := repo.GetResultPayload(context.Background(), "r")
		require.NoError(t, err)
		assert.JSONEq(t, `{"results":[]}`, string(raw))
	})

	t.Run("not yet stored", func(t *testing.T) {
		mock.ExpectQuery("SELECT payload FROM execution_results").
			WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(nil))

		_, err := repo.GetResultPayload(context.Background(), "r")
		assert.ErrorIs(t, err, ErrPayloadMissing)
	})

	t.Run("unknown result", func(t *testing.T) {
		mock.ExpectQuery("SELECT payload FROM execution_results").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetResultPayload(context.Background(), "r")
		assert.ErrorIs(t, err, ErrResultNotFound)
	})
}

func TestErrorClassifiers(t *testing.T) {
	pgClassifier := NewPostgresErrorClassifier()
	liteClassifier := NewSQLiteErrorClassifier()

	tests := []struct {
		name       string
		err        error
		retryable  bool
		constraint error
	}{
		{name: "pg deadlock", err: pgError(pgerrcode.DeadlockDetected), retryable: true},
		{name: "pg unique", err: pgError(pgerrcode.UniqueViolation), constraint: ErrAlreadyExists},
		{name: "pg foreign key", err: pgError(pgerrcode.ForeignKeyViolation), constraint: ErrForeignKey},
		{name: "sqlite busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, retryable: true},
		{name: "sqlite unique", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, constraint: ErrAlreadyExists},
		{name: "sqlite foreign key", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, constraint: ErrForeignKey},
		{name: "plain", err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, IsRetryable(tt.err))

			got := liteClassifier.Constraint(pgClassifier.Constraint(tt.err))
			if tt.constraint == nil {
				assert.Equal(t, tt.err, got)
				return
			}
			assert.ErrorIs(t, got, tt.constraint)
		})
	}
}
