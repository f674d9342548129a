// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-qnexus/models"
)

const (
	tableProjects = "projects"
	tablePrograms = "programs"
	tableJobs     = "jobs"
	tableResults  = "execution_results"
)

var (
	projectColumns = []string{"id", "name", "description", "created_at", "archived"}
	programColumns = []string{"id", "project_id", "name", "description", "content_id", "size", "created_at"}
	jobColumns     = []string{"id", "project_id", "name", "job_type", "backend_config", "status", "message", "created_at", "updated_at"}
	resultColumns  = []string{"id", "job_id", "idx", "program_id", "project_id", "n_shots"}
)

var terminalStatuses = []string{
	string(models.JobStatusCompleted),
	string(models.JobStatusError),
	string(models.JobStatusCancelled),
}

func buildInsertProjectQuery(b sq.StatementBuilderType, p models.ProjectRef) (string, []any, error) {
	return b.Insert(tableProjects).
		Columns(projectColumns...).
		Values(p.ID, p.Name, p.Description, p.CreatedAt, p.Archived).
		ToSql()
}

func buildSelectProjectQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(projectColumns...).
		From(tableProjects).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteProjectQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(tableProjects).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildSelectProjectContentIDsQuery selects the content ids of a project's
// programs that no program of another project shares.
func buildSelectProjectContentIDsQuery(b sq.StatementBuilderType, projectID string) (string, []any, error) {
	shared := b.Select("1").
		From(tablePrograms + " AS other").
		Where("other.content_id = p.content_id").
		Where(sq.NotEq{"other.project_id": projectID}).
		Prefix("NOT EXISTS (").
		Suffix(")")

	return b.Select("DISTINCT p.content_id").
		From(tablePrograms + " AS p").
		Where(sq.Eq{"p.project_id": projectID}).
		Where(shared).
		ToSql()
}

func buildInsertProgramQuery(b sq.StatementBuilderType, p models.HUGRRef) (string, []any, error) {
	return b.Insert(tablePrograms).
		Columns(programColumns...).
		Values(p.ID, p.ProjectID, p.Name, p.Description, p.ContentID, p.Size, p.CreatedAt).
		ToSql()
}

func buildSelectProgramsQuery(b sq.StatementBuilderType, ids ...string) (string, []any, error) {
	return b.Select(programColumns...).
		From(tablePrograms).
		Where(sq.Eq{"id": ids}).
		ToSql()
}

func buildInsertJobQuery(b sq.StatementBuilderType, job models.Job, backendConfig string) (string, []any, error) {
	return b.Insert(tableJobs).
		Columns(jobColumns...).
		Values(
			job.Ref.ID,
			job.Ref.ProjectID,
			job.Ref.Name,
			string(job.Ref.JobType),
			backendConfig,
			string(job.Status),
			job.Message,
			job.Ref.CreatedAt,
			job.UpdatedAt,
		).
		ToSql()
}

func buildInsertResultsQuery(b sq.StatementBuilderType, results []models.ExecutionResultRef) (string, []any, error) {
	insert := b.Insert(tableResults).Columns(resultColumns...)
	for _, r := range results {
		insert = insert.Values(r.ID, r.JobID, r.Index, r.ProgramID, r.ProjectID, r.NShots)
	}
	return insert.ToSql()
}

func buildSelectJobQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(jobColumns...).
		From(tableJobs).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildUpdateJobStatusQuery(b sq.StatementBuilderType, id string, status models.JobStatusInfo) (string, []any, error) {
	return b.Update(tableJobs).
		Set("status", string(status.Status)).
		Set("message", status.Message).
		Set("updated_at", status.UpdatedAt).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectUnfinishedJobsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("id").
		From(tableJobs).
		Where(sq.NotEq{"status": terminalStatuses}).
		OrderBy("created_at", "id").
		ToSql()
}

func buildSelectResultsQuery(b sq.StatementBuilderType, jobID string) (string, []any, error) {
	return b.Select(resultColumns...).
		From(tableResults).
		Where(sq.Eq{"job_id": jobID}).
		OrderBy("idx").
		ToSql()
}

func buildSelectResultQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(resultColumns...).
		From(tableResults).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectResultPayloadQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select("payload").
		From(tableResults).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildUpdateResultPayloadQuery(b sq.StatementBuilderType, p ResultPayload) (string, []any, error) {
	return b.Update(tableResults).
		Set("payload", string(p.Raw)).
		Where(sq.Eq{"id": p.ResultID}).
		ToSql()
}
