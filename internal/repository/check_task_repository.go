package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CheckTaskRepository answers existence/ownership/uniqueness questions about
// tasks. Read-only, no side effects, safe for concurrent use.
type CheckTaskRepository interface {
	TaskExists(ctx context.Context, id uuid.UUID) (bool, error)
	TaskBelongsToProject(ctx context.Context, taskID, projectID uuid.UUID) (bool, error)
	TaskNameTakenInProject(ctx context.Context, name string, projectID uuid.UUID) (bool, error)
	TaskNameTakenInProjectByOther(ctx context.Context, name string, projectID, excludeID uuid.UUID) (bool, error)
}

type pgCheckTaskRepository struct {
	pool *pgxpool.Pool
}

func NewCheckTaskRepository(pool *pgxpool.Pool) CheckTaskRepository {
	return &pgCheckTaskRepository{pool: pool}
}

func (r *pgCheckTaskRepository) TaskExists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM project_tasks WHERE id = $1)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
	return exists, err
}

// TaskBelongsToProject is true iff the task exists and its owning project
// id matches.
func (r *pgCheckTaskRepository) TaskBelongsToProject(ctx context.Context, taskID, projectID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM project_tasks
			WHERE id = $1 AND project_id = $2
		)
	`
	var belongs bool
	err := r.pool.QueryRow(ctx, query, taskID, projectID).Scan(&belongs)
	return belongs, err
}

// TaskNameTakenInProject is scoped to the given project; the same task name
// may exist in different projects.
func (r *pgCheckTaskRepository) TaskNameTakenInProject(ctx context.Context, name string, projectID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM project_tasks
			WHERE project_id = $2
			  AND lower(btrim(task_name)) = lower(btrim($1))
		)
	`
	var taken bool
	err := r.pool.QueryRow(ctx, query, name, projectID).Scan(&taken)
	return taken, err
}

func (r *pgCheckTaskRepository) TaskNameTakenInProjectByOther(ctx context.Context, name string, projectID, excludeID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM project_tasks
			WHERE project_id = $2
			  AND lower(btrim(task_name)) = lower(btrim($1))
			  AND id <> $3
		)
	`
	var taken bool
	err := r.pool.QueryRow(ctx, query, name, projectID, excludeID).Scan(&taken)
	return taken, err
}
