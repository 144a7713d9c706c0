package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CheckProjectRepository answers point-in-time existence/uniqueness questions
// about projects. All queries are read-only and reflect store state at call
// time; there is no caching, so a check and a later write can still race.
type CheckProjectRepository interface {
	ProjectExists(ctx context.Context, id uuid.UUID) (bool, error)
	ProjectNameTaken(ctx context.Context, name string) (bool, error)
	ProjectNameTakenByOther(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)
}

type pgCheckProjectRepository struct {
	pool *pgxpool.Pool
}

func NewCheckProjectRepository(pool *pgxpool.Pool) CheckProjectRepository {
	return &pgCheckProjectRepository{pool: pool}
}

func (r *pgCheckProjectRepository) ProjectExists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
	return exists, err
}

// ProjectNameTaken compares names trimmed and case-insensitively.
func (r *pgCheckProjectRepository) ProjectNameTaken(ctx context.Context, name string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM projects
			WHERE lower(btrim(project_name)) = lower(btrim($1))
		)
	`
	var taken bool
	err := r.pool.QueryRow(ctx, query, name).Scan(&taken)
	return taken, err
}

// ProjectNameTakenByOther is the update-path variant: a project keeping its
// own name is not a conflict.
func (r *pgCheckProjectRepository) ProjectNameTakenByOther(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM projects
			WHERE lower(btrim(project_name)) = lower(btrim($1)) AND id <> $2
		)
	`
	var taken bool
	err := r.pool.QueryRow(ctx, query, name, excludeID).Scan(&taken)
	return taken, err
}
