package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProjectRepository translates validated projects into persistence operations
// and answers filtered read queries. Business validation lives in the service
// layer; the repository trusts its caller.
type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	FindByName(ctx context.Context, name string) (*Project, error)
	FindAll(ctx context.Context) ([]*Project, error)
	FindWithStatus(ctx context.Context, status string) ([]*Project, error)
	FindInPriorityRange(ctx context.Context, low, high int) ([]*Project, error)
	FindStartInRange(ctx context.Context, start, end time.Time) ([]*Project, error)
	FindStartAfter(ctx context.Context, start time.Time) ([]*Project, error)
	FindEndBefore(ctx context.Context, end time.Time) ([]*Project, error)
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteWithTasks(ctx context.Context, id uuid.UUID) error
}

type pgProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) ProjectRepository {
	return &pgProjectRepository{pool: pool}
}

const projectColumns = `id, project_name, start_date, completion_date, project_status, priority, created_at, updated_at`

func scanProject(row pgx.Row) (*Project, error) {
	p := &Project{}
	err := row.Scan(
		&p.ID, &p.ProjectName, &p.StartDate, &p.CompletionDate,
		&p.ProjectStatus, &p.Priority, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *pgProjectRepository) queryProjects(ctx context.Context, query string, args ...any) ([]*Project, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *pgProjectRepository) Create(ctx context.Context, project *Project) error {
	query := `
		INSERT INTO projects (id, project_name, start_date, completion_date, project_status, priority)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		project.ID, project.ProjectName, project.StartDate, project.CompletionDate,
		project.ProjectStatus, project.Priority,
	).Scan(&project.CreatedAt, &project.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateName
	}
	return err
}

func (r *pgProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	p, err := scanProject(r.pool.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// FindByName matches trimmed and case-insensitively.
func (r *pgProjectRepository) FindByName(ctx context.Context, name string) (*Project, error) {
	query := `
		SELECT ` + projectColumns + ` FROM projects
		WHERE lower(btrim(project_name)) = lower(btrim($1))
	`
	p, err := scanProject(r.pool.QueryRow(ctx, query, name))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *pgProjectRepository) FindAll(ctx context.Context) ([]*Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY project_name`
	return r.queryProjects(ctx, query)
}

func (r *pgProjectRepository) FindWithStatus(ctx context.Context, status string) ([]*Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE project_status = $1 ORDER BY project_name`
	return r.queryProjects(ctx, query, status)
}

// FindInPriorityRange uses inclusive bounds: low <= priority <= high.
func (r *pgProjectRepository) FindInPriorityRange(ctx context.Context, low, high int) ([]*Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE priority BETWEEN $1 AND $2 ORDER BY priority`
	return r.queryProjects(ctx, query, low, high)
}

// FindStartInRange uses inclusive bounds on the start date.
func (r *pgProjectRepository) FindStartInRange(ctx context.Context, start, end time.Time) ([]*Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE start_date BETWEEN $1 AND $2 ORDER BY start_date`
	return r.queryProjects(ctx, query, start, end)
}

func (r *pgProjectRepository) FindStartAfter(ctx context.Context, start time.Time) ([]*Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE start_date > $1 ORDER BY start_date`
	return r.queryProjects(ctx, query, start)
}

func (r *pgProjectRepository) FindEndBefore(ctx context.Context, end time.Time) ([]*Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE completion_date < $1 ORDER BY completion_date`
	return r.queryProjects(ctx, query, end)
}

func (r *pgProjectRepository) Update(ctx context.Context, project *Project) error {
	query := `
		UPDATE projects
		SET project_name = $2, start_date = $3, completion_date = $4,
		    project_status = $5, priority = $6, updated_at = NOW()
		WHERE id = $1
	`
	ct, err := r.pool.Exec(ctx, query,
		project.ID, project.ProjectName, project.StartDate, project.CompletionDate,
		project.ProjectStatus, project.Priority,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateName
	}
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func (r *pgProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM projects WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// DeleteWithTasks removes a project's tasks and then the project itself in a
// single transaction, so a partial cascade is never visible.
func (r *pgProjectRepository) DeleteWithTasks(ctx context.Context, id uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM project_tasks WHERE project_id = $1`, id); err != nil {
		return err
	}

	ct, err := tx.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}

	return tx.Commit(ctx)
}
