package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TaskRepository persists project tasks and answers filtered read queries.
type TaskRepository interface {
	Create(ctx context.Context, task *ProjectTask) error
	FindByID(ctx context.Context, id uuid.UUID) (*ProjectTask, error)
	FindByName(ctx context.Context, name string) (*ProjectTask, error)
	FindAll(ctx context.Context) ([]*ProjectTask, error)
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*ProjectTask, error)
	FindWithStatus(ctx context.Context, status string) ([]*ProjectTask, error)
	FindInPriorityRange(ctx context.Context, low, high int) ([]*ProjectTask, error)
	Update(ctx context.Context, task *ProjectTask) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type pgTaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) TaskRepository {
	return &pgTaskRepository{pool: pool}
}

const taskColumns = `id, project_id, task_name, task_status, task_description, priority, created_at, updated_at`

func scanTask(row pgx.Row) (*ProjectTask, error) {
	t := &ProjectTask{}
	err := row.Scan(
		&t.ID, &t.ProjectID, &t.TaskName, &t.TaskStatus,
		&t.TaskDescription, &t.Priority, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *pgTaskRepository) queryTasks(ctx context.Context, query string, args ...any) ([]*ProjectTask, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*ProjectTask
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *pgTaskRepository) Create(ctx context.Context, task *ProjectTask) error {
	query := `
		INSERT INTO project_tasks (id, project_id, task_name, task_status, task_description, priority)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		task.ID, task.ProjectID, task.TaskName, task.TaskStatus,
		task.TaskDescription, task.Priority,
	).Scan(&task.CreatedAt, &task.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateName
	}
	return err
}

func (r *pgTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*ProjectTask, error) {
	query := `SELECT ` + taskColumns + ` FROM project_tasks WHERE id = $1`
	t, err := scanTask(r.pool.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// FindByName matches trimmed and case-insensitively. Task names are only
// unique per project, so this returns the first match by creation time.
func (r *pgTaskRepository) FindByName(ctx context.Context, name string) (*ProjectTask, error) {
	query := `
		SELECT ` + taskColumns + ` FROM project_tasks
		WHERE lower(btrim(task_name)) = lower(btrim($1))
		ORDER BY created_at
		LIMIT 1
	`
	t, err := scanTask(r.pool.QueryRow(ctx, query, name))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *pgTaskRepository) FindAll(ctx context.Context) ([]*ProjectTask, error) {
	query := `SELECT ` + taskColumns + ` FROM project_tasks ORDER BY task_name`
	return r.queryTasks(ctx, query)
}

func (r *pgTaskRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*ProjectTask, error) {
	query := `SELECT ` + taskColumns + ` FROM project_tasks WHERE project_id = $1 ORDER BY task_name`
	return r.queryTasks(ctx, query, projectID)
}

func (r *pgTaskRepository) FindWithStatus(ctx context.Context, status string) ([]*ProjectTask, error) {
	query := `SELECT ` + taskColumns + ` FROM project_tasks WHERE task_status = $1 ORDER BY task_name`
	return r.queryTasks(ctx, query, status)
}

// FindInPriorityRange uses inclusive bounds: low <= priority <= high.
func (r *pgTaskRepository) FindInPriorityRange(ctx context.Context, low, high int) ([]*ProjectTask, error) {
	query := `SELECT ` + taskColumns + ` FROM project_tasks WHERE priority BETWEEN $1 AND $2 ORDER BY priority`
	return r.queryTasks(ctx, query, low, high)
}

func (r *pgTaskRepository) Update(ctx context.Context, task *ProjectTask) error {
	query := `
		UPDATE project_tasks
		SET task_name = $2, task_status = $3, task_description = $4,
		    priority = $5, updated_at = NOW()
		WHERE id = $1
	`
	ct, err := r.pool.Exec(ctx, query,
		task.ID, task.TaskName, task.TaskStatus, task.TaskDescription, task.Priority,
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

func (r *pgTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM project_tasks WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
