package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNoRowsAffected reports a write that committed but touched 0 rows.
	ErrNoRowsAffected = errors.New("no rows affected")
	// ErrDuplicateName reports a unique-index violation on a name column.
	// The index is the authoritative guard; the validation-layer name check
	// is advisory and can race with concurrent writers.
	ErrDuplicateName = errors.New("name already taken")
)

// ============================================
// Entities
// ============================================

type Project struct {
	ID             uuid.UUID
	ProjectName    string
	StartDate      time.Time
	CompletionDate time.Time
	ProjectStatus  string
	Priority       int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ProjectTask struct {
	ID              uuid.UUID
	ProjectID       uuid.UUID
	TaskName        string
	TaskStatus      string
	TaskDescription string
	Priority        int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ============================================
// Repositories Container
// ============================================

type Repositories struct {
	ProjectRepo      ProjectRepository
	TaskRepo         TaskRepository
	CheckProjectRepo CheckProjectRepository
	CheckTaskRepo    CheckTaskRepository
}

func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		ProjectRepo:      NewProjectRepository(pool),
		TaskRepo:         NewTaskRepository(pool),
		CheckProjectRepo: NewCheckProjectRepository(pool),
		CheckTaskRepo:    NewCheckTaskRepository(pool),
	}
}

// isUniqueViolation reports whether err is a PostgreSQL unique_violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
