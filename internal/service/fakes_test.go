package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskhub/taskhub-backend/internal/repository"
)

// In-memory fakes for the repository interfaces. They mirror the store's
// matching rules (trimmed, case-insensitive names; inclusive priority
// bounds) so service behavior can be exercised without a database.

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// ============================================
// Checker fakes
// ============================================

type fakeProjectChecks struct {
	names map[uuid.UUID]string // existing projects: id -> name
}

func newFakeProjectChecks() *fakeProjectChecks {
	return &fakeProjectChecks{names: make(map[uuid.UUID]string)}
}

func (f *fakeProjectChecks) add(name string) uuid.UUID {
	id := uuid.New()
	f.names[id] = name
	return id
}

func (f *fakeProjectChecks) ProjectExists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.names[id]
	return ok, nil
}

func (f *fakeProjectChecks) ProjectNameTaken(_ context.Context, name string) (bool, error) {
	for _, n := range f.names {
		if sameName(n, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProjectChecks) ProjectNameTakenByOther(_ context.Context, name string, excludeID uuid.UUID) (bool, error) {
	for id, n := range f.names {
		if id != excludeID && sameName(n, name) {
			return true, nil
		}
	}
	return false, nil
}

type fakeTaskChecks struct {
	tasks map[uuid.UUID]*repository.ProjectTask
}

func newFakeTaskChecks() *fakeTaskChecks {
	return &fakeTaskChecks{tasks: make(map[uuid.UUID]*repository.ProjectTask)}
}

func (f *fakeTaskChecks) add(projectID uuid.UUID, name string) uuid.UUID {
	id := uuid.New()
	f.tasks[id] = &repository.ProjectTask{ID: id, ProjectID: projectID, TaskName: name}
	return id
}

func (f *fakeTaskChecks) TaskExists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.tasks[id]
	return ok, nil
}

func (f *fakeTaskChecks) TaskBelongsToProject(_ context.Context, taskID, projectID uuid.UUID) (bool, error) {
	t, ok := f.tasks[taskID]
	return ok && t.ProjectID == projectID, nil
}

func (f *fakeTaskChecks) TaskNameTakenInProject(_ context.Context, name string, projectID uuid.UUID) (bool, error) {
	for _, t := range f.tasks {
		if t.ProjectID == projectID && sameName(t.TaskName, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTaskChecks) TaskNameTakenInProjectByOther(_ context.Context, name string, projectID, excludeID uuid.UUID) (bool, error) {
	for id, t := range f.tasks {
		if id != excludeID && t.ProjectID == projectID && sameName(t.TaskName, name) {
			return true, nil
		}
	}
	return false, nil
}

// ============================================
// Repository fakes
// ============================================

type fakeProjectRepo struct {
	projects  map[uuid.UUID]*repository.Project
	createErr error
	updateErr error
	cascaded  []uuid.UUID // ids handed to DeleteWithTasks
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[uuid.UUID]*repository.Project)}
}

func (f *fakeProjectRepo) Create(_ context.Context, p *repository.Project) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.projects[p.ID] = p
	return nil
}

func (f *fakeProjectRepo) FindByID(_ context.Context, id uuid.UUID) (*repository.Project, error) {
	return f.projects[id], nil
}

func (f *fakeProjectRepo) FindByName(_ context.Context, name string) (*repository.Project, error) {
	for _, p := range f.projects {
		if sameName(p.ProjectName, name) {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProjectRepo) FindAll(_ context.Context) ([]*repository.Project, error) {
	var out []*repository.Project
	for _, p := range f.projects {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProjectRepo) FindWithStatus(_ context.Context, status string) ([]*repository.Project, error) {
	var out []*repository.Project
	for _, p := range f.projects {
		if p.ProjectStatus == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) FindInPriorityRange(_ context.Context, low, high int) ([]*repository.Project, error) {
	var out []*repository.Project
	for _, p := range f.projects {
		if p.Priority >= low && p.Priority <= high {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) FindStartInRange(_ context.Context, start, end time.Time) ([]*repository.Project, error) {
	var out []*repository.Project
	for _, p := range f.projects {
		if !p.StartDate.Before(start) && !p.StartDate.After(end) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) FindStartAfter(_ context.Context, start time.Time) ([]*repository.Project, error) {
	var out []*repository.Project
	for _, p := range f.projects {
		if p.StartDate.After(start) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) FindEndBefore(_ context.Context, end time.Time) ([]*repository.Project, error) {
	var out []*repository.Project
	for _, p := range f.projects {
		if p.CompletionDate.Before(end) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) Update(_ context.Context, p *repository.Project) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.projects[p.ID]; !ok {
		return repository.ErrNoRowsAffected
	}
	f.projects[p.ID] = p
	return nil
}

func (f *fakeProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.projects[id]; !ok {
		return repository.ErrNoRowsAffected
	}
	delete(f.projects, id)
	return nil
}

func (f *fakeProjectRepo) DeleteWithTasks(_ context.Context, id uuid.UUID) error {
	if _, ok := f.projects[id]; !ok {
		return repository.ErrNoRowsAffected
	}
	delete(f.projects, id)
	f.cascaded = append(f.cascaded, id)
	return nil
}

// Checker views over the same state, so validators and the repository agree
// in service-level tests.

func (f *fakeProjectRepo) ProjectExists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.projects[id]
	return ok, nil
}

func (f *fakeProjectRepo) ProjectNameTaken(_ context.Context, name string) (bool, error) {
	for _, p := range f.projects {
		if sameName(p.ProjectName, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProjectRepo) ProjectNameTakenByOther(_ context.Context, name string, excludeID uuid.UUID) (bool, error) {
	for id, p := range f.projects {
		if id != excludeID && sameName(p.ProjectName, name) {
			return true, nil
		}
	}
	return false, nil
}

type fakeTaskRepo struct {
	tasks     map[uuid.UUID]*repository.ProjectTask
	createErr error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uuid.UUID]*repository.ProjectTask)}
}

func (f *fakeTaskRepo) Create(_ context.Context, t *repository.ProjectTask) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.tasks[t.ID] = t
	return nil
}

func (f *fakeTaskRepo) FindByID(_ context.Context, id uuid.UUID) (*repository.ProjectTask, error) {
	return f.tasks[id], nil
}

func (f *fakeTaskRepo) FindByName(_ context.Context, name string) (*repository.ProjectTask, error) {
	for _, t := range f.tasks {
		if sameName(t.TaskName, name) {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTaskRepo) FindAll(_ context.Context) ([]*repository.ProjectTask, error) {
	var out []*repository.ProjectTask
	for _, t := range f.tasks {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTaskRepo) FindByProjectID(_ context.Context, projectID uuid.UUID) ([]*repository.ProjectTask, error) {
	var out []*repository.ProjectTask
	for _, t := range f.tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) FindWithStatus(_ context.Context, status string) ([]*repository.ProjectTask, error) {
	var out []*repository.ProjectTask
	for _, t := range f.tasks {
		if t.TaskStatus == status {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) FindInPriorityRange(_ context.Context, low, high int) ([]*repository.ProjectTask, error) {
	var out []*repository.ProjectTask
	for _, t := range f.tasks {
		if t.Priority >= low && t.Priority <= high {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) Update(_ context.Context, t *repository.ProjectTask) error {
	if _, ok := f.tasks[t.ID]; !ok {
		return repository.ErrNoRowsAffected
	}
	f.tasks[t.ID] = t
	return nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.tasks[id]; !ok {
		return repository.ErrNoRowsAffected
	}
	delete(f.tasks, id)
	return nil
}

func (f *fakeTaskRepo) TaskExists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.tasks[id]
	return ok, nil
}

func (f *fakeTaskRepo) TaskBelongsToProject(_ context.Context, taskID, projectID uuid.UUID) (bool, error) {
	t, ok := f.tasks[taskID]
	return ok && t.ProjectID == projectID, nil
}

func (f *fakeTaskRepo) TaskNameTakenInProject(_ context.Context, name string, projectID uuid.UUID) (bool, error) {
	for _, t := range f.tasks {
		if t.ProjectID == projectID && sameName(t.TaskName, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTaskRepo) TaskNameTakenInProjectByOther(_ context.Context, name string, projectID, excludeID uuid.UUID) (bool, error) {
	for id, t := range f.tasks {
		if id != excludeID && t.ProjectID == projectID && sameName(t.TaskName, name) {
			return true, nil
		}
	}
	return false, nil
}
