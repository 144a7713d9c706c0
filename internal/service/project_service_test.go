package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/taskhub/taskhub-backend/internal/repository"
	"github.com/taskhub/taskhub-backend/internal/types"
)

func newProjectServiceForTest() (ProjectService, *fakeProjectRepo, *fakeTaskRepo) {
	projectRepo := newFakeProjectRepo()
	taskRepo := newFakeTaskRepo()
	validator := NewProjectValidator(projectRepo, 100)
	svc := NewProjectService(projectRepo, taskRepo, projectRepo, validator)
	return svc, projectRepo, taskRepo
}

var (
	testStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	testEnd   = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
)

func TestProjectCreate(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newProjectServiceForTest()

	project, err := svc.Create(ctx, "  Alpha ", testStart, testEnd, types.ProjectActive, 10)
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	if project.ID == uuid.Nil {
		t.Error("Create() did not assign an id")
	}
	if project.ProjectName != "Alpha" {
		t.Errorf("Create() stored name %q, want trimmed %q", project.ProjectName, "Alpha")
	}
	if len(repo.projects) != 1 {
		t.Errorf("expected 1 stored project, got %d", len(repo.projects))
	}
}

func TestProjectCreateDuplicateName(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newProjectServiceForTest()

	if _, err := svc.Create(ctx, "Alpha", testStart, testEnd, types.ProjectActive, 10); err != nil {
		t.Fatalf("first Create() returned error: %v", err)
	}

	// Any casing or padding of an existing name is a conflict.
	for _, name := range []string{"Alpha", "ALPHA", " alpha "} {
		if _, err := svc.Create(ctx, name, testStart, testEnd, types.ProjectActive, 10); !errors.Is(err, ErrNameTaken) {
			t.Errorf("Create(%q) = %v, want ErrNameTaken", name, err)
		}
	}
}

func TestProjectCreateMapsStoreConflict(t *testing.T) {
	// The advisory name check can race with a concurrent writer; a unique
	// index violation from the store must surface as the same conflict.
	ctx := context.Background()
	svc, repo, _ := newProjectServiceForTest()
	repo.createErr = repository.ErrDuplicateName

	if _, err := svc.Create(ctx, "Alpha", testStart, testEnd, types.ProjectActive, 10); !errors.Is(err, ErrNameTaken) {
		t.Errorf("Create() = %v, want ErrNameTaken", err)
	}
}

func TestProjectCreateInvalid(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newProjectServiceForTest()

	if _, err := svc.Create(ctx, "Alpha", testEnd, testStart, types.ProjectActive, 10); !errors.Is(err, ErrInvalidDates) {
		t.Errorf("Create() with reversed dates = %v, want ErrInvalidDates", err)
	}
	if _, err := svc.Create(ctx, "Alpha", testStart, testEnd, types.ProjectActive, 0); !errors.Is(err, ErrPriorityOutOfRange) {
		t.Errorf("Create() with priority 0 = %v, want ErrPriorityOutOfRange", err)
	}
	if len(repo.projects) != 0 {
		t.Errorf("rejected creates must not persist anything, found %d projects", len(repo.projects))
	}
}

func TestProjectGetByID(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newProjectServiceForTest()

	created, err := svc.Create(ctx, "Alpha", testStart, testEnd, types.ProjectActive, 10)
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() returned error: %v", err)
	}
	if got.ProjectName != "Alpha" {
		t.Errorf("GetByID() name = %q, want Alpha", got.ProjectName)
	}

	if _, err := svc.GetByID(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID(unknown) = %v, want ErrNotFound", err)
	}
}

func TestProjectGetByName(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newProjectServiceForTest()

	if _, err := svc.Create(ctx, "Alpha", testStart, testEnd, types.ProjectActive, 10); err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	got, err := svc.GetByName(ctx, "  ALPHA ")
	if err != nil {
		t.Fatalf("GetByName() returned error: %v", err)
	}
	if got.ProjectName != "Alpha" {
		t.Errorf("GetByName() name = %q, want Alpha", got.ProjectName)
	}

	if _, err := svc.GetByName(ctx, "Beta"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByName(unknown) = %v, want ErrNotFound", err)
	}
}

func TestProjectUpdate(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newProjectServiceForTest()

	created, err := svc.Create(ctx, "Alpha", testStart, testEnd, types.ProjectActive, 10)
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	// Full replace of mutable fields, identity preserved. Keeping the same
	// name must not conflict with itself.
	updated, err := svc.Update(ctx, created.ID, "Alpha", testStart, testEnd, types.ProjectCompleted, 20)
	if err != nil {
		t.Fatalf("Update() returned error: %v", err)
	}
	if updated.ID != created.ID {
		t.Error("Update() changed the project id")
	}
	if repo.projects[created.ID].ProjectStatus != types.ProjectCompleted {
		t.Errorf("Update() status = %q, want completed", repo.projects[created.ID].ProjectStatus)
	}

	if _, err := svc.Update(ctx, uuid.New(), "Ghost", testStart, testEnd, types.ProjectActive, 10); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(unknown) = %v, want ErrNotFound", err)
	}
}

func TestProjectUpdateNameConflict(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newProjectServiceForTest()

	if _, err := svc.Create(ctx, "Alpha", testStart, testEnd, types.ProjectActive, 10); err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	beta, err := svc.Create(ctx, "Beta", testStart, testEnd, types.ProjectActive, 10)
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}

	if _, err := svc.Update(ctx, beta.ID, "alpha", testStart, testEnd, types.ProjectActive, 10); !errors.Is(err, ErrNameTaken) {
		t.Errorf("Update() onto existing name = %v, want ErrNameTaken", err)
	}
}

func TestProjectDeleteCascades(t *testing.T) {
	ctx := context.Background()
	svc, projectRepo, taskRepo := newProjectServiceForTest()

	created, err := svc.Create(ctx, "Alpha", testStart, testEnd, types.ProjectActive, 10)
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	for i, name := range []string{"one", "two", "three"} {
		id := uuid.New()
		taskRepo.tasks[id] = &repository.ProjectTask{
			ID: id, ProjectID: created.ID, TaskName: name, Priority: i + 1,
		}
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() returned error: %v", err)
	}
	if len(projectRepo.cascaded) != 1 || projectRepo.cascaded[0] != created.ID {
		t.Error("Delete() did not go through the cascading transactional delete")
	}
	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() after delete = %v, want ErrNotFound", err)
	}

	if err := svc.Delete(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(unknown) = %v, want ErrNotFound", err)
	}
}

func TestProjectDeleteWithoutTasks(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newProjectServiceForTest()

	created, err := svc.Create(ctx, "Alpha", testStart, testEnd, types.ProjectActive, 10)
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Errorf("Delete() of a project without tasks = %v, want nil", err)
	}
}

func TestProjectListInPriorityRange(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newProjectServiceForTest()

	for name, priority := range map[string]int{"Low": 5, "Mid": 15, "High": 25} {
		if _, err := svc.Create(ctx, name, testStart, testEnd, types.ProjectActive, priority); err != nil {
			t.Fatalf("Create(%s) returned error: %v", name, err)
		}
	}

	projects, err := svc.ListInPriorityRange(ctx, 10, 20)
	if err != nil {
		t.Fatalf("ListInPriorityRange() returned error: %v", err)
	}
	if len(projects) != 1 || projects[0].ProjectName != "Mid" {
		t.Errorf("ListInPriorityRange(10, 20) = %v, want exactly the priority-15 project", projects)
	}

	// Bounds are inclusive.
	projects, err = svc.ListInPriorityRange(ctx, 5, 15)
	if err != nil {
		t.Fatalf("ListInPriorityRange() returned error: %v", err)
	}
	if len(projects) != 2 {
		t.Errorf("ListInPriorityRange(5, 15) returned %d projects, want 2", len(projects))
	}
}

func TestProjectListTasks(t *testing.T) {
	ctx := context.Background()
	svc, _, taskRepo := newProjectServiceForTest()

	created, err := svc.Create(ctx, "Alpha", testStart, testEnd, types.ProjectActive, 10)
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	id := uuid.New()
	taskRepo.tasks[id] = &repository.ProjectTask{ID: id, ProjectID: created.ID, TaskName: "one"}

	tasks, err := svc.ListTasks(ctx, created.ID)
	if err != nil {
		t.Fatalf("ListTasks() returned error: %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("ListTasks() returned %d tasks, want 1", len(tasks))
	}

	if _, err := svc.ListTasks(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("ListTasks(unknown project) = %v, want ErrNotFound", err)
	}
}
