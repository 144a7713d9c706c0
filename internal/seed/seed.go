// internal/seed/seed.go
package seed

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/taskhub/taskhub-backend/internal/repository"
	"github.com/taskhub/taskhub-backend/internal/types"
)

// SeedData inserts a small set of development projects and tasks. It is a
// no-op when projects already exist.
func SeedData(repos *repository.Repositories) {
	ctx := context.Background()

	existing, err := repos.ProjectRepo.FindAll(ctx)
	if err != nil {
		log.Printf("[Seed] ⚠️ Failed to check existing data: %v", err)
		return
	}
	if len(existing) > 0 {
		log.Println("[Seed] Data already exists, skipping...")
		return
	}

	log.Println("[Seed] 🌱 Creating initial data...")

	fancy := &repository.Project{
		ID:             uuid.New(),
		ProjectName:    "New fancy project",
		StartDate:      time.Date(2016, 11, 23, 0, 0, 0, 0, time.UTC),
		CompletionDate: time.Date(2017, 3, 20, 0, 0, 0, 0, time.UTC),
		ProjectStatus:  types.ProjectActive,
		Priority:       42,
	}
	second := &repository.Project{
		ID:             uuid.New(),
		ProjectName:    "Second fancy project",
		StartDate:      time.Date(2010, 5, 23, 0, 0, 0, 0, time.UTC),
		CompletionDate: time.Date(2012, 1, 15, 0, 0, 0, 0, time.UTC),
		ProjectStatus:  types.ProjectActive,
		Priority:       27,
	}

	for _, p := range []*repository.Project{fancy, second} {
		if err := repos.ProjectRepo.Create(ctx, p); err != nil {
			log.Printf("[Seed] ⚠️ Failed to create project %q: %v", p.ProjectName, err)
			return
		}
	}

	tasks := []*repository.ProjectTask{
		{ProjectID: fancy.ID, TaskName: "First task", TaskStatus: types.TaskTodo, Priority: 3, TaskDescription: "To perform the very first action"},
		{ProjectID: fancy.ID, TaskName: "Second task", TaskStatus: types.TaskInProgress, Priority: 33, TaskDescription: "To perform the second action"},
		{ProjectID: fancy.ID, TaskName: "Third task", TaskStatus: types.TaskDone, Priority: 20, TaskDescription: "To perform the third action"},
		{ProjectID: second.ID, TaskName: "First task", TaskStatus: types.TaskTodo, Priority: 20, TaskDescription: "To perform the very first action"},
		{ProjectID: second.ID, TaskName: "Second task", TaskStatus: types.TaskInProgress, Priority: 43, TaskDescription: "To perform the second action"},
		{ProjectID: second.ID, TaskName: "Third task", TaskStatus: types.TaskDone, Priority: 33, TaskDescription: "To perform the third action"},
	}

	for _, t := range tasks {
		t.ID = uuid.New()
		if err := repos.TaskRepo.Create(ctx, t); err != nil {
			log.Printf("[Seed] ⚠️ Failed to create task %q: %v", t.TaskName, err)
			return
		}
	}

	log.Printf("✅ Seeded %d projects with %d tasks", 2, len(tasks))
}
