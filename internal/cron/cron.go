package cron

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/taskhub/taskhub-backend/internal/repository"
	"github.com/taskhub/taskhub-backend/internal/types"
)

// Scheduler handles scheduled tasks
type Scheduler struct {
	cron        *cron.Cron
	projectRepo repository.ProjectRepository
}

// NewScheduler creates a new scheduler
func NewScheduler(projectRepo repository.ProjectRepository) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		projectRepo: projectRepo,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	// Run every day at 9 AM - Overdue project check
	s.cron.AddFunc("0 9 * * *", func() {
		log.Println("[Cron] Running overdue project check...")
		s.checkOverdueProjects()
	})

	s.cron.Start()
	log.Println("[Cron] Scheduler started")
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[Cron] Scheduler stopped")
}

// checkOverdueProjects logs projects whose completion date has passed while
// they are not completed. Read-only: the sweep never mutates project state.
func (s *Scheduler) checkOverdueProjects() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	projects, err := s.projectRepo.FindEndBefore(ctx, time.Now())
	if err != nil {
		log.Printf("[Cron] Failed to fetch projects: %v", err)
		return
	}

	overdue := 0
	for _, p := range projects {
		if p.ProjectStatus == types.ProjectCompleted {
			continue
		}
		overdue++
		log.Printf("[Cron] ⏰ Project %q is overdue (due %s, status %s)",
			p.ProjectName, p.CompletionDate.Format("2006-01-02"), p.ProjectStatus)
	}

	if overdue == 0 {
		log.Println("[Cron] No overdue projects")
	} else {
		log.Printf("[Cron] Found %d overdue project(s)", overdue)
	}
}
