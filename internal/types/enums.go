package types

import "fmt"

// Project status values
const (
	ProjectNotStarted = "not_started"
	ProjectActive     = "active"
	ProjectCompleted  = "completed"
)

// Task status values
const (
	TaskTodo       = "todo"
	TaskInProgress = "in_progress"
	TaskDone       = "done"
)

// Valid status values for validation
var ValidProjectStatuses = []string{
	ProjectNotStarted, ProjectActive, ProjectCompleted,
}

var ValidTaskStatuses = []string{
	TaskTodo, TaskInProgress, TaskDone,
}

// ParseProjectStatus validates a project status coming from the outside
// (route params, request bodies) and returns it in canonical form.
func ParseProjectStatus(s string) (string, error) {
	for _, v := range ValidProjectStatuses {
		if s == v {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid project status %q", s)
}

// ParseTaskStatus validates a task status coming from the outside.
func ParseTaskStatus(s string) (string, error) {
	for _, v := range ValidTaskStatuses {
		if s == v {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid task status %q", s)
}
