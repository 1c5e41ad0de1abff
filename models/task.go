package models

import "time"

// Priorities accepted for a task.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Statuses accepted for a task.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// Task is one to-do item owned by a single user. Ownership is enforced at
// query time: every read and write carries an equality match on UserID.
type Task struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	DueDate     string    `json:"due_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskInput holds the validated, normalized fields of a submitted task form.
type TaskInput struct {
	Title       string
	Description string
	Priority    string
	DueDate     string
	Status      string
}

// NextStatus is the toggle rule: Completed flips back to Pending, anything
// else (including In Progress) jumps straight to Completed.
func NextStatus(status string) string {
	if status == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusInProgress || s == StatusCompleted
}
