package domain

import "time"

// ProjectStatus enumerates project lifecycle states.
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
)

// Project is a billable grouping that time entries reference.
type Project struct {
	ID          string
	Name        string
	Description *string
	Client      *string
	Status      ProjectStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
