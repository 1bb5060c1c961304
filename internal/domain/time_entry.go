package domain

import "time"

// DateLayout is the wire format for time entry calendar dates.
const DateLayout = "2006-01-02"

// StaffSummary is the nested staff projection embedded in expanded time
// entries. Department is carried for report grouping and omitted from the
// entry payload.
type StaffSummary struct {
	ID         string
	Name       string
	Email      string
	Department string
}

// ProjectSummary is the nested project projection embedded in expanded time
// entries.
type ProjectSummary struct {
	ID     string
	Name   string
	Client *string
}

// TimeEntry ties a staff member to a project with logged hours on a calendar
// date. Staff and Project are read-time join expansions and are nil when the
// referenced row no longer resolves.
type TimeEntry struct {
	ID          string
	StaffID     string
	ProjectID   string
	Description string
	Hours       float64
	Date        time.Time
	Staff       *StaffSummary
	Project     *ProjectSummary
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
