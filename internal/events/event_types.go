package events

import (
	"time"

	"github.com/spec-kit/timesheet-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStaffProvisioned EventType = "staff_provisioned"
	EventStaffDeleted     EventType = "staff_deleted"
	EventTimeEntryLogged  EventType = "time_entry_logged"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// StaffProvisionedPayload payload.
type StaffProvisionedPayload struct {
	StaffID    string      `json:"staff_id"`
	Email      string      `json:"email"`
	Department string      `json:"department"`
	Role       domain.Role `json:"role"`
	AutoCreate bool        `json:"auto_create"`
}

// StaffDeletedPayload payload.
type StaffDeletedPayload struct {
	StaffID string `json:"staff_id"`
}

// TimeEntryLoggedPayload payload.
type TimeEntryLoggedPayload struct {
	EntryID   string  `json:"entry_id"`
	StaffID   string  `json:"staff_id"`
	ProjectID string  `json:"project_id"`
	Hours     float64 `json:"hours"`
	Date      string  `json:"date"`
}
