package dto

import "time"

// TimeEntryCreateRequest payload. Date uses the YYYY-MM-DD layout.
type TimeEntryCreateRequest struct {
	StaffID     string  `json:"staff_id"`
	ProjectID   string  `json:"project_id"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	Date        string  `json:"date"`
}

// StaffSummaryResponse is the nested staff projection on expanded entries.
type StaffSummaryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProjectSummaryResponse is the nested project projection on expanded entries.
type ProjectSummaryResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Client *string `json:"client,omitempty"`
}

// TimeEntryResponse payload.
type TimeEntryResponse struct {
	ID          string                  `json:"id"`
	StaffID     string                  `json:"staff_id"`
	ProjectID   string                  `json:"project_id"`
	Description string                  `json:"description"`
	Hours       float64                 `json:"hours"`
	Date        string                  `json:"date"`
	Staff       *StaffSummaryResponse   `json:"staff,omitempty"`
	Project     *ProjectSummaryResponse `json:"project,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}
