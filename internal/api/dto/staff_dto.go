package dto

import "time"

// StaffCreateRequest payload.
type StaffCreateRequest struct {
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Role       string  `json:"role"`
	ExternalID *string `json:"external_id,omitempty"`
}

// StaffUpdateRequest payload for full replacement updates.
type StaffUpdateRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

// StaffResponse payload.
type StaffResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	Role       string    `json:"role"`
	ExternalID *string   `json:"external_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// StaffStatsResponse is the admin listing row enriched with hour aggregates.
type StaffStatsResponse struct {
	StaffResponse
	TotalHours    float64 `json:"totalHours"`
	ThisWeekHours float64 `json:"thisWeekHours"`
	EntryCount    int     `json:"entryCount"`
}
