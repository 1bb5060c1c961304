package dto

import "time"

// ProjectCreateRequest payload. Status defaults to active when empty.
type ProjectCreateRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Client      *string `json:"client,omitempty"`
	Status      string  `json:"status,omitempty"`
}

// ProjectResponse payload.
type ProjectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Client      *string   `json:"client,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
