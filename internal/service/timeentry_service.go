package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/timesheet-service/internal/domain"
	"github.com/spec-kit/timesheet-service/internal/events"
	"github.com/spec-kit/timesheet-service/internal/repository"
)

// TimeEntryService coordinates time entry logging and listing.
type TimeEntryService struct {
	entries    repository.TimeEntryRepository
	dispatcher events.Dispatcher
}

// NewTimeEntryService builds the service.
func NewTimeEntryService(entries repository.TimeEntryRepository, dispatcher events.Dispatcher) *TimeEntryService {
	return &TimeEntryService{entries: entries, dispatcher: dispatcher}
}

// List returns time entries matching the filter, newest date first, each
// expanded with its staff and project summaries.
func (s *TimeEntryService) List(ctx context.Context, filter repository.TimeEntryFilter) ([]domain.TimeEntry, error) {
	return s.entries.List(ctx, filter)
}

// Log persists a new time entry and returns it expanded.
func (s *TimeEntryService) Log(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error) {
	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, err
	}

	expanded, err := s.entries.GetExpanded(ctx, entry.ID)
	if err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventTimeEntryLogged,
			Timestamp: time.Now(),
			Payload: events.TimeEntryLoggedPayload{
				EntryID:   expanded.ID,
				StaffID:   expanded.StaffID,
				ProjectID: expanded.ProjectID,
				Hours:     expanded.Hours,
				Date:      expanded.Date.Format(domain.DateLayout),
			},
		})
	}
	return expanded, nil
}
