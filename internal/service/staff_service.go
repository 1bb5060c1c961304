package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/timesheet-service/internal/domain"
	"github.com/spec-kit/timesheet-service/internal/events"
	"github.com/spec-kit/timesheet-service/internal/repository"
)

// StaffWithStats pairs a staff record with its derived hour aggregates.
type StaffWithStats struct {
	domain.Staff
	domain.StaffHourStats
}

// StaffService coordinates staff record management.
type StaffService struct {
	staff      repository.StaffRepository
	entries    repository.TimeEntryRepository
	dispatcher events.Dispatcher
}

// NewStaffService builds the service.
func NewStaffService(staff repository.StaffRepository, entries repository.TimeEntryRepository, dispatcher events.Dispatcher) *StaffService {
	return &StaffService{staff: staff, entries: entries, dispatcher: dispatcher}
}

// List returns all staff ordered by name.
func (s *StaffService) List(ctx context.Context) ([]domain.Staff, error) {
	return s.staff.List(ctx)
}

// Create persists a new staff record.
func (s *StaffService) Create(ctx context.Context, staff *domain.Staff) error {
	if staff.Department == "" {
		staff.Department = domain.DefaultDepartment
	}
	if staff.Role == "" {
		staff.Role = domain.RoleUser
	}
	if err := s.staff.Create(ctx, staff); err != nil {
		return err
	}
	s.publish(ctx, events.EventStaffProvisioned, events.StaffProvisionedPayload{
		StaffID:    staff.ID,
		Email:      staff.Email,
		Department: staff.Department,
		Role:       staff.Role,
	})
	return nil
}

// Update replaces the mutable fields of a staff record.
func (s *StaffService) Update(ctx context.Context, staff *domain.Staff) error {
	return s.staff.Update(ctx, staff)
}

// Delete removes a staff record. Time entries cascade at the store.
func (s *StaffService) Delete(ctx context.Context, id string) error {
	if err := s.staff.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.EventStaffDeleted, events.StaffDeletedPayload{StaffID: id})
	return nil
}

// ListWithStats returns all staff enriched with per-staff hour aggregates.
// The per-staff queries are independent reads and run concurrently; all must
// complete before the combined result is returned.
func (s *StaffService) ListWithStats(ctx context.Context) ([]StaffWithStats, error) {
	list, err := s.staff.List(ctx)
	if err != nil {
		return nil, err
	}

	weekStart := time.Now().AddDate(0, 0, -7)
	result := make([]StaffWithStats, len(list))
	errs := make([]error, len(list))

	var wg sync.WaitGroup
	for i := range list {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			stats, err := s.entries.StatsForStaff(ctx, list[i].ID, weekStart)
			result[i] = StaffWithStats{Staff: list[i], StaffHourStats: stats}
			errs[i] = err
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s *StaffService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
