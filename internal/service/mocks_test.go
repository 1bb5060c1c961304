package service

import (
	"context"
	"time"

	"github.com/spec-kit/timesheet-service/internal/domain"
	"github.com/spec-kit/timesheet-service/internal/repository"
)

type mockStaffRepo struct {
	createFn           func(ctx context.Context, staff *domain.Staff) error
	createIfAbsentFn   func(ctx context.Context, staff *domain.Staff) (*domain.Staff, error)
	updateFn           func(ctx context.Context, staff *domain.Staff) error
	attachExternalIDFn func(ctx context.Context, id, externalID string) error
	getByIDFn          func(ctx context.Context, id string) (*domain.Staff, error)
	getByEmailFn       func(ctx context.Context, email string) (*domain.Staff, error)
	listFn             func(ctx context.Context) ([]domain.Staff, error)
	deleteFn           func(ctx context.Context, id string) error
	countFn            func(ctx context.Context) (int, error)
}

func (m *mockStaffRepo) Create(ctx context.Context, staff *domain.Staff) error {
	if m.createFn != nil {
		return m.createFn(ctx, staff)
	}
	return nil
}

func (m *mockStaffRepo) CreateIfAbsent(ctx context.Context, staff *domain.Staff) (*domain.Staff, error) {
	if m.createIfAbsentFn != nil {
		return m.createIfAbsentFn(ctx, staff)
	}
	return staff, nil
}

func (m *mockStaffRepo) Update(ctx context.Context, staff *domain.Staff) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, staff)
	}
	return nil
}

func (m *mockStaffRepo) AttachExternalID(ctx context.Context, id, externalID string) error {
	if m.attachExternalIDFn != nil {
		return m.attachExternalIDFn(ctx, id, externalID)
	}
	return nil
}

func (m *mockStaffRepo) GetByID(ctx context.Context, id string) (*domain.Staff, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockStaffRepo) GetByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockStaffRepo) List(ctx context.Context) ([]domain.Staff, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockStaffRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockStaffRepo) Count(ctx context.Context) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

type mockEntryRepo struct {
	createFn        func(ctx context.Context, entry *domain.TimeEntry) error
	getExpandedFn   func(ctx context.Context, id string) (*domain.TimeEntry, error)
	listFn          func(ctx context.Context, filter repository.TimeEntryFilter) ([]domain.TimeEntry, error)
	statsForStaffFn func(ctx context.Context, staffID string, weekStart time.Time) (domain.StaffHourStats, error)
}

func (m *mockEntryRepo) Create(ctx context.Context, entry *domain.TimeEntry) error {
	if m.createFn != nil {
		return m.createFn(ctx, entry)
	}
	return nil
}

func (m *mockEntryRepo) GetExpanded(ctx context.Context, id string) (*domain.TimeEntry, error) {
	if m.getExpandedFn != nil {
		return m.getExpandedFn(ctx, id)
	}
	return &domain.TimeEntry{ID: id}, nil
}

func (m *mockEntryRepo) List(ctx context.Context, filter repository.TimeEntryFilter) ([]domain.TimeEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockEntryRepo) StatsForStaff(ctx context.Context, staffID string, weekStart time.Time) (domain.StaffHourStats, error) {
	if m.statsForStaffFn != nil {
		return m.statsForStaffFn(ctx, staffID, weekStart)
	}
	return domain.StaffHourStats{}, nil
}

type mockProjectRepo struct {
	createFn      func(ctx context.Context, project *domain.Project) error
	getByIDFn     func(ctx context.Context, id string) (*domain.Project, error)
	listFn        func(ctx context.Context) ([]domain.Project, error)
	countActiveFn func(ctx context.Context) (int, error)
}

func (m *mockProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	if m.createFn != nil {
		return m.createFn(ctx, project)
	}
	return nil
}

func (m *mockProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockProjectRepo) List(ctx context.Context) ([]domain.Project, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockProjectRepo) CountActive(ctx context.Context) (int, error) {
	if m.countActiveFn != nil {
		return m.countActiveFn(ctx)
	}
	return 0, nil
}
