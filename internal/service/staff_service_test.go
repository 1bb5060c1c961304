package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/spec-kit/timesheet-service/internal/domain"
)

func TestListWithStatsMergesPerStaffAggregates(t *testing.T) {
	staffList := []domain.Staff{
		{ID: "s1", Name: "Alice"},
		{ID: "s2", Name: "Bob"},
		{ID: "s3", Name: "Carol"},
	}
	hoursByID := map[string]domain.StaffHourStats{
		"s1": {TotalHours: 40, ThisWeekHours: 8, EntryCount: 10},
		"s2": {TotalHours: 12, ThisWeekHours: 0, EntryCount: 3},
		"s3": {},
	}

	staffRepo := &mockStaffRepo{
		listFn: func(ctx context.Context) ([]domain.Staff, error) {
			return staffList, nil
		},
	}
	entryRepo := &mockEntryRepo{
		statsForStaffFn: func(ctx context.Context, staffID string, weekStart time.Time) (domain.StaffHourStats, error) {
			return hoursByID[staffID], nil
		},
	}

	svc := NewStaffService(staffRepo, entryRepo, nil)
	result, err := svc.ListWithStats(context.Background())
	if err != nil {
		t.Fatalf("ListWithStats: %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("len = %d, want 3", len(result))
	}
	for i, row := range result {
		if row.ID != staffList[i].ID {
			t.Errorf("row %d: id %s, want %s (order must follow the list)", i, row.ID, staffList[i].ID)
		}
		want := hoursByID[row.ID]
		if math.Abs(row.TotalHours-want.TotalHours) > epsilon || row.EntryCount != want.EntryCount {
			t.Errorf("row %d: stats %+v, want %+v", i, row.StaffHourStats, want)
		}
	}
}

func TestListWithStatsPropagatesStatsError(t *testing.T) {
	statsErr := errors.New("stats query failed")

	staffRepo := &mockStaffRepo{
		listFn: func(ctx context.Context) ([]domain.Staff, error) {
			return []domain.Staff{{ID: "s1"}, {ID: "s2"}}, nil
		},
	}
	entryRepo := &mockEntryRepo{
		statsForStaffFn: func(ctx context.Context, staffID string, weekStart time.Time) (domain.StaffHourStats, error) {
			if staffID == "s2" {
				return domain.StaffHourStats{}, statsErr
			}
			return domain.StaffHourStats{}, nil
		},
	}

	svc := NewStaffService(staffRepo, entryRepo, nil)
	if _, err := svc.ListWithStats(context.Background()); !errors.Is(err, statsErr) {
		t.Fatalf("err = %v, want %v", err, statsErr)
	}
}

func TestListWithStatsAwaitsAllQueries(t *testing.T) {
	const n = 20
	staff := make([]domain.Staff, n)
	for i := range staff {
		staff[i] = domain.Staff{ID: fmt.Sprintf("s%d", i)}
	}

	var mu sync.Mutex
	completed := 0

	staffRepo := &mockStaffRepo{
		listFn: func(ctx context.Context) ([]domain.Staff, error) {
			return staff, nil
		},
	}
	entryRepo := &mockEntryRepo{
		statsForStaffFn: func(ctx context.Context, staffID string, weekStart time.Time) (domain.StaffHourStats, error) {
			time.Sleep(time.Millisecond)
			mu.Lock()
			completed++
			mu.Unlock()
			return domain.StaffHourStats{EntryCount: 1}, nil
		},
	}

	svc := NewStaffService(staffRepo, entryRepo, nil)
	result, err := svc.ListWithStats(context.Background())
	if err != nil {
		t.Fatalf("ListWithStats: %v", err)
	}

	mu.Lock()
	done := completed
	mu.Unlock()
	if done != n {
		t.Errorf("completed = %d, want %d before return", done, n)
	}
	for i, row := range result {
		if row.EntryCount != 1 {
			t.Errorf("row %d missing its stats", i)
		}
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	var captured *domain.Staff
	staffRepo := &mockStaffRepo{
		createFn: func(ctx context.Context, s *domain.Staff) error {
			captured = s
			return nil
		},
	}

	svc := NewStaffService(staffRepo, &mockEntryRepo{}, nil)
	if err := svc.Create(context.Background(), &domain.Staff{Name: "Dana", Email: "dana@corp.test"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if captured.Department != domain.DefaultDepartment {
		t.Errorf("department = %s, want %s", captured.Department, domain.DefaultDepartment)
	}
	if captured.Role != domain.RoleUser {
		t.Errorf("role = %s, want %s", captured.Role, domain.RoleUser)
	}
}
