package service

import (
	"context"
	"time"

	"github.com/spec-kit/timesheet-service/internal/domain"
	"github.com/spec-kit/timesheet-service/internal/repository"
)

// Summary is the dashboard rollup over all time entries.
type Summary struct {
	TotalStaff     int     `json:"totalStaff"`
	ActiveProjects int     `json:"activeProjects"`
	TotalHours     float64 `json:"totalHours"`
	ThisWeekHours  float64 `json:"thisWeekHours"`
	AvgHoursPerDay float64 `json:"avgHoursPerDay"`
}

// DepartmentHours is one row of the by-department report.
type DepartmentHours struct {
	Department string  `json:"department"`
	Hours      float64 `json:"hours"`
}

// ProjectHours is one row of the by-project report.
type ProjectHours struct {
	Name   string  `json:"name"`
	Client *string `json:"client,omitempty"`
	Hours  float64 `json:"hours"`
}

// ReportService derives rollups from time entry rows.
type ReportService struct {
	staff    repository.StaffRepository
	projects repository.ProjectRepository
	entries  repository.TimeEntryRepository
}

// NewReportService builds the service.
func NewReportService(staff repository.StaffRepository, projects repository.ProjectRepository, entries repository.TimeEntryRepository) *ReportService {
	return &ReportService{staff: staff, projects: projects, entries: entries}
}

// Summary computes the dashboard rollup.
func (s *ReportService) Summary(ctx context.Context) (*Summary, error) {
	entries, err := s.entries.List(ctx, repository.TimeEntryFilter{})
	if err != nil {
		return nil, err
	}
	totalStaff, err := s.staff.Count(ctx)
	if err != nil {
		return nil, err
	}
	activeProjects, err := s.projects.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	summary := BuildSummary(entries, totalStaff, activeProjects, time.Now())
	return &summary, nil
}

// ByDepartment groups hours by the staff member's department.
func (s *ReportService) ByDepartment(ctx context.Context) ([]DepartmentHours, error) {
	entries, err := s.entries.List(ctx, repository.TimeEntryFilter{})
	if err != nil {
		return nil, err
	}
	return GroupByDepartment(entries), nil
}

// ByProject groups hours by project within an optional date window.
func (s *ReportService) ByProject(ctx context.Context, from, to *time.Time) ([]ProjectHours, error) {
	entries, err := s.entries.List(ctx, repository.TimeEntryFilter{DateFrom: from, DateTo: to})
	if err != nil {
		return nil, err
	}
	return GroupByProject(entries), nil
}

// BuildSummary is a pure rollup over the given rows. The trailing week is the
// inclusive window starting at now minus 7 days; the average divides that sum
// by 7.
func BuildSummary(entries []domain.TimeEntry, totalStaff, activeProjects int, now time.Time) Summary {
	weekStart := now.AddDate(0, 0, -7)

	var total, week float64
	for _, entry := range entries {
		total += entry.Hours
		if !entry.Date.Before(weekStart) {
			week += entry.Hours
		}
	}

	return Summary{
		TotalStaff:     totalStaff,
		ActiveProjects: activeProjects,
		TotalHours:     total,
		ThisWeekHours:  week,
		AvgHoursPerDay: week / 7,
	}
}

// GroupByDepartment buckets hours by the staff relation's department.
// Entries whose staff relation is missing land under "Unknown". Buckets keep
// the insertion order of first appearance.
func GroupByDepartment(entries []domain.TimeEntry) []DepartmentHours {
	index := make(map[string]int)
	var result []DepartmentHours

	for _, entry := range entries {
		department := "Unknown"
		if entry.Staff != nil && entry.Staff.Department != "" {
			department = entry.Staff.Department
		}

		pos, ok := index[department]
		if !ok {
			pos = len(result)
			index[department] = pos
			result = append(result, DepartmentHours{Department: department})
		}
		result[pos].Hours += entry.Hours
	}
	return result
}

// GroupByProject buckets hours by project id. Entries whose project relation
// is missing are skipped. Buckets keep the insertion order of first
// appearance.
func GroupByProject(entries []domain.TimeEntry) []ProjectHours {
	index := make(map[string]int)
	var result []ProjectHours

	for _, entry := range entries {
		if entry.Project == nil {
			continue
		}

		pos, ok := index[entry.Project.ID]
		if !ok {
			pos = len(result)
			index[entry.Project.ID] = pos
			result = append(result, ProjectHours{
				Name:   entry.Project.Name,
				Client: entry.Project.Client,
			})
		}
		result[pos].Hours += entry.Hours
	}
	return result
}
