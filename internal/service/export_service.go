package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/spec-kit/timesheet-service/internal/domain"
	"github.com/spec-kit/timesheet-service/internal/repository"
)

// FilterCriteria is an immutable filter over already-fetched time entries.
// String fields match exactly when non-empty; date bounds are inclusive.
type FilterCriteria struct {
	StaffID   string
	ProjectID string
	From      *time.Time
	To        *time.Time
}

// FilteredStats are derived from a filtered subset of entries.
type FilteredStats struct {
	TotalHours       float64 `json:"totalHours"`
	DistinctStaff    int     `json:"distinctStaff"`
	AvgHoursPerEntry float64 `json:"avgHoursPerEntry"`
}

// ExportService renders filtered time entries as CSV downloads.
type ExportService struct {
	entries repository.TimeEntryRepository
}

// NewExportService builds the service.
func NewExportService(entries repository.TimeEntryRepository) *ExportService {
	return &ExportService{entries: entries}
}

// Export fetches all entries once and applies the criteria in memory before
// rendering, mirroring the dashboard's filter-then-export behavior.
func (s *ExportService) Export(ctx context.Context, criteria FilterCriteria) (string, error) {
	entries, err := s.entries.List(ctx, repository.TimeEntryFilter{})
	if err != nil {
		return "", err
	}
	return RenderCSV(ApplyFilter(entries, criteria)), nil
}

// ApplyFilter returns the subset of entries matching all criteria. The input
// slice is never mutated.
func ApplyFilter(entries []domain.TimeEntry, criteria FilterCriteria) []domain.TimeEntry {
	var result []domain.TimeEntry
	for _, entry := range entries {
		if criteria.StaffID != "" && entry.StaffID != criteria.StaffID {
			continue
		}
		if criteria.ProjectID != "" && entry.ProjectID != criteria.ProjectID {
			continue
		}
		if criteria.From != nil && entry.Date.Before(*criteria.From) {
			continue
		}
		if criteria.To != nil && entry.Date.After(*criteria.To) {
			continue
		}
		result = append(result, entry)
	}
	return result
}

// DeriveStats computes totals over a filtered subset.
func DeriveStats(entries []domain.TimeEntry) FilteredStats {
	var stats FilteredStats
	staffSeen := make(map[string]struct{})

	for _, entry := range entries {
		stats.TotalHours += entry.Hours
		staffSeen[entry.StaffID] = struct{}{}
	}
	stats.DistinctStaff = len(staffSeen)
	if len(entries) > 0 {
		stats.AvgHoursPerEntry = stats.TotalHours / float64(len(entries))
	}
	return stats
}

var csvHeader = []string{"Date", "Staff", "Project", "Description", "Hours"}

// RenderCSV serializes entries with every field double-quoted and embedded
// quotes doubled, one row per line, newline separated.
func RenderCSV(entries []domain.TimeEntry) string {
	var b strings.Builder
	writeRow(&b, csvHeader)

	for _, entry := range entries {
		staffName := ""
		if entry.Staff != nil {
			staffName = entry.Staff.Name
		}
		projectName := ""
		if entry.Project != nil {
			projectName = entry.Project.Name
		}
		writeRow(&b, []string{
			entry.Date.Format(domain.DateLayout),
			staffName,
			projectName,
			entry.Description,
			formatHours(entry.Hours),
		})
	}
	return b.String()
}

func writeRow(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

func formatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}
