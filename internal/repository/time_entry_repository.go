package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/timesheet-service/internal/domain"
)

// TimeEntryFilter captures listing parameters. Date bounds are inclusive.
type TimeEntryFilter struct {
	StaffID   *string
	ProjectID *string
	DateFrom  *time.Time
	DateTo    *time.Time
}

// TimeEntryRepository encapsulates time entry persistence.
type TimeEntryRepository interface {
	Create(ctx context.Context, entry *domain.TimeEntry) error
	GetExpanded(ctx context.Context, id string) (*domain.TimeEntry, error)
	List(ctx context.Context, filter TimeEntryFilter) ([]domain.TimeEntry, error)
	StatsForStaff(ctx context.Context, staffID string, weekStart time.Time) (domain.StaffHourStats, error)
}

type timeEntryRepository struct {
	pool *pgxpool.Pool
}

// NewTimeEntryRepository instantiates the repository.
func NewTimeEntryRepository(pool *pgxpool.Pool) TimeEntryRepository {
	return &timeEntryRepository{pool: pool}
}

func (r *timeEntryRepository) Create(ctx context.Context, entry *domain.TimeEntry) error {
	const query = `
        INSERT INTO time_entries (staff_id, project_id, description, hours, entry_date)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		entry.StaffID,
		entry.ProjectID,
		entry.Description,
		entry.Hours,
		entry.Date,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
}

const expandedSelect = `
        SELECT te.id, te.staff_id, te.project_id, te.description, te.hours, te.entry_date,
               te.created_at, te.updated_at,
               s.id, s.name, s.email, s.department,
               p.id, p.name, p.client
        FROM time_entries te
        LEFT JOIN staff s ON s.id = te.staff_id
        LEFT JOIN projects p ON p.id = te.project_id`

func (r *timeEntryRepository) GetExpanded(ctx context.Context, id string) (*domain.TimeEntry, error) {
	query := expandedSelect + " WHERE te.id=$1"

	row := r.pool.QueryRow(ctx, query, id)
	entry, err := scanExpanded(row)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *timeEntryRepository) List(ctx context.Context, filter TimeEntryFilter) ([]domain.TimeEntry, error) {
	query := expandedSelect
	args := []any{}
	clauses := []string{}

	if filter.StaffID != nil {
		args = append(args, *filter.StaffID)
		clauses = append(clauses, fmt.Sprintf("te.staff_id=$%d", len(args)))
	}
	if filter.ProjectID != nil {
		args = append(args, *filter.ProjectID)
		clauses = append(clauses, fmt.Sprintf("te.project_id=$%d", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		clauses = append(clauses, fmt.Sprintf("te.entry_date>=$%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		clauses = append(clauses, fmt.Sprintf("te.entry_date<=$%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY te.entry_date DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TimeEntry
	for rows.Next() {
		entry, err := scanExpanded(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *entry)
	}
	return result, rows.Err()
}

func (r *timeEntryRepository) StatsForStaff(ctx context.Context, staffID string, weekStart time.Time) (domain.StaffHourStats, error) {
	const query = `
        SELECT COALESCE(SUM(hours), 0),
               COALESCE(SUM(hours) FILTER (WHERE entry_date >= $2), 0),
               COUNT(*)
        FROM time_entries WHERE staff_id=$1`

	var stats domain.StaffHourStats
	err := r.pool.QueryRow(ctx, query, staffID, weekStart).Scan(
		&stats.TotalHours,
		&stats.ThisWeekHours,
		&stats.EntryCount,
	)
	return stats, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpanded(row rowScanner) (*domain.TimeEntry, error) {
	var (
		entry         domain.TimeEntry
		staffID       *string
		staffName     *string
		staffEmail    *string
		staffDept     *string
		projectID     *string
		projectName   *string
		projectClient *string
	)

	if err := row.Scan(
		&entry.ID,
		&entry.StaffID,
		&entry.ProjectID,
		&entry.Description,
		&entry.Hours,
		&entry.Date,
		&entry.CreatedAt,
		&entry.UpdatedAt,
		&staffID,
		&staffName,
		&staffEmail,
		&staffDept,
		&projectID,
		&projectName,
		&projectClient,
	); err != nil {
		return nil, err
	}

	if staffID != nil {
		entry.Staff = &domain.StaffSummary{
			ID:         *staffID,
			Name:       *staffName,
			Email:      *staffEmail,
			Department: *staffDept,
		}
	}
	if projectID != nil {
		entry.Project = &domain.ProjectSummary{
			ID:     *projectID,
			Name:   *projectName,
			Client: projectClient,
		}
	}
	return &entry, nil
}
