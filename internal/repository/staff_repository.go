package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/timesheet-service/internal/domain"
)

// StaffRepository handles persistence for staff records.
type StaffRepository interface {
	Create(ctx context.Context, staff *domain.Staff) error
	CreateIfAbsent(ctx context.Context, staff *domain.Staff) (*domain.Staff, error)
	Update(ctx context.Context, staff *domain.Staff) error
	AttachExternalID(ctx context.Context, id, externalID string) error
	GetByID(ctx context.Context, id string) (*domain.Staff, error)
	GetByEmail(ctx context.Context, email string) (*domain.Staff, error)
	List(ctx context.Context) ([]domain.Staff, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type staffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository instantiates the repository.
func NewStaffRepository(pool *pgxpool.Pool) StaffRepository {
	return &staffRepository{pool: pool}
}

func (r *staffRepository) Create(ctx context.Context, staff *domain.Staff) error {
	const query = `
        INSERT INTO staff (email, name, department, role, external_id)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		staff.Email,
		staff.Name,
		staff.Department,
		staff.Role,
		staff.ExternalID,
	).Scan(&staff.ID, &staff.CreatedAt, &staff.UpdatedAt)
}

// CreateIfAbsent inserts the staff row unless the email already exists, in
// which case the existing row is returned. Two concurrent first sign-ins for
// the same email therefore converge on a single row.
func (r *staffRepository) CreateIfAbsent(ctx context.Context, staff *domain.Staff) (*domain.Staff, error) {
	const query = `
        INSERT INTO staff (email, name, department, role, external_id)
        VALUES ($1,$2,$3,$4,$5)
        ON CONFLICT (email) DO NOTHING
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		staff.Email,
		staff.Name,
		staff.Department,
		staff.Role,
		staff.ExternalID,
	).Scan(&staff.ID, &staff.CreatedAt, &staff.UpdatedAt)
	if err == nil {
		return staff, nil
	}
	if err != pgx.ErrNoRows {
		return nil, err
	}
	return r.GetByEmail(ctx, staff.Email)
}

func (r *staffRepository) Update(ctx context.Context, staff *domain.Staff) error {
	const query = `
        UPDATE staff
        SET name=$1, email=$2, department=$3, role=$4, updated_at=NOW()
        WHERE id=$5
        RETURNING external_id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		staff.Name,
		staff.Email,
		staff.Department,
		staff.Role,
		staff.ID,
	).Scan(&staff.ExternalID, &staff.CreatedAt, &staff.UpdatedAt)
}

func (r *staffRepository) AttachExternalID(ctx context.Context, id, externalID string) error {
	const query = `UPDATE staff SET external_id=$1, updated_at=NOW() WHERE id=$2 AND external_id IS NULL`

	_, err := r.pool.Exec(ctx, query, externalID, id)
	return err
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (*domain.Staff, error) {
	const query = `
        SELECT id, email, name, department, role, external_id, created_at, updated_at
        FROM staff WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *staffRepository) GetByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	const query = `
        SELECT id, email, name, department, role, external_id, created_at, updated_at
        FROM staff WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

func (r *staffRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Staff, error) {
	var staff domain.Staff
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&staff.ID,
		&staff.Email,
		&staff.Name,
		&staff.Department,
		&staff.Role,
		&staff.ExternalID,
		&staff.CreatedAt,
		&staff.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) List(ctx context.Context) ([]domain.Staff, error) {
	const query = `
        SELECT id, email, name, department, role, external_id, created_at, updated_at
        FROM staff ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Staff
	for rows.Next() {
		var staff domain.Staff
		if err := rows.Scan(
			&staff.ID,
			&staff.Email,
			&staff.Name,
			&staff.Department,
			&staff.Role,
			&staff.ExternalID,
			&staff.CreatedAt,
			&staff.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, staff)
	}
	return result, rows.Err()
}

func (r *staffRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM staff WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *staffRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM staff`).Scan(&count)
	return count, err
}
