package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apihttp "github.com/spec-kit/timesheet-service/internal/api/http"
	"github.com/spec-kit/timesheet-service/internal/api/http/handlers"
	"github.com/spec-kit/timesheet-service/internal/domain"
	"github.com/spec-kit/timesheet-service/internal/observability"
	"github.com/spec-kit/timesheet-service/internal/repository"
	"github.com/spec-kit/timesheet-service/internal/service"
)

type stubStaffRepo struct {
	staff   []domain.Staff
	deleted []string
	created []domain.Staff
}

func (s *stubStaffRepo) Create(ctx context.Context, staff *domain.Staff) error {
	staff.ID = "generated-id"
	s.created = append(s.created, *staff)
	return nil
}

func (s *stubStaffRepo) CreateIfAbsent(ctx context.Context, staff *domain.Staff) (*domain.Staff, error) {
	return staff, nil
}

func (s *stubStaffRepo) Update(ctx context.Context, staff *domain.Staff) error { return nil }

func (s *stubStaffRepo) AttachExternalID(ctx context.Context, id, externalID string) error {
	return nil
}

func (s *stubStaffRepo) GetByID(ctx context.Context, id string) (*domain.Staff, error) {
	return nil, nil
}

func (s *stubStaffRepo) GetByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	return nil, nil
}

func (s *stubStaffRepo) List(ctx context.Context) ([]domain.Staff, error) { return s.staff, nil }

func (s *stubStaffRepo) Delete(ctx context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubStaffRepo) Count(ctx context.Context) (int, error) { return len(s.staff), nil }

type stubEntryRepo struct{}

func (stubEntryRepo) Create(ctx context.Context, entry *domain.TimeEntry) error { return nil }

func (stubEntryRepo) GetExpanded(ctx context.Context, id string) (*domain.TimeEntry, error) {
	return &domain.TimeEntry{ID: id}, nil
}

func (stubEntryRepo) List(ctx context.Context, filter repository.TimeEntryFilter) ([]domain.TimeEntry, error) {
	return nil, nil
}

func (stubEntryRepo) StatsForStaff(ctx context.Context, staffID string, weekStart time.Time) (domain.StaffHourStats, error) {
	return domain.StaffHourStats{}, nil
}

func newStaffApp(repo *stubStaffRepo) *fiber.App {
	app := fiber.New()
	apihttp.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 5*time.Second)

	h := handlers.NewStaffHandler(service.NewStaffService(repo, stubEntryRepo{}, nil))
	app.Get("/staff", h.List)
	app.Post("/staff", h.Create)
	app.Delete("/staff", h.Delete)
	return app
}

func TestStaffDeleteRequiresID(t *testing.T) {
	repo := &stubStaffRepo{}
	app := newStaffApp(repo)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/staff", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected an error message in the body")
	}
	if len(repo.deleted) != 0 {
		t.Errorf("delete reached the store: %v", repo.deleted)
	}
}

func TestStaffDelete(t *testing.T) {
	repo := &stubStaffRepo{}
	app := newStaffApp(repo)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/staff?id=abc", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "abc" {
		t.Errorf("deleted = %v, want [abc]", repo.deleted)
	}
}

func TestStaffCreateValidation(t *testing.T) {
	repo := &stubStaffRepo{}
	app := newStaffApp(repo)

	req := httptest.NewRequest("POST", "/staff", strings.NewReader(`{"name":"No Email"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if len(repo.created) != 0 {
		t.Errorf("create reached the store: %v", repo.created)
	}
}

func TestStaffCreateDefaultsRoleAndDepartment(t *testing.T) {
	repo := &stubStaffRepo{}
	app := newStaffApp(repo)

	req := httptest.NewRequest("POST", "/staff", strings.NewReader(`{"name":"Eve","email":"eve@corp.test"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want 201: %s", resp.StatusCode, body)
	}

	var created struct {
		ID         string `json:"id"`
		Role       string `json:"role"`
		Department string `json:"department"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Role != string(domain.RoleUser) {
		t.Errorf("role = %s, want %s", created.Role, domain.RoleUser)
	}
	if created.Department != domain.DefaultDepartment {
		t.Errorf("department = %s, want %s", created.Department, domain.DefaultDepartment)
	}
	if created.ID == "" {
		t.Error("expected generated id in the response")
	}
}
