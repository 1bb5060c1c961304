package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/timesheet-service/internal/auth"
	"github.com/spec-kit/timesheet-service/internal/domain"
	"github.com/spec-kit/timesheet-service/internal/events"
	"github.com/spec-kit/timesheet-service/internal/repository"
)

// IdentityService exchanges external identity assertions for local sessions.
type IdentityService struct {
	staff      repository.StaffRepository
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewIdentityService builds the service.
func NewIdentityService(staff repository.StaffRepository, tokens *auth.TokenManager, dispatcher events.Dispatcher, logger *zap.Logger) *IdentityService {
	return &IdentityService{staff: staff, tokens: tokens, dispatcher: dispatcher, logger: logger}
}

// SignIn resolves the assertion to a staff record and issues a session token.
// A staff row keyed by the asserted email is reused when present (backfilling
// the external id once), otherwise one is auto-provisioned with role "user"
// and department "Unassigned". Any store failure denies the sign-in; a token
// is never issued with missing role or department. Signing in twice with the
// same email always resolves to the same row.
func (s *IdentityService) SignIn(ctx context.Context, assertion auth.IdentityAssertion) (*domain.Staff, string, time.Time, error) {
	staff, err := s.staff.GetByEmail(ctx, assertion.Email)
	switch {
	case err == nil:
		if staff.ExternalID == nil && assertion.Subject != "" {
			if err := s.staff.AttachExternalID(ctx, staff.ID, assertion.Subject); err != nil {
				return nil, "", time.Time{}, err
			}
			subject := assertion.Subject
			staff.ExternalID = &subject
		}
		s.logger.Info("staff signed in",
			zap.String("staff_id", staff.ID),
			zap.String("role", string(staff.Role)),
		)

	case err == pgx.ErrNoRows:
		staff, err = s.provision(ctx, assertion)
		if err != nil {
			return nil, "", time.Time{}, err
		}

	default:
		return nil, "", time.Time{}, err
	}

	token, expiresAt, err := s.tokens.GenerateToken(staff)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return staff, token, expiresAt, nil
}

func (s *IdentityService) provision(ctx context.Context, assertion auth.IdentityAssertion) (*domain.Staff, error) {
	name := assertion.Name
	if name == "" {
		name = assertion.Email
	}

	candidate := &domain.Staff{
		Email:      assertion.Email,
		Name:       name,
		Department: domain.DefaultDepartment,
		Role:       domain.RoleUser,
	}
	if assertion.Subject != "" {
		subject := assertion.Subject
		candidate.ExternalID = &subject
	}

	staff, err := s.staff.CreateIfAbsent(ctx, candidate)
	if err != nil {
		return nil, err
	}

	s.logger.Info("staff auto-provisioned",
		zap.String("staff_id", staff.ID),
		zap.String("email", staff.Email),
	)
	s.publish(ctx, events.EventStaffProvisioned, events.StaffProvisionedPayload{
		StaffID:    staff.ID,
		Email:      staff.Email,
		Department: staff.Department,
		Role:       staff.Role,
		AutoCreate: true,
	})
	return staff, nil
}

func (s *IdentityService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
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
