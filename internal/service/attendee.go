package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rktclgh/fairplay-booth/internal/clock"
	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/rktclgh/fairplay-booth/internal/service/ports"
)

type AttendeeService struct {
	repo  ports.AttendeeRepo
	clock clock.Clock
}

func NewAttendeeService(d Deps) *AttendeeService {
	clk := d.Clock
	if clk == nil {
		clk = clock.Real()
	}
	return &AttendeeService{repo: d.Attendees, clock: clk}
}

func (s *AttendeeService) Create(ctx context.Context, input domain.CreateAttendeeInput) (*domain.Attendee, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	role := input.Role
	switch role {
	case "":
		role = domain.RoleAttendee
	case domain.RoleAttendee, domain.RoleOperator:
	default:
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	now := s.clock.Now()
	attendee := &domain.Attendee{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Role:           role,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      now,
	}

	if err := s.repo.Create(ctx, attendee); err != nil {
		return nil, fmt.Errorf("create attendee: %w", err)
	}

	return attendee, nil
}

func (s *AttendeeService) GetByID(ctx context.Context, id string) (*domain.Attendee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AttendeeService) List(ctx context.Context) ([]*domain.Attendee, error) {
	return s.repo.List(ctx)
}
