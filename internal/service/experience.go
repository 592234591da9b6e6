package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type ExperienceService struct {
	*engine
}

func NewExperienceService(d Deps) *ExperienceService {
	return &ExperienceService{engine: newEngine(d)}
}

func (s *ExperienceService) Create(ctx context.Context, actor domain.Actor, in domain.CreateExperienceInput) (*domain.Experience, error) {
	if !actor.IsOperator() {
		return nil, fmt.Errorf("%w: operators only", domain.ErrForbidden)
	}
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if in.MaxCapacity <= 0 {
		return nil, fmt.Errorf("%w: max_capacity must be positive", domain.ErrValidation)
	}
	if in.MaxWaitingCount < 0 {
		return nil, fmt.Errorf("%w: max_waiting_count must not be negative", domain.ErrValidation)
	}
	if in.Duration < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative", domain.ErrValidation)
	}
	if !in.StartsAt.IsZero() && !in.EndsAt.IsZero() && !in.EndsAt.After(in.StartsAt) {
		return nil, fmt.Errorf("%w: ends_at must be after starts_at", domain.ErrValidation)
	}

	enabled := true
	if in.IsReservationEnabled != nil {
		enabled = *in.IsReservationEnabled
	}

	now := s.clock.Now()
	exp := &domain.Experience{
		ID:                        uuid.New().String(),
		BoothID:                   in.BoothID,
		Title:                     in.Title,
		Description:               in.Description,
		StartsAt:                  in.StartsAt,
		EndsAt:                    in.EndsAt,
		Duration:                  in.Duration,
		MaxCapacity:               in.MaxCapacity,
		MaxWaitingCount:           in.MaxWaitingCount,
		AllowWaiting:              in.AllowWaiting,
		AllowDuplicateReservation: in.AllowDuplicateReservation,
		IsReservationEnabled:      enabled,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}

	if err := s.experiences.Create(ctx, exp); err != nil {
		return nil, fmt.Errorf("create experience: %w", err)
	}

	s.logger.Info("experience created",
		logger.String("experience_id", exp.ID),
		logger.String("booth_id", exp.BoothID),
		logger.Int("max_capacity", exp.MaxCapacity),
	)

	return exp, nil
}

func (s *ExperienceService) GetByID(ctx context.Context, id string) (*domain.Experience, error) {
	return s.experiences.GetByID(ctx, id)
}

func (s *ExperienceService) List(ctx context.Context) ([]*domain.Experience, error) {
	return s.experiences.List(ctx)
}

// UpdateSettings changes capacity, waiting list and enablement. Limits cannot
// go below what is already inside or waiting; raising the capacity promotes
// waiters right away.
func (s *ExperienceService) UpdateSettings(ctx context.Context, actor domain.Actor, id string, in domain.UpdateExperienceInput) (*domain.Experience, error) {
	if !actor.IsOperator() {
		return nil, fmt.Errorf("%w: operators only", domain.ErrForbidden)
	}
	if in.MaxCapacity != nil && *in.MaxCapacity <= 0 {
		return nil, fmt.Errorf("%w: max_capacity must be positive", domain.ErrValidation)
	}
	if in.MaxWaitingCount != nil && *in.MaxWaitingCount < 0 {
		return nil, fmt.Errorf("%w: max_waiting_count must not be negative", domain.ErrValidation)
	}

	var eff effects
	var exp *domain.Experience
	err := s.tx.InExperience(ctx, id, func(ctx context.Context) error {
		var err error
		exp, err = s.experiences.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if in.MaxCapacity != nil && *in.MaxCapacity < exp.CurrentParticipants {
			return fmt.Errorf("%w: %d participants are inside, max_capacity cannot be %d",
				domain.ErrValidation, exp.CurrentParticipants, *in.MaxCapacity)
		}
		if in.MaxWaitingCount != nil && *in.MaxWaitingCount < exp.WaitingCount {
			return fmt.Errorf("%w: %d attendees are waiting, max_waiting_count cannot be %d",
				domain.ErrValidation, exp.WaitingCount, *in.MaxWaitingCount)
		}

		applySettings(exp, in)

		promoted, err := s.ledger.Rebalance(ctx, exp)
		if err != nil {
			return err
		}

		status, err := s.ledger.Commit(ctx, exp)
		if err != nil {
			return err
		}
		eff.queueChanged(status, "Experience settings updated")
		eff.promoted(promoted, exp, status)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update experience: %w", err)
	}

	s.flush(ctx, &eff)

	s.logger.Info("experience settings updated",
		logger.String("experience_id", exp.ID),
		logger.Int("max_capacity", exp.MaxCapacity),
		logger.Int("max_waiting_count", exp.MaxWaitingCount),
	)

	return exp, nil
}

func applySettings(exp *domain.Experience, in domain.UpdateExperienceInput) {
	if in.MaxCapacity != nil {
		exp.MaxCapacity = *in.MaxCapacity
	}
	if in.MaxWaitingCount != nil {
		exp.MaxWaitingCount = *in.MaxWaitingCount
	}
	if in.AllowWaiting != nil {
		exp.AllowWaiting = *in.AllowWaiting
	}
	if in.AllowDuplicateReservation != nil {
		exp.AllowDuplicateReservation = *in.AllowDuplicateReservation
	}
	if in.IsReservationEnabled != nil {
		exp.IsReservationEnabled = *in.IsReservationEnabled
	}
}
