package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const maxNotesLength = 500

type ReservationService struct {
	*engine
}

func NewReservationService(d Deps) *ReservationService {
	return &ReservationService{engine: newEngine(d)}
}

func (s *ReservationService) Reserve(ctx context.Context, actor domain.Actor, in domain.ReserveInput) (*domain.Reservation, error) {
	if in.ExperienceID == "" {
		return nil, fmt.Errorf("%w: experience_id is required", domain.ErrValidation)
	}
	if utf8.RuneCountInString(in.Notes) > maxNotesLength {
		return nil, fmt.Errorf("%w: notes must be at most %d characters", domain.ErrValidation, maxNotesLength)
	}

	attendeeID := in.AttendeeID
	if attendeeID == "" {
		attendeeID = actor.ID
	}
	if !actor.CanAccess(attendeeID) {
		return nil, fmt.Errorf("%w: cannot reserve for another attendee", domain.ErrForbidden)
	}
	if _, err := s.attendees.GetByID(ctx, attendeeID); err != nil {
		return nil, fmt.Errorf("check attendee: %w", err)
	}

	now := s.clock.Now()
	res := &domain.Reservation{
		ID:           uuid.New().String(),
		ExperienceID: in.ExperienceID,
		AttendeeID:   attendeeID,
		Notes:        in.Notes,
		ReservedAt:   now,
		UpdatedAt:    now,
	}

	var eff effects
	var verdict domain.Admission
	err := s.tx.InExperience(ctx, in.ExperienceID, func(ctx context.Context) error {
		exp, err := s.experiences.GetByID(ctx, in.ExperienceID)
		if err != nil {
			return err
		}

		if !exp.AllowDuplicateReservation {
			_, err = s.reservations.FindActive(ctx, exp.ID, attendeeID)
			switch {
			case err == nil:
				return domain.ErrDuplicateReservation
			case !errors.Is(err, domain.ErrReservationNotFound):
				return fmt.Errorf("find active reservation: %w", err)
			}
		}

		verdict, err = s.ledger.TryAdmit(ctx, exp, res)
		if err != nil {
			return err
		}

		message := "Reservation confirmed, you can enter now"
		if verdict == domain.AdmissionQueued {
			res.Status = domain.StatusWaiting
			message = fmt.Sprintf("Added to the waiting list at position %d", res.QueuePosition)
		} else {
			res.Status = domain.StatusReady
			res.ReadyAt = &now
		}

		if err = s.reservations.Create(ctx, res); err != nil {
			return fmt.Errorf("create reservation: %w", err)
		}

		status, err := s.ledger.Commit(ctx, exp)
		if err != nil {
			return err
		}
		eff.queueChanged(status, "Queue updated")
		eff.reservationChanged(res, status, message)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reserve: %w", err)
	}

	s.flush(ctx, &eff)

	s.logger.Info("reservation created",
		logger.String("reservation_id", res.ID),
		logger.String("experience_id", res.ExperienceID),
		logger.String("attendee_id", res.AttendeeID),
		logger.String("verdict", verdict.String()),
		logger.Int("queue_position", res.QueuePosition),
	)

	return res, nil
}

func (s *ReservationService) Cancel(ctx context.Context, actor domain.Actor, reservationID string) (*domain.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if !actor.CanAccess(res.AttendeeID) {
		return nil, fmt.Errorf("%w: reservation belongs to another attendee", domain.ErrForbidden)
	}

	event := domain.EventCancel
	if actor.IsOperator() {
		event = domain.EventForceCancel
	}

	var eff effects
	err = s.tx.InExperience(ctx, res.ExperienceID, func(ctx context.Context) error {
		res, err = s.reservations.GetByID(ctx, reservationID)
		if err != nil {
			return err
		}
		exp, err := s.experiences.GetByID(ctx, res.ExperienceID)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		position := res.QueuePosition
		from, err := domain.Transition(res, event, now)
		if err != nil {
			return err
		}
		if err = s.reservations.Update(ctx, res); err != nil {
			return fmt.Errorf("update reservation: %w", err)
		}
		if _, err = s.credentials.RevokeActive(ctx, res.ID, now); err != nil {
			return fmt.Errorf("revoke credential: %w", err)
		}

		var promoted []*domain.Reservation
		if from == domain.StatusWaiting {
			if err = s.queue.Remove(ctx, exp, position); err != nil {
				return err
			}
		} else if domain.ReleasesSlot(from, res.Status) {
			if promoted, err = s.ledger.Release(ctx, exp); err != nil {
				return err
			}
		}

		status, err := s.ledger.Commit(ctx, exp)
		if err != nil {
			return err
		}
		eff.queueChanged(status, "Queue updated")
		eff.reservationChanged(res, status, "Reservation cancelled")
		eff.promoted(promoted, exp, status)
		if actor.ID != res.AttendeeID {
			eff.pushes = append(eff.pushes, push{kind: pushCancelled, attendeeID: res.AttendeeID, experience: *exp})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cancel reservation: %w", err)
	}

	s.flush(ctx, &eff)

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", res.ID),
		logger.String("experience_id", res.ExperienceID),
		logger.String("actor_id", actor.ID),
	)

	return res, nil
}

func (s *ReservationService) Get(ctx context.Context, actor domain.Actor, reservationID string) (*domain.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(res.AttendeeID) {
		return nil, fmt.Errorf("%w: reservation belongs to another attendee", domain.ErrForbidden)
	}
	return res, nil
}

func (s *ReservationService) ListByAttendee(ctx context.Context, actor domain.Actor, attendeeID string) ([]*domain.Reservation, error) {
	if !actor.CanAccess(attendeeID) {
		return nil, fmt.Errorf("%w: reservations of another attendee", domain.ErrForbidden)
	}
	return s.reservations.ListByAttendee(ctx, attendeeID)
}

func (s *ReservationService) ListByExperience(ctx context.Context, actor domain.Actor, experienceID string) ([]*domain.Reservation, error) {
	if !actor.IsOperator() {
		return nil, fmt.Errorf("%w: operators only", domain.ErrForbidden)
	}
	if _, err := s.experiences.GetByID(ctx, experienceID); err != nil {
		return nil, err
	}
	return s.reservations.ListByExperience(ctx, experienceID)
}

// QueueStatus serves congestion counters from the snapshot cache without
// taking the experience lock.
func (s *ReservationService) QueueStatus(ctx context.Context, experienceID string) (*domain.QueueStatus, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, experienceID)
		if err != nil {
			s.logger.Warn("queue status cache read failed",
				logger.String("experience_id", experienceID),
				logger.String("error", err.Error()),
			)
		}
		if cached != nil {
			return cached, nil
		}
	}

	exp, err := s.experiences.GetByID(ctx, experienceID)
	if err != nil {
		return nil, err
	}
	status := exp.Status(s.clock.Now())

	if s.cache != nil {
		if err = s.cache.Put(ctx, status); err != nil {
			s.logger.Warn("failed to cache queue status",
				logger.String("experience_id", experienceID),
				logger.String("error", err.Error()),
			)
		}
	}

	return &status, nil
}

// SweepNoShows closes reservations of experiences that ended more than the
// grace period ago: READY becomes NO_SHOW and frees its slot, WAITING is
// cancelled. Experiences are processed independently; errors are joined.
func (s *ReservationService) SweepNoShows(ctx context.Context) ([]*domain.Reservation, error) {
	deadline := s.clock.Now().Add(-s.noShowGrace)
	overdue, err := s.reservations.ListOverdue(ctx, deadline)
	if err != nil {
		return nil, fmt.Errorf("list overdue: %w", err)
	}

	byExperience := make(map[string][]string)
	var order []string
	for _, r := range overdue {
		if _, ok := byExperience[r.ExperienceID]; !ok {
			order = append(order, r.ExperienceID)
		}
		byExperience[r.ExperienceID] = append(byExperience[r.ExperienceID], r.ID)
	}

	var swept []*domain.Reservation
	var errs []error
	for _, experienceID := range order {
		closed, err := s.sweepExperience(ctx, experienceID, byExperience[experienceID])
		if err != nil {
			s.logger.Error("no-show sweep failed",
				logger.String("experience_id", experienceID),
				logger.String("error", err.Error()),
			)
			errs = append(errs, fmt.Errorf("experience %s: %w", experienceID, err))
			continue
		}
		swept = append(swept, closed...)
	}

	if len(swept) > 0 {
		s.logger.Info("overdue reservations closed", logger.Int("count", len(swept)))
	}

	return swept, errors.Join(errs...)
}

func (s *ReservationService) sweepExperience(ctx context.Context, experienceID string, ids []string) ([]*domain.Reservation, error) {
	var eff effects
	var closed []*domain.Reservation

	err := s.tx.InExperience(ctx, experienceID, func(ctx context.Context) error {
		exp, err := s.experiences.GetByID(ctx, experienceID)
		if err != nil {
			return err
		}

		var batch []*domain.Reservation
		for _, id := range ids {
			res, err := s.reservations.GetByID(ctx, id)
			if err != nil {
				return err
			}
			batch = append(batch, res)
		}
		// Waiters leave first so that releasing READY slots promotes nobody
		// into an experience that is already over.
		sort.SliceStable(batch, func(i, j int) bool {
			return batch[i].Status == domain.StatusWaiting && batch[j].Status != domain.StatusWaiting
		})

		now := s.clock.Now()
		for _, res := range batch {
			position := res.QueuePosition
			kind := pushNoShow
			switch res.Status {
			case domain.StatusWaiting:
				kind = pushCancelled
				if _, err = domain.Transition(res, domain.EventCancel, now); err != nil {
					return err
				}
				if err = s.queue.Remove(ctx, exp, position); err != nil {
					return err
				}
			case domain.StatusReady:
				if _, err = domain.Transition(res, domain.EventNoShow, now); err != nil {
					return err
				}
				if _, err = s.ledger.Release(ctx, exp); err != nil {
					return err
				}
			default:
				continue
			}

			if err = s.reservations.Update(ctx, res); err != nil {
				return fmt.Errorf("update reservation: %w", err)
			}
			if _, err = s.credentials.RevokeActive(ctx, res.ID, now); err != nil {
				return fmt.Errorf("revoke credential: %w", err)
			}
			closed = append(closed, res)
			eff.pushes = append(eff.pushes, push{kind: kind, attendeeID: res.AttendeeID, experience: *exp})
		}

		if len(closed) == 0 {
			return nil
		}

		status, err := s.ledger.Commit(ctx, exp)
		if err != nil {
			return err
		}
		eff.queueChanged(status, "Queue updated")
		for _, res := range closed {
			msg := "Marked as no-show"
			if res.Status == domain.StatusCancelled {
				msg = "Experience has ended, waiting reservation cancelled"
			}
			eff.reservationChanged(res, status, msg)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.flush(ctx, &eff)
	return closed, nil
}
