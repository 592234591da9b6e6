package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	DefaultGateTimeout  = 3 * time.Second
	failureAuditTimeout = time.Second
)

// CheckpointGate is what scanners call. Each check is one unit of work:
// credential revalidation, state transition, consumption, audit record and
// capacity release either all happen or none do.
type CheckpointGate struct {
	*engine
	credentials *CredentialService
	timeout     time.Duration
}

func NewCheckpointGate(d Deps, credentials *CredentialService, timeout time.Duration) *CheckpointGate {
	if timeout <= 0 {
		timeout = DefaultGateTimeout
	}
	return &CheckpointGate{
		engine:      newEngine(d),
		credentials: credentials,
		timeout:     timeout,
	}
}

type checkRequest struct {
	action domain.CheckAction
	kind   domain.CredentialKind
	actor  domain.Actor
	// credentialID is empty on the forced path.
	credentialID string
}

func (g *CheckpointGate) CheckIn(ctx context.Context, actor domain.Actor, code string, kind domain.CredentialKind) (*domain.CheckResult, error) {
	return g.checkWithCode(ctx, actor, code, kind, domain.ActionCheckIn)
}

func (g *CheckpointGate) CheckOut(ctx context.Context, actor domain.Actor, code string, kind domain.CredentialKind) (*domain.CheckResult, error) {
	return g.checkWithCode(ctx, actor, code, kind, domain.ActionCheckOut)
}

// ForceCheckIn admits a reservation without a credential. The state machine
// still applies and the audit trail marks the event as forced.
func (g *CheckpointGate) ForceCheckIn(ctx context.Context, actor domain.Actor, reservationID string) (*domain.CheckResult, error) {
	return g.force(ctx, actor, reservationID, domain.ActionCheckIn)
}

func (g *CheckpointGate) ForceCheckOut(ctx context.Context, actor domain.Actor, reservationID string) (*domain.CheckResult, error) {
	return g.force(ctx, actor, reservationID, domain.ActionCheckOut)
}

func (g *CheckpointGate) History(ctx context.Context, actor domain.Actor, reservationID string) ([]*domain.CheckEvent, error) {
	res, err := g.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(res.AttendeeID) {
		return nil, fmt.Errorf("%w: reservation belongs to another attendee", domain.ErrForbidden)
	}
	return g.checkEvents.ListByReservation(ctx, reservationID)
}

func (g *CheckpointGate) checkWithCode(ctx context.Context, actor domain.Actor, code string, kind domain.CredentialKind, action domain.CheckAction) (*domain.CheckResult, error) {
	if !actor.IsOperator() {
		return nil, fmt.Errorf("%w: only checkpoint operators can scan codes", domain.ErrForbidden)
	}

	ref, err := g.credentials.parseCode(code, kind)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	cred, err := g.credentials.lookup(ctx, ref)
	if err != nil {
		return nil, g.deadline(ctx, err)
	}

	return g.run(ctx, cred.ReservationID, checkRequest{
		action:       action,
		kind:         kind,
		actor:        actor,
		credentialID: cred.ID,
	})
}

func (g *CheckpointGate) force(ctx context.Context, actor domain.Actor, reservationID string, action domain.CheckAction) (*domain.CheckResult, error) {
	if !actor.IsOperator() {
		return nil, fmt.Errorf("%w: operators only", domain.ErrForbidden)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	return g.run(ctx, reservationID, checkRequest{
		action: action,
		kind:   domain.KindForced,
		actor:  actor,
	})
}

func (g *CheckpointGate) run(ctx context.Context, reservationID string, req checkRequest) (*domain.CheckResult, error) {
	res, err := g.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, g.deadline(ctx, err)
	}

	var name string
	if attendee, err := g.attendees.GetByID(ctx, res.AttendeeID); err == nil {
		name = attendee.Name
	}

	event, topic, message := domain.EventCheckIn, domain.TopicCheckIn, "Checked in"
	if req.action == domain.ActionCheckOut {
		event, topic, message = domain.EventCheckOut, domain.TopicCheckOut, "Checked out"
	}

	var eff effects
	var at time.Time
	err = g.tx.InExperience(ctx, res.ExperienceID, func(ctx context.Context) error {
		at = g.clock.Now()

		if req.credentialID != "" {
			cred, err := g.engine.credentials.GetByID(ctx, req.credentialID)
			if err != nil {
				return err
			}
			if err = cred.Check(at); err != nil {
				return err
			}
		}

		var err error
		res, err = g.reservations.GetByID(ctx, reservationID)
		if err != nil {
			return err
		}
		exp, err := g.experiences.GetByID(ctx, res.ExperienceID)
		if err != nil {
			return err
		}
		if event == domain.EventCheckIn && res.Status == domain.StatusReady && exp.NoShowPassed(at, g.noShowGrace) {
			return fmt.Errorf("%w: entry window closed, reservation is a no-show", domain.ErrInvalidStateTransition)
		}

		from, err := domain.Transition(res, event, at)
		if err != nil {
			return err
		}
		if err = g.reservations.Update(ctx, res); err != nil {
			return fmt.Errorf("update reservation: %w", err)
		}

		if req.credentialID != "" {
			if err = g.engine.credentials.MarkConsumed(ctx, req.credentialID, at); err != nil {
				return err
			}
		}

		if err = g.checkEvents.Append(ctx, g.auditEvent(res, req, at, nil)); err != nil {
			return fmt.Errorf("append check event: %w", err)
		}

		status := exp.Status(at)
		if domain.ReleasesSlot(from, res.Status) {
			promoted, err := g.ledger.Release(ctx, exp)
			if err != nil {
				return err
			}
			if status, err = g.ledger.Commit(ctx, exp); err != nil {
				return err
			}
			eff.queueChanged(status, "Queue updated")
			eff.promoted(promoted, exp, status)
		}

		eff.add(topic+res.ID, res, status, message)
		eff.reservationChanged(res, status, message)
		return nil
	})
	if err != nil {
		err = g.deadline(ctx, err)
		g.recordFailure(ctx, res, req, err)
		return nil, err
	}

	g.flush(ctx, &eff)

	g.logger.Info("checkpoint passed",
		logger.String("reservation_id", res.ID),
		logger.String("action", string(req.action)),
		logger.String("kind", string(req.kind)),
		logger.String("operator_id", req.actor.ID),
	)

	return &domain.CheckResult{
		Message:       message,
		AttendeeName:  name,
		ReservationID: res.ID,
		Status:        res.Status,
		Timestamp:     at,
	}, nil
}

func (g *CheckpointGate) auditEvent(res *domain.Reservation, req checkRequest, at time.Time, cause error) *domain.CheckEvent {
	e := &domain.CheckEvent{
		ID:            uuid.New().String(),
		ReservationID: res.ID,
		ExperienceID:  res.ExperienceID,
		CredentialID:  req.credentialID,
		Action:        req.action,
		Kind:          req.kind,
		Outcome:       domain.OutcomeSuccess,
		Forced:        req.kind == domain.KindForced,
		OperatorID:    req.actor.ID,
		OccurredAt:    at,
	}
	if cause != nil {
		e.Outcome = domain.OutcomeFailure
		e.Reason = cause.Error()
	}
	return e
}

// recordFailure keeps rejected attempts in the audit trail. It runs after the
// unit of work was rolled back, so it cannot leave partial state behind.
func (g *CheckpointGate) recordFailure(ctx context.Context, res *domain.Reservation, req checkRequest, cause error) {
	actx, cancel := context.WithTimeout(context.WithoutCancel(ctx), failureAuditTimeout)
	defer cancel()

	if err := g.checkEvents.Append(actx, g.auditEvent(res, req, g.clock.Now(), cause)); err != nil {
		g.logger.Error("failed to record rejected check",
			logger.String("reservation_id", res.ID),
			logger.String("error", err.Error()),
		)
	}

	g.logger.Warn("checkpoint rejected",
		logger.String("reservation_id", res.ID),
		logger.String("action", string(req.action)),
		logger.String("kind", string(req.kind)),
		logger.String("reason", cause.Error()),
	)
}

// deadline reports a missed gate deadline as ErrTimeout instead of whatever
// the interrupted dependency returned.
func (g *CheckpointGate) deadline(ctx context.Context, err error) error {
	if errors.Is(err, domain.ErrTimeout) {
		return err
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: checkpoint did not answer within %s", domain.ErrTimeout, g.timeout)
	}
	return err
}
