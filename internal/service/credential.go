package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rktclgh/fairplay-booth/internal/credential"
	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	DefaultCredentialTTL = 300 * time.Second
	maxCodeAttempts      = 5
)

type CredentialService struct {
	*engine
	codec *credential.Codec
	ttl   time.Duration
}

func NewCredentialService(d Deps, codec *credential.Codec, ttl time.Duration) *CredentialService {
	if ttl <= 0 {
		ttl = DefaultCredentialTTL
	}
	return &CredentialService{
		engine: newEngine(d),
		codec:  codec,
		ttl:    ttl,
	}
}

// Issue hands out a fresh credential for a READY or IN_PROGRESS reservation.
// Any credential still outstanding for it is revoked in the same unit of work.
func (s *CredentialService) Issue(ctx context.Context, actor domain.Actor, reservationID string) (*domain.Credential, error) {
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if !actor.CanAccess(res.AttendeeID) {
		return nil, fmt.Errorf("%w: reservation belongs to another attendee", domain.ErrForbidden)
	}

	var cred *domain.Credential
	var revoked int
	err = s.tx.InExperience(ctx, res.ExperienceID, func(ctx context.Context) error {
		res, err := s.reservations.GetByID(ctx, reservationID)
		if err != nil {
			return err
		}
		if !res.Status.Occupies() {
			return fmt.Errorf("%w: no entry code for a %s reservation", domain.ErrInvalidStateTransition, res.Status)
		}

		now := s.clock.Now()
		if res.Status == domain.StatusReady {
			exp, err := s.experiences.GetByID(ctx, res.ExperienceID)
			if err != nil {
				return err
			}
			if exp.NoShowPassed(now, s.noShowGrace) {
				return fmt.Errorf("%w: entry window closed, reservation is a no-show", domain.ErrInvalidStateTransition)
			}
		}

		if revoked, err = s.credentials.RevokeActive(ctx, res.ID, now); err != nil {
			return fmt.Errorf("revoke previous credential: %w", err)
		}

		cred, err = s.create(ctx, res, now)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("issue credential: %w", err)
	}

	s.logger.Info("credential issued",
		logger.String("reservation_id", reservationID),
		logger.String("credential_id", cred.ID),
		logger.Int("revoked", revoked),
	)

	return cred, nil
}

func (s *CredentialService) create(ctx context.Context, res *domain.Reservation, now time.Time) (*domain.Credential, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := credential.NewManualCode()
		if err != nil {
			return nil, err
		}

		cred := &domain.Credential{
			ID:            uuid.New().String(),
			ReservationID: res.ID,
			ManualCode:    code,
			IssuedAt:      now,
			ExpiresAt:     now.Add(s.ttl),
		}
		cred.QRPayload, err = s.codec.Encode(credential.QRClaims{
			CredentialID:  cred.ID,
			ReservationID: res.ID,
			ExpiresAt:     cred.ExpiresAt,
		})
		if err != nil {
			return nil, err
		}

		err = s.credentials.Create(ctx, cred)
		if errors.Is(err, domain.ErrCodeCollision) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("store credential: %w", err)
		}
		return cred, nil
	}
	return nil, fmt.Errorf("%w: gave up after %d attempts", domain.ErrCodeCollision, maxCodeAttempts)
}

// codeRef is a syntactically valid code, ready for lookup.
type codeRef struct {
	kind          domain.CredentialKind
	manualCode    string
	credentialID  string
	reservationID string
}

// parseCode rejects malformed input without touching storage.
func (s *CredentialService) parseCode(code string, kind domain.CredentialKind) (codeRef, error) {
	switch kind {
	case domain.KindManual:
		c, err := credential.ParseManualCode(code)
		if err != nil {
			return codeRef{}, err
		}
		return codeRef{kind: kind, manualCode: c}, nil
	case domain.KindQR:
		claims, err := s.codec.Decode(code)
		if err != nil {
			return codeRef{}, err
		}
		return codeRef{kind: kind, credentialID: claims.CredentialID, reservationID: claims.ReservationID}, nil
	default:
		return codeRef{}, fmt.Errorf("%w: kind must be %q or %q", domain.ErrValidation, domain.KindQR, domain.KindManual)
	}
}

func (s *CredentialService) lookup(ctx context.Context, ref codeRef) (*domain.Credential, error) {
	if ref.kind == domain.KindManual {
		return s.credentials.GetByManualCode(ctx, ref.manualCode)
	}

	cred, err := s.credentials.GetByID(ctx, ref.credentialID)
	if err != nil {
		return nil, err
	}
	if cred.ReservationID != ref.reservationID {
		return nil, domain.ErrCredentialNotFound
	}
	return cred, nil
}

// Validate reports whether code would be accepted right now, without
// consuming it.
func (s *CredentialService) Validate(ctx context.Context, actor domain.Actor, code string, kind domain.CredentialKind) (*domain.Credential, error) {
	if !actor.IsOperator() {
		return nil, fmt.Errorf("%w: only checkpoint operators can scan codes", domain.ErrForbidden)
	}
	ref, err := s.parseCode(code, kind)
	if err != nil {
		return nil, err
	}
	cred, err := s.lookup(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err = cred.Check(s.clock.Now()); err != nil {
		return nil, err
	}
	return cred, nil
}
