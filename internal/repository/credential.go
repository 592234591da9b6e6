package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

const credentialColumns = `id, reservation_id, qr_payload, manual_code, issued_at, expires_at,
		consumed_at, revoked_at`

type CredentialRepository struct {
	base
}

func NewCredentialRepo(db *dbpg.DB) *CredentialRepository {
	return &CredentialRepository{base: newBase(db)}
}

// Create skips the insert on a manual code conflict instead of raising, so a
// collision does not abort the surrounding transaction.
func (r *CredentialRepository) Create(ctx context.Context, c *domain.Credential) error {
	query := `INSERT INTO credentials (id, reservation_id, qr_payload, manual_code, issued_at, expires_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  ON CONFLICT (manual_code) DO NOTHING`
	res, err := r.exec(ctx, query, c.ID, c.ReservationID, c.QRPayload, c.ManualCode, c.IssuedAt, c.ExpiresAt)
	if err != nil {
		return fmt.Errorf("insert credential: %w", err)
	}
	return affected(res, domain.ErrCodeCollision)
}

func (r *CredentialRepository) GetByID(ctx context.Context, id string) (*domain.Credential, error) {
	query := `SELECT ` + credentialColumns + ` FROM credentials WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *CredentialRepository) GetByManualCode(ctx context.Context, code string) (*domain.Credential, error) {
	query := `SELECT ` + credentialColumns + ` FROM credentials WHERE manual_code = $1`
	return r.getOne(ctx, query, code)
}

func (r *CredentialRepository) RevokeActive(ctx context.Context, reservationID string, at time.Time) (int, error) {
	query := `UPDATE credentials
			  SET revoked_at = $2
			  WHERE reservation_id = $1 AND consumed_at IS NULL AND revoked_at IS NULL`
	res, err := r.exec(ctx, query, reservationID, at)
	if err != nil {
		return 0, fmt.Errorf("revoke credentials: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return int(n), nil
}

func (r *CredentialRepository) MarkConsumed(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE credentials SET consumed_at = $2 WHERE id = $1 AND consumed_at IS NULL`
	res, err := r.exec(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("consume credential: %w", err)
	}
	if err = affected(res, domain.ErrCredentialAlreadyConsumed); err == nil {
		return nil
	}

	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return getErr
	}
	return err
}

func (r *CredentialRepository) getOne(ctx context.Context, query string, args ...interface{}) (*domain.Credential, error) {
	row, err := r.queryRow(ctx, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCredentialNotFound
		}
		return nil, fmt.Errorf("get credential: %w", err)
	}

	var c domain.Credential
	err = row.Scan(
		&c.ID, &c.ReservationID, &c.QRPayload, &c.ManualCode, &c.IssuedAt, &c.ExpiresAt,
		&c.ConsumedAt, &c.RevokedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCredentialNotFound
		}
		return nil, fmt.Errorf("scan credential: %w", err)
	}
	return &c, nil
}

type CheckEventRepository struct {
	base
}

func NewCheckEventRepo(db *dbpg.DB) *CheckEventRepository {
	return &CheckEventRepository{base: newBase(db)}
}

func (r *CheckEventRepository) Append(ctx context.Context, e *domain.CheckEvent) error {
	query := `INSERT INTO check_events (id, reservation_id, experience_id, credential_id, action,
			  kind, outcome, reason, forced, operator_id, occurred_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	credentialID := sql.NullString{String: e.CredentialID, Valid: e.CredentialID != ""}
	_, err := r.exec(
		ctx, query,
		e.ID, e.ReservationID, e.ExperienceID, credentialID, e.Action,
		e.Kind, e.Outcome, e.Reason, e.Forced, e.OperatorID, e.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("insert check event: %w", err)
	}
	return nil
}

func (r *CheckEventRepository) ListByReservation(ctx context.Context, reservationID string) ([]*domain.CheckEvent, error) {
	query := `SELECT id, reservation_id, experience_id, credential_id, action, kind, outcome,
			  reason, forced, operator_id, occurred_at
			  FROM check_events
			  WHERE reservation_id = $1
			  ORDER BY occurred_at, seq`

	rows, err := r.query(ctx, query, reservationID)
	if err != nil {
		return nil, fmt.Errorf("list check events: %w", err)
	}
	defer rows.Close()

	var events []*domain.CheckEvent
	for rows.Next() {
		var e domain.CheckEvent
		var credentialID sql.NullString
		if err = rows.Scan(
			&e.ID, &e.ReservationID, &e.ExperienceID, &credentialID, &e.Action, &e.Kind,
			&e.Outcome, &e.Reason, &e.Forced, &e.OperatorID, &e.OccurredAt,
		); err != nil {
			return nil, fmt.Errorf("scan check event: %w", err)
		}
		e.CredentialID = credentialID.String
		events = append(events, &e)
	}

	return events, rows.Err()
}
