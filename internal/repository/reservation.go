package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

const reservationColumns = `r.id, r.experience_id, r.attendee_id, r.status, r.queue_position,
		r.queue_seq, r.notes, r.reserved_at, r.ready_at, r.started_at, r.completed_at,
		r.cancelled_at, r.updated_at`

type ReservationRepository struct {
	base
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{base: newBase(db)}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `INSERT INTO reservations (id, experience_id, attendee_id, status, queue_position,
			  queue_seq, notes, reserved_at, ready_at, started_at, completed_at, cancelled_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.exec(
		ctx, query,
		res.ID, res.ExperienceID, res.AttendeeID, res.Status, res.QueuePosition,
		res.QueueSeq, res.Notes, res.ReservedAt, res.ReadyAt, res.StartedAt,
		res.CompletedAt, res.CancelledAt, res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations r WHERE r.id = $1`
	return r.getOne(ctx, query, id)
}

func (r *ReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	query := `UPDATE reservations
			  SET status = $2, queue_position = $3, queue_seq = $4, notes = $5, ready_at = $6,
			      started_at = $7, completed_at = $8, cancelled_at = $9, updated_at = $10
			  WHERE id = $1`
	result, err := r.exec(
		ctx, query,
		res.ID, res.Status, res.QueuePosition, res.QueueSeq, res.Notes, res.ReadyAt,
		res.StartedAt, res.CompletedAt, res.CancelledAt, res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}
	return affected(result, domain.ErrReservationNotFound)
}

func (r *ReservationRepository) FindActive(ctx context.Context, experienceID, attendeeID string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations r
			  WHERE r.experience_id = $1 AND r.attendee_id = $2 AND r.status = ANY($3)
			  ORDER BY r.reserved_at DESC
			  LIMIT 1`
	return r.getOne(ctx, query, experienceID, attendeeID, pq.Array(domain.ActiveStatuses))
}

func (r *ReservationRepository) ListWaiting(ctx context.Context, experienceID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations r
			  WHERE r.experience_id = $1 AND r.status = $2
			  ORDER BY r.queue_seq`
	return r.list(ctx, query, experienceID, domain.StatusWaiting)
}

func (r *ReservationRepository) ShiftQueue(ctx context.Context, experienceID string, position int) error {
	query := `UPDATE reservations
			  SET queue_position = queue_position - 1
			  WHERE experience_id = $1 AND status = $2 AND queue_position > $3`
	if _, err := r.exec(ctx, query, experienceID, domain.StatusWaiting, position); err != nil {
		return fmt.Errorf("shift queue: %w", err)
	}
	return nil
}

func (r *ReservationRepository) ListByAttendee(ctx context.Context, attendeeID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations r
			  WHERE r.attendee_id = $1
			  ORDER BY r.reserved_at DESC`
	return r.list(ctx, query, attendeeID)
}

func (r *ReservationRepository) ListByExperience(ctx context.Context, experienceID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations r
			  WHERE r.experience_id = $1
			  ORDER BY r.reserved_at`
	return r.list(ctx, query, experienceID)
}

func (r *ReservationRepository) ListOverdue(ctx context.Context, deadline time.Time) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations r
			  JOIN experiences e ON e.id = r.experience_id
			  WHERE e.ends_at IS NOT NULL AND e.ends_at <= $1 AND r.status = ANY($2)
			  ORDER BY r.reserved_at`
	overdue := []domain.ReservationStatus{domain.StatusWaiting, domain.StatusReady}
	return r.list(ctx, query, deadline, pq.Array(overdue))
}

func (r *ReservationRepository) getOne(ctx context.Context, query string, args ...interface{}) (*domain.Reservation, error) {
	row, err := r.queryRow(ctx, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}
	return res, nil
}

func (r *ReservationRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Reservation, error) {
	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		item, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, item)
	}

	return res, rows.Err()
}

func scanReservation(s scanner) (*domain.Reservation, error) {
	var res domain.Reservation
	err := s.Scan(
		&res.ID, &res.ExperienceID, &res.AttendeeID, &res.Status, &res.QueuePosition,
		&res.QueueSeq, &res.Notes, &res.ReservedAt, &res.ReadyAt, &res.StartedAt,
		&res.CompletedAt, &res.CancelledAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
