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

const experienceColumns = `id, booth_id, title, description, starts_at, ends_at,
		EXTRACT(EPOCH FROM duration)::bigint, max_capacity, max_waiting_count,
		allow_waiting, allow_duplicate_reservation, is_reservation_enabled,
		current_participants, waiting_count, queue_seq, version, created_at, updated_at`

type ExperienceRepository struct {
	base
}

func NewExperienceRepo(db *dbpg.DB) *ExperienceRepository {
	return &ExperienceRepository{base: newBase(db)}
}

func (r *ExperienceRepository) Create(ctx context.Context, e *domain.Experience) error {
	query := `INSERT INTO experiences (id, booth_id, title, description, starts_at, ends_at, duration,
			  max_capacity, max_waiting_count, allow_waiting, allow_duplicate_reservation,
			  is_reservation_enabled, current_participants, waiting_count, queue_seq, version,
			  created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, make_interval(secs => $7), $8, $9, $10, $11, $12,
			  $13, $14, $15, $16, $17, $18)`
	_, err := r.exec(
		ctx, query,
		e.ID, e.BoothID, e.Title, e.Description, nullTime(e.StartsAt), nullTime(e.EndsAt),
		e.Duration.Seconds(), e.MaxCapacity, e.MaxWaitingCount, e.AllowWaiting,
		e.AllowDuplicateReservation, e.IsReservationEnabled, e.CurrentParticipants,
		e.WaitingCount, e.QueueSeq, e.Version, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert experience: %w", err)
	}
	return nil
}

func (r *ExperienceRepository) GetByID(ctx context.Context, id string) (*domain.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE id = $1`

	row, err := r.queryRow(ctx, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrExperienceNotFound
		}
		return nil, fmt.Errorf("get experience: %w", err)
	}

	e, err := scanExperience(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrExperienceNotFound
		}
		return nil, fmt.Errorf("scan experience: %w", err)
	}
	return e, nil
}

func (r *ExperienceRepository) List(ctx context.Context) ([]*domain.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences ORDER BY starts_at DESC NULLS LAST`

	rows, err := r.query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	defer rows.Close()

	var res []*domain.Experience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("scan experience: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *ExperienceRepository) Update(ctx context.Context, e *domain.Experience) error {
	query := `UPDATE experiences
			  SET max_capacity = $2, max_waiting_count = $3, allow_waiting = $4,
			      allow_duplicate_reservation = $5, is_reservation_enabled = $6,
			      current_participants = $7, waiting_count = $8, queue_seq = $9,
			      version = $10, updated_at = $11
			  WHERE id = $1`
	res, err := r.exec(
		ctx, query,
		e.ID, e.MaxCapacity, e.MaxWaitingCount, e.AllowWaiting, e.AllowDuplicateReservation,
		e.IsReservationEnabled, e.CurrentParticipants, e.WaitingCount, e.QueueSeq,
		e.Version, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update experience: %w", err)
	}
	return affected(res, domain.ErrExperienceNotFound)
}

func scanExperience(s scanner) (*domain.Experience, error) {
	var e domain.Experience
	var startsAt, endsAt sql.NullTime
	var durationSeconds int64
	if err := s.Scan(
		&e.ID, &e.BoothID, &e.Title, &e.Description, &startsAt, &endsAt,
		&durationSeconds, &e.MaxCapacity, &e.MaxWaitingCount,
		&e.AllowWaiting, &e.AllowDuplicateReservation, &e.IsReservationEnabled,
		&e.CurrentParticipants, &e.WaitingCount, &e.QueueSeq, &e.Version,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	e.StartsAt = startsAt.Time
	e.EndsAt = endsAt.Time
	e.Duration = time.Duration(durationSeconds) * time.Second
	return &e, nil
}
