package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

type AttendeeRepository struct {
	base
}

func NewAttendeeRepo(db *dbpg.DB) *AttendeeRepository {
	return &AttendeeRepository{base: newBase(db)}
}

func (r *AttendeeRepository) Create(ctx context.Context, a *domain.Attendee) error {
	query := `INSERT INTO attendees (id, name, role, telegram_chat_id, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.exec(ctx, query, a.ID, a.Name, a.Role, a.TelegramChatID, a.CreatedAt); err != nil {
		return fmt.Errorf("insert attendee: %w", err)
	}
	return nil
}

func (r *AttendeeRepository) GetByID(ctx context.Context, id string) (*domain.Attendee, error) {
	query := `SELECT id, name, role, telegram_chat_id, created_at FROM attendees WHERE id = $1`

	row, err := r.queryRow(ctx, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAttendeeNotFound
		}
		return nil, fmt.Errorf("get attendee: %w", err)
	}

	var a domain.Attendee
	if err = row.Scan(&a.ID, &a.Name, &a.Role, &a.TelegramChatID, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAttendeeNotFound
		}
		return nil, fmt.Errorf("scan attendee: %w", err)
	}
	return &a, nil
}

func (r *AttendeeRepository) List(ctx context.Context) ([]*domain.Attendee, error) {
	query := `SELECT id, name, role, telegram_chat_id, created_at FROM attendees ORDER BY created_at`

	rows, err := r.query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	defer rows.Close()

	var res []*domain.Attendee
	for rows.Next() {
		var a domain.Attendee
		if err = rows.Scan(&a.ID, &a.Name, &a.Role, &a.TelegramChatID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan attendee: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}
