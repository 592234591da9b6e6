package scheduler

import (
	"context"
	"time"

	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type noShowSweeper interface {
	SweepNoShows(ctx context.Context) ([]*domain.Reservation, error)
}

// Scheduler periodically releases reservations of experiences that ended
// without the attendee checking in.
type Scheduler struct {
	sweeper  noShowSweeper
	interval time.Duration
	logger   logger.Logger
}

func New(
	sweeper noShowSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("no-show sweeper started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("no-show sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	// a partial sweep still reports what it closed
	closed, err := s.sweeper.SweepNoShows(ctx)
	if err != nil {
		s.logger.Error("failed to sweep no-shows",
			logger.String("error", err.Error()),
		)
	}

	for _, r := range closed {
		s.logger.Info("reservation closed by sweep",
			logger.String("reservation_id", r.ID),
			logger.String("attendee_id", r.AttendeeID),
			logger.String("experience_id", r.ExperienceID),
			logger.String("status", string(r.Status)),
		)
	}
}
