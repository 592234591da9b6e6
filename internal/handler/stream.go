package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/rktclgh/fairplay-booth/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const (
	defaultHeartbeat = 15 * time.Second
	maxTopics        = 16
)

// Subscribe streams hub notifications for the requested topics as
// Server-Sent Events until the client goes away or CloseStreams is called.
func (h *Handler) Subscribe(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	topics := c.QueryArray("topic")
	if len(topics) == 0 || len(topics) > maxTopics {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: fmt.Sprintf("between 1 and %d topics required", maxTopics)})
		return
	}
	for _, t := range topics {
		if err := h.authorizeTopic(c.Request.Context(), actor, t); err != nil {
			h.handleError(c, err)
			return
		}
	}

	sub := h.subscriber.Subscribe(topics...)
	defer sub.Close()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.SSEvent("ready", ginext.H{"topics": topics})
	c.Writer.Flush()

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-h.streamsDone:
			c.SSEvent("shutdown", ginext.H{"reason": "server shutting down"})
			c.Writer.Flush()
			return
		case n, open := <-sub.C():
			if !open {
				return
			}
			c.SSEvent("notification", n)
			c.Writer.Flush()
		case <-heartbeat.C:
			if _, err := c.Writer.WriteString(": ping\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}
}

// CloseStreams ends every open event stream. http.Server.Shutdown does not
// cancel request contexts, so the server calls this when shutdown starts.
func (h *Handler) CloseStreams() {
	h.closeStreams.Do(func() { close(h.streamsDone) })
}

// authorizeTopic lets anyone follow queue counters and restricts personal
// topics to their owner and operators.
func (h *Handler) authorizeTopic(ctx context.Context, actor domain.Actor, topic string) error {
	switch {
	case strings.HasPrefix(topic, domain.TopicQueue):
		return nil

	case strings.HasPrefix(topic, domain.TopicAttendee):
		if !actor.CanAccess(strings.TrimPrefix(topic, domain.TopicAttendee)) {
			return fmt.Errorf("%w: topic %s", domain.ErrForbidden, topic)
		}
		return nil

	case strings.HasPrefix(topic, domain.TopicReservation),
		strings.HasPrefix(topic, domain.TopicCheckIn),
		strings.HasPrefix(topic, domain.TopicCheckOut):
		id := topic[strings.Index(topic, "/")+1:]
		if id == "" {
			return fmt.Errorf("%w: topic %s has no reservation id", domain.ErrValidation, topic)
		}
		_, err := h.reservationService.Get(ctx, actor, id)
		return err

	default:
		return fmt.Errorf("%w: unknown topic %q", domain.ErrValidation, topic)
	}
}
