package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/rktclgh/fairplay-booth/internal/handler/dto"
	"github.com/rktclgh/fairplay-booth/internal/hub"
	"github.com/rktclgh/fairplay-booth/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type ExperienceSvc interface {
	Create(ctx context.Context, actor domain.Actor, in domain.CreateExperienceInput) (*domain.Experience, error)
	GetByID(ctx context.Context, id string) (*domain.Experience, error)
	List(ctx context.Context) ([]*domain.Experience, error)
	UpdateSettings(ctx context.Context, actor domain.Actor, id string, in domain.UpdateExperienceInput) (*domain.Experience, error)
}

type ReservationSvc interface {
	Reserve(ctx context.Context, actor domain.Actor, in domain.ReserveInput) (*domain.Reservation, error)
	Cancel(ctx context.Context, actor domain.Actor, reservationID string) (*domain.Reservation, error)
	Get(ctx context.Context, actor domain.Actor, reservationID string) (*domain.Reservation, error)
	ListByAttendee(ctx context.Context, actor domain.Actor, attendeeID string) ([]*domain.Reservation, error)
	ListByExperience(ctx context.Context, actor domain.Actor, experienceID string) ([]*domain.Reservation, error)
	QueueStatus(ctx context.Context, experienceID string) (*domain.QueueStatus, error)
}

type CredentialSvc interface {
	Issue(ctx context.Context, actor domain.Actor, reservationID string) (*domain.Credential, error)
	Validate(ctx context.Context, actor domain.Actor, code string, kind domain.CredentialKind) (*domain.Credential, error)
}

type CheckpointSvc interface {
	CheckIn(ctx context.Context, actor domain.Actor, code string, kind domain.CredentialKind) (*domain.CheckResult, error)
	CheckOut(ctx context.Context, actor domain.Actor, code string, kind domain.CredentialKind) (*domain.CheckResult, error)
	ForceCheckIn(ctx context.Context, actor domain.Actor, reservationID string) (*domain.CheckResult, error)
	ForceCheckOut(ctx context.Context, actor domain.Actor, reservationID string) (*domain.CheckResult, error)
	History(ctx context.Context, actor domain.Actor, reservationID string) ([]*domain.CheckEvent, error)
}

type AttendeeSvc interface {
	Create(ctx context.Context, input domain.CreateAttendeeInput) (*domain.Attendee, error)
	List(ctx context.Context) ([]*domain.Attendee, error)
}

type TokenIssuer interface {
	Issue(actor domain.Actor) (string, error)
}

type Subscriber interface {
	Subscribe(topics ...string) *hub.Subscription
}

type Services struct {
	Experiences  ExperienceSvc
	Reservations ReservationSvc
	Credentials  CredentialSvc
	Checkpoint   CheckpointSvc
	Attendees    AttendeeSvc
	Tokens       TokenIssuer
	Subscriber   Subscriber
}

type Handler struct {
	experienceService  ExperienceSvc
	reservationService ReservationSvc
	credentialService  CredentialSvc
	checkpointService  CheckpointSvc
	attendeeService    AttendeeSvc
	tokens             TokenIssuer
	subscriber         Subscriber
	heartbeat          time.Duration

	streamsDone  chan struct{}
	closeStreams sync.Once
}

func NewHandler(s Services) *Handler {
	return &Handler{
		experienceService:  s.Experiences,
		reservationService: s.Reservations,
		credentialService:  s.Credentials,
		checkpointService:  s.Checkpoint,
		attendeeService:    s.Attendees,
		tokens:             s.Tokens,
		subscriber:         s.Subscriber,
		heartbeat:          defaultHeartbeat,
		streamsDone:        make(chan struct{}),
	}
}

// Experiences

func (h *Handler) CreateExperience(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startsAt, err := parseOptionalTime(req.StartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid starts_at format, expected RFC3339"})
		return
	}
	endsAt, err := parseOptionalTime(req.EndsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ends_at format, expected RFC3339"})
		return
	}

	input := domain.CreateExperienceInput{
		BoothID:                   req.BoothID,
		Title:                     req.Title,
		Description:               req.Description,
		StartsAt:                  startsAt,
		EndsAt:                    endsAt,
		Duration:                  time.Duration(req.DurationMinutes) * time.Minute,
		MaxCapacity:               req.MaxCapacity,
		MaxWaitingCount:           req.MaxWaitingCount,
		AllowWaiting:              req.AllowWaiting,
		AllowDuplicateReservation: req.AllowDuplicateReservation,
		IsReservationEnabled:      req.IsReservationEnabled,
	}

	exp, err := h.experienceService.Create(c.Request.Context(), actor, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToExperienceResponse(exp))
}

func (h *Handler) ListExperiences(c *ginext.Context) {
	experiences, err := h.experienceService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ExperienceResponse, 0, len(experiences))
	for _, e := range experiences {
		resp = append(resp, dto.ToExperienceResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetExperience(c *ginext.Context) {
	id, ok := pathID(c, "experience")
	if !ok {
		return
	}

	exp, err := h.experienceService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExperienceResponse(exp))
}

func (h *Handler) UpdateExperience(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "experience")
	if !ok {
		return
	}

	var req dto.UpdateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	exp, err := h.experienceService.UpdateSettings(c.Request.Context(), actor, id, domain.UpdateExperienceInput{
		MaxCapacity:               req.MaxCapacity,
		MaxWaitingCount:           req.MaxWaitingCount,
		AllowWaiting:              req.AllowWaiting,
		AllowDuplicateReservation: req.AllowDuplicateReservation,
		IsReservationEnabled:      req.IsReservationEnabled,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExperienceResponse(exp))
}

func (h *Handler) QueueStatus(c *ginext.Context) {
	id, ok := pathID(c, "experience")
	if !ok {
		return
	}

	status, err := h.reservationService.QueueStatus(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQueueStatusResponse(status))
}

// Reservations

func (h *Handler) Reserve(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	experienceID, ok := pathID(c, "experience")
	if !ok {
		return
	}

	var req dto.ReserveRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	res, err := h.reservationService.Reserve(c.Request.Context(), actor, domain.ReserveInput{
		ExperienceID: experienceID,
		AttendeeID:   req.AttendeeID,
		Notes:        req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(res))
}

func (h *Handler) ListExperienceReservations(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	experienceID, ok := pathID(c, "experience")
	if !ok {
		return
	}

	reservations, err := h.reservationService.ListByExperience(c.Request.Context(), actor, experienceID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponses(reservations))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "reservation")
	if !ok {
		return
	}

	res, err := h.reservationService.Get(c.Request.Context(), actor, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "reservation")
	if !ok {
		return
	}

	res, err := h.reservationService.Cancel(c.Request.Context(), actor, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) IssueCredential(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "reservation")
	if !ok {
		return
	}

	cred, err := h.credentialService.Issue(c.Request.Context(), actor, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCredentialResponse(cred, true))
}

func (h *Handler) CheckEvents(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "reservation")
	if !ok {
		return
	}

	events, err := h.checkpointService.History(c.Request.Context(), actor, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckEventResponses(events))
}

// Checkpoint

func (h *Handler) ValidateCode(c *ginext.Context) {
	actor, req, ok := h.codeRequest(c)
	if !ok {
		return
	}

	cred, err := h.credentialService.Validate(c.Request.Context(), actor, req.Code, domain.CredentialKind(req.Kind))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCredentialResponse(cred, false))
}

func (h *Handler) CheckIn(c *ginext.Context) {
	actor, req, ok := h.codeRequest(c)
	if !ok {
		return
	}

	result, err := h.checkpointService.CheckIn(c.Request.Context(), actor, req.Code, domain.CredentialKind(req.Kind))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckResultResponse(result))
}

func (h *Handler) CheckOut(c *ginext.Context) {
	actor, req, ok := h.codeRequest(c)
	if !ok {
		return
	}

	result, err := h.checkpointService.CheckOut(c.Request.Context(), actor, req.Code, domain.CredentialKind(req.Kind))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckResultResponse(result))
}

func (h *Handler) ForceCheckIn(c *ginext.Context) {
	h.force(c, h.checkpointService.ForceCheckIn)
}

func (h *Handler) ForceCheckOut(c *ginext.Context) {
	h.force(c, h.checkpointService.ForceCheckOut)
}

func (h *Handler) force(c *ginext.Context, op func(context.Context, domain.Actor, string) (*domain.CheckResult, error)) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "reservation")
	if !ok {
		return
	}

	result, err := op(c.Request.Context(), actor, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckResultResponse(result))
}

func (h *Handler) codeRequest(c *ginext.Context) (domain.Actor, dto.CodeRequest, bool) {
	var req dto.CodeRequest
	actor, ok := h.actor(c)
	if !ok {
		return actor, req, false
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return actor, req, false
	}
	return actor, req, true
}

// Attendees

func (h *Handler) CreateAttendee(c *ginext.Context) {
	var req dto.CreateAttendeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	role := domain.Role(req.Role)
	if role == domain.RoleOperator {
		caller, ok := middleware.ActorFrom(c)
		if !ok || !caller.IsOperator() {
			h.handleError(c, fmt.Errorf("%w: only operators can register operators", domain.ErrForbidden))
			return
		}
	}

	attendee, err := h.attendeeService.Create(c.Request.Context(), domain.CreateAttendeeInput{
		Name:           req.Name,
		Role:           role,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	token, err := h.tokens.Issue(domain.Actor{ID: attendee.ID, Name: attendee.Name, Role: attendee.Role})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateAttendeeResponse{
		Attendee: dto.ToAttendeeResponse(attendee),
		Token:    token,
	})
}

func (h *Handler) ListAttendees(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	if !actor.IsOperator() {
		h.handleError(c, fmt.Errorf("%w: operators only", domain.ErrForbidden))
		return
	}

	attendees, err := h.attendeeService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AttendeeResponse, 0, len(attendees))
	for _, a := range attendees {
		resp = append(resp, dto.ToAttendeeResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetAttendeeReservations(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	attendeeID, ok := pathID(c, "attendee")
	if !ok {
		return
	}

	reservations, err := h.reservationService.ListByAttendee(c.Request.Context(), actor, attendeeID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponses(reservations))
}

func (h *Handler) actor(c *ginext.Context) (domain.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
	}
	return actor, ok
}

func pathID(c *ginext.Context, what string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + what + " id"})
		return "", false
	}
	return id, true
}

func parseOptionalTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrExperienceNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrAttendeeNotFound),
		errors.Is(err, domain.ErrCredentialNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrReservationDisabled),
		errors.Is(err, domain.ErrDuplicateReservation),
		errors.Is(err, domain.ErrInvalidStateTransition),
		errors.Is(err, domain.ErrCredentialAlreadyConsumed),
		errors.Is(err, domain.ErrCodeCollision):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCredentialExpired):
		c.JSON(http.StatusGone, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrMalformedCode):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrTimeout):
		c.JSON(http.StatusGatewayTimeout, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
