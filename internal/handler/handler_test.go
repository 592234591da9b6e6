package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/rktclgh/fairplay-booth/internal/handler/dto"
	hmocks "github.com/rktclgh/fairplay-booth/internal/handler/mocks"
	"github.com/rktclgh/fairplay-booth/internal/hub"
	"github.com/rktclgh/fairplay-booth/internal/middleware"
	"github.com/rktclgh/fairplay-booth/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var (
	testNow  = time.Date(2026, 5, 14, 10, 0, 0, 0, time.UTC)
	operator = domain.Actor{ID: uuid.NewString(), Name: "Gate A", Role: domain.RoleOperator}
	alice    = domain.Actor{ID: uuid.NewString(), Name: "Alice", Role: domain.RoleAttendee}
)

const (
	operatorToken = "operator-token"
	aliceToken    = "alice-token"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type staticParser map[string]domain.Actor

func (p staticParser) Parse(token string) (domain.Actor, error) {
	actor, ok := p[token]
	if !ok {
		return domain.Actor{}, errors.New("unknown token")
	}
	return actor, nil
}

type testEnv struct {
	experiences  *hmocks.MockExperienceSvc
	reservations *hmocks.MockReservationSvc
	credentials  *hmocks.MockCredentialSvc
	checkpoint   *hmocks.MockCheckpointSvc
	attendees    *hmocks.MockAttendeeSvc
	tokens       *hmocks.MockTokenIssuer
	hub          *hub.Hub
	handler      *Handler
	router       http.Handler
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		experiences:  hmocks.NewMockExperienceSvc(t),
		reservations: hmocks.NewMockReservationSvc(t),
		credentials:  hmocks.NewMockCredentialSvc(t),
		checkpoint:   hmocks.NewMockCheckpointSvc(t),
		attendees:    hmocks.NewMockAttendeeSvc(t),
		tokens:       hmocks.NewMockTokenIssuer(t),
		hub:          hub.New(newTestLogger(t)),
	}

	h := NewHandler(Services{
		Experiences:  env.experiences,
		Reservations: env.reservations,
		Credentials:  env.credentials,
		Checkpoint:   env.checkpoint,
		Attendees:    env.attendees,
		Tokens:       env.tokens,
		Subscriber:   env.hub,
	})
	h.heartbeat = 10 * time.Millisecond
	env.handler = h

	parser := staticParser{operatorToken: operator, aliceToken: alice}
	env.router = router.InitRouter("test", h, router.Auth{
		Required: middleware.Auth(parser),
		Optional: middleware.OptionalAuth(parser),
	})
	return env
}

func (env *testEnv) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

// --- Experiences ---

func TestHandler_CreateExperience_Success(t *testing.T) {
	env := setupRouter(t)

	exp := &domain.Experience{
		ID:                   uuid.NewString(),
		Title:                "VR roller coaster",
		StartsAt:             testNow,
		EndsAt:               testNow.Add(2 * time.Hour),
		Duration:             10 * time.Minute,
		MaxCapacity:          4,
		IsReservationEnabled: true,
		CreatedAt:            testNow,
	}
	env.experiences.EXPECT().
		Create(mock.Anything, operator, mock.MatchedBy(func(in domain.CreateExperienceInput) bool {
			return in.Title == "VR roller coaster" && in.Duration == 10*time.Minute && in.EndsAt.Equal(testNow.Add(2*time.Hour))
		})).
		Return(exp, nil)

	w := env.do(http.MethodPost, "/api/experiences", operatorToken, dto.CreateExperienceRequest{
		Title:           "VR roller coaster",
		StartsAt:        testNow.Format(time.RFC3339),
		EndsAt:          testNow.Add(2 * time.Hour).Format(time.RFC3339),
		DurationMinutes: 10,
		MaxCapacity:     4,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decode[dto.ExperienceResponse](t, w)
	assert.Equal(t, exp.ID, resp.ID)
	assert.Equal(t, 10, resp.DurationMinutes)
}

func TestHandler_CreateExperience_BadRequest(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/experiences", operatorToken, `{"title":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPost, "/api/experiences", operatorToken, `{"title":"X","max_capacity":2,"ends_at":"tomorrow"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateExperience_RequiresToken(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/experiences", "", `{"title":"X","max_capacity":2}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateExperience_Forbidden(t *testing.T) {
	env := setupRouter(t)

	env.experiences.EXPECT().Create(mock.Anything, alice, mock.Anything).
		Return(nil, fmt.Errorf("%w: operators only", domain.ErrForbidden))

	w := env.do(http.MethodPost, "/api/experiences", aliceToken, `{"title":"X","max_capacity":2}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_GetExperience(t *testing.T) {
	env := setupRouter(t)
	id := uuid.NewString()

	w := env.do(http.MethodGet, "/api/experiences/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env.experiences.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrExperienceNotFound)
	w = env.do(http.MethodGet, "/api/experiences/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UpdateExperience(t *testing.T) {
	env := setupRouter(t)
	id := uuid.NewString()

	env.experiences.EXPECT().
		UpdateSettings(mock.Anything, operator, id, mock.MatchedBy(func(in domain.UpdateExperienceInput) bool {
			return in.MaxCapacity != nil && *in.MaxCapacity == 6 && in.AllowWaiting == nil
		})).
		Return(&domain.Experience{ID: id, MaxCapacity: 6}, nil)

	w := env.do(http.MethodPatch, "/api/experiences/"+id, operatorToken, `{"max_capacity":6}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 6, decode[dto.ExperienceResponse](t, w).MaxCapacity)
}

func TestHandler_QueueStatus(t *testing.T) {
	env := setupRouter(t)
	id := uuid.NewString()
	wait := 30 * time.Minute

	env.reservations.EXPECT().QueueStatus(mock.Anything, id).Return(&domain.QueueStatus{
		ExperienceID:        id,
		CurrentParticipants: 2,
		WaitingCount:        3,
		MaxCapacity:         2,
		CongestionRate:      100,
		EstimatedWaitTime:   &wait,
		Version:             9,
	}, nil)

	w := env.do(http.MethodGet, "/api/experiences/"+id+"/queue", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.QueueStatusResponse](t, w)
	assert.Equal(t, float64(100), resp.CongestionRate)
	require.NotNil(t, resp.EstimatedWaitMinutes)
	assert.Equal(t, 30, *resp.EstimatedWaitMinutes)
	assert.Equal(t, int64(9), resp.Version)
}

// --- Reservations ---

func TestHandler_Reserve(t *testing.T) {
	env := setupRouter(t)
	expID := uuid.NewString()

	env.reservations.EXPECT().
		Reserve(mock.Anything, alice, domain.ReserveInput{ExperienceID: expID}).
		Return(&domain.Reservation{ID: uuid.NewString(), ExperienceID: expID, AttendeeID: alice.ID, Status: domain.StatusWaiting, QueuePosition: 2, ReservedAt: testNow}, nil)

	w := env.do(http.MethodPost, "/api/experiences/"+expID+"/reservations", aliceToken, nil)

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode[dto.ReservationResponse](t, w)
	assert.Equal(t, "WAITING", resp.Status)
	assert.Equal(t, 2, resp.QueuePosition)
}

func TestHandler_Reserve_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"full", domain.ErrCapacityExceeded, http.StatusConflict},
		{"disabled", domain.ErrReservationDisabled, http.StatusConflict},
		{"duplicate", domain.ErrDuplicateReservation, http.StatusConflict},
		{"unknown experience", domain.ErrExperienceNotFound, http.StatusNotFound},
		{"storage", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupRouter(t)
			expID := uuid.NewString()
			env.reservations.EXPECT().Reserve(mock.Anything, alice, mock.Anything).Return(nil, tt.err)

			w := env.do(http.MethodPost, "/api/experiences/"+expID+"/reservations", aliceToken, dto.ReserveRequest{Notes: "group of two"})

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestHandler_CancelReservation(t *testing.T) {
	env := setupRouter(t)
	id := uuid.NewString()
	cancelled := testNow

	env.reservations.EXPECT().Cancel(mock.Anything, alice, id).
		Return(&domain.Reservation{ID: id, Status: domain.StatusCancelled, CancelledAt: &cancelled}, nil)

	w := env.do(http.MethodPost, "/api/reservations/"+id+"/cancel", aliceToken, nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.ReservationResponse](t, w)
	assert.Equal(t, "CANCELLED", resp.Status)
	assert.Equal(t, testNow.Format(time.RFC3339), resp.CancelledAt)
}

func TestHandler_IssueCredential(t *testing.T) {
	env := setupRouter(t)
	id := uuid.NewString()

	env.credentials.EXPECT().Issue(mock.Anything, alice, id).Return(&domain.Credential{
		ID:            uuid.NewString(),
		ReservationID: id,
		QRPayload:     "payload",
		ManualCode:    "AB12-C3F4",
		IssuedAt:      testNow,
		ExpiresAt:     testNow.Add(5 * time.Minute),
	}, nil)

	w := env.do(http.MethodPost, "/api/reservations/"+id+"/credential", aliceToken, nil)

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode[dto.CredentialResponse](t, w)
	assert.Equal(t, "AB12-C3F4", resp.ManualCode)
	assert.Equal(t, "payload", resp.QRPayload)
}

// --- Checkpoint ---

func TestHandler_CheckIn(t *testing.T) {
	env := setupRouter(t)
	resID := uuid.NewString()

	env.checkpoint.EXPECT().CheckIn(mock.Anything, operator, "AB12-C3F4", domain.KindManual).Return(&domain.CheckResult{
		Message:       "Checked in",
		AttendeeName:  "Alice",
		ReservationID: resID,
		Status:        domain.StatusInProgress,
		Timestamp:     testNow,
	}, nil)

	w := env.do(http.MethodPost, "/api/checkpoint/check-in", operatorToken, dto.CodeRequest{Code: "AB12-C3F4", Kind: "manual"})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.CheckResultResponse](t, w)
	assert.Equal(t, "Alice", resp.AttendeeName)
	assert.Equal(t, "IN_PROGRESS", resp.Status)
}

func TestHandler_CheckIn_Failures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"expired", domain.ErrCredentialExpired, http.StatusGone},
		{"consumed", domain.ErrCredentialAlreadyConsumed, http.StatusConflict},
		{"unknown", domain.ErrCredentialNotFound, http.StatusNotFound},
		{"malformed", domain.ErrMalformedCode, http.StatusBadRequest},
		{"wrong state", domain.ErrInvalidStateTransition, http.StatusConflict},
		{"timeout", fmt.Errorf("%w: lock experience", domain.ErrTimeout), http.StatusGatewayTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupRouter(t)
			env.checkpoint.EXPECT().CheckOut(mock.Anything, operator, "code", domain.KindQR).Return(nil, tt.err)

			w := env.do(http.MethodPost, "/api/checkpoint/check-out", operatorToken, dto.CodeRequest{Code: "code", Kind: "qr"})

			assert.Equal(t, tt.want, w.Code)
			assert.Contains(t, w.Body.String(), tt.err.Error())
		})
	}
}

func TestHandler_CheckIn_InvalidKind(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/checkpoint/check-in", operatorToken, dto.CodeRequest{Code: "AB12-C3F4", Kind: "forced"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ValidateCode_DoesNotEchoCodes(t *testing.T) {
	env := setupRouter(t)
	resID := uuid.NewString()

	env.credentials.EXPECT().Validate(mock.Anything, operator, "AB12-C3F4", domain.KindManual).Return(&domain.Credential{
		ID:            uuid.NewString(),
		ReservationID: resID,
		QRPayload:     "payload",
		ManualCode:    "AB12-C3F4",
		IssuedAt:      testNow,
		ExpiresAt:     testNow.Add(5 * time.Minute),
	}, nil)

	w := env.do(http.MethodPost, "/api/checkpoint/validate", operatorToken, dto.CodeRequest{Code: "AB12-C3F4", Kind: "manual"})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.CredentialResponse](t, w)
	assert.Equal(t, resID, resp.ReservationID)
	assert.Empty(t, resp.ManualCode)
	assert.Empty(t, resp.QRPayload)
}

func TestHandler_ForceCheckIn(t *testing.T) {
	env := setupRouter(t)
	resID := uuid.NewString()

	env.checkpoint.EXPECT().ForceCheckIn(mock.Anything, operator, resID).
		Return(&domain.CheckResult{ReservationID: resID, Status: domain.StatusInProgress, Timestamp: testNow}, nil)
	env.checkpoint.EXPECT().ForceCheckOut(mock.Anything, alice, resID).
		Return(nil, domain.ErrForbidden)

	w := env.do(http.MethodPost, "/api/checkpoint/reservations/"+resID+"/force-check-in", operatorToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodPost, "/api/checkpoint/reservations/"+resID+"/force-check-out", aliceToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CheckEvents(t *testing.T) {
	env := setupRouter(t)
	resID := uuid.NewString()

	env.checkpoint.EXPECT().History(mock.Anything, alice, resID).Return([]*domain.CheckEvent{
		{ID: "e1", ReservationID: resID, Action: domain.ActionCheckIn, Kind: domain.KindForced, Outcome: domain.OutcomeSuccess, Forced: true, OccurredAt: testNow},
	}, nil)

	w := env.do(http.MethodGet, "/api/reservations/"+resID+"/check-events", aliceToken, nil)

	require.Equal(t, http.StatusOK, w.Code)
	events := decode[[]dto.CheckEventResponse](t, w)
	require.Len(t, events, 1)
	assert.True(t, events[0].Forced)
	assert.Equal(t, "check_in", events[0].Action)
}

// --- Attendees ---

func TestHandler_CreateAttendee(t *testing.T) {
	env := setupRouter(t)
	created := &domain.Attendee{ID: uuid.NewString(), Name: "Bob", Role: domain.RoleAttendee, CreatedAt: testNow}

	env.attendees.EXPECT().Create(mock.Anything, domain.CreateAttendeeInput{Name: "Bob"}).Return(created, nil)
	env.tokens.EXPECT().Issue(domain.Actor{ID: created.ID, Name: "Bob", Role: domain.RoleAttendee}).Return("signed", nil)

	w := env.do(http.MethodPost, "/api/attendees", "", dto.CreateAttendeeRequest{Name: "Bob"})

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode[dto.CreateAttendeeResponse](t, w)
	assert.Equal(t, "signed", resp.Token)
	assert.Equal(t, created.ID, resp.Attendee.ID)
}

func TestHandler_CreateOperator_NeedsOperator(t *testing.T) {
	env := setupRouter(t)
	body := dto.CreateAttendeeRequest{Name: "Gate B", Role: "operator"}

	assert.Equal(t, http.StatusForbidden, env.do(http.MethodPost, "/api/attendees", "", body).Code)
	assert.Equal(t, http.StatusForbidden, env.do(http.MethodPost, "/api/attendees", aliceToken, body).Code)

	created := &domain.Attendee{ID: uuid.NewString(), Name: "Gate B", Role: domain.RoleOperator}
	env.attendees.EXPECT().Create(mock.Anything, mock.Anything).Return(created, nil)
	env.tokens.EXPECT().Issue(mock.Anything).Return("signed", nil)

	assert.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/api/attendees", operatorToken, body).Code)
}

func TestHandler_ListAttendees_OperatorsOnly(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodGet, "/api/attendees", aliceToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	env.attendees.EXPECT().List(mock.Anything).Return([]*domain.Attendee{{ID: alice.ID, Name: "Alice", Role: domain.RoleAttendee}}, nil)
	w = env.do(http.MethodGet, "/api/attendees", operatorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.AttendeeResponse](t, w), 1)
}

func TestHandler_GetAttendeeReservations(t *testing.T) {
	env := setupRouter(t)

	env.reservations.EXPECT().ListByAttendee(mock.Anything, alice, alice.ID).
		Return([]*domain.Reservation{{ID: "r1", AttendeeID: alice.ID, Status: domain.StatusReady}}, nil)

	w := env.do(http.MethodGet, "/api/attendees/"+alice.ID+"/reservations", aliceToken, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.ReservationResponse](t, w), 1)
}

func TestHandler_Health(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
