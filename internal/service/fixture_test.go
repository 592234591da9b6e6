package service

import (
	"bytes"
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rktclgh/fairplay-booth/internal/clock"
	"github.com/rktclgh/fairplay-booth/internal/credential"
	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/rktclgh/fairplay-booth/internal/hub"
	"github.com/rktclgh/fairplay-booth/internal/repository/memory"
	"github.com/rktclgh/fairplay-booth/internal/service/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var testNow = time.Date(2026, 5, 14, 10, 0, 0, 0, time.UTC)

const testTTL = 5 * time.Minute

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fixtureConfig struct {
	notifier    ports.AttendeeNotifier
	cache       ports.StatusCache
	grace       time.Duration
	gateTimeout time.Duration
	wrapCreds   func(ports.CredentialRepo) ports.CredentialRepo
}

type fixtureOption func(*fixtureConfig)

func withNotifier(n ports.AttendeeNotifier) fixtureOption {
	return func(c *fixtureConfig) { c.notifier = n }
}

func withCache(s ports.StatusCache) fixtureOption {
	return func(c *fixtureConfig) { c.cache = s }
}

func withGrace(d time.Duration) fixtureOption {
	return func(c *fixtureConfig) { c.grace = d }
}

func withGateTimeout(d time.Duration) fixtureOption {
	return func(c *fixtureConfig) { c.gateTimeout = d }
}

func withCredentialRepo(wrap func(ports.CredentialRepo) ports.CredentialRepo) fixtureOption {
	return func(c *fixtureConfig) { c.wrapCreds = wrap }
}

type fixture struct {
	clock *clock.Fake
	hub   *hub.Hub
	deps  Deps

	experiences  *ExperienceService
	reservations *ReservationService
	credentials  *CredentialService
	gate         *CheckpointGate
	attendees    *AttendeeService

	operator domain.Actor
}

func newFixture(t *testing.T, opts ...fixtureOption) *fixture {
	t.Helper()

	var cfg fixtureConfig
	for _, o := range opts {
		o(&cfg)
	}

	store := memory.NewStore()
	log := newTestLogger(t)
	clk := clock.NewFake(testNow)
	h := hub.New(log, hub.WithBuffer(256))

	var creds ports.CredentialRepo = memory.NewCredentialRepo(store)
	if cfg.wrapCreds != nil {
		creds = cfg.wrapCreds(creds)
	}

	d := Deps{
		Tx:           memory.NewTxManager(store),
		Experiences:  memory.NewExperienceRepo(store),
		Reservations: memory.NewReservationRepo(store),
		Credentials:  creds,
		CheckEvents:  memory.NewCheckEventRepo(store),
		Attendees:    memory.NewAttendeeRepo(store),
		Publisher:    h,
		Cache:        cfg.cache,
		Notifier:     cfg.notifier,
		Clock:        clk,
		Logger:       log,
		NoShowGrace:  cfg.grace,
	}

	codec, err := credential.NewCodec(bytes.Repeat([]byte{0x42}, 32))
	require.NoError(t, err)

	f := &fixture{
		clock:        clk,
		hub:          h,
		deps:         d,
		experiences:  NewExperienceService(d),
		reservations: NewReservationService(d),
		credentials:  NewCredentialService(d, codec, testTTL),
		attendees:    NewAttendeeService(d),
	}
	f.gate = NewCheckpointGate(d, f.credentials, cfg.gateTimeout)
	f.operator = f.newActor(t, "Gate operator", domain.RoleOperator)

	return f
}

func (f *fixture) newActor(t *testing.T, name string, role domain.Role) domain.Actor {
	t.Helper()
	a, err := f.attendees.Create(context.Background(), domain.CreateAttendeeInput{Name: name, Role: role})
	require.NoError(t, err)
	return domain.Actor{ID: a.ID, Name: a.Name, Role: a.Role}
}

func (f *fixture) attendee(t *testing.T, name string) domain.Actor {
	t.Helper()
	return f.newActor(t, name, domain.RoleAttendee)
}

type experienceOption func(*domain.CreateExperienceInput)

func (f *fixture) newExperience(t *testing.T, capacity, waiting int, opts ...experienceOption) *domain.Experience {
	t.Helper()
	in := domain.CreateExperienceInput{
		BoothID:         "booth-7",
		Title:           "VR roller coaster",
		StartsAt:        testNow,
		EndsAt:          testNow.Add(2 * time.Hour),
		Duration:        10 * time.Minute,
		MaxCapacity:     capacity,
		MaxWaitingCount: waiting,
		AllowWaiting:    waiting > 0,
	}
	for _, o := range opts {
		o(&in)
	}

	exp, err := f.experiences.Create(context.Background(), f.operator, in)
	require.NoError(t, err)
	return exp
}

func (f *fixture) reserve(t *testing.T, actor domain.Actor, experienceID string) *domain.Reservation {
	t.Helper()
	res, err := f.reservations.Reserve(context.Background(), actor, domain.ReserveInput{ExperienceID: experienceID})
	require.NoError(t, err)
	return res
}

func (f *fixture) issue(t *testing.T, reservationID string) *domain.Credential {
	t.Helper()
	cred, err := f.credentials.Issue(context.Background(), f.operator, reservationID)
	require.NoError(t, err)
	return cred
}

func (f *fixture) experience(t *testing.T, id string) *domain.Experience {
	t.Helper()
	exp, err := f.deps.Experiences.GetByID(context.Background(), id)
	require.NoError(t, err)
	return exp
}

func (f *fixture) reservation(t *testing.T, id string) *domain.Reservation {
	t.Helper()
	res, err := f.deps.Reservations.GetByID(context.Background(), id)
	require.NoError(t, err)
	return res
}

func (f *fixture) history(t *testing.T, reservationID string) []*domain.CheckEvent {
	t.Helper()
	events, err := f.gate.History(context.Background(), f.operator, reservationID)
	require.NoError(t, err)
	return events
}

// assertCounters also checks the capacity bounds that must hold at all times.
func (f *fixture) assertCounters(t *testing.T, experienceID string, inside, waiting int) {
	t.Helper()
	exp := f.experience(t, experienceID)
	assert.Equal(t, inside, exp.CurrentParticipants, "current participants")
	assert.Equal(t, waiting, exp.WaitingCount, "waiting count")
	assert.GreaterOrEqual(t, exp.CurrentParticipants, 0)
	assert.LessOrEqual(t, exp.CurrentParticipants, exp.MaxCapacity)
	assert.GreaterOrEqual(t, exp.WaitingCount, 0)
	assert.LessOrEqual(t, exp.WaitingCount, exp.MaxWaitingCount)
}

func (f *fixture) assertPositions(t *testing.T, want map[string]int) {
	t.Helper()
	for id, pos := range want {
		res := f.reservation(t, id)
		assert.Equal(t, domain.StatusWaiting, res.Status, "reservation %s", id)
		assert.Equal(t, pos, res.QueuePosition, "reservation %s", id)
	}
}

// countingCredentials records how often storage is asked to resolve a code.
type countingCredentials struct {
	ports.CredentialRepo
	lookups atomic.Int32
}

func (c *countingCredentials) GetByID(ctx context.Context, id string) (*domain.Credential, error) {
	c.lookups.Add(1)
	return c.CredentialRepo.GetByID(ctx, id)
}

func (c *countingCredentials) GetByManualCode(ctx context.Context, code string) (*domain.Credential, error) {
	c.lookups.Add(1)
	return c.CredentialRepo.GetByManualCode(ctx, code)
}

func receiveNote(t *testing.T, sub *hub.Subscription) domain.Notification {
	t.Helper()
	select {
	case n := <-sub.C():
		return n
	case <-time.After(time.Second):
		t.Fatal("no notification received")
		return domain.Notification{}
	}
}
