package service

import (
	"context"
	"testing"
	"time"

	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckpointGate_CheckInThenCheckOut(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	exp := f.newExperience(t, 1, 1)
	res := f.reserve(t, f.attendee(t, "Alice"), exp.ID)
	waiter := f.reserve(t, f.attendee(t, "Bob"), exp.ID)

	in, err := f.gate.CheckIn(ctx, f.operator, f.issue(t, res.ID).ManualCode, domain.KindManual)
	require.NoError(t, err)
	assert.Equal(t, "Alice", in.AttendeeName)
	assert.Equal(t, domain.StatusInProgress, in.Status)
	assert.Equal(t, testNow, in.Timestamp)
	assert.NotEmpty(t, in.Message)
	f.assertCounters(t, exp.ID, 1, 1)

	f.clock.Advance(10 * time.Minute)
	out, err := f.gate.CheckOut(ctx, f.operator, f.issue(t, res.ID).QRPayload, domain.KindQR)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, out.Status)
	assert.Equal(t, testNow.Add(10*time.Minute), out.Timestamp)

	done := f.reservation(t, res.ID)
	require.NotNil(t, done.StartedAt)
	require.NotNil(t, done.CompletedAt)
	assert.Equal(t, testNow, *done.StartedAt)

	// the freed slot goes to the waiter
	assert.Equal(t, domain.StatusReady, f.reservation(t, waiter.ID).Status)
	f.assertCounters(t, exp.ID, 1, 0)

	events := f.history(t, res.ID)
	require.Len(t, events, 2)
	assert.Equal(t, domain.ActionCheckIn, events[0].Action)
	assert.Equal(t, domain.ActionCheckOut, events[1].Action)
	for _, e := range events {
		assert.Equal(t, domain.OutcomeSuccess, e.Outcome)
		assert.False(t, e.Forced)
		assert.Equal(t, f.operator.ID, e.OperatorID)
	}
}

func TestCheckpointGate_SameCodeTwice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	exp := f.newExperience(t, 1, 0)
	res := f.reserve(t, f.attendee(t, "Alice"), exp.ID)
	cred := f.issue(t, res.ID)

	_, err := f.gate.CheckIn(ctx, f.operator, cred.ManualCode, domain.KindManual)
	require.NoError(t, err)

	_, err = f.gate.CheckIn(ctx, f.operator, cred.ManualCode, domain.KindManual)
	require.ErrorIs(t, err, domain.ErrCredentialAlreadyConsumed)

	// consumption wins over expiry
	f.clock.Advance(time.Hour)
	_, err = f.gate.CheckIn(ctx, f.operator, cred.QRPayload, domain.KindQR)
	require.ErrorIs(t, err, domain.ErrCredentialAlreadyConsumed)

	assert.Equal(t, domain.StatusInProgress, f.reservation(t, res.ID).Status)
	f.assertCounters(t, exp.ID, 1, 0)
}

func TestCheckpointGate_CheckOutBeforeCheckIn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	exp := f.newExperience(t, 1, 0)
	res := f.reserve(t, f.attendee(t, "Alice"), exp.ID)
	cred := f.issue(t, res.ID)

	_, err := f.gate.CheckOut(ctx, f.operator, cred.ManualCode, domain.KindManual)

	require.ErrorIs(t, err, domain.ErrInvalidStateTransition)
	assert.Equal(t, domain.StatusReady, f.reservation(t, res.ID).Status)
	f.assertCounters(t, exp.ID, 1, 0)

	events := f.history(t, res.ID)
	require.Len(t, events, 1)
	assert.Equal(t, domain.OutcomeFailure, events[0].Outcome)
	assert.Equal(t, domain.ActionCheckOut, events[0].Action)
	assert.Contains(t, events[0].Reason, domain.ErrInvalidStateTransition.Error())

	// the failed attempt consumed nothing
	_, err = f.gate.CheckIn(ctx, f.operator, cred.ManualCode, domain.KindManual)
	require.NoError(t, err)
}

func TestCheckpointGate_ExpiredCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	exp := f.newExperience(t, 1, 0)
	res := f.reserve(t, f.attendee(t, "Alice"), exp.ID)
	cred := f.issue(t, res.ID)

	f.clock.Advance(testTTL)
	_, err := f.gate.CheckIn(ctx, f.operator, cred.ManualCode, domain.KindManual)

	require.ErrorIs(t, err, domain.ErrCredentialExpired)
	assert.Equal(t, domain.StatusReady, f.reservation(t, res.ID).Status)

	events := f.history(t, res.ID)
	require.Len(t, events, 1)
	assert.Equal(t, domain.OutcomeFailure, events[0].Outcome)
	assert.Equal(t, domain.KindManual, events[0].Kind)
}

func TestCheckpointGate_ManualAndQRAreEquivalent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	exp := f.newExperience(t, 2, 0)
	byCode := f.reserve(t, f.attendee(t, "Alice"), exp.ID)
	byQR := f.reserve(t, f.attendee(t, "Bob"), exp.ID)

	codeResult, err := f.gate.CheckIn(ctx, f.operator, f.issue(t, byCode.ID).ManualCode, domain.KindManual)
	require.NoError(t, err)
	qrResult, err := f.gate.CheckIn(ctx, f.operator, f.issue(t, byQR.ID).QRPayload, domain.KindQR)
	require.NoError(t, err)

	assert.Equal(t, codeResult.Status, qrResult.Status)
	assert.Equal(t, codeResult.Message, qrResult.Message)
	assert.Equal(t, codeResult.Timestamp, qrResult.Timestamp)

	a, b := f.reservation(t, byCode.ID), f.reservation(t, byQR.ID)
	assert.Equal(t, a.Status, b.Status)
	assert.Equal(t, a.StartedAt, b.StartedAt)

	codeEvents, qrEvents := f.history(t, byCode.ID), f.history(t, byQR.ID)
	require.Len(t, codeEvents, 1)
	require.Len(t, qrEvents, 1)
	assert.Equal(t, domain.KindManual, codeEvents[0].Kind)
	assert.Equal(t, domain.KindQR, qrEvents[0].Kind)

	normalize := func(e domain.CheckEvent) domain.CheckEvent {
		e.ID, e.ReservationID, e.CredentialID, e.Kind = "", "", "", ""
		return e
	}
	assert.Equal(t, normalize(*codeEvents[0]), normalize(*qrEvents[0]))
}

func TestCheckpointGate_ForcePath(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	exp := f.newExperience(t, 1, 0)
	alice := f.attendee(t, "Alice")
	res := f.reserve(t, alice, exp.ID)

	_, err := f.gate.ForceCheckIn(ctx, alice, res.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.gate.ForceCheckOut(ctx, f.operator, res.ID)
	require.ErrorIs(t, err, domain.ErrInvalidStateTransition)

	in, err := f.gate.ForceCheckIn(ctx, f.operator, res.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, in.Status)
	assert.Equal(t, "Alice", in.AttendeeName)

	out, err := f.gate.ForceCheckOut(ctx, f.operator, res.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, out.Status)
	f.assertCounters(t, exp.ID, 0, 0)

	events := f.history(t, res.ID)
	require.Len(t, events, 3)
	for _, e := range events {
		assert.True(t, e.Forced)
		assert.Equal(t, domain.KindForced, e.Kind)
		assert.Empty(t, e.CredentialID)
		assert.Equal(t, f.operator.ID, e.OperatorID)
	}
	assert.Equal(t, domain.OutcomeFailure, events[0].Outcome)
	assert.Equal(t, domain.OutcomeSuccess, events[1].Outcome)
	assert.Equal(t, domain.OutcomeSuccess, events[2].Outcome)
}

func TestCheckpointGate_OperatorsOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	exp := f.newExperience(t, 1, 0)
	alice := f.attendee(t, "Alice")
	res := f.reserve(t, alice, exp.ID)
	cred := f.issue(t, res.ID)

	_, err := f.gate.CheckIn(ctx, alice, cred.ManualCode, domain.KindManual)
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.gate.History(ctx, f.attendee(t, "Mallory"), res.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	events, err := f.gate.History(ctx, alice, res.ID)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestCheckpointGate_TimeoutIsFailure(t *testing.T) {
	f := newFixture(t, withGateTimeout(50*time.Millisecond))
	ctx := context.Background()
	exp := f.newExperience(t, 1, 0)
	res := f.reserve(t, f.attendee(t, "Alice"), exp.ID)
	cred := f.issue(t, res.ID)

	locked := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = f.deps.Tx.InExperience(context.Background(), exp.ID, func(context.Context) error {
			close(locked)
			<-release
			return nil
		})
	}()
	<-locked

	_, err := f.gate.CheckIn(ctx, f.operator, cred.ManualCode, domain.KindManual)
	close(release)
	<-done

	require.ErrorIs(t, err, domain.ErrTimeout)
	assert.Equal(t, domain.StatusReady, f.reservation(t, res.ID).Status)

	_, err = f.credentials.Validate(ctx, f.operator, cred.ManualCode, domain.KindManual)
	require.NoError(t, err)
}

func TestCheckpointGate_PublishesCheckIn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	exp := f.newExperience(t, 2, 0)
	res := f.reserve(t, f.attendee(t, "Alice"), exp.ID)
	cred := f.issue(t, res.ID)

	sub := f.hub.Subscribe(domain.TopicCheckIn + res.ID)
	defer sub.Close()

	_, err := f.gate.CheckIn(ctx, f.operator, cred.ManualCode, domain.KindManual)
	require.NoError(t, err)

	n := receiveNote(t, sub)
	assert.Equal(t, res.ID, n.ReservationID)
	assert.Equal(t, domain.StatusInProgress, n.Status)
	assert.Equal(t, 1, n.Counters.CurrentParticipants)
	assert.Equal(t, float64(50), n.Counters.CongestionRate)
}

func TestCheckpointGate_CheckInRefusedOnceNoShowDeadlinePassed(t *testing.T) {
	f := newFixture(t, withGrace(15*time.Minute))
	ctx := context.Background()
	exp := f.newExperience(t, 1, 0)
	late := f.reserve(t, f.attendee(t, "Alice"), exp.ID)
	cred := f.issue(t, late.ID)

	// codes can still be issued within the grace period
	f.clock.Set(exp.EndsAt.Add(12 * time.Minute))
	fresh := f.issue(t, late.ID)
	assert.NotEqual(t, cred.ID, fresh.ID)

	f.clock.Set(exp.EndsAt.Add(15 * time.Minute))
	_, err := f.gate.CheckIn(ctx, f.operator, fresh.ManualCode, domain.KindManual)
	require.ErrorIs(t, err, domain.ErrInvalidStateTransition)

	_, err = f.gate.ForceCheckIn(ctx, f.operator, late.ID)
	require.ErrorIs(t, err, domain.ErrInvalidStateTransition)

	_, err = f.credentials.Issue(ctx, f.operator, late.ID)
	require.ErrorIs(t, err, domain.ErrInvalidStateTransition)

	assert.Equal(t, domain.StatusReady, f.reservation(t, late.ID).Status)
	f.assertCounters(t, exp.ID, 1, 0)

	events := f.history(t, late.ID)
	require.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, domain.OutcomeFailure, e.Outcome)
	}
}

func TestCheckpointGate_CheckOutAllowedAfterDeadline(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	exp := f.newExperience(t, 1, 0)
	res := f.reserve(t, f.attendee(t, "Alice"), exp.ID)

	_, err := f.gate.CheckIn(ctx, f.operator, f.issue(t, res.ID).ManualCode, domain.KindManual)
	require.NoError(t, err)

	f.clock.Set(exp.EndsAt.Add(time.Minute))
	cred, err := f.credentials.Issue(ctx, f.operator, res.ID)
	require.NoError(t, err)

	out, err := f.gate.CheckOut(ctx, f.operator, cred.ManualCode, domain.KindManual)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, out.Status)
	f.assertCounters(t, exp.ID, 0, 0)
}
