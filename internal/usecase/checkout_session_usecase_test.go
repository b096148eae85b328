package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"choco_checkout/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCheckoutSessionUseCase_FullRelay(t *testing.T) {
	f := newCheckoutFixture(t).withoutJournal()
	ids := []string{"sess-1", "ord-1"}
	f.deps.NewID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}
	uc := NewCheckoutSessionUseCase(f.deps)

	view, err := uc.Create(context.Background(), []entities.CartLine{{ProductID: "choc-1", Quantity: 2}})
	require.NoError(t, err)
	assert.Equal(t, "sess-1", view.SessionID)
	assert.Equal(t, entities.CheckoutIdle, view.State)

	_, err = uc.Begin(context.Background(), "sess-1")
	assert.ErrorIs(t, err, ErrWalletNotReady)

	view, err = uc.Authenticate(context.Background(), "sess-1", "token")
	require.NoError(t, err)
	assert.True(t, view.Authenticated)

	draft, err := uc.Begin(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "10", draft.Amount.String())

	f.gateway.EXPECT().Approve(gomock.Any(), "pay-1").Return(approvedResponse("10"), nil)
	f.gateway.EXPECT().Complete(gomock.Any(), "pay-1", "tx123").Return(entities.GatewayResponse{StatusCode: http.StatusOK}, nil)
	f.ledger.EXPECT().Available().Return(true)
	f.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	_, err = uc.Approve(context.Background(), "sess-1", "pay-1")
	require.NoError(t, err)
	view, err = uc.Complete(context.Background(), "sess-1", "pay-1", "tx123")
	require.NoError(t, err)
	assert.Equal(t, entities.CheckoutCompleted, view.State)
	assert.Equal(t, "ord-1", view.Outcome.OrderID)

	got, err := uc.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Empty(t, got.Cart)
}

func TestCheckoutSessionUseCase_UnknownSession(t *testing.T) {
	f := newCheckoutFixture(t)
	uc := NewCheckoutSessionUseCase(f.deps)

	_, err := uc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = uc.Cancel(context.Background(), "nope", "")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = uc.Fail(context.Background(), "nope", "", "boom")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = uc.ReplaceCart(context.Background(), "nope", nil)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCheckoutSessionUseCase_CreateRejectsInvalidCart(t *testing.T) {
	f := newCheckoutFixture(t)
	uc := NewCheckoutSessionUseCase(f.deps)

	_, err := uc.Create(context.Background(), []entities.CartLine{{ProductID: "ghost", Quantity: 1}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownProduct))
	assert.Empty(t, uc.sessions)
}

func newSessionClock(f *checkoutFixture) *time.Time {
	now := fixedNow
	f.deps.Now = func() time.Time { return now }
	n := 0
	f.deps.NewID = func() string {
		n++
		return fmt.Sprintf("sess-%d", n)
	}
	return &now
}

func TestCheckoutSessionUseCase_SweepEvictsIdleSessions(t *testing.T) {
	f := newCheckoutFixture(t).withoutJournal()
	now := newSessionClock(f)
	f.deps.SessionTTL = 10 * time.Minute
	uc := NewCheckoutSessionUseCase(f.deps)
	ctx := context.Background()
	cart := []entities.CartLine{{ProductID: "choc-1", Quantity: 1}}

	cancelled, err := uc.Create(ctx, cart)
	require.NoError(t, err)
	_, err = uc.Authenticate(ctx, cancelled.SessionID, "token")
	require.NoError(t, err)
	_, err = uc.Begin(ctx, cancelled.SessionID)
	require.NoError(t, err)
	view, err := uc.Cancel(ctx, cancelled.SessionID, "")
	require.NoError(t, err)
	require.Equal(t, entities.CheckoutCancelled, view.State)

	abandoned, err := uc.Create(ctx, cart)
	require.NoError(t, err)

	inFlight, err := uc.Create(ctx, cart)
	require.NoError(t, err)
	_, err = uc.Authenticate(ctx, inFlight.SessionID, "token")
	require.NoError(t, err)
	_, err = uc.Begin(ctx, inFlight.SessionID)
	require.NoError(t, err)

	*now = now.Add(11 * time.Minute)
	recent, err := uc.Create(ctx, cart)
	require.NoError(t, err)

	assert.Equal(t, 2, uc.Sweep())

	_, err = uc.Get(ctx, cancelled.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = uc.Get(ctx, abandoned.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	got, err := uc.Get(ctx, inFlight.SessionID)
	require.NoError(t, err, "a payment in flight is never evicted")
	assert.Equal(t, entities.CheckoutCreating, got.State)
	_, err = uc.Get(ctx, recent.SessionID)
	require.NoError(t, err)
}

func TestCheckoutSessionUseCase_CapacityBound(t *testing.T) {
	f := newCheckoutFixture(t)
	now := newSessionClock(f)
	f.deps.SessionTTL = time.Minute
	f.deps.MaxSessions = 2
	uc := NewCheckoutSessionUseCase(f.deps)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := uc.Create(ctx, nil)
		require.NoError(t, err)
	}
	_, err := uc.Create(ctx, nil)
	assert.ErrorIs(t, err, ErrSessionCapacity)
	assert.Len(t, uc.sessions, 2)

	*now = now.Add(2 * time.Minute)
	view, err := uc.Create(ctx, nil)
	require.NoError(t, err, "idle sessions make room once they expire")
	assert.Len(t, uc.sessions, 1)
	_, err = uc.Get(ctx, view.SessionID)
	require.NoError(t, err)
}

func TestCheckoutSessionUseCase_JanitorSweeps(t *testing.T) {
	f := newCheckoutFixture(t)
	now := newSessionClock(f)
	f.deps.SessionTTL = time.Minute
	uc := NewCheckoutSessionUseCase(f.deps)

	for i := 0; i < 3; i++ {
		_, err := uc.Create(context.Background(), nil)
		require.NoError(t, err)
	}
	*now = now.Add(time.Hour)

	stop := uc.StartJanitor(5 * time.Millisecond)
	defer stop()

	assert.Eventually(t, func() bool {
		uc.mu.Lock()
		defer uc.mu.Unlock()
		return len(uc.sessions) == 0
	}, time.Second, 5*time.Millisecond)

	stop()
	stop()
}
