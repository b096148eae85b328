package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"choco_checkout/internal/domain/entities"
)

var (
	ErrSessionNotFound = errors.New("checkout session not found")
	ErrSessionCapacity = errors.New("too many open checkout sessions")
)

// ICheckoutSessionUseCase relays wallet SDK callbacks from the browser to the
// checkout orchestrator owning the session.
type ICheckoutSessionUseCase interface {
	Create(ctx context.Context, lines []entities.CartLine) (entities.CheckoutView, error)
	Get(ctx context.Context, sessionID string) (entities.CheckoutView, error)
	ReplaceCart(ctx context.Context, sessionID string, lines []entities.CartLine) (entities.CheckoutView, error)
	Authenticate(ctx context.Context, sessionID, accessToken string) (entities.CheckoutView, error)
	Begin(ctx context.Context, sessionID string) (entities.PaymentDraft, error)
	Approve(ctx context.Context, sessionID, paymentID string) (entities.CheckoutView, error)
	Complete(ctx context.Context, sessionID, paymentID, txid string) (entities.CheckoutView, error)
	Cancel(ctx context.Context, sessionID, paymentID string) (entities.CheckoutView, error)
	Fail(ctx context.Context, sessionID, paymentID, reason string) (entities.CheckoutView, error)
}

// CheckoutSessionUseCase keeps one orchestrator per browser session in memory.
// Sessions idle for longer than SessionTTL are evicted unless a payment is in
// flight; at most MaxSessions are held at once.
type CheckoutSessionUseCase struct {
	deps CheckoutDeps

	mu       sync.Mutex
	sessions map[string]*checkoutSession
}

type checkoutSession struct {
	orchestrator *CheckoutOrchestrator
	lastSeen     time.Time
}

var _ ICheckoutSessionUseCase = (*CheckoutSessionUseCase)(nil)

func NewCheckoutSessionUseCase(deps CheckoutDeps) *CheckoutSessionUseCase {
	return &CheckoutSessionUseCase{
		deps:     deps.withDefaults(),
		sessions: make(map[string]*checkoutSession),
	}
}

func (u *CheckoutSessionUseCase) Create(ctx context.Context, lines []entities.CartLine) (entities.CheckoutView, error) {
	o := NewCheckoutOrchestrator(u.deps.NewID(), nil, u.deps)
	if len(lines) > 0 {
		if view, err := o.ReplaceCart(ctx, lines); err != nil {
			return view, err
		}
	}

	u.mu.Lock()
	if len(u.sessions) >= u.deps.MaxSessions {
		u.sweepLocked()
	}
	if len(u.sessions) >= u.deps.MaxSessions {
		u.mu.Unlock()
		log.Printf("[checkout][session] capacity reached sessions=%d", u.deps.MaxSessions)
		return entities.CheckoutView{}, ErrSessionCapacity
	}
	u.sessions[o.SessionID()] = &checkoutSession{orchestrator: o, lastSeen: u.deps.Now()}
	u.mu.Unlock()

	log.Printf("[checkout][session] created session_id=%s lines=%d", o.SessionID(), len(lines))
	return o.View(), nil
}

func (u *CheckoutSessionUseCase) Get(_ context.Context, sessionID string) (entities.CheckoutView, error) {
	o, err := u.lookup(sessionID)
	if err != nil {
		return entities.CheckoutView{}, err
	}
	return o.View(), nil
}

func (u *CheckoutSessionUseCase) ReplaceCart(ctx context.Context, sessionID string, lines []entities.CartLine) (entities.CheckoutView, error) {
	o, err := u.lookup(sessionID)
	if err != nil {
		return entities.CheckoutView{}, err
	}
	return o.ReplaceCart(ctx, lines)
}

func (u *CheckoutSessionUseCase) Authenticate(ctx context.Context, sessionID, accessToken string) (entities.CheckoutView, error) {
	o, err := u.lookup(sessionID)
	if err != nil {
		return entities.CheckoutView{}, err
	}
	return o.Authenticate(ctx, accessToken)
}

func (u *CheckoutSessionUseCase) Begin(ctx context.Context, sessionID string) (entities.PaymentDraft, error) {
	o, err := u.lookup(sessionID)
	if err != nil {
		return entities.PaymentDraft{}, err
	}
	return o.Begin(ctx)
}

func (u *CheckoutSessionUseCase) Approve(ctx context.Context, sessionID, paymentID string) (entities.CheckoutView, error) {
	o, err := u.lookup(sessionID)
	if err != nil {
		return entities.CheckoutView{}, err
	}
	return o.OnReadyForServerApproval(ctx, paymentID)
}

func (u *CheckoutSessionUseCase) Complete(ctx context.Context, sessionID, paymentID, txid string) (entities.CheckoutView, error) {
	o, err := u.lookup(sessionID)
	if err != nil {
		return entities.CheckoutView{}, err
	}
	return o.OnReadyForServerCompletion(ctx, paymentID, txid)
}

func (u *CheckoutSessionUseCase) Cancel(ctx context.Context, sessionID, paymentID string) (entities.CheckoutView, error) {
	o, err := u.lookup(sessionID)
	if err != nil {
		return entities.CheckoutView{}, err
	}
	return o.OnCancel(ctx, paymentID)
}

func (u *CheckoutSessionUseCase) Fail(ctx context.Context, sessionID, paymentID, reason string) (entities.CheckoutView, error) {
	o, err := u.lookup(sessionID)
	if err != nil {
		return entities.CheckoutView{}, err
	}
	return o.OnError(ctx, paymentID, reason)
}

// Sweep evicts idle sessions and returns how many were removed.
func (u *CheckoutSessionUseCase) Sweep() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.sweepLocked()
}

func (u *CheckoutSessionUseCase) sweepLocked() int {
	cutoff := u.deps.Now().Add(-u.deps.SessionTTL)
	evicted := 0
	for id, s := range u.sessions {
		if s.lastSeen.After(cutoff) || s.orchestrator.busy() {
			continue
		}
		delete(u.sessions, id)
		evicted++
	}
	if evicted > 0 {
		log.Printf("[checkout][session] evicted idle sessions count=%d remaining=%d", evicted, len(u.sessions))
	}
	return evicted
}

// StartJanitor sweeps idle sessions every interval until the returned stop
// function is called.
func (u *CheckoutSessionUseCase) StartJanitor(interval time.Duration) (stop func()) {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	var once sync.Once
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				u.Sweep()
			case <-done:
				return
			}
		}
	}()
	return func() { once.Do(func() { close(done) }) }
}

func (u *CheckoutSessionUseCase) lookup(sessionID string) (*CheckoutOrchestrator, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.sessions[strings.TrimSpace(sessionID)]
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.lastSeen = u.deps.Now()
	return s.orchestrator, nil
}
