package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"choco_checkout/internal/domain/entities"
	"choco_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrWalletNotReady       = errors.New("wallet session not authenticated")
	ErrWalletAuthTimeout    = errors.New("wallet authentication timed out")
	ErrCheckoutInProgress   = errors.New("a payment is already in progress")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrCartLocked           = errors.New("cart cannot change while a payment is in progress")
	ErrUnknownProduct       = errors.New("unknown product")
	ErrInsufficientStock    = errors.New("quantity exceeds available stock")
	ErrInvalidAmount        = errors.New("payment amount must be positive")
	ErrInvalidTransition    = errors.New("callback not valid in the current checkout state")
	ErrPaymentMismatch      = errors.New("callback refers to a different payment")
	ErrNoPaymentInFlight    = errors.New("no payment in progress")
	ErrCompletionInProgress = errors.New("payment completion in progress")
	ErrAttemptAborted       = errors.New("checkout attempt was cancelled")
	ErrAmountMismatch       = errors.New("gateway payment amount differs from the checkout total")
	ErrOrderLedgerDown      = errors.New("order ledger unavailable")
)

// LedgerWriteError reports a payment the gateway completed whose order record
// could not be written. Money has moved: PaymentID and TxID are the references
// for manual reconciliation.
type LedgerWriteError struct {
	PaymentID string
	TxID      string
	Err       error
}

func (e *LedgerWriteError) Error() string {
	return fmt.Sprintf("payment %s (txid %s) completed but the order was not recorded: %v", e.PaymentID, e.TxID, e.Err)
}

func (e *LedgerWriteError) Unwrap() error { return e.Err }

const (
	journalWriteTimeout = 5 * time.Second
	memoPrefix          = "Chocolate order: "

	defaultSessionTTL  = 30 * time.Minute
	defaultMaxSessions = 10000
)

var tracer = otel.Tracer("choco_checkout/usecase")

// CheckoutDeps are the collaborators shared by every checkout.
// Events may be nil when event publishing is disabled.
type CheckoutDeps struct {
	Gateway     interfaces.IPaymentGateway
	Ledger      interfaces.IOrderLedger
	Journal     interfaces.IPaymentJournal
	Catalog     interfaces.IProductCatalog
	Wallet      interfaces.IWalletAuthenticator
	Events      interfaces.IEventPublisher
	AuthTimeout time.Duration
	SessionTTL  time.Duration
	MaxSessions int
	Now         func() time.Time
	NewID       func() string
}

func (d CheckoutDeps) withDefaults() CheckoutDeps {
	if d.AuthTimeout <= 0 {
		d.AuthTimeout = 10 * time.Second
	}
	if d.SessionTTL <= 0 {
		d.SessionTTL = defaultSessionTTL
	}
	if d.MaxSessions <= 0 {
		d.MaxSessions = defaultMaxSessions
	}
	if d.Now == nil {
		d.Now = func() time.Time { return time.Now().UTC() }
	}
	if d.NewID == nil {
		d.NewID = uuid.NewString
	}
	return d
}

// CheckoutOrchestrator drives one shopper's payment from checkout to order
// confirmation. Each wallet SDK callback maps to exactly one method.
//
// At most one payment is in flight per orchestrator. The mutex is never held
// across a network call; a result that comes back after the attempt was
// cancelled is discarded.
type CheckoutOrchestrator struct {
	deps      CheckoutDeps
	sessionID string

	mu          sync.Mutex
	cart        *entities.Cart
	wallet      *entities.WalletSession
	authPending int
	state       entities.CheckoutState
	attempt     uint64
	draft       *entities.PaymentDraft
	items       []entities.OrderItem
	paymentID   string
	txid        string
	outcome     *entities.CheckoutOutcome
	abort       context.CancelFunc
}

type checkoutSnapshot struct {
	state     entities.CheckoutState
	draft     *entities.PaymentDraft
	items     []entities.OrderItem
	paymentID string
	txid      string
	outcome   *entities.CheckoutOutcome
}

func NewCheckoutOrchestrator(sessionID string, cart *entities.Cart, deps CheckoutDeps) *CheckoutOrchestrator {
	if cart == nil {
		cart = entities.NewCart()
	}
	return &CheckoutOrchestrator{
		deps:      deps.withDefaults(),
		sessionID: sessionID,
		cart:      cart,
		state:     entities.CheckoutIdle,
	}
}

func (o *CheckoutOrchestrator) SessionID() string { return o.sessionID }

// busy reports a payment in flight or a wallet check still running.
func (o *CheckoutOrchestrator) busy() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state.IsProcessing() || o.authPending > 0
}

// Authenticate verifies the wallet access token. It never waits longer than
// the configured auth timeout, even if the wallet bridge never answers; on
// timeout the shopper gets a retry affordance.
func (o *CheckoutOrchestrator) Authenticate(ctx context.Context, accessToken string) (entities.CheckoutView, error) {
	o.mu.Lock()
	o.authPending++
	o.mu.Unlock()

	authCtx, cancel := context.WithTimeout(ctx, o.deps.AuthTimeout)
	defer cancel()

	type authResult struct {
		session entities.WalletSession
		err     error
	}
	done := make(chan authResult, 1)
	go func() {
		s, err := o.deps.Wallet.Authenticate(authCtx, accessToken)
		done <- authResult{session: s, err: err}
	}()

	log.Printf("[checkout][orchestrator] wallet auth start session_id=%s", o.sessionID)
	var res authResult
	select {
	case res = <-done:
	case <-authCtx.Done():
		res.err = authCtx.Err()
	}
	if res.err != nil && errors.Is(authCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		res.err = ErrWalletAuthTimeout
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.authPending--
	if res.err != nil {
		o.wallet = nil
		log.Printf("[checkout][orchestrator] wallet auth failed session_id=%s err=%v", o.sessionID, res.err)
		return o.viewLocked(), res.err
	}
	o.wallet = &res.session
	log.Printf("[checkout][orchestrator] wallet auth success session_id=%s uid=%s", o.sessionID, res.session.UID)
	return o.viewLocked(), nil
}

// ReplaceCart swaps the cart contents. Lines are checked against the catalog.
func (o *CheckoutOrchestrator) ReplaceCart(ctx context.Context, lines []entities.CartLine) (entities.CheckoutView, error) {
	cart, err := entities.NewCartFromLines(lines)
	if err != nil {
		return o.View(), err
	}
	if _, err := o.priceLines(ctx, cart.Lines()); err != nil {
		return o.View(), err
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state.IsProcessing() {
		return o.viewLocked(), ErrCartLocked
	}
	o.cart = cart
	return o.viewLocked(), nil
}

// Begin moves Idle (or a finished attempt) to Creating and returns the payment
// the wallet SDK must create. The cart is priced from the catalog, never from
// the caller.
func (o *CheckoutOrchestrator) Begin(ctx context.Context) (entities.PaymentDraft, error) {
	o.mu.Lock()
	if o.state.IsProcessing() {
		o.mu.Unlock()
		return entities.PaymentDraft{}, ErrCheckoutInProgress
	}
	if o.wallet == nil || o.authPending > 0 {
		o.mu.Unlock()
		return entities.PaymentDraft{}, ErrWalletNotReady
	}
	if o.cart.IsEmpty() {
		o.mu.Unlock()
		return entities.PaymentDraft{}, ErrEmptyCart
	}
	lines := o.cart.Lines()
	prev := checkoutSnapshot{o.state, o.draft, o.items, o.paymentID, o.txid, o.outcome}
	o.attempt++
	attempt := o.attempt
	o.state = entities.CheckoutCreating
	o.draft, o.items, o.paymentID, o.txid, o.outcome = nil, nil, "", "", nil
	o.mu.Unlock()

	items, err := o.priceLines(ctx, lines)
	if err == nil && !entities.SumItems(items).IsPositive() {
		err = ErrInvalidAmount
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.attempt != attempt || o.state != entities.CheckoutCreating {
		return entities.PaymentDraft{}, ErrAttemptAborted
	}
	if err != nil {
		// Pricing problems are validation errors: nothing was created, so the
		// previous state is restored.
		o.state, o.draft, o.items, o.paymentID, o.txid, o.outcome =
			prev.state, prev.draft, prev.items, prev.paymentID, prev.txid, prev.outcome
		log.Printf("[checkout][orchestrator] begin rejected session_id=%s err=%v", o.sessionID, err)
		return entities.PaymentDraft{}, err
	}

	draft := entities.PaymentDraft{
		Amount: entities.SumItems(items),
		Memo:   buildMemo(items),
		Metadata: map[string]any{
			"sessionId": o.sessionID,
			"attempt":   attempt,
			"itemCount": len(items),
		},
	}
	o.items = items
	o.draft = &draft
	log.Printf("[checkout][orchestrator] begin session_id=%s attempt=%d amount=%s", o.sessionID, attempt, draft.Amount)
	return draft, nil
}

// OnReadyForServerApproval handles the wallet's approval callback:
// Creating -> Approving -> AwaitingNetworkSubmission, or Failed.
func (o *CheckoutOrchestrator) OnReadyForServerApproval(ctx context.Context, paymentID string) (entities.CheckoutView, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return o.View(), ErrMissingPaymentID
	}

	o.mu.Lock()
	if o.state != entities.CheckoutCreating || o.draft == nil {
		o.mu.Unlock()
		return o.View(), ErrInvalidTransition
	}
	approveCtx, cancel := context.WithCancel(ctx)
	o.state = entities.CheckoutApproving
	o.paymentID = paymentID
	o.abort = cancel
	attempt := o.attempt
	expected := o.draft.Amount
	created := o.journalEntryLocked(entities.PaymentStatusCreated, "")
	o.mu.Unlock()
	defer cancel()

	o.record(ctx, created)

	spanCtx, span := tracer.Start(approveCtx, "checkout.approve", trace.WithAttributes(
		attribute.String("payment.id", paymentID),
		attribute.String("checkout.session_id", o.sessionID),
	))
	resp, err := o.deps.Gateway.Approve(spanCtx, paymentID)
	endSpan(span, err)

	o.mu.Lock()
	if o.attempt != attempt || o.state != entities.CheckoutApproving {
		o.mu.Unlock()
		log.Printf("[checkout][orchestrator] approve result discarded session_id=%s payment_id=%s", o.sessionID, paymentID)
		return o.View(), ErrAttemptAborted
	}
	o.abort = nil

	if err == nil && !resp.Payment.Amount.IsZero() && !resp.Payment.Amount.Equal(expected) {
		log.Printf("[checkout][orchestrator] amount mismatch session_id=%s payment_id=%s expected=%s got=%s", o.sessionID, paymentID, expected, resp.Payment.Amount)
		err = fmt.Errorf("%w: expected %s, got %s", ErrAmountMismatch, expected, resp.Payment.Amount)
	}
	if err != nil {
		kind, msg := gatewayOutcome(err)
		o.failLocked(kind, msg)
		entry := o.journalEntryLocked(entities.PaymentStatusFailed, err.Error())
		view := o.viewLocked()
		o.mu.Unlock()
		log.Printf("[checkout][orchestrator] approve failed session_id=%s payment_id=%s err=%v", o.sessionID, paymentID, err)
		o.record(ctx, entry)
		return view, err
	}

	o.state = entities.CheckoutAwaitingNetworkSubmission
	entry := o.journalEntryLocked(entities.PaymentStatusApproved, "")
	view := o.viewLocked()
	o.mu.Unlock()
	log.Printf("[checkout][orchestrator] approved session_id=%s payment_id=%s", o.sessionID, paymentID)
	o.record(ctx, entry)
	return view, nil
}

// OnReadyForServerCompletion handles the wallet's completion callback:
// AwaitingNetworkSubmission -> Completing -> Completed, or Failed.
//
// Completing is the commit point. The gateway call and the ledger write run to
// the end even if the caller goes away, and cancellation is refused.
func (o *CheckoutOrchestrator) OnReadyForServerCompletion(ctx context.Context, paymentID, txid string) (entities.CheckoutView, error) {
	paymentID = strings.TrimSpace(paymentID)
	txid = strings.TrimSpace(txid)
	if paymentID == "" {
		return o.View(), ErrMissingPaymentID
	}
	if txid == "" {
		return o.View(), ErrMissingTxID
	}

	o.mu.Lock()
	if o.state != entities.CheckoutAwaitingNetworkSubmission {
		o.mu.Unlock()
		return o.View(), ErrInvalidTransition
	}
	if o.paymentID != paymentID {
		o.mu.Unlock()
		return o.View(), ErrPaymentMismatch
	}
	o.state = entities.CheckoutCompleting
	o.txid = txid
	items := append([]entities.OrderItem(nil), o.items...)
	submitted := o.journalEntryLocked(entities.PaymentStatusSubmitted, "")
	o.mu.Unlock()

	commitCtx := context.WithoutCancel(ctx)
	o.record(commitCtx, submitted)

	spanCtx, span := tracer.Start(commitCtx, "checkout.complete", trace.WithAttributes(
		attribute.String("payment.id", paymentID),
		attribute.String("payment.txid", txid),
	))
	_, err := o.deps.Gateway.Complete(spanCtx, paymentID, txid)
	endSpan(span, err)
	if err != nil {
		kind, msg := gatewayOutcome(err)
		o.mu.Lock()
		o.failLocked(kind, msg)
		entry := o.journalEntryLocked(entities.PaymentStatusFailed, err.Error())
		view := o.viewLocked()
		o.mu.Unlock()
		log.Printf("[checkout][orchestrator] complete failed session_id=%s payment_id=%s txid=%s err=%v", o.sessionID, paymentID, txid, err)
		o.record(commitCtx, entry)
		return view, err
	}

	order := entities.Order{
		ID:         o.deps.NewID(),
		PaymentID:  paymentID,
		TxID:       txid,
		Items:      items,
		TotalPrice: entities.SumItems(items),
		CreatedAt:  o.deps.Now(),
	}

	if ledgerErr := o.appendOrder(commitCtx, order); ledgerErr != nil {
		o.mu.Lock()
		o.state = entities.CheckoutFailed
		o.outcome = &entities.CheckoutOutcome{
			Kind: entities.OutcomeLedgerWriteFailed,
			Message: fmt.Sprintf("Your payment succeeded, but we could not record your order. "+
				"Please do not pay again; contact support with payment reference %s (transaction %s).", paymentID, txid),
			PaymentID:  paymentID,
			TxID:       txid,
			TotalPrice: order.TotalPrice,
		}
		entry := o.journalEntryLocked(entities.PaymentStatusCompleted, ledgerErr.Error())
		view := o.viewLocked()
		o.mu.Unlock()
		log.Printf("[checkout][orchestrator] LEDGER WRITE FAILED after completion session_id=%s payment_id=%s txid=%s err=%v", o.sessionID, paymentID, txid, ledgerErr)
		o.record(commitCtx, entry)
		o.publish(commitCtx, func(ctx context.Context, p interfaces.IEventPublisher) error {
			return p.PublishLedgerWriteFailed(ctx, entry)
		})
		return view, &LedgerWriteError{PaymentID: paymentID, TxID: txid, Err: ledgerErr}
	}

	o.mu.Lock()
	o.state = entities.CheckoutCompleted
	o.cart.Clear()
	o.outcome = &entities.CheckoutOutcome{
		Kind:       entities.OutcomeCompleted,
		Message:    "Thank you! Your order is confirmed.",
		OrderID:    order.ID,
		PaymentID:  paymentID,
		TxID:       txid,
		TotalPrice: order.TotalPrice,
	}
	entry := o.journalEntryLocked(entities.PaymentStatusCompleted, "")
	entry.OrderID = order.ID
	view := o.viewLocked()
	o.mu.Unlock()

	log.Printf("[checkout][orchestrator] completed session_id=%s payment_id=%s txid=%s order_id=%s total=%s", o.sessionID, paymentID, txid, order.ID, order.TotalPrice)
	o.record(commitCtx, entry)
	o.publish(commitCtx, func(ctx context.Context, p interfaces.IEventPublisher) error {
		return p.PublishOrderCompleted(ctx, order)
	})
	return view, nil
}

// OnCancel handles the wallet's cancellation callback. It is honoured in every
// state before Completing; once Completing starts the gateway call and the
// ledger write run to the end, so a cancel there gets ErrCompletionInProgress.
func (o *CheckoutOrchestrator) OnCancel(ctx context.Context, paymentID string) (entities.CheckoutView, error) {
	return o.stop(ctx, paymentID, entities.CheckoutCancelled, entities.OutcomeCancelled,
		"Payment cancelled. Your cart was kept.", "")
}

// OnError handles the wallet's error callback. Like OnCancel it is refused
// with ErrCompletionInProgress while Completing.
func (o *CheckoutOrchestrator) OnError(ctx context.Context, paymentID, reason string) (entities.CheckoutView, error) {
	reason = strings.TrimSpace(reason)
	msg := "The wallet reported an error. Your cart was kept; please try again."
	if reason != "" {
		msg = fmt.Sprintf("The wallet reported an error: %s. Your cart was kept; please try again.", reason)
	}
	return o.stop(ctx, paymentID, entities.CheckoutFailed, entities.OutcomeWalletError, msg, reason)
}

func (o *CheckoutOrchestrator) stop(ctx context.Context, paymentID string, to entities.CheckoutState, kind entities.OutcomeKind, msg, reason string) (entities.CheckoutView, error) {
	paymentID = strings.TrimSpace(paymentID)

	o.mu.Lock()
	if paymentID != "" && o.paymentID != "" && paymentID != o.paymentID {
		o.mu.Unlock()
		return o.View(), ErrPaymentMismatch
	}
	switch {
	case o.state == entities.CheckoutCompleting:
		o.mu.Unlock()
		return o.View(), ErrCompletionInProgress
	case o.state == to && o.state.IsTerminal():
		view := o.viewLocked()
		o.mu.Unlock()
		return view, nil
	case !o.state.IsProcessing():
		o.mu.Unlock()
		return o.View(), ErrNoPaymentInFlight
	}

	if o.abort != nil {
		o.abort()
		o.abort = nil
	}
	from := o.state
	o.state = to
	o.outcome = &entities.CheckoutOutcome{Kind: kind, Message: msg, PaymentID: o.paymentID}
	status := entities.PaymentStatusCancelled
	if to == entities.CheckoutFailed {
		status = entities.PaymentStatusFailed
	}
	entry := o.journalEntryLocked(status, reason)
	view := o.viewLocked()
	o.mu.Unlock()

	log.Printf("[checkout][orchestrator] %s session_id=%s payment_id=%s from=%s", to, o.sessionID, entry.PaymentID, from)
	o.record(ctx, entry)
	return view, nil
}

// View returns a snapshot for rendering.
func (o *CheckoutOrchestrator) View() entities.CheckoutView {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.viewLocked()
}

func (o *CheckoutOrchestrator) viewLocked() entities.CheckoutView {
	v := entities.CheckoutView{
		SessionID:     o.sessionID,
		State:         o.state,
		Processing:    o.state.IsProcessing(),
		Authenticated: o.wallet != nil && o.authPending == 0,
		PaymentID:     o.paymentID,
		TxID:          o.txid,
		Cart:          o.cart.Lines(),
	}
	if o.draft != nil {
		d := *o.draft
		v.Draft = &d
	}
	if o.outcome != nil {
		out := *o.outcome
		v.Outcome = &out
	}
	return v
}

func (o *CheckoutOrchestrator) failLocked(kind entities.OutcomeKind, msg string) {
	o.state = entities.CheckoutFailed
	o.outcome = &entities.CheckoutOutcome{Kind: kind, Message: msg, PaymentID: o.paymentID, TxID: o.txid}
}

func (o *CheckoutOrchestrator) journalEntryLocked(status entities.PaymentStatus, lastErr string) entities.PaymentJournalEntry {
	e := entities.PaymentJournalEntry{
		PaymentID: o.paymentID,
		SessionID: o.sessionID,
		Status:    status,
		TxID:      o.txid,
		LastError: lastErr,
		UpdatedAt: o.deps.Now(),
	}
	if o.draft != nil {
		e.Amount = o.draft.Amount
	}
	return e
}

func (o *CheckoutOrchestrator) priceLines(ctx context.Context, lines []entities.CartLine) ([]entities.OrderItem, error) {
	items := make([]entities.OrderItem, 0, len(lines))
	for _, l := range lines {
		p, err := o.deps.Catalog.GetByID(ctx, l.ProductID)
		if err != nil {
			return nil, err
		}
		if p.ID == "" {
			return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, l.ProductID)
		}
		if l.Quantity <= 0 {
			return nil, entities.ErrInvalidCartQuantity
		}
		if l.Quantity > p.Stock {
			return nil, fmt.Errorf("%w: %s (requested %d, available %d)", ErrInsufficientStock, l.ProductID, l.Quantity, p.Stock)
		}
		items = append(items, entities.OrderItem{ProductID: p.ID, Quantity: l.Quantity, UnitPrice: p.Price})
	}
	return items, nil
}

func (o *CheckoutOrchestrator) appendOrder(ctx context.Context, order entities.Order) error {
	if !o.deps.Ledger.Available() {
		return ErrOrderLedgerDown
	}
	spanCtx, span := tracer.Start(ctx, "checkout.ledger_append", trace.WithAttributes(
		attribute.String("order.id", order.ID),
		attribute.String("payment.id", order.PaymentID),
	))
	err := o.deps.Ledger.Append(spanCtx, order)
	endSpan(span, err)
	return err
}

// record writes to the payment journal. Journal failures never change the outcome.
func (o *CheckoutOrchestrator) record(ctx context.Context, entry entities.PaymentJournalEntry) {
	if entry.PaymentID == "" || o.deps.Journal == nil || !o.deps.Journal.Available() {
		return
	}
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), journalWriteTimeout)
	defer cancel()
	if err := o.deps.Journal.Record(wctx, entry); err != nil {
		log.Printf("[checkout][journal] record failed payment_id=%s status=%s err=%v", entry.PaymentID, entry.Status, err)
	}
}

func (o *CheckoutOrchestrator) publish(ctx context.Context, fn func(context.Context, interfaces.IEventPublisher) error) {
	if o.deps.Events == nil {
		return
	}
	if err := fn(ctx, o.deps.Events); err != nil {
		log.Printf("[checkout][events] publish failed session_id=%s err=%v", o.sessionID, err)
	}
}

func gatewayOutcome(err error) (entities.OutcomeKind, string) {
	var gwErr *entities.GatewayError
	if errors.As(err, &gwErr) {
		switch gwErr.Kind {
		case entities.GatewayErrTransport:
			return entities.OutcomeGatewayUnreachable, "We could not reach the payment service. Your cart was kept; please try again."
		case entities.GatewayErrMissingCredential:
			return entities.OutcomeGatewayFailed, "Payments are not available right now. Your cart was kept."
		case entities.GatewayErrUpstream:
			return entities.OutcomeGatewayFailed, fmt.Sprintf("The payment was rejected (status %d). Your cart was kept.", gwErr.StatusCode)
		}
	}
	if errors.Is(err, ErrAmountMismatch) {
		return entities.OutcomeGatewayFailed, "The payment amount did not match your cart total. Your cart was kept."
	}
	return entities.OutcomeGatewayFailed, "The payment could not be processed. Your cart was kept."
}

func buildMemo(items []entities.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%dx %s", it.Quantity, it.ProductID))
	}
	memo := memoPrefix + strings.Join(parts, ", ")
	if utf8.RuneCountInString(memo) <= entities.MaxMemoLength {
		return memo
	}
	r := []rune(memo)
	return string(r[:entities.MaxMemoLength-3]) + "..."
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
