// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package transfer

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/remitix/relayer/auth"
	"github.com/remitix/relayer/chains/evm/executor"
	"github.com/remitix/relayer/quote"
)

// Stable machine-readable failure codes recorded on transfers and returned
// to callers.
const (
	CodeQuoteInvalid         = "QUOTE_INVALID"
	CodeAuthorizationInvalid = "AUTHORIZATION_INVALID"
	CodeNonceAlreadyUsed     = "NONCE_ALREADY_USED"
	CodeInsufficientBalance  = "INSUFFICIENT_BALANCE"
	CodeSubmissionRejected   = "SUBMISSION_REJECTED"
	CodeExecutionReverted    = "EXECUTION_REVERTED"
	CodeIndeterminate        = "INDETERMINATE"
	CodeUpstreamUnavailable  = "UPSTREAM_UNAVAILABLE"
	CodeNotCancellable       = "NOT_CANCELLABLE"
	CodeTransferCancelled    = "TRANSFER_CANCELLED"
)

var ErrInsufficientBalance = errors.New("sender balance below quote source amount")

// Error carries the stable code alongside the underlying cause.
type Error struct {
	Code string
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

type QuoteEngine interface {
	ValidateQuote(ctx context.Context, id string) (*quote.Quote, error)
	ConsumeQuote(ctx context.Context, id string) (*quote.Quote, error)
}

type Verifier interface {
	Verify(a *auth.Authorization) (common.Address, error)
}

type Store interface {
	StoreTransfer(t *Transfer) error
	Transfer(id string) (*Transfer, error)
	TransfersBySender(sender common.Address, limit int) ([]*Transfer, error)
}

type NonceStore interface {
	IsUsed(kind auth.Kind, signer common.Address, nonce uint64) (bool, error)
	MarkUsed(kind auth.Kind, signer common.Address, nonce uint64) error
}

type TokenContract interface {
	TransferWithAuthorization(from, to common.Address, value *big.Int, nonce uint64, deadline int64, sig []byte) (*executor.Call, error)
	BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error)
}

type RelayExecutor interface {
	Execute(ctx context.Context, call *executor.Call) (*executor.RelayOutcome, error)
	Reconcile(ctx context.Context, hash common.Hash) (*executor.RelayOutcome, error)
}

type Metrics interface {
	TrackTransferCompleted(ctx context.Context)
	TrackTransferFailed(ctx context.Context)
	TrackExecutionLatency(ctx context.Context, start time.Time)
}

// CreateRequest binds a quote to a signed fund-transfer authorization.
type CreateRequest struct {
	QuoteID   string
	From      common.Address
	To        common.Address
	Signature []byte
	Nonce     uint64
	Deadline  int64
}

// Orchestrator drives a transfer through its lifecycle. Execution is
// synchronous: the caller receives the terminal state in the same call that
// created the transfer.
type Orchestrator struct {
	quotes   QuoteEngine
	verifier Verifier
	store    Store
	nonces   NonceStore
	token    TokenContract
	executor RelayExecutor
	domain   auth.Domain
	metrics  Metrics
	now      func() time.Time

	// per-transfer locks serializing status transitions against Cancel
	// and reconciliation
	locks sync.Map
}

func NewOrchestrator(
	quotes QuoteEngine,
	verifier Verifier,
	store Store,
	nonces NonceStore,
	token TokenContract,
	relayExecutor RelayExecutor,
	domain auth.Domain,
) *Orchestrator {
	return &Orchestrator{
		quotes:   quotes,
		verifier: verifier,
		store:    store,
		nonces:   nonces,
		token:    token,
		executor: relayExecutor,
		domain:   domain,
		now:      time.Now,
	}
}

// WithMetrics attaches the telemetry sink. Tracking is skipped while unset.
func (o *Orchestrator) WithMetrics(m Metrics) *Orchestrator {
	o.metrics = m
	return o
}

// Create validates the quote and authorization, checks the sender's
// on-chain balance and relays the transfer. Any failure past quote
// validation is persisted on the transfer verbatim.
func (o *Orchestrator) Create(ctx context.Context, req CreateRequest) (*Transfer, error) {
	q, err := o.quotes.ValidateQuote(ctx, req.QuoteID)
	if err != nil {
		// nothing is persisted for an invalid quote
		return nil, &Error{Code: CodeQuoteInvalid, Err: err}
	}

	t := &Transfer{
		ID:           uuid.NewString(),
		QuoteID:      q.ID,
		Sender:       req.From,
		Recipient:    req.To,
		FromCurrency: q.FromCurrency,
		ToCurrency:   q.ToCurrency,
		FromAmount:   q.FromAmount,
		ToAmount:     q.ToAmount,
		Rate:         q.Rate,
		Fee:          q.Fee,
		Status:       StatusPending,
		CreatedAt:    o.now(),
	}
	err = o.store.StoreTransfer(t)
	if err != nil {
		return nil, &Error{Code: CodeUpstreamUnavailable, Err: err}
	}

	value := tokenUnits(q.FromAmount)
	authorization := &auth.Authorization{
		Kind:      auth.FundTransfer,
		Domain:    o.domain,
		Message:   auth.TransferMessage(q.ID, req.From, req.To, value, req.Nonce, req.Deadline),
		Signature: req.Signature,
		Signer:    req.From,
		Nonce:     req.Nonce,
		Deadline:  req.Deadline,
	}
	_, err = o.verifier.Verify(authorization)
	if err != nil {
		return t, o.fail(ctx, t, CodeAuthorizationInvalid, err)
	}

	used, err := o.nonces.IsUsed(auth.FundTransfer, req.From, req.Nonce)
	if err != nil {
		return t, o.fail(ctx, t, CodeUpstreamUnavailable, err)
	}
	if used {
		return t, o.fail(ctx, t, CodeNonceAlreadyUsed, auth.ErrNonceUsed)
	}

	balance, err := o.token.BalanceOf(ctx, req.From)
	if err != nil {
		return t, o.fail(ctx, t, CodeUpstreamUnavailable, err)
	}
	if balance.Cmp(value) < 0 {
		return t, o.fail(ctx, t, CodeInsufficientBalance, ErrInsufficientBalance)
	}

	err = o.promote(ctx, t, q.ID, req)
	if err != nil {
		return t, err
	}

	call, err := o.token.TransferWithAuthorization(req.From, req.To, value, req.Nonce, req.Deadline, req.Signature)
	if err != nil {
		return t, o.fail(ctx, t, CodeAuthorizationInvalid, err)
	}

	start := o.now()
	outcome, err := o.executor.Execute(ctx, call)
	if o.metrics != nil {
		o.metrics.TrackExecutionLatency(ctx, start)
	}
	if err != nil {
		return t, o.failExecution(ctx, t, err)
	}

	now := o.now()
	t.Status = StatusCompleted
	t.TxHash = outcome.TxHash.Hex()
	t.CompletedAt = &now
	err = o.store.StoreTransfer(t)
	if err != nil {
		return t, &Error{Code: CodeUpstreamUnavailable, Err: err}
	}

	if o.metrics != nil {
		o.metrics.TrackTransferCompleted(ctx)
	}
	log.Info().
		Str("transfer", t.ID).
		Str("tx.hash", t.TxHash).
		Msg("Transfer completed")
	return t, nil
}

// promote consumes the quote, burns the nonce and moves the transfer to
// PROCESSING under the transfer's lock, so a concurrent Cancel can never
// slip in between validation and execution.
func (o *Orchestrator) promote(ctx context.Context, t *Transfer, quoteID string, req CreateRequest) error {
	mu := o.lock(t.ID)
	mu.Lock()
	defer mu.Unlock()

	current, err := o.store.Transfer(t.ID)
	if err == nil && current.Status == StatusCancelled {
		*t = *current
		return &Error{Code: CodeTransferCancelled, Err: errors.New("transfer cancelled before execution")}
	}

	_, err = o.quotes.ConsumeQuote(ctx, quoteID)
	if err != nil {
		return o.fail(ctx, t, CodeQuoteInvalid, err)
	}
	err = o.nonces.MarkUsed(auth.FundTransfer, req.From, req.Nonce)
	if err != nil {
		if errors.Is(err, auth.ErrNonceUsed) {
			return o.fail(ctx, t, CodeNonceAlreadyUsed, err)
		}
		return o.fail(ctx, t, CodeUpstreamUnavailable, err)
	}

	t.Status = StatusProcessing
	err = o.store.StoreTransfer(t)
	if err != nil {
		return &Error{Code: CodeUpstreamUnavailable, Err: err}
	}
	return nil
}

// Get returns the transfer by id. An indeterminate transfer with a known
// transaction hash is reconciled against the chain first, so a caller
// polling the transfer observes the settled outcome as soon as the
// transaction lands.
func (o *Orchestrator) Get(ctx context.Context, id string) (*Transfer, error) {
	t, err := o.store.Transfer(id)
	if err != nil {
		return nil, err
	}
	if t.Status == StatusProcessing && t.ErrorCode == CodeIndeterminate && t.TxHash != "" {
		return o.reconcile(ctx, t)
	}
	return t, nil
}

// reconcile settles an indeterminate transfer by re-querying its broadcast
// transaction. When no receipt exists yet the transfer is returned as is.
func (o *Orchestrator) reconcile(ctx context.Context, t *Transfer) (*Transfer, error) {
	mu := o.lock(t.ID)
	mu.Lock()
	defer mu.Unlock()

	outcome, err := o.executor.Reconcile(ctx, common.HexToHash(t.TxHash))
	if err != nil {
		var reverted *executor.ExecutionRevertedError
		if errors.As(err, &reverted) {
			// terminal now that a receipt exists, record and return the
			// settled transfer
			_ = o.fail(ctx, t, CodeExecutionReverted, err)
			return t, nil
		}
		// still no receipt, stays indeterminate
		return t, nil
	}

	now := o.now()
	t.Status = StatusCompleted
	t.TxHash = outcome.TxHash.Hex()
	t.ErrorCode = ""
	t.Error = ""
	t.CompletedAt = &now
	err = o.store.StoreTransfer(t)
	if err != nil {
		return t, &Error{Code: CodeUpstreamUnavailable, Err: err}
	}

	if o.metrics != nil {
		o.metrics.TrackTransferCompleted(ctx)
	}
	log.Info().
		Str("transfer", t.ID).
		Str("tx.hash", t.TxHash).
		Msg("Indeterminate transfer reconciled as completed")
	return t, nil
}

func (o *Orchestrator) lock(id string) *sync.Mutex {
	mu, _ := o.locks.LoadOrStore(id, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// ByUser lists the sender's transfers, most recent first.
func (o *Orchestrator) ByUser(sender common.Address, limit int) ([]*Transfer, error) {
	return o.store.TransfersBySender(sender, limit)
}

// Cancel moves a pending transfer to CANCELLED. Once execution has begun
// the caller must wait for a terminal outcome.
func (o *Orchestrator) Cancel(id, reason string) (*Transfer, error) {
	mu := o.lock(id)
	mu.Lock()
	defer mu.Unlock()

	t, err := o.store.Transfer(id)
	if err != nil {
		return nil, err
	}
	if t.Status != StatusPending {
		return t, &Error{Code: CodeNotCancellable, Err: errors.New("only pending transfers can be cancelled")}
	}

	now := o.now()
	t.Status = StatusCancelled
	t.Error = reason
	t.CompletedAt = &now
	err = o.store.StoreTransfer(t)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (o *Orchestrator) fail(ctx context.Context, t *Transfer, code string, cause error) error {
	now := o.now()
	t.Status = StatusFailed
	t.ErrorCode = code
	t.Error = cause.Error()
	t.CompletedAt = &now

	err := o.store.StoreTransfer(t)
	if err != nil {
		log.Error().Err(err).Str("transfer", t.ID).Msg("failed to persist failed transfer")
	}
	if o.metrics != nil {
		o.metrics.TrackTransferFailed(ctx)
	}
	return &Error{Code: code, Err: cause}
}

func (o *Orchestrator) failExecution(ctx context.Context, t *Transfer, cause error) error {
	var reverted *executor.ExecutionRevertedError
	if errors.As(cause, &reverted) {
		t.TxHash = reverted.Outcome.TxHash.Hex()
		return o.fail(ctx, t, CodeExecutionReverted, cause)
	}

	var rejected *executor.SubmissionRejectedError
	if errors.As(cause, &rejected) {
		return o.fail(ctx, t, CodeSubmissionRejected, cause)
	}

	if errors.Is(cause, executor.ErrTimeout) {
		// indeterminate, not failure: stays PROCESSING until reconciled.
		// The broadcast hash is persisted so reconciliation can find the
		// transaction later.
		var timedOut *executor.TimeoutError
		if errors.As(cause, &timedOut) {
			t.TxHash = timedOut.TxHash.Hex()
		}
		t.ErrorCode = CodeIndeterminate
		t.Error = cause.Error()
		err := o.store.StoreTransfer(t)
		if err != nil {
			log.Error().Err(err).Str("transfer", t.ID).Msg("failed to persist indeterminate transfer")
		}
		return &Error{Code: CodeIndeterminate, Err: cause}
	}

	return o.fail(ctx, t, CodeUpstreamUnavailable, cause)
}

// tokenUnits converts a quote amount into 18 decimal token base units.
func tokenUnits(amount float64) *big.Int {
	scaled := new(big.Float).Mul(big.NewFloat(amount), big.NewFloat(1e18))
	value, _ := scaled.Int(nil)
	return value
}
