// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/remitix/relayer/cache"
)

const (
	// QuoteTTL is how long a generated quote stays valid.
	QuoteTTL = 5 * time.Minute
	// quoteRetention keeps expired quotes readable for history lookups.
	quoteRetention = 24 * time.Hour

	quoteKey = "quote:%s"
)

var (
	ErrUnsupportedPair  = errors.New("unsupported currency pair")
	ErrAmountOutOfRange = errors.New("amount outside allowed bounds for currency")
	ErrQuoteNotFound    = errors.New("quote not found")
	ErrQuoteExpired     = errors.New("quote expired")
	ErrQuoteConsumed    = errors.New("quote already consumed")
)

// Quote is a locked-in rate commitment. All downstream consumers use the
// amounts computed at generation time and never recompute them.
type Quote struct {
	ID           string    `json:"id"`
	FromCurrency string    `json:"fromCurrency"`
	ToCurrency   string    `json:"toCurrency"`
	FromAmount   float64   `json:"fromAmount"`
	ToAmount     float64   `json:"toAmount"`
	Rate         float64   `json:"rate"`
	Fee          float64   `json:"fee"`
	TotalCost    float64   `json:"totalCost"`
	CreatedAt    time.Time `json:"createdAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// storedQuote is the cached record. Consumption state is engine-internal
// and never serialized onto API responses.
type storedQuote struct {
	Quote
	Consumed bool `json:"consumed"`
}

// Engine issues and validates anonymous, short-lived quotes from a fixed
// rate table. The mutex serializes consumption so concurrent transfers
// cannot spend one quote twice.
type Engine struct {
	cache cache.Cache
	mu    sync.Mutex
	now   func() time.Time
}

func NewEngine(c cache.Cache) *Engine {
	return &Engine{
		cache: c,
		now:   time.Now,
	}
}

// GenerateQuote locks in rate, fee and destination amount for the pair.
func (e *Engine) GenerateQuote(ctx context.Context, fromCurrency, toCurrency string, fromAmount float64) (*Quote, error) {
	rate, ok := rates[pairKey(fromCurrency, toCurrency)]
	if !ok {
		return nil, ErrUnsupportedPair
	}

	bounds := amountBounds[fromCurrency]
	if fromAmount < bounds.Min || fromAmount > bounds.Max {
		return nil, ErrAmountOutOfRange
	}

	now := e.now()
	fee := fromAmount * platformFeeRate
	q := &Quote{
		ID:           uuid.NewString(),
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
		FromAmount:   fromAmount,
		ToAmount:     fromAmount * rate,
		Rate:         rate,
		Fee:          fee,
		TotalCost:    fromAmount + fee,
		CreatedAt:    now,
		ExpiresAt:    now.Add(QuoteTTL),
	}

	err := e.store(ctx, &storedQuote{Quote: *q})
	if err != nil {
		return nil, err
	}
	return q, nil
}

// Quote fetches a quote by id regardless of validity.
func (e *Engine) Quote(ctx context.Context, id string) (*Quote, error) {
	sq, err := e.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &sq.Quote, nil
}

// ValidateQuote returns the quote if it is still usable, or the reason it is
// not. Expired quotes are never revivable.
func (e *Engine) ValidateQuote(ctx context.Context, id string) (*Quote, error) {
	sq, err := e.load(ctx, id)
	if err != nil {
		return nil, err
	}
	err = e.usable(sq)
	if err != nil {
		return nil, err
	}
	return &sq.Quote, nil
}

// ConsumeQuote marks a valid quote as spent. Exactly one transfer can
// consume a quote; a concurrent second consume observes ErrQuoteConsumed.
func (e *Engine) ConsumeQuote(ctx context.Context, id string) (*Quote, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sq, err := e.load(ctx, id)
	if err != nil {
		return nil, err
	}
	err = e.usable(sq)
	if err != nil {
		return nil, err
	}

	sq.Consumed = true
	err = e.store(ctx, sq)
	if err != nil {
		return nil, err
	}
	return &sq.Quote, nil
}

func (e *Engine) usable(sq *storedQuote) error {
	if sq.Consumed {
		return ErrQuoteConsumed
	}
	if e.now().After(sq.ExpiresAt) {
		return ErrQuoteExpired
	}
	return nil
}

func (e *Engine) load(ctx context.Context, id string) (*storedQuote, error) {
	value, err := e.cache.Get(ctx, fmt.Sprintf(quoteKey, id))
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, ErrQuoteNotFound
		}
		return nil, err
	}

	sq := &storedQuote{}
	err = json.Unmarshal(value, sq)
	if err != nil {
		return nil, err
	}
	return sq, nil
}

func (e *Engine) store(ctx context.Context, sq *storedQuote) error {
	value, err := json.Marshal(sq)
	if err != nil {
		return err
	}
	return e.cache.Set(ctx, fmt.Sprintf(quoteKey, sq.ID), value, quoteRetention)
}
