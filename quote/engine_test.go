// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package quote_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/remitix/relayer/cache"
	"github.com/remitix/relayer/quote"
)

type QuoteEngineTestSuite struct {
	suite.Suite
	engine *quote.Engine
	now    time.Time
}

func TestRunQuoteEngineTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteEngineTestSuite))
}

func (s *QuoteEngineTestSuite) SetupTest() {
	s.engine = quote.NewEngine(cache.NewMemoryCache())
	s.now = time.Unix(1700000000, 0)
	s.engine.SetNow(func() time.Time { return s.now })
}

func (s *QuoteEngineTestSuite) Test_GenerateQuote_LocksInRateAndFee() {
	q, err := s.engine.GenerateQuote(context.Background(), "USD", "PHP", 100)

	s.Nil(err)
	s.Equal(5600.0, q.ToAmount)
	s.Equal(56.0, q.Rate)
	s.Equal(0.5, q.Fee)
	s.Equal(100.5, q.TotalCost)
	s.Equal(s.now.Add(5*time.Minute), q.ExpiresAt)
}

func (s *QuoteEngineTestSuite) Test_GenerateQuote_RateIsDirectional() {
	forward, err := s.engine.GenerateQuote(context.Background(), "USD", "PHP", 100)
	s.Nil(err)
	reverse, err := s.engine.GenerateQuote(context.Background(), "PHP", "USD", 5600)
	s.Nil(err)

	s.Equal(56.0, forward.Rate)
	s.Equal(1.0/56.0, reverse.Rate)
	s.Equal(100.0, reverse.ToAmount)
}

func (s *QuoteEngineTestSuite) Test_GenerateQuote_UnsupportedPair() {
	_, err := s.engine.GenerateQuote(context.Background(), "USD", "JPY", 100)

	s.ErrorIs(err, quote.ErrUnsupportedPair)
}

func (s *QuoteEngineTestSuite) Test_GenerateQuote_AmountOutOfRange() {
	_, err := s.engine.GenerateQuote(context.Background(), "USD", "PHP", 0.5)
	s.ErrorIs(err, quote.ErrAmountOutOfRange)

	_, err = s.engine.GenerateQuote(context.Background(), "USD", "PHP", 10001)
	s.ErrorIs(err, quote.ErrAmountOutOfRange)
}

func (s *QuoteEngineTestSuite) Test_Quote_NotFound() {
	_, err := s.engine.Quote(context.Background(), "missing")

	s.ErrorIs(err, quote.ErrQuoteNotFound)
}

func (s *QuoteEngineTestSuite) Test_ValidateQuote_WithinTTL() {
	q, err := s.engine.GenerateQuote(context.Background(), "USD", "PHP", 100)
	s.Nil(err)

	s.now = s.now.Add(299 * time.Second)
	validated, err := s.engine.ValidateQuote(context.Background(), q.ID)

	s.Nil(err)
	s.Equal(q.ID, validated.ID)
}

func (s *QuoteEngineTestSuite) Test_ValidateQuote_ExpiredAfterTTL() {
	q, err := s.engine.GenerateQuote(context.Background(), "USD", "PHP", 100)
	s.Nil(err)

	s.now = s.now.Add(301 * time.Second)
	_, err = s.engine.ValidateQuote(context.Background(), q.ID)

	s.ErrorIs(err, quote.ErrQuoteExpired)
}

func (s *QuoteEngineTestSuite) Test_ConsumeQuote_OneShot() {
	q, err := s.engine.GenerateQuote(context.Background(), "USD", "PHP", 100)
	s.Nil(err)

	consumed, err := s.engine.ConsumeQuote(context.Background(), q.ID)
	s.Nil(err)
	s.Equal(q.ID, consumed.ID)

	_, err = s.engine.ConsumeQuote(context.Background(), q.ID)
	s.ErrorIs(err, quote.ErrQuoteConsumed)

	_, err = s.engine.ValidateQuote(context.Background(), q.ID)
	s.ErrorIs(err, quote.ErrQuoteConsumed)
}

func (s *QuoteEngineTestSuite) Test_ConsumeQuote_ConcurrentConsumersGetOne() {
	q, err := s.engine.GenerateQuote(context.Background(), "USD", "PHP", 100)
	s.Nil(err)

	const consumers = 16
	results := make(chan error, consumers)
	var wg sync.WaitGroup
	for i := 0; i < consumers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.engine.ConsumeQuote(context.Background(), q.ID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			s.ErrorIs(err, quote.ErrQuoteConsumed)
		}
	}
	s.Equal(1, succeeded)
}

func (s *QuoteEngineTestSuite) Test_Quote_DoesNotExposeConsumption() {
	q, err := s.engine.GenerateQuote(context.Background(), "USD", "PHP", 100)
	s.Nil(err)
	_, err = s.engine.ConsumeQuote(context.Background(), q.ID)
	s.Nil(err)

	fetched, err := s.engine.Quote(context.Background(), q.ID)
	s.Nil(err)

	serialized, err := json.Marshal(fetched)
	s.Nil(err)
	s.NotContains(string(serialized), "consumed")
}
