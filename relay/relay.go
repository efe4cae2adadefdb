// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package relay

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/remitix/relayer/auth"
	"github.com/remitix/relayer/chains/evm/executor"
)

var ErrNonceAlreadyUsed = errors.New("authorization nonce already used")

type Verifier interface {
	Verify(a *auth.Authorization) (common.Address, error)
}

type NonceStore interface {
	MarkUsed(kind auth.Kind, signer common.Address, nonce uint64) error
}

type RelayExecutor interface {
	Execute(ctx context.Context, call *executor.Call) (*executor.RelayOutcome, error)
}

// Service is the common verify-then-relay path shared by every authorized
// operation that is not a fund transfer: faucet claims and the vault, yield
// and portfolio calls. Fund transfers go through the orchestrator, which
// adds quote binding and persistence on top of this same sequence.
type Service struct {
	verifier Verifier
	nonces   NonceStore
	executor RelayExecutor
}

func NewService(verifier Verifier, nonces NonceStore, relayExecutor RelayExecutor) *Service {
	return &Service{
		verifier: verifier,
		nonces:   nonces,
		executor: relayExecutor,
	}
}

// Relay verifies the authorization, burns its nonce and executes the
// prepared call through the fee payer.
func (s *Service) Relay(ctx context.Context, a *auth.Authorization, call *executor.Call) (*executor.RelayOutcome, error) {
	_, err := s.verifier.Verify(a)
	if err != nil {
		return nil, err
	}

	// MarkUsed is an atomic check-and-burn, so concurrent requests carrying
	// the same authorization relay at most once
	err = s.nonces.MarkUsed(a.Kind, a.Signer, a.Nonce)
	if err != nil {
		if errors.Is(err, auth.ErrNonceUsed) {
			return nil, ErrNonceAlreadyUsed
		}
		return nil, err
	}

	outcome, err := s.executor.Execute(ctx, call)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("kind", a.Kind.String()).
		Str("signer", a.Signer.Hex()).
		Str("tx.hash", outcome.TxHash.Hex()).
		Msg("Authorized call relayed")
	return outcome, nil
}
