// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package executor

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"
)

type submission struct {
	call   *Call
	resChn chan submissionResult
}

type submissionResult struct {
	hash common.Hash
	err  error
}

// Start runs the submission queue until the context is cancelled. Two
// concurrent executions race on the fee payer's account nonce, so nonce
// assignment and broadcast happen only inside this loop. This is a
// correctness invariant, not an optimization.
func (e *Executor) Start(ctx context.Context) error {
	for {
		select {
		case s := <-e.submitChn:
			{
				hash, err := e.broadcast(ctx, s.call)
				s.resChn <- submissionResult{hash: hash, err: err}
			}
		case <-ctx.Done():
			{
				return ctx.Err()
			}
		}
	}
}

func (e *Executor) submit(ctx context.Context, call *Call) (common.Hash, error) {
	s := &submission{
		call:   call,
		resChn: make(chan submissionResult, 1),
	}

	select {
	case e.submitChn <- s:
	case <-ctx.Done():
		return common.Hash{}, ctx.Err()
	}

	select {
	case res := <-s.resChn:
		return res.hash, res.err
	case <-ctx.Done():
		return common.Hash{}, ctx.Err()
	}
}

func (e *Executor) broadcast(ctx context.Context, call *Call) (common.Hash, error) {
	balance, err := e.client.BalanceAt(ctx, e.address, nil)
	if err == nil && balance.Cmp(LowBalanceThreshold) < 0 {
		log.Warn().
			Str("feePayer", e.address.Hex()).
			Str("balance", balance.String()).
			Msg("Fee payer balance below threshold, submissions about to starve")
	}

	nonce, err := e.client.PendingNonceAt(ctx, e.address)
	if err != nil {
		return common.Hash{}, err
	}

	head, err := e.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return common.Hash{}, err
	}
	tip, err := e.client.SuggestGasTipCap(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	feeCap := new(big.Int).Add(new(big.Int).Mul(head.BaseFee, big.NewInt(2)), tip)

	value := call.Value
	if value == nil {
		value = big.NewInt(0)
	}

	gasLimit := call.GasLimit
	if gasLimit == 0 {
		gasLimit, err = e.client.EstimateGas(ctx, ethereum.CallMsg{
			From:  e.address,
			To:    &call.To,
			Data:  call.Data,
			Value: value,
		})
		if err != nil {
			return common.Hash{}, err
		}
	}

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   e.chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       gasLimit,
		To:        &call.To,
		Value:     value,
		Data:      call.Data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(e.chainID), e.key)
	if err != nil {
		return common.Hash{}, err
	}

	err = e.client.SendTransaction(ctx, signed)
	if err != nil {
		return common.Hash{}, err
	}
	return signed.Hash(), nil
}
