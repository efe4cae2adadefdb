// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package executor

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/params"
	"github.com/rs/zerolog/log"
)

var (
	receiptPollInterval = 2 * time.Second
	receiptTimeout      = 2 * time.Minute

	genericRevertReason = "execution reverted on-chain"
)

// LowBalanceThreshold is the fee payer balance below which the executor
// reports unhealthy and logs a warning on every submission.
var LowBalanceThreshold = new(big.Int).SetUint64(params.Ether)

// ChainClient is the ledger RPC surface the executor depends on. Satisfied
// by evmclient.EVMClient.
type ChainClient interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	TransactionByHash(ctx context.Context, txHash common.Hash) (*types.Transaction, bool, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	BlockNumber(ctx context.Context) (uint64, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
}

// Call is a prepared contract invocation the fee payer will sign and pay
// gas for. The user's authorization travels inside Data.
type Call struct {
	To       common.Address
	Data     []byte
	Value    *big.Int
	GasLimit uint64
}

// RelayOutcome classifies one execution attempt by on-chain receipt, not by
// submission success.
type RelayOutcome struct {
	Successful   bool        `json:"successful"`
	TxHash       common.Hash `json:"txHash"`
	BlockNumber  *big.Int    `json:"blockNumber"`
	GasUsed      uint64      `json:"gasUsed"`
	RevertReason string      `json:"revertReason,omitempty"`
}

// Status reports the fee payer's health.
type Status struct {
	Address    common.Address `json:"address"`
	Balance    *big.Int       `json:"balance"`
	LowBalance bool           `json:"lowBalance"`
}

// Executor relays prepared calls through the platform's fee-paying
// identity. All submissions are serialized through a single queue owning
// the fee payer's account nonce; everything after broadcast runs
// concurrently per call.
type Executor struct {
	client        ChainClient
	key           *ecdsa.PrivateKey
	address       common.Address
	chainID       *big.Int
	confirmations uint64

	submitChn chan *submission
}

func NewExecutor(client ChainClient, key *ecdsa.PrivateKey, chainID *big.Int, confirmations uint64) *Executor {
	return &Executor{
		client:        client,
		key:           key,
		address:       crypto.PubkeyToAddress(key.PublicKey),
		chainID:       chainID,
		confirmations: confirmations,
		submitChn:     make(chan *submission),
	}
}

// Address returns the fee payer identity.
func (e *Executor) Address() common.Address {
	return e.address
}

// Execute signs and broadcasts the call as the fee payer, waits for
// finality and classifies the outcome. Reverted and successful executions
// are terminal and are never retried here.
func (e *Executor) Execute(ctx context.Context, call *Call) (*RelayOutcome, error) {
	hash, err := e.submit(ctx, call)
	if err != nil {
		return nil, &SubmissionRejectedError{Err: err}
	}
	log.Debug().Str("tx.hash", hash.Hex()).Msg("Relayed transaction broadcast")

	receipt, err := e.waitForReceipt(ctx, hash)
	if err != nil {
		if errors.Is(err, ErrTimeout) {
			return nil, &TimeoutError{TxHash: hash}
		}
		return nil, err
	}

	outcome := &RelayOutcome{
		TxHash:      hash,
		BlockNumber: receipt.BlockNumber,
		GasUsed:     receipt.GasUsed,
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		outcome.RevertReason = e.revertReason(ctx, ethereum.CallMsg{
			From:  e.address,
			To:    &call.To,
			Data:  call.Data,
			Value: call.Value,
		}, receipt.BlockNumber)
		return outcome, &ExecutionRevertedError{Reason: outcome.RevertReason, Outcome: outcome}
	}

	outcome.Successful = true
	return outcome, nil
}

// Reconcile re-queries a previously indeterminate execution. It never
// resubmits the transaction.
func (e *Executor) Reconcile(ctx context.Context, hash common.Hash) (*RelayOutcome, error) {
	receipt, err := e.client.TransactionReceipt(ctx, hash)
	if err != nil {
		return nil, ErrTimeout
	}

	outcome := &RelayOutcome{
		TxHash:      hash,
		BlockNumber: receipt.BlockNumber,
		GasUsed:     receipt.GasUsed,
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		tx, _, err := e.client.TransactionByHash(ctx, hash)
		if err == nil && tx.To() != nil {
			outcome.RevertReason = e.revertReason(ctx, ethereum.CallMsg{
				From:  e.address,
				To:    tx.To(),
				Data:  tx.Data(),
				Value: tx.Value(),
			}, receipt.BlockNumber)
		} else {
			outcome.RevertReason = genericRevertReason
		}
		return outcome, &ExecutionRevertedError{Reason: outcome.RevertReason, Outcome: outcome}
	}

	outcome.Successful = true
	return outcome, nil
}

// Balance returns the fee payer's current balance.
func (e *Executor) Balance(ctx context.Context) (*big.Int, error) {
	return e.client.BalanceAt(ctx, e.address, nil)
}

// HealthStatus surfaces the fee payer's balance. The balance is a shared,
// exhaustible resource; callers alert below LowBalanceThreshold.
func (e *Executor) HealthStatus(ctx context.Context) (*Status, error) {
	balance, err := e.Balance(ctx)
	if err != nil {
		return nil, err
	}
	return &Status{
		Address:    e.address,
		Balance:    balance,
		LowBalance: balance.Cmp(LowBalanceThreshold) < 0,
	}, nil
}

func (e *Executor) waitForReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(receiptPollInterval)
	timeout := time.NewTicker(receiptTimeout)
	defer ticker.Stop()
	defer timeout.Stop()

	var receipt *types.Receipt
	for {
		select {
		case <-ticker.C:
			{
				if receipt == nil {
					r, err := e.client.TransactionReceipt(ctx, hash)
					if err != nil {
						continue
					}
					receipt = r
				}

				head, err := e.client.BlockNumber(ctx)
				if err != nil {
					continue
				}
				if head >= receipt.BlockNumber.Uint64()+e.confirmations-1 {
					return receipt, nil
				}
			}
		case <-timeout.C:
			{
				return nil, ErrTimeout
			}
		case <-ctx.Done():
			{
				return nil, ctx.Err()
			}
		}
	}
}

// revertReason re-simulates the failed call against the state of its block
// and decodes an Error(string) payload when the node returns one.
func (e *Executor) revertReason(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) string {
	_, err := e.client.CallContract(ctx, msg, blockNumber)
	if err == nil {
		return genericRevertReason
	}

	type dataError interface {
		ErrorData() interface{}
	}
	if de, ok := err.(dataError); ok {
		if encoded, ok := de.ErrorData().(string); ok {
			data, decodeErr := hexutil.Decode(encoded)
			if decodeErr == nil {
				if reason, unpackErr := abi.UnpackRevert(data); unpackErr == nil {
					return reason
				}
			}
		}
	}

	// geth embeds the reason in the error message as well
	if reason, found := strings.CutPrefix(err.Error(), "execution reverted: "); found {
		return reason
	}
	return genericRevertReason
}
