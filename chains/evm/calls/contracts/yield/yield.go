// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package yield

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/remitix/relayer/chains/evm/calls/contracts"
	"github.com/remitix/relayer/chains/evm/executor"
)

// The yield program splits vault positions into principal and yield legs
// and tracks per-epoch distributions; all accounting is on-chain.
const yieldABI = `[
	{"name":"splitWithAuthorization","type":"function","stateMutability":"nonpayable","inputs":[{"name":"owner","type":"address"},{"name":"amount","type":"uint256"},{"name":"nonce","type":"uint256"},{"name":"deadline","type":"uint256"},{"name":"v","type":"uint8"},{"name":"r","type":"bytes32"},{"name":"s","type":"bytes32"}],"outputs":[]},
	{"name":"recombineWithAuthorization","type":"function","stateMutability":"nonpayable","inputs":[{"name":"owner","type":"address"},{"name":"amount","type":"uint256"},{"name":"nonce","type":"uint256"},{"name":"deadline","type":"uint256"},{"name":"v","type":"uint8"},{"name":"r","type":"bytes32"},{"name":"s","type":"bytes32"}],"outputs":[]},
	{"name":"claimYieldWithAuthorization","type":"function","stateMutability":"nonpayable","inputs":[{"name":"owner","type":"address"},{"name":"nonce","type":"uint256"},{"name":"deadline","type":"uint256"},{"name":"v","type":"uint8"},{"name":"r","type":"bytes32"},{"name":"s","type":"bytes32"}],"outputs":[{"name":"claimed","type":"uint256"}]},
	{"name":"distributeYieldWithAuthorization","type":"function","stateMutability":"nonpayable","inputs":[{"name":"owner","type":"address"},{"name":"epoch","type":"uint256"},{"name":"nonce","type":"uint256"},{"name":"deadline","type":"uint256"},{"name":"v","type":"uint8"},{"name":"r","type":"bytes32"},{"name":"s","type":"bytes32"}],"outputs":[]},
	{"name":"distributionOf","type":"function","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"principal","type":"uint256"},{"name":"yield","type":"uint256"}]}
]`

type YieldContract struct {
	contracts.Contract
}

func NewYieldContract(address common.Address, caller contracts.Caller) (*YieldContract, error) {
	c, err := contracts.NewContract(address, yieldABI, caller)
	if err != nil {
		return nil, err
	}
	return &YieldContract{Contract: *c}, nil
}

func (c *YieldContract) SplitWithAuthorization(
	owner common.Address, amount *big.Int, nonce uint64, deadline int64, sig []byte,
) (*executor.Call, error) {
	return c.amountCall("splitWithAuthorization", owner, amount, nonce, deadline, sig)
}

func (c *YieldContract) RecombineWithAuthorization(
	owner common.Address, amount *big.Int, nonce uint64, deadline int64, sig []byte,
) (*executor.Call, error) {
	return c.amountCall("recombineWithAuthorization", owner, amount, nonce, deadline, sig)
}

func (c *YieldContract) ClaimYieldWithAuthorization(
	owner common.Address, nonce uint64, deadline int64, sig []byte,
) (*executor.Call, error) {
	v, r, s, err := contracts.SplitSignature(sig)
	if err != nil {
		return nil, err
	}
	data, err := c.PackMethod("claimYieldWithAuthorization", owner, new(big.Int).SetUint64(nonce), big.NewInt(deadline), v, r, s)
	if err != nil {
		return nil, err
	}
	return &executor.Call{To: c.Address, Data: data}, nil
}

// DistributeYieldWithAuthorization settles the owner's accrued yield for
// one epoch.
func (c *YieldContract) DistributeYieldWithAuthorization(
	owner common.Address, epoch uint64, nonce uint64, deadline int64, sig []byte,
) (*executor.Call, error) {
	v, r, s, err := contracts.SplitSignature(sig)
	if err != nil {
		return nil, err
	}
	data, err := c.PackMethod(
		"distributeYieldWithAuthorization",
		owner, new(big.Int).SetUint64(epoch), new(big.Int).SetUint64(nonce), big.NewInt(deadline), v, r, s,
	)
	if err != nil {
		return nil, err
	}
	return &executor.Call{To: c.Address, Data: data}, nil
}

// DistributionOf returns the owner's current principal and yield legs.
func (c *YieldContract) DistributionOf(ctx context.Context, owner common.Address) (principal *big.Int, yield *big.Int, err error) {
	out, err := c.CallMethod(ctx, "distributionOf", owner)
	if err != nil {
		return nil, nil, err
	}
	return out[0].(*big.Int), out[1].(*big.Int), nil
}

func (c *YieldContract) amountCall(
	method string, owner common.Address, amount *big.Int, nonce uint64, deadline int64, sig []byte,
) (*executor.Call, error) {
	v, r, s, err := contracts.SplitSignature(sig)
	if err != nil {
		return nil, err
	}
	data, err := c.PackMethod(method, owner, amount, new(big.Int).SetUint64(nonce), big.NewInt(deadline), v, r, s)
	if err != nil {
		return nil, err
	}
	return &executor.Call{To: c.Address, Data: data}, nil
}
