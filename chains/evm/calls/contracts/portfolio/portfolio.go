// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package portfolio

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/remitix/relayer/chains/evm/calls/contracts"
	"github.com/remitix/relayer/chains/evm/executor"
)

// Strategy allocation and rebalance math live in the on-chain portfolio
// program.
const portfolioABI = `[
	{"name":"createWithAuthorization","type":"function","stateMutability":"nonpayable","inputs":[{"name":"owner","type":"address"},{"name":"amount","type":"uint256"},{"name":"nonce","type":"uint256"},{"name":"deadline","type":"uint256"},{"name":"v","type":"uint8"},{"name":"r","type":"bytes32"},{"name":"s","type":"bytes32"}],"outputs":[{"name":"shares","type":"uint256"}]},
	{"name":"redeemWithAuthorization","type":"function","stateMutability":"nonpayable","inputs":[{"name":"owner","type":"address"},{"name":"shares","type":"uint256"},{"name":"nonce","type":"uint256"},{"name":"deadline","type":"uint256"},{"name":"v","type":"uint8"},{"name":"r","type":"bytes32"},{"name":"s","type":"bytes32"}],"outputs":[{"name":"amount","type":"uint256"}]},
	{"name":"rebalanceWithAuthorization","type":"function","stateMutability":"nonpayable","inputs":[{"name":"owner","type":"address"},{"name":"nonce","type":"uint256"},{"name":"deadline","type":"uint256"},{"name":"v","type":"uint8"},{"name":"r","type":"bytes32"},{"name":"s","type":"bytes32"}],"outputs":[]},
	{"name":"compositionOf","type":"function","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"strategies","type":"address[]"},{"name":"allocations","type":"uint256[]"}]}
]`

type PortfolioContract struct {
	contracts.Contract
}

func NewPortfolioContract(address common.Address, caller contracts.Caller) (*PortfolioContract, error) {
	c, err := contracts.NewContract(address, portfolioABI, caller)
	if err != nil {
		return nil, err
	}
	return &PortfolioContract{Contract: *c}, nil
}

func (c *PortfolioContract) CreateWithAuthorization(
	owner common.Address, amount *big.Int, nonce uint64, deadline int64, sig []byte,
) (*executor.Call, error) {
	v, r, s, err := contracts.SplitSignature(sig)
	if err != nil {
		return nil, err
	}
	data, err := c.PackMethod("createWithAuthorization", owner, amount, new(big.Int).SetUint64(nonce), big.NewInt(deadline), v, r, s)
	if err != nil {
		return nil, err
	}
	return &executor.Call{To: c.Address, Data: data}, nil
}

func (c *PortfolioContract) RedeemWithAuthorization(
	owner common.Address, shares *big.Int, nonce uint64, deadline int64, sig []byte,
) (*executor.Call, error) {
	v, r, s, err := contracts.SplitSignature(sig)
	if err != nil {
		return nil, err
	}
	data, err := c.PackMethod("redeemWithAuthorization", owner, shares, new(big.Int).SetUint64(nonce), big.NewInt(deadline), v, r, s)
	if err != nil {
		return nil, err
	}
	return &executor.Call{To: c.Address, Data: data}, nil
}

func (c *PortfolioContract) RebalanceWithAuthorization(
	owner common.Address, nonce uint64, deadline int64, sig []byte,
) (*executor.Call, error) {
	v, r, s, err := contracts.SplitSignature(sig)
	if err != nil {
		return nil, err
	}
	data, err := c.PackMethod("rebalanceWithAuthorization", owner, new(big.Int).SetUint64(nonce), big.NewInt(deadline), v, r, s)
	if err != nil {
		return nil, err
	}
	return &executor.Call{To: c.Address, Data: data}, nil
}

// CompositionOf returns the portfolio's strategies and their allocations in
// basis points.
func (c *PortfolioContract) CompositionOf(ctx context.Context, owner common.Address) ([]common.Address, []*big.Int, error) {
	out, err := c.CallMethod(ctx, "compositionOf", owner)
	if err != nil {
		return nil, nil, err
	}
	return out[0].([]common.Address), out[1].([]*big.Int), nil
}
