// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package stablecoin

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/remitix/relayer/chains/evm/calls/contracts"
	"github.com/remitix/relayer/chains/evm/executor"
)

// stablecoinABI covers the fee-delegated entry points of the platform
// stablecoin: the user signature travels in calldata and the fee payer
// submits.
const stablecoinABI = `[
	{"name":"transferWithAuthorization","type":"function","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"value","type":"uint256"},{"name":"nonce","type":"uint256"},{"name":"deadline","type":"uint256"},{"name":"v","type":"uint8"},{"name":"r","type":"bytes32"},{"name":"s","type":"bytes32"}],"outputs":[]},
	{"name":"claimWithAuthorization","type":"function","stateMutability":"nonpayable","inputs":[{"name":"recipient","type":"address"},{"name":"amount","type":"uint256"},{"name":"nonce","type":"uint256"},{"name":"deadline","type":"uint256"},{"name":"v","type":"uint8"},{"name":"r","type":"bytes32"},{"name":"s","type":"bytes32"}],"outputs":[]},
	{"name":"balanceOf","type":"function","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]}
]`

type StablecoinContract struct {
	contracts.Contract
}

func NewStablecoinContract(address common.Address, caller contracts.Caller) (*StablecoinContract, error) {
	c, err := contracts.NewContract(address, stablecoinABI, caller)
	if err != nil {
		return nil, err
	}
	return &StablecoinContract{Contract: *c}, nil
}

// TransferWithAuthorization prepares the relayed token transfer call.
func (c *StablecoinContract) TransferWithAuthorization(
	from, to common.Address, value *big.Int, nonce uint64, deadline int64, sig []byte,
) (*executor.Call, error) {
	v, r, s, err := contracts.SplitSignature(sig)
	if err != nil {
		return nil, err
	}
	data, err := c.PackMethod(
		"transferWithAuthorization",
		from, to, value, new(big.Int).SetUint64(nonce), big.NewInt(deadline), v, r, s,
	)
	if err != nil {
		return nil, err
	}
	return &executor.Call{To: c.Address, Data: data}, nil
}

// ClaimWithAuthorization prepares the relayed faucet claim call.
func (c *StablecoinContract) ClaimWithAuthorization(
	recipient common.Address, amount *big.Int, nonce uint64, deadline int64, sig []byte,
) (*executor.Call, error) {
	v, r, s, err := contracts.SplitSignature(sig)
	if err != nil {
		return nil, err
	}
	data, err := c.PackMethod(
		"claimWithAuthorization",
		recipient, amount, new(big.Int).SetUint64(nonce), big.NewInt(deadline), v, r, s,
	)
	if err != nil {
		return nil, err
	}
	return &executor.Call{To: c.Address, Data: data}, nil
}

// BalanceOf queries the holder's token balance.
func (c *StablecoinContract) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	out, err := c.CallMethod(ctx, "balanceOf", owner)
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}
