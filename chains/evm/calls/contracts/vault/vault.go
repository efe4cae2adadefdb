// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package vault

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/remitix/relayer/chains/evm/calls/contracts"
	"github.com/remitix/relayer/chains/evm/executor"
)

// Position/share math lives in the on-chain vault program; this binding
// only encodes calls and decodes raw return values.
const vaultABI = `[
	{"name":"depositWithAuthorization","type":"function","stateMutability":"nonpayable","inputs":[{"name":"owner","type":"address"},{"name":"amount","type":"uint256"},{"name":"nonce","type":"uint256"},{"name":"deadline","type":"uint256"},{"name":"v","type":"uint8"},{"name":"r","type":"bytes32"},{"name":"s","type":"bytes32"}],"outputs":[{"name":"shares","type":"uint256"}]},
	{"name":"withdrawWithAuthorization","type":"function","stateMutability":"nonpayable","inputs":[{"name":"owner","type":"address"},{"name":"shares","type":"uint256"},{"name":"nonce","type":"uint256"},{"name":"deadline","type":"uint256"},{"name":"v","type":"uint8"},{"name":"r","type":"bytes32"},{"name":"s","type":"bytes32"}],"outputs":[{"name":"amount","type":"uint256"}]},
	{"name":"balanceOf","type":"function","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"currentAPY","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]}
]`

type VaultContract struct {
	contracts.Contract
}

func NewVaultContract(address common.Address, caller contracts.Caller) (*VaultContract, error) {
	c, err := contracts.NewContract(address, vaultABI, caller)
	if err != nil {
		return nil, err
	}
	return &VaultContract{Contract: *c}, nil
}

func (c *VaultContract) DepositWithAuthorization(
	owner common.Address, amount *big.Int, nonce uint64, deadline int64, sig []byte,
) (*executor.Call, error) {
	return c.authorizedCall("depositWithAuthorization", owner, amount, nonce, deadline, sig)
}

func (c *VaultContract) WithdrawWithAuthorization(
	owner common.Address, shares *big.Int, nonce uint64, deadline int64, sig []byte,
) (*executor.Call, error) {
	return c.authorizedCall("withdrawWithAuthorization", owner, shares, nonce, deadline, sig)
}

// BalanceOf returns the owner's vault share balance.
func (c *VaultContract) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	out, err := c.CallMethod(ctx, "balanceOf", owner)
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

// CurrentAPY returns the vault's advertised APY in basis points.
func (c *VaultContract) CurrentAPY(ctx context.Context) (*big.Int, error) {
	out, err := c.CallMethod(ctx, "currentAPY")
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

func (c *VaultContract) authorizedCall(
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
