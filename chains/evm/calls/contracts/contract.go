// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

var ErrMalformedSignature = errors.New("signature is not 65 bytes")

// Caller is the read-only ledger surface contract bindings use.
type Caller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Contract pairs a parsed ABI with a deployed address. Encoding is driven
// entirely by the ABI table, never by hand-built selectors.
type Contract struct {
	ABI     abi.ABI
	Address common.Address
	caller  Caller
}

func NewContract(address common.Address, rawABI string, caller Caller) (*Contract, error) {
	parsed, err := abi.JSON(strings.NewReader(rawABI))
	if err != nil {
		return nil, errors.Wrap(err, "invalid contract ABI")
	}
	return &Contract{
		ABI:     parsed,
		Address: address,
		caller:  caller,
	}, nil
}

// PackMethod encodes a method invocation against the ABI table.
func (c *Contract) PackMethod(method string, args ...interface{}) ([]byte, error) {
	data, err := c.ABI.Pack(method, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed packing %s", method)
	}
	return data, nil
}

// CallMethod performs a read-only call and unpacks the raw return values.
func (c *Contract) CallMethod(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := c.PackMethod(method, args...)
	if err != nil {
		return nil, err
	}

	out, err := c.caller.CallContract(ctx, ethereum.CallMsg{To: &c.Address, Data: data}, nil)
	if err != nil {
		return nil, err
	}
	return c.ABI.Unpack(method, out)
}

// SplitSignature splits a 65 byte (r,s,v) signature into the contract
// calldata representation, normalizing v to 27/28.
func SplitSignature(sig []byte) (v uint8, r [32]byte, s [32]byte, err error) {
	if len(sig) != 65 {
		return 0, r, s, ErrMalformedSignature
	}
	copy(r[:], sig[:32])
	copy(s[:], sig[32:64])
	v = sig[64]
	if v < 27 {
		v += 27
	}
	return v, r, s, nil
}
