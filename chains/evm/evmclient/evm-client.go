// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package evmclient

import (
	"context"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
)

// EVMClient is the ledger RPC connection. It embeds ethclient.Client, which
// already exposes the read/call/receipt/send primitives the engine needs.
type EVMClient struct {
	*ethclient.Client
}

func NewEVMClient(ctx context.Context, endpoint string) (*EVMClient, error) {
	client, err := ethclient.DialContext(ctx, endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "ethclient.Dial fail")
	}
	return &EVMClient{Client: client}, nil
}
