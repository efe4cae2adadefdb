// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package jobs

import (
	"context"
	"math/big"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/remitix/relayer/chains/evm/executor"
)

const DefaultBalanceCheckInterval = 5 * time.Minute

type FeePayer interface {
	HealthStatus(ctx context.Context) (*executor.Status, error)
}

type BalanceTracker interface {
	TrackFeePayerBalance(wei *big.Int)
}

// StartFeePayerBalanceJob periodically checks the fee payer's native balance
// and feeds it to telemetry. A depleted fee payer stalls every relayed
// operation, so the low balance condition is logged loudly.
func StartFeePayerBalanceJob(ctx context.Context, interval time.Duration, feePayer FeePayer, tracker BalanceTracker) {
	if interval == 0 {
		interval = DefaultBalanceCheckInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			status, err := feePayer.HealthStatus(ctx)
			if err != nil {
				log.Err(err).Msg("fee payer balance check failed")
				continue
			}

			tracker.TrackFeePayerBalance(status.Balance)
			if status.LowBalance {
				log.Warn().
					Str("address", status.Address.Hex()).
					Str("balance", status.Balance.String()).
					Msg("Fee payer balance below threshold")
			}
		}
	}
}
