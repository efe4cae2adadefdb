// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/params"
	"go.opentelemetry.io/otel/attribute"
	api "go.opentelemetry.io/otel/metric"
)

type Telemetry struct {
	Opts api.MeasurementOption

	TransfersCompleted api.Int64Counter
	TransfersFailed    api.Int64Counter
	ExecutionLatency   api.Int64Histogram
	FeePayerBalance    api.Float64ObservableGauge

	feePayerBalance *float64
}

// NewTelemetry creates the relayer instrument set
func NewTelemetry(meter api.Meter, env, relayerID string) (*Telemetry, error) {
	opts := api.WithAttributes(
		attribute.String("env", env),
		attribute.String("relayerid", relayerID),
	)

	transfersCompleted, err := meter.Int64Counter(
		"relayer.TransfersCompleted",
		api.WithDescription("Number of transfers that reached COMPLETED"),
	)
	if err != nil {
		return nil, err
	}
	transfersFailed, err := meter.Int64Counter(
		"relayer.TransfersFailed",
		api.WithDescription("Number of transfers that reached FAILED"),
	)
	if err != nil {
		return nil, err
	}
	executionLatency, err := meter.Int64Histogram(
		"relayer.ExecutionLatency",
		api.WithDescription("Time between transaction submission and receipt in milliseconds"),
	)
	if err != nil {
		return nil, err
	}

	balance := new(float64)
	feePayerBalance, err := meter.Float64ObservableGauge(
		"relayer.FeePayerBalance",
		api.WithFloat64Callback(func(ctx context.Context, result api.Float64Observer) error {
			result.Observe(*balance, opts)
			return nil
		}),
		api.WithDescription("Fee payer balance in native units"),
	)
	if err != nil {
		return nil, err
	}

	return &Telemetry{
		Opts:               opts,
		TransfersCompleted: transfersCompleted,
		TransfersFailed:    transfersFailed,
		ExecutionLatency:   executionLatency,
		FeePayerBalance:    feePayerBalance,
		feePayerBalance:    balance,
	}, nil
}

func (t *Telemetry) TrackTransferCompleted(ctx context.Context) {
	t.TransfersCompleted.Add(ctx, 1, t.Opts)
}

func (t *Telemetry) TrackTransferFailed(ctx context.Context) {
	t.TransfersFailed.Add(ctx, 1, t.Opts)
}

func (t *Telemetry) TrackExecutionLatency(ctx context.Context, start time.Time) {
	t.ExecutionLatency.Record(ctx, time.Since(start).Milliseconds(), t.Opts)
}

// TrackFeePayerBalance stores the balance converted from wei for the gauge
// callback to observe.
func (t *Telemetry) TrackFeePayerBalance(wei *big.Int) {
	balance, _ := new(big.Float).Quo(
		new(big.Float).SetInt(wei),
		new(big.Float).SetInt(big.NewInt(params.Ether)),
	).Float64()
	*t.feePayerBalance = balance
}
