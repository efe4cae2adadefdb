// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package transfer

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusCompleted  Status = "COMPLETED"
	StatusFailed     Status = "FAILED"
	StatusCancelled  Status = "CANCELLED"
)

// Terminal reports whether the status permits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// Transfer is one user-facing fund movement bound to a consumed quote. Rate
// and amounts are copied from the quote at bind time and never recomputed.
type Transfer struct {
	ID           string         `json:"id"`
	QuoteID      string         `json:"quoteId"`
	Sender       common.Address `json:"sender"`
	Recipient    common.Address `json:"recipient"`
	FromCurrency string         `json:"fromCurrency"`
	ToCurrency   string         `json:"toCurrency"`
	FromAmount   float64        `json:"fromAmount"`
	ToAmount     float64        `json:"toAmount"`
	Rate         float64        `json:"rate"`
	Fee          float64        `json:"fee"`
	Status       Status         `json:"status"`
	TxHash       string         `json:"txHash,omitempty"`
	ErrorCode    string         `json:"errorCode,omitempty"`
	Error        string         `json:"error,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	CompletedAt  *time.Time     `json:"completedAt,omitempty"`
}
