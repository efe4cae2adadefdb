// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package executor

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ErrTimeout means no receipt arrived inside the confirmation window. The
// transaction may still land; callers must reconcile by re-querying, never
// resubmit blindly.
var ErrTimeout = errors.New("no receipt within confirmation window, outcome indeterminate")

// TimeoutError wraps ErrTimeout with the hash of the broadcast transaction
// so callers can persist it and reconcile later.
type TimeoutError struct {
	TxHash common.Hash
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: %s", ErrTimeout, e.TxHash)
}

func (e *TimeoutError) Unwrap() error {
	return ErrTimeout
}

// SubmissionRejectedError is returned when the node rejects a transaction
// before inclusion. Safe to retry with fresh fee parameters.
type SubmissionRejectedError struct {
	Err error
}

func (e *SubmissionRejectedError) Error() string {
	return fmt.Sprintf("submission rejected: %s", e.Err)
}

func (e *SubmissionRejectedError) Unwrap() error {
	return e.Err
}

// ExecutionRevertedError is returned when the transaction landed on-chain
// with a failure status. Terminal, never retried.
type ExecutionRevertedError struct {
	Reason  string
	Outcome *RelayOutcome
}

func (e *ExecutionRevertedError) Error() string {
	return fmt.Sprintf("execution reverted: %s", e.Reason)
}
