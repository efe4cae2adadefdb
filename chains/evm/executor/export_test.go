// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package executor

import "time"

// SetReceiptTiming shortens the receipt poll loop in tests.
func SetReceiptTiming(poll, timeout time.Duration) {
	receiptPollInterval = poll
	receiptTimeout = timeout
}
