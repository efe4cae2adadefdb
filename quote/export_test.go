// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package quote

import "time"

// SetNow overrides the engine clock in tests.
func (e *Engine) SetNow(now func() time.Time) {
	e.now = now
}
