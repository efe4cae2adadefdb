// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package quote

import "fmt"

// platformFeeRate is the flat fee applied to the source amount.
const platformFeeRate = 0.005

// rates is the fixed rate table keyed by currency pair. Rates are not
// fetched externally; changing them is a deploy.
var rates = map[string]float64{
	"USD:PHP":  56.0,
	"PHP:USD":  1.0 / 56.0,
	"USD:USDC": 1.0,
	"USDC:USD": 1.0,
	"USDC:PHP": 56.0,
	"PHP:USDC": 1.0 / 56.0,
}

type bounds struct {
	Min float64
	Max float64
}

// amountBounds caps the source amount per currency.
var amountBounds = map[string]bounds{
	"USD":  {Min: 1, Max: 10000},
	"USDC": {Min: 1, Max: 10000},
	"PHP":  {Min: 50, Max: 500000},
}

func pairKey(from, to string) string {
	return fmt.Sprintf("%s:%s", from, to)
}
