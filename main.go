// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/remitix/relayer/cli"
)

func main() {
	cli.Execute()
}
