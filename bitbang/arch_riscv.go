//go:build tinygo && tinygo.riscv32

package bitbang

import "github.com/tinygo-org/clockless"

var arch = &clockless.RISCV

const maxLeds = 1<<32 - 1
