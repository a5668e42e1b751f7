//go:build tinygo && cortexm

package bitbang

import "github.com/tinygo-org/clockless"

var arch = &clockless.CortexM

const maxLeds = 1<<32 - 1
