// Package clockless drives self-clocked LED strips (WS2812, SK6812, APA106 and
// relatives) from a plain GPIO pin.
//
// Such a strip decodes every bit from the width of a high pulse, so the line
// must be toggled with cycle-exact timing. The engine is described as a bit
// program: a short fixed sequence of stores, shifts, branches and delays
// compiled for one instruction set, one clock frequency, one chipset and one
// color order. On TinyGo targets the program is turned into inline assembly
// ahead of time by cmd/clocklessgen and run by package bitbang. On the host
// the same program runs in a cycle-counting Simulator, which is how the timing
// of every architecture is tested.
package clockless

import "errors"

//go:generate go run ./cmd/clocklessgen -in ./bitbang/clockless.gen -o ./bitbang/zz_cortexm_generated.go

// Clockless errors.
var (
	ErrTimingFloor    = errors.New("clockless: timing below the instruction floor")
	ErrEngineMismatch = errors.New("clockless: engine compiled for another chipset or color order")
	ErrUnknownOrder   = errors.New("clockless: unknown color order")
	ErrUnknownArch    = errors.New("clockless: unknown architecture")
	ErrUnknownChipset = errors.New("clockless: unknown chipset")
	ErrNoFrequency    = errors.New("clockless: CPU frequency not set")
	ErrTruncated      = errors.New("clockless: bit stream does not end on a byte boundary")
	ErrNotRGB         = errors.New("clockless: strip needs a 3-channel color order")
)

const (
	badInstr     = "invalid bit program instruction"
	badPin       = "invalid pin number"
	badPixelData = "pixel buffer shorter than numLeds"
)

// noCopy may be embedded into structs which must not be copied
// after the first use.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
