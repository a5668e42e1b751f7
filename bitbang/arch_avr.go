//go:build tinygo && avr

package bitbang

import "github.com/tinygo-org/clockless"

var arch = &clockless.AVR

// The generated code keeps the pixel counter one below the count of pixels
// after the first and stops when its sign bit sets.
const maxLeds = 0x8000
