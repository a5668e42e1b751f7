package clockless

import "strings"

// Order is the order in which a strip expects the color channels of a pixel
// on the wire. Pixel buffers are always stored R, G, B (and W).
type Order uint8

const (
	OrderRGB Order = iota
	OrderRBG
	OrderGRB
	OrderGBR
	OrderBRG
	OrderBGR

	// WithWhite marks a 4-channel strip. The white byte follows the three
	// color bytes in both the buffer and on the wire.
	WithWhite Order = 0x8

	orderPermMsk = 0x7
)

var orderNames = [...]string{"RGB", "RBG", "GRB", "GBR", "BRG", "BGR"}

var orderOffsets = [...][3]uint8{
	OrderRGB: {0, 1, 2},
	OrderRBG: {0, 2, 1},
	OrderGRB: {1, 0, 2},
	OrderGBR: {1, 2, 0},
	OrderBRG: {2, 0, 1},
	OrderBGR: {2, 1, 0},
}

// Valid reports whether o names a known channel permutation.
func (o Order) Valid() bool {
	return o&^(orderPermMsk|WithWhite) == 0 && int(o&orderPermMsk) < len(orderNames)
}

// White reports whether o has a white channel.
func (o Order) White() bool { return o&WithWhite != 0 }

// BytesPerPixel is 3, or 4 for orders with a white channel.
func (o Order) BytesPerPixel() int {
	if o.White() {
		return 4
	}
	return 3
}

// Offsets returns, for each byte sent on the wire, its offset in a pixel of
// the buffer.
func (o Order) Offsets() []uint8 {
	if !o.Valid() {
		panic("invalid color order")
	}
	off := orderOffsets[o&orderPermMsk]
	if o.White() {
		return []uint8{off[0], off[1], off[2], 3}
	}
	return off[:]
}

func (o Order) String() string {
	if !o.Valid() {
		return "Order(?)"
	}
	if o.White() {
		return orderNames[o&orderPermMsk] + "W"
	}
	return orderNames[o&orderPermMsk]
}

// ParseOrder parses a channel order such as "GRB" or "grbw".
func ParseOrder(s string) (Order, error) {
	s = strings.ToUpper(s)
	var white Order
	if len(s) == 4 && s[3] == 'W' {
		white = WithWhite
		s = s[:3]
	}
	for i, name := range orderNames {
		if name == s {
			return Order(i) | white, nil
		}
	}
	return 0, ErrUnknownOrder
}

// Ordering is implemented by zero-size types naming a color order. It is the
// second type parameter of Controller.
type Ordering interface {
	Order() Order
}

type (
	RGB  struct{}
	RBG  struct{}
	GRB  struct{}
	GBR  struct{}
	BRG  struct{}
	BGR  struct{}
	RGBW struct{}
	GRBW struct{}
)

func (RGB) Order() Order  { return OrderRGB }
func (RBG) Order() Order  { return OrderRBG }
func (GRB) Order() Order  { return OrderGRB }
func (GBR) Order() Order  { return OrderGBR }
func (BRG) Order() Order  { return OrderBRG }
func (BGR) Order() Order  { return OrderBGR }
func (RGBW) Order() Order { return OrderRGB | WithWhite }
func (GRBW) Order() Order { return OrderGRB | WithWhite }
