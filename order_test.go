package clockless

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseOrder(t *testing.T) {
	tests := []struct {
		s    string
		want Order
		bpp  int
		err  error
	}{
		{"RGB", OrderRGB, 3, nil},
		{"grb", OrderGRB, 3, nil},
		{"BGR", OrderBGR, 3, nil},
		{"GRBW", OrderGRB | WithWhite, 4, nil},
		{"rgbw", OrderRGB | WithWhite, 4, nil},
		{"RGGB", 0, 0, ErrUnknownOrder},
		{"", 0, 0, ErrUnknownOrder},
		{"W", 0, 0, ErrUnknownOrder},
	}
	for _, tt := range tests {
		got, err := ParseOrder(tt.s)
		if !errors.Is(err, tt.err) {
			t.Errorf("ParseOrder(%q) error %v, want %v", tt.s, err, tt.err)
			continue
		}
		if err != nil {
			continue
		}
		if got != tt.want || got.BytesPerPixel() != tt.bpp {
			t.Errorf("ParseOrder(%q) = %v (%d bytes), want %v", tt.s, got, got.BytesPerPixel(), tt.want)
		}
	}
}

func TestOrder_Offsets(t *testing.T) {
	tests := []struct {
		o    Order
		want []uint8
		name string
	}{
		{OrderRGB, []uint8{0, 1, 2}, "RGB"},
		{OrderRBG, []uint8{0, 2, 1}, "RBG"},
		{OrderGRB, []uint8{1, 0, 2}, "GRB"},
		{OrderGBR, []uint8{1, 2, 0}, "GBR"},
		{OrderBRG, []uint8{2, 0, 1}, "BRG"},
		{OrderBGR, []uint8{2, 1, 0}, "BGR"},
		{OrderGRB | WithWhite, []uint8{1, 0, 2, 3}, "GRBW"},
	}
	for _, tt := range tests {
		if got := tt.o.Offsets(); !bytes.Equal(got, tt.want) {
			t.Errorf("%v.Offsets() = %v, want %v", tt.o, got, tt.want)
		}
		if tt.o.String() != tt.name {
			t.Errorf("String() = %q, want %q", tt.o.String(), tt.name)
		}
	}
	for _, o := range []Order{6, 0x10, 0x0e} {
		if o.Valid() {
			t.Errorf("Order(%#x) is valid", uint8(o))
		}
		if o.String() != "Order(?)" {
			t.Errorf("Order(%#x).String() = %q", uint8(o), o.String())
		}
	}
}

func TestOrderings(t *testing.T) {
	tests := []struct {
		o    Ordering
		want string
	}{
		{RGB{}, "RGB"}, {RBG{}, "RBG"}, {GRB{}, "GRB"}, {GBR{}, "GBR"},
		{BRG{}, "BRG"}, {BGR{}, "BGR"}, {RGBW{}, "RGBW"}, {GRBW{}, "GRBW"},
	}
	for _, tt := range tests {
		if got := tt.o.Order().String(); got != tt.want {
			t.Errorf("%T: got %s", tt.o, got)
		}
	}
}

func TestLookupChipset(t *testing.T) {
	for _, s := range chipsets {
		got, err := LookupChipset(s.Name)
		if err != nil || got != s {
			t.Errorf("LookupChipset(%q) = %v, %v", s.Name, got, err)
		}
	}
	if s, err := LookupChipset("sk6812"); err != nil || s != SpecSK6812 {
		t.Errorf("lookup ignoring case: %v, %v", s, err)
	}
	if _, err := LookupChipset("APA102"); !errors.Is(err, ErrUnknownChipset) {
		t.Errorf("clocked chipset: got %v", err)
	}
}

func TestScale8(t *testing.T) {
	for v := 0; v < 256; v++ {
		if got := Scale8(uint8(v), 255); got != uint8(v) {
			t.Errorf("Scale8(%d, 255) = %d", v, got)
		}
		if got := Scale8(uint8(v), 0); got != 0 {
			t.Errorf("Scale8(%d, 0) = %d", v, got)
		}
		prev := uint8(0)
		for s := 0; s < 256; s++ {
			got := Scale8(uint8(v), uint8(s))
			if got < prev || got > uint8(v) {
				t.Errorf("Scale8(%d, %d) = %d after %d", v, s, got, prev)
			}
			prev = got
		}
	}
	// Monotonic in the value at every scale.
	for s := 0; s < 256; s++ {
		prev := uint8(0)
		for v := 0; v < 256; v++ {
			got := Scale8(uint8(v), uint8(s))
			if got < prev {
				t.Errorf("Scale8(%d, %d) = %d, below Scale8(%d, %d) = %d", v, s, got, v-1, s, prev)
			}
			prev = got
		}
	}
	if got := Scale8(200, 127); got != 100 {
		t.Errorf("Scale8(200, 127) = %d, want 100", got)
	}
}
