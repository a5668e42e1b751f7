package clockless

import (
	"time"

	"periph.io/x/conn/v3/gpio/gpiostream"
	"periph.io/x/conn/v3/physic"
)

// Decode recovers the bytes carried by a clockless waveform, the way a
// receiving LED does: every high pulse is one bit, and pulses longer than
// threshold are ones. Bits are assembled most significant first.
func Decode(s *gpiostream.BitStream, threshold time.Duration) ([]byte, error) {
	limit := int64(threshold) * int64(s.Freq/physic.KiloHertz) / 1_000_000
	var (
		out   []byte
		cur   byte
		nbits int
		run   int64
	)
	emit := func() {
		cur <<= 1
		if run > limit {
			cur |= 1
		}
		nbits++
		if nbits == 8 {
			out = append(out, cur)
			cur, nbits = 0, 0
		}
		run = 0
	}
	for i := 0; i < len(s.Bits)*8; i++ {
		if sample(s, i) {
			run++
		} else if run > 0 {
			emit()
		}
	}
	if run > 0 {
		emit()
	}
	if nbits != 0 {
		return out, ErrTruncated
	}
	return out, nil
}

func sample(s *gpiostream.BitStream, i int) bool {
	b := s.Bits[i/8]
	if s.LSBF {
		return b&(1<<uint(i%8)) != 0
	}
	return b&(0x80>>uint(i%8)) != 0
}

// DecodeThreshold is the pulse width halfway between a zero and a one bit
// of chipset s.
func DecodeThreshold(s Spec) time.Duration {
	return s.T1 + s.T2/2
}
