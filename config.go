package clockless

import (
	"time"

	"periph.io/x/conn/v3/physic"
)

// DefaultConfig returns the configuration of a Cortex-M target at 120MHz
// using the chipset reset time as frame gap.
func DefaultConfig() Config {
	cfg := Config{}
	cfg.SetArch(&CortexM)
	cfg.SetFrequency(120 * physic.MegaHertz)
	return cfg
}

// Config holds the run-time parameters a program is compiled with.
type Config struct {
	// Arch is the instruction set cost table.
	Arch *Arch
	// Freq is the CPU clock frequency.
	Freq physic.Frequency
	// Gap overrides the chipset reset time when non-zero.
	Gap time.Duration
}

// SetArch sets the instruction set.
func (cfg *Config) SetArch(a *Arch) {
	cfg.Arch = a
}

// SetArchName sets the instruction set by name, as listed in Archs.
func (cfg *Config) SetArchName(name string) error {
	a, ok := Archs[name]
	if !ok {
		return ErrUnknownArch
	}
	cfg.Arch = a
	return nil
}

// SetFrequency sets the CPU clock frequency.
func (cfg *Config) SetFrequency(f physic.Frequency) {
	cfg.Freq = f
}

// SetGap sets a minimum frame gap longer or shorter than the chipset reset
// time. Zero restores the chipset default.
func (cfg *Config) SetGap(d time.Duration) {
	cfg.Gap = d
}

// NewSimulated compiles the program for chipset C and order O with cfg and
// returns a controller driving pin through a Simulator.
func NewSimulated[C Chipset, O Ordering](cfg Config, pin FastPin, clock Clock) (*Controller[C, O], *Simulator, error) {
	var chip C
	var ord O
	p, err := Compile(cfg.Arch, chip.Spec(), cfg.Freq, ord.Order())
	if err != nil {
		return nil, nil, err
	}
	sim := NewSimulator(p)
	ctl, err := NewController[C, O](pin, sim, clock)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Gap != 0 {
		ctl.SetGap(cfg.Gap)
	}
	return ctl, sim, nil
}
