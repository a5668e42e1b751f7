package clockless

// Register is a port register a bit program stores to.
type Register interface {
	Get() uint32
	Set(uint32)
}

// FastPin is an output pin resolved to its port register and bit mask. The
// port and mask are fixed at construction; PortMaskSet and PortMaskClear
// return the register and the word that drives only this pin high or low.
//
// On ports with separate set and clear registers the words are just the
// mask. On ports with a single output register the words are the current
// port value with the pin bit set or cleared, which is why they are latched
// once per frame.
type FastPin interface {
	Configure()
	Mask() uint32
	PortMaskSet() (Register, uint32)
	PortMaskClear() (Register, uint32)
}

// Words are the two stores of a frame, latched before interrupts are masked.
type Words struct {
	SetReg   Register
	ClearReg Register
	High     uint32
	Low      uint32
}

// Latch reads the port of p once and returns the words that raise and lower
// the line without touching other pins of the same port.
func Latch(p FastPin) Words {
	setReg, hi := p.PortMaskSet()
	clearReg, lo := p.PortMaskClear()
	return Words{SetReg: setReg, ClearReg: clearReg, High: hi, Low: lo}
}

// MemPort is an in-memory output port with a single data register, shared by
// up to 32 pins.
type MemPort struct {
	out    uint32
	writes int
}

// Get returns the port output value.
func (p *MemPort) Get() uint32 { return p.out }

// Set stores v to the port.
func (p *MemPort) Set(v uint32) {
	p.out = v
	p.writes++
}

// Writes is the number of stores the port has seen.
func (p *MemPort) Writes() int { return p.writes }

// Pin returns pin n of the port. It panics if n is not in [0, 32).
func (p *MemPort) Pin(n int) *MemPin {
	if n < 0 || n >= 32 {
		panic(badPin)
	}
	return &MemPin{port: p, mask: 1 << uint(n)}
}

// MemPin is a FastPin on a MemPort.
type MemPin struct {
	port *MemPort
	mask uint32
}

func (p *MemPin) Configure()   {}
func (p *MemPin) Mask() uint32 { return p.mask }

// Get reports whether the pin is high.
func (p *MemPin) Get() bool { return p.port.out&p.mask != 0 }

func (p *MemPin) PortMaskSet() (Register, uint32) {
	return p.port, p.port.out | p.mask
}

func (p *MemPin) PortMaskClear() (Register, uint32) {
	return p.port, p.port.out &^ p.mask
}

// SetClearPort is an in-memory port with write-one-to-set and
// write-one-to-clear registers, the layout of SAMD, nRF and RP2040 GPIO.
type SetClearPort struct {
	out uint32
}

// Get returns the port output value.
func (p *SetClearPort) Get() uint32 { return p.out }

// Pin returns pin n of the port. It panics if n is not in [0, 32).
func (p *SetClearPort) Pin(n int) *SetClearPin {
	if n < 0 || n >= 32 {
		panic(badPin)
	}
	return &SetClearPin{port: p, mask: 1 << uint(n)}
}

type setReg struct{ p *SetClearPort }

func (r setReg) Get() uint32  { return r.p.out }
func (r setReg) Set(v uint32) { r.p.out |= v }

type clearReg struct{ p *SetClearPort }

func (r clearReg) Get() uint32  { return r.p.out }
func (r clearReg) Set(v uint32) { r.p.out &^= v }

// SetClearPin is a FastPin on a SetClearPort.
type SetClearPin struct {
	port *SetClearPort
	mask uint32
}

func (p *SetClearPin) Configure()   {}
func (p *SetClearPin) Mask() uint32 { return p.mask }

// Get reports whether the pin is high.
func (p *SetClearPin) Get() bool { return p.port.out&p.mask != 0 }

func (p *SetClearPin) PortMaskSet() (Register, uint32)   { return setReg{p.port}, p.mask }
func (p *SetClearPin) PortMaskClear() (Register, uint32) { return clearReg{p.port}, p.mask }
