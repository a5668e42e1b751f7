package clockless

import (
	"strings"
	"time"
)

// Chipset is implemented by zero-size types naming an LED controller. It is
// the first type parameter of Controller.
type Chipset interface {
	Spec() Spec
}

func ns(n int) time.Duration { return time.Duration(n) * time.Nanosecond }
func us(n int) time.Duration { return time.Duration(n) * time.Microsecond }

// Chipset timings. T1/T2/T3 follow the pulse model of Spec.
var (
	SpecWS2812    = Spec{Name: "WS2812", T1: ns(250), T2: ns(625), T3: ns(375), Reset: us(280)}
	SpecWS2811    = Spec{Name: "WS2811", T1: ns(320), T2: ns(320), T3: ns(640), Reset: us(50)}
	SpecWS2811400 = Spec{Name: "WS2811_400", T1: ns(800), T2: ns(800), T3: ns(900), Reset: us(50)}
	SpecWS2813    = Spec{Name: "WS2813", T1: ns(320), T2: ns(320), T3: ns(640), Reset: us(300)}
	SpecSK6812    = Spec{Name: "SK6812", T1: ns(300), T2: ns(600), T3: ns(300), Reset: us(80)}
	SpecAPA106    = Spec{Name: "APA106", T1: ns(350), T2: ns(910), T3: ns(350), Reset: us(50)}
	SpecPL9823    = Spec{Name: "PL9823", T1: ns(350), T2: ns(1010), T3: ns(350), Reset: us(50)}
	SpecTM1809    = Spec{Name: "TM1809", T1: ns(350), T2: ns(350), T3: ns(450), Reset: us(50)}
	SpecTM1803    = Spec{Name: "TM1803", T1: ns(700), T2: ns(1100), T3: ns(700), Reset: us(50)}
	SpecUCS1903   = Spec{Name: "UCS1903", T1: ns(500), T2: ns(1500), T3: ns(500), Reset: us(50)}
	SpecGE8822    = Spec{Name: "GE8822", T1: ns(350), T2: ns(660), T3: ns(350), Reset: us(50)}
	SpecLPD1886   = Spec{Name: "LPD1886", T1: ns(200), T2: ns(400), T3: ns(200), Reset: us(50)}
	SpecSM16703   = Spec{Name: "SM16703", T1: ns(300), T2: ns(600), T3: ns(300), Reset: us(50)}
)

type (
	WS2812    struct{}
	WS2811    struct{}
	WS2811400 struct{}
	WS2813    struct{}
	SK6812    struct{}
	APA106    struct{}
	PL9823    struct{}
	TM1809    struct{}
	TM1803    struct{}
	UCS1903   struct{}
	GE8822    struct{}
	LPD1886   struct{}
	SM16703   struct{}
)

func (WS2812) Spec() Spec    { return SpecWS2812 }
func (WS2811) Spec() Spec    { return SpecWS2811 }
func (WS2811400) Spec() Spec { return SpecWS2811400 }
func (WS2813) Spec() Spec    { return SpecWS2813 }
func (SK6812) Spec() Spec    { return SpecSK6812 }
func (APA106) Spec() Spec    { return SpecAPA106 }
func (PL9823) Spec() Spec    { return SpecPL9823 }
func (TM1809) Spec() Spec    { return SpecTM1809 }
func (TM1803) Spec() Spec    { return SpecTM1803 }
func (UCS1903) Spec() Spec   { return SpecUCS1903 }
func (GE8822) Spec() Spec    { return SpecGE8822 }
func (LPD1886) Spec() Spec   { return SpecLPD1886 }
func (SM16703) Spec() Spec   { return SpecSM16703 }

var chipsets = []Spec{
	SpecWS2812, SpecWS2811, SpecWS2811400, SpecWS2813, SpecSK6812, SpecAPA106,
	SpecPL9823, SpecTM1809, SpecTM1803, SpecUCS1903, SpecGE8822, SpecLPD1886,
	SpecSM16703,
}

// LookupChipset finds a chipset timing by name, ignoring case.
func LookupChipset(name string) (Spec, error) {
	for _, s := range chipsets {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return Spec{}, ErrUnknownChipset
}
