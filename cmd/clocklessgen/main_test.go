package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"periph.io/x/conn/v3/physic"

	"github.com/tinygo-org/clockless"
)

func TestParseLines(t *testing.T) {
	const input = `
# comment
-arch cortexm -chipset WS2812 -order GRB -freq "64MHz, 120MHz"

  -chipset 'SK6812,ws2811' -order grbw,RGB -freq 48MHz
`
	jobs, err := parseLines(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 2 {
		t.Fatalf("%d jobs, want 2", len(jobs))
	}
	j := jobs[0]
	if j.arch != &clockless.CortexM || len(j.chipsets) != 1 || j.chipsets[0] != clockless.SpecWS2812 {
		t.Errorf("job 0 = %+v", j)
	}
	if len(j.freqs) != 2 || j.freqs[0] != 64*physic.MegaHertz || j.freqs[1] != 120*physic.MegaHertz {
		t.Errorf("job 0 freqs = %v", j.freqs)
	}
	j = jobs[1]
	if len(j.chipsets) != 2 || j.chipsets[1] != clockless.SpecWS2811 {
		t.Errorf("job 1 chipsets = %v", j.chipsets)
	}
	if len(j.orders) != 2 || j.orders[0] != clockless.OrderGRB|clockless.WithWhite || j.orders[1] != clockless.OrderRGB {
		t.Errorf("job 1 orders = %v", j.orders)
	}
}

func TestParseLines_errors(t *testing.T) {
	tests := []struct {
		line string
		err  error
	}{
		{"-arch z80 -freq 8MHz", clockless.ErrUnknownArch},
		{"-chipset APA102 -freq 8MHz", clockless.ErrUnknownChipset},
		{"-order XYZ -freq 8MHz", clockless.ErrUnknownOrder},
		{"-chipset WS2812", clockless.ErrNoFrequency},
		{"-freq 8MHz extra", nil},
		{"-freq fast", nil},
		{`-freq "64MHz`, nil},
	}
	for _, tt := range tests {
		_, err := parseLines(strings.NewReader(tt.line))
		if err == nil {
			t.Errorf("%q: no error", tt.line)
			continue
		}
		if tt.err != nil && !errors.Is(err, tt.err) {
			t.Errorf("%q: got %v, want %v", tt.line, err, tt.err)
		}
		if !strings.HasPrefix(err.Error(), "line 1: ") {
			t.Errorf("%q: error lacks the line number: %v", tt.line, err)
		}
	}
}

func TestCompile(t *testing.T) {
	jobs, err := parseLines(strings.NewReader(`-chipset WS2812,SK6812 -order GRB -freq 64MHz,120MHz`))
	if err != nil {
		t.Fatal(err)
	}
	arch, engines, err := compile(jobs)
	if err != nil {
		t.Fatal(err)
	}
	if arch != &clockless.CortexM || len(engines) != 4 {
		t.Fatalf("got %s with %d engines", arch.Name, len(engines))
	}
	want := []struct{ c, g string }{
		{"clockless_ws2812grb64mhz", "sendWS2812GRB64MHz"},
		{"clockless_ws2812grb120mhz", "sendWS2812GRB120MHz"},
		{"clockless_sk6812grb64mhz", "sendSK6812GRB64MHz"},
		{"clockless_sk6812grb120mhz", "sendSK6812GRB120MHz"},
	}
	for i, e := range engines {
		if e.cName != want[i].c || e.goFn != want[i].g {
			t.Errorf("engine %d named %s/%s, want %s/%s", i, e.cName, e.goFn, want[i].c, want[i].g)
		}
	}
}

func TestCompile_errors(t *testing.T) {
	jobs, err := parseLines(strings.NewReader("-arch avr -freq 8MHz\n-arch cortexm -freq 64MHz\n"))
	if err != nil {
		t.Fatal(err)
	}
	// WS2812 cannot be timed on AVR at 8MHz.
	if _, _, err := compile(jobs[:1]); !errors.Is(err, clockless.ErrTimingFloor) {
		t.Errorf("AVR at 8MHz: got %v", err)
	}
	jobs[0].chipsets = []clockless.Spec{clockless.SpecWS2811400}
	if _, _, err := compile(jobs); err != errMixedArch {
		t.Errorf("mixed arch: got %v", err)
	}
	if _, _, err := compile(nil); err == nil {
		t.Error("no jobs: no error")
	}
}

func TestGenerate(t *testing.T) {
	for _, tt := range []struct {
		line string
		want []string
	}{
		{"-arch cortexm -chipset WS2812 -order GRBW -freq 72MHz", []string{
			"// Code generated by clocklessgen. DO NOT EDIT.\n\n//go:build tinygo && cortexm && !atsamd21 && !rp2040 && !nrf51\n",
			"static inline void clockless_ws2812grbw72mhz(",
			`engineFunc{chipset: "WS2812", order: clockless.OrderGRB | clockless.WithWhite, freq: 72000000, send: sendWS2812GRBW72MHz},`,
			"func sendWS2812GRBW72MHz(data *byte, count, stride uint32, scale uint8, p *port) {",
			"C.uint32_t(p.hi)",
		}},
		{"-arch avr -chipset WS2811_400 -order RGB -freq 8MHz,16MHz", []string{
			"//go:build tinygo && avr\n",
			"static inline void clockless_ws2811400rgb8mhz(",
			`engineFunc{chipset: "WS2811_400", order: clockless.OrderRGB, freq: 16000000, send: sendWS2811400RGB16MHz},`,
			"C.uint8_t(p.hi)",
		}},
	} {
		jobs, err := parseLines(strings.NewReader(tt.line))
		if err != nil {
			t.Fatal(err)
		}
		arch, engines, err := compile(jobs)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		if err := generate(&buf, arch, engines); err != nil {
			t.Fatal(err)
		}
		for _, w := range tt.want {
			if !strings.Contains(buf.String(), w) {
				t.Errorf("%s: output lacks %q", tt.line, w)
			}
		}
	}
}

func TestRender(t *testing.T) {
	a := clockless.CortexM
	a.Name = "m68k"
	p, err := clockless.Compile(&a, clockless.SpecWS2812, 64*physic.MegaHertz, clockless.OrderGRB)
	if err != nil {
		t.Fatal(err)
	}
	engines := []engine{{prog: p, cName: "clockless_ws2812grb64mhz", goFn: "sendWS2812GRB64MHz"}}

	path := filepath.Join(t.TempDir(), "zz_generated.go")
	if err := os.WriteFile(path, []byte("package bitbang\n"), 0o666); err != nil {
		t.Fatal(err)
	}
	if _, err := render(&a, engines, false); !errors.Is(err, clockless.ErrUnknownArch) {
		t.Errorf("unknown arch: got %v", err)
	}
	if b, _ := os.ReadFile(path); string(b) != "package bitbang\n" {
		t.Errorf("failed render touched the output: %q", b)
	}

	b, err := render(&a, engines, true)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(b, []byte("; WS2812 GRB at 64MHz on m68k")) {
		t.Errorf("listing lacks the program header:\n%.200s", b)
	}
	if err := writeOutput(path, b); err != nil {
		t.Fatal(err)
	}
	if got, _ := os.ReadFile(path); !bytes.Equal(got, b) {
		t.Error("output file differs from the rendered listing")
	}
}

func TestFreqList(t *testing.T) {
	var l freqList
	if err := l.Set("1MHz,500kHz"); err != nil {
		t.Fatal(err)
	}
	if l.String() != "1MHz,500kHz" {
		t.Errorf("String() = %q", l.String())
	}
	if freqName(l[1]) != "500kHz" || freqName(l[0]) != "1MHz" {
		t.Errorf("freqName = %s, %s", freqName(l[0]), freqName(l[1]))
	}
}
