// Command clocklessgen writes the cycle-exact engines of package bitbang.
//
// For every chipset, color order and CPU frequency it compiles a bit program,
// checks the timing floors and emits the program as a C function with inline
// assembly, plus the Go wrapper that registers it. A configuration the CPU
// cannot time correctly is an error, so go generate fails instead of
// producing a binary that flickers.
//
//	clocklessgen -arch cortexm -chipset WS2812 -order GRB -freq 64MHz,120MHz
//	clocklessgen -in clockless.gen -o zz_cortexm_generated.go
//
// An engine list file holds one set of flags per line; blank lines and lines starting
// with # are ignored. Lines are split like a shell would.
package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"io"
	"os"
	"strings"

	"github.com/google/shlex"
	"periph.io/x/conn/v3/physic"

	"github.com/tinygo-org/clockless"
)

var errMixedArch = errors.New("clocklessgen: all engines of one file must share an arch")

// job is one line of configuration: the cross product of its chipsets,
// orders and frequencies.
type job struct {
	arch     *clockless.Arch
	chipsets []clockless.Spec
	orders   []clockless.Order
	freqs    []physic.Frequency
}

// freqList is a flag.Value of comma separated frequencies.
type freqList []physic.Frequency

func (l *freqList) String() string {
	var s []string
	for _, f := range *l {
		s = append(s, f.String())
	}
	return strings.Join(s, ",")
}

func (l *freqList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		var f physic.Frequency
		if err := f.Set(strings.TrimSpace(part)); err != nil {
			return err
		}
		*l = append(*l, f)
	}
	return nil
}

type jobFlags struct {
	fs       *flag.FlagSet
	arch     string
	chipsets string
	orders   string
	freqs    freqList
}

func newJobFlags(name string, handling flag.ErrorHandling) *jobFlags {
	jf := &jobFlags{fs: flag.NewFlagSet(name, handling)}
	jf.fs.StringVar(&jf.arch, "arch", "cortexm", "instruction set: cortexm, riscv or avr")
	jf.fs.StringVar(&jf.chipsets, "chipset", "WS2812", "comma separated chipset names")
	jf.fs.StringVar(&jf.orders, "order", "GRB", "comma separated color orders")
	jf.fs.Var(&jf.freqs, "freq", "comma separated CPU frequencies, e.g. 64MHz,120MHz")
	return jf
}

func (jf *jobFlags) job() (job, error) {
	var j job
	a, ok := clockless.Archs[jf.arch]
	if !ok {
		return j, fmt.Errorf("%w: %q", clockless.ErrUnknownArch, jf.arch)
	}
	j.arch = a
	for _, name := range strings.Split(jf.chipsets, ",") {
		s, err := clockless.LookupChipset(strings.TrimSpace(name))
		if err != nil {
			return j, fmt.Errorf("%w: %q", err, name)
		}
		j.chipsets = append(j.chipsets, s)
	}
	for _, name := range strings.Split(jf.orders, ",") {
		o, err := clockless.ParseOrder(strings.TrimSpace(name))
		if err != nil {
			return j, fmt.Errorf("%w: %q", err, name)
		}
		j.orders = append(j.orders, o)
	}
	if len(jf.freqs) == 0 {
		return j, clockless.ErrNoFrequency
	}
	j.freqs = jf.freqs
	return j, nil
}

// parseLines reads an engine list, one job per line.
func parseLines(r io.Reader) ([]job, error) {
	var jobs []job
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args, err := shlex.Split(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		jf := newJobFlags(fmt.Sprintf("line %d", n), flag.ContinueOnError)
		jf.fs.SetOutput(io.Discard)
		if err := jf.fs.Parse(args); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		if jf.fs.NArg() != 0 {
			return nil, fmt.Errorf("line %d: unexpected argument %q", n, jf.fs.Arg(0))
		}
		j, err := jf.job()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		jobs = append(jobs, j)
	}
	return jobs, sc.Err()
}

// engine is one generated function.
type engine struct {
	prog  *clockless.Program
	cName string
	goFn  string
}

func freqName(f physic.Frequency) string {
	if f%physic.MegaHertz == 0 {
		return fmt.Sprintf("%dMHz", f/physic.MegaHertz)
	}
	return fmt.Sprintf("%dkHz", f/physic.KiloHertz)
}

func identName(s string) string {
	return strings.NewReplacer("_", "", "-", "").Replace(s)
}

// compile expands jobs into programs. All jobs must target one arch.
func compile(jobs []job) (*clockless.Arch, []engine, error) {
	var arch *clockless.Arch
	var out []engine
	for _, j := range jobs {
		if arch != nil && arch != j.arch {
			return nil, nil, errMixedArch
		}
		arch = j.arch
		for _, s := range j.chipsets {
			for _, o := range j.orders {
				for _, f := range j.freqs {
					p, err := clockless.Compile(j.arch, s, f, o)
					if err != nil {
						return nil, nil, err
					}
					suffix := identName(s.Name) + o.String() + freqName(f)
					out = append(out, engine{
						prog:  p,
						cName: "clockless_" + strings.ToLower(suffix),
						goFn:  "send" + suffix,
					})
				}
			}
		}
	}
	if arch == nil {
		return nil, nil, errors.New("clocklessgen: nothing to generate")
	}
	return arch, out, nil
}

// Go wrappers per port layout, with @GOFN and @CFN placeholders.
const (
	wrapper32 = `
func @GOFN(data *byte, count, stride uint32, scale uint8, p *port) {
	C.@CFN((*C.uint8_t)(unsafe.Pointer(data)), C.uint32_t(count), C.uint32_t(stride), C.uint32_t(scale), (*C.uint32_t)(unsafe.Pointer(p.set)), (*C.uint32_t)(unsafe.Pointer(p.clr)), C.uint32_t(p.hi), C.uint32_t(p.lo))
}
`
	wrapper8 = `
func @GOFN(data *byte, count, stride uint32, scale uint8, p *port) {
	C.@CFN((*C.uint8_t)(unsafe.Pointer(data)), C.uint16_t(count), C.uint8_t(stride), C.uint8_t(scale), (*C.uint8_t)(unsafe.Pointer(p.reg)), C.uint8_t(p.hi), C.uint8_t(p.lo))
}
`
)

var wrappers = map[string]string{
	"cortexm": wrapper32,
	"riscv":   wrapper32,
	"avr":     wrapper8,
}

func orderExpr(o clockless.Order) string {
	if o.White() {
		return "clockless.Order" + strings.TrimSuffix(o.String(), "W") + " | clockless.WithWhite"
	}
	return "clockless.Order" + o.String()
}

func generate(w io.Writer, arch *clockless.Arch, engines []engine) error {
	wrapper, ok := wrappers[arch.Name]
	if !ok {
		return fmt.Errorf("%w: %s", clockless.ErrUnknownArch, arch.Name)
	}
	buf := &bytes.Buffer{}
	fmt.Fprintln(buf, "// Code generated by clocklessgen. DO NOT EDIT.")
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "//go:build", arch.BuildTag)
	buf.WriteString(`
package bitbang

// Warning: autogenerated file. Instead of modifying this file, change
// clockless.gen and run "go generate".

import (
	"unsafe"

	"github.com/tinygo-org/clockless"
)

/*
#include <stdint.h>
`)
	for _, e := range engines {
		fn, err := e.prog.Emit(e.cName)
		if err != nil {
			return err
		}
		buf.WriteString("\n")
		buf.WriteString(fn)
	}
	buf.WriteString(`*/
import "C"

func init() {
	engines = append(engines,
`)
	for _, e := range engines {
		fmt.Fprintf(buf, "\t\tengineFunc{chipset: %q, order: %s, freq: %d, send: %s},\n",
			e.prog.Spec.Name, orderExpr(e.prog.Order), uint64(e.prog.Freq/physic.Hertz), e.goFn)
	}
	buf.WriteString("\t)\n}\n")
	for _, e := range engines {
		r := strings.NewReplacer("@GOFN", e.goFn, "@CFN", e.cName)
		buf.WriteString(r.Replace(wrapper))
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("clocklessgen: formatting output: %w", err)
	}
	_, err = w.Write(src)
	return err
}

func main() {
	jf := newJobFlags(os.Args[0], flag.ExitOnError)
	in := jf.fs.String("in", "", "read engine lines from this file instead of the flags")
	out := jf.fs.String("o", "", "output file (default stdout)")
	listing := jf.fs.Bool("list", false, "print program listings instead of Go code")
	jf.fs.Parse(os.Args[1:])

	var jobs []job
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			fmt.Fprintln(os.Stderr, "could not read engine list:", err)
			os.Exit(1)
		}
		jobs, err = parseLines(f)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", *in, err)
			os.Exit(1)
		}
	} else {
		j, err := jf.job()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		jobs = []job{j}
	}

	arch, engines, err := compile(jobs)
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not generate clockless engines:", err)
		os.Exit(1)
	}

	b, err := render(arch, engines, *listing)
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not generate clockless engines:", err)
		os.Exit(1)
	}
	if err := writeOutput(*out, b); err != nil {
		fmt.Fprintln(os.Stderr, "could not write clockless engines:", err)
		os.Exit(1)
	}
}

// render returns the generated file, or the program listings when listing is
// set.
func render(arch *clockless.Arch, engines []engine, listing bool) ([]byte, error) {
	var buf bytes.Buffer
	if listing {
		for _, e := range engines {
			fmt.Fprintln(&buf, e.prog)
		}
		return buf.Bytes(), nil
	}
	if err := generate(&buf, arch, engines); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeOutput writes b to path, or to stdout when path is empty. The file is
// only touched once the output is complete.
func writeOutput(path string, b []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(b)
		return err
	}
	return os.WriteFile(path, b, 0o666)
}
