package clockless

import "testing"

func TestPlanDelay_exact(t *testing.T) {
	for _, a := range []*Arch{&CortexM, &RISCV, &AVR} {
		for n := 0; n < 3000; n++ {
			d := PlanDelay(a, n)
			if got := d.Cycles(a); got != n {
				t.Errorf("%s: PlanDelay(%d) takes %d cycles (%+v)", a.Name, n, got, d)
			}
			for _, iters := range d.Loops {
				if iters < 2 || iters > a.MaxLoop {
					t.Errorf("%s: PlanDelay(%d) loop of %d iterations", a.Name, n, iters)
				}
			}
			if n >= a.LoopThreshold() && len(d.Loops) == 0 {
				t.Errorf("%s: PlanDelay(%d) uses no loop, threshold %d", a.Name, n, a.LoopThreshold())
			}
			if d.Nops >= a.LoopThreshold() {
				t.Errorf("%s: PlanDelay(%d) leaves %d nops", a.Name, n, d.Nops)
			}
		}
	}
}

func TestPlanDelay_short(t *testing.T) {
	for _, n := range []int{-5, -1, 0} {
		d := PlanDelay(&CortexM, n)
		if len(d.Loops) != 0 || d.Nops != 0 {
			t.Errorf("PlanDelay(%d) = %+v, want zero delay", n, d)
		}
		if len(d.instrs()) != 0 {
			t.Errorf("PlanDelay(%d) emits instructions", n)
		}
	}
	// Below the loop threshold a delay is nops only.
	for n := 1; n < CortexM.LoopThreshold(); n++ {
		d := PlanDelay(&CortexM, n)
		if len(d.Loops) != 0 || d.Nops != n {
			t.Errorf("PlanDelay(%d) = %+v, want %d nops", n, d, n)
		}
	}
}

func TestPlanDelay_chained(t *testing.T) {
	a := &CortexM
	n := 3*a.loopCost(a.MaxLoop) + 10
	d := PlanDelay(a, n)
	if len(d.Loops) < 3 {
		t.Fatalf("PlanDelay(%d) = %+v, want chained loops", n, d)
	}
	for i := 0; i < 3; i++ {
		if d.Loops[i] != a.MaxLoop {
			t.Errorf("loop %d has %d iterations, want %d", i, d.Loops[i], a.MaxLoop)
		}
	}
	if d.Cycles(a) != n {
		t.Errorf("chained delay takes %d cycles, want %d", d.Cycles(a), n)
	}
}

func TestArch_loopCost(t *testing.T) {
	tests := []struct {
		a         *Arch
		threshold int
		cost10    int
	}{
		// movs + 10×(subs+bne) with the last bne falling through.
		{&CortexM, 7, 39},
		{&RISCV, 7, 39},
		{&AVR, 6, 30},
	}
	for _, tt := range tests {
		if got := tt.a.LoopThreshold(); got != tt.threshold {
			t.Errorf("%s: LoopThreshold() = %d, want %d", tt.a.Name, got, tt.threshold)
		}
		if got := tt.a.loopCost(10); got != tt.cost10 {
			t.Errorf("%s: loopCost(10) = %d, want %d", tt.a.Name, got, tt.cost10)
		}
	}
}
