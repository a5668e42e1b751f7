package clockless

import "testing"

func TestMemPin_words(t *testing.T) {
	var port MemPort
	port.Set(0x0000_00f0)
	pin := port.Pin(2)
	w := Latch(pin)
	if w.High != 0xf4 || w.Low != 0xf0 {
		t.Errorf("words = %#x/%#x, want 0xf4/0xf0", w.High, w.Low)
	}
	w.SetReg.Set(w.High)
	if !pin.Get() || port.Get() != 0xf4 {
		t.Errorf("after high store port = %#x", port.Get())
	}
	w.ClearReg.Set(w.Low)
	if pin.Get() || port.Get() != 0xf0 {
		t.Errorf("after low store port = %#x", port.Get())
	}
	if port.Writes() != 3 {
		t.Errorf("Writes() = %d, want 3", port.Writes())
	}
	if pin.Mask() != 1<<2 {
		t.Errorf("Mask() = %#x", pin.Mask())
	}
}

func TestSetClearPin_words(t *testing.T) {
	var port SetClearPort
	a, b := port.Pin(0), port.Pin(31)
	wa, wb := Latch(a), Latch(b)
	if wa.High != 1 || wa.Low != 1 || wb.High != 1<<31 {
		t.Errorf("words = %#x/%#x/%#x", wa.High, wa.Low, wb.High)
	}
	wa.SetReg.Set(wa.High)
	wb.SetReg.Set(wb.High)
	wa.ClearReg.Set(wa.Low)
	if a.Get() || !b.Get() || port.Get() != 1<<31 {
		t.Errorf("port = %#x", port.Get())
	}
}

func TestPin_range(t *testing.T) {
	for _, n := range []int{-1, 32} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("MemPort.Pin(%d) did not panic", n)
				}
			}()
			var port MemPort
			port.Pin(n)
		}()
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("SetClearPort.Pin(%d) did not panic", n)
				}
			}()
			var port SetClearPort
			port.Pin(n)
		}()
	}
}
