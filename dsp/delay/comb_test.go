package delay

import (
	"testing"

	"github.com/cwbudde/algo-audiotools/dsp/buffer"
)

func TestCombImpulse(t *testing.T) {
	var storage [2]float32
	m := buffer.FromBufferMut(storage[:])
	c, err := NewComb(&m)
	if err != nil {
		t.Fatal(err)
	}

	in := []float32{1, 0, 0, 0, 0, 0, 0, 0}
	want := []float32{0, 0, 1, 0, 0.25, 0.125, 0.125, 0.09375}
	for i, x := range in {
		if got := c.Tick(x); got != want[i] {
			t.Fatalf("Tick() #%d = %v, want %v", i, got, want[i])
		}
	}
}

func TestCombProcessBlockMatchesTick(t *testing.T) {
	a := buffer.FromBufferMut(make([]float64, 7))
	b := buffer.FromBufferMut(make([]float64, 7))
	ref, _ := NewComb(&a)
	blk, _ := NewComb(&b)
	ref.SetFeedback(0.8)
	blk.SetFeedback(0.8)
	ref.SetDampening(0.2)
	blk.SetDampening(0.2)

	raw := make([]float64, 32)
	raw[0] = 1
	want := make([]float64, len(raw))
	for i, x := range raw {
		want[i] = ref.Tick(x)
	}

	io := buffer.FromBufferMut(raw)
	blk.ProcessBlock(&io)
	if !io.Slice().EqualSlice(want) {
		t.Fatalf("ProcessBlock() = %v, want %v", raw, want)
	}
}

func TestCombReset(t *testing.T) {
	m := buffer.FromBufferMut(make([]float64, 3))
	c, _ := NewComb(&m)
	for i := 0; i < 10; i++ {
		c.Tick(1)
	}
	c.Reset()
	for i := 0; i < 6; i++ {
		if got := c.Tick(0); got != 0 {
			t.Fatalf("Tick() after Reset = %v, want 0", got)
		}
	}
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
}

func TestCombChangeBuffer(t *testing.T) {
	a := buffer.FromBufferMut(make([]float64, 2))
	c, _ := NewComb(&a)
	c.Tick(1)

	b := buffer.FromBufferMut(make([]float64, 5))
	if err := c.ChangeBuffer(&b); err != nil {
		t.Fatal(err)
	}
	if c.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", c.Len())
	}
}

func TestNewCombEmpty(t *testing.T) {
	m := buffer.EmptyMut[float32]()
	if _, err := NewComb(&m); err == nil {
		t.Fatal("expected error for empty buffer")
	}
}
