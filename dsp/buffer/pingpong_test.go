package buffer

import (
	"errors"
	"testing"
)

var (
	ppA, ppB [4]float64
	ppShort  [2]float64
)

func TestPingPongSwap(t *testing.T) {
	pp, err := NewPingPong(FromStatic(ppA[:]), FromStatic(ppB[:]))
	if err != nil {
		t.Fatalf("NewPingPong() error = %v", err)
	}
	if pp.Index() != 0 || pp.Len() != 4 {
		t.Fatalf("Index() = %d, Len() = %d", pp.Index(), pp.Len())
	}

	active := pp.Active()
	active.Fill(1)
	pp.Swap()

	if pp.Index() != 1 {
		t.Fatalf("Index() after Swap = %d, want 1", pp.Index())
	}
	if active != pp.Active() {
		t.Fatal("Active() returned a different handle after Swap")
	}
	if active.Pointer() != &ppB[0] {
		t.Fatalf("active points at %p, want %p", active.Pointer(), &ppB[0])
	}
	if !pp.Inactive().EqualSlice([]float64{1, 1, 1, 1}) {
		t.Fatalf("Inactive() = %v", pp.Inactive().AsSlice())
	}

	active.Fill(2)
	pp.Swap()
	if pp.Index() != 0 || active.Pointer() != &ppA[0] {
		t.Fatalf("second Swap: Index() = %d, Pointer() = %p", pp.Index(), active.Pointer())
	}
	if ppB[3] != 2 {
		t.Fatalf("ppB = %v, want all 2", ppB)
	}
}

func TestPingPongErrors(t *testing.T) {
	if _, err := NewPingPong(FromStatic(ppA[:]), FromStatic(ppShort[:])); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("mismatched lengths error = %v, want ErrLengthMismatch", err)
	}
	if _, err := NewPingPong(FromStatic[float64](nil), FromStatic(ppA[:])); !errors.Is(err, ErrEmptyBuffer) {
		t.Fatalf("empty buffer error = %v, want ErrEmptyBuffer", err)
	}
}
