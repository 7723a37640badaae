package operator_test

import (
	"testing"

	"github.com/katalvlaran/cxsynth/operator"
)

func TestFromRowStrings_Valid(t *testing.T) {
	s, err := operator.FromRowStrings([]string{"XI", "IX"})
	if err != nil {
		t.Fatal(err)
	}
	if s.N() != 2 {
		t.Fatalf("N() = %d; want 2", s.N())
	}
	if s.Row(0) != 1 || s.Row(1) != 2 {
		t.Fatalf("rows = (%b, %b); want (1, 10)", s.Row(0), s.Row(1))
	}
}

func TestFromRowStrings_InvalidChar(t *testing.T) {
	if _, err := operator.FromRowStrings([]string{"XZ"}); err == nil {
		t.Fatalf("expected an error for invalid stabiliser character")
	}
}

func TestStabiliserState_CX(t *testing.T) {
	s := operator.NewStabiliserState(3)
	s = s.CX(0, 1)
	if s.Row(1) != s.Row(0)^(1<<1) {
		t.Fatalf("CX(0,1) did not XOR control into target as expected")
	}
}

func TestStabiliserState_DistAndComplete(t *testing.T) {
	a := operator.NewStabiliserState(4)
	b := a.CX(0, 1)
	if got, want := a.Dist(b), 1; got != want {
		t.Fatalf("Dist = %d; want %d", got, want)
	}
	if a.IsComplete(1, b) {
		t.Fatalf("row 1 should not be complete yet")
	}
	if !a.IsComplete(2, b) {
		t.Fatalf("row 2 is untouched and should be complete")
	}
}

func TestStabiliserState_Merge(t *testing.T) {
	a := operator.NewStabiliserState(4).CX(0, 1)
	b := operator.NewStabiliserState(4).CX(2, 3)
	merged := a.Merge(b, operator.QubitSetOf(2, 3))
	if merged.Row(1) != a.Row(1) {
		t.Fatalf("Merge overwrote row outside `used`")
	}
	if merged.Row(3) != b.Row(3) {
		t.Fatalf("Merge did not take other's row on `used`")
	}
}
