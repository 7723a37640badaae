package mitm

import (
	"testing"

	"github.com/katalvlaran/cxsynth/gate"
	"github.com/katalvlaran/cxsynth/operator"
)

func TestStepFrontier_DiscardsRootAndPrevious(t *testing.T) {
	root := operator.IdentityCXMatrix()
	cx01, _ := gate.New(0, 1)
	cx10, _ := gate.New(1, 0)
	moves := []gate.Gate{cx01, cx10}

	layer0 := newRootFrontier(root)
	layer1 := stepFrontier(moves, layer0, nil)

	// CX(0,1) and CX(1,0) each produce a distinct non-identity circuit.
	if len(layer1) != 2 {
		t.Fatalf("len(layer1) = %d; want 2", len(layer1))
	}

	layer2 := stepFrontier(moves, layer1, layer0)
	// Re-applying the same move that produced a layer1 element returns to
	// the root and is discarded (present in layer0); the cross move from
	// each of the two layer1 elements reaches a genuinely new circuit.
	if len(layer2) != 2 {
		t.Fatalf("len(layer2) = %d; want 2, got %v", len(layer2), layer2)
	}
	if _, ok := layer2[root]; ok {
		t.Fatalf("layer2 unexpectedly contains the root circuit")
	}
}

func TestStepFrontier_RecordsProducingMove(t *testing.T) {
	root := operator.IdentityCXMatrix()
	cx02, _ := gate.New(0, 2)
	moves := []gate.Gate{cx02}

	layer0 := newRootFrontier(root)
	layer1 := stepFrontier(moves, layer0, nil)

	want := root.CX(0, 2)
	mv, ok := layer1[want]
	if !ok {
		t.Fatalf("layer1 missing the circuit produced by CX(0,2)")
	}
	if mv != cx02 {
		t.Fatalf("layer1[want] = %v; want %v", mv, cx02)
	}
}
