package fileio_test

import (
	"testing"

	"github.com/katalvlaran/cxsynth/fileio"
	"github.com/katalvlaran/cxsynth/gate"
	"github.com/katalvlaran/cxsynth/operator"
)

func TestVerifyOperator_MatchingSolution(t *testing.T) {
	cx02, _ := gate.New(0, 2)
	cx20, _ := gate.New(2, 0)
	source := operator.IdentityCXMatrix()
	target := source.AddCX(0, 2).AddCX(2, 0)

	if !fileio.VerifyOperator(source, target, []gate.Gate{cx02, cx20}) {
		t.Fatalf("VerifyOperator should accept a solution that replays to target")
	}
}

func TestVerifyOperator_WrongSolutionRejected(t *testing.T) {
	cx02, _ := gate.New(0, 2)
	source := operator.IdentityCXMatrix()
	target := source.AddCX(0, 2).AddCX(2, 0)

	if fileio.VerifyOperator(source, target, []gate.Gate{cx02}) {
		t.Fatalf("VerifyOperator should reject a solution that does not reach target")
	}
}
