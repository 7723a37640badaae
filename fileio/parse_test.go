package fileio_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/cxsynth/fileio"
	"github.com/katalvlaran/cxsynth/operator"
)

func TestParseCircuit_AppliesPairsInOrder(t *testing.T) {
	r := strings.NewReader("0 2\n2 0\n")
	got, err := fileio.ParseCircuit(r)
	if err != nil {
		t.Fatalf("ParseCircuit returned error: %v", err)
	}
	want := operator.IdentityCXMatrix().AddCX(0, 2).AddCX(2, 0)
	if got != want {
		t.Fatalf("ParseCircuit() = %+v; want %+v", got, want)
	}
}

func TestParseCircuit_MalformedLine(t *testing.T) {
	r := strings.NewReader("0 2 7\n")
	if _, err := fileio.ParseCircuit(r); err == nil {
		t.Fatalf("ParseCircuit with a 3-field line should error")
	}
}

func TestParseCircuit_QubitOutOfRange(t *testing.T) {
	r := strings.NewReader("0 99\n")
	if _, err := fileio.ParseCircuit(r); err == nil {
		t.Fatalf("ParseCircuit with an out-of-range qubit should error")
	}
}

func TestParseMoves_AddsReverseOfEachLine(t *testing.T) {
	r := strings.NewReader("0 1\n2 3\n")
	moves, err := fileio.ParseMoves(r)
	if err != nil {
		t.Fatalf("ParseMoves returned error: %v", err)
	}
	if got, want := moves.Len(), 4; got != want {
		t.Fatalf("moves.Len() = %d; want %d", got, want)
	}
}

func TestParseMoves_BlankLinesSkipped(t *testing.T) {
	r := strings.NewReader("0 1\n\n   \n2 3\n")
	moves, err := fileio.ParseMoves(r)
	if err != nil {
		t.Fatalf("ParseMoves returned error: %v", err)
	}
	if got, want := moves.Len(), 4; got != want {
		t.Fatalf("moves.Len() = %d; want %d", got, want)
	}
}

func TestParseStabilisers_ParsesRows(t *testing.T) {
	r := strings.NewReader("XI\nIX\n")
	got, err := fileio.ParseStabilisers(r)
	if err != nil {
		t.Fatalf("ParseStabilisers returned error: %v", err)
	}
	want, err := operator.FromRowStrings([]string{"XI", "IX"})
	if err != nil {
		t.Fatalf("FromRowStrings returned error: %v", err)
	}
	if got != want {
		t.Fatalf("ParseStabilisers() = %+v; want %+v", got, want)
	}
}

func TestParseStabilisers_InvalidCharacter(t *testing.T) {
	r := strings.NewReader("XY\n")
	if _, err := fileio.ParseStabilisers(r); err == nil {
		t.Fatalf("ParseStabilisers with a non-X/I character should error")
	}
}
