package fileio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/cxsynth/gate"
	"github.com/katalvlaran/cxsynth/moveset"
	"github.com/katalvlaran/cxsynth/operator"
)

// parsePair reads a line as two whitespace-separated integers, validating
// each against gate.NumQubits, and returns the resulting Gate.
func parsePair(line string) (gate.Gate, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return gate.Gate{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	ctrl, err := strconv.Atoi(fields[0])
	if err != nil {
		return gate.Gate{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	tgt, err := strconv.Atoi(fields[1])
	if err != nil {
		return gate.Gate{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	g, err := gate.New(ctrl, tgt)
	if err != nil {
		return gate.Gate{}, fmt.Errorf("%w: %v", ErrQubitOutOfRange, err)
	}

	return g, nil
}

// scanLines runs fn over every non-blank line of r.
func scanLines(r io.Reader, fn func(line string) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// ParseCircuit reads a circuit file: one "ctrl tgt" pair per line, applied
// in order starting from the identity.
func ParseCircuit(r io.Reader) (operator.CXMatrix, error) {
	m := operator.IdentityCXMatrix()
	err := scanLines(r, func(line string) error {
		g, err := parsePair(line)
		if err != nil {
			return err
		}
		m = m.AddCX(g.Ctrl, g.Tgt)

		return nil
	})

	return m, err
}

// ParseMoves reads a moves file: one "ctrl tgt" pair per line. Every line
// also implicitly allows the reverse gate CX(tgt, ctrl), so both are added
// to the resulting Set.
func ParseMoves(r io.Reader) (moveset.Set, error) {
	var gates []gate.Gate
	err := scanLines(r, func(line string) error {
		g, err := parsePair(line)
		if err != nil {
			return err
		}
		gates = append(gates, g, g.Reverse())

		return nil
	})
	if err != nil {
		return moveset.Set{}, err
	}

	return moveset.New(gates), nil
}

// ParseStabilisers reads a stabiliser file: one row per line, each a string
// of 'X'/'I' characters of equal length.
func ParseStabilisers(r io.Reader) (operator.StabiliserState, error) {
	var rows []string
	err := scanLines(r, func(line string) error {
		for _, ch := range line {
			if ch != 'X' && ch != 'I' {
				return fmt.Errorf("%w: %q", ErrInvalidStabiliserChar, line)
			}
		}
		rows = append(rows, line)

		return nil
	})
	if err != nil {
		return operator.StabiliserState{}, err
	}

	return operator.FromRowStrings(rows)
}
