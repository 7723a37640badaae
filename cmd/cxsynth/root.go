package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cxsynth/astar"
	"github.com/katalvlaran/cxsynth/fileio"
	"github.com/katalvlaran/cxsynth/gate"
	"github.com/katalvlaran/cxsynth/logsink"
	"github.com/katalvlaran/cxsynth/mitm"
	"github.com/katalvlaran/cxsynth/moveset"
	"github.com/katalvlaran/cxsynth/operator"
)

// defaultMovesFile is the sentinel moves filename the CLI treats as a
// convenience request for the full 16-qubit all-to-all move set,
// synthesized in memory when no such file exists on disk.
const defaultMovesFile = "all_to_all"

// flags holds the parsed CLI flags, named to match the long-form flags
// one-to-one.
type flags struct {
	target string
	source string
	moves  string
	output string
	depth  int
	algo   string
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "cxsynth",
		Short: "Synthesize a short CX gate sequence transforming a source operator into a target operator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.target, "target", "t", "in", "target operator file")
	cmd.Flags().StringVarP(&f.source, "source", "s", "", "source operator file (identity if absent for circuits; required for stabilisers)")
	cmd.Flags().StringVarP(&f.moves, "moves", "m", defaultMovesFile, "allowed-moves file")
	cmd.Flags().StringVarP(&f.output, "output", "o", "out", "solution output file")
	cmd.Flags().IntVarP(&f.depth, "depth", "d", 5, "search depth bound")
	cmd.Flags().StringVarP(&f.algo, "algo", "a", "astar", "search algorithm: mitm|astar|astar-stabiliser")

	return cmd
}

func run(cmd *cobra.Command, f *flags) error {
	logger := logsink.NewConsole()

	moves, err := loadMoves(f.moves)
	if err != nil {
		return fmt.Errorf("cxsynth: loading moves: %w", err)
	}

	if f.algo == "astar-stabiliser" {
		return runStabiliser(cmd, f, moves, logger)
	}

	return runCircuit(cmd, f, moves, logger)
}

// loadMoves parses the moves file at path, with the all_to_all convenience
// fallback: if path is exactly defaultMovesFile and no such file exists on
// disk, a full 16-qubit all-to-all move set is synthesized in-memory
// instead of erroring.
func loadMoves(path string) (moveset.Set, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && path == defaultMovesFile {
			return moveset.AllToAll(gate.NumQubits), nil
		}

		return moveset.Set{}, err
	}
	defer file.Close()

	return fileio.ParseMoves(file)
}

func runCircuit(cmd *cobra.Command, f *flags, moves moveset.Set, logger logsink.Logger) error {
	target, err := parseCircuitFile(f.target)
	if err != nil {
		return fmt.Errorf("cxsynth: parsing target: %w", err)
	}

	source := operator.IdentityCXMatrix()
	if f.source != "" {
		source, err = parseCircuitFile(f.source)
		if err != nil {
			return fmt.Errorf("cxsynth: parsing source: %w", err)
		}
	}

	var gates []gate.Gate
	var found bool

	switch f.algo {
	case "mitm":
		result, err := mitm.Search(target, moves, f.depth, true, mitm.WithSource(source), mitm.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("cxsynth: mitm search: %w", err)
		}
		gates, found = result.Gates, result.Found
	case "astar":
		result, err := astar.Search(source, target, moves, astar.WithDepthCap(f.depth), astar.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("cxsynth: astar search: %w", err)
		}
		gates, found = result.Gates, result.Found
	default:
		return fmt.Errorf("cxsynth: unknown algorithm %q", f.algo)
	}

	return finish(cmd, f, source, target, gates, found)
}

func runStabiliser(cmd *cobra.Command, f *flags, moves moveset.Set, logger logsink.Logger) error {
	if f.source == "" {
		return fmt.Errorf("cxsynth: --source is required for astar-stabiliser")
	}

	target, err := parseStabiliserFile(f.target)
	if err != nil {
		return fmt.Errorf("cxsynth: parsing target: %w", err)
	}
	source, err := parseStabiliserFile(f.source)
	if err != nil {
		return fmt.Errorf("cxsynth: parsing source: %w", err)
	}

	result, err := astar.Search(source, target, moves, astar.WithDepthCap(f.depth), astar.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("cxsynth: astar search: %w", err)
	}

	return finishStabiliser(cmd, f, source, target, result.Gates, result.Found)
}

func parseCircuitFile(path string) (operator.CXMatrix, error) {
	file, err := os.Open(path)
	if err != nil {
		return operator.CXMatrix{}, err
	}
	defer file.Close()

	return fileio.ParseCircuit(file)
}

func parseStabiliserFile(path string) (operator.StabiliserState, error) {
	file, err := os.Open(path)
	if err != nil {
		return operator.StabiliserState{}, err
	}
	defer file.Close()

	return fileio.ParseStabilisers(file)
}

// finish verifies and writes the circuit-operator solution. An unfound
// search is reported as "no solution"; a solution that fails the replay
// check is reported as an internal error and nothing is written. Both cases
// return nil.
func finish(cmd *cobra.Command, f *flags, source, target operator.CXMatrix, gates []gate.Gate, found bool) error {
	if !found {
		fmt.Fprintln(cmd.OutOrStdout(), "no solution found within depth bound")

		return nil
	}

	if !fileio.VerifyOperator(source, target, gates) {
		fmt.Fprintln(cmd.OutOrStdout(), "internal error: solution failed replay verification, aborting without writing")

		return nil
	}

	return writeSolution(f.output, gates)
}

func finishStabiliser(cmd *cobra.Command, f *flags, source, target operator.StabiliserState, gates []gate.Gate, found bool) error {
	if !found {
		fmt.Fprintln(cmd.OutOrStdout(), "no solution found within depth bound")

		return nil
	}

	if !fileio.VerifyOperator(source, target, gates) {
		fmt.Fprintln(cmd.OutOrStdout(), "internal error: solution failed replay verification, aborting without writing")

		return nil
	}

	return writeSolution(f.output, gates)
}

func writeSolution(path string, gates []gate.Gate) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cxsynth: writing solution: %w", err)
	}
	defer file.Close()

	if err := fileio.WriteSolution(file, gates); err != nil {
		return fmt.Errorf("cxsynth: writing solution: %w", err)
	}

	return nil
}
