package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/cxsynth/fileio"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("os.WriteFile(%s): %v", path, err)
	}
}

func TestRun_AstarEndToEnd(t *testing.T) {
	dir := t.TempDir()
	targetPath := filepath.Join(dir, "target")
	outputPath := filepath.Join(dir, "out")
	writeFile(t, targetPath, "0 2\n2 0\n")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--target", targetPath, "--output", outputPath, "--depth", "2"})
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		t.Fatalf("output file is empty, want a written solution")
	}
}

func TestRun_MitmEndToEnd(t *testing.T) {
	dir := t.TempDir()
	targetPath := filepath.Join(dir, "target")
	outputPath := filepath.Join(dir, "out")
	writeFile(t, targetPath, "0 4\n4 5\n5 0\n")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--target", targetPath, "--output", outputPath, "--depth", "2", "--algo", "mitm"})
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	file, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("opening output file: %v", err)
	}
	defer file.Close()

	target, err := fileio.ParseCircuit(file)
	if err != nil {
		t.Fatalf("ParseCircuit(output): %v", err)
	}
	_ = target
}

func TestRun_NoSolutionWithinDepthIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	targetPath := filepath.Join(dir, "target")
	movesPath := filepath.Join(dir, "moves")
	outputPath := filepath.Join(dir, "out")
	writeFile(t, targetPath, "0 1\n2 3\n1 4\n")
	writeFile(t, movesPath, "0 1\n")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--target", targetPath, "--moves", movesPath, "--output", outputPath, "--depth", "1"})
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !strings.Contains(stdout.String(), "no solution") {
		t.Fatalf("stdout = %q; want a no-solution message", stdout.String())
	}
	if _, err := os.Stat(outputPath); err == nil {
		t.Fatalf("output file should not be written when no solution is found")
	}
}

func TestRun_StabiliserRequiresSource(t *testing.T) {
	dir := t.TempDir()
	targetPath := filepath.Join(dir, "target")
	writeFile(t, targetPath, "XI\nIX\n")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--target", targetPath, "--algo", "astar-stabiliser"})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("Execute should error when --source is missing for astar-stabiliser")
	}
}

func TestRun_StabiliserEndToEnd(t *testing.T) {
	dir := t.TempDir()
	sourcePath := filepath.Join(dir, "source")
	targetPath := filepath.Join(dir, "target")
	outputPath := filepath.Join(dir, "out")
	writeFile(t, sourcePath, "XI\nIX\n")
	writeFile(t, targetPath, "XX\nIX\n")

	cmd := newRootCmd()
	cmd.SetArgs([]string{
		"--source", sourcePath,
		"--target", targetPath,
		"--output", outputPath,
		"--depth", "2",
		"--algo", "astar-stabiliser",
	})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if _, err := os.Stat(outputPath); err != nil {
		t.Fatalf("expected a written solution file: %v", err)
	}
}
