package main

import (
	"os"
	"path/filepath"
	"testing"
)

func resetExportFlags() {
	quiet = true
	verbose = false
	exportSamples = nil
	exportTypes = nil
	exportDistance = 0.001
	exportStdout = false
}

func TestExportCommand(t *testing.T) {
	resetExportFlags()
	exportInput = writeTestTree(t)
	exportOutput = filepath.Join(t.TempDir(), "pruned.nwk")
	exportTypes = []string{"A"}

	if err := runExport(); err != nil {
		t.Fatalf("runExport: %v", err)
	}

	data, err := os.ReadFile(exportOutput)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "((A:0.0001)N1:0.5,C:0.5)Root;\n"
	if string(data) != want {
		t.Errorf("exported tree mismatch:\n got %q\nwant %q", data, want)
	}
}

func TestExportCommandNeedsOutput(t *testing.T) {
	resetExportFlags()
	exportInput = writeTestTree(t)
	exportOutput = ""

	if err := runExport(); err == nil {
		t.Fatalf("expected error without output or --stdout")
	}
}

func TestExportCommandRejectsBothOutputs(t *testing.T) {
	resetExportFlags()
	exportInput = writeTestTree(t)
	exportOutput = filepath.Join(t.TempDir(), "pruned.nwk")
	exportStdout = true

	if err := runExport(); err == nil {
		t.Fatalf("expected error with both output file and --stdout")
	}
}
