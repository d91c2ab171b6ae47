package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"qtermstab/gates"
)

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGatesCommand(t *testing.T) {
	out, err := execute(t, "", "gates")
	if err != nil {
		t.Fatalf("gates: %v", err)
	}
	for _, want := range []string{"Pauli Gates", "Controlled Gates", "SQRT_XX", "CNOT", "S_DAG"} {
		if !strings.Contains(out, want) {
			t.Errorf("gates output is missing %q", want)
		}
	}

	out, err = execute(t, "", "gates", "swap")
	if err != nil {
		t.Fatalf("gates swap: %v", err)
	}
	if !strings.Contains(out, "ISWAP") || strings.Contains(out, "Pauli Gates") {
		t.Errorf("gates swap printed the wrong categories:\n%s", out)
	}

	if _, err := execute(t, "", "gates", "nonsense"); err == nil {
		t.Fatal("expected an error for an unknown category")
	}
}

func TestShowCommand(t *testing.T) {
	out, err := execute(t, "", "show", "H")
	if err != nil {
		t.Fatalf("show H: %v", err)
	}
	for _, want := range []string{"tableau:", "flows:", "X -> Z", "Z -> X", "decomposition:"} {
		if !strings.Contains(out, want) {
			t.Errorf("show H is missing %q:\n%s", want, out)
		}
	}

	out, err = execute(t, "", "show", "cnot")
	if err != nil {
		t.Fatalf("show cnot: %v", err)
	}
	if !strings.Contains(out, "CX") || !strings.Contains(out, "CNOT") {
		t.Errorf("show cnot did not resolve the alias:\n%s", out)
	}

	_, err = execute(t, "", "show", "NOT_A_GATE")
	if !errors.Is(err, gates.ErrNotFound) {
		t.Fatalf("show NOT_A_GATE error = %v, want ErrNotFound", err)
	}
}

func TestVerifyCommand(t *testing.T) {
	out, err := execute(t, "", "verify", "H", "CX", "M", "--trials", "8", "--workers", "2")
	if err != nil {
		t.Fatalf("verify: %v\n%s", err, out)
	}
	if !strings.Contains(out, "3 gates checked with 8 trials per flow, 0 failed") {
		t.Errorf("unexpected summary:\n%s", out)
	}

	_, err = execute(t, "", "verify", "NOT_A_GATE")
	if !errors.Is(err, gates.ErrNotFound) {
		t.Fatalf("verify NOT_A_GATE error = %v, want ErrNotFound", err)
	}
}

func TestSimCommand(t *testing.T) {
	out, err := execute(t, "H 0\nCX 0 1\n", "sim")
	if err != nil {
		t.Fatalf("sim: %v", err)
	}
	for _, want := range []string{"+XX", "+ZZ", "q0 P(1)=0.500", "q1 P(1)=0.500"} {
		if !strings.Contains(out, want) {
			t.Errorf("sim output is missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "record:") {
		t.Errorf("unitary circuit printed a record:\n%s", out)
	}

	out, err = execute(t, "H 0\nM 0\n", "sim", "--bias=-1")
	if err != nil {
		t.Fatalf("sim --bias=-1: %v", err)
	}
	if !strings.Contains(out, "record: 1") || strings.Contains(out, "probabilities:") {
		t.Errorf("unexpected output for a forced measurement:\n%s", out)
	}

	out, err = execute(t, "X 0\n", "sim", "--qubits", "3")
	if err != nil {
		t.Fatalf("sim --qubits 3: %v", err)
	}
	if !strings.Contains(out, "-Z__") {
		t.Errorf("register was not widened:\n%s", out)
	}

	if _, err := execute(t, "H 0\n", "sim", "--bias", "2"); err == nil {
		t.Fatal("expected an error for --bias 2")
	}
	if _, err := execute(t, "CX 0 0\n", "sim"); err == nil {
		t.Fatal("expected an error for a repeated pair target")
	}
}

func TestSimCommandReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bell.txt")
	if err := os.WriteFile(path, []byte("H 0\nCX 0 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "", "sim", path)
	if err != nil {
		t.Fatalf("sim %s: %v", path, err)
	}
	if !strings.Contains(out, "+XX") {
		t.Errorf("unexpected output:\n%s", out)
	}

	if _, err := execute(t, "", "sim", filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestConfigFlagIsValidated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("trials: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "", "gates", "--config", path); err == nil {
		t.Fatal("expected an error for trials: 0")
	}
	if _, err := execute(t, "", "gates", "--trials", "0"); err == nil {
		t.Fatal("expected an error for --trials 0")
	}
}
