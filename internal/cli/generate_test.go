package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunGenerate_WritesBlock(t *testing.T) {
	lock := writeLockfile(t, lockB)
	out := filepath.Join(t.TempDir(), "crates.txt")
	opts := &generateOpts{align: "normal", output: out}

	if err := runGenerate(context.Background(), opts, []string{lock}); err != nil {
		t.Fatalf("runGenerate() failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	got := string(data)

	if !strings.HasPrefix(got, "cargo.crates \\\n") {
		t.Errorf("output does not start with header: %q", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("output file should end with a newline")
	}
	// Sorted: libc before serde.
	if strings.Index(got, "libc") > strings.Index(got, "serde") {
		t.Errorf("entries not sorted in %q", got)
	}
}

func TestRunGenerate_AlignModes(t *testing.T) {
	lock := writeLockfile(t, lockB)

	for _, align := range []string{"normal", "maxlen", "multiline", "justify"} {
		t.Run(align, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "crates.txt")
			opts := &generateOpts{align: align, output: out}
			if err := runGenerate(context.Background(), opts, []string{lock}); err != nil {
				t.Fatalf("runGenerate() failed: %v", err)
			}
		})
	}
}

func TestRunGenerate_InvalidAlign(t *testing.T) {
	opts := &generateOpts{align: "sideways"}
	err := runGenerate(context.Background(), opts, nil)
	if err == nil {
		t.Fatal("runGenerate() succeeded, want error")
	}
	if !strings.Contains(err.Error(), "alignment mode") {
		t.Errorf("error = %v, want alignment mode complaint", err)
	}
}

func TestRunGenerate_DefaultsToCargoLock(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Cargo.lock"), []byte(lockB), 0o644); err != nil {
		t.Fatal(err)
	}
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(oldwd) })

	out := filepath.Join(dir, "crates.txt")
	opts := &generateOpts{align: "normal", output: out}
	if err := runGenerate(context.Background(), opts, nil); err != nil {
		t.Fatalf("runGenerate() failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "serde") {
		t.Errorf("default Cargo.lock not picked up, output %q", string(data))
	}
}

func TestRunGenerate_EmptyLockfile(t *testing.T) {
	lock := writeLockfile(t, "")
	out := filepath.Join(t.TempDir(), "crates.txt")
	opts := &generateOpts{align: "normal", output: out}

	if err := runGenerate(context.Background(), opts, []string{lock}); err != nil {
		t.Fatalf("runGenerate() failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "cargo.crates\n" {
		t.Errorf("output = %q, want header only", string(data))
	}
}
