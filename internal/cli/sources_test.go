package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cargoport/cargoport/pkg/errors"
)

const lockA = `
[[package]]
name = "demo-project"
version = "0.1.0"

[[package]]
name = "serde"
version = "1.0.193"
checksum = "deadbeef"
`

const lockB = `
[[package]]
name = "serde"
version = "1.0.193"
checksum = "deadbeef"

[[package]]
name = "libc"
version = "0.2.147"
checksum = "cafebabe"
`

func writeLockfile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Cargo.lock")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseCrateSpec(t *testing.T) {
	tests := []struct {
		name        string
		spec        string
		wantName    string
		wantVersion string
		wantErr     bool
	}{
		{"valid", "serde@1.0.193", "serde", "1.0.193", false},
		{"extra separator uses second field", "a@b@c", "a", "b", false},
		{"missing separator", "serde", "", "", true},
		{"empty name", "@1.0.0", "", "", true},
		{"empty version", "serde@", "", "", true},
		{"empty spec", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, version, err := parseCrateSpec(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseCrateSpec(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidCrateSpec) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidCrateSpec)
				}
				return
			}
			if name != tt.wantName || version != tt.wantVersion {
				t.Errorf("parseCrateSpec(%q) = %q, %q; want %q, %q",
					tt.spec, name, version, tt.wantName, tt.wantVersion)
			}
		})
	}
}

func TestReadPackages_MergesSources(t *testing.T) {
	path := writeLockfile(t, lockA)
	opts := &generateOpts{stdin: strings.NewReader(lockB)}

	got, err := readPackages(context.Background(), []string{path, "-"}, opts)
	if err != nil {
		t.Fatalf("readPackages() failed: %v", err)
	}

	// The shared serde entry collapses, the checksum-less project entry
	// disappears, and the result is sorted by name.
	if len(got) != 2 {
		t.Fatalf("got %d packages, want 2", len(got))
	}
	if got[0].Name != "libc" || got[1].Name != "serde" {
		t.Errorf("order = %s, %s; want libc, serde", got[0].Name, got[1].Name)
	}
}

func TestReadPackages_MissingFile(t *testing.T) {
	opts := &generateOpts{}
	_, err := readPackages(context.Background(), []string{filepath.Join(t.TempDir(), "nope")}, opts)
	if err == nil {
		t.Fatal("readPackages() succeeded, want error")
	}
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeIO)
	}
}

func TestReadPackages_InvalidCrateSpec(t *testing.T) {
	opts := &generateOpts{}
	_, err := readPackages(context.Background(), []string{"crate:serde"}, opts)
	if err == nil {
		t.Fatal("readPackages() succeeded, want error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidCrateSpec) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidCrateSpec)
	}
}

func TestReadPackages_FailFast(t *testing.T) {
	// A broken source aborts the run even when earlier sources parsed.
	good := writeLockfile(t, lockA)
	opts := &generateOpts{}

	_, err := readPackages(context.Background(), []string{good, filepath.Join(t.TempDir(), "nope")}, opts)
	if err == nil {
		t.Fatal("readPackages() succeeded, want error")
	}
}
