package cargolock

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver"

	"github.com/cargoport/cargoport/pkg/errors"
)

// Lockfile is a parsed Cargo.lock document: an ordered sequence of package
// records. It is read-only input; resolution never mutates it.
type Lockfile struct {
	Packages []Package
}

// lockDocument mirrors the on-disk TOML structure. Fields the formatter
// never needs (source, dependencies, ...) are ignored by the decoder.
type lockDocument struct {
	Package  []lockPackage     `toml:"package"`
	Metadata map[string]string `toml:"metadata"`
}

type lockPackage struct {
	Name     string `toml:"name"`
	Version  string `toml:"version"`
	Checksum string `toml:"checksum"`
}

// Load reads and parses the Cargo.lock file at path.
func Load(path string) (*Lockfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
	}
	return Parse(string(data))
}

// Parse parses Cargo.lock contents.
//
// Checksums are taken from the inline `checksum` key (V2+ lockfiles) or,
// when absent, from the V1 `[metadata]` table where each key has the form
// "checksum NAME VERSION (SOURCE)". The literal metadata value "<none>"
// means no checksum.
func Parse(contents string) (*Lockfile, error) {
	var doc lockDocument
	if err := toml.Unmarshal([]byte(contents), &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "parse lockfile")
	}

	metaSums := metadataChecksums(doc.Metadata)

	lock := &Lockfile{Packages: make([]Package, 0, len(doc.Package))}
	for _, p := range doc.Package {
		if p.Name == "" {
			return nil, errors.New(errors.ErrCodeParse, "lockfile package entry missing name")
		}
		version, err := semver.NewVersion(p.Version)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeParse, err, "package %s: invalid version %q", p.Name, p.Version)
		}

		checksum := p.Checksum
		if checksum == "" {
			checksum = metaSums[metaKey{name: p.Name, version: p.Version}]
		}

		lock.Packages = append(lock.Packages, Package{
			Name:     p.Name,
			Version:  version,
			Checksum: checksum,
		})
	}
	return lock, nil
}

type metaKey struct {
	name    string
	version string
}

// metadataChecksums extracts per-package checksums from a V1 [metadata]
// table. Unrecognized keys and "<none>" values are skipped.
func metadataChecksums(metadata map[string]string) map[metaKey]string {
	if len(metadata) == 0 {
		return nil
	}
	sums := make(map[metaKey]string, len(metadata))
	for key, value := range metadata {
		fields := strings.Fields(key)
		if len(fields) < 3 || fields[0] != "checksum" {
			continue
		}
		if value == "<none>" {
			continue
		}
		sums[metaKey{name: fields[1], version: fields[2]}] = value
	}
	return sums
}
