package cargolock

import (
	"strings"

	"github.com/Masterminds/semver"
)

// Package is one resolved dependency from a Cargo.lock document.
//
// Identity is the full (Name, Version, Checksum) triple; two packages with
// the same name and version but different checksums are distinct entries.
// Sort order uses (Name, Version) with Checksum only as a final tiebreaker
// for determinism.
type Package struct {
	Name     string          // crate name, never empty after parsing
	Version  *semver.Version // parsed semantic version
	Checksum string          // registry content hash; empty for the project's own entry
}

// HasChecksum reports whether the package carries a registry checksum.
// Entries without one are the lockfile's own project entries and are
// excluded from resolution output.
func (p Package) HasChecksum() bool { return p.Checksum != "" }

// Compare orders packages by name, then semantic version precedence, then
// checksum. It returns -1, 0, or 1.
func (p Package) Compare(o Package) int {
	if c := strings.Compare(p.Name, o.Name); c != 0 {
		return c
	}
	if c := p.Version.Compare(o.Version); c != 0 {
		return c
	}
	return strings.Compare(p.Checksum, o.Checksum)
}

// identity is the map key used for deduplication. The version is keyed by
// its string rendering so equal versions collapse regardless of pointer.
type identity struct {
	name     string
	version  string
	checksum string
}

func (p Package) identity() identity {
	return identity{name: p.Name, version: p.Version.String(), checksum: p.Checksum}
}
