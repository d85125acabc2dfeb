// Package cargolock models Cargo.lock documents and resolves their package
// entries into one canonical sequence.
//
// # Overview
//
// A [Lockfile] is the parsed form of a Cargo.lock document: an ordered list
// of [Package] records, each carrying a name, a semantic version, and
// (for external dependencies) a registry checksum. Lockfiles are read-only
// once parsed.
//
// [Resolve] merges any number of lockfiles into a single deduplicated,
// sorted package sequence, dropping entries without a checksum (those are
// the lockfile's own project entries, not downloadable crates).
//
// # Parsing
//
// Both current (V2+) lockfiles with inline checksums and V1 lockfiles with
// a [metadata] checksum table are supported:
//
//	lock, err := cargolock.Load("Cargo.lock")
//	pkgs, err := cargolock.Resolve([]*cargolock.Lockfile{lock})
package cargolock
