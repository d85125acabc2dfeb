// Package pkg provides the core libraries behind the cargoport CLI.
//
// # Overview
//
// cargoport turns Cargo.lock documents into the cargo.crates block of a
// MacPorts Portfile. The packages here follow that flow:
//
//	Cargo.lock (file / stdin / crates.io archive)
//	         ↓
//	    [cargolock] parse + resolve (dedup, filter, sort)
//	         ↓
//	    [portfile] format under an alignment mode
//	         ↓
//	    cargo.crates text block
//
// Supporting packages: [integrations] and [integrations/crates] fetch
// published crate archives, [httputil] provides the download cache and
// retry policy, [errors] the coded error type, and [buildinfo] the
// ldflags-injected version metadata.
package pkg
