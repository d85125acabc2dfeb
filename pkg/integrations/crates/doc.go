// Package crates retrieves published crate archives from the crates.io
// registry and extracts the Cargo.lock file each archive embeds.
//
// # Overview
//
// crates.io serves published crates as gzip-compressed tar archives at
//
//	https://crates.io/api/v1/crates/NAME/VERSION/download
//
// Since Rust 1.40, `cargo package` includes the project's Cargo.lock in the
// archive, which makes the full pinned dependency set of a published crate
// recoverable without building it. Archives published before that may not
// carry one; that case surfaces as a MISSING_LOCKFILE error.
//
// # Usage
//
//	cache, _ := httputil.NewCache("", 0)
//	client := crates.NewClient(cache)
//	lock, err := client.FetchLockfile(ctx, "ripgrep", "14.1.0", false)
//
// Fetched lockfile text is cached on disk; pass refresh=true to force a
// re-download.
package crates
