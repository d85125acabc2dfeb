// Package httputil provides HTTP infrastructure for the crates.io client.
//
// # Overview
//
//   - [Cache]: file-based response caching
//   - [Retry]: automatic retry with exponential backoff
//
// # Caching
//
// [Cache] stores fetched data in the filesystem (~/.cache/cargoport/) with
// a configurable TTL. Crate archives are immutable once published, so the
// crates client uses a TTL of 0 (entries never expire) and relies on
// --refresh for explicit invalidation.
//
// Usage:
//
//	cache, err := httputil.NewCache("", 0)
//	var lock string
//	ok, _ := cache.Get("crates:serde@1.0.0", &lock)
//	if !ok {
//	    lock = fetchFromCratesIO()
//	    cache.Set("crates:serde@1.0.0", lock)
//	}
//
// Cache keys should be namespaced by source to avoid collisions; see
// [Cache.Namespace].
//
// # Retry
//
// [Retry] re-runs an operation when it fails with a [RetryableError]
// (network errors, 5xx responses). Delay doubles after each attempt.
//
// The cache can be cleared via `cargoport cache clear` or by deleting the
// cache directory.
package httputil
