package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cargoport/cargoport/pkg/cargolock"
	"github.com/cargoport/cargoport/pkg/errors"
	"github.com/cargoport/cargoport/pkg/httputil"
	"github.com/cargoport/cargoport/pkg/integrations/crates"
)

// crateSpecPrefix marks a source argument as a crates.io fetch.
const crateSpecPrefix = "crate:"

// readPackages loads every source in order and resolves the merged,
// deduplicated, sorted package sequence. A failure on any source aborts
// the whole run; there are no partial results.
func readPackages(ctx context.Context, sources []string, opts *generateOpts) ([]cargolock.Package, error) {
	logger := loggerFromContext(ctx)

	var fetcher *crates.Client
	lockfiles := make([]*cargolock.Lockfile, 0, len(sources))

	for _, source := range sources {
		var (
			lock *cargolock.Lockfile
			err  error
		)
		switch {
		case source == "-":
			logger.Debug("Reading lockfile from stdin")
			lock, err = lockfileFromStdin(opts.stdin)
		case strings.HasPrefix(source, crateSpecPrefix):
			var name, version string
			name, version, err = parseCrateSpec(strings.TrimPrefix(source, crateSpecPrefix))
			if err != nil {
				return nil, err
			}
			if fetcher == nil {
				if fetcher, err = newFetcher(); err != nil {
					return nil, err
				}
			}
			lock, err = lockfileFromCrate(ctx, fetcher, name, version, opts.refresh)
		default:
			logger.Debugf("Reading lockfile %s", source)
			lock, err = cargolock.Load(source)
		}
		if err != nil {
			return nil, err
		}
		lockfiles = append(lockfiles, lock)
	}

	return cargolock.Resolve(lockfiles)
}

// newFetcher creates the crates.io client on first use. Crate archives are
// immutable, so the cache has no TTL.
func newFetcher() (*crates.Client, error) {
	cache, err := httputil.NewCache("", 0)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open crate cache")
	}
	return crates.NewClient(cache), nil
}

// lockfileFromStdin reads r to EOF and parses the contents as a Cargo.lock.
func lockfileFromStdin(r io.Reader) (*cargolock.Lockfile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read stdin")
	}
	return cargolock.Parse(string(data))
}

// lockfileFromCrate fetches the Cargo.lock embedded in a published crate.
func lockfileFromCrate(ctx context.Context, fetcher *crates.Client, name, version string, refresh bool) (*cargolock.Lockfile, error) {
	spin := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching %s@%s from crates.io", name, version))
	spin.Start()
	contents, err := fetcher.FetchLockfile(ctx, name, version, refresh)
	spin.Stop()
	if err != nil {
		return nil, err
	}

	return cargolock.Parse(contents)
}

// parseCrateSpec splits a NAME@VERSION crate specifier.
func parseCrateSpec(spec string) (name, version string, err error) {
	parts := strings.Split(spec, "@")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.New(errors.ErrCodeInvalidCrateSpec, "invalid crate specifier: %s (expected NAME@VERSION)", spec)
	}
	return parts[0], parts[1], nil
}
