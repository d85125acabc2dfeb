package crates

import (
	"archive/tar"
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/cargoport/cargoport/pkg/errors"
	"github.com/cargoport/cargoport/pkg/httputil"
	"github.com/cargoport/cargoport/pkg/integrations"
)

// lockfileName is the tar entry name a published crate must carry for its
// dependency set to be recoverable.
const lockfileName = "Cargo.lock"

// Client retrieves published crate archives from crates.io and extracts
// the Cargo.lock they embed.
//
// Extracted lockfile text is cached on disk keyed by name@version.
// Published archives are immutable, so cached entries never expire;
// refresh forces a re-download.
//
// Note: crates.io requires a User-Agent header; this client sets one
// automatically.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a crates.io client backed by the given cache.
// Entries are namespaced under "crates:" within the cache directory.
func NewClient(cache *httputil.Cache) *Client {
	headers := map[string]string{
		"User-Agent": "cargoport/1.0 (https://github.com/cargoport/cargoport)",
	}
	return &Client{
		Client:  integrations.NewClient(cache.Namespace("crates:"), headers),
		baseURL: "https://crates.io/api/v1",
	}
}

// FetchLockfile downloads the published archive for name@version and
// returns the text of the Cargo.lock entry inside it.
//
// Returns:
//   - NOT_FOUND if the crate or version doesn't exist
//   - NETWORK_ERROR for transport failures (after retries)
//   - MISSING_LOCKFILE if the archive carries no Cargo.lock entry
//   - IO_ERROR if the archive cannot be decompressed or read
func (c *Client) FetchLockfile(ctx context.Context, name, version string, refresh bool) (string, error) {
	key := name + "@" + version

	var contents string
	err := c.Cached(ctx, key, refresh, &contents, func() error {
		data, err := c.download(ctx, name, version)
		if err != nil {
			return err
		}
		lock, err := extractLockfile(data)
		if err != nil {
			return err
		}
		contents = lock
		return nil
	})
	if err != nil {
		return "", err
	}
	return contents, nil
}

func (c *Client) download(ctx context.Context, name, version string) ([]byte, error) {
	url := fmt.Sprintf("%s/crates/%s/%s/download", c.baseURL, name, version)

	data, err := c.GetBytes(ctx, url)
	if err != nil {
		if stderrors.Is(err, integrations.ErrNotFound) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "crate %s@%s not found", name, version)
		}
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "download %s@%s", name, version)
	}
	return data, nil
}

// extractLockfile scans the gzip-compressed tar archive for the entry
// whose base name is Cargo.lock and returns its contents.
func extractLockfile(archive []byte) (string, error) {
	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "decompress crate archive")
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeIO, err, "read crate archive")
		}
		if path.Base(hdr.Name) != lockfileName {
			continue
		}

		var contents strings.Builder
		if _, err := io.Copy(&contents, tr); err != nil {
			return "", errors.Wrap(errors.ErrCodeIO, err, "read %s entry", lockfileName)
		}
		return contents.String(), nil
	}

	return "", errors.New(errors.ErrCodeMissingLockfile, "crate missing %s file", lockfileName)
}
