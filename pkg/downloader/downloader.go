// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package downloader resolves dependency coordinates against ordered
// repository lists. It is the single seam through which all network access
// flows: everything above it deals in coordinates and local files only.
package downloader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/user"
	"path/filepath"

	"github.com/jdx/go-netrc"
	"github.com/jetkit/jetkit/pkg/buildconfig"
	"github.com/jetkit/jetkit/pkg/builderrors"
	"github.com/jetkit/jetkit/pkg/coordinates"
	"github.com/jetkit/jetkit/pkg/repository"
	"github.com/jetkit/jetkit/pkg/utils"
	"github.com/samber/lo"
)

type Downloader struct {
	config *buildconfig.Config
	client *http.Client
}

func New(config *buildconfig.Config) *Downloader {
	return &Downloader{
		config: config,
		client: http.DefaultClient,
	}
}

// Resolve locates the artifact identified by coord, trying the caller's
// repositories in order and then the default fallback, in a single pass with
// no retries. It returns the set of local files materialized under the
// download cache.
//
// The repository list is a call-scoped argument: nothing about it outlives
// the call, so one resolution can never observe another's repositories.
func (d *Downloader) Resolve(ctx context.Context, coord coordinates.Coordinate, repos []repository.Descriptor) ([]string, error) {
	cachedFile := filepath.Join(d.config.DownloadsPath, filepath.FromSlash(coord.Path()))
	if utils.FileExists(cachedFile) {
		slog.Debug("download cache hit", "coordinate", coord.String(), "file", cachedFile)
		return []string{cachedFile}, nil
	}

	repos = append(append([]repository.Descriptor{}, repos...), repository.DefaultFallback())

	if d.config.Offline {
		return nil, builderrors.NewConfigurationError(
			"offline mode is enabled and %q is not present in the download cache", coord.String())
	}

	triedURLs := lo.Map(repos, func(r repository.Descriptor, _ int) string {
		return r.URL()
	})

	var lastErr error
	for _, repo := range repos {
		artifactURL := repo.ArtifactURL(coord)
		if err := d.download(ctx, artifactURL, cachedFile); err != nil {
			slog.Debug("artifact not available", "url", artifactURL, "err", err.Error())
			lastErr = err
			continue
		}
		return []string{cachedFile}, nil
	}

	return nil, builderrors.NewResolutionError(coord.String(), triedURLs, lastErr)
}

func (d *Downloader) download(ctx context.Context, artifactURL, destFile string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, artifactURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", buildconfig.UserAgentPrefix)

	if username, password, ok := d.credentialsFor(artifactURL); ok {
		req.SetBasicAuth(username, password)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %q for %s", resp.Status, artifactURL)
	}

	if err := utils.EnsureDirs(filepath.Dir(destFile)); err != nil {
		return err
	}

	// download to a temp sibling first so a cached file is always complete
	tmp, err := os.CreateTemp(filepath.Dir(destFile), filepath.Base(destFile)+".part*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), destFile)
}

// credentialsFor looks the artifact host up in the user's netrc file.
// A missing or unreadable netrc simply means anonymous access.
func (d *Downloader) credentialsFor(artifactURL string) (username, password string, ok bool) {
	u, err := url.Parse(artifactURL)
	if err != nil {
		return "", "", false
	}

	netrcPath := d.config.NetrcPath
	if netrcPath == "" {
		usr, err := user.Current()
		if err != nil {
			return "", "", false
		}
		netrcPath = filepath.Join(usr.HomeDir, ".netrc")
	}

	n, err := netrc.Parse(netrcPath)
	if err != nil {
		return "", "", false
	}

	machine := n.Machine(u.Hostname())
	if machine == nil {
		return "", "", false
	}
	return machine.Get("login"), machine.Get("password"), true
}
