// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package ide

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jetkit/jetkit/pkg/buildconfig"
	"github.com/jetkit/jetkit/pkg/builderrors"
	"github.com/jetkit/jetkit/pkg/coordinates"
	"github.com/jetkit/jetkit/pkg/downloader"
	"github.com/jetkit/jetkit/pkg/extract"
	"github.com/jetkit/jetkit/pkg/memo"
	"github.com/jetkit/jetkit/pkg/repository"
	"github.com/jetkit/jetkit/pkg/utils"
)

// Options parameterize one IDE resolution: either a local installation path
// or a version plus version-type tag must be supplied.
type Options struct {
	LocalPath       string
	Version         string
	VersionType     string
	DownloadSources bool
	// ExtraDependencies are additional bundled artifacts to catalog alongside
	// the distribution; individually missing ones are logged, never fatal.
	ExtraDependencies []coordinates.Coordinate
	// ExtraRepositories are consulted before the configured default repository.
	ExtraRepositories []repository.Descriptor
}

// Resolver resolves the target IDE at most once per configuration pass.
// Every consumer - the runtime resolver, the plugin resolver, packaging tasks -
// reads the same memoized result; only the first read performs network or
// filesystem side effects.
type Resolver struct {
	config     *buildconfig.Config
	downloader *downloader.Downloader
	opts       Options

	cell memo.Cell[*Dependency]
}

func NewResolver(config *buildconfig.Config, d *downloader.Downloader, opts Options) *Resolver {
	return &Resolver{config: config, downloader: d, opts: opts}
}

func (r *Resolver) Resolve(ctx context.Context) (*Dependency, error) {
	return r.cell.GetOrResolve(func() (*Dependency, error) {
		return r.resolve(ctx)
	})
}

func (r *Resolver) resolve(ctx context.Context) (*Dependency, error) {
	if r.opts.LocalPath != "" {
		return r.resolveLocal()
	}
	if r.opts.Version != "" {
		return r.resolveRemote(ctx)
	}
	return nil, builderrors.NewConfigurationError(
		"cannot resolve the target IDE: neither a local installation path nor a version was supplied")
}

func (r *Resolver) resolveLocal() (*Dependency, error) {
	exists, err := utils.DirExists(r.opts.LocalPath)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, builderrors.NewConfigurationError(
			"declared local IDE path %q is not a directory", r.opts.LocalPath)
	}

	return &Dependency{
		BuildNumber: readBuildNumber(r.opts.LocalPath, r.opts.Version),
		InstallDir:  r.opts.LocalPath,
	}, nil
}

func (r *Resolver) resolveRemote(ctx context.Context) (*Dependency, error) {
	versionType := r.opts.VersionType
	if versionType == "" {
		versionType = "IC"
	}
	prod, err := productFor(versionType)
	if err != nil {
		return nil, builderrors.NewConfigurationError("%s", err.Error())
	}

	repos := append(append([]repository.Descriptor{}, r.opts.ExtraRepositories...),
		repository.Standard{BaseURL: r.repositoryURL()})

	coord := coordinates.New(prod.group, prod.name, r.opts.Version)
	files, err := r.downloader.Resolve(ctx, coord, repos)
	if err != nil {
		return nil, err
	}

	installDir := filepath.Join(r.config.IdesPath, fmt.Sprintf("%s-%s", prod.name, r.opts.Version))
	if err := extract.Extract(ctx, files[0], installDir); err != nil {
		return nil, err
	}
	installDir = descendSingleDir(installDir)

	dep := &Dependency{
		BuildNumber: readBuildNumber(installDir, r.opts.Version),
		InstallDir:  installDir,
	}

	if r.opts.DownloadSources {
		sources := coord.WithClassifier("sources").WithExtension("jar")
		if sourceFiles, err := r.downloader.Resolve(ctx, sources, repos); err != nil {
			slog.Warn("IDE source jars are not available, continuing without them", "coordinate", sources.String(), "err", err.Error())
		} else {
			dep.SourcesPath = sourceFiles[0]
		}
	}

	for _, extra := range r.opts.ExtraDependencies {
		if _, err := r.downloader.Resolve(ctx, extra, repos); err != nil {
			slog.Warn("extra IDE dependency is not available, continuing without it", "coordinate", extra.String(), "err", err.Error())
			continue
		}
		dep.ExtraDependencies = append(dep.ExtraDependencies, extra)
	}

	return dep, nil
}

func (r *Resolver) repositoryURL() string {
	if isSnapshot(r.opts.Version) {
		return r.config.SnapshotsRepository
	}
	return r.config.ReleasesRepository
}

// descendSingleDir unwraps an archive's single top-level directory, the usual
// shape of product distributions.
func descendSingleDir(dir string) string {
	entries, err := os.ReadDir(dir)
	if err == nil && len(entries) == 1 && entries[0].IsDir() {
		return filepath.Join(dir, entries[0].Name())
	}
	return dir
}
