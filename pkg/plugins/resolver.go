// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package plugins

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/jetkit/jetkit/pkg/buildconfig"
	"github.com/jetkit/jetkit/pkg/builderrors"
	"github.com/jetkit/jetkit/pkg/coordinates"
	"github.com/jetkit/jetkit/pkg/downloader"
	"github.com/jetkit/jetkit/pkg/extract"
	"github.com/jetkit/jetkit/pkg/ide"
	"github.com/jetkit/jetkit/pkg/repository"
	"github.com/jetkit/jetkit/pkg/utils"
)

const marketplaceGroup = "com.jetbrains.plugins"

type Resolver struct {
	config     *buildconfig.Config
	downloader *downloader.Downloader
	ide        *ide.Dependency

	// extraRepos are consulted before the marketplace repository
	extraRepos []repository.Descriptor
}

func NewResolver(config *buildconfig.Config, d *downloader.Downloader, ideDep *ide.Dependency, extraRepos ...repository.Descriptor) *Resolver {
	return &Resolver{config: config, downloader: d, ide: ideDep, extraRepos: extraRepos}
}

// ResolveAll resolves every declared dependency descriptor and gates each
// resolved dependency against the target IDE build. An incompatible or
// unresolvable dependency fails the whole resolution: a broken extension set
// would corrupt every downstream task, so nothing is silently skipped.
func (r *Resolver) ResolveAll(ctx context.Context, rawDescriptors []string) ([]Dependency, error) {
	resolved := make([]Dependency, 0, len(rawDescriptors))
	for _, raw := range rawDescriptors {
		descriptor, err := ParseDescriptor(raw)
		if err != nil {
			return nil, err
		}

		dep, err := r.resolveOne(ctx, descriptor)
		if err != nil {
			return nil, err
		}
		if err := dep.CheckCompatibility(r.ide.BuildNumber); err != nil {
			return nil, err
		}
		resolved = append(resolved, dep)
	}
	return resolved, nil
}

func (r *Resolver) resolveOne(ctx context.Context, d Descriptor) (Dependency, error) {
	if d.IsLocal() {
		return r.resolveLocal(d)
	}
	if d.Version == "" {
		return r.resolveBuiltin(d)
	}
	return r.resolveMarketplace(ctx, d)
}

func (r *Resolver) resolveLocal(d Descriptor) (Dependency, error) {
	exists, err := utils.DirExists(d.LocalPath)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, builderrors.NewResolutionError(d.Raw, nil,
			fmt.Errorf("sibling build unit output %q does not exist; its packaging step must run first", d.LocalPath))
	}
	return &LocalProjectDependency{OutputDir: d.LocalPath}, nil
}

func (r *Resolver) resolveBuiltin(d Descriptor) (Dependency, error) {
	dir, ok := r.ide.BundledPluginDir(d.Id)
	if !ok {
		return nil, builderrors.NewResolutionError(d.Raw, nil,
			fmt.Errorf("plugin %q is not bundled with the resolved IDE (no version was declared, so only the IDE's own modules were searched)", d.Id))
	}
	return &BuiltinDependency{PluginId: d.Id, Dir: dir}, nil
}

func (r *Resolver) resolveMarketplace(ctx context.Context, d Descriptor) (Dependency, error) {
	// marketplace versions are conventionally semver, but historical plugins
	// use free-form versions too, so this is advisory only
	if _, err := semver.NewVersion(d.Version); err != nil {
		slog.Debug("plugin version is not semver, using it verbatim", "plugin", d.Id, "version", d.Version)
	}

	group := marketplaceGroup
	if d.Channel != "" {
		group = d.Channel + "." + marketplaceGroup
	}
	coord := coordinates.New(group, d.Id, d.Version)

	repos := append(append([]repository.Descriptor{}, r.extraRepos...),
		repository.Standard{BaseURL: r.config.MarketplaceRepository})
	files, err := r.downloader.Resolve(ctx, coord, repos)
	if err != nil {
		return nil, err
	}

	pluginDir := filepath.Join(r.config.PluginsPath, fmt.Sprintf("%s-%s", d.Id, d.Version))
	if err := extract.Extract(ctx, files[0], pluginDir); err != nil {
		return nil, err
	}

	dep := &MarketplaceDependency{
		PluginId: d.Id,
		Version:  d.Version,
		Channel:  d.Channel,
		Dir:      pluginDir,
	}
	if descriptor, ok := readPluginXml(pluginDir); ok {
		dep.SinceBuild = descriptor.IdeaVersion.SinceBuild
		dep.UntilBuild = descriptor.IdeaVersion.UntilBuild
	}
	return dep, nil
}
