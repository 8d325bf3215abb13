// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pipeline drives one resolution pass: the target IDE first, then
// the extension dependencies and the runtime, which both consume the IDE's
// memoized result. The low-level downloader and extractor are shared by all
// three resolvers.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jetkit/jetkit/pkg/buildconfig"
	"github.com/jetkit/jetkit/pkg/coordinates"
	"github.com/jetkit/jetkit/pkg/downloader"
	"github.com/jetkit/jetkit/pkg/ide"
	"github.com/jetkit/jetkit/pkg/jbr"
	"github.com/jetkit/jetkit/pkg/platform"
	"github.com/jetkit/jetkit/pkg/plugins"
	"github.com/jetkit/jetkit/pkg/project"
	"github.com/jetkit/jetkit/pkg/report"
	"github.com/jetkit/jetkit/pkg/repository"
	"github.com/samber/lo"
)

type Pipeline struct {
	config     *buildconfig.Config
	downloader *downloader.Downloader
	platform   platform.Platform

	spec        *project.Spec
	projectDir  string
	extraRepos  []repository.Descriptor
	ideResolver *ide.Resolver
}

func New(config *buildconfig.Config, proj *project.Project, projectDir string) (*Pipeline, error) {
	extraCoords, err := proj.Spec.Ide.ExtraCoordinates()
	if err != nil {
		return nil, err
	}

	extraRepos := lo.Map(proj.Spec.Repositories, func(url string, _ int) repository.Descriptor {
		return repository.Standard{BaseURL: url}
	})

	d := downloader.New(config)
	return &Pipeline{
		config:     config,
		downloader: d,
		platform:   platform.Current(),
		spec:       proj.Spec,
		projectDir: projectDir,
		extraRepos: extraRepos,
		ideResolver: ide.NewResolver(config, d, ide.Options{
			LocalPath:         proj.Spec.Ide.LocalPath,
			Version:           proj.Spec.EffectiveIdeVersion(),
			VersionType:       proj.Spec.Ide.Type,
			DownloadSources:   proj.Spec.Ide.DownloadSources,
			ExtraDependencies: extraCoords,
			ExtraRepositories: extraRepos,
		}),
	}, nil
}

// IdeResolver exposes the pass's memoized IDE resolution for consumers
// outside the full pipeline (e.g. the standalone runtime command).
func (p *Pipeline) IdeResolver() *ide.Resolver {
	return p.ideResolver
}

// Run performs the full resolution pass. IDE and plugin failures are fatal -
// downstream tasks have no sensible default for either - while a missing
// runtime only produces a report entry.
func (p *Pipeline) Run(ctx context.Context) (*report.Resolution, error) {
	result := report.New(p.spec.Name)

	if vcs, err := report.CollectVcsInfo(p.projectDir); err != nil {
		slog.Debug("could not collect VCS info", "err", err.Error())
	} else {
		result.Vcs = vcs
	}

	ideDep, err := p.ideResolver.Resolve(ctx)
	if err != nil {
		result.AddError(err)
		return result, err
	}
	result.Ide = &report.IdeResult{
		Version:     p.spec.EffectiveIdeVersion(),
		BuildNumber: ideDep.BuildNumber.String(),
		InstallDir:  ideDep.InstallDir,
		SourcesPath: ideDep.SourcesPath,
		ExtraDeps: lo.Map(ideDep.ExtraDependencies, func(c coordinates.Coordinate, _ int) string {
			return c.String()
		}),
	}

	pluginDeps, err := plugins.NewResolver(p.config, p.downloader, ideDep, p.extraRepos...).ResolveAll(ctx, p.spec.Plugins)
	if err != nil {
		result.AddError(err)
		return result, err
	}
	result.Plugins = lo.Map(pluginDeps, func(dep plugins.Dependency, _ int) *report.DepResult {
		return depResult(dep)
	})

	runtimeOpts := jbr.Options{IdeDir: ideDep.InstallDir}
	if p.spec.Runtime != nil {
		runtimeOpts.ExplicitDir = p.spec.Runtime.Dir
		runtimeOpts.VersionToken = p.spec.Runtime.Version
	}
	executable, ok := jbr.NewResolver(p.config, p.downloader, p.platform).ResolveExecutable(ctx, runtimeOpts)
	if !ok {
		result.AddError(fmt.Errorf("no usable runtime could be resolved for this build"))
	} else {
		result.Runtime = &report.JbrResult{Token: runtimeOpts.VersionToken, Executable: executable}
	}

	return result, nil
}

func depResult(dep plugins.Dependency) *report.DepResult {
	r := &report.DepResult{Id: dep.Id(), Path: dep.Path()}
	switch d := dep.(type) {
	case *plugins.MarketplaceDependency:
		r.Kind = "marketplace"
		r.Version = d.Version
	case *plugins.BuiltinDependency:
		r.Kind = "builtin"
	case *plugins.LocalProjectDependency:
		r.Kind = "local-project"
	}
	return r
}
