// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package plugins

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jetkit/jetkit/pkg/builderrors"
	"github.com/jetkit/jetkit/pkg/buildnumber"
)

// BuiltinDependency is an extension module shipped inside the IDE
// installation itself, resolved by ID without any download. Being part of
// the IDE, it is compatible with it by construction.
type BuiltinDependency struct {
	PluginId string
	Dir      string
}

func (d *BuiltinDependency) Id() string {
	return d.PluginId
}

func (d *BuiltinDependency) CheckCompatibility(buildnumber.BuildNumber) error {
	return nil
}

func (d *BuiltinDependency) Path() string {
	return d.Dir
}

// LocalProjectDependency points at a sibling build unit's prepared output
// directory. It imposes a build-ordering constraint on the consumer (the
// sibling's packaging step must run first) rather than a content dependency,
// so compatibility is the sibling's own concern.
type LocalProjectDependency struct {
	OutputDir string
}

func (d *LocalProjectDependency) Id() string {
	return filepath.Base(d.OutputDir)
}

func (d *LocalProjectDependency) CheckCompatibility(buildnumber.BuildNumber) error {
	return nil
}

func (d *LocalProjectDependency) Path() string {
	return d.OutputDir
}

// MarketplaceDependency is a downloaded plugin with the compatibility range
// it declares in its descriptor.
type MarketplaceDependency struct {
	PluginId string
	Version  string
	Channel  string
	Dir      string

	// declared compatibility range; empty means unbounded on that side
	SinceBuild string
	UntilBuild string
}

func (d *MarketplaceDependency) Id() string {
	return d.PluginId
}

func (d *MarketplaceDependency) Path() string {
	return d.Dir
}

func (d *MarketplaceDependency) CheckCompatibility(ideBuild buildnumber.BuildNumber) error {
	if withinRange(ideBuild, d.SinceBuild, d.UntilBuild) {
		return nil
	}
	return &builderrors.IncompatibilityError{
		Descriptor: d.PluginId + ":" + d.Version,
		IdeBuild:   ideBuild.String(),
		Since:      d.SinceBuild,
		Until:      d.UntilBuild,
	}
}

// withinRange checks since <= build <= until. The until bound supports the
// conventional trailing wildcard ("211.*"): comparison is truncated to the
// wildcard's leading components.
func withinRange(build buildnumber.BuildNumber, since, until string) bool {
	if since != "" {
		if s, ok := buildnumber.Parse(since); ok && build.LessThan(s) {
			return false
		}
	}

	if until == "" {
		return true
	}

	wildcard := strings.HasSuffix(until, "*")
	u, ok := buildnumber.Parse(strings.TrimSuffix(until, "*"))
	if !ok {
		return true
	}
	if wildcard {
		return !u.LessThan(truncate(build, len(u.Components())))
	}
	return !u.LessThan(build)
}

// truncate keeps the first n components of a build number.
func truncate(b buildnumber.BuildNumber, n int) buildnumber.BuildNumber {
	components := b.Components()
	if len(components) <= n {
		return b
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = strconv.Itoa(components[i])
	}
	truncated, _ := buildnumber.Parse(strings.Join(parts, "."))
	return truncated
}

var (
	_ Dependency = (*BuiltinDependency)(nil)
	_ Dependency = (*LocalProjectDependency)(nil)
	_ Dependency = (*MarketplaceDependency)(nil)
)
