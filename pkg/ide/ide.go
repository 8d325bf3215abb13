// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package ide resolves a target IDE version to a local installation, either
// from a declared filesystem path or by downloading and extracting a product
// distribution.
package ide

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetkit/jetkit/pkg/buildconfig"
	"github.com/jetkit/jetkit/pkg/buildnumber"
	"github.com/jetkit/jetkit/pkg/coordinates"
	"github.com/jetkit/jetkit/pkg/utils"
)

// Dependency is the resolved target IDE of one configuration pass.
type Dependency struct {
	BuildNumber buildnumber.BuildNumber
	InstallDir  string
	// SourcesPath points at the downloaded source jars, when requested and available
	SourcesPath string
	// ExtraDependencies are the bundled dependency coordinates that resolved
	ExtraDependencies []coordinates.Coordinate
}

// BundledPluginDir returns the installation directory of a bundled extension
// module, resolved by ID without any network fetch.
func (d *Dependency) BundledPluginDir(pluginId string) (string, bool) {
	dir := filepath.Join(d.InstallDir, buildconfig.BundledPluginsDir, pluginId)
	exists, err := utils.DirExists(dir)
	return dir, err == nil && exists
}

// product maps a version-type tag onto its distribution coordinate.
type product struct {
	group string
	name  string
}

var products = map[string]product{
	"IC": {"com.jetbrains.intellij.idea", "ideaIC"},
	"IU": {"com.jetbrains.intellij.idea", "ideaIU"},
	"CL": {"com.jetbrains.intellij.clion", "clion"},
	"PC": {"com.jetbrains.intellij.pycharm", "pycharmPC"},
	"PY": {"com.jetbrains.intellij.pycharm", "pycharmPY"},
	"GO": {"com.jetbrains.intellij.goland", "goland"},
	"RD": {"com.jetbrains.intellij.rider", "riderRD"},
}

func productFor(versionType string) (product, error) {
	p, ok := products[versionType]
	if !ok {
		return product{}, fmt.Errorf("unknown IDE version type %q", versionType)
	}
	return p, nil
}

// isSnapshot reports whether a version follows the EAP naming convention and
// therefore lives in the snapshots repository.
func isSnapshot(version string) bool {
	return strings.HasSuffix(version, "-SNAPSHOT") || strings.Contains(version, "-EAP-")
}

// readBuildNumber reads the installation's build.txt ("IC-211.7628.21");
// the product code component is ignored by the parser.
func readBuildNumber(installDir, fallback string) buildnumber.BuildNumber {
	raw := fallback
	if contents, err := os.ReadFile(filepath.Join(installDir, buildconfig.BuildNumberFile)); err == nil {
		raw = strings.TrimSpace(string(contents))
	}

	if bn, ok := buildnumber.Parse(raw); ok {
		return bn
	}
	bn, _ := buildnumber.Parse(fallback)
	return bn
}
