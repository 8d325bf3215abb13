// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package buildconfig

const (
	ProjectFilename   = "jetkit.yaml"
	ConfigFileName    = "jetkit-config.yaml"
	ReportFileName    = "jetkit-resolution.yaml"
	DependenciesFile  = "dependencies.txt"
	BuildNumberFile   = "build.txt"
	BundledPluginsDir = "plugins"

	// stable prod repositories as the defaults
	DefaultReleasesRepository    = "https://www.jetbrains.com/intellij-repository/releases"
	DefaultSnapshotsRepository   = "https://www.jetbrains.com/intellij-repository/snapshots"
	DefaultRuntimeRepository     = "https://cache-redirector.jetbrains.com/intellij-jbr"
	DefaultMarketplaceRepository = "https://plugins.jetbrains.com/maven"
	DefaultFallbackRepository    = "https://cache-redirector.jetbrains.com/intellij-dependencies"

	UserAgentPrefix = "jetkit"
)
