// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package buildconfig

const envVarPrefix = "JETKIT_"

const (
	// JetkitHomeEnvVar
	// JETKIT_HOME is the absolute path to the `jetkit` home directory
	JetkitHomeEnvVar = envVarPrefix + "HOME"

	// LogLevelEnvVar
	// JETKIT_LOG_LEVEL sets the log level for the tool.
	// 	Default: info
	//  Possible values: debug info warn error
	LogLevelEnvVar = envVarPrefix + "LOG_LEVEL"

	// OfflineEnvVar
	// JETKIT_OFFLINE forbids network access. Every resolution must be served
	// from the local download/extraction cache, otherwise it fails.
	OfflineEnvVar = envVarPrefix + "OFFLINE"

	// ReleasesRepositoryEnvVar
	// JETKIT_RELEASES_REPOSITORY overrides the repository URL from which
	// release IDE distributions are downloaded
	ReleasesRepositoryEnvVar = envVarPrefix + "RELEASES_REPOSITORY"

	// SnapshotsRepositoryEnvVar
	// JETKIT_SNAPSHOTS_REPOSITORY overrides the repository URL from which
	// EAP (snapshot) IDE distributions are downloaded
	SnapshotsRepositoryEnvVar = envVarPrefix + "SNAPSHOTS_REPOSITORY"

	// RuntimeRepositoryEnvVar
	// JETKIT_RUNTIME_REPOSITORY overrides the repository URL from which
	// runtime (JBR) archives are downloaded
	RuntimeRepositoryEnvVar = envVarPrefix + "RUNTIME_REPOSITORY"

	// MarketplaceRepositoryEnvVar
	// JETKIT_MARKETPLACE_REPOSITORY overrides the plugin marketplace
	// repository URL
	MarketplaceRepositoryEnvVar = envVarPrefix + "MARKETPLACE_REPOSITORY"

	// NetrcPathEnvVar
	// JETKIT_NETRC overrides the netrc file consulted for repository
	// credentials.
	// 	default: $HOME/.netrc
	NetrcPathEnvVar = envVarPrefix + "NETRC"

	// ProjectEnvVar
	// JETKIT_PROJECT is a path to a plugin project directory.
	// This allows running a command against a project without changing directory
	ProjectEnvVar = envVarPrefix + "PROJECT"

	// ReportFilePathEnvVar
	// Allows overriding the output file path for the resolution report
	ReportFilePathEnvVar = envVarPrefix + "REPORT_FILE"

	// IdeVersionEnvVar
	// JETKIT_IDE_VERSION is a global override for the target IDE version.
	// It overrides the version specified in any and all jetkit.yaml(s).
	IdeVersionEnvVar = envVarPrefix + "IDE_VERSION"
)
