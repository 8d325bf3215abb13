// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package jbr resolves abstract runtime-version tokens to concrete runtime
// installations. Archive naming conventions evolved over product history;
// the rule table below reproduces them bit-exact, since a single wrong
// character means the archive is never found.
package jbr

import (
	"strings"

	"github.com/jetkit/jetkit/pkg/buildnumber"
	"github.com/jetkit/jetkit/pkg/platform"
	"github.com/jetkit/jetkit/pkg/repository"
)

const (
	// naming-era thresholds, in runtime build numbers
	oldFormatMaxBuild = "1483.24"
	jcefMinBuild      = "1319.6"
)

// Artifact is the downloadable form of one runtime version on one platform.
// It is a pure function of {version token, OS, architecture}: identical
// inputs always produce the identical archive name, which is what makes the
// download cache reusable across passes.
type Artifact struct {
	// Name is the canonical archive name, without the file extension.
	Name string
	// RepositoryURL is the runtime repository the archive lives in.
	RepositoryURL string
}

// Repositories is the pattern-layout repository list the archive is fetched
// from: runtime archives are flat files named after the artifact.
func (a Artifact) Repositories() []repository.Descriptor {
	return []repository.Descriptor{
		repository.Pattern{BaseURL: a.RepositoryURL, ArtifactPattern: "[artifact].tar.gz"},
	}
}

// DeriveArtifact derives the archive coordinate for a runtime version token
// such as "11_0_2b159" or "jbrsdk-17_0_3b469.37".
func DeriveArtifact(versionToken string, p platform.Platform, repositoryURL string) Artifact {
	return Artifact{
		Name:          DeriveArtifactName(versionToken, p),
		RepositoryURL: repositoryURL,
	}
}

// DeriveArtifactName reproduces the vendor's archive naming rules.
//
// The token is an optional literal prefix followed by a major version, a 'b'
// separator and a build number. Java-8-era archives below build 1483.24 (and
// anything explicitly prefixed jbrex) use the old underscore format; newer
// archives use the dashed format with a prefix synthesized from the build
// number when the token carries none.
func DeriveArtifactName(versionToken string, p platform.Platform) string {
	prefix, remainder := splitPrefix(versionToken)
	majorVersion, buildNumber := splitAtLastB(remainder)
	isJava8 := strings.HasPrefix(majorVersion, "8")

	if prefix == "jbrex" || (isJava8 && buildLessThan(buildNumber, oldFormatMaxBuild)) {
		return "jbrex" + majorVersion + "b" + buildNumber +
			"_" + platformName(p) + "_" + archName(p, true)
	}

	if prefix == "" {
		switch {
		case isJava8:
			prefix = "jbrx-"
		case buildLessThan(buildNumber, jcefMinBuild):
			prefix = "jbr-"
		default:
			prefix = "jbr_jcef-"
		}
	}
	return prefix + majorVersion +
		"-" + platformName(p) + "-" + archName(p, isJava8) + "-b" + buildNumber
}

// splitPrefix recognizes the known literal prefixes, most specific first.
// "jbrex8..." keeps its major version: only "jbrex" is the prefix.
func splitPrefix(versionToken string) (prefix, remainder string) {
	switch {
	case strings.HasPrefix(versionToken, "jbrsdk-"):
		prefix = "jbrsdk-"
	case strings.HasPrefix(versionToken, "jbr_jcef-"):
		prefix = "jbr_jcef-"
	case strings.HasPrefix(versionToken, "jbr-"):
		prefix = "jbr-"
	case strings.HasPrefix(versionToken, "jbrx-"):
		prefix = "jbrx-"
	case strings.HasPrefix(versionToken, "jbrex8"):
		prefix = "jbrex"
	}
	return prefix, strings.TrimPrefix(versionToken, prefix)
}

func splitAtLastB(s string) (majorVersion, buildNumber string) {
	if i := strings.LastIndexByte(s, 'b'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

// buildLessThan treats a missing or non-numeric build number as zero, which
// matches how the historical tokens were ordered.
func buildLessThan(build, threshold string) bool {
	t, ok := buildnumber.Parse(threshold)
	if !ok {
		return false
	}
	b, ok := buildnumber.Parse(build)
	if !ok {
		return true
	}
	return b.LessThan(t)
}

func platformName(p platform.Platform) string {
	switch p.OS {
	case "windows":
		return "windows"
	case "darwin":
		return "osx"
	default:
		return "linux"
	}
}

// archName maps the machine architecture onto the vendor's archive arch
// component. legacy selects the pre-1483.24 spelling of 32-bit x86.
func archName(p platform.Platform, legacy bool) string {
	switch strings.ToLower(p.Arch) {
	case "aarch64", "arm64":
		return "aarch64"
	case "x86_64", "amd64":
		return "x64"
	}
	if p.IsWindows() && p.Is64Bit() {
		return "x64"
	}
	if legacy {
		return "x86"
	}
	return "i586"
}
