// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package repository

import (
	"strings"

	"github.com/jetkit/jetkit/pkg/buildconfig"
	"github.com/jetkit/jetkit/pkg/coordinates"
)

// Descriptor is one candidate repository location. Repositories are tried in
// the order the caller lists them; the first one that yields a match wins.
type Descriptor interface {
	// URL is the repository base URL, used for diagnostics.
	URL() string
	// ArtifactURL derives the full download URL of the given coordinate.
	ArtifactURL(c coordinates.Coordinate) string
}

// Standard is a conventional package repository: artifacts live under
// group/name/version paths below the base URL.
type Standard struct {
	BaseURL string
}

func (r Standard) URL() string {
	return r.BaseURL
}

func (r Standard) ArtifactURL(c coordinates.Coordinate) string {
	return strings.TrimSuffix(r.BaseURL, "/") + "/" + c.Path()
}

// Pattern is a flat-URL repository for non-standard archive naming schemes
// (runtime and product-release archives). The pattern is expanded with
// [artifact], [revision], [classifier] and [ext] placeholders.
type Pattern struct {
	BaseURL string
	// ArtifactPattern, e.g. "[artifact].tar.gz" or "[artifact]-[revision].[ext]"
	ArtifactPattern string
}

func (r Pattern) URL() string {
	return r.BaseURL
}

func (r Pattern) ArtifactURL(c coordinates.Coordinate) string {
	expanded := strings.NewReplacer(
		"[artifact]", c.Name,
		"[revision]", c.Version,
		"[classifier]", c.Classifier,
		"[ext]", c.ExtensionOrDefault(),
	).Replace(r.ArtifactPattern)
	return strings.TrimSuffix(r.BaseURL, "/") + "/" + expanded
}

var (
	_ Descriptor = Standard{}
	_ Descriptor = Pattern{}
)

// DefaultFallback is appended to every resolution attempt, after all
// caller-supplied repositories.
func DefaultFallback() Descriptor {
	return Standard{BaseURL: buildconfig.DefaultFallbackRepository}
}
