// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package plugins resolves declared extension-module dependencies against the
// target IDE's bundled-module registry and marketplace-style repositories.
package plugins

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jetkit/jetkit/pkg/buildnumber"
)

// Dependency is the shared capability of every resolved plugin dependency:
// an identity, a compatibility check against the target IDE build, and a
// plugin-path contribution for downstream classpath assembly.
type Dependency interface {
	Id() string
	// CheckCompatibility returns an IncompatibilityError when the dependency's
	// declared version range excludes the given IDE build.
	CheckCompatibility(ideBuild buildnumber.BuildNumber) error
	// Path is the local directory contributed to the plugin path.
	Path() string
}

// Descriptor is one parsed dependency declaration: a plain ID, id:version,
// id:version:channel, or a filesystem reference to a sibling build unit.
type Descriptor struct {
	Raw     string
	Id      string
	Version string
	Channel string
	// LocalPath is set instead of Id/Version for sibling build unit references
	LocalPath string
}

// IsLocal reports whether the descriptor points at another build unit's
// output directory rather than a downloadable or bundled module.
func (d Descriptor) IsLocal() bool {
	return d.LocalPath != ""
}

// ParseDescriptor recognizes filesystem references by shape: anything with a
// path separator or a leading dot is a sibling build unit, everything else is
// a plugin ID with optional version and channel.
func ParseDescriptor(raw string) (Descriptor, error) {
	if raw == "" {
		return Descriptor{}, fmt.Errorf("empty plugin dependency descriptor")
	}

	if strings.HasPrefix(raw, ".") || filepath.IsAbs(raw) || strings.ContainsAny(raw, `/\`) {
		return Descriptor{Raw: raw, LocalPath: filepath.Clean(raw)}, nil
	}

	parts := strings.Split(raw, ":")
	d := Descriptor{Raw: raw, Id: parts[0]}
	switch len(parts) {
	case 1:
	case 2:
		d.Version = parts[1]
	case 3:
		d.Version = parts[1]
		d.Channel = parts[2]
	default:
		return Descriptor{}, fmt.Errorf("malformed plugin dependency descriptor %q. expected id[:version[:channel]]", raw)
	}

	if d.Id == "" {
		return Descriptor{}, fmt.Errorf("malformed plugin dependency descriptor %q: missing plugin ID", raw)
	}
	return d, nil
}
