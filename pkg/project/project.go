// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package project reads the jetkit.yaml plugin project manifest: the
// configuration surface the resolvers are parameterized from.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/jetkit/jetkit/pkg/buildconfig"
	"github.com/jetkit/jetkit/pkg/coordinates"
	"github.com/jetkit/jetkit/pkg/schema"
)

var ErrInvalidProjectManifest = fmt.Errorf("invalid project manifest")
var ErrMissingProjectField = fmt.Errorf("%w: a required field is missing", ErrInvalidProjectManifest)

const (
	ProjectKind          = "PluginProject"
	ProjectSchemaVersion = "v1"
	ProjectAPIVersion    = schema.APIGroup + "/" + ProjectSchemaVersion
)

type Project struct {
	schema.ManifestMeta `yaml:",inline"`
	Spec                *Spec `yaml:"spec"`
}

type Spec struct {
	// Name of the plugin being built
	Name string `yaml:"name"`

	Ide     *IdeSpec     `yaml:"ide"`
	Runtime *RuntimeSpec `yaml:"runtime,omitempty"`

	// Plugins are dependency descriptors: id, id:version, id:version:channel,
	// or a path to a sibling build unit's output
	Plugins []string `yaml:"plugins,omitempty"`

	// Repositories are extra standard-layout repository URLs, consulted
	// before the configured default repositories
	Repositories []string `yaml:"repositories,omitempty"`
}

type IdeSpec struct {
	// Version of the target IDE, e.g. "2021.1" or "211-EAP-SNAPSHOT"
	Version string `yaml:"version,omitempty"`
	// Type is the product code, e.g. "IC"
	Type string `yaml:"type,omitempty"`
	// LocalPath points at an existing installation instead of a version
	LocalPath       string `yaml:"local-path,omitempty"`
	DownloadSources bool   `yaml:"download-sources,omitempty"`
	// ExtraDependencies in group:name:version notation
	ExtraDependencies []string `yaml:"extra-dependencies,omitempty"`
}

type RuntimeSpec struct {
	// Version token, e.g. "11_0_2b159"
	Version string `yaml:"version,omitempty"`
	// Dir overrides resolution with an explicit runtime directory
	Dir string `yaml:"dir,omitempty"`
}

// EffectiveIdeVersion applies the global JETKIT_IDE_VERSION override.
func (s *Spec) EffectiveIdeVersion() string {
	return buildconfig.GetIdeVersionOverrideWithFallback(s.Ide.Version)
}

// ExtraCoordinates parses the declared extra-dependency strings.
func (s *IdeSpec) ExtraCoordinates() ([]coordinates.Coordinate, error) {
	coords := make([]coordinates.Coordinate, 0, len(s.ExtraDependencies))
	for _, raw := range s.ExtraDependencies {
		c, err := parseCoordinate(raw)
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
	}
	return coords, nil
}

func parseCoordinate(raw string) (coordinates.Coordinate, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return coordinates.Coordinate{}, fmt.Errorf("malformed coordinate %q. expected group:name:version", raw)
	}
	return coordinates.New(parts[0], parts[1], parts[2]), nil
}

// Find locates the manifest for dir, within dir itself or the nearest parent.
func Find(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(current, buildconfig.ProjectFilename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("no %s found in %q or any parent directory", buildconfig.ProjectFilename, dir)
		}
		current = parent
	}
}

// LoadCurrent reads the manifest governing the current invocation, honoring
// the JETKIT_PROJECT override. It returns the project and its directory.
func LoadCurrent() (*Project, string, error) {
	dir, err := buildconfig.GetProjectDir()
	if err != nil {
		return nil, "", err
	}
	manifestPath, err := Find(dir)
	if err != nil {
		return nil, "", err
	}
	p, err := Read(manifestPath)
	if err != nil {
		return nil, "", err
	}
	return p, filepath.Dir(manifestPath), nil
}

func Read(filePath string) (*Project, error) {
	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return ReadFromContents(bytes)
}

func ReadFromContents(contents []byte) (*Project, error) {
	var p Project
	if err := yaml.UnmarshalWithOptions(contents, &p, yaml.Strict()); err != nil {
		return nil, errors.Join(ErrInvalidProjectManifest, err)
	}

	s := schema.ManifestMeta{
		APIVersion: ProjectAPIVersion,
		Kind:       ProjectKind,
	}
	if err := s.ValidateSchema(p.ManifestMeta); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidProjectManifest, err.Error())
	}

	if p.Spec == nil {
		return nil, fmt.Errorf("%w: 'spec'", ErrMissingProjectField)
	}
	if p.Spec.Name == "" {
		return nil, fmt.Errorf("%w: 'name'", ErrMissingProjectField)
	}
	if p.Spec.Ide == nil {
		return nil, fmt.Errorf("%w: 'ide'", ErrMissingProjectField)
	}
	if p.Spec.Ide.Version == "" && p.Spec.Ide.LocalPath == "" {
		return nil, fmt.Errorf("%w: one of 'ide.version' or 'ide.local-path'", ErrMissingProjectField)
	}

	return &p, nil
}
