// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package coordinates

import (
	"fmt"
	"path"
	"strings"
)

// Coordinate identifies a downloadable artifact. Values are constructed per
// resolution attempt and never mutated.
type Coordinate struct {
	Group      string
	Name       string
	Version    string
	Classifier string
	// Extension defaults to "zip" when empty
	Extension string
}

func New(group, name, version string) Coordinate {
	return Coordinate{Group: group, Name: name, Version: version}
}

func (c Coordinate) WithClassifier(classifier string) Coordinate {
	c.Classifier = classifier
	return c
}

func (c Coordinate) WithExtension(extension string) Coordinate {
	c.Extension = extension
	return c
}

func (c Coordinate) ExtensionOrDefault() string {
	if c.Extension == "" {
		return "zip"
	}
	return c.Extension
}

// String renders the coordinate in group:name:version[:classifier] notation.
func (c Coordinate) String() string {
	s := fmt.Sprintf("%s:%s:%s", c.Group, c.Name, c.Version)
	if c.Classifier != "" {
		s += ":" + c.Classifier
	}
	return s
}

// FileName is the conventional artifact file name,
// name-version[-classifier].extension.
func (c Coordinate) FileName() string {
	f := c.Name + "-" + c.Version
	if c.Classifier != "" {
		f += "-" + c.Classifier
	}
	return f + "." + c.ExtensionOrDefault()
}

// Path is the standard-layout relative path of the artifact below a
// repository root: group segments, name, version, file name.
func (c Coordinate) Path() string {
	segments := strings.Split(c.Group, ".")
	segments = append(segments, c.Name, c.Version, c.FileName())
	return path.Join(segments...)
}
