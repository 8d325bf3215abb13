// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package buildnumber orders the dotted/dashed numeric version strings used
// by IDE builds and runtime archives (e.g. "211.7628.21", "1483.24",
// "11_0_2"). These are not semantic versions: they have an arbitrary number
// of components and no prerelease grammar, so semver parsers reject them.
package buildnumber

import (
	"strconv"
	"strings"
)

// BuildNumber is an ordered sequence of numeric components. Comparison is
// component-wise; the shorter sequence is padded with zeros.
type BuildNumber struct {
	components []int
	raw        string
}

func splitAny(s string, seps string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(seps, r)
	})
}

// Parse accepts components separated by '.', '-' or '_'. Non-numeric
// components (such as the product code in "IC-211.7628.21") are ignored,
// except that a version with no numeric component at all is rejected.
func Parse(s string) (BuildNumber, bool) {
	var components []int
	for _, part := range splitAny(s, ".-_") {
		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		components = append(components, n)
	}
	if len(components) == 0 {
		return BuildNumber{}, false
	}
	return BuildNumber{components: components, raw: s}, true
}

func (b BuildNumber) String() string {
	return b.raw
}

func (b BuildNumber) Components() []int {
	return append([]int(nil), b.components...)
}

func (b BuildNumber) Compare(other BuildNumber) int {
	n := max(len(b.components), len(other.components))
	for i := 0; i < n; i++ {
		x, y := 0, 0
		if i < len(b.components) {
			x = b.components[i]
		}
		if i < len(other.components) {
			y = other.components[i]
		}
		if x != y {
			if x < y {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (b BuildNumber) LessThan(other BuildNumber) bool {
	return b.Compare(other) < 0
}

// LessThanString compares against a literal version string, treating an
// unparsable literal as an error on the caller's side; it is used for the
// fixed thresholds baked into the archive naming rules.
func LessThanString(version, threshold string) bool {
	v, okV := Parse(version)
	t, okT := Parse(threshold)
	if !okV || !okT {
		return false
	}
	return v.LessThan(t)
}
