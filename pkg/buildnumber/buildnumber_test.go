// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package buildnumber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		input      string
		components []int
		ok         bool
	}{
		{"211.7628.21", []int{211, 7628, 21}, true},
		{"1483.24", []int{1483, 24}, true},
		{"11_0_2", []int{11, 0, 2}, true},
		{"IC-211.7628.21", []int{211, 7628, 21}, true},
		{"213", []int{213}, true},
		{"snapshot", nil, false},
		{"", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			b, ok := Parse(tc.input)
			require.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.components, b.Components())
				assert.Equal(t, tc.input, b.String())
			}
		})
	}
}

func TestCompare(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     string
		expected int
	}{
		{"equal", "211.7628.21", "211.7628.21", 0},
		{"component order beats string order", "211.9", "211.10", -1},
		{"shorter is padded with zeros", "211", "211.0.0", 0},
		{"shorter prefix is smaller", "211", "211.0.1", -1},
		{"longer prefix is larger", "212.1", "212", 1},
		{"product code ignored", "IC-211.1", "211.1", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, ok := Parse(tc.a)
			require.True(t, ok)
			b, ok := Parse(tc.b)
			require.True(t, ok)

			assert.Equal(t, tc.expected, a.Compare(b))
			assert.Equal(t, -tc.expected, b.Compare(a))
			assert.Equal(t, tc.expected < 0, a.LessThan(b))
		})
	}
}

func TestLessThanString(t *testing.T) {
	assert.True(t, LessThanString("1319.5", "1319.6"))
	assert.False(t, LessThanString("1319.6", "1319.6"))
	assert.False(t, LessThanString("1483.25", "1483.24"))

	// unparsable inputs never order below the threshold
	assert.False(t, LessThanString("nope", "1319.6"))
	assert.False(t, LessThanString("1319.5", "nope"))
}
