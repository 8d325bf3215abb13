// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package coordinates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	c := New("com.jetbrains.intellij.idea", "ideaIC", "2021.3.2")
	assert.Equal(t, "com.jetbrains.intellij.idea:ideaIC:2021.3.2", c.String())

	withClassifier := c.WithClassifier("sources")
	assert.Equal(t, "com.jetbrains.intellij.idea:ideaIC:2021.3.2:sources", withClassifier.String())
	// the receiver is a value; the original is untouched
	assert.Empty(t, c.Classifier)
}

func TestFileName(t *testing.T) {
	testCases := []struct {
		name       string
		coordinate Coordinate
		expected   string
	}{
		{
			name:       "default extension",
			coordinate: New("com.jetbrains.intellij.idea", "ideaIC", "2021.3.2"),
			expected:   "ideaIC-2021.3.2.zip",
		},
		{
			name:       "classifier",
			coordinate: New("com.jetbrains.intellij.idea", "ideaIC", "2021.3.2").WithClassifier("sources").WithExtension("jar"),
			expected:   "ideaIC-2021.3.2-sources.jar",
		},
		{
			name:       "tarball",
			coordinate: New("com.jetbrains", "jbr_jcef-11_0_2-linux-x64-b159", "11_0_2b159").WithExtension("tar.gz"),
			expected:   "jbr_jcef-11_0_2-linux-x64-b159-11_0_2b159.tar.gz",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.coordinate.FileName())
		})
	}
}

func TestPath(t *testing.T) {
	c := New("com.jetbrains.intellij.idea", "ideaIC", "2021.3.2")
	assert.Equal(t,
		"com/jetbrains/intellij/idea/ideaIC/2021.3.2/ideaIC-2021.3.2.zip",
		c.Path())
}
