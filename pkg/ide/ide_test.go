// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package ide

import (
	"path/filepath"
	"testing"

	"github.com/jetkit/jetkit/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSnapshot(t *testing.T) {
	assert.True(t, isSnapshot("213-SNAPSHOT"))
	assert.True(t, isSnapshot("2021.3-EAP-1-SNAPSHOT"))
	assert.True(t, isSnapshot("213.5744-EAP-CANDIDATE"))
	assert.False(t, isSnapshot("2021.3.2"))
	assert.False(t, isSnapshot("213.6777.52"))
}

func TestProductFor(t *testing.T) {
	p, err := productFor("IC")
	require.NoError(t, err)
	assert.Equal(t, "com.jetbrains.intellij.idea", p.group)
	assert.Equal(t, "ideaIC", p.name)

	p, err = productFor("GO")
	require.NoError(t, err)
	assert.Equal(t, "goland", p.name)

	_, err = productFor("XX")
	assert.Error(t, err)
}

func TestReadBuildNumber(t *testing.T) {
	t.Run("from build file", func(t *testing.T) {
		installDir := testutil.FakeIdeInstall(t, t.TempDir(), "IC-211.7628.21\n", nil)
		bn := readBuildNumber(installDir, "2021.1")
		assert.Equal(t, []int{211, 7628, 21}, bn.Components())
	})

	t.Run("fallback to version", func(t *testing.T) {
		bn := readBuildNumber(t.TempDir(), "2021.1.3")
		assert.Equal(t, []int{2021, 1, 3}, bn.Components())
	})
}

func TestBundledPluginDir(t *testing.T) {
	installDir := testutil.FakeIdeInstall(t, t.TempDir(), "IC-211.7628.21", map[string]string{
		"plugins/java/lib/java-impl.jar": "jar-bytes",
	})
	dep := &Dependency{InstallDir: installDir}

	dir, ok := dep.BundledPluginDir("java")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(installDir, "plugins", "java"), dir)

	_, ok = dep.BundledPluginDir("kotlin")
	assert.False(t, ok)
}
