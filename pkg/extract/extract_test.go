// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetkit/jetkit/pkg/builderrors"
	"github.com/jetkit/jetkit/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractZip(t *testing.T) {
	archive := testutil.ZipArchive(t, t.TempDir(), "dist.zip", map[string]string{
		"dist/build.txt":          "IC-211.7628.21",
		"dist/lib/app.jar":        "jar-bytes",
		"dist/plugins/java/x.jar": "plugin-bytes",
	})
	targetDir := filepath.Join(t.TempDir(), "ides", "ideaIC-2021.1")

	require.NoError(t, Extract(context.Background(), archive, targetDir))

	contents, err := os.ReadFile(filepath.Join(targetDir, "dist", "build.txt"))
	require.NoError(t, err)
	assert.Equal(t, "IC-211.7628.21", string(contents))
	assert.FileExists(t, filepath.Join(targetDir, "dist", "lib", "app.jar"))
	assert.FileExists(t, filepath.Join(targetDir, "dist", "plugins", "java", "x.jar"))
}

func TestExtractTarGz(t *testing.T) {
	archive := testutil.TarGzArchive(t, t.TempDir(), "runtime.tar.gz", map[string]string{
		"jbr/":         "",
		"jbr/bin/":     "",
		"jbr/bin/java": "#!/bin/sh\n",
	})
	targetDir := filepath.Join(t.TempDir(), "jbr", "jbr-11")

	require.NoError(t, Extract(context.Background(), archive, targetDir))

	javaPath := filepath.Join(targetDir, "jbr", "bin", "java")
	info, err := os.Stat(javaPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestExtractIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	first := testutil.ZipArchive(t, dir, "first.zip", map[string]string{"marker.txt": "first"})
	second := testutil.ZipArchive(t, dir, "second.zip", map[string]string{"marker.txt": "second"})
	targetDir := filepath.Join(t.TempDir(), "target")

	require.NoError(t, Extract(context.Background(), first, targetDir))

	// the target is non-empty, so the second call must not touch it
	require.NoError(t, Extract(context.Background(), second, targetDir))

	contents, err := os.ReadFile(filepath.Join(targetDir, "marker.txt"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(contents))
}

func TestExtractUnsupportedFormat(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "dist.rar")
	require.NoError(t, os.WriteFile(archive, []byte("not-an-archive"), 0644))

	err := Extract(context.Background(), archive, filepath.Join(t.TempDir(), "target"))
	var extErr *builderrors.ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, archive, extErr.Archive)
}

func TestExtractCorruptArchive(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "dist.zip")
	require.NoError(t, os.WriteFile(archive, []byte("not-a-zip"), 0644))
	targetDir := filepath.Join(t.TempDir(), "target")

	err := Extract(context.Background(), archive, targetDir)
	var extErr *builderrors.ExtractionError
	require.ErrorAs(t, err, &extErr)

	// a failed extraction leaves no partial target behind
	_, statErr := os.Stat(targetDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExtractRejectsPathTraversal(t *testing.T) {
	archive := testutil.ZipArchive(t, t.TempDir(), "evil.zip", map[string]string{
		"../escape.txt": "oops",
	})
	targetDir := filepath.Join(t.TempDir(), "target")

	err := Extract(context.Background(), archive, targetDir)
	var extErr *builderrors.ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.NoFileExists(t, filepath.Join(filepath.Dir(targetDir), "escape.txt"))
}
