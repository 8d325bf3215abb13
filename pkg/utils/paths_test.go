// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	assert.Equal(t, filepath.Clean("/abs/path"), ResolvePath("/base", "/abs/path"))
	assert.Equal(t, filepath.Clean("/base/rel"), ResolvePath("/base", "rel"))
	assert.Equal(t, filepath.Clean("/base/sub"), ResolvePath("/base", "./sub"))
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	exists, err := DirExists(dir)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = DirExists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, exists)

	filePath := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(filePath, []byte("x"), 0644))
	exists, err = DirExists(filePath)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(filePath, []byte("x"), 0644))

	assert.True(t, FileExists(filePath))
	assert.False(t, FileExists(filepath.Join(dir, "missing")))
	assert.False(t, FileExists(dir))
}

func TestDirIsEmpty(t *testing.T) {
	dir := t.TempDir()

	empty, err := DirIsEmpty(dir)
	require.NoError(t, err)
	assert.True(t, empty)

	empty, err = DirIsEmpty(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.True(t, empty)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "file"), []byte("x"), 0644))
	empty, err = DirIsEmpty(dir)
	require.NoError(t, err)
	assert.False(t, empty)
}

func TestEnsureDirs(t *testing.T) {
	base := t.TempDir()
	a := filepath.Join(base, "a", "deep")
	b := filepath.Join(base, "b")

	require.NoError(t, EnsureDirs(a, b))
	assert.DirExists(t, a)
	assert.DirExists(t, b)

	// already existing dirs are fine
	require.NoError(t, EnsureDirs(a, b))
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	require.NoError(t, os.WriteFile(src, []byte("contents"), 0644))

	dst := filepath.Join(dir, "nested", "dst.txt")
	require.NoError(t, CopyFile(src, dst))

	copied, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "contents", string(copied))
}

func TestMkdirTemp(t *testing.T) {
	dir, deleteFn, err := MkdirTemp(t.TempDir(), "work-")
	require.NoError(t, err)
	assert.DirExists(t, dir)

	require.NoError(t, deleteFn())
	assert.NoDirExists(t, dir)
}
