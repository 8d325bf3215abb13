// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jetkit/jetkit/pkg/buildconfig"
	"github.com/stretchr/testify/require"
)

// TestdataPath gives absolute path within the common 'testdata'
func TestdataPath(t *testing.T, path ...string) string {
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)

	p := []string{filepath.Dir(file), "testdata"}
	p = append(p, path...)
	return filepath.Join(p...)
}

// Config returns a tool configuration rooted in a fresh temp home.
func Config(t *testing.T) *buildconfig.Config {
	config, err := buildconfig.GetWithCustomHome(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, config.EnsureDirs())
	return config
}

// ServeRepository stands in for a remote artifact repository: it serves the
// given URL-path -> contents mapping and records every request path.
func ServeRepository(t *testing.T, files map[string][]byte) (*httptest.Server, *[]string) {
	requested := &[]string{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requested = append(*requested, r.URL.Path)
		contents, ok := files[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(contents)
	}))
	t.Cleanup(server.Close)
	return server, requested
}

// ZipArchive writes a zip archive containing the given name -> contents
// entries and returns its path.
func ZipArchive(t *testing.T, dir, name string, entries map[string]string) string {
	archivePath := filepath.Join(dir, name)
	f, err := os.Create(archivePath)
	require.NoError(t, err)

	w := zip.NewWriter(f)
	for entryName, contents := range entries {
		entry, err := w.Create(entryName)
		require.NoError(t, err)
		_, err = entry.Write([]byte(contents))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
	return archivePath
}

// ZipArchiveBytes is ZipArchive for in-memory use (repository fixtures).
func ZipArchiveBytes(t *testing.T, entries map[string]string) []byte {
	archivePath := ZipArchive(t, t.TempDir(), "fixture.zip", entries)
	contents, err := os.ReadFile(archivePath)
	require.NoError(t, err)
	return contents
}

// TarGzArchive writes a .tar.gz archive containing the given name -> contents
// entries and returns its path. Entries ending in "/" become directories.
func TarGzArchive(t *testing.T, dir, name string, entries map[string]string) string {
	archivePath := filepath.Join(dir, name)
	f, err := os.Create(archivePath)
	require.NoError(t, err)

	gz := gzip.NewWriter(f)
	w := tar.NewWriter(gz)
	for entryName, contents := range entries {
		if entryName[len(entryName)-1] == '/' {
			require.NoError(t, w.WriteHeader(&tar.Header{
				Name:     entryName,
				Typeflag: tar.TypeDir,
				Mode:     0755,
			}))
			continue
		}
		require.NoError(t, w.WriteHeader(&tar.Header{
			Name:     entryName,
			Typeflag: tar.TypeReg,
			Mode:     0755,
			Size:     int64(len(contents)),
		}))
		_, err = w.Write([]byte(contents))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
	return archivePath
}

// TarGzArchiveBytes is TarGzArchive for in-memory use.
func TarGzArchiveBytes(t *testing.T, entries map[string]string) []byte {
	archivePath := TarGzArchive(t, t.TempDir(), "fixture.tar.gz", entries)
	contents, err := os.ReadFile(archivePath)
	require.NoError(t, err)
	return contents
}

// FakeIdeInstall lays out a minimal IDE installation directory.
func FakeIdeInstall(t *testing.T, dir, buildNumber string, extraFiles map[string]string) string {
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, buildconfig.BuildNumberFile), []byte(buildNumber), 0644))
	for name, contents := range extraFiles {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(contents), 0755))
	}
	return dir
}
