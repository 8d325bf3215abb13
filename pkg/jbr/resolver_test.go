// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package jbr

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetkit/jetkit/pkg/buildconfig"
	"github.com/jetkit/jetkit/pkg/downloader"
	"github.com/jetkit/jetkit/pkg/platform"
	"github.com/jetkit/jetkit/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var linuxX64 = platform.Platform{OS: "linux", Arch: "x86_64"}

func newTestResolver(t *testing.T, repositoryFiles map[string][]byte) (*Resolver, *buildconfig.Config) {
	config := testutil.Config(t)
	server, _ := testutil.ServeRepository(t, repositoryFiles)
	config.RuntimeRepository = server.URL
	return NewResolver(config, downloader.New(config), linuxX64), config
}

// fakeRuntimeDir lays a bin/java file out under dir and returns its path.
func fakeRuntimeDir(t *testing.T, dir string) string {
	binDir := filepath.Join(dir, "bin")
	require.NoError(t, os.MkdirAll(binDir, 0755))
	javaPath := filepath.Join(binDir, "java")
	require.NoError(t, os.WriteFile(javaPath, []byte("#!/bin/sh\n"), 0755))
	return javaPath
}

func TestResolveExecutableExplicitDir(t *testing.T) {
	resolver, _ := newTestResolver(t, nil)

	explicitDir := t.TempDir()
	javaPath := fakeRuntimeDir(t, filepath.Join(explicitDir, runtimeDirName))

	executable, ok := resolver.ResolveExecutable(context.Background(), Options{ExplicitDir: explicitDir})
	require.True(t, ok)
	assert.Equal(t, javaPath, executable)
}

func TestResolveExecutableByToken(t *testing.T) {
	token := "11_0_11b1504.12"
	artifactName := DeriveArtifactName(token, linuxX64)

	archive := testutil.TarGzArchiveBytes(t, map[string]string{
		artifactName + "/":         "",
		artifactName + "/bin/":     "",
		artifactName + "/bin/java": "#!/bin/sh\n",
		artifactName + "/release":  "JAVA_VERSION=11",
	})
	resolver, config := newTestResolver(t, map[string][]byte{
		"/" + artifactName + ".tar.gz": archive,
	})

	executable, ok := resolver.ResolveExecutable(context.Background(), Options{VersionToken: token})
	require.True(t, ok)

	// the wrapping directory inside the archive is descended transparently
	expected := filepath.Join(config.RuntimesPath, artifactName, artifactName, "bin", "java")
	assert.Equal(t, expected, executable)
}

func TestResolveExecutableFallsThroughToBundledRuntime(t *testing.T) {
	token := "11_0_11b1504.12"
	artifactName := DeriveArtifactName(token, linuxX64)

	// the token resolves to an archive with no java executable inside,
	// so the strategy fails and the IDE-bundled runtime wins
	archive := testutil.TarGzArchiveBytes(t, map[string]string{
		artifactName + "/":        "",
		artifactName + "/release": "JAVA_VERSION=11",
	})
	resolver, _ := newTestResolver(t, map[string][]byte{
		"/" + artifactName + ".tar.gz": archive,
	})

	ideDir := t.TempDir()
	bundledJava := fakeRuntimeDir(t, filepath.Join(ideDir, runtimeDirName))

	executable, ok := resolver.ResolveExecutable(context.Background(), Options{
		VersionToken: token,
		IdeDir:       ideDir,
	})
	require.True(t, ok)
	assert.Equal(t, bundledJava, executable)
}

func TestResolveExecutableIdeDeclaredVersion(t *testing.T) {
	token := "17_0_3b469.37"
	artifactName := DeriveArtifactName(token, linuxX64)

	archive := testutil.TarGzArchiveBytes(t, map[string]string{
		artifactName + "/":         "",
		artifactName + "/bin/":     "",
		artifactName + "/bin/java": "#!/bin/sh\n",
	})
	resolver, config := newTestResolver(t, map[string][]byte{
		"/" + artifactName + ".tar.gz": archive,
	})

	// an IDE dir with no bundled jbr but a declared runtime version
	ideDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(ideDir, buildconfig.DependenciesFile),
		[]byte("# build dependencies\njdkBuild="+token+"\nkotlin=1.6.10\n"), 0644))

	executable, ok := resolver.ResolveExecutable(context.Background(), Options{IdeDir: ideDir})
	require.True(t, ok)
	assert.Equal(t,
		filepath.Join(config.RuntimesPath, artifactName, artifactName, "bin", "java"),
		executable)
}

func TestResolveExecutableValidateRejects(t *testing.T) {
	resolver, _ := newTestResolver(t, nil)

	explicitDir := t.TempDir()
	fakeRuntimeDir(t, filepath.Join(explicitDir, runtimeDirName))

	executable, ok := resolver.ResolveExecutable(context.Background(), Options{
		ExplicitDir: explicitDir,
		Validate:    func(string) bool { return false },
	})
	assert.False(t, ok)
	assert.Empty(t, executable)
}

func TestResolve(t *testing.T) {
	token := "11_0_11b1504.12"
	artifactName := DeriveArtifactName(token, linuxX64)

	archive := testutil.TarGzArchiveBytes(t, map[string]string{
		artifactName + "/":         "",
		artifactName + "/bin/":     "",
		artifactName + "/bin/java": "#!/bin/sh\n",
	})
	resolver, config := newTestResolver(t, map[string][]byte{
		"/" + artifactName + ".tar.gz": archive,
	})

	jbr, ok, err := resolver.Resolve(context.Background(), token)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, token, jbr.Token)
	assert.Equal(t, filepath.Join(config.RuntimesPath, artifactName), jbr.RootDir)
	assert.FileExists(t, jbr.Executable)
}

func TestResolveEmptyToken(t *testing.T) {
	resolver, _ := newTestResolver(t, nil)

	jbr, ok, err := resolver.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, jbr)
}

func TestBundledRuntimeToken(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		ideDir := t.TempDir()
		require.NoError(t, os.WriteFile(
			filepath.Join(ideDir, buildconfig.DependenciesFile),
			[]byte("jdkBuild = 11_0_2b159\n"), 0644))

		token, ok, err := bundledRuntimeToken(ideDir)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "11_0_2b159", token)
	})

	t.Run("missing key", func(t *testing.T) {
		ideDir := t.TempDir()
		require.NoError(t, os.WriteFile(
			filepath.Join(ideDir, buildconfig.DependenciesFile),
			[]byte("kotlin=1.6.10\n"), 0644))

		_, ok, err := bundledRuntimeToken(ideDir)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing file", func(t *testing.T) {
		_, ok, err := bundledRuntimeToken(t.TempDir())
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestHostRuntimeExecutable(t *testing.T) {
	javaHome := t.TempDir()
	javaPath := fakeRuntimeDir(t, javaHome)
	t.Setenv("JAVA_HOME", javaHome)

	assert.Equal(t, javaPath, hostRuntimeExecutable(linuxX64))
}
