// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package plugins

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetkit/jetkit/pkg/buildconfig"
	"github.com/jetkit/jetkit/pkg/builderrors"
	"github.com/jetkit/jetkit/pkg/downloader"
	"github.com/jetkit/jetkit/pkg/ide"
	"github.com/jetkit/jetkit/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pluginZip(t *testing.T, id, since, until string) []byte {
	return testutil.ZipArchiveBytes(t, map[string]string{
		id + "/META-INF/plugin.xml": `<idea-plugin>
  <id>` + id + `</id>
  <idea-version since-build="` + since + `" until-build="` + until + `"/>
</idea-plugin>`,
		id + "/lib/" + id + ".jar": "jar-bytes",
	})
}

func newTestResolver(t *testing.T, files map[string][]byte, ideBuild string) (*Resolver, *buildconfig.Config) {
	config := testutil.Config(t)
	server, _ := testutil.ServeRepository(t, files)
	config.MarketplaceRepository = server.URL

	installDir := testutil.FakeIdeInstall(t, filepath.Join(t.TempDir(), "ide"), ideBuild, map[string]string{
		"plugins/java/lib/java-impl.jar": "jar-bytes",
	})
	ideDep := &ide.Dependency{
		BuildNumber: mustParse(t, ideBuild),
		InstallDir:  installDir,
	}
	return NewResolver(config, downloader.New(config), ideDep), config
}

func TestResolveAllMarketplace(t *testing.T) {
	files := map[string][]byte{
		"/com/jetbrains/plugins/org.intellij.scala/2021.3.18/org.intellij.scala-2021.3.18.zip": pluginZip(t, "org.intellij.scala", "213.5744", "213.*"),
	}
	resolver, config := newTestResolver(t, files, "213.6777.52")

	deps, err := resolver.ResolveAll(context.Background(), []string{"org.intellij.scala:2021.3.18"})
	require.NoError(t, err)
	require.Len(t, deps, 1)

	dep, ok := deps[0].(*MarketplaceDependency)
	require.True(t, ok)
	assert.Equal(t, "org.intellij.scala", dep.Id())
	assert.Equal(t, filepath.Join(config.PluginsPath, "org.intellij.scala-2021.3.18"), dep.Path())
	assert.Equal(t, "213.5744", dep.SinceBuild)
	assert.Equal(t, "213.*", dep.UntilBuild)
}

func TestResolveAllMarketplaceChannel(t *testing.T) {
	files := map[string][]byte{
		"/nightly/com/jetbrains/plugins/org.intellij.scala/2022.1.1/org.intellij.scala-2022.1.1.zip": pluginZip(t, "org.intellij.scala", "213", ""),
	}
	resolver, _ := newTestResolver(t, files, "213.6777.52")

	deps, err := resolver.ResolveAll(context.Background(), []string{"org.intellij.scala:2022.1.1:nightly"})
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "nightly", deps[0].(*MarketplaceDependency).Channel)
}

func TestResolveAllIncompatiblePluginFails(t *testing.T) {
	files := map[string][]byte{
		"/com/jetbrains/plugins/org.intellij.scala/2021.3.18/org.intellij.scala-2021.3.18.zip": pluginZip(t, "org.intellij.scala", "213.5744", "213.*"),
	}
	resolver, _ := newTestResolver(t, files, "221.5080.210")

	_, err := resolver.ResolveAll(context.Background(), []string{"org.intellij.scala:2021.3.18"})
	var incompatErr *builderrors.IncompatibilityError
	require.ErrorAs(t, err, &incompatErr)
}

func TestResolveAllBuiltin(t *testing.T) {
	resolver, _ := newTestResolver(t, nil, "213.6777.52")

	deps, err := resolver.ResolveAll(context.Background(), []string{"java"})
	require.NoError(t, err)
	require.Len(t, deps, 1)

	dep, ok := deps[0].(*BuiltinDependency)
	require.True(t, ok)
	assert.Equal(t, "java", dep.Id())
	assert.DirExists(t, dep.Path())
}

func TestResolveAllBuiltinMissing(t *testing.T) {
	resolver, _ := newTestResolver(t, nil, "213.6777.52")

	_, err := resolver.ResolveAll(context.Background(), []string{"kotlin"})
	var resErr *builderrors.ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Contains(t, resErr.Error(), "not bundled")
}

func TestResolveAllLocalProject(t *testing.T) {
	siblingDist := filepath.Join(t.TempDir(), "sibling", "dist")
	require.NoError(t, os.MkdirAll(siblingDist, 0755))
	resolver, _ := newTestResolver(t, nil, "213.6777.52")

	deps, err := resolver.ResolveAll(context.Background(), []string{siblingDist})
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, siblingDist, deps[0].Path())
}

func TestResolveAllLocalProjectMissing(t *testing.T) {
	resolver, _ := newTestResolver(t, nil, "213.6777.52")

	_, err := resolver.ResolveAll(context.Background(), []string{filepath.Join(t.TempDir(), "never-built")})
	var resErr *builderrors.ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Contains(t, resErr.Error(), "packaging step must run first")
}

func TestResolveAllMalformedDescriptor(t *testing.T) {
	resolver, _ := newTestResolver(t, nil, "213.6777.52")

	_, err := resolver.ResolveAll(context.Background(), []string{"a:b:c:d"})
	require.Error(t, err)
}
