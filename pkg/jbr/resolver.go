// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package jbr

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/jetkit/jetkit/pkg/buildconfig"
	"github.com/jetkit/jetkit/pkg/coordinates"
	"github.com/jetkit/jetkit/pkg/downloader"
	"github.com/jetkit/jetkit/pkg/extract"
	"github.com/jetkit/jetkit/pkg/platform"
	"github.com/jetkit/jetkit/pkg/utils"
)

const (
	runtimeArtifactGroup = "com.jetbrains"
	runtimeDirName       = "jbr"
	bundledRuntimeKey    = "jdkBuild"
)

// Jbr is a resolved runtime: a version token materialized on disk. It is
// only constructed once the executable is known to exist.
type Jbr struct {
	Token      string
	RootDir    string
	Executable string
}

// Options parameterize one runtime resolution. Validate lets the caller
// reject candidates (e.g. probe the executable); nil accepts everything.
type Options struct {
	ExplicitDir  string
	VersionToken string
	IdeDir       string
	Validate     func(executable string) bool
}

type Resolver struct {
	config     *buildconfig.Config
	downloader *downloader.Downloader
	platform   platform.Platform
}

func NewResolver(config *buildconfig.Config, d *downloader.Downloader, p platform.Platform) *Resolver {
	return &Resolver{config: config, downloader: d, platform: p}
}

type strategy struct {
	name    string
	resolve func(ctx context.Context) (string, error)
}

// ResolveExecutable evaluates the resolution strategies in order and returns
// the first validated runtime executable. Strategies are independent: a
// failure in one is logged and never aborts the evaluation of later ones.
// The second return is false only when every strategy came up empty.
func (r *Resolver) ResolveExecutable(ctx context.Context, opts Options) (string, bool) {
	validate := opts.Validate
	if validate == nil {
		validate = func(string) bool { return true }
	}

	strategies := []strategy{
		{"explicit runtime directory", func(ctx context.Context) (string, error) {
			return r.bundledExecutable(opts.ExplicitDir), nil
		}},
		{"runtime version token", func(ctx context.Context) (string, error) {
			return r.resolveByToken(ctx, opts.VersionToken)
		}},
		{"IDE-bundled runtime", func(ctx context.Context) (string, error) {
			return r.bundledExecutable(opts.IdeDir), nil
		}},
		{"IDE-declared runtime version", func(ctx context.Context) (string, error) {
			token, ok, err := bundledRuntimeToken(opts.IdeDir)
			if err != nil || !ok {
				return "", err
			}
			return r.resolveByToken(ctx, token)
		}},
		{"host runtime", func(ctx context.Context) (string, error) {
			return hostRuntimeExecutable(r.platform), nil
		}},
	}

	for _, s := range strategies {
		executable, err := s.resolve(ctx)
		if err != nil {
			slog.Warn("runtime resolution strategy failed, trying the next one", "strategy", s.name, "err", err.Error())
			continue
		}
		if executable == "" {
			continue
		}
		if !validate(executable) {
			slog.Debug("runtime candidate rejected by validation", "strategy", s.name, "executable", executable)
			continue
		}
		slog.Debug("runtime resolved", "strategy", s.name, "executable", executable)
		return executable, true
	}
	return "", false
}

// Resolve materializes the runtime identified by versionToken and returns it
// as a Jbr value, or false when the executable could not be produced.
func (r *Resolver) Resolve(ctx context.Context, versionToken string) (*Jbr, bool, error) {
	executable, err := r.resolveByToken(ctx, versionToken)
	if err != nil {
		return nil, false, err
	}
	if executable == "" {
		return nil, false, nil
	}

	rootDir := filepath.Join(r.config.RuntimesPath, DeriveArtifactName(versionToken, r.platform))
	return &Jbr{Token: versionToken, RootDir: rootDir, Executable: executable}, true, nil
}

func (r *Resolver) resolveByToken(ctx context.Context, versionToken string) (string, error) {
	if versionToken == "" {
		return "", nil
	}

	artifact := DeriveArtifact(versionToken, r.platform, r.config.RuntimeRepository)
	coord := coordinates.Coordinate{
		Group:     runtimeArtifactGroup,
		Name:      artifact.Name,
		Version:   versionToken,
		Extension: "tar.gz",
	}

	files, err := r.downloader.Resolve(ctx, coord, artifact.Repositories())
	if err != nil {
		return "", err
	}

	targetDir := filepath.Join(r.config.RuntimesPath, artifact.Name)
	if err := extract.Extract(ctx, files[0], targetDir); err != nil {
		return "", err
	}

	executable := findJavaExecutable(targetDir, r.platform)
	if executable == "" {
		return "", fmt.Errorf("extracted runtime %q has no java executable under %q", versionToken, targetDir)
	}
	return executable, nil
}

// bundledExecutable derives dir/jbr[/Contents/Home]/bin/java, returning ""
// unless it exists.
func (r *Resolver) bundledExecutable(dir string) string {
	if dir == "" {
		return ""
	}
	return findJavaExecutable(filepath.Join(dir, runtimeDirName), r.platform)
}

// findJavaExecutable probes the runtime-layout variants below rootDir:
// bin/java directly, the mac Contents/Home indirection, and an archive's
// single wrapping directory.
func findJavaExecutable(rootDir string, p platform.Platform) string {
	javaName := p.ExecutableName("java")

	candidates := []string{
		filepath.Join(rootDir, "bin", javaName),
		filepath.Join(rootDir, "Contents", "Home", "bin", javaName),
	}
	for _, c := range candidates {
		if utils.FileExists(c) {
			return c
		}
	}

	entries, err := os.ReadDir(rootDir)
	if err == nil && len(entries) == 1 && entries[0].IsDir() {
		return findJavaExecutable(filepath.Join(rootDir, entries[0].Name()), p)
	}
	return ""
}

// bundledRuntimeToken reads the runtime version an IDE installation declares
// for itself in its dependencies.txt key/value file.
func bundledRuntimeToken(ideDir string) (string, bool, error) {
	if ideDir == "" {
		return "", false, nil
	}

	f, err := os.Open(filepath.Join(ideDir, buildconfig.DependenciesFile))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if found && strings.TrimSpace(key) == bundledRuntimeKey {
			return strings.TrimSpace(value), true, nil
		}
	}
	return "", false, scanner.Err()
}

// hostRuntimeExecutable is the last-resort strategy: the runtime available
// to the build process itself, via JAVA_HOME or the PATH.
func hostRuntimeExecutable(p platform.Platform) string {
	javaName := p.ExecutableName("java")

	if home, ok := os.LookupEnv("JAVA_HOME"); ok {
		candidate := filepath.Join(home, "bin", javaName)
		if utils.FileExists(candidate) {
			return candidate
		}
	}

	if path, err := exec.LookPath(javaName); err == nil {
		return path
	}
	return ""
}
