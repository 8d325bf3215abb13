// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extract materializes downloaded archives into cache directories
// exactly once per target path.
package extract

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetkit/jetkit/pkg/builderrors"
	"github.com/jetkit/jetkit/pkg/utils"
)

// Extract unpacks archiveFile into targetDir, creating it and all parents.
//
// An existing, non-empty targetDir is treated as already extracted and left
// untouched: idempotence is keyed on the target path, trading
// correctness-under-corruption for skipping redundant I/O. The cache
// directory is shared between concurrent build invocations, so the actual
// extraction holds an advisory lock and lands via a temp directory and a
// rename; a process can observe either no target or a complete one.
func Extract(ctx context.Context, archiveFile, targetDir string) error {
	empty, err := utils.DirIsEmpty(targetDir)
	if err != nil {
		return builderrors.NewExtractionError(archiveFile, err)
	}
	if !empty {
		return nil
	}

	err = utils.WithCacheLock(ctx, targetDir+".lock", func() error {
		// another process may have finished while we waited on the lock
		empty, err := utils.DirIsEmpty(targetDir)
		if err != nil || !empty {
			return err
		}

		if err := utils.EnsureDirs(filepath.Dir(targetDir)); err != nil {
			return err
		}
		tmpDir, deleteFn, err := utils.MkdirTemp(filepath.Dir(targetDir), filepath.Base(targetDir)+".extracting-")
		if err != nil {
			return err
		}
		defer func() { _ = deleteFn() }()

		if err := extractArchive(archiveFile, tmpDir); err != nil {
			return err
		}

		_ = os.Remove(targetDir) // empty dir would block the rename
		return os.Rename(tmpDir, targetDir)
	})
	if err != nil {
		return builderrors.NewExtractionError(archiveFile, err)
	}
	return nil
}

func extractArchive(archiveFile, destDir string) error {
	switch {
	case strings.HasSuffix(archiveFile, ".zip"):
		return extractZip(archiveFile, destDir)
	case strings.HasSuffix(archiveFile, ".tar.gz"), strings.HasSuffix(archiveFile, ".tgz"):
		return extractTarGz(archiveFile, destDir)
	default:
		return fmt.Errorf("unsupported archive format: %s", filepath.Base(archiveFile))
	}
}

func extractZip(archiveFile, destDir string) error {
	r, err := zip.OpenReader(archiveFile)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	for _, f := range r.File {
		target, err := sanitizedTarget(destDir, f.Name)
		if err != nil {
			return err
		}

		if f.FileInfo().IsDir() {
			if err := utils.EnsureDirs(target); err != nil {
				return err
			}
			continue
		}

		if err := utils.EnsureDirs(filepath.Dir(target)); err != nil {
			return err
		}

		src, err := f.Open()
		if err != nil {
			return err
		}
		err = writeFile(target, src, f.Mode())
		_ = src.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func extractTarGz(archiveFile, destDir string) error {
	f, err := os.Open(archiveFile)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return err
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		target, err := sanitizedTarget(destDir, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := utils.EnsureDirs(target); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := utils.EnsureDirs(filepath.Dir(target)); err != nil {
				return err
			}
			if err := writeFile(target, tr, hdr.FileInfo().Mode()); err != nil {
				return err
			}
		case tar.TypeSymlink:
			if err := utils.EnsureDirs(filepath.Dir(target)); err != nil {
				return err
			}
			if err := os.Symlink(hdr.Linkname, target); err != nil {
				return err
			}
		}
	}
}

// sanitizedTarget rejects entries that would escape destDir
func sanitizedTarget(destDir, name string) (string, error) {
	target := filepath.Join(destDir, filepath.FromSlash(name))
	if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry %q escapes the target directory", name)
	}
	return target, nil
}

func writeFile(target string, src io.Reader, mode os.FileMode) error {
	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}
