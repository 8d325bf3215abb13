// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package report renders the outcome of one resolution pass, both as a
// machine-readable manifest for downstream packaging tasks and as a terminal
// table.
package report

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/goccy/go-yaml"
	"github.com/jetkit/jetkit/pkg/builderrors"
	"github.com/jetkit/jetkit/pkg/schema"
	"github.com/jetkit/jetkit/pkg/utils"
)

const (
	ApiVersion = schema.APIGroup + "/v1"
	Kind       = "Resolution"
)

type Resolution struct {
	schema.ManifestMeta `yaml:",inline"`

	Project string       `yaml:"project"`
	Vcs     *VcsInfo     `yaml:"vcs,omitempty"`
	Ide     *IdeResult   `yaml:"ide,omitempty"`
	Runtime *JbrResult   `yaml:"runtime,omitempty"`
	Plugins []*DepResult `yaml:"plugins,omitempty"`
	Errors  []*Failure   `yaml:"errors,omitempty"`
}

type IdeResult struct {
	Version     string   `yaml:"version,omitempty"`
	BuildNumber string   `yaml:"build-number"`
	InstallDir  string   `yaml:"install-dir"`
	SourcesPath string   `yaml:"sources-path,omitempty"`
	ExtraDeps   []string `yaml:"extra-dependencies,omitempty"`
}

type JbrResult struct {
	Token      string `yaml:"token,omitempty"`
	Executable string `yaml:"executable"`
}

type DepResult struct {
	Id      string `yaml:"id"`
	Version string `yaml:"version,omitempty"`
	Kind    string `yaml:"kind"` // marketplace | builtin | local-project
	Path    string `yaml:"path"`
}

// Failure is a standardized per-item error, so the report stays consumable
// even when parts of the resolution failed.
type Failure struct {
	Code  string `yaml:"code"`
	Cause string `yaml:"cause,omitempty"`
}

func Standardize(err error) *Failure {
	if err == nil {
		return nil
	}
	return &Failure{Code: builderrors.Code(err), Cause: err.Error()}
}

// VcsInfo stamps the report with the plugin project's git state, matching
// what the publishing step records in artifact annotations.
type VcsInfo struct {
	Commit string `yaml:"commit"`
	Tag    string `yaml:"tag,omitempty"`
	Dirty  bool   `yaml:"dirty,omitempty"`
}

// CollectVcsInfo reads the repository containing projectDir, if any.
func CollectVcsInfo(projectDir string) (*VcsInfo, error) {
	r, err := git.PlainOpenWithOptions(projectDir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	head, err := r.Head()
	if err != nil {
		return nil, err
	}

	info := &VcsInfo{Commit: head.Hash().String()}

	tag, err := r.TagObject(head.Hash())
	if err == nil {
		info.Tag = tag.Name
	} else if !errors.Is(err, plumbing.ErrObjectNotFound) {
		return nil, err
	}

	wt, err := r.Worktree()
	if err == nil {
		if status, err := wt.Status(); err == nil {
			info.Dirty = !status.IsClean()
		}
	}

	return info, nil
}

func New(projectName string) *Resolution {
	return &Resolution{
		ManifestMeta: schema.ManifestMeta{
			APIVersion: ApiVersion,
			Kind:       Kind,
		},
		Project: projectName,
	}
}

func (r *Resolution) AddError(err error) {
	if f := Standardize(err); f != nil {
		r.Errors = append(r.Errors, f)
	}
}

// Write marshals the resolution to filePath, creating parent directories.
func (r *Resolution) Write(filePath string) error {
	contents, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	if err := utils.EnsureDirs(filepath.Dir(filePath)); err != nil {
		return err
	}
	return os.WriteFile(filePath, contents, 0644)
}
