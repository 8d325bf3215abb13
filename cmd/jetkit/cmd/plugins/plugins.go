// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package plugins

import (
	"github.com/fatih/color"
	"github.com/jetkit/jetkit/pkg/buildconfig"
	"github.com/jetkit/jetkit/pkg/downloader"
	"github.com/jetkit/jetkit/pkg/ide"
	"github.com/jetkit/jetkit/pkg/pipeline"
	"github.com/jetkit/jetkit/pkg/plugins"
	"github.com/jetkit/jetkit/pkg/project"
	"github.com/spf13/cobra"
)

func Cmd(config *buildconfig.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:  "plugins",
		Long: "Resolve the project's declared plugin dependencies against the target IDE's bundled modules and the marketplace repository, enforcing version compatibility.",
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, projectDir, err := project.LoadCurrent()
			if err != nil {
				return err
			}

			p, err := pipeline.New(config, proj, projectDir)
			if err != nil {
				return err
			}

			var ideDep *ide.Dependency
			if ideDep, err = p.IdeResolver().Resolve(cmd.Context()); err != nil {
				return err
			}

			descriptors := proj.Spec.Plugins
			if len(args) > 0 {
				descriptors = args
			}

			deps, err := plugins.NewResolver(config, downloader.New(config), ideDep).
				ResolveAll(cmd.Context(), descriptors)
			if err != nil {
				return err
			}

			for _, dep := range deps {
				cmd.Printf("%s\t%s\n", color.GreenString(dep.Id()), dep.Path())
			}
			return nil
		},
	}

	return cmd
}
