// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package runtime

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jetkit/jetkit/pkg/buildconfig"
	"github.com/jetkit/jetkit/pkg/downloader"
	"github.com/jetkit/jetkit/pkg/jbr"
	"github.com/jetkit/jetkit/pkg/platform"
	"github.com/spf13/cobra"
)

func Cmd(config *buildconfig.Config) *cobra.Command {
	var token, explicitDir, ideDir string

	cmd := &cobra.Command{
		Use:  "runtime",
		Long: "Resolve a usable Java runtime executable, trying the explicit directory, the version token, the IDE-bundled runtime and the host runtime in order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := jbr.NewResolver(config, downloader.New(config), platform.Current())
			executable, ok := resolver.ResolveExecutable(cmd.Context(), jbr.Options{
				ExplicitDir:  explicitDir,
				VersionToken: token,
				IdeDir:       ideDir,
			})
			if !ok {
				return fmt.Errorf("no usable runtime could be resolved")
			}

			cmd.Println(color.GreenString(executable))
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "runtime version token, e.g. 11_0_2b159")
	cmd.Flags().StringVar(&explicitDir, "dir", "", "explicit runtime directory")
	cmd.Flags().StringVar(&ideDir, "ide-dir", "", "IDE installation to take the bundled runtime from")

	return cmd
}
