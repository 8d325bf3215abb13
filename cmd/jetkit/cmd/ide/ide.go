// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package ide

import (
	"github.com/fatih/color"
	"github.com/jetkit/jetkit/pkg/buildconfig"
	"github.com/jetkit/jetkit/pkg/downloader"
	"github.com/jetkit/jetkit/pkg/ide"
	"github.com/jetkit/jetkit/pkg/project"
	"github.com/spf13/cobra"
)

func Cmd(config *buildconfig.Config) *cobra.Command {
	var version, versionType, localPath string
	var downloadSources bool

	cmd := &cobra.Command{
		Use:  "ide",
		Long: "Resolve the target IDE distribution to a local installation, downloading and extracting it when needed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := ide.Options{
				Version:         version,
				VersionType:     versionType,
				LocalPath:       localPath,
				DownloadSources: downloadSources,
			}

			// fall back to the project manifest when no flags are given
			if opts.Version == "" && opts.LocalPath == "" {
				proj, _, err := project.LoadCurrent()
				if err != nil {
					return err
				}
				extraCoords, err := proj.Spec.Ide.ExtraCoordinates()
				if err != nil {
					return err
				}
				opts = ide.Options{
					Version:           proj.Spec.EffectiveIdeVersion(),
					VersionType:       proj.Spec.Ide.Type,
					LocalPath:         proj.Spec.Ide.LocalPath,
					DownloadSources:   proj.Spec.Ide.DownloadSources,
					ExtraDependencies: extraCoords,
				}
			}

			dep, err := ide.NewResolver(config, downloader.New(config), opts).Resolve(cmd.Context())
			if err != nil {
				return err
			}

			cmd.Printf("Resolved IDE build %s at %s\n",
				color.GreenString(dep.BuildNumber.String()), dep.InstallDir)
			if dep.SourcesPath != "" {
				cmd.Println("Sources: " + dep.SourcesPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&version, "version", "", "target IDE version, e.g. 2021.1")
	cmd.Flags().StringVar(&versionType, "type", "", "product code, e.g. IC")
	cmd.Flags().StringVar(&localPath, "local-path", "", "use an existing local installation instead of downloading")
	cmd.Flags().BoolVar(&downloadSources, "download-sources", false, "also download the IDE source jars")

	return cmd
}
