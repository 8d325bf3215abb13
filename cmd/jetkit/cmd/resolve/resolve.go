// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/jetkit/jetkit/pkg/buildconfig"
	"github.com/jetkit/jetkit/pkg/pipeline"
	"github.com/jetkit/jetkit/pkg/project"
	"github.com/spf13/cobra"
)

func Cmd(config *buildconfig.Config) *cobra.Command {
	var output string
	var reportFile string

	cmd := &cobra.Command{
		Use:  "resolve",
		Long: "Run a full resolution pass: target IDE, plugin dependencies and runtime. Writes the resolution report consumed by packaging and verification tasks.",
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, projectDir, err := project.LoadCurrent()
			if err != nil {
				return err
			}

			p, err := pipeline.New(config, proj, projectDir)
			if err != nil {
				return err
			}

			result, runErr := p.Run(cmd.Context())

			if reportFile == "" {
				reportFile = reportFilePath(projectDir)
			}
			if result != nil {
				if err := result.Write(reportFile); err != nil {
					return err
				}
			}
			if runErr != nil {
				return runErr
			}

			switch output {
			case "yaml":
				bytes, err := yaml.Marshal(result)
				if err != nil {
					return err
				}
				cmd.Println(string(bytes))
			default:
				cmd.Println(result.Table())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format, one of (table, yaml)")
	cmd.Flags().StringVar(&reportFile, "report-file", "", "override the resolution report path")

	return cmd
}

func reportFilePath(projectDir string) string {
	if v, ok := os.LookupEnv(buildconfig.ReportFilePathEnvVar); ok {
		return v
	}
	return filepath.Join(projectDir, buildconfig.ReportFileName)
}
