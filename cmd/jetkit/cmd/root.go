// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	ideCmd "github.com/jetkit/jetkit/cmd/jetkit/cmd/ide"
	pluginsCmd "github.com/jetkit/jetkit/cmd/jetkit/cmd/plugins"
	resolveCmd "github.com/jetkit/jetkit/cmd/jetkit/cmd/resolve"
	runtimeCmd "github.com/jetkit/jetkit/cmd/jetkit/cmd/runtime"
	"github.com/goccy/go-yaml"
	"github.com/jetkit/jetkit/pkg/buildconfig"
	"github.com/jetkit/jetkit/pkg/logging"
	"github.com/jetkit/jetkit/pkg/toolversion"
	"github.com/spf13/cobra"
)

const JetkitName = "jetkit"

func RootCmd() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:           JetkitName,
		Short:         "resolve, package and verify IDE plugin builds",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	if err := logging.InitLogging(); err != nil {
		return nil, err
	}

	config, err := buildconfig.Get()
	if err != nil {
		return nil, err
	}
	if err := config.EnsureDirs(); err != nil {
		return nil, err
	}

	cmd.AddCommand(
		resolveCmd.Cmd(config),
		ideCmd.Cmd(config),
		runtimeCmd.Cmd(config),
		pluginsCmd.Cmd(config),
	)

	version, err := yaml.Marshal(toolversion.Get())
	if err != nil {
		return nil, err
	}
	cmd.Version = string(version)
	cmd.SetVersionTemplate("{{.Version}}")

	return cmd, nil
}
