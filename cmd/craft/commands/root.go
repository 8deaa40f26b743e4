// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Craft - Craft is a helper toolkit for the markdown-command plugin ecosystem of AI coding assistants.
It ships the teaching commands' calendar engine, configuration loader, and report renderers.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bartekus/craft/cmd/craft/commands/teach"
	"github.com/bartekus/craft/cmd/craft/internal/app"
	"github.com/bartekus/craft/cmd/craft/internal/clierr"
)

// NewRootCmd constructs the Craft root Cobra command.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWith(app.New())
}

// NewRootCmdWith builds the root command around a, so tests can pin the
// working directory and clock.
func NewRootCmdWith(a *app.App) *cobra.Command {
	version := os.Getenv("CRAFT_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:               "craft",
		Short:             "Craft - helper toolkit for course and plugin repositories",
		Long:              "Craft provides the teaching calendar commands: semester progress, week schedules, and config validation.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.Configure,
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return clierr.Usage(err)
	})

	// Global flags
	app.RegisterGlobalFlags(cmd)

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of Craft",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Craft version %s\n", version)
		},
	})

	cmd.AddCommand(teach.NewTeachCommand(a))

	return cmd
}
