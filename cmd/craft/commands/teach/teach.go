// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Craft - Craft is a helper toolkit for the markdown-command plugin ecosystem of AI coding assistants.
It ships the teaching commands' calendar engine, configuration loader, and report renderers.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package teach contains the `craft teach` Cobra subcommands.
package teach

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bartekus/craft/cmd/craft/internal/app"
	"github.com/bartekus/craft/cmd/craft/internal/clierr"
	"github.com/bartekus/craft/internal/presenter"
	"github.com/bartekus/craft/internal/semester"
	"github.com/bartekus/craft/internal/settings"
)

// NewTeachCommand returns the `craft teach` command.
func NewTeachCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teach",
		Short: "Semester calendar tools for course repositories",
		Long:  "Teaching commands read .flow/teach-config.yml and report where the semester stands: current week, breaks, and progress.",
	}

	cmd.AddCommand(newProgressCommand(a))
	cmd.AddCommand(newWeeksCommand(a))
	cmd.AddCommand(newValidateCommand(a))
	cmd.AddCommand(newLastCommand(a))
	cmd.AddCommand(newCacheCommand(a))

	return cmd
}

// noArgs is cobra.NoArgs reported as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	return clierr.Usage(cobra.NoArgs(cmd, args))
}

func addConfigFlag(cmd *cobra.Command) {
	settings.AddStringFlag(cmd.Flags(), settings.FlagConfig)
}

func addFormatFlag(cmd *cobra.Command) {
	settings.AddStringFlag(cmd.Flags(), settings.FlagFormat)
}

// queryDate resolves --date, defaulting to today on the app clock.
func queryDate(a *app.App, raw string) (time.Time, error) {
	if raw == "" {
		return semester.Truncate(a.Now()), nil
	}
	d, err := semester.ParseDate(raw)
	if err != nil {
		return time.Time{}, clierr.Usage(fmt.Errorf("invalid --date: %w", err))
	}
	return d, nil
}

func parseFormat(a *app.App) (presenter.Format, error) {
	f, err := presenter.ParseFormat(a.Settings.Format)
	if err != nil {
		return "", clierr.Usage(err)
	}
	return f, nil
}

func presenterOptions(a *app.App, render bool) presenter.Options {
	return presenter.Options{
		NoColor:        a.Settings.NoColor,
		RenderMarkdown: render,
	}
}
