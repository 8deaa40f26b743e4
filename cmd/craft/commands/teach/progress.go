// SPDX-License-Identifier: AGPL-3.0-or-later

package teach

import (
	"github.com/spf13/cobra"

	"github.com/bartekus/craft/cmd/craft/internal/app"
	"github.com/bartekus/craft/cmd/craft/internal/clierr"
	"github.com/bartekus/craft/internal/presenter"
	"github.com/bartekus/craft/internal/reportcache"
	"github.com/bartekus/craft/internal/semester"
	"github.com/bartekus/craft/internal/settings"
)

func newProgressCommand(a *app.App) *cobra.Command {
	var (
		date   string
		render bool
		save   bool
	)

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show the current week and semester progress",
		Example: `  craft teach progress
  craft teach progress --date 2026-03-18 --format json
  craft teach progress --format markdown --render --save`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseFormat(a)
			if err != nil {
				return err
			}
			if render && format != presenter.FormatMarkdown {
				return clierr.New(clierr.ExitUsage, "--render requires --format markdown")
			}

			query, err := queryDate(a, date)
			if err != nil {
				return err
			}

			cfg, path, err := a.LoadConfig()
			if err != nil {
				return err
			}

			report := semester.Calculate(cfg.SemesterConfig(), query)
			a.Logger.Debug("calculated progress",
				"date", semester.FormatDate(query),
				"week", report.CurrentWeek,
				"total_weeks", report.TotalWeeks,
				"percent", report.PercentComplete,
				"on_break", report.OnBreak)

			view := presenter.View{Course: cfg.Course.Title(), Report: report}
			if err := presenter.Render(cmd.OutOrStdout(), format, view, presenterOptions(a, render)); err != nil {
				return clierr.Wrap(clierr.ExitIO, "writing report", err)
			}

			if !save {
				return nil
			}
			store := a.Store()
			entry := reportcache.Entry{
				SavedAt:    a.Now().UTC(),
				QueryDate:  semester.FormatDate(query),
				ConfigPath: path,
				Course:     view.Course,
				Report:     report,
			}
			if err := store.Write(entry); err != nil {
				return clierr.Wrap(clierr.ExitIO, "saving report", err)
			}
			a.Logger.Info("saved report", "path", store.Path())
			return nil
		},
	}

	addConfigFlag(cmd)
	addFormatFlag(cmd)
	settings.AddStringFlag(cmd.Flags(), settings.FlagCacheDir)
	cmd.Flags().StringVar(&date, "date", "", "calculate for this date (YYYY-MM-DD) instead of today")
	cmd.Flags().BoolVar(&render, "render", false, "render markdown output for the terminal")
	cmd.Flags().BoolVar(&save, "save", false, "save the report for 'craft teach last'")

	return cmd
}
