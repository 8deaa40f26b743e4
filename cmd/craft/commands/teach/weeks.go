// SPDX-License-Identifier: AGPL-3.0-or-later

package teach

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/bartekus/craft/cmd/craft/internal/app"
	"github.com/bartekus/craft/cmd/craft/internal/clierr"
	"github.com/bartekus/craft/internal/presenter"
	"github.com/bartekus/craft/internal/semester"
)

func newWeeksCommand(a *app.App) *cobra.Command {
	var (
		date   string
		render bool
	)

	cmd := &cobra.Command{
		Use:   "weeks",
		Short: "List every week of the semester with its dates and breaks",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseFormat(a)
			if err != nil {
				return err
			}
			if format == presenter.FormatJSON {
				return clierr.New(clierr.ExitUsage, "weeks supports --format terminal or markdown")
			}

			query, err := queryDate(a, date)
			if err != nil {
				return err
			}

			cfg, _, err := a.LoadConfig()
			if err != nil {
				return err
			}

			sc := cfg.SemesterConfig()
			weeks := semester.Schedule(sc)
			current := semester.Calculate(sc, query).CurrentWeek
			a.Logger.Debug("built schedule", "weeks", len(weeks), "current", current)

			out := cmd.OutOrStdout()
			opts := presenterOptions(a, render)
			if format == presenter.FormatTerminal {
				if err := presenter.WeeksTerminal(out, weeks, current, opts); err != nil {
					return clierr.Wrap(clierr.ExitIO, "writing schedule", err)
				}
				return nil
			}

			md := presenter.WeeksMarkdown(weeks, current)
			if render {
				if md, err = presenter.RenderMarkdown(md, opts.Width); err != nil {
					a.Logger.Warn("markdown rendering failed, printing source", "err", err)
				}
			}
			if _, err := io.WriteString(out, md); err != nil {
				return clierr.Wrap(clierr.ExitIO, "writing schedule", err)
			}
			return nil
		},
	}

	addConfigFlag(cmd)
	addFormatFlag(cmd)
	cmd.Flags().StringVar(&date, "date", "", "mark the week containing this date (YYYY-MM-DD) instead of today")
	cmd.Flags().BoolVar(&render, "render", false, "render markdown output for the terminal")

	return cmd
}
