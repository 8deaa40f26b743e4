// SPDX-License-Identifier: AGPL-3.0-or-later

package teach

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartekus/craft/cmd/craft/internal/app"
	"github.com/bartekus/craft/internal/semester"
)

func newValidateCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the teaching config for errors",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, path, err := a.LoadConfig()
			if err != nil {
				return err
			}

			sc := cfg.SemesterConfig()
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "✓ Teaching config valid: %s\n", path)
			_, _ = fmt.Fprintf(out, "  Semester: %s to %s, %d weeks, %d break(s)\n",
				semester.FormatDate(sc.Start), semester.FormatDate(sc.End),
				semester.TotalWeeks(sc), len(sc.Breaks))
			_, _ = fmt.Fprintf(out, "  Current week: %s\n", cfg.Progress.CurrentWeek)
			return nil
		},
	}

	addConfigFlag(cmd)

	return cmd
}
