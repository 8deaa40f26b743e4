// SPDX-License-Identifier: AGPL-3.0-or-later

package teach

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartekus/craft/cmd/craft/internal/app"
	"github.com/bartekus/craft/cmd/craft/internal/clierr"
	"github.com/bartekus/craft/internal/presenter"
	"github.com/bartekus/craft/internal/settings"
)

func newLastCommand(a *app.App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "last",
		Short: "Show the report saved by `craft teach progress --save`",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := a.Store()
			entry, err := store.Read()
			if err != nil {
				return clierr.Wrap(clierr.ExitIO, "reading saved report", err)
			}
			if entry == nil {
				return clierr.New(clierr.ExitFailure, "no saved report; run `craft teach progress --save` first")
			}
			a.Logger.Debug("read saved report", "path", store.Path(), "saved_at", entry.SavedAt)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(entry); err != nil {
					return clierr.Wrap(clierr.ExitIO, "writing saved report", err)
				}
				return nil
			}

			view := presenter.View{Course: entry.Course, Report: entry.Report}
			if err := presenter.Terminal(out, view, presenterOptions(a, false)); err != nil {
				return clierr.Wrap(clierr.ExitIO, "writing saved report", err)
			}
			_, _ = fmt.Fprintf(out, "\nSaved %s for %s\n", entry.SavedAt.Format("2006-01-02 15:04 MST"), entry.QueryDate)
			return nil
		},
	}

	settings.AddStringFlag(cmd.Flags(), settings.FlagCacheDir)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the saved entry as JSON")

	return cmd
}
