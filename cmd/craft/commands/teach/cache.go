// SPDX-License-Identifier: AGPL-3.0-or-later

package teach

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartekus/craft/cmd/craft/internal/app"
	"github.com/bartekus/craft/cmd/craft/internal/clierr"
	"github.com/bartekus/craft/internal/settings"
)

func newCacheCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the saved report cache",
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved report cache",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := a.Store()
			if err := store.Reset(); err != nil {
				return clierr.Wrap(clierr.ExitIO, "resetting report cache", err)
			}
			a.Logger.Debug("reset report cache", "path", store.Path())
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "✓ Report cache cleared")
			return nil
		},
	}
	settings.AddStringFlag(reset.Flags(), settings.FlagCacheDir)
	cmd.AddCommand(reset)

	return cmd
}
