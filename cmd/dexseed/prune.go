package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dexseed/internal/repositories/records"
)

func newPruneCmd(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove record store entries that no longer decode as records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			repo, closeRepo, err := a.requireRecordRepo()
			if err != nil {
				return err
			}
			defer closeRepo()

			out, err := repo.Prune(ctx, records.PruneInput{DryRun: dryRun})
			if err != nil {
				return err
			}

			for _, key := range out.Corrupted {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}

			slog.InfoContext(ctx, "prune complete",
				"checked", out.Checked,
				"corrupted", len(out.Corrupted),
				"removed", out.Removed,
				"dry_run", dryRun)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list corrupted keys without deleting them")

	return cmd
}
