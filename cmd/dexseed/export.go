package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dexseed/internal/document"
	"github.com/KirkDiggler/dexseed/internal/repositories/records"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the records held in the record store as a seed document",
		Long: `Read every record published by a previous generate run from the record
store and write them in number order, without contacting PokeAPI.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			writer, err := document.New(a.cfg.Format)
			if err != nil {
				return err
			}

			repo, closeRepo, err := a.requireRecordRepo()
			if err != nil {
				return err
			}
			defer closeRepo()

			out, err := repo.List(ctx, records.ListInput{})
			if err != nil {
				return err
			}
			if len(out.Records) == 0 {
				slog.WarnContext(ctx, "record store is empty")
			}

			if err := document.WriteFile(a.cfg.Output, writer, out.Records); err != nil {
				return err
			}

			slog.InfoContext(ctx, "export complete",
				"output", a.cfg.Output,
				"records", len(out.Records))
			return nil
		},
	}
}
