package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dexseed/internal/config"
	"github.com/KirkDiggler/dexseed/internal/document"
	dexorch "github.com/KirkDiggler/dexseed/internal/orchestrators/dex"
)

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Fetch a range of records and write the seed document",
		Long: `Fetch every record in [start-id, end-id) in order and write them as one
document. Records that cannot be fetched are written as placeholders so the
document always covers the whole range.`,
		Args: cobra.NoArgs,
		RunE: a.runGenerate,
	}

	cmd.Flags().Int("start-id", config.DefaultStartID, "first record number")
	cmd.Flags().Int("end-id", config.DefaultEndID, "record number to stop before")

	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	writer, err := document.New(a.cfg.Format)
	if err != nil {
		return err
	}

	repo, closeRepo, err := a.newRecordRepo()
	if err != nil {
		return err
	}
	defer closeRepo()

	svc, err := a.newOrchestrator(repo)
	if err != nil {
		return err
	}

	out, err := svc.RunBatch(ctx, &dexorch.RunBatchInput{
		StartID: a.cfg.StartID,
		EndID:   a.cfg.EndID,
	})
	if err != nil {
		if out != nil {
			slog.WarnContext(ctx, "batch stopped, no document written",
				"collected", len(out.Records))
		}
		return err
	}

	if err := document.WriteFile(a.cfg.Output, writer, out.Records); err != nil {
		return err
	}

	slog.InfoContext(ctx, "data fetching complete",
		"output", a.cfg.Output,
		"records", len(out.Records),
		"degraded", out.Degraded)

	return nil
}
