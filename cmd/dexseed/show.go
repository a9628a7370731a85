package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dexseed/internal/document"
	"github.com/KirkDiggler/dexseed/internal/entities/dex"
	"github.com/KirkDiggler/dexseed/internal/errors"
	dexorch "github.com/KirkDiggler/dexseed/internal/orchestrators/dex"
	"github.com/KirkDiggler/dexseed/internal/repositories/records"
)

func newShowCmd(a *app) *cobra.Command {
	var fromStore bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print one normalized record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id < 1 {
				return errors.InvalidArgumentf("id must be a positive integer, got %q", args[0])
			}

			var record *dex.Record
			if fromStore {
				record, err = a.storedRecord(cmd, id)
			} else {
				record, err = a.fetchRecord(cmd, id)
			}
			if err != nil {
				return err
			}

			writer, err := document.New(a.cfg.Format)
			if err != nil {
				return err
			}
			return writer.Write(cmd.OutOrStdout(), []*dex.Record{record})
		},
	}

	cmd.Flags().BoolVar(&fromStore, "from-store", false, "read the record from the record store instead of upstream")

	return cmd
}

func (a *app) fetchRecord(cmd *cobra.Command, id int) (*dex.Record, error) {
	svc, err := a.newOrchestrator(nil)
	if err != nil {
		return nil, err
	}

	out, err := svc.AssembleRecord(cmd.Context(), &dexorch.AssembleRecordInput{ID: id})
	if err != nil {
		return nil, err
	}
	return out.Record, nil
}

func (a *app) storedRecord(cmd *cobra.Command, id int) (*dex.Record, error) {
	repo, closeRepo, err := a.requireRecordRepo()
	if err != nil {
		return nil, err
	}
	defer closeRepo()

	out, err := repo.Get(cmd.Context(), records.GetInput{Number: id})
	if err != nil {
		return nil, err
	}
	return out.Record, nil
}
