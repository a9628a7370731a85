// Package dex implements the dex orchestrator. It assembles normalized
// records from the upstream service and drives batch runs over id ranges.
package dex

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/dexseed/internal/clients/pokeapi"
	"github.com/KirkDiggler/dexseed/internal/entities/dex"
	"github.com/KirkDiggler/dexseed/internal/errors"
	"github.com/KirkDiggler/dexseed/internal/repositories/records"
	"github.com/KirkDiggler/dexseed/internal/services/normalize"
)

// Service defines the interface for building seed records
type Service interface {
	// AssembleRecord builds one record. Upstream failures degrade the record
	// and never return an error.
	AssembleRecord(ctx context.Context, input *AssembleRecordInput) (*AssembleRecordOutput, error)

	// ResolveEvolution lists the direct successors of a species
	ResolveEvolution(ctx context.Context, input *ResolveEvolutionInput) (*ResolveEvolutionOutput, error)

	// RunBatch assembles every id in [StartID, EndID) in order
	RunBatch(ctx context.Context, input *RunBatchInput) (*RunBatchOutput, error)
}

// Config holds the dependencies for the dex orchestrator
type Config struct {
	Client pokeapi.Client

	// RecordRepo is optional. When set every batch record is published to it.
	RecordRepo records.Repository

	// VersionGroups is the learnset lookup priority. Defaults to
	// dex.DefaultVersionGroups.
	VersionGroups []string

	// SpriteURLTemplate defaults to dex.DefaultSpriteURLTemplate
	SpriteURLTemplate string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	for i, group := range c.VersionGroups {
		if group == "" {
			vb.Fieldf("VersionGroups", "entry %d is empty", i)
		}
	}

	if err := vb.Build(); err != nil {
		return err
	}

	if len(c.VersionGroups) == 0 {
		c.VersionGroups = dex.DefaultVersionGroups
	}
	if c.SpriteURLTemplate == "" {
		c.SpriteURLTemplate = dex.DefaultSpriteURLTemplate
	}

	return nil
}

type orchestrator struct {
	client         pokeapi.Client
	recordRepo     records.Repository
	versionGroups  []string
	spriteTemplate string
}

// NewOrchestrator creates a new dex orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client:         cfg.Client,
		recordRepo:     cfg.RecordRepo,
		versionGroups:  append([]string(nil), cfg.VersionGroups...),
		spriteTemplate: cfg.SpriteURLTemplate,
	}, nil
}

// PlaceholderRecord returns the all-placeholder record for id
func PlaceholderRecord(id int, spriteTemplate string) *dex.Record {
	return dex.NewPlaceholderRecord(id, normalize.SpriteURL(spriteTemplate, id))
}

// AssembleRecord builds the normalized record for input.ID
func (o *orchestrator) AssembleRecord(ctx context.Context, input *AssembleRecordInput) (*AssembleRecordOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID < 1 {
		return nil, errors.InvalidArgumentf("id must be positive, got %d", input.ID)
	}

	pokemon, err := o.client.GetPokemon(ctx, input.ID)
	if err != nil {
		slog.WarnContext(ctx, "using placeholder record",
			"id", input.ID,
			"code", errors.GetCode(err))
		return &AssembleRecordOutput{
			Record:   PlaceholderRecord(input.ID, o.spriteTemplate),
			Degraded: true,
		}, nil
	}

	// a failed species lookup only degrades the evolution field
	species, err := o.client.GetSpecies(ctx, input.ID)
	if err != nil {
		species = nil
	}

	evolution, err := o.ResolveEvolution(ctx, &ResolveEvolutionInput{Species: species})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve evolution for %d", input.ID)
	}

	return &AssembleRecordOutput{
		Record: o.buildRecord(input.ID, pokemon, evolution.Evolutions),
	}, nil
}

func (o *orchestrator) buildRecord(id int, p *pokeapi.Pokemon, evolutions []dex.Evolution) *dex.Record {
	abilities := normalize.CapitalizeAll(normalize.Abilities(p))
	vanilla := normalize.CapitalizeStats(normalize.Stats(p))
	version, moves := normalize.Learnset(p, o.versionGroups)

	return &dex.Record{
		Number: id,
		Name:   normalize.Capitalize(p.Name),
		Type:   normalize.CapitalizeAll(normalize.Types(p)),
		Abilities: dex.AbilitySet{
			Old: abilities,
			New: make([]string, len(abilities)),
		},
		Evolution: normalize.CapitalizeEvolutions(evolutions),
		Stats: dex.StatLayers{
			Vanilla: vanilla,
			Updated: vanilla.Clone(),
			Changes: dex.Stats{},
		},
		LearnsetVersion: normalize.Capitalize(version),
		Learnset:        normalize.CapitalizeMoves(moves),
		Sprite:          normalize.SpriteURL(o.spriteTemplate, id),
		Location:        []string{""},
	}
}

// RunBatch assembles records for [StartID, EndID) one at a time. A failed
// id degrades its record and the batch continues. Cancellation is checked
// between ids and returns the records collected so far.
func (o *orchestrator) RunBatch(ctx context.Context, input *RunBatchInput) (*RunBatchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.StartID < 1 {
		vb.Field("StartID", "must be at least 1")
	}
	if input.EndID <= input.StartID {
		vb.Fieldf("EndID", "must be greater than StartID (%d)", input.StartID)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	output := &RunBatchOutput{
		Records: make([]*dex.Record, 0, input.EndID-input.StartID),
	}

	for id := input.StartID; id < input.EndID; id++ {
		if err := ctx.Err(); err != nil {
			slog.WarnContext(ctx, "batch interrupted",
				"next_id", id,
				"collected", len(output.Records))
			return output, errors.WrapWithCode(err, errors.CodeCanceled, "batch interrupted")
		}

		slog.InfoContext(ctx, "fetching record", "id", id)

		assembled, err := o.AssembleRecord(ctx, &AssembleRecordInput{ID: id})
		if err != nil {
			return output, errors.Wrapf(err, "failed to assemble record %d", id)
		}
		if assembled.Degraded {
			output.Degraded++
		}
		output.Records = append(output.Records, assembled.Record)

		o.publish(ctx, assembled.Record, output)
	}

	slog.InfoContext(ctx, "batch complete",
		"records", len(output.Records),
		"degraded", output.Degraded,
		"publish_failures", output.PublishFailures)

	return output, nil
}

func (o *orchestrator) publish(ctx context.Context, record *dex.Record, output *RunBatchOutput) {
	if o.recordRepo == nil {
		return
	}

	_, err := o.recordRepo.Save(ctx, records.SaveInput{Record: record})
	if err != nil {
		output.PublishFailures++
		slog.WarnContext(ctx, "failed to publish record",
			"id", record.Number,
			"error", err)
	}
}
