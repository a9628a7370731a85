package dex

import (
	"github.com/KirkDiggler/dexseed/internal/clients/pokeapi"
	"github.com/KirkDiggler/dexseed/internal/entities/dex"
)

// AssembleRecordInput defines the request for building one record
type AssembleRecordInput struct {
	ID int
}

// AssembleRecordOutput defines the response for building one record
type AssembleRecordOutput struct {
	Record *dex.Record
	// Degraded is true when the primary fetch failed and Record is all
	// placeholders
	Degraded bool
}

// ResolveEvolutionInput defines the request for resolving direct successors
type ResolveEvolutionInput struct {
	// Species may be nil when the species fetch failed
	Species *pokeapi.Species
}

// ResolveEvolutionOutput defines the response for resolving direct successors
type ResolveEvolutionOutput struct {
	// Evolutions holds one entry per direct successor, or a single sentinel
	Evolutions []dex.Evolution
}

// RunBatchInput defines the request for a batch run over [StartID, EndID)
type RunBatchInput struct {
	StartID int
	EndID   int
}

// RunBatchOutput defines the response for a batch run
type RunBatchOutput struct {
	// Records are in id order
	Records []*dex.Record
	// Degraded counts records that fell back to placeholders
	Degraded int
	// PublishFailures counts records the record store rejected
	PublishFailures int
}
