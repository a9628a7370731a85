// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dexseed/internal/clients/pokeapi"
	pokeapimock "github.com/KirkDiggler/dexseed/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/dexseed/internal/repositories/records"
	recordsmock "github.com/KirkDiggler/dexseed/internal/repositories/records/mock"
)

// ExpectFullFetch sets up the three upstream calls a healthy record makes:
// primary record, species, then evolution chain.
func ExpectFullFetch(
	ctx context.Context, mockClient *pokeapimock.MockClient,
	pokemon *pokeapi.Pokemon, species *pokeapi.Species, chain *pokeapi.EvolutionChain,
) {
	gomock.InOrder(
		mockClient.EXPECT().GetPokemon(ctx, pokemon.ID).Return(pokemon, nil),
		mockClient.EXPECT().GetSpecies(ctx, pokemon.ID).Return(species, nil),
		mockClient.EXPECT().GetEvolutionChain(ctx, species.EvolutionChain.URL).Return(chain, nil),
	)
}

// ExpectPrimaryFailure sets up a failed primary fetch. No other calls are
// allowed for id afterwards.
func ExpectPrimaryFailure(ctx context.Context, mockClient *pokeapimock.MockClient, id int, err error) {
	mockClient.EXPECT().
		GetPokemon(ctx, id).
		Return(nil, err)
}

// ExpectSpeciesFailure sets up a healthy primary fetch followed by a failed
// species fetch
func ExpectSpeciesFailure(ctx context.Context, mockClient *pokeapimock.MockClient, pokemon *pokeapi.Pokemon, err error) {
	gomock.InOrder(
		mockClient.EXPECT().GetPokemon(ctx, pokemon.ID).Return(pokemon, nil),
		mockClient.EXPECT().GetSpecies(ctx, pokemon.ID).Return(nil, err),
	)
}

// ExpectRecordSave sets up a mock expectation for publishing one record.
// A nil err echoes the record number back.
func ExpectRecordSave(ctx context.Context, mockRepo *recordsmock.MockRepository, err error) *gomock.Call {
	return mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input records.SaveInput) (*records.SaveOutput, error) {
			if err != nil {
				return nil, err
			}
			return &records.SaveOutput{Number: input.Record.Number}, nil
		})
}
