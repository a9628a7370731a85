// Package builders provides test data builders for raw PokeAPI documents
package builders

import (
	"github.com/KirkDiggler/dexseed/internal/clients/pokeapi"
)

// PokemonBuilder provides a fluent interface for building test Pokemon documents
type PokemonBuilder struct {
	pokemon *pokeapi.Pokemon
}

// NewPokemonBuilder creates a builder with an id and name and nothing else
func NewPokemonBuilder(id int, name string) *PokemonBuilder {
	return &PokemonBuilder{
		pokemon: &pokeapi.Pokemon{
			ID:   id,
			Name: name,
		},
	}
}

// WithTypes appends types in slot order
func (b *PokemonBuilder) WithTypes(names ...string) *PokemonBuilder {
	for _, name := range names {
		b.pokemon.Types = append(b.pokemon.Types, pokeapi.TypeSlot{
			Slot: len(b.pokemon.Types) + 1,
			Type: pokeapi.NamedResource{Name: name},
		})
	}
	return b
}

// WithAbility appends one ability
func (b *PokemonBuilder) WithAbility(name string, hidden bool) *PokemonBuilder {
	b.pokemon.Abilities = append(b.pokemon.Abilities, pokeapi.AbilitySlot{
		Ability:  pokeapi.NamedResource{Name: name},
		IsHidden: hidden,
		Slot:     len(b.pokemon.Abilities) + 1,
	})
	return b
}

// WithStat appends one base stat
func (b *PokemonBuilder) WithStat(name string, value int) *PokemonBuilder {
	b.pokemon.Stats = append(b.pokemon.Stats, pokeapi.StatEntry{
		BaseStat: value,
		Stat:     pokeapi.NamedResource{Name: name},
	})
	return b
}

// WithBaseStats sets the six canonical stats in upstream order
func (b *PokemonBuilder) WithBaseStats(hp, attack, defense, spAttack, spDefense, speed int) *PokemonBuilder {
	return b.WithStat("hp", hp).
		WithStat("attack", attack).
		WithStat("defense", defense).
		WithStat("special-attack", spAttack).
		WithStat("special-defense", spDefense).
		WithStat("speed", speed)
}

// LevelUp describes one version-group detail for WithMove
type LevelUp struct {
	VersionGroup string
	Level        int
}

// WithMove appends a move with one detail per version group
func (b *PokemonBuilder) WithMove(name string, details ...LevelUp) *PokemonBuilder {
	entry := pokeapi.MoveEntry{Move: pokeapi.NamedResource{Name: name}}
	for _, d := range details {
		method := "level-up"
		if d.Level == 0 {
			method = "machine"
		}
		entry.VersionGroupDetails = append(entry.VersionGroupDetails, pokeapi.VersionGroupDetail{
			LevelLearnedAt:  d.Level,
			MoveLearnMethod: pokeapi.NamedResource{Name: method},
			VersionGroup:    pokeapi.NamedResource{Name: d.VersionGroup},
		})
	}
	b.pokemon.Moves = append(b.pokemon.Moves, entry)
	return b
}

// Build returns the built document
func (b *PokemonBuilder) Build() *pokeapi.Pokemon {
	return b.pokemon
}

// NewSpecies returns a species pointing at chainURL, or with no chain
// reference when chainURL is empty
func NewSpecies(id int, name, chainURL string) *pokeapi.Species {
	s := &pokeapi.Species{ID: id, Name: name}
	if chainURL != "" {
		s.EvolutionChain = &pokeapi.APIResource{URL: chainURL}
	}
	return s
}

// ChainNode builds one evolution-chain node. trigger and minLevel describe
// the edge into this node; pass "" for the root.
func ChainNode(species, trigger string, minLevel *int, children ...pokeapi.ChainLink) pokeapi.ChainLink {
	link := pokeapi.ChainLink{
		Species:   pokeapi.NamedResource{Name: species},
		EvolvesTo: children,
	}
	if trigger != "" {
		link.EvolutionDetails = []pokeapi.EvolutionDetail{{
			Trigger:  pokeapi.NamedResource{Name: trigger},
			MinLevel: minLevel,
		}}
	}
	if link.EvolvesTo == nil {
		link.EvolvesTo = []pokeapi.ChainLink{}
	}
	return link
}

// Level returns a pointer to level for ChainNode
func Level(level int) *int {
	return &level
}
