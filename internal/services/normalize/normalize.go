// Package normalize turns raw PokeAPI documents into the field groups of a
// dex.Record. Every function here is pure.
package normalize

import (
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dexseed/internal/clients/pokeapi"
	"github.com/KirkDiggler/dexseed/internal/entities/dex"
)

// SpriteURL fills the {id} slot of template
func SpriteURL(template string, id int) string {
	return strings.ReplaceAll(template, "{id}", strconv.Itoa(id))
}

// Types returns the type names in upstream slot order, or two placeholders
// when there are none.
func Types(p *pokeapi.Pokemon) []string {
	if p == nil || len(p.Types) == 0 {
		return dex.Placeholders(dex.TypeSlots)
	}

	types := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		types = append(types, t.Type.Name)
	}
	return types
}

// Abilities returns ability names, hidden ones suffixed with
// dex.HiddenAbilitySuffix, or placeholders when there are none.
func Abilities(p *pokeapi.Pokemon) []string {
	if p == nil || len(p.Abilities) == 0 {
		return dex.Placeholders(dex.MinAbilitySlots)
	}

	abilities := make([]string, 0, len(p.Abilities))
	for _, a := range p.Abilities {
		name := a.Ability.Name
		if a.IsHidden {
			name += dex.HiddenAbilitySuffix
		}
		abilities = append(abilities, name)
	}
	return abilities
}

// Stats maps the upstream base stats into a dex.Stats layer. Unknown stat
// names are kept verbatim in Extra. BST is the sum of the six canonical
// stats.
func Stats(p *pokeapi.Pokemon) dex.Stats {
	var s dex.Stats
	if p == nil {
		return s
	}

	for _, entry := range p.Stats {
		switch entry.Stat.Name {
		case dex.StatHP:
			s.HP = entry.BaseStat
		case dex.StatAttack:
			s.Attack = entry.BaseStat
		case dex.StatDefense:
			s.Defense = entry.BaseStat
		case dex.StatSpecialAttack:
			s.SpecialAttack = entry.BaseStat
		case dex.StatSpecialDefense:
			s.SpecialDefense = entry.BaseStat
		case dex.StatSpeed:
			s.Speed = entry.BaseStat
		default:
			if s.Extra == nil {
				s.Extra = make(map[string]int)
			}
			s.Extra[entry.Stat.Name] = entry.BaseStat
		}
	}
	s.BST = s.CanonicalTotal()
	return s
}

// Learnset picks the first version group in priority that has any level-up
// moves and returns its name with those moves sorted by level. Moves with a
// non-positive level are skipped. When no group matches the version is ""
// and the list is empty.
func Learnset(p *pokeapi.Pokemon, priority []string) (string, []dex.LearnsetMove) {
	if p == nil {
		return "", []dex.LearnsetMove{}
	}

	for _, group := range priority {
		moves := movesForVersionGroup(p.Moves, group)
		if len(moves) > 0 {
			return group, moves
		}
	}
	return "", []dex.LearnsetMove{}
}

func movesForVersionGroup(entries []pokeapi.MoveEntry, group string) []dex.LearnsetMove {
	var moves []dex.LearnsetMove
	for _, entry := range entries {
		for _, detail := range entry.VersionGroupDetails {
			if detail.LevelLearnedAt > 0 && detail.VersionGroup.Name == group {
				moves = append(moves, dex.LearnsetMove{
					Move:  entry.Move.Name,
					Level: detail.LevelLearnedAt,
				})
				break
			}
		}
	}

	// stable so equal levels keep upstream order
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Level < moves[j].Level
	})
	return moves
}
