package dex

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/dexseed/internal/clients/pokeapi"
	"github.com/KirkDiggler/dexseed/internal/entities/dex"
)

// ResolveEvolution returns the direct successors of the species. Every
// failure mode becomes a single sentinel entry, so it never returns an
// error for upstream problems.
func (o *orchestrator) ResolveEvolution(ctx context.Context, input *ResolveEvolutionInput) (*ResolveEvolutionOutput, error) {
	if input == nil || input.Species == nil {
		return sentinel(dex.MethodError), nil
	}

	species := input.Species
	if species.EvolutionChain == nil || species.EvolutionChain.URL == "" {
		return sentinel(dex.MethodNoChainReference), nil
	}

	chain, err := o.client.GetEvolutionChain(ctx, species.EvolutionChain.URL)
	if err != nil {
		slog.WarnContext(ctx, "evolution chain unavailable",
			"species", species.Name,
			"url", species.EvolutionChain.URL)
		return sentinel(dex.MethodChainFetchError), nil
	}

	evolutions, found := FindSuccessors(&chain.Chain, species.Name)
	switch {
	case !found:
		return sentinel(dex.MethodSpeciesNotInTree), nil
	case len(evolutions) == 0:
		return sentinel(dex.MethodDoesNotEvolve), nil
	}

	return &ResolveEvolutionOutput{Evolutions: evolutions}, nil
}

// FindSuccessors walks the chain depth-first in document order and returns
// one entry per child of the first node named species. found is false when
// no node matches.
func FindSuccessors(root *pokeapi.ChainLink, species string) (evolutions []dex.Evolution, found bool) {
	node := findSpecies(root, species)
	if node == nil {
		return nil, false
	}

	evolutions = make([]dex.Evolution, 0, len(node.EvolvesTo))
	for i := range node.EvolvesTo {
		evolutions = append(evolutions, summarizeEdge(&node.EvolvesTo[i]))
	}
	return evolutions, true
}

func findSpecies(root *pokeapi.ChainLink, species string) *pokeapi.ChainLink {
	if root == nil {
		return nil
	}

	stack := []*pokeapi.ChainLink{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if node.Species.Name == species {
			return node
		}

		// reverse push keeps the first child on top
		for i := len(node.EvolvesTo) - 1; i >= 0; i-- {
			stack = append(stack, &node.EvolvesTo[i])
		}
	}
	return nil
}

// summarizeEdge describes the edge into child using its first listed
// trigger.
func summarizeEdge(child *pokeapi.ChainLink) dex.Evolution {
	evo := dex.Evolution{
		EvolvesTo: child.Species.Name,
		Method:    dex.MethodUnknown,
	}
	if len(child.EvolutionDetails) > 0 {
		first := child.EvolutionDetails[0]
		evo.Method = first.Trigger.Name
		if first.MinLevel != nil {
			level := *first.MinLevel
			evo.Level = &level
		}
	}
	return evo
}

func sentinel(method string) *ResolveEvolutionOutput {
	return &ResolveEvolutionOutput{
		Evolutions: []dex.Evolution{{Method: method}},
	}
}
