package pokeapi

// NamedResource is the {name, url} pair PokeAPI uses for every reference.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// APIResource is an unnamed reference, used for evolution chains.
type APIResource struct {
	URL string `json:"url"`
}

// Pokemon is the raw /pokemon/{id} document, reduced to the fields the
// normalizer reads.
type Pokemon struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Types     []TypeSlot    `json:"types"`
	Abilities []AbilitySlot `json:"abilities"`
	Stats     []StatEntry   `json:"stats"`
	Moves     []MoveEntry   `json:"moves"`
}

// TypeSlot is one entry of Pokemon.Types
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// AbilitySlot is one entry of Pokemon.Abilities
type AbilitySlot struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

// StatEntry is one entry of Pokemon.Stats
type StatEntry struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// MoveEntry is one learnable move with its per-version-group learn rules
type MoveEntry struct {
	Move                NamedResource        `json:"move"`
	VersionGroupDetails []VersionGroupDetail `json:"version_group_details"`
}

// VersionGroupDetail describes how a move is learned in one version group.
// LevelLearnedAt is zero for machine, tutor and egg moves.
type VersionGroupDetail struct {
	LevelLearnedAt  int           `json:"level_learned_at"`
	MoveLearnMethod NamedResource `json:"move_learn_method"`
	VersionGroup    NamedResource `json:"version_group"`
}

// Species is the raw /pokemon-species/{id} document
type Species struct {
	ID             int          `json:"id"`
	Name           string       `json:"name"`
	EvolutionChain *APIResource `json:"evolution_chain"`
}

// EvolutionChain is the raw evolution-chain document, a tree rooted at the
// base form.
type EvolutionChain struct {
	ID    int       `json:"id"`
	Chain ChainLink `json:"chain"`
}

// ChainLink is one node of an evolution chain. EvolutionDetails describe the
// edge from the parent node into this one.
type ChainLink struct {
	Species          NamedResource     `json:"species"`
	EvolutionDetails []EvolutionDetail `json:"evolution_details"`
	EvolvesTo        []ChainLink       `json:"evolves_to"`
}

// EvolutionDetail is one way of triggering an evolution edge
type EvolutionDetail struct {
	Trigger  NamedResource `json:"trigger"`
	MinLevel *int          `json:"min_level"`
}
