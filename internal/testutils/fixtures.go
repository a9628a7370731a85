package testutils

import (
	"github.com/KirkDiggler/dexseed/internal/clients/pokeapi"
	"github.com/KirkDiggler/dexseed/internal/testutils/builders"
)

// Well-known fixture ids and chain URLs
const (
	BulbasaurID = 1
	PikachuID   = 25
	EeveeID     = 133

	BulbasaurChainURL = "https://pokeapi.test/api/v2/evolution-chain/1/"
	PikachuChainURL   = "https://pokeapi.test/api/v2/evolution-chain/10/"
	EeveeChainURL     = "https://pokeapi.test/api/v2/evolution-chain/67/"
)

// Bulbasaur returns a primary record with learnset entries only in the
// sun-moon version group, plus a TM move that must be ignored.
func Bulbasaur() *pokeapi.Pokemon {
	return builders.NewPokemonBuilder(BulbasaurID, "bulbasaur").
		WithTypes("grass", "poison").
		WithAbility("overgrow", false).
		WithAbility("chlorophyll", true).
		WithBaseStats(45, 49, 49, 65, 65, 45).
		WithMove("vine-whip", builders.LevelUp{VersionGroup: "sun-moon", Level: 9}).
		WithMove("tackle", builders.LevelUp{VersionGroup: "sun-moon", Level: 1}).
		WithMove("solar-beam", builders.LevelUp{VersionGroup: "sun-moon", Level: 0}).
		WithMove("growl", builders.LevelUp{VersionGroup: "red-blue", Level: 1}, builders.LevelUp{VersionGroup: "sun-moon", Level: 3}).
		Build()
}

// Pikachu returns a primary record with the hidden ability example and a
// scarlet-violet learnset.
func Pikachu() *pokeapi.Pokemon {
	return builders.NewPokemonBuilder(PikachuID, "pikachu").
		WithTypes("electric").
		WithAbility("static", false).
		WithAbility("lightning-rod", true).
		WithBaseStats(35, 55, 40, 50, 50, 90).
		WithMove("thunder-shock", builders.LevelUp{VersionGroup: "scarlet-violet", Level: 1}, builders.LevelUp{VersionGroup: "sword-shield", Level: 1}).
		WithMove("thunderbolt", builders.LevelUp{VersionGroup: "scarlet-violet", Level: 36}).
		WithMove("quick-attack", builders.LevelUp{VersionGroup: "scarlet-violet", Level: 8}).
		Build()
}

// BulbasaurChain returns bulbasaur -> ivysaur (16) -> venusaur (32)
func BulbasaurChain() *pokeapi.EvolutionChain {
	return &pokeapi.EvolutionChain{
		ID: 1,
		Chain: builders.ChainNode("bulbasaur", "", nil,
			builders.ChainNode("ivysaur", "level-up", builders.Level(16),
				builders.ChainNode("venusaur", "level-up", builders.Level(32)),
			),
		),
	}
}

// PikachuChain returns pichu -> pikachu -> raichu, alolan raichu. Pikachu sits
// on the second level with two children, and alolan raichu has a grandchild
// that must never be reported for pikachu.
func PikachuChain() *pokeapi.EvolutionChain {
	return &pokeapi.EvolutionChain{
		ID: 10,
		Chain: builders.ChainNode("pichu", "", nil,
			builders.ChainNode("pikachu", "level-up", nil,
				builders.ChainNode("raichu", "use-item", nil),
				builders.ChainNode("raichu-alola", "use-item", nil,
					builders.ChainNode("grandchild-should-not-appear", "level-up", builders.Level(99)),
				),
			),
		),
	}
}
