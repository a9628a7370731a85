package dex

// Placeholder is written wherever upstream data is missing so a curator can
// search for it.
const Placeholder = "ReplaceMe"

// HiddenAbilitySuffix marks hidden abilities before capitalization
const HiddenAbilitySuffix = " [HIDDEN]"

// MinAbilitySlots is the number of placeholder abilities used when none are known
const MinAbilitySlots = 2

// TypeSlots is the number of type slots every record reserves
const TypeSlots = 2

// Evolution sentinel methods. Each one stands alone in Record.Evolution.
const (
	MethodError            = "Error"
	MethodNoChainReference = "No evolution data available"
	MethodChainFetchError  = "Error fetching evolution chain"
	MethodSpeciesNotInTree = "Species not found in evolution chain"
	MethodDoesNotEvolve    = "Does not evolve"
	MethodUnknown          = "Unknown"
)

// Canonical upstream stat names
const (
	StatHP             = "hp"
	StatAttack         = "attack"
	StatDefense        = "defense"
	StatSpecialAttack  = "special-attack"
	StatSpecialDefense = "special-defense"
	StatSpeed          = "speed"
)

// Version groups, most recent first
const (
	VersionGroupScarletViolet = "scarlet-violet"
	VersionGroupSwordShield   = "sword-shield"
	VersionGroupSunMoon       = "sun-moon"
)

// DefaultVersionGroups is the learnset lookup priority
var DefaultVersionGroups = []string{
	VersionGroupScarletViolet,
	VersionGroupSwordShield,
	VersionGroupSunMoon,
}

// DefaultSpriteURLTemplate points at the animated Black/White sprites.
// {id} is replaced with the record number.
const DefaultSpriteURLTemplate = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/versions/generation-v/black-white/animated/{id}.gif"
