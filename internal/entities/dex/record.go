// Package dex holds the normalized record written to the seed document
package dex

// Record is one normalized creature. Every record carries the same fields
// whether or not the upstream fetches succeeded.
type Record struct {
	Number          int            `yaml:"Number" json:"Number"`
	Name            string         `yaml:"Name" json:"Name"`
	Type            []string       `yaml:"Type" json:"Type"`
	Abilities       AbilitySet     `yaml:"Abilities" json:"Abilities"`
	Evolution       []Evolution    `yaml:"Evolution" json:"Evolution"`
	Stats           StatLayers     `yaml:"Stats" json:"Stats"`
	LearnsetVersion string         `yaml:"Learnset version" json:"Learnset version"`
	Learnset        []LearnsetMove `yaml:"Learnset" json:"Learnset"`
	Sprite          string         `yaml:"Sprite" json:"Sprite"`
	Location        []string       `yaml:"Location" json:"Location"`
	Split           string         `yaml:"Split" json:"Split"`
	Changelog       string         `yaml:"Changelog" json:"Changelog"`
}

// AbilitySet pairs the upstream abilities with a blank overlay of the same
// length for curators to fill in.
type AbilitySet struct {
	Old []string `yaml:"Old" json:"Old"`
	New []string `yaml:"New" json:"New"`
}

// Evolution is one direct successor, or a sentinel with only Method set.
type Evolution struct {
	EvolvesTo string `yaml:"Evolves to,omitempty" json:"Evolves to,omitempty"`
	Method    string `yaml:"Method" json:"Method"`
	Level     *int   `yaml:"Level,omitempty" json:"Level,omitempty"`
}

// IsSentinel reports whether the entry describes a lookup outcome rather
// than a successor.
func (e Evolution) IsSentinel() bool {
	return e.EvolvesTo == ""
}

// StatLayers is the three-layer stat block: upstream values, a copy for
// curators to edit, and a zeroed delta.
type StatLayers struct {
	Vanilla Stats `yaml:"Vanilla" json:"Vanilla"`
	Updated Stats `yaml:"Updated" json:"Updated"`
	Changes Stats `yaml:"Changes" json:"Changes"`
}

// LearnsetMove is one level-up move
type LearnsetMove struct {
	Move         string `yaml:"Move" json:"Move"`
	Level        int    `yaml:"Level" json:"Level"`
	Modification string `yaml:"Modification" json:"Modification"`
}

// NewPlaceholderRecord returns the record used when the primary fetch for
// number fails.
func NewPlaceholderRecord(number int, sprite string) *Record {
	return &Record{
		Number: number,
		Name:   Placeholder,
		Type:   Placeholders(TypeSlots),
		Abilities: AbilitySet{
			Old: Placeholders(MinAbilitySlots),
			New: make([]string, MinAbilitySlots),
		},
		Evolution:       []Evolution{{Method: MethodError}},
		Stats:           StatLayers{},
		LearnsetVersion: "",
		Learnset:        []LearnsetMove{},
		Sprite:          sprite,
		Location:        []string{""},
	}
}

// IsPlaceholder reports whether r was built by NewPlaceholderRecord
func (r *Record) IsPlaceholder() bool {
	return r.Name == Placeholder
}

// Placeholders returns n copies of Placeholder
func Placeholders(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = Placeholder
	}
	return out
}
