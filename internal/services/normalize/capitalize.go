package normalize

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/dexseed/internal/entities/dex"
)

// Capitalize upper-cases the first rune and lower-cases the rest, so
// "lightning-rod [HIDDEN]" becomes "Lightning-rod [hidden]". The
// placeholder token is returned unchanged.
func Capitalize(s string) string {
	if s == "" || s == dex.Placeholder {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}

// CapitalizeAll applies Capitalize to every element of in
func CapitalizeAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = Capitalize(s)
	}
	return out
}

// CapitalizeStats returns a copy of s with Extra keys capitalized. The
// copy never shares its Extra map with s.
func CapitalizeStats(s dex.Stats) dex.Stats {
	out := s
	out.Extra = nil
	if len(s.Extra) > 0 {
		out.Extra = make(map[string]int, len(s.Extra))
		for k, v := range s.Extra {
			out.Extra[Capitalize(k)] = v
		}
	}
	return out
}

// CapitalizeEvolutions capitalizes species and method names
func CapitalizeEvolutions(in []dex.Evolution) []dex.Evolution {
	out := make([]dex.Evolution, len(in))
	for i, e := range in {
		out[i] = dex.Evolution{
			EvolvesTo: Capitalize(e.EvolvesTo),
			Method:    Capitalize(e.Method),
			Level:     e.Level,
		}
	}
	return out
}

// CapitalizeMoves capitalizes move names
func CapitalizeMoves(in []dex.LearnsetMove) []dex.LearnsetMove {
	out := make([]dex.LearnsetMove, len(in))
	for i, m := range in {
		out[i] = dex.LearnsetMove{
			Move:         Capitalize(m.Move),
			Level:        m.Level,
			Modification: m.Modification,
		}
	}
	return out
}
