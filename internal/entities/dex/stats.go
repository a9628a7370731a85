package dex

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Stats is one layer of base stats. Keys are the capitalized stat names;
// stats outside the canonical six land in Extra.
type Stats struct {
	HP             int            `yaml:"Hp"`
	Attack         int            `yaml:"Attack"`
	Defense        int            `yaml:"Defense"`
	SpecialAttack  int            `yaml:"Special-attack"`
	SpecialDefense int            `yaml:"Special-defense"`
	Speed          int            `yaml:"Speed"`
	BST            int            `yaml:"Bst"`
	Extra          map[string]int `yaml:",inline"`
}

// CanonicalTotal sums the six canonical stats. BST is set from this at
// extraction time and is not recomputed afterwards.
func (s Stats) CanonicalTotal() int {
	return s.HP + s.Attack + s.Defense + s.SpecialAttack + s.SpecialDefense + s.Speed
}

// Clone returns a copy of s that does not share Extra
func (s Stats) Clone() Stats {
	out := s
	if s.Extra != nil {
		out.Extra = make(map[string]int, len(s.Extra))
		for k, v := range s.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

type statField struct {
	key string
	ptr func(*Stats) *int
}

var statFields = []statField{
	{"Hp", func(s *Stats) *int { return &s.HP }},
	{"Attack", func(s *Stats) *int { return &s.Attack }},
	{"Defense", func(s *Stats) *int { return &s.Defense }},
	{"Special-attack", func(s *Stats) *int { return &s.SpecialAttack }},
	{"Special-defense", func(s *Stats) *int { return &s.SpecialDefense }},
	{"Speed", func(s *Stats) *int { return &s.Speed }},
	{"Bst", func(s *Stats) *int { return &s.BST }},
}

// MarshalJSON writes the canonical keys in display order followed by any
// extra stats sorted by name.
func (s Stats) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	write := func(i int, key string, value int) error {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	i := 0
	for _, f := range statFields {
		if err := write(i, f.key, *f.ptr(&s)); err != nil {
			return nil, err
		}
		i++
	}

	extraKeys := make([]string, 0, len(s.Extra))
	for k := range s.Extra {
		extraKeys = append(extraKeys, k)
	}
	sort.Strings(extraKeys)
	for _, k := range extraKeys {
		if err := write(i, k, s.Extra[k]); err != nil {
			return nil, err
		}
		i++
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON is the inverse of MarshalJSON
func (s *Stats) UnmarshalJSON(data []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*s = Stats{}
	for _, f := range statFields {
		if v, ok := raw[f.key]; ok {
			*f.ptr(s) = v
			delete(raw, f.key)
		}
	}
	if len(raw) > 0 {
		s.Extra = raw
	}
	return nil
}
