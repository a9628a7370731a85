package dex_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dexseed/internal/entities/dex"
)

func TestStats_CanonicalTotal(t *testing.T) {
	s := dex.Stats{HP: 45, Attack: 49, Defense: 49, SpecialAttack: 65, SpecialDefense: 65, Speed: 45,
		Extra: map[string]int{"Accuracy": 100}}
	assert.Equal(t, 318, s.CanonicalTotal())
}

func TestStats_JSONKeepsDisplayOrder(t *testing.T) {
	s := dex.Stats{HP: 35, Attack: 55, Defense: 40, SpecialAttack: 50, SpecialDefense: 50, Speed: 90, BST: 320,
		Extra: map[string]int{"Zeal": 2, "Accuracy": 1}}

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t,
		`{"Hp":35,"Attack":55,"Defense":40,"Special-attack":50,"Special-defense":50,"Speed":90,"Bst":320,"Accuracy":1,"Zeal":2}`,
		string(data))

	var back dex.Stats
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, s, back)
}

func TestStats_JSONZeroHasNoExtra(t *testing.T) {
	var back dex.Stats
	require.NoError(t, json.Unmarshal([]byte(`{"Hp":0,"Bst":0}`), &back))
	assert.Nil(t, back.Extra)
}

func TestStats_YAMLInlinesExtra(t *testing.T) {
	s := dex.Stats{HP: 1, BST: 1, Extra: map[string]int{"Accuracy": 7}}

	data, err := yaml.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Special-attack: 0\n")
	assert.Contains(t, string(data), "Accuracy: 7\n")

	var back dex.Stats
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, s, back)
}

func TestNewPlaceholderRecord(t *testing.T) {
	r := dex.NewPlaceholderRecord(7, "https://sprites.test/7.gif")

	assert.True(t, r.IsPlaceholder())
	assert.Equal(t, 7, r.Number)
	assert.Equal(t, []string{dex.Placeholder, dex.Placeholder}, r.Type)
	assert.Equal(t, []string{dex.Placeholder, dex.Placeholder}, r.Abilities.Old)
	assert.Equal(t, []string{"", ""}, r.Abilities.New)
	assert.Equal(t, []dex.Evolution{{Method: dex.MethodError}}, r.Evolution)
	assert.True(t, r.Evolution[0].IsSentinel())
	assert.Equal(t, dex.Stats{}, r.Stats.Vanilla)
	assert.NotNil(t, r.Learnset)
	assert.Empty(t, r.Learnset)
	assert.Equal(t, []string{""}, r.Location)
	assert.Equal(t, "https://sprites.test/7.gif", r.Sprite)
}

func TestStats_CloneDoesNotShareExtra(t *testing.T) {
	s := dex.Stats{HP: 10, Extra: map[string]int{"Accuracy": 1}}

	clone := s.Clone()
	clone.Extra["Accuracy"] = 5
	clone.HP = 20

	assert.Equal(t, 1, s.Extra["Accuracy"])
	assert.Equal(t, 10, s.HP)
}
