package document_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dexseed/internal/document"
	"github.com/KirkDiggler/dexseed/internal/entities/dex"
	"github.com/KirkDiggler/dexseed/internal/errors"
)

func level(l int) *int { return &l }

func pikachuRecord() *dex.Record {
	stats := dex.Stats{HP: 35, Attack: 55, Defense: 40, SpecialAttack: 50, SpecialDefense: 50, Speed: 90, BST: 320}
	return &dex.Record{
		Number: 25,
		Name:   "Pikachu",
		Type:   []string{"Electric"},
		Abilities: dex.AbilitySet{
			Old: []string{"Static", "Lightning-rod [hidden]"},
			New: []string{"", ""},
		},
		Evolution: []dex.Evolution{
			{EvolvesTo: "Raichu", Method: "Use-item"},
			{EvolvesTo: "Raichu-alola", Method: "Level-up", Level: level(30)},
		},
		Stats: dex.StatLayers{
			Vanilla: stats,
			Updated: stats.Clone(),
		},
		LearnsetVersion: "Scarlet-violet",
		Learnset: []dex.LearnsetMove{
			{Move: "Thunder-shock", Level: 1},
			{Move: "Thunderbolt", Level: 36},
		},
		Sprite:   "https://sprites.test/25.gif",
		Location: []string{""},
	}
}

type DocumentTestSuite struct {
	suite.Suite
	records []*dex.Record
}

func (s *DocumentTestSuite) SetupTest() {
	s.records = []*dex.Record{
		dex.NewPlaceholderRecord(1, "https://sprites.test/1.gif"),
		pikachuRecord(),
	}
}

func (s *DocumentTestSuite) TestYAML_RoundTrip() {
	var buf bytes.Buffer
	s.Require().NoError(document.NewYAML().Write(&buf, s.records))

	var decoded []*dex.Record
	s.Require().NoError(yaml.Unmarshal(buf.Bytes(), &decoded))
	s.Equal(s.records, decoded)
}

func (s *DocumentTestSuite) TestYAML_FlowGroups() {
	var buf bytes.Buffer
	s.Require().NoError(document.NewYAML().Write(&buf, s.records))
	out := buf.String()

	s.Contains(out, "Type: [Electric]")
	s.Contains(out, "Type: [ReplaceMe, ReplaceMe]")
	s.Contains(out, `New: ["", ""]`)
	s.Contains(out, "Evolution: [{Method: Error}]")
	s.Contains(out, "Learnset: []")
	s.Contains(out, "Vanilla: {Hp: 35, Attack: 55,")
	s.Contains(out, "Learnset version: Scarlet-violet")
	s.Contains(out, "Sprite: https://sprites.test/25.gif")
}

func (s *DocumentTestSuite) TestYAML_KeyOrder() {
	var buf bytes.Buffer
	s.Require().NoError(document.NewYAML().Write(&buf, s.records[1:]))
	out := buf.String()

	keys := []string{"Number:", "Name:", "Type:", "Abilities:", "Evolution:", "Stats:",
		"Learnset version:", "Learnset:", "Sprite:", "Location:", "Split:", "Changelog:"}
	last := -1
	for _, key := range keys {
		idx := strings.Index(out, key)
		s.Require().GreaterOrEqual(idx, 0, key)
		s.Greater(idx, last, key)
		last = idx
	}
}

func (s *DocumentTestSuite) TestYAML_EmptyBatch() {
	var buf bytes.Buffer
	s.Require().NoError(document.NewYAML().Write(&buf, nil))
	s.Equal("[]\n", buf.String())
}

func (s *DocumentTestSuite) TestJSON_RoundTrip() {
	var buf bytes.Buffer
	s.Require().NoError(document.NewJSON().Write(&buf, s.records))

	var decoded []*dex.Record
	s.Require().NoError(json.Unmarshal(buf.Bytes(), &decoded))
	s.Equal(s.records, decoded)
	s.Contains(buf.String(), `"Learnset version": "Scarlet-violet"`)
}

func (s *DocumentTestSuite) TestWriteFile() {
	path := filepath.Join(s.T().TempDir(), "seed.yaml")

	s.Require().NoError(document.WriteFile(path, document.NewYAML(), s.records))

	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	var decoded []*dex.Record
	s.Require().NoError(yaml.Unmarshal(data, &decoded))
	s.Len(decoded, 2)

	entries, err := os.ReadDir(filepath.Dir(path))
	s.Require().NoError(err)
	s.Len(entries, 1, "temp file should be renamed away")
}

func (s *DocumentTestSuite) TestWriteFile_MissingDirectory() {
	path := filepath.Join(s.T().TempDir(), "missing", "seed.yaml")

	err := document.WriteFile(path, document.NewYAML(), s.records)
	s.Error(err)
}

func TestDocumentTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentTestSuite))
}

func TestNew(t *testing.T) {
	w, err := document.New("YAML")
	require.NoError(t, err)
	assert.NotNil(t, w)

	w, err = document.New(document.FormatJSON)
	require.NoError(t, err)
	assert.NotNil(t, w)

	_, err = document.New("toml")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, document.FormatJSON, document.FormatForPath("out/seed.JSON"))
	assert.Equal(t, document.FormatYAML, document.FormatForPath("pokemon_gen1-5.yaml"))
	assert.Equal(t, document.FormatYAML, document.FormatForPath("seed"))
}
