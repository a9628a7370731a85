package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dexseed/internal/entities/dex"
	"github.com/KirkDiggler/dexseed/internal/testutils"
	"github.com/KirkDiggler/dexseed/internal/testutils/builders"
)

const testBaseURL = "https://pokeapi.test/api/v2"

type CLITestSuite struct {
	suite.Suite
	dir string
	mr  *miniredis.Miniredis
}

func (s *CLITestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.mr = miniredis.RunT(s.T())

	httpmock.Activate()
	s.T().Cleanup(httpmock.DeactivateAndReset)

	bulbasaur := testutils.Bulbasaur()
	species := builders.NewSpecies(testutils.BulbasaurID, "bulbasaur", testutils.BulbasaurChainURL)

	httpmock.RegisterResponder("GET", testBaseURL+"/pokemon/1",
		httpmock.NewJsonResponderOrPanic(200, bulbasaur))
	httpmock.RegisterResponder("GET", testBaseURL+"/pokemon-species/1",
		httpmock.NewJsonResponderOrPanic(200, species))
	httpmock.RegisterResponder("GET", testutils.BulbasaurChainURL,
		httpmock.NewJsonResponderOrPanic(200, testutils.BulbasaurChain()))
	httpmock.RegisterResponder("GET", testBaseURL+"/pokemon/2",
		httpmock.NewStringResponder(404, "Not Found"))
}

func (s *CLITestSuite) run(args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--api-base-url", testBaseURL, "--log-level", "error"))

	err := cmd.Execute()
	return stdout.String(), err
}

func (s *CLITestSuite) readDocument(path string) []*dex.Record {
	data, err := os.ReadFile(path)
	s.Require().NoError(err)

	var records []*dex.Record
	s.Require().NoError(yaml.Unmarshal(data, &records))
	return records
}

func (s *CLITestSuite) TestGenerate() {
	output := filepath.Join(s.dir, "seed.yaml")

	_, err := s.run("generate", "--start-id", "1", "--end-id", "3", "--output", output)
	s.Require().NoError(err)

	records := s.readDocument(output)
	s.Require().Len(records, 2)
	s.Equal("Bulbasaur", records[0].Name)
	s.Equal([]string{"Grass", "Poison"}, records[0].Type)
	s.Equal("Sun-moon", records[0].LearnsetVersion)
	s.Equal(2, records[1].Number)
	s.True(records[1].IsPlaceholder())
}

func (s *CLITestSuite) TestGenerate_JSONByExtension() {
	output := filepath.Join(s.dir, "seed.json")

	_, err := s.run("generate", "--start-id", "1", "--end-id", "2", "--output", output)
	s.Require().NoError(err)

	data, err := os.ReadFile(output)
	s.Require().NoError(err)
	s.Contains(string(data), `"Name": "Bulbasaur"`)
}

func (s *CLITestSuite) TestGenerate_InvalidRange() {
	_, err := s.run("generate", "--start-id", "3", "--end-id", "3",
		"--output", filepath.Join(s.dir, "seed.yaml"))
	s.Error(err)
}

func (s *CLITestSuite) TestShow() {
	out, err := s.run("show", "1")
	s.Require().NoError(err)
	s.Contains(out, "Name: Bulbasaur")
	s.Contains(out, "Type: [Grass, Poison]")
}

func (s *CLITestSuite) TestShow_InvalidID() {
	_, err := s.run("show", "abc")
	s.Error(err)
}

func (s *CLITestSuite) TestPublishShowAndExport() {
	redisAddr := s.mr.Addr()

	_, err := s.run("generate", "--start-id", "1", "--end-id", "3",
		"--output", filepath.Join(s.dir, "seed.yaml"), "--redis-addr", redisAddr)
	s.Require().NoError(err)
	s.True(s.mr.Exists("dex:record:1"))
	s.True(s.mr.Exists("dex:record:2"))

	out, err := s.run("show", "2", "--from-store", "--redis-addr", redisAddr)
	s.Require().NoError(err)
	s.Contains(out, "Name: ReplaceMe")

	exported := filepath.Join(s.dir, "export.yaml")
	_, err = s.run("export", "--output", exported, "--redis-addr", redisAddr)
	s.Require().NoError(err)

	records := s.readDocument(exported)
	s.Require().Len(records, 2)
	s.Equal(1, records[0].Number)
	s.Equal(2, records[1].Number)
}

func (s *CLITestSuite) TestPrune() {
	redisAddr := s.mr.Addr()
	s.Require().NoError(s.mr.Set("dex:record:9", "{not json"))

	out, err := s.run("prune", "--dry-run", "--redis-addr", redisAddr)
	s.Require().NoError(err)
	s.Contains(out, "dex:record:9")
	s.True(s.mr.Exists("dex:record:9"))

	_, err = s.run("prune", "--redis-addr", redisAddr)
	s.Require().NoError(err)
	s.False(s.mr.Exists("dex:record:9"))
}

func (s *CLITestSuite) TestExport_RequiresRedis() {
	_, err := s.run("export", "--output", filepath.Join(s.dir, "export.yaml"))
	s.Error(err)
}

func TestCLITestSuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}
