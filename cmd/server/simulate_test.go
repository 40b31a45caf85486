package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-combat-sim/internal/catalog"
	"github.com/KirkDiggler/rpg-combat-sim/internal/errors"
	"github.com/KirkDiggler/rpg-combat-sim/internal/repositories/encounters"
	"github.com/KirkDiggler/rpg-combat-sim/internal/testutils"
)

type SimulateCommandTestSuite struct {
	suite.Suite
}

func TestSimulateCommandTestSuite(t *testing.T) {
	suite.Run(t, new(SimulateCommandTestSuite))
}

func (s *SimulateCommandTestSuite) TestReadParty() {
	party, err := readParty("testdata/party.json")
	s.Require().NoError(err)

	s.Equal(4, party.Members())
	s.Equal(catalog.Blade, party.Slots[0].CharacterID)
	s.Equal(0, party.Slots[3].ComradeTarget)
	s.Equal(5, party.Encounter.Rounds)
}

func (s *SimulateCommandTestSuite) TestReadPartyErrors() {
	_, err := readParty("testdata/missing.json")
	s.Require().Error(err)

	_, err = readParty("simulate_test.go")
	s.True(errors.IsConfiguration(err))
}

func (s *SimulateCommandTestSuite) TestPrintRun() {
	run := &encounters.Run{
		ID:     "run_1",
		Seed:   9,
		Party:  testutils.CreateTestParty(),
		Result: testutils.CreateTestResult(),
	}

	var buf bytes.Buffer
	printRun(&buf, run, true)

	out := buf.String()
	s.Contains(out, "Run run_1 (seed 9)")
	s.Contains(out, "Blade")
	s.Contains(out, "120000")
	s.Contains(out, "Shard Sword")
}
