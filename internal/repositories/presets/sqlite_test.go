package presets_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-combat-sim/internal/catalog"
	"github.com/KirkDiggler/rpg-combat-sim/internal/entities/combat"
	"github.com/KirkDiggler/rpg-combat-sim/internal/errors"
	mockclock "github.com/KirkDiggler/rpg-combat-sim/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-combat-sim/internal/repositories/presets"
	"github.com/KirkDiggler/rpg-combat-sim/internal/testutils"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	ctrl *gomock.Controller
	now  time.Time
	path string
	repo *presets.SQLiteRepository
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.now = testutils.TestCreatedAt
	s.path = filepath.Join(s.T().TempDir(), "presets.db")
	s.repo = s.open()
}

func (s *SQLiteRepositoryTestSuite) TearDownTest() {
	s.Require().NoError(s.repo.Close())
	s.ctrl.Finish()
}

func (s *SQLiteRepositoryTestSuite) open() *presets.SQLiteRepository {
	clk := mockclock.NewMockClock(s.ctrl)
	clk.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()
	repo, err := presets.NewSQLite(&presets.SQLiteConfig{Path: s.path, Clock: clk})
	s.Require().NoError(err)
	return repo
}

func (s *SQLiteRepositoryTestSuite) save(name string, party combat.PartyConfig, overwrite bool) (*presets.SaveOutput, error) {
	return s.repo.Save(s.ctx, &presets.SaveInput{
		Preset:    &presets.Preset{Name: name, Party: party},
		Overwrite: overwrite,
	})
}

func (s *SQLiteRepositoryTestSuite) TestSaveAndGet() {
	party := testutils.CreateTestParty()

	out, err := s.save("  blade team ", party, false)
	s.Require().NoError(err)
	s.Equal("blade team", out.Preset.Name)
	s.True(s.now.Equal(out.Preset.CreatedAt))

	got, err := s.repo.Get(s.ctx, &presets.GetInput{Name: "blade team"})
	s.Require().NoError(err)
	s.Equal(party, got.Preset.Party)
}

func (s *SQLiteRepositoryTestSuite) TestSaveExistingName() {
	_, err := s.save("team", testutils.CreateTestParty(), false)
	s.Require().NoError(err)

	s.Run("without overwrite", func() {
		_, err := s.save("team", testutils.CreateTestParty(), false)
		s.Require().Error(err)
		s.Equal(errors.CodeAlreadyExists, errors.GetCode(err))
	})

	s.Run("with overwrite", func() {
		created := s.now
		s.now = s.now.Add(time.Hour)

		party := testutils.CreateTestParty()
		party.Slots[2] = combat.NewSlot(catalog.Hanya)
		out, err := s.save("team", party, true)
		s.Require().NoError(err)
		s.True(created.Equal(out.Preset.CreatedAt))
		s.True(s.now.Equal(out.Preset.UpdatedAt))
		s.Equal(catalog.Hanya, out.Preset.Party.Slots[2].CharacterID)
	})
}

func (s *SQLiteRepositoryTestSuite) TestListOrderedByName() {
	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := s.save(name, testutils.CreateTestParty(), false)
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, &presets.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Presets, 3)
	s.Equal("alpha", out.Presets[0].Name)
	s.Equal("mid", out.Presets[1].Name)
	s.Equal("zeta", out.Presets[2].Name)
}

func (s *SQLiteRepositoryTestSuite) TestDelete() {
	_, err := s.save("team", testutils.CreateTestParty(), false)
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, &presets.DeleteInput{Name: "team"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, &presets.GetInput{Name: "team"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, &presets.DeleteInput{Name: "team"})
	s.True(errors.IsNotFound(err))
}

func (s *SQLiteRepositoryTestSuite) TestSurvivesReopen() {
	_, err := s.save("team", testutils.CreateTestParty(), false)
	s.Require().NoError(err)
	s.Require().NoError(s.repo.Close())

	s.repo = s.open()
	got, err := s.repo.Get(s.ctx, &presets.GetInput{Name: "team"})
	s.Require().NoError(err)
	s.Equal(testutils.CreateTestParty(), got.Preset.Party)
}

func (s *SQLiteRepositoryTestSuite) TestInvalidInput() {
	testCases := []struct {
		name string
		call func() error
	}{
		{name: "nil save", call: func() error {
			_, err := s.repo.Save(s.ctx, nil)
			return err
		}},
		{name: "blank name", call: func() error {
			_, err := s.save("   ", testutils.CreateTestParty(), false)
			return err
		}},
		{name: "long name", call: func() error {
			_, err := s.save(strings.Repeat("x", presets.MaxNameLength+1), testutils.CreateTestParty(), false)
			return err
		}},
		{name: "oversized party", call: func() error {
			party := testutils.CreateTestParty()
			party.Slots = append(party.Slots, combat.NewSlot(catalog.Archer))
			_, err := s.save("big", party, false)
			return err
		}},
		{name: "blank get", call: func() error {
			_, err := s.repo.Get(s.ctx, &presets.GetInput{})
			return err
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.True(errors.IsInvalidArgument(tc.call()))
		})
	}
}

func TestNewSQLiteRequiresPath(t *testing.T) {
	if _, err := presets.NewSQLite(&presets.SQLiteConfig{}); !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
