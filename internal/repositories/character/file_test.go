package character_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/pkg/clock"
	character "github.com/KirkDiggler/quest-chronicles/internal/repositories/character"
	"github.com/KirkDiggler/quest-chronicles/internal/testutils"
)

var testSavedAt = time.Date(2024, 3, 9, 17, 4, 5, 0, time.UTC)

type FileRepositoryTestSuite struct {
	suite.Suite
	dir  string
	repo character.Repository
	ctx  context.Context
}

func TestFileRepositorySuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.dir = filepath.Join(s.T().TempDir(), "saves")
	repo, err := character.NewFile(&character.FileConfig{
		Dir:   s.dir,
		Clock: clock.NewFixed(testSavedAt),
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *FileRepositoryTestSuite) writeRaw(name, body string) {
	s.Require().NoError(os.MkdirAll(s.dir, 0o750))
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, name+character.SaveFileExtension), []byte(body), 0o600))
}

func (s *FileRepositoryTestSuite) TestNewFileRequiresDir() {
	_, err := character.NewFile(&character.FileConfig{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = character.NewFile(nil)
	s.Assert().Error(err)
}

func (s *FileRepositoryTestSuite) TestRoundTrip() {
	testCases := []struct {
		name string
		char func() *entities.Character
	}{
		{name: "fresh character", char: func() *entities.Character { return testutils.CreateTestCharacter("Thorin") }},
		{name: "seasoned character", char: func() *entities.Character { return testutils.CreateSeasonedCharacter("Vex the Quick") }},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			original := tc.char()

			saveOut, err := s.repo.Save(s.ctx, character.SaveInput{Character: original})
			s.Require().NoError(err)
			s.Assert().Equal(testSavedAt, saveOut.SavedAt)

			getOut, err := s.repo.Get(s.ctx, character.GetInput{Name: original.Name})
			s.Require().NoError(err)
			s.Assert().Equal(original, getOut.Character)
			s.Assert().True(testSavedAt.Equal(getOut.SavedAt))
		})
	}
}

func (s *FileRepositoryTestSuite) TestSaveOverwrites() {
	c := testutils.CreateTestCharacter(testutils.TestCharacterName)
	_, err := s.repo.Save(s.ctx, character.SaveInput{Character: c})
	s.Require().NoError(err)

	c.Gold = 999
	c.Inventory = append(c.Inventory, "healing_potion")
	_, err = s.repo.Save(s.ctx, character.SaveInput{Character: c})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, character.GetInput{Name: c.Name})
	s.Require().NoError(err)
	s.Assert().Equal(999, out.Character.Gold)
	s.Assert().Equal([]string{"healing_potion"}, out.Character.Inventory)

	entries, err := os.ReadDir(s.dir)
	s.Require().NoError(err)
	s.Assert().Len(entries, 1)
}

func (s *FileRepositoryTestSuite) TestSaveFileFormat() {
	c := testutils.CreateSeasonedCharacter("Vex")
	_, err := s.repo.Save(s.ctx, character.SaveInput{Character: c})
	s.Require().NoError(err)

	data, err := os.ReadFile(filepath.Join(s.dir, "Vex.save"))
	s.Require().NoError(err)
	body := string(data)
	s.Assert().True(strings.HasPrefix(body, "name=Vex\nclass=Rogue\nlevel=4\n"))
	s.Assert().Contains(body, "inventory=healing_potion,iron_sword,healing_potion,leather_armor\n")
	s.Assert().Contains(body, "saved_at=2024-03-09T17:04:05Z\n")
}

func (s *FileRepositoryTestSuite) TestSaveRejectsBadInput() {
	_, err := s.repo.Save(s.ctx, character.SaveInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	c := testutils.CreateTestCharacter("../escape")
	_, err = s.repo.Save(s.ctx, character.SaveInput{Character: c})
	s.Assert().True(errors.IsInvalidArgument(err))

	c = testutils.CreateTestCharacter("Thorin")
	c.Inventory = []string{"bad,id"}
	_, err = s.repo.Save(s.ctx, character.SaveInput{Character: c})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *FileRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, character.GetInput{Name: "Nobody"})
	s.Assert().True(errors.IsCharacterNotFound(err))
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, character.GetInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *FileRepositoryTestSuite) TestGetRejectsMalformedSaves() {
	valid := "name=Bad\nclass=Mage\nlevel=1\nexperience=0\nhealth=80\nmax_health=80\nstrength=4\nmagic=18\n" +
		"gold=50\ninventory=\nactive_quests=\ncompleted_quests=\nequipped_weapon=\nequipped_armor=\n" +
		"saved_at=2024-03-09T17:04:05Z\n"

	testCases := []struct {
		name string
		body string
	}{
		{name: "line without separator", body: strings.Replace(valid, "gold=50", "gold 50", 1)},
		{name: "unknown key", body: valid + "luck=7\n"},
		{name: "duplicate key", body: valid + "gold=60\n"},
		{name: "missing key", body: strings.Replace(valid, "magic=18\n", "", 1)},
		{name: "non-integer", body: strings.Replace(valid, "level=1", "level=one", 1)},
		{name: "float", body: strings.Replace(valid, "gold=50", "gold=50.5", 1)},
		{name: "unknown class", body: strings.Replace(valid, "class=Mage", "class=Bard", 1)},
		{name: "health above max", body: strings.Replace(valid, "health=80\n", "health=81\n", 1)},
		{name: "negative gold", body: strings.Replace(valid, "gold=50", "gold=-1", 1)},
		{name: "bad timestamp", body: strings.Replace(valid, "2024-03-09T17:04:05Z", "yesterday", 1)},
		{name: "quest in both sets", body: strings.Replace(
			strings.Replace(valid, "active_quests=\n", "active_quests=rats\n", 1),
			"completed_quests=\n", "completed_quests=rats\n", 1)},
		{name: "duplicate active quest", body: strings.Replace(valid, "active_quests=\n", "active_quests=rats,rats\n", 1)},
		{name: "duplicate completed quest", body: strings.Replace(
			valid, "completed_quests=\n", "completed_quests=rats,wolves,rats\n", 1)},
		{name: "name mismatch", body: strings.Replace(valid, "name=Bad", "name=Other", 1)},
		{name: "code instead of data", body: "__import__('os').system('rm -rf /')\n"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.writeRaw("Bad", tc.body)
			_, err := s.repo.Get(s.ctx, character.GetInput{Name: "Bad"})
			s.Require().Error(err)
			s.Assert().True(errors.IsDataFormat(err), err.Error())
		})
	}

	s.Run("valid body loads", func() {
		s.writeRaw("Bad", valid)
		out, err := s.repo.Get(s.ctx, character.GetInput{Name: "Bad"})
		s.Require().NoError(err)
		s.Assert().Empty(out.Character.Inventory)
		s.Assert().NotNil(out.Character.Inventory)
	})
}

func (s *FileRepositoryTestSuite) TestDelete() {
	c := testutils.CreateTestCharacter(testutils.TestCharacterName)
	_, err := s.repo.Save(s.ctx, character.SaveInput{Character: c})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{Name: c.Name})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, character.GetInput{Name: c.Name})
	s.Assert().True(errors.IsCharacterNotFound(err))

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{Name: c.Name})
	s.Assert().True(errors.IsCharacterNotFound(err))
}

func (s *FileRepositoryTestSuite) TestList() {
	out, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Assert().Empty(out.Names)

	for _, name := range []string{"Zed", "Ann", "Ann-Marie"} {
		_, err := s.repo.Save(s.ctx, character.SaveInput{Character: testutils.CreateTestCharacter(name)})
		s.Require().NoError(err)
	}
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "readme.txt"), []byte("hi"), 0o600))
	s.Require().NoError(os.Mkdir(filepath.Join(s.dir, "old.save"), 0o750))

	out, err = s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"Ann", "Ann-Marie", "Zed"}, out.Names)
}
