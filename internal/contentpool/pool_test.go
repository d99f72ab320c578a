package contentpool_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/card-forge/internal/contentpool"
	"github.com/KirkDiggler/card-forge/internal/entities/cards"
)

type PoolTestSuite struct {
	suite.Suite
	pool *contentpool.Pool
}

func (s *PoolTestSuite) SetupTest() {
	s.pool = contentpool.Default()
}

func TestPoolTestSuite(t *testing.T) {
	suite.Run(t, new(PoolTestSuite))
}

func (s *PoolTestSuite) TestRegistryOrderAndUniqueness() {
	archetypes := s.pool.Archetypes()
	s.Require().NotEmpty(archetypes)
	s.Equal("reptile", archetypes[0].Name)

	seen := make(map[string]bool)
	for _, a := range archetypes {
		s.False(seen[a.Name], "duplicate archetype %s", a.Name)
		seen[a.Name] = true
	}
	s.True(seen["serpent"])
	s.True(seen["swan"])
}

func (s *PoolTestSuite) TestEveryPlayableElementHasContent() {
	for _, e := range cards.Playable() {
		s.Run(e.String(), func() {
			s.NotEmpty(s.pool.ArchetypesFor(e))
			s.NotEmpty(s.pool.Environments(e))
			s.GreaterOrEqual(len(s.pool.Ambiences(e)), 2)
			s.Greater(len(s.pool.DetailAdjectives(e)), 6)
		})
	}
}

func (s *PoolTestSuite) TestUnknownElementHasNoArchetypes() {
	s.Empty(s.pool.ArchetypesFor(cards.ElementUnknown))
	s.Empty(s.pool.Environments(cards.ElementUnknown))
}

func (s *PoolTestSuite) TestWaterArchetypesAreMarineThenReptiles() {
	water := s.pool.ArchetypesFor(cards.ElementWater)
	s.Equal("reptile", water[0].Name)

	names := make([]string, 0, len(water))
	for _, a := range water {
		names = append(names, a.Name)
	}
	s.Contains(names, "dragon")
	s.NotContains(names, "wolf")
}

func (s *PoolTestSuite) TestFindArchetypeIsExact() {
	dragon, ok := s.pool.FindArchetype("dragon")
	s.Require().True(ok)
	s.Len(dragon.Details, len(s.pool.Weapons())+6+2+1)

	_, ok = s.pool.FindArchetype("Dragon")
	s.False(ok)
}

func (s *PoolTestSuite) TestAccessorsReturnCopies() {
	first := s.pool.Environments(cards.ElementFire)
	first[0] = "mutated"
	s.Equal("volcano", s.pool.Environments(cards.ElementFire)[0])

	archetype, _ := s.pool.FindArchetype("clam")
	archetype.Details[0].Noun = "mutated"
	again, _ := s.pool.FindArchetype("clam")
	s.Equal("shell", again.Details[0].Noun)
}

func (s *PoolTestSuite) TestStageLookups() {
	zero, one, two, nine := 0, 1, 2, 9

	s.Equal([]string{"chibi cute", "chibi young"}, s.pool.StageAdjectives(&zero))
	s.Equal([]string{"young", "", "dynamic"}, s.pool.StageAdjectives(&one))
	s.Equal([]string{""}, s.pool.StageAdjectives(&nine))
	s.Equal([]string{""}, s.pool.StageAdjectives(nil))

	s.Equal("anime sketch", s.pool.StagePhrase(nil))
	s.Equal("polished final by studio ghibli", s.pool.StagePhrase(&two))
	s.Equal("", s.pool.StagePhrase(&nine))
}

func (s *PoolTestSuite) TestWeaponsUseCorrectArticle() {
	for _, w := range s.pool.Weapons() {
		s.Equal(cards.RelationHolding, w.Relation)
		if w.Noun == "axe" {
			s.Equal("an", w.Quantifier)
			continue
		}
		s.Equal("a", w.Quantifier)
	}
}
