package style_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/card-forge/internal/contentpool"
	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/pkg/random"
	"github.com/KirkDiggler/card-forge/internal/synthesis/style"
)

type StyleTestSuite struct {
	suite.Suite
	synth *style.Synthesizer
}

func (s *StyleTestSuite) SetupTest() {
	s.synth = style.NewSynthesizer(&style.Config{Pool: contentpool.Default()})
}

func TestStyleTestSuite(t *testing.T) {
	suite.Run(t, new(StyleTestSuite))
}

func stage(i int) *int {
	return &i
}

func (s *StyleTestSuite) TestFreshStyleFromOverride() {
	// detail, detail adjective, environment, rarity adjective, stage adjective
	seq := random.NewSequence([]int{0, 2, 0, 0, 0}, nil)
	picker := random.NewPicker(seq, random.PolicyExcludeLast)

	got := s.synth.Synthesize(picker, &style.Input{
		Element: cards.ElementFire,
		Rarity:  cards.RarityRare,
		Stage:   stage(2),
		Subject: "dragon",
	})

	s.Equal("dragon", got.Subject)
	s.Equal("holding a golden sword", got.Detail)
	s.Equal("golden", got.DetailAdjective)
	s.Equal("volcano", got.Environment)
	s.Equal([]string{"gigantic legendary", "fire-type"}, got.SubjectAdjectives)
	s.Equal("orange galaxy background", got.Ambience)
	s.Equal("polished final by studio ghibli "+contentpool.StyleSuffix, got.Suffix)

	// exclude-last shrinks every policy-governed bound by one
	s.Equal([]int{21, 9, 1, 2, 1}, seq.Bounds())
}

func (s *StyleTestSuite) TestInheritedStyleCopiesSubjectFields() {
	inherited := &cards.Style{
		Subject:           "fox",
		SubjectAdjectives: []string{"chibi cute", "grass-type"},
		Detail:            "with leafy fur",
		DetailAdjective:   "leafy",
		Environment:       "forest",
		Ambience:          "sunlight ray ambience",
	}
	seq := random.NewSequence([]int{0, 1, 2}, nil)
	picker := random.NewPicker(seq, random.PolicyExcludeLast)

	got := s.synth.Synthesize(picker, &style.Input{
		Inherited: inherited,
		Element:   cards.ElementGrass,
		Rarity:    cards.RarityCommon,
		Stage:     stage(1),
	})

	s.Equal("fox", got.Subject)
	s.Equal("with leafy fur", got.Detail)
	s.Equal("leafy", got.DetailAdjective)
	s.Equal("forest", got.Environment)
	s.Equal([]string{"", "grass-type"}, got.SubjectAdjectives)
	s.Equal("emerald bokeh lighting", got.Ambience)
	s.Equal("anime sketch with watercolor "+contentpool.StyleSuffix, got.Suffix)
	s.Equal([]int{1, 2, 3}, seq.Bounds())
}

func (s *StyleTestSuite) TestUnmatchedOverrideIsUsedVerbatim() {
	picker := random.NewPicker(random.NewSequence(nil, nil), random.PolicyExcludeLast)

	got := s.synth.Synthesize(picker, &style.Input{
		Element: cards.ElementWater,
		Rarity:  cards.RarityUncommon,
		Subject: "Glass Golem",
	})

	s.Equal("Glass Golem", got.Subject)
	s.Empty(got.Detail)
	s.Empty(got.DetailAdjective)
	s.Equal("ocean", got.Environment)
	s.Equal([]string{"strong", "water-type"}, got.SubjectAdjectives)
	s.Equal("anime sketch "+contentpool.StyleSuffix, got.Suffix)
}

func (s *StyleTestSuite) TestUnknownElementFallsBackToFirstArchetype() {
	picker := random.NewPicker(random.NewSequence(nil, nil), random.PolicyExcludeLast)

	got := s.synth.Synthesize(picker, &style.Input{
		Element: cards.ElementUnknown,
		Rarity:  cards.RarityCommon,
	})

	s.Equal("reptile", got.Subject)
	s.Empty(got.Environment)
	s.Empty(got.Ambience)
	s.Equal("unknown-type", got.SubjectAdjectives[1])
}

func (s *StyleTestSuite) TestFreshArchetypeMatchesElement() {
	pool := contentpool.Default()
	allowed := make(map[string]bool)
	for _, a := range pool.ArchetypesFor(cards.ElementElectric) {
		allowed[a.Name] = true
	}

	for seed := uint64(0); seed < 40; seed++ {
		picker := random.NewPicker(random.NewSeeded(seed), random.PolicyFullRange)
		got := s.synth.Synthesize(picker, &style.Input{Element: cards.ElementElectric, Rarity: cards.RarityRare})
		s.True(allowed[got.Subject], "unexpected subject %s", got.Subject)
		s.Contains(pool.Environments(cards.ElementElectric), got.Environment)
	}
}

func (s *StyleTestSuite) TestReservedAmbienceOnlyForFinalRare() {
	ambiences := contentpool.Default().Ambiences(cards.ElementWater)
	reserved := ambiences[len(ambiences)-1]

	for seed := uint64(0); seed < 40; seed++ {
		picker := random.NewPicker(random.NewSeeded(seed), random.PolicyFullRange)
		got := s.synth.Synthesize(picker, &style.Input{
			Element: cards.ElementWater,
			Rarity:  cards.RarityUncommon,
			Stage:   stage(2),
		})
		s.NotEqual(reserved, got.Ambience)
	}
}
