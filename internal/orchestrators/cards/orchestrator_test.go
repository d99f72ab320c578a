package cards_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/errors"
	cardsorch "github.com/KirkDiggler/card-forge/internal/orchestrators/cards"
	"github.com/KirkDiggler/card-forge/internal/pkg/idgen"
	"github.com/KirkDiggler/card-forge/internal/pkg/random"
	"github.com/KirkDiggler/card-forge/internal/services/naming"
	namingmock "github.com/KirkDiggler/card-forge/internal/services/naming/mock"
)

// recordingEventBus keeps published event types
type recordingEventBus struct {
	published  []string
	publishErr error
}

func (b *recordingEventBus) Publish(_ context.Context, e events.Event) error {
	b.published = append(b.published, e.Type())
	return b.publishErr
}
func (b *recordingEventBus) Subscribe(_ string, _ events.Handler) string { return "sub-id" }
func (b *recordingEventBus) SubscribeFunc(_ string, _ int, _ events.HandlerFunc) string {
	return "sub-id"
}
func (b *recordingEventBus) Unsubscribe(_ string) error { return nil }
func (b *recordingEventBus) Clear(_ string)             {}
func (b *recordingEventBus) ClearAll()                  {}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockNaming *namingmock.MockService
	bus        *recordingEventBus
	ctx        context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockNaming = namingmock.NewMockService(s.ctrl)
	s.bus = &recordingEventBus{}
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newOrchestrator(svc naming.Service, factory random.Factory) cardsorch.Service {
	orch, err := cardsorch.NewOrchestrator(&cardsorch.Config{
		Naming:        svc,
		IDGenerator:   idgen.NewSequential("card"),
		RandomFactory: factory,
		EventBus:      s.bus,
	})
	s.Require().NoError(err)
	return orch
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := cardsorch.NewOrchestrator(&cardsorch.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Naming: is required")
	s.Contains(err.Error(), "RandomFactory: is required")
}

func (s *OrchestratorTestSuite) TestNilInput() {
	orch := s.newOrchestrator(naming.Disabled{}, random.NewSeededFactory(1))

	_, err := orch.GenerateSeries(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = orch.GenerateCard(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSeriesSharesIdentity() {
	orch := s.newOrchestrator(naming.Disabled{}, random.NewSeededFactory(42))

	out, err := orch.GenerateSeries(s.ctx, &cardsorch.GenerateSeriesInput{
		Element: cards.ElementFire,
		Count:   2,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Creatures, 2)

	first, second := out.Creatures[0], out.Creatures[1]
	s.Equal("card_1", first.ID)
	s.Equal("card_2", second.ID)
	s.Equal(first.Style.Subject, second.Style.Subject)
	s.Equal(first.Style.Environment, second.Style.Environment)
	s.Equal(first.Style.Detail, second.Style.Detail)
	s.LessOrEqual(first.Rarity.Ordinal(), second.Rarity.Ordinal())

	s.Require().NotNil(first.Stage)
	s.Require().NotNil(second.Stage)
	s.Equal(0, *first.Stage)
	s.Equal(1, *second.Stage)

	for _, creature := range out.Creatures {
		s.Equal(cards.CardPlaceholderName, creature.Name)
		s.Empty(creature.FlavorText)
		s.NotEmpty(creature.ArtworkPrompt)
		s.Contains(creature.VisualDescription, "-like environments.")
		s.Equal(cards.ElementFire, creature.Abilities[0].Element)
		for _, a := range creature.Abilities {
			s.Equal(cards.AbilityFallbackName, a.Name)
		}
	}

	s.Equal([]string{
		cardsorch.EventCreatureGenerated,
		cardsorch.EventCreatureGenerated,
		cardsorch.EventSeriesGenerated,
	}, s.bus.published)
}

func (s *OrchestratorTestSuite) TestRarityProgressionCapsAtRare() {
	orch := s.newOrchestrator(naming.Disabled{}, random.NewSeededFactory(7))

	out, err := orch.GenerateSeries(s.ctx, &cardsorch.GenerateSeriesInput{
		Element: cards.ElementWater,
		Count:   5,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Creatures, 5)

	expected := []cards.Rarity{
		cards.RarityCommon,
		cards.RarityUncommon,
		cards.RarityRare,
		cards.RarityRare,
		cards.RarityRare,
	}
	for i, creature := range out.Creatures {
		s.Equal(expected[i], creature.Rarity, "member %d", i)
	}
}

func (s *OrchestratorTestSuite) TestRandomCount() {
	testCases := []struct {
		name     string
		ints     []int
		expected int
	}{
		{name: "one member", ints: []int{0}, expected: 1},
		{name: "two members", ints: []int{1}, expected: 2},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			factory := &random.FixedFactory{Source: random.NewSequence(tc.ints, nil)}
			orch := s.newOrchestrator(naming.Disabled{}, factory)

			out, err := orch.GenerateSeries(s.ctx, &cardsorch.GenerateSeriesInput{Element: cards.ElementGrass})
			s.Require().NoError(err)
			s.Len(out.Creatures, tc.expected)
			if tc.expected == 1 {
				s.Nil(out.Creatures[0].Stage)
			}
		})
	}
}

func (s *OrchestratorTestSuite) TestNamingEnabled() {
	orch := s.newOrchestrator(s.mockNaming, random.NewSeededFactory(3))

	s.mockNaming.EXPECT().IsEnabled().Return(true)
	s.mockNaming.EXPECT().
		ProposeAbilityName(s.ctx, gomock.Any(), gomock.Any()).
		Return("Ember", true).
		AnyTimes()
	s.mockNaming.EXPECT().
		ProposeCreatureName(s.ctx, gomock.Any()).
		Return("", false)
	s.mockNaming.EXPECT().
		ProposeDescription(s.ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *cards.Creature, visual string) (string, bool) {
			s.Equal(c.VisualDescription, visual)
			s.Equal(cards.CardFallbackName, c.Name)
			return "It naps in warm ash.", true
		})

	out, err := orch.GenerateCard(s.ctx, &cardsorch.GenerateCardInput{
		Element: cards.ElementFire,
		Rarity:  cards.RarityUncommon,
		Concept: "dragon",
	})
	s.Require().NoError(err)

	creature := out.Creature
	s.Equal(cards.CardFallbackName, creature.Name)
	s.Equal("It naps in warm ash.", creature.FlavorText)
	s.Equal("dragon", creature.Style.Subject)
	s.Nil(creature.Stage)
	for _, a := range creature.Abilities {
		s.Equal("Ember", a.Name)
	}
}

func (s *OrchestratorTestSuite) TestUnknownConceptAndElementNeverFail() {
	orch := s.newOrchestrator(naming.Disabled{}, random.NewSeededFactory(9))

	out, err := orch.GenerateSeries(s.ctx, &cardsorch.GenerateSeriesInput{
		Element: cards.ElementUnknown,
		Count:   1,
		Concept: "teapot golem",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Creatures, 1)
	s.Equal("teapot golem", out.Creatures[0].Style.Subject)
}

func (s *OrchestratorTestSuite) TestPublishFailureIsIgnored() {
	s.bus.publishErr = fmt.Errorf("bus closed")
	orch := s.newOrchestrator(naming.Disabled{}, random.NewSeededFactory(11))

	out, err := orch.GenerateSeries(s.ctx, &cardsorch.GenerateSeriesInput{Element: cards.ElementPsychic, Count: 1})
	s.Require().NoError(err)
	s.Len(out.Creatures, 1)
	s.Len(s.bus.published, 2)
}

func (s *OrchestratorTestSuite) TestHPConservesBudget() {
	orch := s.newOrchestrator(naming.Disabled{}, random.NewSeededFactory(5))

	for i := 0; i < 20; i++ {
		out, err := orch.GenerateCard(s.ctx, &cardsorch.GenerateCardInput{
			Element: cards.ElementElectric,
			Rarity:  cards.RarityRare,
		})
		s.Require().NoError(err)

		budget := cardsorch.PointsBudget(cards.RarityRare, nil)
		spent := 0
		for _, a := range out.Creature.Abilities {
			spent += a.Cost
		}
		hpPoints := budget - spent
		s.Equal(cardsorch.HP(budget, hpPoints), out.Creature.HP)
		s.GreaterOrEqual(hpPoints, 0)
		s.Less(hpPoints, budget/2)
	}
}

func (s *OrchestratorTestSuite) TestLongSeriesKeepsCostsPrintable() {
	for seed := uint64(0); seed < 20; seed++ {
		orch := s.newOrchestrator(naming.Disabled{}, random.NewSeededFactory(seed))

		out, err := orch.GenerateSeries(s.ctx, &cardsorch.GenerateSeriesInput{
			Element: cards.ElementFire,
			Count:   10,
		})
		s.Require().NoError(err)
		s.Require().Len(out.Creatures, 10)

		for i, creature := range out.Creatures {
			s.Require().NotNil(creature.Stage)
			budget := cardsorch.PointsBudget(creature.Rarity, creature.Stage)

			spent := 0
			s.LessOrEqual(len(creature.Abilities), 2)
			for _, a := range creature.Abilities {
				s.GreaterOrEqual(a.Cost, cards.MinAbilityCost, "seed %d member %d", seed, i)
				s.LessOrEqual(a.Cost, cards.MaxAbilityCost, "seed %d member %d", seed, i)
				spent += a.Cost
			}
			s.Equal(cardsorch.HP(budget, budget-spent), creature.HP, "seed %d member %d", seed, i)
		}
	}
}

func TestPointsBudgetAndHP(t *testing.T) {
	stage := func(i int) *int { return &i }

	testCases := []struct {
		name     string
		rarity   cards.Rarity
		stage    *int
		expected int
	}{
		{name: "standalone common", rarity: cards.RarityCommon, expected: 4},
		{name: "stage zero common", rarity: cards.RarityCommon, stage: stage(0), expected: 3},
		{name: "stage two rare", rarity: cards.RarityRare, stage: stage(2), expected: 7},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cardsorch.PointsBudget(tc.rarity, tc.stage); got != tc.expected {
				t.Errorf("PointsBudget = %d, want %d", got, tc.expected)
			}
		})
	}

	if got := cardsorch.HP(4, 1); got != 60 {
		t.Errorf("HP(4, 1) = %d, want 60", got)
	}
}

func TestPrompts(t *testing.T) {
	creature := &cards.Creature{
		Rarity: cards.RarityUncommon,
		Style: &cards.Style{
			Subject:           "lizard",
			SubjectAdjectives: []string{"tiny", "fire-type"},
			Detail:            "wearing a red scarf",
			Environment:       "volcano",
			Ambience:          "warm light",
			Suffix:            "anime sketch, high quality",
		},
	}

	wantVisual := "a tiny fire-type lizard pokemon, wearing a red scarf. It can be found in volcano-like environments."
	if got := cardsorch.VisualDescription(creature); got != wantVisual {
		t.Errorf("VisualDescription = %q", got)
	}

	wantPrompt := "a tiny fire-type lizard pokemon, wearing a red scarf, in a volcano environment, warm light, " +
		"anime sketch, high quality"
	if got := cardsorch.ArtworkPrompt(creature); got != wantPrompt {
		t.Errorf("ArtworkPrompt = %q", got)
	}

	creature.Rarity = cards.RarityCommon
	creature.Style.SubjectAdjectives = []string{"", "fire-type"}
	wantCommon := "a fire-type lizard pokemon, in a volcano environment, warm light, anime sketch, high quality"
	if got := cardsorch.ArtworkPrompt(creature); got != wantCommon {
		t.Errorf("ArtworkPrompt = %q", got)
	}
}
