// Package cards assembles creature cards and evolution series
package cards

//go:generate mockgen -destination=mock/mock_service.go -package=cardsmock github.com/KirkDiggler/card-forge/internal/orchestrators/cards Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/errors"
	"github.com/KirkDiggler/card-forge/internal/pkg/idgen"
	"github.com/KirkDiggler/card-forge/internal/pkg/random"
	"github.com/KirkDiggler/card-forge/internal/services/naming"
	"github.com/KirkDiggler/card-forge/internal/synthesis/ability"
	"github.com/KirkDiggler/card-forge/internal/synthesis/style"
)

const (
	// BasePoints is the budget of a Common stage-one card
	BasePoints = 4

	// AbilityToHPPoints converts one budget point moved to HP into bonus HP points
	AbilityToHPPoints = 2

	// HPPerPoint scales HP points to printed HP
	HPPerPoint = 10

	// EventCreatureGenerated is published once per generated card
	EventCreatureGenerated = "cards.creature.generated"

	// EventSeriesGenerated is published once per generated series
	EventSeriesGenerated = "cards.series.generated"

	standaloneStage = 1
	maxRandomCount  = 2
)

// Service defines card generation operations
type Service interface {
	GenerateSeries(ctx context.Context, input *GenerateSeriesInput) (*GenerateSeriesOutput, error)
	GenerateCard(ctx context.Context, input *GenerateCardInput) (*GenerateCardOutput, error)
}

// Config holds the dependencies for the cards orchestrator
type Config struct {
	Naming        naming.Service
	IDGenerator   idgen.Generator
	RandomFactory random.Factory
	Policy        random.Policy

	// StyleSynthesizer (optional, defaults to the built-in content pool)
	StyleSynthesizer *style.Synthesizer

	// EventBus (optional) receives generation events
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Naming == nil {
		vb.RequiredField("Naming")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.RandomFactory == nil {
		vb.RequiredField("RandomFactory")
	}

	return vb.Build()
}

type orchestrator struct {
	naming   naming.Service
	idGen    idgen.Generator
	factory  random.Factory
	policy   random.Policy
	styles   *style.Synthesizer
	eventBus events.EventBus
}

// NewOrchestrator creates a new cards orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	styles := cfg.StyleSynthesizer
	if styles == nil {
		styles = style.NewSynthesizer(nil)
	}

	return &orchestrator{
		naming:   cfg.Naming,
		idGen:    cfg.IDGenerator,
		factory:  cfg.RandomFactory,
		policy:   cfg.Policy,
		styles:   styles,
		eventBus: cfg.EventBus,
	}, nil
}

// GenerateSeries builds count cards sharing one visual identity with
// non-decreasing rarity, capped at Rare
func (o *orchestrator) GenerateSeries(ctx context.Context, input *GenerateSeriesInput) (*GenerateSeriesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	picker := o.newPicker()

	count := input.Count
	if count <= 0 {
		count = 1 + picker.Uniform(maxRandomCount)
	}

	startRarity := 0
	if rarityRange := max(cards.RarityCount-count, 0); rarityRange > 0 {
		startRarity = picker.Uniform(rarityRange)
	}

	slog.Info("Generating series",
		"element", input.Element,
		"count", count,
		"concept", input.Concept,
		"start_rarity", cards.RarityFromOrdinal(startRarity))

	creatures := make([]*cards.Creature, 0, count)
	var inherited *cards.Style

	for i := 0; i < count; i++ {
		var stage *int
		if count > 1 {
			stage = &i
		}

		creature := o.buildCard(ctx, picker, &GenerateCardInput{
			Element:   input.Element,
			Rarity:    cards.RarityFromOrdinal(startRarity + i),
			Stage:     copyStage(stage),
			Inherited: inherited,
			Concept:   input.Concept,
		})

		if i == 0 {
			inherited = creature.Style
		}
		creatures = append(creatures, creature)
	}

	if len(creatures) > 0 {
		o.publish(ctx, EventSeriesGenerated, creatures[0])
	}

	return &GenerateSeriesOutput{Creatures: creatures}, nil
}

// GenerateCard builds one card
func (o *orchestrator) GenerateCard(ctx context.Context, input *GenerateCardInput) (*GenerateCardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	creature := o.buildCard(ctx, o.newPicker(), input)
	return &GenerateCardOutput{Creature: creature}, nil
}

func (o *orchestrator) newPicker() *random.Picker {
	return random.NewPicker(o.factory.NewSource(), o.policy)
}

func (o *orchestrator) buildCard(ctx context.Context, picker *random.Picker, input *GenerateCardInput) *cards.Creature {
	budget := PointsBudget(input.Rarity, input.Stage)

	hpPoints := 0
	if bound := budget / 2; bound > 0 {
		hpPoints = picker.Uniform(bound)
	}
	abilityPoints, overflow := ability.Clamp(budget - hpPoints)
	hpPoints += overflow

	abilities := ability.Synthesize(picker, input.Element, ability.Costs(picker, abilityPoints, input.Rarity.Ordinal()))
	for i := range abilities {
		abilities[i].Name = o.abilityName(ctx, picker, abilities[i])
	}

	creature := &cards.Creature{
		ID:        o.idGen.Generate(),
		Name:      cards.CardPlaceholderName,
		HP:        HP(budget, hpPoints),
		Element:   input.Element,
		Rarity:    input.Rarity,
		Stage:     copyStage(input.Stage),
		Abilities: abilities,
	}

	creature.Style = o.styles.Synthesize(picker, &style.Input{
		Inherited: input.Inherited,
		Element:   input.Element,
		Rarity:    input.Rarity,
		Stage:     input.Stage,
		Subject:   input.Concept,
	})

	creature.ArtworkPrompt = ArtworkPrompt(creature)
	creature.VisualDescription = VisualDescription(creature)

	if o.naming.IsEnabled() {
		creature.Name = cards.CardFallbackName
		if name, ok := o.naming.ProposeCreatureName(ctx, creature); ok && name != "" {
			creature.Name = name
		}
		if desc, ok := o.naming.ProposeDescription(ctx, creature, creature.VisualDescription); ok {
			creature.FlavorText = desc
		}
	}

	slog.Info("Card generated",
		"card_id", creature.ID,
		"name", creature.Name,
		"element", creature.Element,
		"rarity", creature.Rarity,
		"hp", creature.HP,
		"abilities", len(creature.Abilities))

	o.publish(ctx, EventCreatureGenerated, creature)
	return creature
}

func (o *orchestrator) abilityName(ctx context.Context, picker *random.Picker, a cards.Ability) string {
	if name, ok := o.naming.ProposeAbilityName(ctx, picker, a); ok && name != "" {
		return name
	}
	return cards.AbilityFallbackName
}

func (o *orchestrator) publish(ctx context.Context, eventType string, source *cards.Creature) {
	if o.eventBus == nil {
		return
	}

	if err := o.eventBus.Publish(ctx, events.NewGameEvent(eventType, source, nil)); err != nil {
		slog.Warn("Failed to publish generation event",
			"event", eventType,
			"card_id", source.ID,
			"error", err)
	}
}

// PointsBudget is the total stat budget of a card. Standalone cards are
// budgeted as stage one.
func PointsBudget(rarity cards.Rarity, stage *int) int {
	s := standaloneStage
	if stage != nil {
		s = *stage
	}
	return BasePoints + rarity.Ordinal() + (s - 1)
}

// HP converts a budget and the points moved into HP into printed hit points
func HP(budget, hpPoints int) int {
	return HPPerPoint * (budget + hpPoints*AbilityToHPPoints)
}

func copyStage(stage *int) *int {
	if stage == nil {
		return nil
	}
	s := *stage
	return &s
}
