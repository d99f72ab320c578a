package naming

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/card-forge/internal/clients/inference"
	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/errors"
	"github.com/KirkDiggler/card-forge/internal/pkg/random"
	"github.com/KirkDiggler/card-forge/internal/repositories/namecache"
)

const (
	// SubjectType is the creature noun used in prompts
	SubjectType = "pokemon"

	maxAbilityNameLength  = 30
	maxCreatureNameLength = 18

	abilityCachePrefix     = "ability:"
	creatureCachePrefix    = "creature:"
	descriptionCachePrefix = "description:"
)

// TextGenerator produces a completion for a prompt; inference.Client satisfies it
type TextGenerator interface {
	GenerateText(ctx context.Context, model, prompt string) (string, error)
}

// Config holds naming dependencies
type Config struct {
	// Pool of pre-authored ability names (required)
	Pool *Pool
	// TextGenerator enables generated text when set
	TextGenerator TextGenerator
	// TextModel (optional, defaults to inference.DefaultTextModel)
	TextModel string
	// Cache stores generated text (optional)
	Cache namecache.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Pool == nil {
		vb.RequiredField("Pool")
	}
	return vb.Build()
}

type service struct {
	pool      *Pool
	generator TextGenerator
	model     string
	cache     namecache.Repository
}

// New creates a naming service
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	model := cfg.TextModel
	if model == "" {
		model = inference.DefaultTextModel
	}

	return &service{
		pool:      cfg.Pool,
		generator: cfg.TextGenerator,
		model:     model,
		cache:     cfg.Cache,
	}, nil
}

var _ Service = (*service)(nil)

func (s *service) IsEnabled() bool {
	return s.generator != nil
}

func (s *service) ProposeAbilityName(ctx context.Context, picker *random.Picker, ability cards.Ability) (string, bool) {
	key := ability.Key()

	if names := s.pool.Names(key); len(names) > 0 {
		name := names[picker.Index(len(names))]
		slog.Debug("Ability name from pool", "key", key, "name", name)
		return name, true
	}

	if !s.IsEnabled() {
		return "", false
	}

	if name, ok := s.cached(ctx, abilityCachePrefix+key); ok {
		return name, true
	}

	prompt := abilityNamePrompt(ability)
	name, ok := s.generateBounded(ctx, prompt, maxAbilityNameLength)
	if !ok {
		slog.Warn("Ability name generation failed", "key", key)
		return "", false
	}

	s.store(ctx, abilityCachePrefix+key, name)
	return name, true
}

func (s *service) ProposeCreatureName(ctx context.Context, creature *cards.Creature) (string, bool) {
	if !s.IsEnabled() || creature == nil {
		return "", false
	}

	prompt := creatureNamePrompt(creature)
	key := promptKey(creatureCachePrefix, prompt)
	if name, ok := s.cached(ctx, key); ok {
		slog.Debug("Creature name from cache", "card_id", creature.ID, "name", name)
		return name, true
	}

	raw, err := s.generate(ctx, prompt)
	if err != nil {
		slog.Warn("Creature name generation failed", "card_id", creature.ID, "error", err)
		return "", false
	}

	if len(raw) > maxCreatureNameLength {
		slog.Info("Creature name too long, requesting again", "card_id", creature.ID, "length", len(raw))
		raw, err = s.generate(ctx, prompt)
		if err != nil {
			slog.Warn("Creature name generation failed", "card_id", creature.ID, "error", err)
			return "", false
		}
	}

	name := CleanCreatureName(raw)
	if name == "" {
		return "", false
	}

	s.store(ctx, key, name)
	return name, true
}

func (s *service) ProposeDescription(ctx context.Context, creature *cards.Creature, visual string) (string, bool) {
	if !s.IsEnabled() || creature == nil {
		return "", false
	}

	prompt := descriptionPrompt(creature, visual)
	key := promptKey(descriptionCachePrefix, prompt)
	if desc, ok := s.cached(ctx, key); ok {
		slog.Debug("Description from cache", "card_id", creature.ID)
		return desc, true
	}

	raw, err := s.generate(ctx, prompt)
	if err != nil {
		slog.Warn("Description generation failed", "card_id", creature.ID, "error", err)
		return "", false
	}

	desc := TrimDescription(raw)
	if desc == "" {
		return "", false
	}

	s.store(ctx, key, desc)
	return desc, true
}

// generateBounded asks twice at most for a non-empty result no longer than limit
func (s *service) generateBounded(ctx context.Context, prompt string, limit int) (string, bool) {
	for attempt := 0; attempt < 2; attempt++ {
		text, err := s.generate(ctx, prompt)
		if err != nil {
			return "", false
		}
		if text != "" && len(text) <= limit {
			return text, true
		}
	}
	return "", false
}

func (s *service) generate(ctx context.Context, prompt string) (string, error) {
	slog.Debug("Requesting text", "model", s.model, "prompt", prompt)
	text, err := s.generator.GenerateText(ctx, s.model, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// promptKey identifies generated text by the prompt that produced it
func promptKey(prefix, prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return prefix + hex.EncodeToString(sum[:16])
}

func (s *service) cached(ctx context.Context, key string) (string, bool) {
	if s.cache == nil {
		return "", false
	}

	out, err := s.cache.Get(ctx, namecache.GetInput{Key: key})
	if err != nil {
		if !errors.IsNotFound(err) {
			slog.Warn("Name cache read failed", "key", key, "error", err)
		}
		return "", false
	}
	return out.Entry.Value, true
}

func (s *service) store(ctx context.Context, key, value string) {
	if s.cache == nil {
		return
	}

	if _, err := s.cache.Put(ctx, namecache.PutInput{Key: key, Value: value}); err != nil {
		slog.Warn("Name cache write failed", "key", key, "error", err)
	}
}

func abilityNamePrompt(ability cards.Ability) string {
	kind := "pure"
	if ability.Mixed {
		kind = "mixed"
	}
	return fmt.Sprintf(
		"Generate only one a unique, original, creative name for ability with such parameters: %s %d %s standard. "+
			"Without using the words from parameters, in one word without punctuation signs:",
		ability.Element, ability.Cost, kind)
}

func creatureNamePrompt(creature *cards.Creature) string {
	modifier := "single-word"
	if creature.Rarity == cards.RarityCommon {
		modifier = "short, single-word"
	}
	return fmt.Sprintf(
		"Generate only one a unique, original, creative, %s %s name for %s "+
			"(without using the word %s or %s) in one word without punctuation signs:",
		modifier, SubjectType, creature.VisualDescription, SubjectType, creature.Element)
}

func descriptionPrompt(creature *cards.Creature, visual string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate in 2 sentences a very brief, original, creative Pokedex description for %s, %s ",
		creature.Name, visual)
	sb.WriteString("It has the following abilities: ")
	for _, ability := range creature.Abilities {
		sb.WriteString(ability.Name)
		sb.WriteString(", ")
	}
	sb.WriteString(". Be creative about its day-to-day life. ")

	subject := SubjectType
	if creature.Style != nil && creature.Style.Subject != "" {
		subject = creature.Style.Subject
	}
	fmt.Fprintf(&sb, "(do not use the word %s or %s-type or the ability names):",
		subject, creature.Element.Slug())
	return sb.String()
}
