// Package printing turns generated cards into finished bitmaps
package printing

//go:generate mockgen -destination=mock/mock_service.go -package=printingmock github.com/KirkDiggler/card-forge/internal/orchestrators/printing Service

import (
	"context"
	"image"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/errors"
	"github.com/KirkDiggler/card-forge/internal/renderer"
)

// DefaultTimeout bounds the artwork request and render of one card
const DefaultTimeout = 3 * time.Minute

// ArtworkGenerator produces artwork for a prompt. inference.Client satisfies it.
type ArtworkGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (image.Image, error)
}

// PrintedCard pairs a card with its rendered bitmap
type PrintedCard struct {
	Creature *cards.Creature
	Image    image.Image
}

// PrintSeriesInput contains the cards to print
type PrintSeriesInput struct {
	Creatures []*cards.Creature

	// OnPrinted (optional) is called once per card as it finishes, err set
	// when the card was dropped. Calls may come from several goroutines.
	OnPrinted func(creature *cards.Creature, err error)
}

// PrintSeriesOutput contains the printed cards in series order. Cards that
// failed are missing.
type PrintSeriesOutput struct {
	Cards []PrintedCard
}

// Service defines card printing operations
type Service interface {
	PrintSeries(ctx context.Context, input *PrintSeriesInput) (*PrintSeriesOutput, error)
}

// Config holds the dependencies for the printing orchestrator
type Config struct {
	Artwork  ArtworkGenerator
	Renderer renderer.Renderer

	// Timeout per card, defaults to DefaultTimeout
	Timeout time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Artwork == nil {
		vb.RequiredField("Artwork")
	}
	if c.Renderer == nil {
		vb.RequiredField("Renderer")
	}
	if c.Timeout < 0 {
		vb.Field("Timeout", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	artwork  ArtworkGenerator
	renderer renderer.Renderer
	timeout  time.Duration
}

// NewOrchestrator creates a new printing orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &orchestrator{
		artwork:  cfg.Artwork,
		renderer: cfg.Renderer,
		timeout:  timeout,
	}, nil
}

// PrintSeries requests artwork and renders every card concurrently.
// A canceled run still returns the cards finished before cancellation.
func (o *orchestrator) PrintSeries(ctx context.Context, input *PrintSeriesInput) (*PrintSeriesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	images := make([]image.Image, len(input.Creatures))

	var wg sync.WaitGroup
	for i, creature := range input.Creatures {
		if creature == nil {
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()

			img, err := o.printCard(ctx, creature)
			if err != nil {
				slog.Warn("Card dropped from print run",
					"card_id", creature.ID,
					"name", creature.Name,
					"error", err)
			}
			images[i] = img

			if input.OnPrinted != nil {
				input.OnPrinted(creature, err)
			}
		}()
	}
	wg.Wait()

	printed := make([]PrintedCard, 0, len(images))
	for i, img := range images {
		if img == nil {
			continue
		}
		printed = append(printed, PrintedCard{Creature: input.Creatures[i], Image: img})
	}
	out := &PrintSeriesOutput{Cards: printed}

	if err := ctx.Err(); err != nil {
		slog.Warn("Print run canceled", "requested", len(input.Creatures), "printed", len(printed))
		return out, errors.WrapWithCode(err, errors.CodeCanceled, "print run canceled")
	}

	slog.Info("Series printed", "requested", len(input.Creatures), "printed", len(printed))

	return out, nil
}

func (o *orchestrator) printCard(ctx context.Context, creature *cards.Creature) (image.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	artwork, err := o.artwork.GenerateImage(ctx, creature.ArtworkPrompt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate artwork")
	}

	out, err := o.renderer.Render(ctx, &renderer.RenderInput{
		Creature: creature,
		Artwork:  artwork,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to render card")
	}

	return out.Image, nil
}
