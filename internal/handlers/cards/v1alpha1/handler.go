package v1alpha1

import (
	"context"
	"log/slog"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/card-forge/internal/errors"
	cardsorch "github.com/KirkDiggler/card-forge/internal/orchestrators/cards"
	"github.com/KirkDiggler/card-forge/internal/orchestrators/printing"
	"github.com/KirkDiggler/card-forge/internal/pkg/random"
)

// MaxSeriesCount bounds the members one request may generate
const MaxSeriesCount = 10

// HandlerConfig holds dependencies for the card handler
type HandlerConfig struct {
	CardService   cardsorch.Service
	RandomFactory random.Factory

	// PrintService (optional) renders cards when a request asks for it
	PrintService printing.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.CardService == nil {
		vb.RequiredField("CardService")
	}
	if c.RandomFactory == nil {
		vb.RequiredField("RandomFactory")
	}
	return vb.Build()
}

// Handler implements CardServiceServer
type Handler struct {
	cardService   cardsorch.Service
	printService  printing.Service
	randomFactory random.Factory
}

var _ CardServiceServer = (*Handler)(nil)

// NewHandler creates a new card handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		cardService:   cfg.CardService,
		printService:  cfg.PrintService,
		randomFactory: cfg.RandomFactory,
	}, nil
}

// GenerateSeries generates an evolution series and optionally renders it
func (h *Handler) GenerateSeries(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	parsed, err := parseGenerateRequest(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	element, err := cardsorch.ResolveElement(parsed.element, h.randomFactory)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if parsed.render && h.printService == nil {
		return nil, errors.ToGRPCError(errors.Unavailable("rendering is not configured on this server"))
	}

	series, err := h.cardService.GenerateSeries(ctx, &cardsorch.GenerateSeriesInput{
		Element: element,
		Count:   parsed.count,
		Concept: parsed.concept,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	var printed []printing.PrintedCard
	if parsed.render {
		out, err := h.printService.PrintSeries(ctx, &printing.PrintSeriesInput{
			Creatures: series.Creatures,
		})
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		printed = out.Cards
	}

	resp, err := buildGenerateResponse(series.Creatures, printed)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	slog.Info("Series served",
		"element", element,
		"cards", len(series.Creatures),
		"rendered", len(printed))

	return resp, nil
}
