// Package renderer composes a card bitmap from its template, artwork and text
package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"slices"

	"github.com/gogpu/gg"

	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/errors"
	"github.com/KirkDiggler/card-forge/internal/resources"
)

//go:generate mockgen -destination=mock/mock_renderer.go -package=renderermock github.com/KirkDiggler/card-forge/internal/renderer Renderer

var rarityGlyphs = map[cards.Rarity]struct {
	glyph string
	size  float64
}{
	cards.RarityCommon:   {glyph: "⬤", size: 12},
	cards.RarityUncommon: {glyph: "◆", size: 12},
	cards.RarityRare:     {glyph: "★", size: 14},
}

// RenderInput contains the card and its artwork
type RenderInput struct {
	Creature *cards.Creature
	Artwork  image.Image
}

// RenderOutput contains the finished card
type RenderOutput struct {
	Image image.Image
}

// Renderer draws cards
type Renderer interface {
	Render(ctx context.Context, input *RenderInput) (*RenderOutput, error)
}

// Config holds renderer dependencies
type Config struct {
	Resources resources.Provider
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Resources == nil {
		vb.RequiredField("Resources")
	}
	return vb.Build()
}

type renderer struct {
	resources resources.Provider
}

// New creates a card renderer
func New(cfg *Config) (Renderer, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &renderer{resources: cfg.Resources}, nil
}

var _ Renderer = (*renderer)(nil)

// Render draws the card. A missing template is returned as errors.NotFound;
// missing icons are skipped.
func (r *renderer) Render(ctx context.Context, input *RenderInput) (*RenderOutput, error) {
	if input == nil || input.Creature == nil {
		return nil, errors.InvalidArgument("creature is required")
	}
	if input.Artwork == nil {
		return nil, errors.InvalidArgument("artwork is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "render canceled")
	}

	creature := input.Creature

	tmpl, err := r.resources.Template(creature.Element)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load template for %s", creature.Element)
	}

	width, height := tmpl.Bounds()
	dc := gg.NewContext(width, height)
	defer func() { _ = dc.Close() }()

	r.drawArtwork(dc, tmpl, input.Artwork)
	r.drawHeader(dc, creature)
	if err := r.drawAbilities(dc, creature.Abilities); err != nil {
		return nil, err
	}
	r.drawStatus(dc, creature.Element)
	r.drawFlavorText(dc, creature.FlavorText)
	r.drawRarity(dc, creature.Rarity)

	if err := dc.FlushGPU(); err != nil {
		return nil, errors.Wrap(err, "failed to flush canvas")
	}

	slog.Debug("Card rendered", "card_id", creature.ID, "width", width, "height", height)
	return &RenderOutput{Image: dc.Image()}, nil
}

// drawArtwork places the artwork under the template so the frame overlaps it
func (r *renderer) drawArtwork(dc *gg.Context, tmpl *gg.ImageBuf, artwork image.Image) {
	bounds := artwork.Bounds()
	place := ArtworkPlacement(dc.Width(), bounds.Dx(), bounds.Dy())

	if !place.Empty() {
		dc.DrawImageEx(gg.ImageBufFromImage(artwork), gg.DrawImageOptions{
			X:             float64(place.Min.X),
			Y:             float64(place.Min.Y),
			DstWidth:      float64(place.Dx()),
			DstHeight:     float64(place.Dy()),
			Interpolation: gg.InterpBicubic,
		})
	}

	dc.DrawImage(tmpl, 0, 0)
}

func (r *renderer) drawHeader(dc *gg.Context, creature *cards.Creature) {
	dc.SetFont(r.resources.Font(resources.FontBold, HeaderFontSize))
	dc.SetColor(color.Black)
	dc.DrawString(creature.Name, NameX, HeaderY)

	dc.SetFont(r.resources.Font(resources.FontRegular, HeaderFontSize))
	dc.SetRGB(1, 0, 0)
	dc.DrawString(fmt.Sprintf("%d HP", creature.HP), float64(dc.Width()-HPOffsetX), HeaderY)
}

func (r *renderer) drawAbilities(dc *gg.Context, abilities []cards.Ability) error {
	reversed := slices.Clone(abilities)
	slices.Reverse(reversed)

	origins := AbilityOrigins(dc.Width(), len(reversed))
	for i, a := range reversed {
		r.drawAbility(dc, origins[i], a)
	}

	if y, ok := RuleLineY(dc.Width(), len(reversed)); ok {
		dc.SetColor(color.Black)
		dc.SetLineWidth(1)
		dc.DrawLine(RuleInset, float64(y), float64(dc.Width()-RuleInset), float64(y))
		if err := dc.Stroke(); err != nil {
			return errors.Wrap(err, "failed to draw ability separator")
		}
	}
	return nil
}

func (r *renderer) drawAbility(dc *gg.Context, origin image.Point, a cards.Ability) {
	pips := a.Pips()
	for i, anchor := range CostIconAnchors(len(pips)) {
		r.drawIcon(dc, pips[i], origin.X+anchor.X, origin.Y+anchor.Y, PipSize)
	}

	dc.SetColor(color.Black)
	dc.SetFont(r.resources.Font(resources.FontBold, AbilityNameFontSize))
	dc.DrawString(a.Name, float64(origin.X+AbilityNameX), float64(origin.Y+AbilityNameY))

	dc.SetFont(r.resources.Font(resources.FontRegular, AbilityPowerFontSize))
	dc.DrawString(fmt.Sprintf("%d", a.Power()), float64(origin.X+AbilityPowerX), float64(origin.Y+AbilityPowerY))
}

func (r *renderer) drawStatus(dc *gg.Context, element cards.Element) {
	if weak, ok := element.Weakness(); ok {
		r.drawIcon(dc, weak, StatusInset, StatusY, StatusSize)
	}
	if resist, ok := element.Resistance(); ok {
		r.drawIcon(dc, resist, dc.Width()/2, StatusY, StatusSize)
	}
	r.drawIcon(dc, cards.ElementNeutral, dc.Width()-StatusInset, StatusY, StatusSize)
}

// drawIcon draws an element badge of size centred on (cx, cy)
func (r *renderer) drawIcon(dc *gg.Context, element cards.Element, cx, cy, size int) {
	icon, err := r.resources.Icon(element)
	if err != nil {
		slog.Warn("Element icon unavailable", "element", element, "error", err)
		return
	}

	dc.DrawImageEx(icon, gg.DrawImageOptions{
		X:             float64(cx - size/2),
		Y:             float64(cy - size/2),
		DstWidth:      float64(size),
		DstHeight:     float64(size),
		Interpolation: gg.InterpBicubic,
	})
}

func (r *renderer) drawFlavorText(dc *gg.Context, flavor string) {
	lines := WrapFlavorText(flavor)
	if len(lines) == 0 {
		return
	}

	face := r.resources.Font(resources.FontRegular, FlavorFontSize)
	lineHeight := face.Metrics().LineHeight()

	dc.SetFont(face)
	dc.SetColor(color.Black)

	y := float64(FlavorY)
	for _, line := range lines {
		y += lineHeight
		dc.DrawString(line, FlavorX, y)
	}
}

func (r *renderer) drawRarity(dc *gg.Context, rarity cards.Rarity) {
	glyph, ok := rarityGlyphs[rarity]
	if !ok {
		return
	}

	dc.SetFont(r.resources.Font(resources.FontSymbol, glyph.size))
	dc.SetColor(color.Black)
	dc.DrawString(glyph.glyph, float64(dc.Width()-RarityOffsetX), RarityY)
}
