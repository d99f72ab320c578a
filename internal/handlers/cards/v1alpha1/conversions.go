package v1alpha1

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"math"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/errors"
	"github.com/KirkDiggler/card-forge/internal/orchestrators/printing"
)

// Request and response field names
const (
	FieldElement     = "element"
	FieldConcept     = "concept"
	FieldCount       = "count"
	FieldRender      = "render"
	FieldCards       = "cards"
	FieldPNGBase64   = "png_base64"
	FieldID          = "id"
	FieldName        = "name"
	FieldHP          = "hp"
	FieldRarity      = "rarity"
	FieldAbilities   = "abilities"
	FieldPrompt      = "prompt"
	FieldDescription = "description"
	FieldFlavorText  = "flavor_text"
)

type generateRequest struct {
	element string
	concept string
	count   int
	render  bool
}

func parseGenerateRequest(req *structpb.Struct) (*generateRequest, error) {
	parsed := &generateRequest{}
	if req == nil {
		return parsed, nil
	}
	fields := req.GetFields()

	if v, ok := fields[FieldElement]; ok {
		s, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, errors.InvalidArgument("element must be a string")
		}
		parsed.element = s.StringValue
	}

	if v, ok := fields[FieldConcept]; ok {
		s, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, errors.InvalidArgument("concept must be a string")
		}
		parsed.concept = strings.TrimSpace(s.StringValue)
	}

	if v, ok := fields[FieldCount]; ok {
		n, ok := v.GetKind().(*structpb.Value_NumberValue)
		if !ok || n.NumberValue != math.Trunc(n.NumberValue) {
			return nil, errors.InvalidArgument("count must be a whole number")
		}
		count := int(math.Max(-1, math.Min(n.NumberValue, MaxSeriesCount+1)))
		vb := errors.NewValidationBuilder()
		errors.ValidateRange(FieldCount, count, 0, MaxSeriesCount, vb)
		if err := vb.Build(); err != nil {
			return nil, err
		}
		parsed.count = count
	}

	if v, ok := fields[FieldRender]; ok {
		b, ok := v.GetKind().(*structpb.Value_BoolValue)
		if !ok {
			return nil, errors.InvalidArgument("render must be a bool")
		}
		parsed.render = b.BoolValue
	}

	return parsed, nil
}

func buildGenerateResponse(creatures []*cards.Creature, printed []printing.PrintedCard) (*structpb.Struct, error) {
	encoded := make(map[string]string, len(printed))
	for _, card := range printed {
		var buf bytes.Buffer
		if err := png.Encode(&buf, card.Image); err != nil {
			return nil, errors.Wrapf(err, "failed to encode card %s", card.Creature.ID)
		}
		encoded[card.Creature.ID] = base64.StdEncoding.EncodeToString(buf.Bytes())
	}

	list := make([]any, 0, len(creatures))
	for _, c := range creatures {
		card := creatureToMap(c)
		if data, ok := encoded[c.ID]; ok {
			card[FieldPNGBase64] = data
		}
		list = append(list, card)
	}

	resp, err := structpb.NewStruct(map[string]any{FieldCards: list})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build response")
	}
	return resp, nil
}

func creatureToMap(c *cards.Creature) map[string]any {
	abilities := make([]any, 0, len(c.Abilities))
	for _, a := range c.Abilities {
		abilities = append(abilities, map[string]any{
			"name":    a.Name,
			"element": a.Element.String(),
			"cost":    a.Cost,
			"mixed":   a.Mixed,
			"power":   a.Power(),
		})
	}

	return map[string]any{
		FieldID:          c.ID,
		FieldName:        c.Name,
		FieldHP:          c.HP,
		FieldElement:     c.Element.String(),
		FieldRarity:      c.Rarity.String(),
		FieldAbilities:   abilities,
		FieldPrompt:      c.ArtworkPrompt,
		FieldDescription: c.VisualDescription,
		FieldFlavorText:  c.FlavorText,
	}
}
