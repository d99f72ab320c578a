package cards

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/card-forge/internal/entities/cards"
)

// auditPriority runs the audit log after any other subscriber
const auditPriority = 100

// SubscribeAudit records every generated card and series on logger.
// A nil logger uses slog.Default. Returns the subscription IDs.
func SubscribeAudit(bus events.EventBus, logger *slog.Logger) []string {
	if logger == nil {
		logger = slog.Default()
	}

	audit := func(msg string) events.HandlerFunc {
		return func(ctx context.Context, event events.Event) error {
			creature, ok := event.Source().(*cards.Creature)
			if !ok {
				logger.WarnContext(ctx, "Unexpected generation event source", "event", event.Type())
				return nil
			}

			logger.InfoContext(ctx, msg,
				"event", event.Type(),
				"card_id", creature.ID,
				"element", creature.Element.Slug(),
				"rarity", creature.Rarity.String(),
				"hp", creature.HP)
			return nil
		}
	}

	return []string{
		bus.SubscribeFunc(EventCreatureGenerated, auditPriority, audit("Creature generated")),
		bus.SubscribeFunc(EventSeriesGenerated, auditPriority, audit("Creature series generated")),
	}
}
