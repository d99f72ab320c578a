package cards

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/services/naming"
)

func subjectPhrase(creature *cards.Creature) string {
	var sb strings.Builder
	sb.WriteString("a ")
	for _, adjective := range creature.Style.SubjectAdjectives {
		sb.WriteString(adjective)
		sb.WriteString(" ")
	}
	sb.WriteString(creature.Style.Subject)
	sb.WriteString(" ")
	sb.WriteString(naming.SubjectType)
	return strings.ReplaceAll(sb.String(), " ,", ",")
}

// detailClause is only printed from Uncommon up
func detailClause(creature *cards.Creature) string {
	if strings.TrimSpace(creature.Style.Detail) == "" || creature.Rarity.Ordinal() == 0 {
		return ""
	}
	return ", " + creature.Style.Detail
}

// VisualDescription describes the creature for naming prompts
func VisualDescription(creature *cards.Creature) string {
	return fmt.Sprintf("%s%s. It can be found in %s-like environments.",
		subjectPhrase(creature), detailClause(creature), creature.Style.Environment)
}

// ArtworkPrompt is the text sent to the image model
func ArtworkPrompt(creature *cards.Creature) string {
	prompt := fmt.Sprintf("%s%s, in a %s environment, %s, %s",
		subjectPhrase(creature), detailClause(creature),
		creature.Style.Environment, creature.Style.Ambience, creature.Style.Suffix)
	prompt = strings.ReplaceAll(prompt, "  ", " ")
	return strings.ReplaceAll(prompt, " ,", ",")
}
