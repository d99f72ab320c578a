package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	cardsorch "github.com/KirkDiggler/card-forge/internal/orchestrators/cards"
	"github.com/KirkDiggler/card-forge/internal/orchestrators/printing"
)

var (
	genElement string
	genCount   int
	genConcept string
	genOutDir  string
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 1).
			Width(44)

	hpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")).Bold(true)
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	flavorText = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#04B575"))
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a card series locally",
	Long: `Generate an evolution series in-process and, when artwork is enabled,
render each card to a PNG. Examples:

  card-forge generate --element Fire --count 2 --concept dragon --out ./cards
  card-forge generate --element random --ai --ai-token $TOKEN`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genElement, "element", cardsorch.RandomElement, "element name or \"random\"")
	generateCmd.Flags().IntVar(&genCount, "count", 0, "series length (0 picks one or two)")
	generateCmd.Flags().StringVar(&genConcept, "concept", "", "creature concept, e.g. dragon")
	generateCmd.Flags().StringVar(&genOutDir, "out", "cards", "directory for rendered PNGs")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	application, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer application.Close()

	element, err := cardsorch.ResolveElement(genElement, application.factory)
	if err != nil {
		return err
	}

	series, err := application.cards.GenerateSeries(ctx, &cardsorch.GenerateSeriesInput{
		Element: element,
		Count:   genCount,
		Concept: genConcept,
	})
	if err != nil {
		return fmt.Errorf("failed to generate series: %w", err)
	}

	fmt.Println(renderSummary(series.Creatures))

	if application.printing == nil {
		fmt.Println(infoStyle.Render("Artwork disabled (--ai), skipping card images."))
		return nil
	}

	bar := progressbar.Default(int64(len(series.Creatures)), "Rendering cards")
	printed, err := application.printing.PrintSeries(ctx, &printing.PrintSeriesInput{
		Creatures: series.Creatures,
		OnPrinted: func(*cards.Creature, error) {
			_ = bar.Add(1)
		},
	})
	if printed == nil {
		return fmt.Errorf("failed to print series: %w", err)
	}
	printErr := err

	if err := os.MkdirAll(genOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for i, card := range printed.Cards {
		path := filepath.Join(genOutDir, cardFileName(i, card.Creature.Name))
		if err := writePNG(path, card.Image); err != nil {
			return err
		}
		fmt.Println(infoStyle.Render("wrote " + path))
	}

	if printErr != nil {
		return fmt.Errorf("print run stopped after %d card(s): %w", len(printed.Cards), printErr)
	}

	if dropped := len(series.Creatures) - len(printed.Cards); dropped > 0 {
		fmt.Println(infoStyle.Render(fmt.Sprintf("%d card(s) could not be rendered", dropped)))
	}
	return nil
}

func renderSummary(creatures []*cards.Creature) string {
	blocks := []string{titleStyle.Render(fmt.Sprintf("Series of %d", len(creatures)))}

	for _, c := range creatures {
		var b strings.Builder
		fmt.Fprintf(&b, "%s  %s\n", lipgloss.NewStyle().Bold(true).Render(c.Name), hpStyle.Render(fmt.Sprintf("%d HP", c.HP)))
		fmt.Fprintf(&b, "%s\n", infoStyle.Render(fmt.Sprintf("%s · %s · %s", c.Element, c.Rarity, c.ID)))
		for _, a := range c.Abilities {
			fmt.Fprintf(&b, "  %-24s %d (%d %s)\n", a.Name, a.Power(), a.Cost, a.Element)
		}
		if c.FlavorText != "" {
			b.WriteString(flavorText.Render(c.FlavorText))
		}
		blocks = append(blocks, cardStyle.Render(strings.TrimRight(b.String(), "\n")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// cardFileName builds "01_emberling.png" style names
func cardFileName(index int, name string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '_'
		}
	}, strings.TrimSpace(name))
	if slug == "" {
		slug = "card"
	}
	return fmt.Sprintf("%02d_%s.png", index+1, slug)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
