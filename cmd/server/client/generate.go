package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/card-forge/internal/handlers/cards/v1alpha1"
)

var (
	element string
	concept string
	count   int
	render  bool
	outDir  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a card series on the server",
	Long: `Ask the server for a series and write any rendered cards out. Examples:

  client generate --element Water --count 2
  client generate --element random --render --out ./cards`,
	RunE: generate,
}

func init() {
	generateCmd.Flags().StringVar(&element, "element", "random", "element name or \"random\"")
	generateCmd.Flags().StringVar(&concept, "concept", "", "creature concept, e.g. dragon")
	generateCmd.Flags().IntVar(&count, "count", 0, "series length (0 picks one or two)")
	generateCmd.Flags().BoolVar(&render, "render", false, "render card images on the server")
	generateCmd.Flags().StringVar(&outDir, "out", "cards", "directory for rendered PNGs")
}

func generate(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCardClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := structpb.NewStruct(map[string]any{
		v1alpha1.FieldElement: element,
		v1alpha1.FieldConcept: concept,
		v1alpha1.FieldCount:   count,
		v1alpha1.FieldRender:  render,
	})
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	fmt.Printf("Generating %s series...\n", element)

	resp, err := client.GenerateSeries(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to generate series: %w", err)
	}

	cards := resp.GetFields()[v1alpha1.FieldCards].GetListValue().GetValues()
	fmt.Printf("\nSeries (%d cards):\n", len(cards))
	fmt.Printf("==================\n")

	for i, value := range cards {
		card := value.GetStructValue().GetFields()

		fmt.Printf("\n%d. %s (%s, %s) %d HP\n", i+1,
			card[v1alpha1.FieldName].GetStringValue(),
			card[v1alpha1.FieldElement].GetStringValue(),
			card[v1alpha1.FieldRarity].GetStringValue(),
			int(card[v1alpha1.FieldHP].GetNumberValue()))

		for _, a := range card[v1alpha1.FieldAbilities].GetListValue().GetValues() {
			ability := a.GetStructValue().GetFields()
			fmt.Printf("   - %s: %d\n", ability["name"].GetStringValue(), int(ability["power"].GetNumberValue()))
		}
		if flavor := card[v1alpha1.FieldFlavorText].GetStringValue(); flavor != "" {
			fmt.Printf("   %s\n", flavor)
		}

		encoded := card[v1alpha1.FieldPNGBase64].GetStringValue()
		if encoded == "" {
			continue
		}
		path, err := writeCard(i, card[v1alpha1.FieldID].GetStringValue(), encoded)
		if err != nil {
			return err
		}
		fmt.Printf("   wrote %s\n", path)
	}

	return nil
}

func writeCard(index int, id, encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode card %s: %w", id, err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(outDir, fmt.Sprintf("%02d_%s.png", index+1, id))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
