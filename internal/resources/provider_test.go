package resources_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/errors"
	"github.com/KirkDiggler/card-forge/internal/resources"
)

type ProviderTestSuite struct {
	suite.Suite
	dir      string
	provider resources.Provider
}

func TestProviderSuite(t *testing.T) {
	suite.Run(t, new(ProviderTestSuite))
}

func (s *ProviderTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.Require().NoError(os.MkdirAll(filepath.Join(s.dir, resources.TemplatesDir), 0o755))
	s.Require().NoError(os.MkdirAll(filepath.Join(s.dir, resources.ElementsDir), 0o755))

	writePNG(s.T(), filepath.Join(s.dir, resources.TemplatesDir, "fire_card.png"), 12, 16)
	writePNG(s.T(), filepath.Join(s.dir, resources.ElementsDir, "water_element.png"), 4, 4)

	provider, err := resources.NewFSProvider(&resources.Config{Dir: s.dir})
	s.Require().NoError(err)
	s.provider = provider
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{G: 200, A: 255})

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func (s *ProviderTestSuite) TestConfigValidation() {
	testCases := []struct {
		name string
		cfg  *resources.Config
	}{
		{name: "missing dir", cfg: &resources.Config{}},
		{name: "not a directory", cfg: &resources.Config{Dir: filepath.Join(s.dir, "nope")}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := resources.NewFSProvider(tc.cfg)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *ProviderTestSuite) TestTemplate() {
	img, err := s.provider.Template(cards.ElementFire)
	s.Require().NoError(err)

	w, h := img.Bounds()
	s.Equal(12, w)
	s.Equal(16, h)

	again, err := s.provider.Template(cards.ElementFire)
	s.Require().NoError(err)
	s.Same(img, again)
}

func (s *ProviderTestSuite) TestMissingAssetsAreNotFound() {
	_, err := s.provider.Template(cards.ElementGrass)
	s.True(errors.IsNotFound(err))

	_, err = s.provider.Icon(cards.ElementPsychic)
	s.True(errors.IsNotFound(err))
}

func (s *ProviderTestSuite) TestIcon() {
	img, err := s.provider.Icon(cards.ElementWater)
	s.Require().NoError(err)
	s.Equal(4, img.Width())
}

func (s *ProviderTestSuite) TestFontFallsBack() {
	for _, role := range []resources.FontRole{resources.FontRegular, resources.FontBold, resources.FontSymbol} {
		face := s.provider.Font(role, 28)
		s.Require().NotNil(face)
		s.Greater(face.Metrics().LineHeight(), 0.0)
	}
}

func TestAssetFileNames(t *testing.T) {
	if got := resources.TemplateFile(cards.ElementElectric); got != "electric_card.png" {
		t.Errorf("TemplateFile = %q", got)
	}
	if got := resources.IconFile(cards.ElementNeutral); got != "neutral_element.png" {
		t.Errorf("IconFile = %q", got)
	}
}
