// Package resources loads card templates, element icons and fonts from an
// assets directory
package resources

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/KirkDiggler/card-forge/internal/entities/cards"
	"github.com/KirkDiggler/card-forge/internal/errors"
)

//go:generate mockgen -destination=mock/mock_provider.go -package=resourcesmock github.com/KirkDiggler/card-forge/internal/resources Provider

// FontRole selects which typeface a text element uses
type FontRole int

const (
	FontRegular FontRole = iota
	FontBold
	FontSymbol
)

// Asset layout under the assets directory
const (
	TemplatesDir = "templates"
	ElementsDir  = "elements"
	FontsDir     = "fonts"

	BoldFontFile    = "Cabin-Bold.ttf"
	RegularFontFile = "Cabin_Condensed-Regular.ttf"
	SymbolFontFile  = "NotoSansSymbols2-Regular.ttf"
)

var fontFiles = map[FontRole]string{
	FontRegular: RegularFontFile,
	FontBold:    BoldFontFile,
	FontSymbol:  SymbolFontFile,
}

// Provider supplies the static assets a card is drawn from
type Provider interface {
	// Template returns the card frame for element, errors.NotFound when absent
	Template(element cards.Element) (*gg.ImageBuf, error)

	// Icon returns the element badge, errors.NotFound when absent
	Icon(element cards.Element) (*gg.ImageBuf, error)

	// Font returns a face for role; a missing font file falls back to Go fonts
	Font(role FontRole, size float64) text.Face
}

// Config configures the filesystem provider
type Config struct {
	// Dir is the assets root (required)
	Dir string
}

// Validate ensures the assets directory exists
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Dir == "" {
		vb.RequiredField("Dir")
	} else if info, err := os.Stat(c.Dir); err != nil || !info.IsDir() {
		vb.InvalidField("Dir", fmt.Sprintf("%s is not a directory", c.Dir))
	}
	return vb.Build()
}

type fsProvider struct {
	dir string

	mu     sync.Mutex
	images map[string]*gg.ImageBuf
	fonts  map[FontRole]*text.FontSource
}

// NewFSProvider creates a provider reading from cfg.Dir. Loaded assets
// are cached for the life of the provider.
func NewFSProvider(cfg *Config) (Provider, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &fsProvider{
		dir:    cfg.Dir,
		images: make(map[string]*gg.ImageBuf),
		fonts:  make(map[FontRole]*text.FontSource),
	}, nil
}

var _ Provider = (*fsProvider)(nil)

// TemplateFile is the template file name for element, e.g. "fire_card.png"
func TemplateFile(element cards.Element) string {
	return element.Slug() + "_card.png"
}

// IconFile is the icon file name for element, e.g. "fire_element.png"
func IconFile(element cards.Element) string {
	return element.Slug() + "_element.png"
}

func (p *fsProvider) Template(element cards.Element) (*gg.ImageBuf, error) {
	return p.image(filepath.Join(p.dir, TemplatesDir, TemplateFile(element)), "template")
}

func (p *fsProvider) Icon(element cards.Element) (*gg.ImageBuf, error) {
	return p.image(filepath.Join(p.dir, ElementsDir, IconFile(element)), "icon")
}

func (p *fsProvider) image(path, kind string) (*gg.ImageBuf, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if img, ok := p.images[path]; ok {
		return img, nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("%s %s not found", kind, filepath.Base(path)).
				WithMeta("path", path)
		}
		return nil, errors.Wrapf(err, "failed to stat %s", path)
	}

	img, err := gg.LoadImage(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s %s", kind, filepath.Base(path))
	}

	p.images[path] = img
	return img, nil
}

func (p *fsProvider) Font(role FontRole, size float64) text.Face {
	return p.source(role).Face(size)
}

func (p *fsProvider) source(role FontRole) *text.FontSource {
	p.mu.Lock()
	defer p.mu.Unlock()

	if src, ok := p.fonts[role]; ok {
		return src
	}

	file, ok := fontFiles[role]
	if !ok {
		file = RegularFontFile
	}

	path := filepath.Join(p.dir, FontsDir, file)
	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		slog.Warn("Font unavailable, using fallback", "path", path, "error", err)
		src = FallbackFont(role)
	}

	p.fonts[role] = src
	return src
}

var (
	fallbackOnce  sync.Once
	fallbackFonts map[FontRole]*text.FontSource
)

// FallbackFont returns the embedded Go font used when an asset font is missing
func FallbackFont(role FontRole) *text.FontSource {
	fallbackOnce.Do(func() {
		regular, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			panic(fmt.Sprintf("parse goregular: %v", err))
		}
		bold, err := text.NewFontSource(gobold.TTF)
		if err != nil {
			panic(fmt.Sprintf("parse gobold: %v", err))
		}
		fallbackFonts = map[FontRole]*text.FontSource{
			FontRegular: regular,
			FontBold:    bold,
			FontSymbol:  regular,
		}
	})

	if src, ok := fallbackFonts[role]; ok {
		return src
	}
	return fallbackFonts[FontRegular]
}
