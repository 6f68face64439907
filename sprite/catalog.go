package sprite

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/enemy-drift/asset"
	"github.com/lixenwraith/enemy-drift/component"
)

var (
	ErrUnknownKind    = errors.New("unknown motion kind")
	ErrDuplicateKind  = errors.New("duplicate motion kind")
	ErrInvalidSize    = errors.New("sprite size must be positive")
	ErrInvalidFrames  = errors.New("last_frame must be non-negative")
	ErrMissingKind    = errors.New("catalog is missing a motion kind")
	ErrInvalidColor   = errors.New("color must be #rrggbb")
	ErrSheetTooSmall  = errors.New("sheet holds fewer frames than last_frame+1")
	ErrSheetMisshaped = errors.New("sheet height is smaller than sprite height")
)

// Definition holds static data for one enemy variant loaded from YAML
type Definition struct {
	Name         string  `yaml:"name"`
	KindName     string  `yaml:"kind"`
	SpriteWidth  int     `yaml:"sprite_width"`
	SpriteHeight int     `yaml:"sprite_height"`
	LastFrame    int     `yaml:"last_frame"`
	MaxSpeed     float64 `yaml:"max_speed"`
	Asset        string  `yaml:"asset"`
	Color        string  `yaml:"color"` // Tint for procedural sheets

	Kind component.MotionKind `yaml:"-"`
	Tint color.RGBA           `yaml:"-"`
}

// Frames returns the number of frames a sheet for this definition must hold
func (d *Definition) Frames() int {
	return d.LastFrame + 1
}

type catalogFile struct {
	Enemies []Definition `yaml:"enemies"`
}

// Catalog holds one definition per motion kind
type Catalog struct {
	defs map[component.MotionKind]*Definition
}

// DefaultCatalog parses the embedded catalog
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog([]byte(asset.DefaultCatalogYAML))
}

// LoadCatalog loads a catalog from a YAML file
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return c, nil
}

// ParseCatalog decodes and validates catalog YAML; every spawnable kind must be present once
func ParseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	c := &Catalog{defs: make(map[component.MotionKind]*Definition, len(f.Enemies))}
	for i := range f.Enemies {
		def := &f.Enemies[i]
		if err := def.resolve(); err != nil {
			return nil, fmt.Errorf("enemy %q: %w", def.Name, err)
		}
		if _, ok := c.defs[def.Kind]; ok {
			return nil, fmt.Errorf("enemy %q: %w: %s", def.Name, ErrDuplicateKind, def.Kind)
		}
		c.defs[def.Kind] = def
	}

	for _, kind := range component.MotionKinds {
		if _, ok := c.defs[kind]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingKind, kind)
		}
	}
	return c, nil
}

// Get returns the definition for a kind
func (c *Catalog) Get(kind component.MotionKind) (*Definition, bool) {
	d, ok := c.defs[kind]
	return d, ok
}

// Definitions returns definitions in registry construction order
func (c *Catalog) Definitions() []*Definition {
	out := make([]*Definition, 0, len(component.MotionKinds))
	for _, kind := range component.MotionKinds {
		if d, ok := c.defs[kind]; ok {
			out = append(out, d)
		}
	}
	return out
}

func (d *Definition) resolve() error {
	kind, ok := component.ParseMotionKind(d.KindName)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, d.KindName)
	}
	d.Kind = kind

	if d.SpriteWidth <= 0 || d.SpriteHeight <= 0 {
		return ErrInvalidSize
	}
	if d.LastFrame < 0 {
		return ErrInvalidFrames
	}

	tint, err := parseHexColor(d.Color)
	if err != nil {
		return err
	}
	d.Tint = tint
	return nil
}

// parseHexColor accepts "#rrggbb"; empty yields mid gray
func parseHexColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}, nil
	}
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
