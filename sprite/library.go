package sprite

import (
	"errors"
	"fmt"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lixenwraith/enemy-drift/component"
)

// Source identifies where a sheet came from
type Source uint8

const (
	SourceProcedural Source = iota
	SourceFile
)

func (s Source) String() string {
	if s == SourceFile {
		return "file"
	}
	return "procedural"
}

// LoadResult reports how one kind's sheet was resolved
type LoadResult struct {
	Kind   component.MotionKind
	Source Source
	Path   string
}

// Library holds one sheet per motion kind
type Library struct {
	sheets map[component.MotionKind]*Sheet
}

// NewLibrary builds a library from prepared sheets
func NewLibrary(sheets map[component.MotionKind]*Sheet) *Library {
	return &Library{sheets: sheets}
}

// ProceduralLibrary generates every sheet without touching the filesystem
func ProceduralLibrary(c *Catalog) *Library {
	sheets := make(map[component.MotionKind]*Sheet, len(component.MotionKinds))
	for _, def := range c.Definitions() {
		sheets[def.Kind] = Generate(def)
	}
	return NewLibrary(sheets)
}

// LoadLibrary resolves each definition's asset under dir as PNG, generating a
// procedural sheet when the file does not exist or dir is empty
func LoadLibrary(c *Catalog, dir string) (*Library, []LoadResult, error) {
	sheets := make(map[component.MotionKind]*Sheet, len(component.MotionKinds))
	results := make([]LoadResult, 0, len(component.MotionKinds))

	for _, def := range c.Definitions() {
		if dir == "" || def.Asset == "" {
			sheets[def.Kind] = Generate(def)
			results = append(results, LoadResult{Kind: def.Kind, Source: SourceProcedural})
			continue
		}

		path := filepath.Join(dir, def.Asset)
		sheet, err := loadSheetFile(def, path)
		if errors.Is(err, fs.ErrNotExist) {
			sheets[def.Kind] = Generate(def)
			results = append(results, LoadResult{Kind: def.Kind, Source: SourceProcedural, Path: path})
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		sheets[def.Kind] = sheet
		results = append(results, LoadResult{Kind: def.Kind, Source: SourceFile, Path: path})
	}

	return NewLibrary(sheets), results, nil
}

func loadSheetFile(def *Definition, path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	sheet, err := NewSheet(def.Name, img, def.SpriteWidth, def.SpriteHeight)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if sheet.Frames < def.Frames() {
		return nil, fmt.Errorf("load %s: %w (%d < %d)", path, ErrSheetTooSmall, sheet.Frames, def.Frames())
	}
	return sheet, nil
}

// Get returns the sheet for a kind, nil if absent
func (l *Library) Get(kind component.MotionKind) *Sheet {
	return l.sheets[kind]
}
