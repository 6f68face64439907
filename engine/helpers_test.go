package engine

import (
	"sync"
	"testing"

	"github.com/lixenwraith/enemy-drift/core"
	"github.com/lixenwraith/enemy-drift/sprite"
	"github.com/lixenwraith/enemy-drift/vmath"
)

var (
	fixtureOnce    sync.Once
	fixtureCatalog *sprite.Catalog
	fixtureLibrary *sprite.Library
	fixtureErr     error
)

// testCanvas matches the default 500x600 canvas
var testCanvas = core.NewRect(0, 0, 500, 600)

// loadFixtures parses the built-in catalog and generates sheets once per test binary
func loadFixtures(t *testing.T) (*sprite.Catalog, *sprite.Library) {
	t.Helper()
	fixtureOnce.Do(func() {
		fixtureCatalog, fixtureErr = sprite.DefaultCatalog()
		if fixtureErr == nil {
			fixtureLibrary = sprite.ProceduralLibrary(fixtureCatalog)
		}
	})
	if fixtureErr != nil {
		t.Fatalf("Failed to load fixtures: %v", fixtureErr)
	}
	return fixtureCatalog, fixtureLibrary
}

func newTestWorld(t *testing.T, pop Population, seed uint64) *World {
	t.Helper()
	catalog, library := loadFixtures(t)
	w, err := NewWorld(testCanvas, catalog, library, pop, vmath.NewFastRand(seed))
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	return w
}
