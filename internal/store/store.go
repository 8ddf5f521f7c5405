package store

// Package store provides the persisted catalog backends. The browser only
// sees the catalog.Store interface; the concrete backend (host preferences
// or a local sqlite database) is chosen from settings.

import (
	"fmt"

	"fyne.io/fyne/v2"

	"github.com/samplecrate/sample-browser/internal/catalog"
)

// Provider names for the configured catalog backend
const (
	ProviderPreferences = "preferences"
	ProviderSQLite      = "sqlite"
)

// New opens the configured catalog backend.
func New(provider string, prefs fyne.Preferences, dbPath string) (catalog.Store, error) {
	switch provider {
	case ProviderSQLite:
		return NewDBStore(dbPath)
	case ProviderPreferences, "":
		return NewPrefStore(prefs)
	default:
		return nil, fmt.Errorf("unknown catalog store provider %q", provider)
	}
}
