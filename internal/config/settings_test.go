package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/samplecrate/sample-browser/internal/store"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestAPIToken(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if token := settings.GetAPIToken(); token != "" {
		t.Errorf("Expected empty default token, got %q", token)
	}

	settings.SetAPIToken("secret")
	if token := settings.GetAPIToken(); token != "secret" {
		t.Errorf("Expected token to round-trip, got %q", token)
	}
}

func TestStoreProvider(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if provider := settings.GetStoreProvider(); provider != store.ProviderPreferences {
		t.Errorf("Expected preferences default, got %q", provider)
	}

	settings.SetStoreProvider(store.ProviderSQLite)
	if provider := settings.GetStoreProvider(); provider != store.ProviderSQLite {
		t.Errorf("Expected sqlite, got %q", provider)
	}

	options := settings.GetStoreProviderOptions()
	if len(options) != 2 {
		t.Errorf("Expected 2 provider options, got %v", options)
	}
}

func TestCatalogDBPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if path := settings.GetCatalogDBPath(); path != DefaultCatalogDBPath {
		t.Errorf("Expected default path, got %q", path)
	}

	settings.SetCatalogDBPath("/data/catalog.db")
	if path := settings.GetCatalogDBPath(); path != "/data/catalog.db" {
		t.Errorf("Expected custom path, got %q", path)
	}

	settings.SetCatalogDBPath("")
	if path := settings.GetCatalogDBPath(); path != DefaultCatalogDBPath {
		t.Errorf("Empty path should reset to default, got %q", path)
	}
}

func TestShowDisabled(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetShowDisabled() != DefaultShowDisabled {
		t.Error("Expected default show-disabled value")
	}

	settings.SetShowDisabled(true)
	if !settings.GetShowDisabled() {
		t.Error("Expected show-disabled to be true after set")
	}
}

func TestSearchPageSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if size := settings.GetSearchPageSize(); size != DefaultSearchPageSize {
		t.Errorf("Expected default page size %d, got %d", DefaultSearchPageSize, size)
	}

	settings.SetSearchPageSize(50)
	if size := settings.GetSearchPageSize(); size != 50 {
		t.Errorf("Expected 50, got %d", size)
	}

	// Boundary values are clamped
	settings.SetSearchPageSize(0)
	if size := settings.GetSearchPageSize(); size != 1 {
		t.Errorf("Expected clamp to 1, got %d", size)
	}
	settings.SetSearchPageSize(1000)
	if size := settings.GetSearchPageSize(); size != MaxSearchPageSize {
		t.Errorf("Expected clamp to %d, got %d", MaxSearchPageSize, size)
	}
}
