package config

import (
	"fyne.io/fyne/v2"

	"github.com/samplecrate/sample-browser/internal/store"
)

// Settings keys for Fyne preferences
const (
	KeyAPIToken       = "api_token"
	KeyStoreProvider  = "catalog_store_provider"
	KeyCatalogDBPath  = "catalog_db_path"
	KeyShowDisabled   = "show_disabled_samples"
	KeySearchPageSize = "search_page_size"
)

// Default values
const (
	DefaultStoreProvider  = store.ProviderPreferences
	DefaultCatalogDBPath  = "sample-catalog.db"
	DefaultShowDisabled   = false
	DefaultSearchPageSize = 20
	MaxSearchPageSize     = 150
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIToken returns the configured remote catalog access credential.
// Empty means previews and search fail fast with a configuration error.
func (s *Settings) GetAPIToken() string {
	return s.app.Preferences().String(KeyAPIToken)
}

// SetAPIToken stores the access credential
func (s *Settings) SetAPIToken(token string) {
	s.app.Preferences().SetString(KeyAPIToken, token)
}

// GetStoreProvider returns the configured catalog backend
func (s *Settings) GetStoreProvider() string {
	provider := s.app.Preferences().String(KeyStoreProvider)
	if provider == "" {
		s.SetStoreProvider(DefaultStoreProvider)
		return DefaultStoreProvider
	}
	return provider
}

// SetStoreProvider sets the catalog backend
func (s *Settings) SetStoreProvider(provider string) {
	s.app.Preferences().SetString(KeyStoreProvider, provider)
}

// GetStoreProviderOptions returns the available catalog backends
func (s *Settings) GetStoreProviderOptions() []string {
	return []string{store.ProviderPreferences, store.ProviderSQLite}
}

// GetCatalogDBPath returns the sqlite catalog location
func (s *Settings) GetCatalogDBPath() string {
	path := s.app.Preferences().String(KeyCatalogDBPath)
	if path == "" {
		s.SetCatalogDBPath(DefaultCatalogDBPath)
		return DefaultCatalogDBPath
	}
	return path
}

// SetCatalogDBPath sets the sqlite catalog location
func (s *Settings) SetCatalogDBPath(path string) {
	if path == "" {
		path = DefaultCatalogDBPath
	}
	s.app.Preferences().SetString(KeyCatalogDBPath, path)
}

// GetShowDisabled returns whether disabled samples are listed by default
func (s *Settings) GetShowDisabled() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowDisabled, DefaultShowDisabled)
}

// SetShowDisabled sets the default for the show-disabled filter
func (s *Settings) SetShowDisabled(show bool) {
	s.app.Preferences().SetBool(KeyShowDisabled, show)
}

// GetSearchPageSize returns how many results the acquisition search requests
func (s *Settings) GetSearchPageSize() int {
	size := s.app.Preferences().Int(KeySearchPageSize)
	if size <= 0 {
		s.SetSearchPageSize(DefaultSearchPageSize)
		return DefaultSearchPageSize
	}
	return size
}

// SetSearchPageSize sets the acquisition search page size
func (s *Settings) SetSearchPageSize(size int) {
	if size < 1 {
		size = 1
	}
	if size > MaxSearchPageSize {
		size = MaxSearchPageSize
	}
	s.app.Preferences().SetInt(KeySearchPageSize, size)
}
