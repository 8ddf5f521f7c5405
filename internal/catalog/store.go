package catalog

import "github.com/samplecrate/sample-browser/internal/model"

// Store is the persisted catalog owner. The browser holds no independent
// copy: it asks for the current catalog at the start of every render and
// hands modified catalogs back through Replace followed by Save.
type Store interface {
	// Catalog returns the current ordered catalog.
	Catalog() []model.Sample

	// Replace swaps the in-memory catalog. Callers must Save afterwards;
	// Replace alone does not persist.
	Replace(samples []model.Sample)

	// Save persists the current catalog.
	Save() error
}

// Notifier delivers short-lived user-visible messages for mutation outcomes
// and search-modal preconditions.
type Notifier interface {
	Notify(message string)
}
