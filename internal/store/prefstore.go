package store

import (
	"fyne.io/fyne/v2"
	"github.com/sirupsen/logrus"

	"github.com/samplecrate/sample-browser/internal/model"
)

// KeyCatalog is the preferences key the catalog snapshot is stored under.
const KeyCatalog = "sample_catalog"

// PrefStore keeps the catalog as a JSON snapshot inside the host's
// persisted preferences. Load-time normalization (enabled defaulting)
// happens in model.DecodeCatalog.
type PrefStore struct {
	prefs   fyne.Preferences
	samples []model.Sample
}

// NewPrefStore loads the catalog from preferences.
func NewPrefStore(prefs fyne.Preferences) (*PrefStore, error) {
	samples, err := model.DecodeCatalog([]byte(prefs.String(KeyCatalog)))
	if err != nil {
		return nil, err
	}

	logrus.Infof("loaded %d samples from preferences", len(samples))
	return &PrefStore{prefs: prefs, samples: samples}, nil
}

// Catalog returns the current catalog.
func (s *PrefStore) Catalog() []model.Sample {
	out := make([]model.Sample, len(s.samples))
	copy(out, s.samples)
	return out
}

// Replace swaps the in-memory catalog. Save persists it.
func (s *PrefStore) Replace(samples []model.Sample) {
	s.samples = samples
}

// Save writes the snapshot back to preferences.
func (s *PrefStore) Save() error {
	data, err := model.EncodeCatalog(s.samples)
	if err != nil {
		return err
	}
	s.prefs.SetString(KeyCatalog, string(data))
	return nil
}
