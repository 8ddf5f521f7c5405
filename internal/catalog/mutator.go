package catalog

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/samplecrate/sample-browser/internal/model"
)

// Mutator applies catalog mutations. Every mutation is applied in memory,
// persisted through the store, reported through the notifier, and followed
// by the registered re-render callback. Persistence failures surface as a
// generic notification; the optimistic in-memory change is kept.
type Mutator struct {
	store    Store
	notifier Notifier
	onChange func()
}

// NewMutator creates a mutator bound to a store and notification sink.
func NewMutator(store Store, notifier Notifier) *Mutator {
	return &Mutator{store: store, notifier: notifier}
}

// SetChangeCallback registers the full re-render trigger invoked after
// every mutation.
func (m *Mutator) SetChangeCallback(fn func()) {
	m.onChange = fn
}

// SetNotifier swaps the notification sink. The panel registers itself here
// once it exists; mutations before that are silent but still persisted.
func (m *Mutator) SetNotifier(n Notifier) {
	m.notifier = n
}

// Add appends a new record with enabled=true. A record whose id already
// exists in the catalog is rejected with a notification, not an error.
func (m *Mutator) Add(sample model.Sample) {
	samples := m.store.Catalog()
	for i := range samples {
		if samples[i].ID == sample.ID {
			logrus.Warnf("rejected duplicate sample id %d", sample.ID)
			m.notify(fmt.Sprintf("%q is already in the catalog", sample.DisplayTitle()))
			return
		}
	}

	sample.Enabled = true
	m.store.Replace(append(samples, sample))
	m.persist(fmt.Sprintf("Added %q to the catalog", sample.DisplayTitle()))
}

// ToggleEnabled flips the enabled flag of the matching record. Unknown ids
// are a no-op.
func (m *Mutator) ToggleEnabled(id int) {
	samples := m.store.Catalog()
	for i := range samples {
		if samples[i].ID != id {
			continue
		}
		samples[i].Enabled = !samples[i].Enabled

		state := "disabled"
		if samples[i].Enabled {
			state = "enabled"
		}
		m.store.Replace(samples)
		m.persist(fmt.Sprintf("%q %s", samples[i].DisplayTitle(), state))
		return
	}
}

// Remove deletes the matching record from the catalog. Unknown ids are a
// no-op.
func (m *Mutator) Remove(id int) {
	samples := m.store.Catalog()
	for i := range samples {
		if samples[i].ID != id {
			continue
		}
		title := samples[i].DisplayTitle()
		m.store.Replace(append(samples[:i], samples[i+1:]...))
		m.persist(fmt.Sprintf("Removed %q from the catalog", title))
		return
	}
}

func (m *Mutator) persist(message string) {
	if err := m.store.Save(); err != nil {
		logrus.Errorf("failed to save catalog: %v", err)
		m.notify("Failed to save the catalog")
	} else {
		m.notify(message)
	}
	if m.onChange != nil {
		m.onChange()
	}
}

func (m *Mutator) notify(message string) {
	if m.notifier != nil {
		m.notifier.Notify(message)
	}
}
