package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Display fallback and truncation rules
const (
	UntitledFallback = "Untitled"
	UnknownFallback  = "Unknown"

	DescriptionMaxRunes = 50
	MaxVisibleTags      = 3
)

// SamplePageURLFormat is the canonical remote page for a catalog entry.
const SamplePageURLFormat = "https://freesound.org/s/%d/"

// Sample is one remotely sourced audio asset added to the local catalog.
// All string fields are optional; an empty string means absent and the
// Display* helpers apply the documented fallback chain. Enabled defaults
// to true when absent from stored data (see UnmarshalJSON).
type Sample struct {
	ID          int      `json:"id"`
	Title       string   `json:"title,omitempty"`
	Name        string   `json:"name,omitempty"`
	Attribution string   `json:"attribution,omitempty"`
	Author      string   `json:"author,omitempty"`
	Duration    float64  `json:"duration,omitempty"`
	Description string   `json:"description,omitempty"`
	UsageNotes  string   `json:"usageNotes,omitempty"`
	License     string   `json:"license,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Enabled     bool     `json:"enabled"`
}

// UnmarshalJSON decodes a sample treating a missing enabled flag as true.
// This keeps the default in one place instead of re-checking at render time.
func (s *Sample) UnmarshalJSON(data []byte) error {
	type alias Sample
	aux := alias{Enabled: true}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*s = Sample(aux)
	return nil
}

// DisplayTitle returns title, name, or "Untitled" in order of preference.
func (s *Sample) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	if s.Name != "" {
		return s.Name
	}
	return UntitledFallback
}

// DisplayAttribution returns the credit string, falling back to the author
// field and then "Unknown".
func (s *Sample) DisplayAttribution() string {
	if s.Attribution != "" {
		return s.Attribution
	}
	if s.Author != "" {
		return s.Author
	}
	return UnknownFallback
}

// DisplayLicense returns the license identifier or "Unknown".
func (s *Sample) DisplayLicense() string {
	if s.License != "" {
		return s.License
	}
	return UnknownFallback
}

// DisplayDescription returns description or usage notes, truncated to
// DescriptionMaxRunes with an ellipsis marker when longer.
func (s *Sample) DisplayDescription() string {
	text := s.Description
	if text == "" {
		text = s.UsageNotes
	}
	runes := []rune(text)
	if len(runes) > DescriptionMaxRunes {
		return string(runes[:DescriptionMaxRunes]) + "..."
	}
	return text
}

// DisplayDuration renders the duration rounded to the nearest whole second.
func (s *Sample) DisplayDuration() string {
	return fmt.Sprintf("%ds", int(math.Round(s.Duration)))
}

// DisplayTags shows the first MaxVisibleTags tags plus an overflow count.
func (s *Sample) DisplayTags() string {
	if len(s.Tags) <= MaxVisibleTags {
		return strings.Join(s.Tags, ", ")
	}
	visible := strings.Join(s.Tags[:MaxVisibleTags], ", ")
	return fmt.Sprintf("%s +%d", visible, len(s.Tags)-MaxVisibleTags)
}

// PageURL returns the remote asset's canonical page.
func (s *Sample) PageURL() string {
	return fmt.Sprintf(SamplePageURLFormat, s.ID)
}

// DecodeCatalog parses a stored catalog snapshot. Defaults (enabled=true)
// are applied here, once at load time, not per field at render time.
func DecodeCatalog(data []byte) ([]Sample, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var samples []Sample
	if err := json.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return samples, nil
}

// EncodeCatalog serializes the catalog for the persisted store. The enabled
// flag is always written explicitly so round-trips are unambiguous.
func EncodeCatalog(samples []Sample) ([]byte, error) {
	data, err := json.Marshal(samples)
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return data, nil
}
