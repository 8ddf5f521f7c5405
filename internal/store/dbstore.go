package store

import (
	"encoding/json"
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/samplecrate/sample-browser/internal/model"
)

// sampleRow is the database projection of a catalog record. Position keeps
// the catalog's insertion order, which the browser treats as significant.
type sampleRow struct {
	ID          int `gorm:"primaryKey"`
	Position    int `gorm:"index"`
	Title       string
	Name        string
	Attribution string
	Author      string
	Duration    float64
	Description string
	UsageNotes  string
	License     string
	Tags        string // JSON-encoded
	Enabled     bool
}

func (sampleRow) TableName() string { return "samples" }

// DBStore keeps the catalog in a local sqlite database.
type DBStore struct {
	db      *gorm.DB
	samples []model.Sample
}

// NewDBStore opens (creating if needed) the sqlite catalog at path and
// loads it.
func NewDBStore(path string) (*DBStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	if err := db.AutoMigrate(&sampleRow{}); err != nil {
		return nil, fmt.Errorf("migrate catalog db: %w", err)
	}

	var rows []sampleRow
	if err := db.Order("position").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	samples := make([]model.Sample, 0, len(rows))
	for i := range rows {
		samples = append(samples, rows[i].toSample())
	}

	logrus.Infof("loaded %d samples from %s", len(samples), path)
	return &DBStore{db: db, samples: samples}, nil
}

// Catalog returns the current catalog.
func (s *DBStore) Catalog() []model.Sample {
	out := make([]model.Sample, len(s.samples))
	copy(out, s.samples)
	return out
}

// Replace swaps the in-memory catalog. Save persists it.
func (s *DBStore) Replace(samples []model.Sample) {
	s.samples = samples
}

// Save rewrites the catalog table as one snapshot.
func (s *DBStore) Save() error {
	rows := make([]sampleRow, 0, len(s.samples))
	for i := range s.samples {
		rows = append(rows, toRow(&s.samples[i], i))
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&sampleRow{}).Error; err != nil {
			return fmt.Errorf("clear catalog: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("write catalog: %w", err)
		}
		return nil
	})
}

func toRow(s *model.Sample, position int) sampleRow {
	tags, _ := json.Marshal(s.Tags)
	return sampleRow{
		ID:          s.ID,
		Position:    position,
		Title:       s.Title,
		Name:        s.Name,
		Attribution: s.Attribution,
		Author:      s.Author,
		Duration:    s.Duration,
		Description: s.Description,
		UsageNotes:  s.UsageNotes,
		License:     s.License,
		Tags:        string(tags),
		Enabled:     s.Enabled,
	}
}

func (r *sampleRow) toSample() model.Sample {
	var tags []string
	if r.Tags != "" {
		if err := json.Unmarshal([]byte(r.Tags), &tags); err != nil {
			logrus.Warnf("sample %d has malformed tags: %v", r.ID, err)
		}
	}
	return model.Sample{
		ID:          r.ID,
		Title:       r.Title,
		Name:        r.Name,
		Attribution: r.Attribution,
		Author:      r.Author,
		Duration:    r.Duration,
		Description: r.Description,
		UsageNotes:  r.UsageNotes,
		License:     r.License,
		Tags:        tags,
		Enabled:     r.Enabled,
	}
}
