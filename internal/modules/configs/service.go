// Package configs manages the runtime settings document stored in the
// options table. Reads are cached in memory; writes go through a JSON merge
// so partial patches never wipe unrelated sections.
package configs

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/flightfolio/core/internal/config"
	"github.com/flightfolio/core/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const optionKey = "configs"

type Service struct {
	db *gorm.DB

	mu     sync.RWMutex
	cached *config.FullConfig
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Get returns the current settings document, loading it on first use.
func (s *Service) Get() config.FullConfig {
	s.mu.RLock()
	if s.cached != nil {
		defer s.mu.RUnlock()
		return *s.cached
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached == nil {
		s.cached = s.load()
	}
	return *s.cached
}

// MapOptions is a convenience accessor for the renderer settings.
func (s *Service) MapOptions() config.MapOptions {
	return s.Get().MapOptions.Normalized()
}

// Patch merges a partial JSON document into the stored settings.
func (s *Service) Patch(patch json.RawMessage) (*config.FullConfig, error) {
	if len(patch) == 0 {
		return nil, errors.New("empty patch")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.cached
	if current == nil {
		current = s.load()
	}

	merged := *current
	if err := json.Unmarshal(patch, &merged); err != nil {
		return nil, err
	}

	data, err := json.Marshal(&merged)
	if err != nil {
		return nil, err
	}

	option := models.OptionModel{Name: optionKey, Value: string(data)}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&option).Error
	if err != nil {
		return nil, err
	}

	s.cached = &merged
	return &merged, nil
}

// Invalidate drops the cache so the next Get re-reads the database.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

func (s *Service) load() *config.FullConfig {
	cfg := config.DefaultFullConfig()

	var option models.OptionModel
	err := s.db.First(&option, "name = ?", optionKey).Error
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal([]byte(option.Value), cfg); err != nil {
		return config.DefaultFullConfig()
	}
	return cfg
}
