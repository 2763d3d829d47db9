package airlines

import (
	"errors"
	"strings"

	"github.com/flightfolio/core/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errInvalidAirlineCode = errors.New("airline code must be 2 or 3 characters")

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) ListAll() ([]models.AirlineModel, error) {
	var items []models.AirlineModel
	err := s.db.Order("code ASC").Find(&items).Error
	return items, err
}

func (s *Service) GetByCode(code string) (*models.AirlineModel, error) {
	code = normalizeAirlineCode(code)
	if code == "" {
		return nil, errInvalidAirlineCode
	}
	var a models.AirlineModel
	if err := s.db.First(&a, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// Upsert curates an airline record. Setting a brand color clears the
// auto-generated flag; the color is then considered hand-picked.
func (s *Service) Upsert(code string, dto *UpsertAirlineDTO) (*models.AirlineModel, error) {
	code = normalizeAirlineCode(code)
	if code == "" {
		return nil, errInvalidAirlineCode
	}

	existing, err := s.GetByCode(code)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		a := models.AirlineModel{
			Code:                code,
			BrandColorPrimary:   AutoColor(code),
			BrandColorSecondary: AutoColorSecondary(code),
			ColorAutoGenerated:  true,
		}
		if dto.Name != nil {
			a.Name = *dto.Name
		}
		if dto.BrandColorPrimary != nil {
			a.BrandColorPrimary = *dto.BrandColorPrimary
			a.ColorAutoGenerated = false
		}
		if dto.BrandColorSecondary != nil {
			a.BrandColorSecondary = *dto.BrandColorSecondary
		}
		return &a, s.db.Create(&a).Error
	}

	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.BrandColorPrimary != nil {
		updates["brand_color_primary"] = *dto.BrandColorPrimary
		updates["color_auto_generated"] = false
	}
	if dto.BrandColorSecondary != nil {
		updates["brand_color_secondary"] = *dto.BrandColorSecondary
	}
	if len(updates) == 0 {
		return existing, nil
	}
	return existing, s.db.Model(existing).Updates(updates).Error
}

// Import bulk-inserts airlines with auto-generated colors, never overwriting
// curated records: on conflict only the name is refreshed.
func (s *Service) Import(rows []ImportAirlineDTO) (int, error) {
	airlines := make([]models.AirlineModel, 0, len(rows))
	for _, dto := range rows {
		code := normalizeAirlineCode(dto.Code)
		if code == "" {
			continue
		}
		airlines = append(airlines, models.AirlineModel{
			Code:                code,
			Name:                strings.TrimSpace(dto.Name),
			BrandColorPrimary:   AutoColor(code),
			BrandColorSecondary: AutoColorSecondary(code),
			ColorAutoGenerated:  true,
		})
	}
	if len(airlines) == 0 {
		return 0, nil
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(&airlines).Error
	if err != nil {
		return 0, err
	}
	return len(airlines), nil
}

// EnsureExists creates a minimal airline row for a code seen on a flight,
// so the map always has something to color routes with.
func (s *Service) EnsureExists(code string) error {
	code = normalizeAirlineCode(code)
	if code == "" {
		return errInvalidAirlineCode
	}
	a := models.AirlineModel{
		Code:                code,
		Name:                code,
		BrandColorPrimary:   AutoColor(code),
		BrandColorSecondary: AutoColorSecondary(code),
		ColorAutoGenerated:  true,
	}
	return s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&a).Error
}

func normalizeAirlineCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) < 2 || len(code) > 3 {
		return ""
	}
	return code
}
