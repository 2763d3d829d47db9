package airports

import (
	"errors"
	"strings"

	"github.com/flightfolio/core/internal/models"
	"github.com/flightfolio/core/internal/pkg/pagination"
	"github.com/flightfolio/core/internal/pkg/response"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errInvalidCode = errors.New("airport code must be 3 letters")

type Service struct {
	db       *gorm.DB
	resolver *Resolver
}

func NewService(db *gorm.DB, resolver *Resolver) *Service {
	return &Service{db: db, resolver: resolver}
}

func (s *Service) Resolver() *Resolver { return s.resolver }

func (s *Service) List(q pagination.Query, search string) ([]models.AirportModel, response.Pagination, error) {
	tx := s.db.Model(&models.AirportModel{}).Order("code ASC")
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + search + "%"
		tx = tx.Where("code LIKE ? OR name LIKE ? OR city LIKE ?", like, like, like)
	}
	var items []models.AirportModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

func (s *Service) GetByCode(code string) (*models.AirportModel, error) {
	code = normalizeCode(code)
	if code == "" {
		return nil, errInvalidCode
	}
	var a models.AirportModel
	if err := s.db.First(&a, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// Upsert bulk-inserts airports, updating existing rows on code conflict.
// Codes are normalized to uppercase; re-import is the only mutation path.
func (s *Service) Upsert(rows []ImportAirportDTO) (int, error) {
	airports := make([]models.AirportModel, 0, len(rows))
	for _, dto := range rows {
		code := normalizeCode(dto.Code)
		if code == "" {
			continue
		}
		airports = append(airports, models.AirportModel{
			Code:        code,
			Name:        strings.TrimSpace(dto.Name),
			City:        strings.TrimSpace(dto.City),
			CountryCode: strings.ToUpper(strings.TrimSpace(dto.CountryCode)),
			Latitude:    dto.Latitude,
			Longitude:   dto.Longitude,
		})
	}
	if len(airports) == 0 {
		return 0, nil
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "city", "country_code", "latitude", "longitude"}),
	}).Create(&airports).Error
	if err != nil {
		return 0, err
	}

	s.resolver.Invalidate()
	return len(airports), nil
}

func normalizeCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return ""
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return ""
		}
	}
	return code
}
