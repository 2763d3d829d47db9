package flights

import (
	"errors"
	"strings"
	"time"

	"github.com/flightfolio/core/internal/models"
	"github.com/flightfolio/core/internal/modules/airlines"
	"github.com/flightfolio/core/internal/modules/airports"
	"github.com/flightfolio/core/internal/modules/geo"
	"github.com/flightfolio/core/internal/modules/metrics"
	"github.com/flightfolio/core/internal/pkg/pagination"
	"github.com/flightfolio/core/internal/pkg/response"
	"gorm.io/gorm"
)

var (
	errFlightNotFound = errors.New("flight not found")
	errInvalidDate    = errors.New("flight_date must be formatted as YYYY-MM-DD")
	errInvalidCode    = errors.New("airport codes must be 3 letters")
)

// Events receives flight lifecycle notifications. Nil-safe: the service
// works without a publisher wired in.
type Events interface {
	FlightCreated(f *models.FlightModel)
	FlightUpdated(f *models.FlightModel)
	FlightDeleted(id string)
}

type Service struct {
	db       *gorm.DB
	resolver *airports.Resolver
	airlines *airlines.Service
	events   Events
}

func NewService(db *gorm.DB, resolver *airports.Resolver, airlineSvc *airlines.Service, events Events) *Service {
	return &Service{db: db, resolver: resolver, airlines: airlineSvc, events: events}
}

// ListFiltered loads the user's flights, applies the filter predicate, and
// paginates the result in memory. Filtering happens after preload so the
// free-text dimension can see airport and airline names.
func (s *Service) ListFiltered(userID string, fs FilterState, q pagination.Query) ([]FlightView, response.Pagination, error) {
	flights, err := s.allForUser(userID)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	filtered := flights[:0:0]
	for i := range flights {
		if fs.Matches(&flights[i]) {
			filtered = append(filtered, flights[i])
		}
	}

	total := len(filtered)
	start := (q.Page - 1) * q.Size
	if start > total {
		start = total
	}
	end := start + q.Size
	if end > total {
		end = total
	}

	views := make([]FlightView, 0, end-start)
	for _, f := range filtered[start:end] {
		views = append(views, toView(&f))
	}
	return views, pagination.Meta(q, int64(total)), nil
}

// AllFiltered returns every matching flight without pagination. The map
// engine and the stats aggregator consume this.
func (s *Service) AllFiltered(userID string, fs FilterState) ([]models.FlightModel, error) {
	flights, err := s.allForUser(userID)
	if err != nil {
		return nil, err
	}
	if fs.IsZero() {
		return flights, nil
	}
	filtered := flights[:0:0]
	for i := range flights {
		if fs.Matches(&flights[i]) {
			filtered = append(filtered, flights[i])
		}
	}
	return filtered, nil
}

func (s *Service) allForUser(userID string) ([]models.FlightModel, error) {
	var flights []models.FlightModel
	err := s.db.
		Preload("Departure").Preload("Arrival").Preload("Airline").Preload("Tags").
		Where("user_id = ?", userID).
		Order("flight_date DESC, created_at DESC").
		Find(&flights).Error
	return flights, err
}

func (s *Service) GetByID(userID, id string) (*models.FlightModel, error) {
	var f models.FlightModel
	err := s.db.
		Preload("Departure").Preload("Arrival").Preload("Airline").Preload("Tags").
		Where("id = ? AND user_id = ?", id, userID).
		First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errFlightNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (s *Service) Create(userID string, dto *CreateFlightDTO) (*models.FlightModel, error) {
	dep, arr := normalizeAirportCode(dto.DepartureCode), normalizeAirportCode(dto.ArrivalCode)
	if dep == "" || arr == "" {
		return nil, errInvalidCode
	}
	date, err := time.Parse("2006-01-02", dto.FlightDate)
	if err != nil {
		return nil, errInvalidDate
	}

	f := models.FlightModel{
		UserID:           userID,
		DepartureCode:    dep,
		ArrivalCode:      arr,
		FlightDate:       date,
		FlightNumber:     strings.TrimSpace(dto.FlightNumber),
		AircraftType:     strings.TrimSpace(dto.AircraftType),
		DurationHours:    dto.DurationHours,
		TripCost:         dto.TripCost,
		TripCostCurrency: strings.ToUpper(strings.TrimSpace(dto.TripCostCurrency)),
		Journal:          dto.Journal,
	}
	if dto.AirlineCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*dto.AirlineCode))
		if code != "" {
			f.AirlineCode = &code
			if err := s.airlines.EnsureExists(code); err != nil {
				return nil, err
			}
		}
	}
	for _, name := range dedupeTags(dto.Tags) {
		f.Tags = append(f.Tags, models.FlightTagModel{Name: name})
	}

	s.derive(&f)

	if err := s.db.Create(&f).Error; err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.FlightCreated(&f)
	}
	return &f, nil
}

func (s *Service) Update(userID, id string, dto *UpdateFlightDTO) (*models.FlightModel, error) {
	f, err := s.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	routeChanged := false
	if dto.DepartureCode != nil {
		code := normalizeAirportCode(*dto.DepartureCode)
		if code == "" {
			return nil, errInvalidCode
		}
		if code != f.DepartureCode {
			f.DepartureCode = code
			routeChanged = true
		}
	}
	if dto.ArrivalCode != nil {
		code := normalizeAirportCode(*dto.ArrivalCode)
		if code == "" {
			return nil, errInvalidCode
		}
		if code != f.ArrivalCode {
			f.ArrivalCode = code
			routeChanged = true
		}
	}
	if dto.AirlineCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*dto.AirlineCode))
		if code == "" {
			f.AirlineCode = nil
		} else {
			f.AirlineCode = &code
			if err := s.airlines.EnsureExists(code); err != nil {
				return nil, err
			}
		}
	}
	if dto.FlightDate != nil {
		date, err := time.Parse("2006-01-02", *dto.FlightDate)
		if err != nil {
			return nil, errInvalidDate
		}
		f.FlightDate = date
	}
	if dto.FlightNumber != nil {
		f.FlightNumber = strings.TrimSpace(*dto.FlightNumber)
	}
	if dto.AircraftType != nil && strings.TrimSpace(*dto.AircraftType) != f.AircraftType {
		f.AircraftType = strings.TrimSpace(*dto.AircraftType)
		routeChanged = true // efficiency multiplier may change
	}
	if dto.DurationHours != nil {
		f.DurationHours = dto.DurationHours
	}
	if dto.TripCost != nil {
		f.TripCost = dto.TripCost
	}
	if dto.TripCostCurrency != nil {
		f.TripCostCurrency = strings.ToUpper(strings.TrimSpace(*dto.TripCostCurrency))
	}
	if dto.Journal != nil {
		f.Journal = *dto.Journal
	}

	if routeChanged {
		s.derive(f)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if dto.Tags != nil {
			if err := tx.Where("flight_id = ?", f.ID).Delete(&models.FlightTagModel{}).Error; err != nil {
				return err
			}
			f.Tags = nil
			for _, name := range dedupeTags(*dto.Tags) {
				f.Tags = append(f.Tags, models.FlightTagModel{FlightID: f.ID, Name: name})
			}
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: dto.Tags != nil}).Save(f).Error
	})
	if err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.FlightUpdated(f)
	}
	return f, nil
}

func (s *Service) Delete(userID, id string) error {
	f, err := s.GetByID(userID, id)
	if err != nil {
		return err
	}
	if err := s.db.Select("Tags").Delete(f).Error; err != nil {
		return err
	}
	if s.events != nil {
		s.events.FlightDeleted(id)
	}
	return nil
}

// SetCarbonOffset toggles the offset flag. Turning it off clears the
// provider bookkeeping.
func (s *Service) SetCarbonOffset(userID, id string, dto *CarbonOffsetDTO) (*models.FlightModel, error) {
	f, err := s.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	f.CarbonOffset = dto.Offset
	if dto.Offset {
		now := time.Now().UTC()
		f.CarbonOffsetProvider = strings.TrimSpace(dto.Provider)
		f.CarbonOffsetReference = strings.TrimSpace(dto.Reference)
		f.CarbonOffsetDate = &now
	} else {
		f.CarbonOffsetProvider = ""
		f.CarbonOffsetReference = ""
		f.CarbonOffsetDate = nil
	}

	if err := s.db.Save(f).Error; err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.FlightUpdated(f)
	}
	return f, nil
}

// derive recomputes distance, carbon footprint and, when absent, duration.
// This is the only call site for the metrics formulas in the CRUD path.
func (s *Service) derive(f *models.FlightModel) {
	from := s.resolver.CoordinatesFor(f.DepartureCode)
	to := s.resolver.CoordinatesFor(f.ArrivalCode)

	f.DistanceMiles = geo.DistanceMiles(from.Lat(), from.Lon(), to.Lat(), to.Lon())
	f.CarbonFootprintKg = metrics.CarbonFootprintKg(f.DistanceMiles, f.AircraftType)
	if f.DurationHours == nil {
		d := metrics.EstimateDurationHours(f.DistanceMiles)
		f.DurationHours = &d
	}
}

func toView(f *models.FlightModel) FlightView {
	return FlightView{
		ID:                f.ID,
		DepartureCode:     f.DepartureCode,
		ArrivalCode:       f.ArrivalCode,
		AirlineCode:       f.AirlineCode,
		FlightDate:        f.FlightDate,
		FlightNumber:      f.FlightNumber,
		AircraftType:      f.AircraftType,
		DurationHours:     f.DurationHours,
		TripCost:          f.TripCost,
		TripCostCurrency:  f.TripCostCurrency,
		DistanceMiles:     f.DistanceMiles,
		CarbonFootprintKg: f.CarbonFootprintKg,
		CarbonOffset:      f.CarbonOffset,
		CarbonOffsetDate:  f.CarbonOffsetDate,
		Journal:           f.Journal,
		Tags:              f.TagNames(),
		Created:           f.CreatedAt,
		Modified:          f.UpdatedAt,
	}
}

func normalizeAirportCode(code string) string {
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

func dedupeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}
