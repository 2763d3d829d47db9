// Package importer ingests flight logs from CSV exports of other trackers.
// Column headers are matched heuristically, with an optional AI assist for
// layouts the synonym table does not recognize.
package importer

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	appcfg "github.com/flightfolio/core/internal/config"
	"github.com/flightfolio/core/internal/modules/flights"
	"github.com/flightfolio/core/internal/pkg/taskqueue"
	"go.uber.org/zap"
)

const defaultMaxRows = 1000

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02.01.2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	time.RFC3339,
}

// Result summarizes one import run.
type Result struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// ConfigSource supplies the current runtime settings document.
type ConfigSource func() appcfg.FullConfig

type Service struct {
	flights *flights.Service
	tasks   *taskqueue.Service
	config  ConfigSource
	log     *zap.SugaredLogger
}

func NewService(flightSvc *flights.Service, tasks *taskqueue.Service, config ConfigSource, log *zap.SugaredLogger) *Service {
	return &Service{flights: flightSvc, tasks: tasks, config: config, log: log}
}

// ImportCSV parses and imports synchronously, returning the row-level outcome.
func (s *Service) ImportCSV(userID string, r io.Reader) (*Result, error) {
	cfg := s.config()

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header row: %w", err)
	}
	mapping := MapColumns(cfg.AI, headers)
	if !hasRequiredColumns(mapping) {
		return nil, fmt.Errorf("could not locate departure, arrival and date columns in header %v", headers)
	}

	maxRows := cfg.ImportOptions.MaxRows
	if maxRows <= 0 {
		maxRows = defaultMaxRows
	}

	result := &Result{}
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", row, err))
			continue
		}
		if result.Imported >= maxRows {
			result.Errors = append(result.Errors, fmt.Sprintf("row limit of %d reached, remaining rows ignored", maxRows))
			break
		}

		dto, err := rowToDTO(mapping, record)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", row, err))
			continue
		}
		if _, err := s.flights.Create(userID, dto); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", row, err))
			continue
		}
		result.Imported++
	}
	return result, nil
}

// ImportCSVAsync enqueues a task record and imports in the background; the
// caller polls the task for the result.
func (s *Service) ImportCSVAsync(ctx context.Context, userID string, data []byte) (*taskqueue.Task, error) {
	task, err := s.tasks.Enqueue(ctx, "flight-import", map[string]interface{}{
		"user_id": userID,
		"bytes":   len(data),
	})
	if err != nil {
		return nil, err
	}

	go func() {
		bg := context.Background()
		if err := s.tasks.UpdateStatus(bg, task.ID, taskqueue.TaskRunning, nil, ""); err != nil {
			s.log.Warnw("import task status update failed", "task", task.ID, "error", err)
		}

		result, err := s.ImportCSV(userID, bytes.NewReader(data))
		if err != nil {
			s.log.Warnw("import task failed", "task", task.ID, "error", err)
			_ = s.tasks.UpdateStatus(bg, task.ID, taskqueue.TaskFailed, nil, err.Error())
			return
		}
		s.log.Infow("import task finished", "task", task.ID, "imported", result.Imported, "skipped", result.Skipped)
		_ = s.tasks.UpdateStatus(bg, task.ID, taskqueue.TaskCompleted, result, "")
	}()

	return task, nil
}

// GetTask fetches an import task record.
func (s *Service) GetTask(ctx context.Context, id string) (*taskqueue.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func hasRequiredColumns(mapping map[int]string) bool {
	need := map[string]bool{"departure_code": false, "arrival_code": false, "flight_date": false}
	for _, field := range mapping {
		if _, ok := need[field]; ok {
			need[field] = true
		}
	}
	return need["departure_code"] && need["arrival_code"] && need["flight_date"]
}

func rowToDTO(mapping map[int]string, record []string) (*flights.CreateFlightDTO, error) {
	dto := &flights.CreateFlightDTO{}

	for idx, field := range mapping {
		if idx >= len(record) {
			continue
		}
		value := strings.TrimSpace(record[idx])
		if value == "" {
			continue
		}

		switch field {
		case "departure_code":
			dto.DepartureCode = value
		case "arrival_code":
			dto.ArrivalCode = value
		case "airline_code":
			v := value
			dto.AirlineCode = &v
		case "flight_date":
			date, err := parseDate(value)
			if err != nil {
				return nil, err
			}
			dto.FlightDate = date.Format("2006-01-02")
		case "flight_number":
			dto.FlightNumber = value
		case "aircraft_type":
			dto.AircraftType = value
		case "duration_hours":
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid duration %q", value)
			}
			dto.DurationHours = &v
		case "trip_cost":
			v, err := strconv.ParseFloat(strings.TrimLeft(value, "$€£"), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid cost %q", value)
			}
			dto.TripCost = &v
		case "trip_cost_currency":
			dto.TripCostCurrency = value
		case "journal":
			dto.Journal = value
		case "tags":
			for _, t := range strings.Split(value, ";") {
				if t = strings.TrimSpace(t); t != "" {
					dto.Tags = append(dto.Tags, t)
				}
			}
		}
	}

	if dto.DepartureCode == "" || dto.ArrivalCode == "" {
		return nil, fmt.Errorf("missing departure or arrival code")
	}
	if dto.FlightDate == "" {
		return nil, fmt.Errorf("missing flight date")
	}
	return dto, nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
