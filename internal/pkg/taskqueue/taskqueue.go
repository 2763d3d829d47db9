package taskqueue

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redisc "github.com/flightfolio/core/internal/pkg/redis"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskRunning   TaskStatus = "running"
	TaskCompleted TaskStatus = "completed"
	TaskFailed    TaskStatus = "failed"
)

// Task is a unit of background work stored in Redis.
// Used for spreadsheet import jobs so the dashboard can poll progress.
type Task struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Status    TaskStatus      `json:"status"`
	Result    json.RawMessage `json:"result,omitempty"`
	Error     string          `json:"error,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

const (
	keyPrefix = "ff:task:"
	keyIndex  = "ff:tasks:index" // sorted set: score=created_at, member=task_id
	taskTTL   = 24 * time.Hour
)

var ErrTaskNotFound = errors.New("task not found")

// Service manages the Redis-backed task records.
type Service struct {
	rc *redisc.Client
}

func NewService(rc *redisc.Client) *Service {
	return &Service{rc: rc}
}

func (s *Service) taskKey(id string) string { return keyPrefix + id }

// Enqueue creates a new task record.
func (s *Service) Enqueue(ctx context.Context, taskType string, payload interface{}) (*Task, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	task := &Task{
		ID:        uuid.New().String(),
		Type:      taskType,
		Payload:   payloadBytes,
		Status:    TaskPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.save(ctx, task); err != nil {
		return nil, err
	}
	s.rc.Raw().ZAdd(ctx, keyIndex, redis.Z{
		Score:  float64(task.CreatedAt.UnixMilli()),
		Member: task.ID,
	})
	return task, nil
}

// GetByID fetches a task record.
func (s *Service) GetByID(ctx context.Context, id string) (*Task, error) {
	raw, err := s.rc.Get(ctx, s.taskKey(id))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, ErrTaskNotFound
	}
	var task Task
	if err := json.Unmarshal([]byte(raw), &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateStatus transitions a task and attaches an optional result or error.
func (s *Service) UpdateStatus(ctx context.Context, id string, status TaskStatus, result interface{}, errMsg string) error {
	task, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	task.Status = status
	task.Error = errMsg
	task.UpdatedAt = time.Now()
	if result != nil {
		data, err := json.Marshal(result)
		if err != nil {
			return err
		}
		task.Result = data
	}
	return s.save(ctx, task)
}

func (s *Service) save(ctx context.Context, task *Task) error {
	data, err := json.Marshal(task)
	if err != nil {
		return err
	}
	return s.rc.Set(ctx, s.taskKey(task.ID), string(data), taskTTL)
}
