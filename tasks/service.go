package tasks

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/m3rciful/volunteerbot/core/logger"
)

// Storage is the persistence surface the service depends on.
type Storage interface {
	Create(ctx context.Context, kind Kind, text string, creatorID int64) (Task, error)
	Assign(ctx context.Context, id uuid.UUID, assigneeID int64) error
	Close(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (Task, error)
	ListOpen(ctx context.Context) ([]Task, error)
	RecordMessage(ctx context.Context, taskID uuid.UUID, chatID int64, messageID int) error
}

// Service wraps Storage with structured logging. Both bots and the dialog
// machine depend on this layer rather than on the store directly.
type Service struct {
	store Storage
}

// NewService builds a Service over the given storage.
func NewService(store Storage) *Service {
	return &Service{store: store}
}

const component = "service.tasks"

// Create persists a new task and logs the outcome.
func (s *Service) Create(ctx context.Context, kind Kind, text string, creatorID int64) (Task, error) {
	t, err := s.store.Create(ctx, kind, text, creatorID)
	if err != nil {
		logger.Error(ctx, component, "task.create",
			slog.String("status", "fail"),
			slog.String("kind", string(kind)),
			slog.Int64("creator_id", creatorID),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return Task{}, err
	}
	logger.Info(ctx, component, "task.create",
		slog.String("status", "ok"),
		slog.String("task_id", t.ID.String()),
		slog.String("kind", string(t.Kind)),
		slog.Int64("creator_id", creatorID),
	)
	return t, nil
}

// Assign marks a task as taken by a volunteer.
func (s *Service) Assign(ctx context.Context, id uuid.UUID, assigneeID int64) error {
	if err := s.store.Assign(ctx, id, assigneeID); err != nil {
		logger.Warn(ctx, component, "task.assign",
			slog.String("status", "fail"),
			slog.String("task_id", id.String()),
			slog.Int64("assignee_id", assigneeID),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return err
	}
	logger.Info(ctx, component, "task.assign",
		slog.String("status", "ok"),
		slog.String("task_id", id.String()),
		slog.Int64("assignee_id", assigneeID),
	)
	return nil
}

// Close marks an assigned task as completed.
func (s *Service) Close(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Close(ctx, id); err != nil {
		logger.Warn(ctx, component, "task.close",
			slog.String("status", "fail"),
			slog.String("task_id", id.String()),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return err
	}
	logger.Info(ctx, component, "task.close",
		slog.String("status", "ok"),
		slog.String("task_id", id.String()),
	)
	return nil
}

// Get fetches a task by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Task, error) {
	return s.store.Get(ctx, id)
}

// ListOpen returns open tasks oldest first.
func (s *Service) ListOpen(ctx context.Context) ([]Task, error) {
	list, err := s.store.ListOpen(ctx)
	if err != nil {
		logger.Error(ctx, component, "task.list_open",
			slog.String("status", "fail"),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return nil, err
	}
	logger.Debug(ctx, component, "task.list_open",
		slog.String("status", "ok"),
		slog.Int("count", len(list)),
	)
	return list, nil
}

// RecordMessage stores the chat message currently displaying a task.
func (s *Service) RecordMessage(ctx context.Context, taskID uuid.UUID, chatID int64, messageID int) error {
	if err := s.store.RecordMessage(ctx, taskID, chatID, messageID); err != nil {
		logger.Warn(ctx, component, "task.record_message",
			slog.String("status", "fail"),
			slog.String("task_id", taskID.String()),
			slog.Int64("chat_id", chatID),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return err
	}
	return nil
}
