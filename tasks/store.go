package tasks

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const taskColumns = "id, kind, text, status, creator_id, assignee_id, created_ts, assigned_ts, closed_ts"

// Store persists tasks in Postgres. Every mutation goes through a single
// process-wide write gate so concurrent dialogs cannot interleave inserts
// and status updates; reads bypass the gate.
type Store struct {
	db      *sqlx.DB
	writeMu sync.Mutex
}

// NewStore wraps an open sqlx connection.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Create inserts a new UNASSIGNED task and returns the stored row.
func (s *Store) Create(ctx context.Context, kind Kind, text string, creatorID int64) (Task, error) {
	if !kind.Enabled() {
		return Task{}, ErrKindDisabled
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, ErrEmptyText
	}

	t := Task{
		ID:        uuid.New(),
		Kind:      kind,
		Text:      text,
		Status:    StatusUnassigned,
		CreatorID: creatorID,
		CreatedTS: time.Now().UTC(),
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return Task{}, storeErr("create.begin", err)
	}
	defer tx.Rollback()

	const q = `INSERT INTO tasks (id, kind, text, status, creator_id, created_ts)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.ExecContext(ctx, q, t.ID, t.Kind, t.Text, t.Status, t.CreatorID, t.CreatedTS); err != nil {
		return Task{}, storeErr("create.insert", err)
	}
	if err := tx.Commit(); err != nil {
		return Task{}, storeErr("create.commit", err)
	}
	return t, nil
}

// Assign moves an UNASSIGNED task to ASSIGNED and records the assignee.
func (s *Store) Assign(ctx context.Context, id uuid.UUID, assigneeID int64) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return storeErr("assign.begin", err)
	}
	defer tx.Rollback()

	const q = `UPDATE tasks
		SET status = $1, assignee_id = $2, assigned_ts = $3
		WHERE id = $4 AND status = $5`
	res, err := tx.ExecContext(ctx, q, StatusAssigned, assigneeID, time.Now().UTC(), id, StatusUnassigned)
	if err != nil {
		return storeErr("assign.update", err)
	}
	if err := s.checkAffected(ctx, tx, res, id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return storeErr("assign.commit", err)
	}
	return nil
}

// Close moves an ASSIGNED task to CLOSED. Closing an UNASSIGNED task is
// rejected: a task must have an assignee before it can be completed.
func (s *Store) Close(ctx context.Context, id uuid.UUID) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return storeErr("close.begin", err)
	}
	defer tx.Rollback()

	const q = `UPDATE tasks
		SET status = $1, closed_ts = $2
		WHERE id = $3 AND status = $4`
	res, err := tx.ExecContext(ctx, q, StatusClosed, time.Now().UTC(), id, StatusAssigned)
	if err != nil {
		return storeErr("close.update", err)
	}
	if err := s.checkAffected(ctx, tx, res, id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return storeErr("close.commit", err)
	}
	return nil
}

// checkAffected distinguishes a missing row from a transition conflict
// when a guarded UPDATE matched nothing.
func (s *Store) checkAffected(ctx context.Context, tx *sqlx.Tx, res sql.Result, id uuid.UUID) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return storeErr("rows_affected", err)
	}
	if affected > 0 {
		return nil
	}

	var exists bool
	if err := tx.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM tasks WHERE id = $1)`, id); err != nil {
		return storeErr("exists", err)
	}
	if !exists {
		return ErrNotFound
	}
	return ErrInvalidTransition
}

// Get returns a task by ID.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (Task, error) {
	var t Task
	err := s.db.GetContext(ctx, &t, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Task{}, ErrNotFound
	}
	if err != nil {
		return Task{}, storeErr("get", err)
	}
	return t, nil
}

// ListOpen returns UNASSIGNED and ASSIGNED tasks, oldest first.
func (s *Store) ListOpen(ctx context.Context) ([]Task, error) {
	var list []Task
	const q = `SELECT ` + taskColumns + ` FROM tasks
		WHERE status IN ($1, $2)
		ORDER BY created_ts ASC`
	if err := s.db.SelectContext(ctx, &list, q, StatusUnassigned, StatusAssigned); err != nil {
		return nil, storeErr("list_open", err)
	}
	return list, nil
}

// RecordMessage remembers which chat message currently displays a task,
// so the task bot can refresh it after status changes.
func (s *Store) RecordMessage(ctx context.Context, taskID uuid.UUID, chatID int64, messageID int) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	const q = `INSERT INTO task_messages (task_id, chat_id, message_id, posted_ts)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (task_id, chat_id) DO UPDATE
		SET message_id = EXCLUDED.message_id, posted_ts = EXCLUDED.posted_ts`
	if _, err := s.db.ExecContext(ctx, q, taskID, chatID, messageID, time.Now().UTC()); err != nil {
		return storeErr("record_message", err)
	}
	return nil
}
