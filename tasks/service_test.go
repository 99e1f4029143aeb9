package tasks

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type stubStorage struct {
	created  []Task
	assigned map[uuid.UUID]int64
	closed   map[uuid.UUID]bool
	failWith error
}

func newStubStorage() *stubStorage {
	return &stubStorage{
		assigned: make(map[uuid.UUID]int64),
		closed:   make(map[uuid.UUID]bool),
	}
}

func (s *stubStorage) Create(_ context.Context, kind Kind, text string, creatorID int64) (Task, error) {
	if s.failWith != nil {
		return Task{}, s.failWith
	}
	t := Task{ID: uuid.New(), Kind: kind, Text: text, Status: StatusUnassigned, CreatorID: creatorID}
	s.created = append(s.created, t)
	return t, nil
}

func (s *stubStorage) Assign(_ context.Context, id uuid.UUID, assigneeID int64) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.assigned[id] = assigneeID
	return nil
}

func (s *stubStorage) Close(_ context.Context, id uuid.UUID) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.closed[id] = true
	return nil
}

func (s *stubStorage) Get(_ context.Context, id uuid.UUID) (Task, error) {
	for _, t := range s.created {
		if t.ID == id {
			return t, nil
		}
	}
	return Task{}, ErrNotFound
}

func (s *stubStorage) ListOpen(_ context.Context) ([]Task, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.created, nil
}

func (s *stubStorage) RecordMessage(_ context.Context, _ uuid.UUID, _ int64, _ int) error {
	return s.failWith
}

func TestServiceCreateDelegates(t *testing.T) {
	store := newStubStorage()
	svc := NewService(store)

	task, err := svc.Create(context.Background(), KindShelter, "need a tent", 42)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.Kind != KindShelter || task.Text != "need a tent" || task.CreatorID != 42 {
		t.Errorf("unexpected task: %+v", task)
	}
	if len(store.created) != 1 {
		t.Fatalf("expected 1 stored task, got %d", len(store.created))
	}
}

func TestServiceCreatePropagatesStoreError(t *testing.T) {
	store := newStubStorage()
	store.failWith = &StoreError{Op: "create.insert", Err: errors.New("connection reset")}
	svc := NewService(store)

	_, err := svc.Create(context.Background(), KindTransport, "ride to hospital", 7)
	var se *StoreError
	if !errors.As(err, &se) {
		t.Fatalf("expected StoreError, got %v", err)
	}
	if se.Code() != "STORE_ERROR" {
		t.Errorf("Code() = %q, want STORE_ERROR", se.Code())
	}
}

func TestServiceAssignAndClose(t *testing.T) {
	store := newStubStorage()
	svc := NewService(store)

	task, err := svc.Create(context.Background(), KindShelter, "shelter for family of four", 1)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Assign(context.Background(), task.ID, 99); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if got := store.assigned[task.ID]; got != 99 {
		t.Errorf("assignee = %d, want 99", got)
	}
	if err := svc.Close(context.Background(), task.ID); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !store.closed[task.ID] {
		t.Error("task not closed in storage")
	}
}

func TestServiceGetNotFound(t *testing.T) {
	svc := NewService(newStubStorage())
	_, err := svc.Get(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
