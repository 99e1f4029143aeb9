package tasks

import (
	"time"

	"github.com/google/uuid"
)

// Kind categorizes what a relief task is about.
type Kind string

const (
	KindShelter   Kind = "SHELTER"
	KindTransport Kind = "TRANSPORT"
	KindVolunteer Kind = "VOLUNTEER"
	KindQuestion  Kind = "QUESTION"
	KindOther     Kind = "OTHER"
)

// Kinds lists every known kind in display order.
func Kinds() []Kind {
	return []Kind{KindShelter, KindTransport, KindVolunteer, KindQuestion, KindOther}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindShelter, KindTransport, KindVolunteer, KindQuestion, KindOther:
		return true
	}
	return false
}

// Enabled reports whether new tasks of this kind may be created.
// VOLUNTEER, QUESTION and OTHER are reserved for later rollout.
func (k Kind) Enabled() bool {
	switch k {
	case KindShelter, KindTransport:
		return true
	}
	return false
}

// Status is the lifecycle state of a task. Transitions are monotonic:
// UNASSIGNED -> ASSIGNED -> CLOSED, no way back.
type Status string

const (
	StatusUnassigned Status = "UNASSIGNED"
	StatusAssigned   Status = "ASSIGNED"
	StatusClosed     Status = "CLOSED"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusUnassigned, StatusAssigned, StatusClosed:
		return true
	}
	return false
}

// Open reports whether the task still needs attention.
func (s Status) Open() bool {
	return s == StatusUnassigned || s == StatusAssigned
}

// CanTransition reports whether moving from s to next is allowed.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusUnassigned:
		return next == StatusAssigned
	case StatusAssigned:
		return next == StatusClosed
	}
	return false
}

// Task is a single relief request persisted in Postgres.
type Task struct {
	ID         uuid.UUID  `db:"id"`
	Kind       Kind       `db:"kind"`
	Text       string     `db:"text"`
	Status     Status     `db:"status"`
	CreatorID  int64      `db:"creator_id"`
	AssigneeID *int64     `db:"assignee_id"`
	CreatedTS  time.Time  `db:"created_ts"`
	AssignedTS *time.Time `db:"assigned_ts"`
	ClosedTS   *time.Time `db:"closed_ts"`
}
