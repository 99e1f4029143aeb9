package dialog

import (
	"sync"

	"github.com/m3rciful/volunteerbot/tasks"
)

// Draft is the in-flight state of one user's task creation dialog.
// A user with no draft in the tracker is idle.
type Draft struct {
	Kind tasks.Kind
	Text string
}

// Complete reports whether the draft carries everything needed to create a task.
func (d Draft) Complete() bool {
	return d.Kind.Enabled() && d.Text != ""
}

// Tracker stores per-user drafts. Implementations must be safe for
// concurrent use; each user's dialog is independent of every other user's.
type Tracker interface {
	// Begin starts a dialog for the user, overwriting any existing draft.
	Begin(userID int64, kind tasks.Kind)
	// SetText stores free-form text on the user's draft.
	// Returns ErrNoActiveDialog when no dialog is in progress.
	SetText(userID int64, text string) error
	// Get returns the user's draft, if any.
	Get(userID int64) (Draft, bool)
	// Clear removes the user's draft. Clearing an absent draft is a no-op.
	Clear(userID int64)
	// InProgress reports whether the user has a dialog in progress.
	InProgress(userID int64) bool
}

// memoryTracker keeps drafts in a process-local map. Drafts do not survive
// a restart; users simply start over with /newtask.
type memoryTracker struct {
	mu     sync.RWMutex
	drafts map[int64]Draft
}

// NewMemoryTracker returns an in-memory Tracker.
func NewMemoryTracker() Tracker {
	return &memoryTracker{drafts: make(map[int64]Draft)}
}

func (t *memoryTracker) Begin(userID int64, kind tasks.Kind) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.drafts[userID] = Draft{Kind: kind}
}

func (t *memoryTracker) SetText(userID int64, text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	d, ok := t.drafts[userID]
	if !ok {
		return ErrNoActiveDialog
	}
	d.Text = text
	t.drafts[userID] = d
	return nil
}

func (t *memoryTracker) Get(userID int64) (Draft, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	d, ok := t.drafts[userID]
	return d, ok
}

func (t *memoryTracker) Clear(userID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.drafts, userID)
}

func (t *memoryTracker) InProgress(userID int64) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.drafts[userID]
	return ok
}
