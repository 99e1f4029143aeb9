package dialog

import (
	"errors"
	"testing"

	"github.com/m3rciful/volunteerbot/tasks"
)

func TestTrackerLifecycle(t *testing.T) {
	tr := NewMemoryTracker()

	if tr.InProgress(1) {
		t.Fatal("fresh tracker reports dialog in progress")
	}
	if err := tr.SetText(1, "hi"); !errors.Is(err, ErrNoActiveDialog) {
		t.Fatalf("SetText without Begin: expected ErrNoActiveDialog, got %v", err)
	}

	tr.Begin(1, tasks.KindShelter)
	if !tr.InProgress(1) {
		t.Fatal("Begin did not register dialog")
	}
	if err := tr.SetText(1, "need shelter"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	d, ok := tr.Get(1)
	if !ok || d.Kind != tasks.KindShelter || d.Text != "need shelter" {
		t.Fatalf("unexpected draft: %+v (ok=%v)", d, ok)
	}

	tr.Clear(1)
	if tr.InProgress(1) {
		t.Fatal("Clear did not remove dialog")
	}
	// Clearing again must be a no-op.
	tr.Clear(1)
}

func TestTrackerBeginOverwrites(t *testing.T) {
	tr := NewMemoryTracker()
	tr.Begin(1, tasks.KindShelter)
	if err := tr.SetText(1, "old text"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	tr.Begin(1, tasks.KindTransport)
	d, _ := tr.Get(1)
	if d.Kind != tasks.KindTransport || d.Text != "" {
		t.Errorf("Begin must reset the draft, got %+v", d)
	}
}

func TestTrackerIsolatesUsers(t *testing.T) {
	tr := NewMemoryTracker()
	tr.Begin(1, tasks.KindShelter)
	tr.Begin(2, tasks.KindTransport)
	if err := tr.SetText(1, "from user one"); err != nil {
		t.Fatalf("SetText: %v", err)
	}

	d2, _ := tr.Get(2)
	if d2.Text != "" || d2.Kind != tasks.KindTransport {
		t.Errorf("user 2 draft affected by user 1: %+v", d2)
	}

	tr.Clear(1)
	if !tr.InProgress(2) {
		t.Error("clearing user 1 removed user 2's dialog")
	}
}
