package taskbot

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/m3rciful/volunteerbot/tasks"
)

func TestTaskMessageText(t *testing.T) {
	task := tasks.Task{
		ID:     uuid.New(),
		Kind:   tasks.KindShelter,
		Text:   "family of four needs a roof <tonight>",
		Status: tasks.StatusUnassigned,
	}
	text := taskMessageText(task)
	if !strings.Contains(text, "⛺️ Shelter request") {
		t.Errorf("kind header missing:\n%s", text)
	}
	if !strings.Contains(text, "Needs a volunteer") {
		t.Errorf("status label missing:\n%s", text)
	}
	if strings.Contains(text, "<tonight>") {
		t.Errorf("user text not escaped:\n%s", text)
	}
}

func TestTaskMarkupFollowsStatus(t *testing.T) {
	task := tasks.Task{ID: uuid.New(), Kind: tasks.KindTransport, Status: tasks.StatusUnassigned}

	m := taskMarkup(task)
	if m == nil || len(m.InlineKeyboard) != 1 || m.InlineKeyboard[0][0].Text != takeButton {
		t.Fatalf("unassigned task must offer a take button, got %+v", m)
	}

	task.Status = tasks.StatusAssigned
	m = taskMarkup(task)
	if m == nil || m.InlineKeyboard[0][0].Text != doneButton {
		t.Fatalf("assigned task must offer a done button, got %+v", m)
	}

	task.Status = tasks.StatusClosed
	if m = taskMarkup(task); m != nil {
		t.Fatalf("closed task must have no buttons, got %+v", m)
	}
}
