package requestbot

import (
	"strings"
	"testing"

	"github.com/m3rciful/volunteerbot/dialog"
	"github.com/m3rciful/volunteerbot/tasks"
)

func TestConfirmationTextUsesUsername(t *testing.T) {
	draft := dialog.Draft{Kind: tasks.KindShelter, Text: "need a roof #Kyiv"}
	user := dialog.User{ID: 42, Username: "helper", FirstName: "Olena"}

	text := confirmationText(draft, user)
	if !strings.Contains(text, "@helper") {
		t.Errorf("expected @username mention, got:\n%s", text)
	}
	if !strings.Contains(text, "need a roof #Kyiv") {
		t.Errorf("draft text missing:\n%s", text)
	}
	if !strings.Contains(text, "shelter request") {
		t.Errorf("shelter header missing:\n%s", text)
	}
}

func TestConfirmationTextFallsBackToIDLink(t *testing.T) {
	draft := dialog.Draft{Kind: tasks.KindTransport, Text: "ride to Lviv"}
	user := dialog.User{ID: 42, FirstName: "Olena"}

	text := confirmationText(draft, user)
	if !strings.Contains(text, `tg://user?id=42`) {
		t.Errorf("expected tg://user link for user without handle, got:\n%s", text)
	}
	if strings.Contains(text, "@") {
		t.Errorf("unexpected @ mention without a username:\n%s", text)
	}
}

func TestCreatedTextEscapesHTML(t *testing.T) {
	draft := dialog.Draft{Kind: tasks.KindShelter, Text: `<script>alert("x")</script>`}
	text := createdText(draft)
	if strings.Contains(text, "<script>") {
		t.Errorf("user text not escaped:\n%s", text)
	}
	if !strings.Contains(text, "&lt;script&gt;") {
		t.Errorf("expected escaped text:\n%s", text)
	}
}

func TestInputTextCoversEnabledKinds(t *testing.T) {
	for _, kind := range tasks.Kinds() {
		_, ok := inputText[kind]
		if kind.Enabled() && !ok {
			t.Errorf("no input prompt for enabled kind %s", kind)
		}
		if !kind.Enabled() && ok {
			t.Errorf("input prompt exists for disabled kind %s", kind)
		}
	}
}
