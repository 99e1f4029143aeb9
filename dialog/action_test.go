package dialog

import (
	"errors"
	"testing"

	"github.com/m3rciful/volunteerbot/tasks"
)

func TestParseAction(t *testing.T) {
	cases := []struct {
		payload string
		want    Action
	}{
		{"CANCEL", Action{Type: ActionCancel}},
		{"CREATE", Action{Type: ActionCreate}},
		{"SELECT/SHELTER", Action{Type: ActionSelect, Kind: tasks.KindShelter}},
		{"SELECT/TRANSPORT", Action{Type: ActionSelect, Kind: tasks.KindTransport}},
		{"SELECT/OTHER", Action{Type: ActionSelect, Kind: tasks.KindOther}},
		{" CANCEL ", Action{Type: ActionCancel}},
	}
	for _, tc := range cases {
		got, err := ParseAction(tc.payload)
		if err != nil {
			t.Errorf("ParseAction(%q): %v", tc.payload, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAction(%q) = %+v, want %+v", tc.payload, got, tc.want)
		}
	}
}

func TestParseActionRejectsGarbage(t *testing.T) {
	for _, payload := range []string{
		"",
		"NOPE",
		"SELECT",
		"SELECT/",
		"SELECT/BANANA",
		"SELECT/SHELTER/EXTRA",
		"CANCEL/NOW",
		"CREATE/1",
		"cancel",
	} {
		if _, err := ParseAction(payload); !errors.Is(err, ErrUnknownAction) {
			t.Errorf("ParseAction(%q): expected ErrUnknownAction, got %v", payload, err)
		}
	}
}

func TestActionEncodeRoundTrip(t *testing.T) {
	for _, a := range []Action{
		{Type: ActionCancel},
		{Type: ActionCreate},
		{Type: ActionSelect, Kind: tasks.KindShelter},
	} {
		decoded, err := ParseAction(a.Encode())
		if err != nil {
			t.Fatalf("ParseAction(%q): %v", a.Encode(), err)
		}
		if decoded != a {
			t.Errorf("round trip %+v -> %q -> %+v", a, a.Encode(), decoded)
		}
	}
}
