package dialog

import (
	"fmt"
	"strings"

	"github.com/m3rciful/volunteerbot/tasks"
)

// ActionType discriminates decoded dialog actions.
type ActionType int

const (
	ActionCancel ActionType = iota + 1
	ActionSelect
	ActionCreate
)

// Action is a dialog button press decoded from its wire payload.
// Kind is set for ActionSelect only.
type Action struct {
	Type ActionType
	Kind tasks.Kind
}

// ParseAction decodes a slash-delimited callback payload into an Action.
// Recognized forms: "CANCEL", "SELECT/<KIND>", "CREATE".
func ParseAction(payload string) (Action, error) {
	payload = strings.TrimSpace(payload)
	parts := strings.Split(payload, "/")

	switch parts[0] {
	case "CANCEL":
		if len(parts) != 1 {
			return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, payload)
		}
		return Action{Type: ActionCancel}, nil
	case "CREATE":
		if len(parts) != 1 {
			return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, payload)
		}
		return Action{Type: ActionCreate}, nil
	case "SELECT":
		if len(parts) != 2 {
			return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, payload)
		}
		kind := tasks.Kind(parts[1])
		if !kind.Valid() {
			return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, payload)
		}
		return Action{Type: ActionSelect, Kind: kind}, nil
	}
	return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, payload)
}

// Encode renders the action back into its wire payload.
func (a Action) Encode() string {
	switch a.Type {
	case ActionCancel:
		return "CANCEL"
	case ActionCreate:
		return "CREATE"
	case ActionSelect:
		return "SELECT/" + string(a.Kind)
	}
	return ""
}
