package dialog

import "errors"

var (
	// ErrNoActiveDialog indicates free-form input or a confirm action arrived
	// while the user had no dialog in progress.
	ErrNoActiveDialog = errors.New("dialog: no active dialog")
	// ErrKindDisabled indicates a selection of a kind that is not open for
	// task creation yet.
	ErrKindDisabled = errors.New("dialog: kind disabled")
	// ErrUnknownAction indicates a callback payload that does not decode to
	// any known action.
	ErrUnknownAction = errors.New("dialog: unknown action")
	// ErrDraftIncomplete indicates a confirm action on a draft with no text.
	// This is a contract violation: the confirm screen is only ever offered
	// after text has been stored.
	ErrDraftIncomplete = errors.New("dialog: draft incomplete")
)
