package dialog

import (
	"context"
	"log/slog"

	"github.com/m3rciful/volunteerbot/core/logger"
	"github.com/m3rciful/volunteerbot/tasks"
)

// Screen identifies what the bot should show the user next.
type Screen int

const (
	ScreenCancelled Screen = iota + 1
	ScreenChooseKind
	ScreenEnterText
	ScreenConfirm
	ScreenCreated
	ScreenExpired
)

// Keyboard identifies which inline keyboard accompanies a screen.
type Keyboard int

const (
	KeyboardNone Keyboard = iota
	KeyboardKindSelect
	KeyboardCancelOnly
	KeyboardConfirmCancel
)

// Reply tells the transport layer what to render. It carries no Telegram
// types so the machine stays testable without a bot.
type Reply struct {
	Screen   Screen
	Kind     tasks.Kind
	Draft    Draft
	Keyboard Keyboard
}

// User identifies the person driving the dialog. Username may be empty;
// rendering falls back to a tg://user link built from ID and FirstName.
type User struct {
	ID        int64
	Username  string
	FirstName string
}

// TaskCreator persists confirmed drafts. *tasks.Service satisfies it.
type TaskCreator interface {
	Create(ctx context.Context, kind tasks.Kind, text string, creatorID int64) (tasks.Task, error)
}

// Machine drives the task creation dialog. All state lives in the Tracker,
// keyed by user ID, so one Machine serves every concurrent user.
type Machine struct {
	tracker Tracker
	creator TaskCreator
}

// NewMachine wires a Machine over the given tracker and task creator.
func NewMachine(tracker Tracker, creator TaskCreator) *Machine {
	return &Machine{tracker: tracker, creator: creator}
}

// InProgress reports whether the user has a dialog in progress.
func (m *Machine) InProgress(userID int64) bool {
	return m.tracker.InProgress(userID)
}

// Start opens the kind selection screen. Any previous draft is discarded
// so a fresh /newtask always begins from a clean slate.
func (m *Machine) Start(ctx context.Context, user User) Reply {
	m.tracker.Clear(user.ID)
	logger.Debug(ctx, "dialog", "dialog.start", slog.Int64("user_id", user.ID))
	return Reply{Screen: ScreenChooseKind, Keyboard: KeyboardKindSelect}
}

// Cancel abandons the dialog. Idempotent: cancelling with no dialog in
// progress still replies Cancelled.
func (m *Machine) Cancel(ctx context.Context, user User) Reply {
	m.tracker.Clear(user.ID)
	logger.Debug(ctx, "dialog", "dialog.cancel", slog.Int64("user_id", user.ID))
	return Reply{Screen: ScreenCancelled}
}

// Select records the chosen kind and asks for the task text. Selecting
// again, even mid-dialog, restarts the draft with the new kind.
func (m *Machine) Select(ctx context.Context, user User, kind tasks.Kind) (Reply, error) {
	if !kind.Valid() || !kind.Enabled() {
		logger.Warn(ctx, "dialog", "dialog.select.disabled",
			slog.Int64("user_id", user.ID),
			slog.String("kind", string(kind)),
		)
		return Reply{}, ErrKindDisabled
	}
	m.tracker.Begin(user.ID, kind)
	logger.Debug(ctx, "dialog", "dialog.select",
		slog.Int64("user_id", user.ID),
		slog.String("kind", string(kind)),
	)
	return Reply{Screen: ScreenEnterText, Kind: kind, Keyboard: KeyboardCancelOnly}, nil
}

// Text stores free-form input on the draft and shows the confirmation
// screen. Repeated text before confirmation overwrites the previous draft
// text and re-prompts.
func (m *Machine) Text(ctx context.Context, user User, text string) (Reply, error) {
	if err := m.tracker.SetText(user.ID, text); err != nil {
		return Reply{}, err
	}
	draft, _ := m.tracker.Get(user.ID)
	logger.Debug(ctx, "dialog", "dialog.text",
		slog.Int64("user_id", user.ID),
		slog.String("kind", string(draft.Kind)),
	)
	return Reply{
		Screen:   ScreenConfirm,
		Kind:     draft.Kind,
		Draft:    draft,
		Keyboard: KeyboardConfirmCancel,
	}, nil
}

// Create persists the draft as a task. Exactly one task per confirmed
// dialog: the draft is cleared only after the store reports success, so a
// failed insert leaves the dialog intact for retry.
func (m *Machine) Create(ctx context.Context, user User) (Reply, error) {
	draft, ok := m.tracker.Get(user.ID)
	if !ok {
		return Reply{Screen: ScreenExpired}, ErrDraftIncomplete
	}
	if !draft.Complete() {
		logger.Error(ctx, "dialog", "dialog.create.incomplete",
			slog.Int64("user_id", user.ID),
			slog.String("kind", string(draft.Kind)),
		)
		return Reply{Screen: ScreenExpired}, ErrDraftIncomplete
	}

	task, err := m.creator.Create(ctx, draft.Kind, draft.Text, user.ID)
	if err != nil {
		// Tracker entry stays; the user can press create again.
		return Reply{}, err
	}

	m.tracker.Clear(user.ID)
	logger.Info(ctx, "dialog", "dialog.created",
		slog.Int64("user_id", user.ID),
		slog.String("task_id", task.ID.String()),
		slog.String("kind", string(task.Kind)),
	)
	return Reply{Screen: ScreenCreated, Kind: task.Kind, Draft: draft}, nil
}

// Apply dispatches a decoded action to the matching operation.
func (m *Machine) Apply(ctx context.Context, user User, action Action) (Reply, error) {
	switch action.Type {
	case ActionCancel:
		return m.Cancel(ctx, user), nil
	case ActionSelect:
		return m.Select(ctx, user, action.Kind)
	case ActionCreate:
		return m.Create(ctx, user)
	}
	return Reply{}, ErrUnknownAction
}
