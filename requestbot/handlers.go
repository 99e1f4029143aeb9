package requestbot

import (
	"errors"
	"strings"

	"github.com/m3rciful/volunteerbot/core/telegram/callbacks"
	tghelpers "github.com/m3rciful/volunteerbot/core/telegram/helpers"
	"github.com/m3rciful/volunteerbot/dialog"
	"github.com/m3rciful/volunteerbot/tasks"

	tele "gopkg.in/telebot.v4"
)

// Handlers binds the dialog machine to Telegram updates.
type Handlers struct {
	machine *dialog.Machine
}

// NewHandlers builds the handler set over a dialog machine.
func NewHandlers(machine *dialog.Machine) *Handlers {
	return &Handlers{machine: machine}
}

// InProgress reports whether the sender has a dialog in progress.
// Satisfies the text router's Conversation interface.
func (h *Handlers) InProgress(userID int64) bool {
	return h.machine.InProgress(userID)
}

func dialogUser(c tele.Context) dialog.User {
	sender := c.Sender()
	if sender == nil {
		return dialog.User{}
	}
	return dialog.User{
		ID:        sender.ID,
		Username:  sender.Username,
		FirstName: sender.FirstName,
	}
}

// NewTask opens the kind selection screen.
func (h *Handlers) NewTask(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	reply := h.machine.Start(ctx, dialogUser(c))
	return h.render(c, reply)
}

// Help shows command usage.
func (h *Handlers) Help(c tele.Context) error {
	return tghelpers.SendHTML(c, helpText)
}

// OnAction handles every dialog button press. The callback key and payload
// are re-joined into the wire form and decoded once at this boundary.
func (h *Handlers) OnAction(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	user := dialogUser(c)

	action, err := dialog.ParseAction(wireAction(c))
	if err != nil {
		_ = c.Respond(&tele.CallbackResponse{Text: "Unsupported action"})
		return err
	}

	reply, err := h.machine.Apply(ctx, user, action)
	switch {
	case err == nil:
		return h.render(c, reply)
	case errors.Is(err, dialog.ErrKindDisabled):
		return c.Respond(&tele.CallbackResponse{Text: kindDisabledText})
	case errors.Is(err, dialog.ErrDraftIncomplete):
		// The dialog this button belonged to is gone, likely a restart.
		if rErr := h.render(c, reply); rErr != nil {
			return rErr
		}
		return err
	default:
		var se *tasks.StoreError
		if errors.As(err, &se) {
			if sErr := tghelpers.SendHTML(c, storeFailureText); sErr != nil {
				return sErr
			}
		}
		return err
	}
}

// HandleText routes free-form input into the dialog.
func (h *Handlers) HandleText(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	reply, err := h.machine.Text(ctx, dialogUser(c), c.Text())
	if errors.Is(err, dialog.ErrNoActiveDialog) {
		return tghelpers.SendHTML(c, idleHintText)
	}
	if err != nil {
		return err
	}
	return h.render(c, reply)
}

// IdleHint answers messages that arrive outside any dialog.
func (h *Handlers) IdleHint(c tele.Context) error {
	return tghelpers.SendHTML(c, idleHintText)
}

func (h *Handlers) render(c tele.Context, reply dialog.Reply) error {
	switch reply.Screen {
	case dialog.ScreenCancelled:
		return tghelpers.SendHTML(c, cancelledText)
	case dialog.ScreenChooseKind:
		return tghelpers.SendHTML(c, kindSelectionText, kindSelectMarkup())
	case dialog.ScreenEnterText:
		// Edit the selection message in place so the chat stays compact.
		return tghelpers.EditOrSendHTML(c, inputText[reply.Kind], cancelMarkup())
	case dialog.ScreenConfirm:
		return tghelpers.SendHTML(c, confirmationText(reply.Draft, dialogUser(c)), confirmMarkup())
	case dialog.ScreenCreated:
		return tghelpers.SendHTML(c, createdText(reply.Draft))
	case dialog.ScreenExpired:
		return tghelpers.SendHTML(c, expiredText)
	}
	return nil
}

// wireAction reconstructs the slash-delimited action payload from the
// callback key and payload.
func wireAction(c tele.Context) string {
	key := strings.ToUpper(callbacks.CallbackKey(c))
	payload := callbacks.CallbackPayload(c)
	if payload == "" {
		return key
	}
	return key + "/" + payload
}
