package taskbot

import (
	"errors"

	"github.com/google/uuid"

	"github.com/m3rciful/volunteerbot/core/telegram/callbacks"
	tghelpers "github.com/m3rciful/volunteerbot/core/telegram/helpers"
	"github.com/m3rciful/volunteerbot/core/telegram/keyboard"
	"github.com/m3rciful/volunteerbot/tasks"

	tele "gopkg.in/telebot.v4"
)

const (
	cbTake = "take"
	cbDone = "done"
)

const (
	takeButton = "🙋 Take"
	doneButton = "✅ Done"
)

// Handlers binds the task service to Telegram updates.
type Handlers struct {
	service *tasks.Service
}

// NewHandlers builds the handler set over the task service.
func NewHandlers(service *tasks.Service) *Handlers {
	return &Handlers{service: service}
}

// AllTasks posts every open task as its own message with action buttons
// and records where each task is displayed.
func (h *Handlers) AllTasks(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	list, err := h.service.ListOpen(ctx)
	if err != nil {
		if sErr := tghelpers.SendHTML(c, listFailureText); sErr != nil {
			return sErr
		}
		return err
	}
	if len(list) == 0 {
		return tghelpers.SendHTML(c, noOpenTasksText)
	}

	for _, t := range list {
		// Sent synchronously: the message ID is needed for task_messages.
		msg, err := c.Bot().Send(c.Recipient(), taskMessageText(t), &tele.SendOptions{
			ParseMode:   tele.ModeHTML,
			ReplyMarkup: taskMarkup(t),
		})
		if err != nil {
			return err
		}
		if chat := c.Chat(); chat != nil && msg != nil {
			_ = h.service.RecordMessage(ctx, t.ID, chat.ID, msg.ID)
		}
	}
	return nil
}

// Help shows command usage.
func (h *Handlers) Help(c tele.Context) error {
	return tghelpers.SendHTML(c, helpText)
}

// Take assigns the task in the pressed message to the pressing volunteer.
func (h *Handlers) Take(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	id, err := taskIDFromCallback(c)
	if err != nil {
		_ = c.Respond(&tele.CallbackResponse{Text: taskGoneText})
		return err
	}
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	switch err := h.service.Assign(ctx, id, sender.ID); {
	case err == nil:
		return h.refresh(c, id)
	case errors.Is(err, tasks.ErrInvalidTransition):
		return c.Respond(&tele.CallbackResponse{Text: alreadyTakenText})
	case errors.Is(err, tasks.ErrNotFound):
		return c.Respond(&tele.CallbackResponse{Text: taskGoneText})
	default:
		return err
	}
}

// Done closes the task in the pressed message.
func (h *Handlers) Done(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	id, err := taskIDFromCallback(c)
	if err != nil {
		_ = c.Respond(&tele.CallbackResponse{Text: taskGoneText})
		return err
	}

	switch err := h.service.Close(ctx, id); {
	case err == nil:
		return h.refresh(c, id)
	case errors.Is(err, tasks.ErrInvalidTransition):
		return c.Respond(&tele.CallbackResponse{Text: notTakenYetText})
	case errors.Is(err, tasks.ErrNotFound):
		return c.Respond(&tele.CallbackResponse{Text: taskGoneText})
	default:
		return err
	}
}

// IdleHint answers unexpected free-form messages.
func (h *Handlers) IdleHint(c tele.Context) error {
	return tghelpers.SendHTML(c, idleHintText)
}

// refresh re-renders the task message after a status change.
func (h *Handlers) refresh(c tele.Context, id uuid.UUID) error {
	ctx := tghelpers.BuildContext(c)
	t, err := h.service.Get(ctx, id)
	if err != nil {
		return err
	}
	return tghelpers.EditHTML(c, taskMessageText(t), taskMarkup(t))
}

func taskIDFromCallback(c tele.Context) (uuid.UUID, error) {
	return uuid.Parse(callbacks.CallbackPayload(c))
}

// taskMarkup returns the action buttons matching the task's status.
// Closed tasks get no buttons.
func taskMarkup(t tasks.Task) *tele.ReplyMarkup {
	switch t.Status {
	case tasks.StatusUnassigned:
		return keyboard.InlineButtonsRows([]keyboard.InlineBtn{
			{Text: takeButton, Unique: cbTake, Data: t.ID.String()},
		})
	case tasks.StatusAssigned:
		return keyboard.InlineButtonsRows([]keyboard.InlineBtn{
			{Text: doneButton, Unique: cbDone, Data: t.ID.String()},
		})
	}
	return nil
}
