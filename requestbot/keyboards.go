package requestbot

import (
	"github.com/m3rciful/volunteerbot/core/telegram/keyboard"
	"github.com/m3rciful/volunteerbot/tasks"

	tele "gopkg.in/telebot.v4"
)

// Callback keys registered with the registry. The select payload carries
// the chosen kind.
const (
	cbCancel = "cancel"
	cbSelect = "select"
	cbCreate = "create"
)

const (
	cancelButton     = "❌ Cancel"
	createTaskButton = "❇️ Create task"
	shelterButton    = "⛺️ Shelter"
	transportButton  = "🚗 Transport"
)

func kindSelectMarkup() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{
			{Text: shelterButton, Unique: cbSelect, Data: string(tasks.KindShelter)},
			{Text: transportButton, Unique: cbSelect, Data: string(tasks.KindTransport)},
		},
		[]keyboard.InlineBtn{
			{Text: cancelButton, Unique: cbCancel},
		},
	)
}

func cancelMarkup() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{
			{Text: cancelButton, Unique: cbCancel},
		},
	)
}

func confirmMarkup() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{
			{Text: cancelButton, Unique: cbCancel},
			{Text: createTaskButton, Unique: cbCreate},
		},
	)
}
