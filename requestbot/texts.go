package requestbot

import (
	"fmt"

	"github.com/m3rciful/volunteerbot/core/telegram/format"
	"github.com/m3rciful/volunteerbot/dialog"
	"github.com/m3rciful/volunteerbot/tasks"
)

const (
	kindSelectionText = "<b>Create new task</b>\n\nChoose the type of the task."
	cancelledText     = "Cancelled."
	expiredText       = "This dialog has expired. Use /newtask to start over."
	idleHintText      = "Use /newtask to create a task."
	storeFailureText  = "Could not save your task. Please try again."
	kindDisabledText  = "This task type is not available yet."

	helpText = "<b>Volunteer request bot</b>\n\n" +
		"/newtask — create a new task\n" +
		"/help — show this message\n\n" +
		"Pick a task type, describe what you need, and confirm. " +
		"Community volunteers will reach out to you."
)

var inputText = map[tasks.Kind]string{
	tasks.KindShelter: "<b>⛺️ Looking for shelter</b>\n\n" +
		"Enter your request below. Make sure to include #LocationHashtag.",
	tasks.KindTransport: "<b>🚗 Looking for transport</b>\n\n" +
		"Enter your request below. Make sure to include #LocationHashtag for the source and destination locations.",
}

var confirmationHeader = map[tasks.Kind]string{
	tasks.KindShelter:   "<b>⛺️ You are about to submit the following shelter request:</b>",
	tasks.KindTransport: "<b>🚗 You are about to submit the following transport request:</b>",
}

var createdHeader = map[tasks.Kind]string{
	tasks.KindShelter:   "<b>⛺️ Shelter request created:</b>",
	tasks.KindTransport: "<b>🚗 Transport request created:</b>",
}

// confirmationText renders the confirmation screen: header, draft text, and
// the mention that will be shown publicly next to the task.
func confirmationText(draft dialog.Draft, user dialog.User) string {
	mention := format.UserMention(user.Username, user.ID, user.FirstName)
	return fmt.Sprintf("%s\n\n%s\n\n"+
		"Your telegram account (%s) will be displayed publicly. Community members will use it to reach you.\n"+
		"Please make sure to mark this task as “Done” when your request is fulfilled.",
		confirmationHeader[draft.Kind],
		format.EscapeHTML(draft.Text),
		mention,
	)
}

// createdText renders the final screen after the task is stored.
func createdText(draft dialog.Draft) string {
	return fmt.Sprintf("%s\n\n%s", createdHeader[draft.Kind], format.EscapeHTML(draft.Text))
}
