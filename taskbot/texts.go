package taskbot

import (
	"fmt"

	"github.com/m3rciful/volunteerbot/core/telegram/format"
	"github.com/m3rciful/volunteerbot/tasks"
)

const (
	noOpenTasksText  = "No open tasks right now."
	idleHintText     = "Use /alltasks to view open tasks."
	listFailureText  = "Could not load tasks. Please try again."
	alreadyTakenText = "This task is already taken."
	notTakenYetText  = "Take the task before marking it done."
	taskGoneText     = "This task no longer exists."

	helpText = "<b>Volunteer task bot</b>\n\n" +
		"/alltasks — view open tasks\n" +
		"/help — show this message\n\n" +
		"Press “🙋 Take” to claim a task and “✅ Done” once it is finished."
)

var kindHeader = map[tasks.Kind]string{
	tasks.KindShelter:   "⛺️ Shelter request",
	tasks.KindTransport: "🚗 Transport request",
	tasks.KindVolunteer: "🙋 Volunteer request",
	tasks.KindQuestion:  "❔ Question",
	tasks.KindOther:     "Other request",
}

var statusLabel = map[tasks.Status]string{
	tasks.StatusUnassigned: "🔴 Needs a volunteer",
	tasks.StatusAssigned:   "🟡 In progress",
	tasks.StatusClosed:     "✅ Done",
}

// taskMessageText renders one task for the open tasks list.
func taskMessageText(t tasks.Task) string {
	header := kindHeader[t.Kind]
	if header == "" {
		header = string(t.Kind)
	}
	return fmt.Sprintf("<b>%s</b>\n%s\n\n%s",
		header,
		statusLabel[t.Status],
		format.EscapeHTML(t.Text),
	)
}
