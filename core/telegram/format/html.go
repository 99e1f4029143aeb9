package format

import (
	"fmt"
	"html"
)

// EscapeHTML escapes user-supplied text for Telegram HTML parse mode.
func EscapeHTML(text string) string {
	return html.EscapeString(text)
}

// Bold wraps text in <b> tags without escaping it.
func Bold(text string) string {
	return "<b>" + text + "</b>"
}

// UserMention renders a public mention for a Telegram user.
// A non-empty username yields "@username"; otherwise an inline mention
// link by numeric ID is produced so users without a handle stay reachable.
func UserMention(username string, id int64, firstName string) string {
	if username != "" {
		return "@" + username
	}
	name := firstName
	if name == "" {
		name = fmt.Sprintf("user %d", id)
	}
	return fmt.Sprintf(`<a href="tg://user?id=%d">%s</a>`, id, EscapeHTML(name))
}
