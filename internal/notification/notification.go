// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/zhubert/murmur/internal/logger"
	"github.com/zhubert/murmur/internal/model"
)

// AppName is the notification title.
const AppName = "murmur"

type notifyFunc func(title, message string, icon any) error

var notify notifyFunc = beeep.Notify

// SetNotifier replaces the notification backend. Tests only.
func SetNotifier(fn func(title, message string, icon any) error) {
	notify = fn
}

// ResetNotifier restores the beeep backend.
func ResetNotifier() {
	notify = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title, "message", message)
	// Empty icon lets beeep pick the platform default
	err := notify(title, message, "")
	if err != nil {
		log.Warn("failed to send notification", "error", err)
	}
	return err
}

// UnreadSummary describes the unread backlog across chats, or "" when there
// is nothing unread.
func UnreadSummary(chats model.Chats) string {
	total := chats.TotalUnread()
	if total == 0 {
		return ""
	}
	var withUnread int
	for _, c := range chats {
		if c.Unread > 0 {
			withUnread++
		}
	}
	noun := "message"
	if total != 1 {
		noun = "messages"
	}
	if withUnread == 1 {
		return fmt.Sprintf("%d unread %s", total, noun)
	}
	return fmt.Sprintf("%d unread %s in %d chats", total, noun, withUnread)
}

// NotifyUnread sends the unread summary for chats. It does nothing when no
// chat has unread messages and reports whether a notification was attempted.
func NotifyUnread(chats model.Chats) (bool, error) {
	summary := UnreadSummary(chats)
	if summary == "" {
		return false, nil
	}
	return true, Send(AppName, summary)
}
