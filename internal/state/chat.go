package state

import (
	"strings"
	"time"

	"github.com/zhubert/murmur/internal/auth"
	"github.com/zhubert/murmur/internal/errors"
	"github.com/zhubert/murmur/internal/model"
)

var emojiPalette = []string{"😊", "😄", "😍", "🤔", "👍", "❤️", "🔥", "🎉", "😂", "🚀", "💪", "✨"}

// Emojis returns the picker palette.
func Emojis() []string {
	out := make([]string, len(emojiPalette))
	copy(out, emojiPalette)
	return out
}

// SelectChat activates a chat and switches to the fullscreen thread.
func SelectChat(s State, id string) (State, Effect) {
	if s.Chats.Index(id) < 0 {
		return s, debug("select skipped", "error", errors.ChatNotFound(id))
	}
	s.ActiveChat = id
	s.Fullscreen = true
	s.EmojiPicker = false
	return s, debug("chat selected", "chatID", id)
}

// ExitFullscreen returns to the three-panel layout, keeping the active chat.
func ExitFullscreen(s State) State {
	s.Fullscreen = false
	s.EmojiPicker = false
	return s
}

// SetDraft replaces the composer text.
func SetDraft(s State, text string) State {
	s.Draft = text
	return s
}

// ToggleEmojiPicker shows or hides the picker.
func ToggleEmojiPicker(s State) State {
	s.EmojiPicker = !s.EmojiPicker
	return s
}

// AppendEmoji adds a glyph to the end of the draft and closes the picker.
func AppendEmoji(s State, glyph string) State {
	s.Draft += glyph
	s.EmojiPicker = false
	return s
}

// Send dispatches the draft. Blank drafts and a missing active chat are
// ignored. The draft is always cleared on dispatch; in local-echo mode it
// also lands in the active thread.
func Send(s State, ids auth.IDGenerator, now time.Time) (State, Effect) {
	if strings.TrimSpace(s.Draft) == "" {
		return s, Effect{}
	}
	i := s.Chats.Index(s.ActiveChat)
	if i < 0 {
		return s, Effect{}
	}

	text := s.Draft
	s.Draft = ""
	eff := info("sending message", "chatID", s.ActiveChat, "text", text, "delivery", string(s.Delivery))

	if s.Delivery != DeliveryLocalEcho {
		return s, eff
	}

	msg := model.Message{
		ID:     ids.NewID(),
		Sender: model.Own(),
		Text:   text,
		SentAt: now,
	}
	chats := s.Chats.Clone()
	thread := make(model.Messages, len(chats[i].Messages), len(chats[i].Messages)+1)
	copy(thread, chats[i].Messages)
	chats[i].Messages = append(thread, msg)
	last := msg
	chats[i].LastMessage = &last
	s.Chats = chats
	return s, eff
}

// SetSearch replaces the chat-list filter.
func SetSearch(s State, text string) State {
	s.Search = text
	return s
}

// FilteredChats returns chats whose name contains search, ignoring case.
func FilteredChats(chats model.Chats, search string) model.Chats {
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return chats
	}
	var out model.Chats
	for _, c := range chats {
		if strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out
}

// Alignment is where a message bubble sits in the thread.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// MessageAlignment puts own messages on the right and peer messages on the
// left.
func MessageAlignment(m model.Message) Alignment {
	if m.Sender.IsOwn() {
		return AlignRight
	}
	return AlignLeft
}

// Receipt returns the read marker for own messages and "" for peers.
func Receipt(m model.Message) string {
	if !m.Sender.IsOwn() {
		return ""
	}
	if m.Read {
		return "✓✓"
	}
	return "✓"
}
