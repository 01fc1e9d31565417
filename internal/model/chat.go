package model

// Chat is a conversation shown in the chat list.
type Chat struct {
	ID           string
	Name         string
	Avatar       string
	LastMessage  *Message // Held by value; not a pointer into Messages
	Unread       int
	Group        bool
	Participants []string
	Messages     Messages
}

// Chats is an ordered chat collection.
type Chats []Chat

// Find returns the chat with the given ID.
func (cs Chats) Find(id string) (Chat, bool) {
	if i := cs.Index(id); i >= 0 {
		return cs[i], true
	}
	return Chat{}, false
}

// Index returns the position of the chat with the given ID, or -1.
func (cs Chats) Index(id string) int {
	for i, c := range cs {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a shallow copy of the collection.
func (cs Chats) Clone() Chats {
	if cs == nil {
		return nil
	}
	out := make(Chats, len(cs))
	copy(out, cs)
	return out
}

// TotalUnread sums unread counts across chats.
func (cs Chats) TotalUnread() int {
	n := 0
	for _, c := range cs {
		if c.Unread > 0 {
			n += c.Unread
		}
	}
	return n
}

// Story is a social-variant status update owned by a user.
type Story struct {
	UserID string
	Seen   bool
}

// Stories is an ordered story strip.
type Stories []Story

// Clone returns a copy of the strip.
func (ss Stories) Clone() Stories {
	if ss == nil {
		return nil
	}
	out := make(Stories, len(ss))
	copy(out, ss)
	return out
}
