package model

import "time"

// SenderKind tags who wrote a message.
type SenderKind int

const (
	// SenderOwn marks messages written by the session user.
	SenderOwn SenderKind = iota
	// SenderPeer marks messages written by another user.
	SenderPeer
)

// Sender identifies who wrote a message.
type Sender struct {
	Kind   SenderKind
	UserID string // Set only for SenderPeer
}

// Own is the sender for messages written by the session user.
func Own() Sender {
	return Sender{Kind: SenderOwn}
}

// Peer is the sender for messages written by another user.
func Peer(userID string) Sender {
	return Sender{Kind: SenderPeer, UserID: userID}
}

// IsOwn reports whether the message was written by the session user.
func (s Sender) IsOwn() bool {
	return s.Kind == SenderOwn
}

func (s Sender) String() string {
	if s.IsOwn() {
		return "own"
	}
	return "peer:" + s.UserID
}

// Message is a single entry in a chat thread.
type Message struct {
	ID     string
	Sender Sender
	Text   string
	SentAt time.Time
	Read   bool
}

// Messages is an ordered thread.
type Messages []Message

// DanglingSenders returns peer user IDs that don't resolve in users, in
// first-seen order.
func (ms Messages) DanglingSenders(users Users) []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range ms {
		if m.Sender.IsOwn() {
			continue
		}
		id := m.Sender.UserID
		if seen[id] {
			continue
		}
		seen[id] = true
		if _, ok := users.Find(id); !ok {
			out = append(out, id)
		}
	}
	return out
}

// Last returns the final message of the thread.
func (ms Messages) Last() (Message, bool) {
	if len(ms) == 0 {
		return Message{}, false
	}
	return ms[len(ms)-1], true
}
