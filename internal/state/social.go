package state

import (
	"fmt"

	"github.com/zhubert/murmur/internal/model"
)

// CallKind is the kind of call a thread header can request.
type CallKind string

const (
	CallVoice CallKind = "voice"
	CallVideo CallKind = "video"
)

// MarkStorySeen flags a user's story as seen.
func MarkStorySeen(s State, userID string) State {
	for i, st := range s.Stories {
		if st.UserID != userID {
			continue
		}
		if st.Seen {
			return s
		}
		stories := s.Stories.Clone()
		stories[i].Seen = true
		s.Stories = stories
		return s
	}
	return s
}

// NextUnseenStory returns the first story not yet seen.
func NextUnseenStory(stories model.Stories) (model.Story, bool) {
	for _, st := range stories {
		if !st.Seen {
			return st, true
		}
	}
	return model.Story{}, false
}

// RequestCall records a call request for the active chat. Calls are not
// placed; the effect carries a status line saying so.
func RequestCall(s State, kind CallKind) (State, Effect) {
	c, ok := s.Active()
	if s.Variant != model.VariantSocial || !ok {
		return s, Effect{}
	}
	eff := info("call requested", "chatID", c.ID, "kind", string(kind))
	eff.Status = fmt.Sprintf("%s call to %s is not available yet", kindLabel(kind), c.Name)
	return s, eff
}

func kindLabel(k CallKind) string {
	if k == CallVideo {
		return "Video"
	}
	return "Voice"
}
