package state

import (
	"log/slog"

	"github.com/zhubert/murmur/internal/errors"
	"github.com/zhubert/murmur/internal/model"
)

// OpenAdmin opens the admin panel. Only admins of the admin variant get it.
func OpenAdmin(s State) (State, Effect) {
	if s.Variant != model.VariantAdmin || !s.IsAdmin() {
		return s, Effect{}.with(slog.LevelDebug, "admin panel refused", "error", errors.NotAdmin(s.Session))
	}
	s.AdminOpen = true
	return s, Effect{}
}

// CloseAdmin closes the admin panel.
func CloseAdmin(s State) State {
	s.AdminOpen = false
	return s
}

// ToggleBan flips the banned flag on one user.
func ToggleBan(s State, id string) (State, Effect) {
	i := s.Users.Index(id)
	if i < 0 {
		return s, debug("ban skipped", "error", errors.UserNotFound(id))
	}
	users := s.Users.Clone()
	users[i].Banned = !users[i].Banned
	s.Users = users
	return s, info("ban toggled", "userID", id, "banned", users[i].Banned)
}

// DeleteUser removes one user. Chats and messages that reference the user
// are left as they are.
func DeleteUser(s State, id string) (State, Effect) {
	i := s.Users.Index(id)
	if i < 0 {
		return s, debug("delete skipped", "error", errors.UserNotFound(id))
	}
	users := make(model.Users, 0, len(s.Users)-1)
	users = append(users, s.Users[:i]...)
	users = append(users, s.Users[i+1:]...)
	s.Users = users
	return s, info("user deleted", "userID", id)
}

// Stats are the admin panel counters.
type Stats struct {
	Total  int
	Online int
	Banned int
	Chats  int
}

// ComputeStats counts over the current collections.
func ComputeStats(users model.Users, chats model.Chats) Stats {
	st := Stats{Total: len(users), Chats: len(chats)}
	for _, u := range users {
		if u.Status == model.StatusOnline {
			st.Online++
		}
		if u.Banned {
			st.Banned++
		}
	}
	return st
}

// AdminRoster lists everyone but the session user.
func AdminRoster(users model.Users, session string) model.Users {
	out := make(model.Users, 0, len(users))
	for _, u := range users {
		if u.ID != session {
			out = append(out, u)
		}
	}
	return out
}

// OnlineRoster lists the contacts panel: everyone but the session user and
// banned users.
func OnlineRoster(users model.Users, session string) model.Users {
	out := make(model.Users, 0, len(users))
	for _, u := range users {
		if u.ID != session && !u.Banned {
			out = append(out, u)
		}
	}
	return out
}
