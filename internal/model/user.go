package model

import (
	"strings"
	"time"

	"github.com/rivo/uniseg"

	"github.com/zhubert/murmur/internal/errors"
)

// Status is a user's presence.
type Status string

const (
	StatusOnline  Status = "online"
	StatusAway    Status = "away"
	StatusOffline Status = "offline"
)

// Label returns the presence text shown next to a user.
func (s Status) Label() string {
	switch s {
	case StatusOnline:
		return "Online"
	case StatusAway:
		return "Away"
	default:
		return "Offline"
	}
}

// Role is a user's privilege level.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is a directory entry.
type User struct {
	ID       string
	Name     string
	Email    string
	Status   Status
	LastSeen string // Free-form label, e.g. "5 min ago"
	Bio      string
	Avatar   string
	Role     Role
	Banned   bool
	JoinedAt time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Initial returns the first grapheme cluster of the name, used as an avatar
// placeholder. Empty names fall back to "U".
func (u User) Initial() string {
	return Initial(u.Name)
}

// Initial returns the upper-cased first grapheme cluster of name, or "U".
func Initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "U"
	}
	gr := uniseg.NewGraphemes(name)
	if !gr.Next() {
		return "U"
	}
	return strings.ToUpper(gr.Str())
}

// Presence returns the label for the user's presence, preferring the
// last-seen label for users who are not online.
func (u User) Presence() string {
	if u.Status != StatusOnline && u.LastSeen != "" {
		return "Last seen " + u.LastSeen
	}
	return u.Status.Label()
}

// Users is an ordered user collection.
type Users []User

// Find returns the user with the given ID.
func (us Users) Find(id string) (User, bool) {
	if i := us.Index(id); i >= 0 {
		return us[i], true
	}
	return User{}, false
}

// Index returns the position of the user with the given ID, or -1.
func (us Users) Index(id string) int {
	for i, u := range us {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a copy that can be modified without touching us.
func (us Users) Clone() Users {
	if us == nil {
		return nil
	}
	out := make(Users, len(us))
	copy(out, us)
	return out
}

// Validate checks that user IDs are unique and non-empty.
func (us Users) Validate() error {
	seen := make(map[string]bool, len(us))
	for _, u := range us {
		if u.ID == "" {
			return errors.E(errors.Op("model.Validate"), errors.KindInvalid, "user with empty id")
		}
		if seen[u.ID] {
			return errors.DuplicateUser(u.ID)
		}
		seen[u.ID] = true
	}
	return nil
}
