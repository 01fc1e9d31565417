// Package state holds murmur's view state and the transitions that move it.
//
// State is a plain value. Every transition takes a State and returns a new
// one; collections are cloned before they are changed, so a State handed to
// the renderer is never modified underneath it. Anything a transition wants
// logged is returned in an Effect for the caller to emit.
package state

import (
	"fmt"
	"strings"

	"github.com/zhubert/murmur/internal/model"
	"github.com/zhubert/murmur/internal/seed"
)

// AuthMode selects between the sign-in and sign-up cards.
type AuthMode int

const (
	AuthLogin AuthMode = iota
	AuthRegister
)

func (m AuthMode) String() string {
	if m == AuthRegister {
		return "register"
	}
	return "login"
}

// AuthForm holds the auth card fields.
type AuthForm struct {
	Email    string
	Password string
	Name     string // Register mode only
}

// AuthField names an AuthForm field.
type AuthField int

const (
	AuthEmail AuthField = iota
	AuthPassword
	AuthName
)

// ProfileForm holds the profile editor fields.
type ProfileForm struct {
	Name   string
	Bio    string
	Avatar string
}

// ProfileField names a ProfileForm field.
type ProfileField int

const (
	ProfileName ProfileField = iota
	ProfileBio
	ProfileAvatar
)

// Delivery controls what Send does with the draft.
type Delivery string

const (
	// DeliveryDiscard logs the draft and drops it.
	DeliveryDiscard Delivery = "discard"
	// DeliveryLocalEcho appends the draft to the active thread.
	DeliveryLocalEcho Delivery = "local-echo"
)

// ParseDelivery parses a delivery mode name.
func ParseDelivery(s string) (Delivery, error) {
	switch d := Delivery(strings.ToLower(strings.TrimSpace(s))); d {
	case DeliveryDiscard, DeliveryLocalEcho:
		return d, nil
	case "":
		return DeliveryDiscard, nil
	}
	return "", fmt.Errorf("unknown delivery mode %q (want discard or local-echo)", s)
}

// State is the complete view state of a murmur session.
type State struct {
	Variant       model.Variant
	Authenticated bool
	AuthMode      AuthMode
	AuthForm      AuthForm
	Session       string // Session user ID; empty until signed in

	Users   model.Users
	Chats   model.Chats
	Stories model.Stories

	ActiveChat  string
	Fullscreen  bool
	Draft       string
	EmojiPicker bool
	Search      string

	ProfileOpen bool
	AdminOpen   bool
	ProfileForm ProfileForm

	Delivery Delivery
}

// New returns the signed-out state for a dataset.
func New(variant model.Variant, ds seed.Dataset, delivery Delivery) State {
	if delivery == "" {
		delivery = DeliveryDiscard
	}
	return State{
		Variant:  variant,
		AuthMode: AuthLogin,
		Users:    ds.Users.Clone(),
		Chats:    ds.Chats.Clone(),
		Stories:  ds.Stories.Clone(),
		Delivery: delivery,
	}
}

// SessionUser resolves the session user through Users.
func (s State) SessionUser() (model.User, bool) {
	if s.Session == "" {
		return model.User{}, false
	}
	return s.Users.Find(s.Session)
}

// IsAdmin reports whether the session user holds the admin role.
func (s State) IsAdmin() bool {
	u, ok := s.SessionUser()
	return ok && u.IsAdmin()
}

// Active returns the selected chat.
func (s State) Active() (model.Chat, bool) {
	if s.ActiveChat == "" {
		return model.Chat{}, false
	}
	return s.Chats.Find(s.ActiveChat)
}
