package state

import (
	"log/slog"
	"time"

	"github.com/zhubert/murmur/internal/auth"
	"github.com/zhubert/murmur/internal/model"
)

// DefaultUserName is given to sign-ups that leave the name blank.
const DefaultUserName = "User"

// SetAuthField edits one auth card field.
func SetAuthField(s State, field AuthField, value string) State {
	switch field {
	case AuthEmail:
		s.AuthForm.Email = value
	case AuthPassword:
		s.AuthForm.Password = value
	case AuthName:
		s.AuthForm.Name = value
	}
	return s
}

// ToggleAuthMode flips between login and register, keeping typed values.
func ToggleAuthMode(s State) State {
	if s.AuthMode == AuthLogin {
		s.AuthMode = AuthRegister
	} else {
		s.AuthMode = AuthLogin
	}
	return s
}

// SubmitAuth signs in with the auth card. An empty email or password leaves
// the state untouched. Credentials granted admin adopt the existing admin
// record; everything else registers a fresh user.
func SubmitAuth(s State, v auth.Verifier, ids auth.IDGenerator, now time.Time) (State, Effect) {
	if s.Authenticated || s.AuthForm.Email == "" || s.AuthForm.Password == "" {
		return s, Effect{}
	}

	grant := v.Verify(s.AuthForm.Email, s.AuthForm.Password)
	if grant.Admin {
		if u, ok := s.Users.Find(grant.UserID); ok {
			s.Session = u.ID
			s.ProfileForm = ProfileForm{Name: u.Name, Bio: u.Bio, Avatar: u.Avatar}
			s.Authenticated = true
			s.AuthForm.Password = ""
			return s, info("signed in", "userID", u.ID, "role", string(u.Role))
		}
	}

	name := s.AuthForm.Name
	if name == "" {
		name = DefaultUserName
	}
	u := model.User{
		ID:       ids.NewID(),
		Name:     name,
		Email:    s.AuthForm.Email,
		Status:   model.StatusOnline,
		Role:     model.RoleUser,
		JoinedAt: now,
	}
	s.Users = append(s.Users.Clone(), u)
	s.Session = u.ID
	s.ProfileForm = ProfileForm{Name: u.Name}
	s.Authenticated = true
	s.AuthForm.Password = ""

	eff := info("signed in", "userID", u.ID, "role", string(u.Role), "mode", s.AuthMode.String())
	if grant.Admin {
		eff = eff.with(slog.LevelWarn, "admin record missing, registered a regular user", "adminID", grant.UserID)
	}
	return s, eff
}
