package state

import (
	"testing"

	"github.com/zhubert/murmur/internal/auth"
	"github.com/zhubert/murmur/internal/model"
)

func TestSubmitAuth_RequiresEmailAndPassword(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"both empty", "", ""},
		{"empty password", "user@example.com", ""},
		{"empty email", "", "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := adminState(t)
			s = SetAuthField(s, AuthEmail, tt.email)
			s = SetAuthField(s, AuthPassword, tt.password)

			got, eff := SubmitAuth(s, testVerifier, &seqIDs{}, testNow)
			if got.Authenticated {
				t.Error("state should remain unauthenticated")
			}
			if got.Session != "" {
				t.Errorf("Session = %q, want empty", got.Session)
			}
			if len(got.Users) != len(s.Users) {
				t.Error("no user should be added")
			}
			if !eff.Empty() {
				t.Errorf("no effect expected, got %+v", eff)
			}
		})
	}
}

func TestSubmitAuth_RegularUser(t *testing.T) {
	s := adminState(t)
	s = ToggleAuthMode(s)
	s = SetAuthField(s, AuthName, "Olga")
	s = SetAuthField(s, AuthEmail, "olga@example.com")
	s = SetAuthField(s, AuthPassword, "pw")

	got, eff := SubmitAuth(s, testVerifier, &seqIDs{}, testNow)
	if !got.Authenticated {
		t.Fatal("expected authenticated")
	}
	u, ok := got.SessionUser()
	if !ok {
		t.Fatal("session user should resolve")
	}
	if u.ID != "id-1" || u.Role != model.RoleUser || u.Name != "Olga" {
		t.Errorf("unexpected user %+v", u)
	}
	if u.Status != model.StatusOnline || !u.JoinedAt.Equal(testNow) || u.Email != "olga@example.com" {
		t.Errorf("unexpected user fields %+v", u)
	}
	if len(got.Users) != len(s.Users)+1 {
		t.Errorf("len(Users) = %d, want %d", len(got.Users), len(s.Users)+1)
	}
	if len(s.Users) != 1 {
		t.Error("input state's users were modified")
	}
	if got.ProfileForm != (ProfileForm{Name: "Olga"}) {
		t.Errorf("ProfileForm = %+v", got.ProfileForm)
	}
	if len(eff.Records) == 0 || eff.Records[0].Msg != "signed in" {
		t.Errorf("expected sign-in record, got %+v", eff.Records)
	}
}

func TestSubmitAuth_DefaultName(t *testing.T) {
	s := signIn(t, adminState(t), "anon@example.com", "pw")
	u, _ := s.SessionUser()
	if u.Name != DefaultUserName {
		t.Errorf("Name = %q, want %q", u.Name, DefaultUserName)
	}
}

func TestSubmitAuth_OnlyExactAdminPairIsAdmin(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		password  string
		wantAdmin bool
	}{
		{"admin pair", "himo@admin.com", "12345678", true},
		{"wrong password", "himo@admin.com", "1234567", false},
		{"wrong email", "himo@messenger.com", "12345678", false},
		{"unrelated", "x@y.z", "pw", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := signIn(t, adminState(t), tt.email, tt.password)
			u, ok := s.SessionUser()
			if !ok {
				t.Fatal("session user should resolve")
			}
			if u.IsAdmin() != tt.wantAdmin {
				t.Errorf("IsAdmin() = %v, want %v", u.IsAdmin(), tt.wantAdmin)
			}
			if tt.wantAdmin {
				if u.ID != "admin" {
					t.Errorf("admin session should adopt the existing record, got %q", u.ID)
				}
				if len(s.Users) != 1 {
					t.Errorf("admin sign-in must not add users, have %d", len(s.Users))
				}
				if s.ProfileForm.Name != "Himo" || s.ProfileForm.Bio != "System administrator" {
					t.Errorf("ProfileForm = %+v", s.ProfileForm)
				}
			} else if u.ID != "id-1" {
				t.Errorf("regular sign-in should mint a fresh ID, got %q", u.ID)
			}
		})
	}
}

func TestSubmitAuth_AdminRecordMissing(t *testing.T) {
	s := adminState(t)
	s.Users = nil
	s = SetAuthField(s, AuthEmail, "himo@admin.com")
	s = SetAuthField(s, AuthPassword, "12345678")

	got, eff := SubmitAuth(s, testVerifier, &seqIDs{}, testNow)
	if !got.Authenticated {
		t.Fatal("expected authenticated")
	}
	if got.IsAdmin() {
		t.Error("without an admin record the session must be a regular user")
	}
	if len(eff.Records) != 2 {
		t.Errorf("expected sign-in and warning records, got %+v", eff.Records)
	}
}

func TestSubmitAuth_RealVerifier(t *testing.T) {
	v, err := auth.NewStaticVerifier(auth.AdminCredentials{
		Email: "himo@admin.com", Password: "12345678", UserID: "admin",
	})
	if err != nil {
		t.Fatal(err)
	}
	s := adminState(t)
	s = SetAuthField(s, AuthEmail, "Himo@Admin.com")
	s = SetAuthField(s, AuthPassword, "12345678")
	s, _ = SubmitAuth(s, v, auth.UUIDGenerator{}, testNow)
	if !s.IsAdmin() {
		t.Error("StaticVerifier should grant admin")
	}
}

func TestSubmitAuth_AlreadyAuthenticated(t *testing.T) {
	s := signedInAdmin(t)
	s = SetAuthField(s, AuthEmail, "x@y.z")
	s = SetAuthField(s, AuthPassword, "pw")
	got, _ := SubmitAuth(s, testVerifier, &seqIDs{}, testNow)
	if got.Session != "admin" || len(got.Users) != len(s.Users) {
		t.Error("second submit should be ignored")
	}
}

func TestToggleAuthMode(t *testing.T) {
	s := adminState(t)
	s = SetAuthField(s, AuthEmail, "keep@me.com")
	s = ToggleAuthMode(s)
	if s.AuthMode != AuthRegister {
		t.Errorf("AuthMode = %v, want register", s.AuthMode)
	}
	if s.AuthForm.Email != "keep@me.com" {
		t.Error("toggling mode should keep typed values")
	}
	s = ToggleAuthMode(s)
	if s.AuthMode != AuthLogin {
		t.Errorf("AuthMode = %v, want login", s.AuthMode)
	}
	if AuthRegister.String() != "register" || AuthLogin.String() != "login" {
		t.Error("AuthMode.String() mismatch")
	}
}
