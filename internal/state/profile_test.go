package state

import (
	"testing"

	"github.com/zhubert/murmur/internal/model"
)

func TestOpenProfile(t *testing.T) {
	s := signedInAdmin(t)
	s.ProfileForm = ProfileForm{Name: "stale"}

	s = OpenProfile(s)
	if !s.ProfileOpen {
		t.Fatal("ProfileOpen = false")
	}
	if s.ProfileForm.Name != "Himo" {
		t.Errorf("ProfileForm.Name = %q, want Himo", s.ProfileForm.Name)
	}

	if got := OpenProfile(adminState(t)); got.ProfileOpen {
		t.Error("signed-out state should not open the profile")
	}
}

func TestSaveProfile_UpdatesOnlySessionUser(t *testing.T) {
	other := model.User{ID: "u2", Name: "Bob", Bio: "bob bio", Avatar: "bob.png"}
	s := withUsers(signedInAdmin(t), other)
	before := s.Users.Clone()

	s = OpenProfile(s)
	s = SetProfileField(s, ProfileName, "Himo Prime")
	s = SetProfileField(s, ProfileBio, "Root")
	s = SetProfileField(s, ProfileAvatar, "https://example.com/a.png")
	got, eff := SaveProfile(s)

	if got.ProfileOpen {
		t.Error("save should close the editor")
	}
	u, _ := got.SessionUser()
	if u.Name != "Himo Prime" || u.Bio != "Root" || u.Avatar != "https://example.com/a.png" {
		t.Errorf("session user = %+v", u)
	}
	if u.Email != before[0].Email || u.Role != before[0].Role {
		t.Error("fields outside the form must not change")
	}
	bob, _ := got.Users.Find("u2")
	if bob != other {
		t.Errorf("other user changed: %+v", bob)
	}
	if s.Users[0].Name != "Himo" {
		t.Error("input state's users were modified")
	}
	if len(eff.Records) != 1 {
		t.Errorf("expected one record, got %d", len(eff.Records))
	}
}

func TestSaveProfile_EmptyNameAccepted(t *testing.T) {
	s := OpenProfile(signedInAdmin(t))
	s = SetProfileField(s, ProfileName, "")
	s, _ = SaveProfile(s)
	u, _ := s.SessionUser()
	if u.Name != "" {
		t.Errorf("Name = %q, want empty", u.Name)
	}
	if u.Initial() != "U" {
		t.Errorf("Initial() = %q, want U", u.Initial())
	}
}

func TestSaveProfile_SignedOut(t *testing.T) {
	s := adminState(t)
	s.ProfileOpen = true
	s = SetProfileField(s, ProfileName, "ghost")
	got, eff := SaveProfile(s)
	if got.Users[0].Name != "Himo" {
		t.Error("signed-out save must not touch users")
	}
	if !eff.Empty() {
		t.Error("signed-out save should produce no effect")
	}
}

func TestCancelProfile(t *testing.T) {
	s := OpenProfile(signedInAdmin(t))
	s = SetProfileField(s, ProfileName, "Changed")
	s = CancelProfile(s)
	if s.ProfileOpen {
		t.Error("cancel should close the editor")
	}
	if u, _ := s.SessionUser(); u.Name != "Himo" {
		t.Errorf("cancel must not save, name = %q", u.Name)
	}
}
