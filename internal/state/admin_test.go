package state

import (
	"testing"

	"github.com/zhubert/murmur/internal/model"
)

func adminWithRoster(t *testing.T) State {
	t.Helper()
	return withUsers(signedInAdmin(t),
		model.User{ID: "a", Name: "Ann", Status: model.StatusOnline},
		model.User{ID: "b", Name: "Bob", Status: model.StatusAway},
		model.User{ID: "c", Name: "Cid", Status: model.StatusOffline, Banned: true},
	)
}

func TestOpenAdmin(t *testing.T) {
	s, _ := OpenAdmin(signedInAdmin(t))
	if !s.AdminOpen {
		t.Error("admin should open the panel")
	}
	if s = CloseAdmin(s); s.AdminOpen {
		t.Error("CloseAdmin should close the panel")
	}

	regular := signIn(t, adminState(t), "x@y.z", "pw")
	if got, eff := OpenAdmin(regular); got.AdminOpen || len(eff.Records) != 1 {
		t.Error("regular users should be refused with a diagnostic")
	}

	social := socialState(t)
	social = withUsers(social, model.User{ID: "admin", Role: model.RoleAdmin})
	social.Session = "admin"
	social.Authenticated = true
	if got, _ := OpenAdmin(social); got.AdminOpen {
		t.Error("social variant has no admin panel")
	}
}

func TestToggleBan_FlipsOnlyTarget(t *testing.T) {
	s := adminWithRoster(t)

	got, _ := ToggleBan(s, "b")
	for _, u := range got.Users {
		orig, _ := s.Users.Find(u.ID)
		want := orig.Banned
		if u.ID == "b" {
			want = !want
		}
		if u.Banned != want {
			t.Errorf("user %s Banned = %v, want %v", u.ID, u.Banned, want)
		}
	}
	if b, _ := s.Users.Find("b"); b.Banned {
		t.Error("input state was modified")
	}

	got, _ = ToggleBan(got, "b")
	if b, _ := got.Users.Find("b"); b.Banned {
		t.Error("second toggle should unban")
	}

	same, eff := ToggleBan(s, "missing")
	if len(same.Users) != len(s.Users) || len(eff.Records) != 1 {
		t.Error("unknown user should be a logged no-op")
	}
}

func TestDeleteUser_RemovesOnlyTarget(t *testing.T) {
	s := adminWithRoster(t)

	got, _ := DeleteUser(s, "b")
	if len(got.Users) != len(s.Users)-1 {
		t.Fatalf("len(Users) = %d, want %d", len(got.Users), len(s.Users)-1)
	}
	if _, ok := got.Users.Find("b"); ok {
		t.Error("b should be gone")
	}
	for _, id := range []string{"admin", "a", "c"} {
		if _, ok := got.Users.Find(id); !ok {
			t.Errorf("%s should remain", id)
		}
	}
	if _, ok := s.Users.Find("b"); !ok {
		t.Error("input state was modified")
	}

	same, _ := DeleteUser(got, "b")
	if len(same.Users) != len(got.Users) {
		t.Error("deleting twice should be a no-op")
	}
}

func TestComputeStats(t *testing.T) {
	s := adminWithRoster(t)
	s.Chats = model.Chats{{ID: "c1"}, {ID: "c2"}}

	got := ComputeStats(s.Users, s.Chats)
	want := Stats{Total: 4, Online: 2, Banned: 1, Chats: 2}
	if got != want {
		t.Errorf("ComputeStats() = %+v, want %+v", got, want)
	}

	s, _ = ToggleBan(s, "a")
	s, _ = DeleteUser(s, "c")
	got = ComputeStats(s.Users, s.Chats)
	want = Stats{Total: 3, Online: 2, Banned: 1, Chats: 2}
	if got != want {
		t.Errorf("after changes ComputeStats() = %+v, want %+v", got, want)
	}
}

func TestRosters(t *testing.T) {
	s := adminWithRoster(t)

	admin := AdminRoster(s.Users, s.Session)
	if len(admin) != 3 {
		t.Errorf("AdminRoster len = %d, want 3", len(admin))
	}
	for _, u := range admin {
		if u.ID == s.Session {
			t.Error("AdminRoster must exclude the session user")
		}
	}

	online := OnlineRoster(s.Users, s.Session)
	if len(online) != 2 {
		t.Errorf("OnlineRoster len = %d, want 2", len(online))
	}
	for _, u := range online {
		if u.ID == s.Session || u.Banned {
			t.Errorf("OnlineRoster included %s", u.ID)
		}
	}
}
