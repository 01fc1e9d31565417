package model

import (
	"testing"

	"github.com/zhubert/murmur/internal/errors"
)

func TestInitial(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"latin", "himo", "H"},
		{"cyrillic", "анна", "А"},
		{"empty", "", "U"},
		{"whitespace", "   ", "U"},
		{"emoji flag", "🇺🇦 team", "🇺🇦"},
		{"combining mark", "élise", "É"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Initial(tt.in); got != tt.want {
				t.Errorf("Initial(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusOnline, "Online"},
		{StatusAway, "Away"},
		{StatusOffline, "Offline"},
		{Status(""), "Offline"},
	}
	for _, tt := range tests {
		if got := tt.status.Label(); got != tt.want {
			t.Errorf("%q.Label() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestUserPresence(t *testing.T) {
	u := User{Status: StatusAway, LastSeen: "5 min ago"}
	if got := u.Presence(); got != "Last seen 5 min ago" {
		t.Errorf("Presence() = %q", got)
	}
	u.Status = StatusOnline
	if got := u.Presence(); got != "Online" {
		t.Errorf("Presence() for online user = %q, want Online", got)
	}
}

func TestUsers_FindAndValidate(t *testing.T) {
	users := Users{{ID: "a", Name: "Ann"}, {ID: "b", Name: "Bob"}}

	if u, ok := users.Find("b"); !ok || u.Name != "Bob" {
		t.Errorf("Find(b) = %+v, %v", u, ok)
	}
	if _, ok := users.Find("zzz"); ok {
		t.Error("Find(zzz) should miss")
	}
	if err := users.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	dup := append(users.Clone(), User{ID: "a"})
	if err := dup.Validate(); !errors.Is(err, errors.KindInvalid) {
		t.Errorf("Validate() on duplicates = %v, want KindInvalid", err)
	}
	if err := (Users{{ID: ""}}).Validate(); err == nil {
		t.Error("Validate() should reject empty IDs")
	}
}

func TestUsers_CloneIsIndependent(t *testing.T) {
	users := Users{{ID: "a", Name: "Ann"}}
	c := users.Clone()
	c[0].Name = "Changed"
	if users[0].Name != "Ann" {
		t.Error("Clone shares backing array with original")
	}
}

func TestSender(t *testing.T) {
	if !Own().IsOwn() {
		t.Error("Own().IsOwn() = false")
	}
	p := Peer("u1")
	if p.IsOwn() {
		t.Error("Peer().IsOwn() = true")
	}
	if p.UserID != "u1" {
		t.Errorf("Peer().UserID = %q", p.UserID)
	}
	if p.String() != "peer:u1" || Own().String() != "own" {
		t.Errorf("String() = %q / %q", p.String(), Own().String())
	}
}

func TestMessages_DanglingSenders(t *testing.T) {
	users := Users{{ID: "a"}}
	msgs := Messages{
		{ID: "1", Sender: Peer("a")},
		{ID: "2", Sender: Own()},
		{ID: "3", Sender: Peer("ghost")},
		{ID: "4", Sender: Peer("ghost")},
		{ID: "5", Sender: Peer("other")},
	}
	got := msgs.DanglingSenders(users)
	if len(got) != 2 || got[0] != "ghost" || got[1] != "other" {
		t.Errorf("DanglingSenders() = %v, want [ghost other]", got)
	}
}

func TestMessages_Last(t *testing.T) {
	if _, ok := (Messages{}).Last(); ok {
		t.Error("Last() on empty thread should miss")
	}
	m, ok := Messages{{ID: "1"}, {ID: "2"}}.Last()
	if !ok || m.ID != "2" {
		t.Errorf("Last() = %+v, %v", m, ok)
	}
}

func TestChats(t *testing.T) {
	chats := Chats{{ID: "c1", Unread: 2}, {ID: "c2", Unread: 0}, {ID: "c3", Unread: 3}}
	if got := chats.TotalUnread(); got != 5 {
		t.Errorf("TotalUnread() = %d, want 5", got)
	}
	if i := chats.Index("c3"); i != 2 {
		t.Errorf("Index(c3) = %d", i)
	}
	if _, ok := chats.Find("nope"); ok {
		t.Error("Find(nope) should miss")
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{"admin", VariantAdmin, false},
		{" Social ", VariantSocial, false},
		{"", "", true},
		{"enterprise", "", true},
	}
	for _, tt := range tests {
		got, err := ParseVariant(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseVariant(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseVariant(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
