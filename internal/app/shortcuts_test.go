package app

import (
	"testing"

	"github.com/zhubert/murmur/internal/keys"
	"github.com/zhubert/murmur/internal/model"
	"github.com/zhubert/murmur/internal/state"
	"github.com/zhubert/murmur/internal/ui/modals"
)

func TestNormalizeHelpDisplayKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"Tab", "tab"},
		{"/", "/"},
		{"?", "?"},
		{"p", "p"},
		{"P", "p"},
		{"Enter", ""},
		{"ctrl-e", ""},
		{"↑/↓ or j/k", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := normalizeHelpDisplayKey(tt.key); got != tt.want {
				t.Errorf("normalizeHelpDisplayKey(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestShortcutRegistry_Wellformed(t *testing.T) {
	seen := map[string]bool{helpShortcut.Key: true}
	known := map[string]bool{}
	for _, c := range categoryOrder {
		known[c] = true
	}
	for _, s := range ShortcutRegistry {
		if seen[s.Key] {
			t.Errorf("duplicate key %q", s.Key)
		}
		seen[s.Key] = true
		if s.Handler == nil {
			t.Errorf("%q has no handler", s.Key)
		}
		if !known[s.Category] {
			t.Errorf("%q has unknown category %q", s.Key, s.Category)
		}
	}
}

func sectionKeys(sections []modals.HelpSection) map[string]string {
	out := map[string]string{}
	for _, sec := range sections {
		for _, sc := range sec.Shortcuts {
			out[sc.Desc] = sec.Title
		}
	}
	return out
}

func TestHelpSections_Applicability(t *testing.T) {
	all := append(append([]Shortcut{}, ShortcutRegistry...), helpShortcut)

	t.Run("admin", func(t *testing.T) {
		m := signIn(t, testModel(t, model.VariantAdmin, state.DeliveryDiscard), adminEmail, adminPassword)
		got := sectionKeys(m.getApplicableHelpSections(all, DisplayOnlyShortcuts))
		if got["Admin panel"] != CategoryAccount {
			t.Error("admin should see the admin panel entry")
		}
		if _, ok := got["View next story"]; ok {
			t.Error("stories belong to the social variant")
		}
		if _, ok := got["Emoji picker"]; ok {
			t.Error("thread entries need an open chat")
		}
	})

	t.Run("social member", func(t *testing.T) {
		m := signIn(t, testModel(t, model.VariantSocial, state.DeliveryDiscard), "kate@example.com", "pw")
		got := sectionKeys(m.getApplicableHelpSections(all, DisplayOnlyShortcuts))
		if _, ok := got["Admin panel"]; ok {
			t.Error("members must not see the admin panel entry")
		}
		if got["View next story"] != CategorySocial {
			t.Error("social variant should list stories")
		}

		m = sendKey(m, keys.Enter)
		m = sendKey(m, keys.Escape)
		got = sectionKeys(m.getApplicableHelpSections(all, DisplayOnlyShortcuts))
		if got["Emoji picker"] != CategoryThread {
			t.Error("thread entries should appear once a chat is open")
		}
		if got["Switch between chat list and thread"] != CategoryNavigation {
			t.Error("tab should be listed once a chat is open")
		}
	})
}

func TestExecuteShortcut_Guards(t *testing.T) {
	m := signIn(t, testModel(t, model.VariantSocial, state.DeliveryDiscard), "kate@example.com", "pw")

	if _, _, handled := m.ExecuteShortcut("tab"); handled {
		t.Error("tab needs an open chat")
	}
	if _, _, handled := m.ExecuteShortcut("nope"); handled {
		t.Error("unknown keys are not shortcuts")
	}

	m = sendKey(m, keys.Enter)
	if _, _, handled := m.ExecuteShortcut("p"); handled {
		t.Error("sidebar shortcuts must not run from the thread")
	}
	if _, _, handled := m.ExecuteShortcut("?"); handled {
		t.Error("help must not open from the thread")
	}

	m = sendKey(m, keys.Escape)
	m = sendKey(m, "/")
	if _, _, handled := m.ExecuteShortcut("q"); handled {
		t.Error("shortcuts are off while searching")
	}
}

func TestFocus_String(t *testing.T) {
	if FocusSidebar.String() != "sidebar" || FocusChat.String() != "chat" {
		t.Error("unexpected focus names")
	}
}
