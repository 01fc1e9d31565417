package modals

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/murmur/internal/model"
	"github.com/zhubert/murmur/internal/state"
)

func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	}
	r := []rune(key)[0]
	return tea.KeyPressMsg{Code: r, Text: key}
}

func testRoster() model.Users {
	return model.Users{
		{ID: "a", Name: "Ann", Email: "ann@x.io", Status: model.StatusOnline},
		{ID: "b", Name: "Bob", Email: "bob@x.io", Status: model.StatusAway, Banned: true},
		{ID: "c", Name: "Cid", Email: "cid@x.io", Status: model.StatusOffline},
	}
}

// =============================================================================
// AdminState Tests
// =============================================================================

func TestAdminState_Navigation(t *testing.T) {
	s := NewAdminState(testRoster(), state.Stats{Total: 4})

	if got := s.SelectedUserID(); got != "a" {
		t.Errorf("initial selection = %q, want a", got)
	}

	s.Update(keyPress("down"))
	s.Update(keyPress("j"))
	s.Update(keyPress("down")) // clamps at the end
	if got := s.SelectedUserID(); got != "c" {
		t.Errorf("selection = %q, want c", got)
	}

	s.Update(keyPress("up"))
	if got := s.SelectedUserID(); got != "b" {
		t.Errorf("selection = %q, want b", got)
	}
}

func TestAdminState_Tabs(t *testing.T) {
	s := NewAdminState(testRoster(), state.Stats{Total: 4, Online: 2, Banned: 1, Chats: 0})

	s.Update(keyPress("right"))
	if s.Tab != AdminTabStats {
		t.Fatalf("Tab = %v, want Stats", s.Tab)
	}
	if s.SelectedUserID() != "" {
		t.Error("no user should be selectable on the stats tab")
	}
	out := s.Render()
	for _, want := range []string{"Total users", "Online", "Banned", "Chats"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats render missing %q", want)
		}
	}

	s.Update(keyPress("left"))
	if s.Tab != AdminTabUsers {
		t.Errorf("Tab = %v, want Users", s.Tab)
	}
}

func TestAdminState_RenderUsers(t *testing.T) {
	s := NewAdminState(testRoster(), state.Stats{})
	out := s.Render()
	for _, want := range []string{"Ann", "Bob", "Cid", "BANNED"} {
		if !strings.Contains(out, want) {
			t.Errorf("users render missing %q", want)
		}
	}

	empty := NewAdminState(nil, state.Stats{})
	if !strings.Contains(empty.Render(), "No other users") {
		t.Error("empty roster should show a placeholder")
	}
	if empty.SelectedUserID() != "" {
		t.Error("empty roster has no selection")
	}
}

func TestAdminState_RefreshClampsSelection(t *testing.T) {
	s := NewAdminState(testRoster(), state.Stats{})
	s.SelectedIndex = 2

	s.Refresh(testRoster()[:2], state.Stats{Total: 3})
	if s.SelectedIndex != 1 {
		t.Errorf("SelectedIndex = %d, want 1", s.SelectedIndex)
	}
	if s.Stats.Total != 3 {
		t.Errorf("Stats not refreshed: %+v", s.Stats)
	}

	s.Refresh(nil, state.Stats{})
	if s.SelectedIndex != 0 {
		t.Errorf("SelectedIndex = %d, want 0", s.SelectedIndex)
	}
}

// =============================================================================
// ProfileState Tests
// =============================================================================

func TestProfileState_Prefill(t *testing.T) {
	s := NewProfileState("Himo", "System administrator", "", "himo@messenger.com", "Jan 1, 2024")

	name, bio, avatar := s.GetValues()
	if name != "Himo" || bio != "System administrator" || avatar != "" {
		t.Errorf("GetValues() = %q, %q, %q", name, bio, avatar)
	}

	out := s.Render()
	if !strings.Contains(out, "Edit Profile") || !strings.Contains(out, "himo@messenger.com") {
		t.Errorf("render missing title or email:\n%s", out)
	}
}

func TestProfileState_EnterAndEscAreNotForwarded(t *testing.T) {
	s := NewProfileState("Himo", "", "", "e", "d")
	for _, k := range []string{"enter", "esc"} {
		next, cmd := s.Update(keyPress(k))
		if next != s {
			t.Errorf("%s: state replaced", k)
		}
		if cmd != nil {
			t.Errorf("%s: expected no command", k)
		}
	}
	if name, _, _ := s.GetValues(); name != "Himo" {
		t.Errorf("name changed to %q", name)
	}
}

// =============================================================================
// ThemeState Tests
// =============================================================================

func TestThemeState(t *testing.T) {
	s := NewThemeState([]string{"dark-purple", "nord"}, []string{"Dark Purple", "Nord"}, "nord")
	if s.GetSelectedTheme() != "nord" {
		t.Errorf("GetSelectedTheme() = %q", s.GetSelectedTheme())
	}
	if s.ThemeChanged() {
		t.Error("ThemeChanged() should be false initially")
	}
	if !strings.Contains(s.Render(), "Theme") {
		t.Error("render should include the title")
	}
}

// =============================================================================
// HelpState Tests
// =============================================================================

func TestHelpState(t *testing.T) {
	s := NewHelpState([]HelpSection{
		{Title: "Chats", Shortcuts: []HelpShortcut{{Key: "enter", Desc: "open chat"}, {Key: "/", Desc: "search"}}},
		{Title: "Global", Shortcuts: []HelpShortcut{{Key: "q", Desc: "quit"}}},
	})

	sel := s.GetSelectedShortcut()
	if sel == nil || sel.Key != "enter" {
		t.Fatalf("initial selection = %+v, want enter", sel)
	}

	s.Update(keyPress("down"))
	if sel := s.GetSelectedShortcut(); sel == nil || sel.Key != "/" {
		t.Errorf("after down selection = %+v, want /", sel)
	}

	if s.IsFiltering() {
		t.Error("should not be filtering initially")
	}
	if !strings.Contains(s.Render(), "Keyboard Shortcuts") {
		t.Error("render should include the title")
	}
}

// =============================================================================
// Helper Tests
// =============================================================================

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 8, "this is…"},
		{"日本語テキスト", 6, "日本…"},
	}
	for _, tt := range tests {
		if got := TruncateString(tt.in, tt.width); got != tt.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestRenderSelectableList(t *testing.T) {
	out := RenderSelectableList([]string{"one", "two"}, 1)
	if !strings.Contains(out, "> two") || !strings.Contains(out, "  one") {
		t.Errorf("unexpected list:\n%s", out)
	}
}
