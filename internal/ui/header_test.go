package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

func TestHeader_View_NoUser(t *testing.T) {
	header := NewHeader()
	header.SetWidth(80)

	view := ansi.Strip(header.View())
	if !strings.Contains(view, "murmur") {
		t.Errorf("header should contain the title, got: %q", view)
	}
	if w := runewidth.StringWidth(view); w != 80 {
		t.Errorf("header width = %d, want 80", w)
	}
}

func TestHeader_View_WithUser(t *testing.T) {
	header := NewHeader()
	header.SetWidth(100)
	header.SetUser("Himo", "Online")

	view := ansi.Strip(header.View())
	if !strings.Contains(view, "Himo · Online") {
		t.Errorf("header should show user and presence, got: %q", view)
	}
	if !strings.HasSuffix(view, "Online ") {
		t.Errorf("user should be right-aligned, got: %q", view)
	}
}

func TestHeader_View_NameWithoutPresence(t *testing.T) {
	header := NewHeader()
	header.SetWidth(60)
	header.SetUser("Anna", "")

	view := ansi.Strip(header.View())
	if strings.Contains(view, "·") {
		t.Errorf("no separator expected without presence, got: %q", view)
	}
}

func TestHeader_View_Narrow(t *testing.T) {
	header := NewHeader()
	header.SetWidth(5)
	header.SetUser("Someone With A Long Name", "Away")

	// Must not panic and must still contain the title
	if view := ansi.Strip(header.View()); !strings.Contains(view, "murmur") {
		t.Errorf("got %q", view)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b int
	}{
		{"#7C3AED", 0x7C, 0x3A, 0xED},
		{"#000000", 0, 0, 0},
		{"bad", 0, 0, 0},
	}
	for _, tt := range tests {
		r, g, b := parseHexColor(tt.hex)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("parseHexColor(%q) = %d,%d,%d", tt.hex, r, g, b)
		}
	}
}

func TestSetTheme(t *testing.T) {
	defer SetTheme(DefaultTheme)

	SetTheme(ThemeNord)
	if CurrentThemeName() != ThemeNord {
		t.Errorf("CurrentThemeName() = %q, want nord", CurrentThemeName())
	}
	if CurrentTheme().Name != "Nord" {
		t.Errorf("CurrentTheme().Name = %q", CurrentTheme().Name)
	}

	SetThemeByName("no-such-theme")
	if CurrentThemeName() != DefaultTheme {
		t.Errorf("unknown theme should fall back to %q, got %q", DefaultTheme, CurrentThemeName())
	}
}

func TestThemeChoices(t *testing.T) {
	names, display := ThemeChoices()
	if len(names) != len(ThemeNames()) || len(display) != len(names) {
		t.Fatalf("got %d names and %d display names", len(names), len(display))
	}
	for i, n := range names {
		if BuiltinThemes[ThemeName(n)].Name != display[i] {
			t.Errorf("display name mismatch for %q", n)
		}
	}
}
