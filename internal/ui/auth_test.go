package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/murmur/internal/state"
)

func typeInto(a *AuthScreen, s string) {
	for _, r := range s {
		a.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestAuthScreen_LoginFields(t *testing.T) {
	a := NewAuthScreen("")

	if a.Mode() != state.AuthLogin {
		t.Fatal("should start in login mode")
	}
	if a.FocusedField() != state.AuthEmail {
		t.Fatalf("focused = %v, want email", a.FocusedField())
	}

	typeInto(a, "admin@example.com")
	a.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if a.FocusedField() != state.AuthPassword {
		t.Fatalf("tab should move to password, got %v", a.FocusedField())
	}
	typeInto(a, "secret")

	name, email, password := a.Values()
	if name != "" || email != "admin@example.com" || password != "secret" {
		t.Errorf("Values() = %q, %q, %q", name, email, password)
	}

	a.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if a.FocusedField() != state.AuthEmail {
		t.Error("tab should wrap to the first field")
	}
	a.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if a.FocusedField() != state.AuthPassword {
		t.Error("shift+tab should wrap backwards")
	}

	a.ClearPassword()
	if _, _, pw := a.Values(); pw != "" {
		t.Errorf("password not cleared: %q", pw)
	}
}

func TestAuthScreen_RegisterMode(t *testing.T) {
	a := NewAuthScreen("")
	a.SetMode(state.AuthRegister)

	if a.FocusedField() != state.AuthName {
		t.Fatalf("register should focus name first, got %v", a.FocusedField())
	}
	typeInto(a, "Kate")
	a.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	typeInto(a, "kate@example.com")

	name, email, _ := a.Values()
	if name != "Kate" || email != "kate@example.com" {
		t.Errorf("Values() = %q, %q", name, email)
	}

	view := ansi.Strip(a.View())
	if !strings.Contains(view, "Create your account") || !strings.Contains(view, "Name") {
		t.Errorf("register view missing title or name field:\n%s", view)
	}

	a.SetMode(state.AuthLogin)
	if a.FocusedField() != state.AuthEmail {
		t.Error("switching back should focus email")
	}
	if view := ansi.Strip(a.View()); strings.Contains(view, "Your name") {
		t.Errorf("login view should not show the name field:\n%s", view)
	}
}

func TestAuthScreen_MasksPassword(t *testing.T) {
	a := NewAuthScreen("")
	a.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	typeInto(a, "hunter2")

	view := ansi.Strip(a.View())
	if strings.Contains(view, "hunter2") {
		t.Error("password should not be shown in clear text")
	}
	if !strings.Contains(view, "•••") {
		t.Errorf("masked password missing:\n%s", view)
	}
}

func TestAuthScreen_Hint(t *testing.T) {
	a := NewAuthScreen("demo: admin@example.com / admin")
	a.SetSize(100, 30)

	view := ansi.Strip(a.View())
	if !strings.Contains(view, "Sign in to murmur") {
		t.Errorf("title missing:\n%s", view)
	}
	if !strings.Contains(view, "demo: admin@example.com") {
		t.Errorf("hint missing:\n%s", view)
	}
	if lines := strings.Split(a.View(), "\n"); len(lines) != 30 {
		t.Errorf("centered view should fill the height, got %d lines", len(lines))
	}
}
