package ui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/murmur/internal/keys"
	"github.com/zhubert/murmur/internal/state"
)

// AuthScreen is the sign-in / sign-up card shown before the main layout.
type AuthScreen struct {
	name     textinput.Model
	email    textinput.Model
	password textinput.Model

	mode  state.AuthMode
	focus int // Index into fields()
	hint  string

	width  int
	height int
}

func newAuthInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = AuthInputCharLimit
	ti.SetWidth(AuthCardWidth - 8)
	return ti
}

// NewAuthScreen creates the auth card. hint is shown under the form; pass ""
// to hide it.
func NewAuthScreen(hint string) *AuthScreen {
	a := &AuthScreen{
		name:     newAuthInput("Your name"),
		email:    newAuthInput("you@example.com"),
		password: newAuthInput("••••••••"),
		hint:     hint,
	}
	a.password.EchoMode = textinput.EchoPassword
	a.password.EchoCharacter = '•'
	a.focusCurrent()
	return a
}

// SetSize sets the screen dimensions used to center the card
func (a *AuthScreen) SetSize(width, height int) {
	a.width = width
	a.height = height
}

// fields returns the inputs shown in the current mode, in focus order.
func (a *AuthScreen) fields() []*textinput.Model {
	if a.mode == state.AuthRegister {
		return []*textinput.Model{&a.name, &a.email, &a.password}
	}
	return []*textinput.Model{&a.email, &a.password}
}

func (a *AuthScreen) focusCurrent() tea.Cmd {
	var cmd tea.Cmd
	for i, f := range a.fields() {
		if i == a.focus {
			cmd = f.Focus()
		} else {
			f.Blur()
		}
	}
	if a.mode == state.AuthLogin {
		a.name.Blur()
	}
	return cmd
}

// SetMode switches between login and register, focusing the first field.
func (a *AuthScreen) SetMode(mode state.AuthMode) tea.Cmd {
	a.mode = mode
	a.focus = 0
	return a.focusCurrent()
}

// Mode returns the card mode.
func (a *AuthScreen) Mode() state.AuthMode {
	return a.mode
}

// FocusedField returns which form field has focus.
func (a *AuthScreen) FocusedField() state.AuthField {
	f := a.fields()[a.focus]
	switch f {
	case &a.name:
		return state.AuthName
	case &a.password:
		return state.AuthPassword
	}
	return state.AuthEmail
}

// Values returns the typed name, email and password.
func (a *AuthScreen) Values() (name, email, password string) {
	return a.name.Value(), a.email.Value(), a.password.Value()
}

// ClearPassword empties the password input.
func (a *AuthScreen) ClearPassword() {
	a.password.SetValue("")
}

// Update handles focus movement and forwards typing to the focused input.
// Enter, ctrl+r and quitting are handled by the caller.
func (a *AuthScreen) Update(msg tea.Msg) (*AuthScreen, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		n := len(a.fields())
		switch keyMsg.String() {
		case keys.Tab, keys.Down:
			a.focus = (a.focus + 1) % n
			return a, a.focusCurrent()
		case keys.ShiftTab, keys.Up:
			a.focus = (a.focus - 1 + n) % n
			return a, a.focusCurrent()
		}
	}

	f := a.fields()[a.focus]
	var cmd tea.Cmd
	*f, cmd = f.Update(msg)
	return a, cmd
}

func (a *AuthScreen) renderField(label string, input *textinput.Model) string {
	labelStyle := AuthLabelStyle
	if input.Focused() {
		labelStyle = AuthLabelFocusedStyle
	}
	return labelStyle.Render(label) + "\n" + input.View()
}

// View renders the centered card
func (a *AuthScreen) View() string {
	title := "Sign in to murmur"
	toggle := "No account? ctrl+r to register"
	if a.mode == state.AuthRegister {
		title = "Create your account"
		toggle = "Have an account? ctrl+r to sign in"
	}

	var parts []string
	parts = append(parts, ModalTitleStyle.Render(title))
	if a.mode == state.AuthRegister {
		parts = append(parts, a.renderField("Name", &a.name), "")
	}
	parts = append(parts,
		a.renderField("Email", &a.email), "",
		a.renderField("Password", &a.password),
		"",
		FooterDescStyle.Render(toggle),
	)
	if a.hint != "" {
		parts = append(parts, "", ChatMetaStyle.Italic(true).Render(a.hint))
	}

	card := AuthCardStyle.Render(strings.Join(parts, "\n"))
	if a.width == 0 || a.height == 0 {
		return card
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}
