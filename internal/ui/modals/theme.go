package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// ThemeState picks the UI theme.
type ThemeState struct {
	OriginalTheme string
	selectedTheme string

	form *huh.Form
}

func (*ThemeState) modalState() {}

func (s *ThemeState) Title() string { return "Theme" }

func (s *ThemeState) Help() string {
	return "↑/↓: choose  Enter: apply  Esc: cancel"
}

func (s *ThemeState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *ThemeState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// GetSelectedTheme returns the selected theme key.
func (s *ThemeState) GetSelectedTheme() string {
	return s.selectedTheme
}

// ThemeChanged returns true if the selected theme differs from the original.
func (s *ThemeState) ThemeChanged() bool {
	return s.selectedTheme != s.OriginalTheme
}

// NewThemeState creates a theme picker. themes and displayNames are parallel.
func NewThemeState(themes, displayNames []string, current string) *ThemeState {
	s := &ThemeState{
		OriginalTheme: current,
		selectedTheme: current,
	}

	options := make([]huh.Option[string], len(themes))
	for i := range themes {
		options[i] = huh.NewOption(displayNames[i], themes[i])
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(options...).
				Height(len(options) + 2).
				Value(&s.selectedTheme),
		),
	).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalInputWidth)

	initHuhForm(s.form)
	return s
}
