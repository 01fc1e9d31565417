package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// ProfileState edits the session user's name, bio and avatar.
type ProfileState struct {
	Email    string // Read-only, shown above the form
	JoinedAt string // Read-only, preformatted

	name   string
	bio    string
	avatar string

	form *huh.Form
}

func (*ProfileState) modalState() {}

func (s *ProfileState) Title() string { return "Edit Profile" }

func (s *ProfileState) Help() string {
	return "Tab: next field  Enter: save  Esc: cancel"
}

func (s *ProfileState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	meta := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Render(s.Email + "  ·  joined " + s.JoinedAt)

	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, meta, "", s.form.View(), help)
}

func (s *ProfileState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// GetValues returns the edited name, bio and avatar. Values are returned as
// typed; an empty name is allowed.
func (s *ProfileState) GetValues() (name, bio, avatar string) {
	return s.name, s.bio, s.avatar
}

// NewProfileState creates a ProfileState prefilled with the given values.
func NewProfileState(name, bio, avatar, email, joinedAt string) *ProfileState {
	s := &ProfileState{
		Email:    email,
		JoinedAt: joinedAt,
		name:     name,
		bio:      bio,
		avatar:   avatar,
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Your display name").
				CharLimit(ModalInputCharLimit).
				Value(&s.name),
			huh.NewInput().
				Title("Bio").
				Placeholder("A few words about you").
				CharLimit(ModalInputCharLimit).
				Value(&s.bio),
			huh.NewInput().
				Title("Avatar").
				Description("Image URL or path").
				Placeholder("https://...").
				CharLimit(ModalInputCharLimit).
				Value(&s.avatar),
		),
	).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalInputWidth)

	initHuhForm(s.form)
	return s
}
