package modals

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/murmur/internal/keys"
	"github.com/zhubert/murmur/internal/model"
	"github.com/zhubert/murmur/internal/state"
)

// AdminTab selects the admin panel page.
type AdminTab int

const (
	AdminTabUsers AdminTab = iota
	AdminTabStats
)

func (t AdminTab) String() string {
	if t == AdminTabStats {
		return "Stats"
	}
	return "Users"
}

// AdminState is the admin panel: a user roster with ban/delete actions and
// a stats page.
type AdminState struct {
	Tab           AdminTab
	Roster        model.Users
	Stats         state.Stats
	SelectedIndex int
}

func (*AdminState) modalState() {}

func (s *AdminState) PreferredWidth() int { return ModalWidthWide }

func (s *AdminState) Title() string { return "Admin Panel" }

func (s *AdminState) Help() string {
	if s.Tab == AdminTabStats {
		return "←/→: switch tab  Esc: close"
	}
	return "↑/↓: select  b: ban/unban  x: delete  ←/→: switch tab  Esc: close"
}

func (s *AdminState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	tabs := s.renderTabs()

	var body string
	if s.Tab == AdminTabStats {
		body = s.renderStats()
	} else {
		body = s.renderUsers()
	}

	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, tabs, "", body, help)
}

func (s *AdminState) renderTabs() string {
	var parts []string
	for _, t := range []AdminTab{AdminTabUsers, AdminTabStats} {
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(ColorTextMuted)
		if t == s.Tab {
			style = style.Foreground(ColorTextInverse).Background(ColorPrimary).Bold(true)
		}
		parts = append(parts, style.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (s *AdminState) renderUsers() string {
	if len(s.Roster) == 0 {
		return lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("  No other users yet.")
	}

	nameWidth := ModalWidthWide/2 - 6
	items := make([]string, len(s.Roster))
	for i, u := range s.Roster {
		line := fmt.Sprintf("%-*s %s", nameWidth, TruncateString(u.Name+" <"+u.Email+">", nameWidth), u.Presence())
		if u.Banned {
			line += "  " + lipgloss.NewStyle().Foreground(ColorWarning).Bold(true).Render("BANNED")
		}
		if u.IsAdmin() {
			line += "  " + lipgloss.NewStyle().Foreground(ColorSecondary).Render("admin")
		}
		items[i] = line
	}
	return RenderSelectableList(items, s.SelectedIndex)
}

func (s *AdminState) renderStats() string {
	label := lipgloss.NewStyle().Foreground(ColorTextMuted).Width(16)
	value := lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	row := func(name string, n int) string {
		return label.Render(name) + value.Render(fmt.Sprintf("%d", n))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		row("Total users", s.Stats.Total),
		lipgloss.NewStyle().Foreground(ColorOnline).Render(row("Online", s.Stats.Online)),
		row("Banned", s.Stats.Banned),
		row("Chats", s.Stats.Chats),
	)
}

func (s *AdminState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch keyMsg.String() {
	case keys.Left, keys.Right, keys.Tab:
		if s.Tab == AdminTabUsers {
			s.Tab = AdminTabStats
		} else {
			s.Tab = AdminTabUsers
		}
	case keys.Up, "k":
		if s.Tab == AdminTabUsers && s.SelectedIndex > 0 {
			s.SelectedIndex--
		}
	case keys.Down, "j":
		if s.Tab == AdminTabUsers && s.SelectedIndex < len(s.Roster)-1 {
			s.SelectedIndex++
		}
	}
	return s, nil
}

// SelectedUserID returns the highlighted roster entry, or "" when the users
// tab is not showing or the roster is empty.
func (s *AdminState) SelectedUserID() string {
	if s.Tab != AdminTabUsers || s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Roster) {
		return ""
	}
	return s.Roster[s.SelectedIndex].ID
}

// Refresh replaces the roster and stats after a ban or delete, keeping the
// selection in range.
func (s *AdminState) Refresh(roster model.Users, stats state.Stats) {
	s.Roster = roster
	s.Stats = stats
	if s.SelectedIndex >= len(roster) {
		s.SelectedIndex = max(0, len(roster)-1)
	}
}

// NewAdminState creates an AdminState showing the users tab.
func NewAdminState(roster model.Users, stats state.Stats) *AdminState {
	return &AdminState{Roster: roster, Stats: stats}
}
