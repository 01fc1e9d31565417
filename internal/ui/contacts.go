package ui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/murmur/internal/model"
)

// Contacts is the right-hand roster of everyone reachable.
type Contacts struct {
	users  model.Users
	width  int
	height int
}

// NewContacts creates an empty contacts panel
func NewContacts() *Contacts {
	return &Contacts{}
}

// SetSize sets the panel dimensions
func (c *Contacts) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// SetUsers replaces the roster.
func (c *Contacts) SetUsers(users model.Users) {
	c.users = users
}

func presenceDot(s model.Status) string {
	switch s {
	case model.StatusOnline:
		return lipgloss.NewStyle().Foreground(ColorOnline).Render("●")
	case model.StatusAway:
		return lipgloss.NewStyle().Foreground(ColorAway).Render("●")
	default:
		return lipgloss.NewStyle().Foreground(ColorTextMuted).Render("○")
	}
}

// View renders the panel
func (c *Contacts) View() string {
	ctx := GetViewContext()
	innerWidth := ctx.InnerWidth(c.width)
	innerHeight := ctx.InnerHeight(c.height)

	lines := []string{PanelTitleStyle.Render("Contacts")}
	if len(c.users) == 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Padding(0, 1).
			Render("Nobody else is here."))
	}

	for _, u := range c.users {
		var badge string
		if u.IsAdmin() {
			badge = AdminBadgeStyle.Render("ADMIN")
		}
		nameWidth := innerWidth - 4 - lipgloss.Width(badge)
		name := truncateName(u.Name, nameWidth)
		first := " " + presenceDot(u.Status) + " " + name
		if badge != "" {
			gap := max(1, innerWidth-lipgloss.Width(first)-lipgloss.Width(badge))
			first += strings.Repeat(" ", gap) + badge
		}
		second := "   " + ChatMetaStyle.Render(truncateName(u.Presence(), innerWidth-3))
		lines = append(lines, first, second)
	}

	if len(lines) > innerHeight {
		lines = lines[:max(1, innerHeight)]
	}
	return PanelStyle.Width(c.width).Height(c.height).Render(strings.Join(lines, "\n"))
}
