package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/murmur/internal/model"
	"github.com/zhubert/murmur/internal/ui"
)

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	if m.width == 0 || m.height == 0 {
		return
	}
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	sidebarWidth, threadWidth, contactsWidth := ctx.PanelWidths(m.st.Fullscreen)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.sidebar.SetSize(sidebarWidth, ctx.ContentHeight)
	m.chat.SetSize(threadWidth, ctx.ContentHeight)
	m.contacts.SetSize(contactsWidth, ctx.ContentHeight)
	m.authView.SetSize(ctx.TerminalWidth, ctx.TerminalHeight-ctx.FooterHeight)
}

// footerMode picks the footer bindings for the current context.
func (m *Model) footerMode() ui.FooterMode {
	switch {
	case !m.st.Authenticated:
		return ui.FooterAuth
	case m.modal.IsVisible():
		return ui.FooterModal
	case m.focus == FocusChat && m.chat.IsEmojiPickerOpen():
		return ui.FooterEmoji
	case m.focus == FocusChat:
		return ui.FooterThread
	case m.sidebar.IsSearchMode():
		return ui.FooterSearch
	}
	return ui.FooterSidebar
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for demos and testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	m.footer.SetContext(
		m.footerMode(),
		m.st.Variant == model.VariantAdmin && m.st.IsAdmin(),
		m.st.Variant == model.VariantSocial,
		m.chat.HasChat(),
	)
	footer := m.footer.View()

	if !m.st.Authenticated {
		return lipgloss.JoinVertical(lipgloss.Left, m.authView.View(), footer)
	}

	// Overlay modal if visible
	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	var panels []string
	if !m.st.Fullscreen {
		panels = append(panels, m.sidebar.View())
	}
	panels = append(panels, m.chat.View())
	if !m.st.Fullscreen {
		panels = append(panels, m.contacts.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		lipgloss.JoinHorizontal(lipgloss.Top, panels...),
		footer,
	)
}
