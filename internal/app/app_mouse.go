package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/murmur/internal/ui"
)

// routeMouseEvents routes clicks and wheel events to the panel under the
// pointer. Mouse input is ignored while signed out or behind a modal.
func (m *Model) routeMouseEvents(msg tea.MouseMsg) tea.Cmd {
	if !m.st.Authenticated || m.modal.IsVisible() {
		return nil
	}

	switch mouseMsg := msg.(type) {
	case tea.MouseClickMsg:
		if mouseMsg.Button != tea.MouseLeft {
			return nil
		}
		return m.handleClick(mouseMsg)

	case tea.MouseWheelMsg:
		if !m.inThread(mouseMsg.X) || !m.chat.HasChat() {
			return nil
		}
		chat, cmd := m.chat.Update(msg)
		m.chat = chat
		return cmd
	}
	return nil
}

// handleClick opens the chat under a sidebar click, or focuses the thread
// when the click lands on it.
func (m *Model) handleClick(msg tea.MouseClickMsg) tea.Cmd {
	if msg.X < m.sidebar.Width() {
		id := m.sidebar.ChatAt(msg.Y - ui.HeaderHeight)
		if id == "" {
			return nil
		}
		m.sidebar.StopSearchTyping()
		m.sidebar.SelectChat(id)
		m.log.Debug("chat clicked", "chatID", id)
		return m.openChat(id)
	}

	if m.inThread(msg.X) && m.chat.HasChat() {
		m.setFocus(FocusChat)
	}
	return nil
}

// inThread reports whether column x falls inside the thread panel.
func (m *Model) inThread(x int) bool {
	sidebarWidth, threadWidth, _ := ui.GetViewContext().PanelWidths(m.st.Fullscreen)
	return x >= sidebarWidth && x < sidebarWidth+threadWidth
}
