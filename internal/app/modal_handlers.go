package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/murmur/internal/keys"
	"github.com/zhubert/murmur/internal/state"
	"github.com/zhubert/murmur/internal/ui"
	"github.com/zhubert/murmur/internal/ui/modals"
)

// handleModalKey routes modal key events to the appropriate handler based on modal state type.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	case *modals.ProfileState:
		return m.handleProfileModal(key, msg, s)
	case *modals.AdminState:
		return m.handleAdminModal(key, msg, s)
	case *modals.ThemeState:
		return m.handleThemeModal(key, msg, s)
	case *modals.HelpState:
		return m.handleHelpModal(key, msg, s)
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleProfileModal handles key events for the profile editor.
func (m *Model) handleProfileModal(key string, msg tea.KeyPressMsg, s *modals.ProfileState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.st = state.CancelProfile(m.st)
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		name, bio, avatar := s.GetValues()
		m.st = state.SetProfileField(m.st, state.ProfileName, name)
		m.st = state.SetProfileField(m.st, state.ProfileBio, bio)
		m.st = state.SetProfileField(m.st, state.ProfileAvatar, avatar)
		cmd := m.apply(state.SaveProfile(m.st))
		m.modal.Hide()
		m.syncAll()
		return m, tea.Batch(cmd, m.ShowFlashInfo("Profile saved"))
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleAdminModal handles key events for the admin panel.
func (m *Model) handleAdminModal(key string, msg tea.KeyPressMsg, s *modals.AdminState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape, "q":
		m.st = state.CloseAdmin(m.st)
		m.modal.Hide()
		return m, nil
	case "b", "x":
		id := s.SelectedUserID()
		if id == "" {
			return m, nil
		}
		var cmd tea.Cmd
		if key == "b" {
			cmd = m.apply(state.ToggleBan(m.st, id))
		} else {
			cmd = m.apply(state.DeleteUser(m.st, id))
		}
		s.Refresh(state.AdminRoster(m.st.Users, m.st.Session), state.ComputeStats(m.st.Users, m.st.Chats))
		m.syncAll()
		return m, cmd
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleThemeModal handles key events for the theme picker.
func (m *Model) handleThemeModal(key string, msg tea.KeyPressMsg, s *modals.ThemeState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		m.modal.Hide()
		if !s.ThemeChanged() {
			return m, nil
		}
		theme := s.GetSelectedTheme()
		ui.SetThemeByName(theme)
		m.config.SetTheme(theme)
		if err := m.config.Save(); err != nil {
			m.log.Warn("failed to save theme", "theme", theme, "error", err)
		}
		// Cached renders carry the old palette
		m.syncAll()
		return m, m.ShowFlashInfo("Theme changed to " + ui.CurrentTheme().Name)
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleHelpModal handles key events for the Help modal.
func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, s *modals.HelpState) (tea.Model, tea.Cmd) {
	// While filtering, forward all keys to the list (Esc cancels filter, Enter applies)
	if s.IsFiltering() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	switch key {
	case keys.Escape, "?", "q":
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		shortcut := s.GetSelectedShortcut()
		if shortcut == nil {
			return m, nil
		}
		m.modal.Hide()
		return m, func() tea.Msg {
			return HelpShortcutTriggeredMsg{Key: shortcut.Key}
		}
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleHelpShortcutTrigger handles shortcuts triggered from the help modal.
func (m *Model) handleHelpShortcutTrigger(key string) (tea.Model, tea.Cmd) {
	normalized := normalizeHelpDisplayKey(key)
	if normalized == "" {
		return m, nil // Display-only shortcut, no action
	}
	result, cmd, _ := m.ExecuteShortcut(normalized)
	return result, cmd
}
