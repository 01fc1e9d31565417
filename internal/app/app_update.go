package app

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/murmur/internal/clipboard"
	"github.com/zhubert/murmur/internal/keys"
	"github.com/zhubert/murmur/internal/logger"
	"github.com/zhubert/murmur/internal/model"
	"github.com/zhubert/murmur/internal/state"
	"github.com/zhubert/murmur/internal/ui"
)

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		if result, cmd := m.handleKeyPress(msg); result != nil {
			return result, cmd
		}
		// Key not handled by handleKeyPress, let it fall through to focused panel

	case tea.MouseMsg:
		return m, m.routeMouseEvents(msg)

	case tea.PasteMsg:
		if m.st.Authenticated && m.focus == FocusChat && !m.modal.IsVisible() {
			m.chat.InsertText(msg.Content)
			m.st = state.SetDraft(m.st, m.chat.GetInput())
			return m, nil
		}

	case ui.FlashTickMsg:
		m.footer.ClearFlashIfExpired(time.Time(msg))
		return m, nil

	case HelpShortcutTriggeredMsg:
		return m.handleHelpShortcutTrigger(msg.Key)
	}

	if !m.st.Authenticated {
		auth, cmd := m.authView.Update(msg)
		m.authView = auth
		m.syncAuthForm()
		return m, cmd
	}

	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	if m.focus == FocusSidebar {
		return m.updateSidebar(msg)
	}

	chat, cmd := m.chat.Update(msg)
	m.chat = chat
	m.st = state.SetDraft(m.st, m.chat.GetInput())
	return m, cmd
}

// handleKeyPress handles all keyboard input.
// Returns (model, cmd) if the key was handled, or (nil, nil) if it should fall through
// to the focused panel for handling.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.log.Debug("key press", "key", key, "focus", m.focus.String(), "modal", m.modal.IsVisible())

	if !m.st.Authenticated {
		return m.handleAuthKey(key)
	}

	// Handle ctrl+c specially - always quits
	if key == keys.CtrlC {
		return m, tea.Quit
	}

	// Handle modal first if visible
	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	if m.focus == FocusChat && m.chat.HasChat() {
		if result, cmd, handled := m.handleChatFocusedKeys(msg); handled {
			return result, cmd
		}
		return nil, nil
	}

	// Try executing from shortcut registry
	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}

	if key == keys.Enter && !m.sidebar.IsSearchMode() {
		if id := m.sidebar.SelectedChatID(); id != "" {
			return m, m.openChat(id)
		}
		return m, nil
	}

	return nil, nil
}

// handleAuthKey handles the keys the auth card leaves to the app.
func (m *Model) handleAuthKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case keys.CtrlC, keys.Escape:
		return m, tea.Quit
	case keys.CtrlR:
		m.st = state.ToggleAuthMode(m.st)
		return m, m.authView.SetMode(m.st.AuthMode)
	case keys.Enter:
		return m.submitAuth()
	}
	return nil, nil
}

// syncAuthForm copies the auth card inputs into the view state.
func (m *Model) syncAuthForm() {
	name, email, password := m.authView.Values()
	m.st = state.SetAuthField(m.st, state.AuthName, name)
	m.st = state.SetAuthField(m.st, state.AuthEmail, email)
	m.st = state.SetAuthField(m.st, state.AuthPassword, password)
}

func (m *Model) submitAuth() (tea.Model, tea.Cmd) {
	m.syncAuthForm()
	cmd := m.apply(state.SubmitAuth(m.st, m.verifier, m.ids, m.now()))
	if !m.st.Authenticated {
		return m, cmd
	}

	m.authView.ClearPassword()
	m.stateLog = logger.WithUser(m.st.Session).With(slog.String("component", "state"))
	m.syncAll()
	m.setFocus(FocusSidebar)
	m.updateSizes()
	return m, tea.Batch(cmd, m.notifyUnread())
}

// updateSidebar forwards a message to the chat list and re-applies the
// search filter when the query changed.
func (m *Model) updateSidebar(msg tea.Msg) (tea.Model, tea.Cmd) {
	sidebar, cmd := m.sidebar.Update(msg)
	m.sidebar = sidebar
	if q := m.sidebar.GetSearchQuery(); q != m.st.Search {
		m.st = state.SetSearch(m.st, q)
		m.syncSidebar()
	}
	return m, cmd
}

// handleChatFocusedKeys handles keys specific to the thread panel.
// Returns (model, cmd, handled).
func (m *Model) handleChatFocusedKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd, bool) {
	key := msg.String()

	if m.chat.IsEmojiPickerOpen() {
		glyph, done := m.chat.Picker().Update(msg)
		if !done {
			return m, nil, true
		}
		m.st = state.SetDraft(m.st, m.chat.GetInput())
		if glyph != "" {
			m.st = state.AppendEmoji(m.st, glyph)
			m.chat.SetInput(m.st.Draft)
		} else {
			m.st = state.ToggleEmojiPicker(m.st)
		}
		m.chat.SetEmojiPicker(m.st.EmojiPicker)
		return m, nil, true
	}

	switch key {
	case keys.Enter:
		return m, m.sendDraft(), true

	case keys.Escape, keys.Tab:
		m.leaveThread()
		return m, nil, true

	case keys.CtrlE:
		m.st = state.SetDraft(m.st, m.chat.GetInput())
		m.st = state.ToggleEmojiPicker(m.st)
		m.chat.SetEmojiPicker(m.st.EmojiPicker)
		return m, nil, true

	case keys.CtrlV:
		text, err := clipboard.ReadText()
		if err != nil {
			return m, m.ShowFlashError("Clipboard unavailable"), true
		}
		if text != "" {
			m.chat.InsertText(text)
			m.st = state.SetDraft(m.st, m.chat.GetInput())
		}
		return m, nil, true

	case keys.CtrlY:
		text, ok := m.chat.LastMessageText()
		if !ok {
			return m, nil, true
		}
		if err := clipboard.WriteText(text); err != nil {
			return m, m.ShowFlashError("Clipboard unavailable"), true
		}
		return m, m.ShowFlashInfo("Copied last message"), true

	case keys.CtrlP, keys.CtrlO:
		if m.st.Variant != model.VariantSocial {
			return m, nil, false
		}
		kind := state.CallVoice
		if key == keys.CtrlO {
			kind = state.CallVideo
		}
		return m, m.apply(state.RequestCall(m.st, kind)), true
	}

	return m, nil, false
}

// sendDraft dispatches the composer text through the delivery mode.
func (m *Model) sendDraft() tea.Cmd {
	m.st = state.SetDraft(m.st, m.chat.GetInput())
	cmd := m.apply(state.Send(m.st, m.ids, m.now()))
	m.chat.SetInput(m.st.Draft)
	m.syncChat()
	m.syncSidebar()
	return cmd
}
