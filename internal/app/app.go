package app

import (
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/murmur/internal/auth"
	"github.com/zhubert/murmur/internal/config"
	"github.com/zhubert/murmur/internal/logger"
	"github.com/zhubert/murmur/internal/model"
	"github.com/zhubert/murmur/internal/notification"
	"github.com/zhubert/murmur/internal/seed"
	"github.com/zhubert/murmur/internal/state"
	"github.com/zhubert/murmur/internal/ui"
)

// Focus represents which panel is focused
type Focus int

const (
	FocusSidebar Focus = iota
	FocusChat
)

func (f Focus) String() string {
	if f == FocusChat {
		return "chat"
	}
	return "sidebar"
}

// Model is the main Bubble Tea model. The view state lives in st; the ui
// components only render what the model pushes into them.
type Model struct {
	config   *config.Config
	verifier auth.Verifier
	ids      auth.IDGenerator
	now      func() time.Time

	st state.State

	header   *ui.Header
	footer   *ui.Footer
	sidebar  *ui.Sidebar
	chat     *ui.Chat
	contacts *ui.Contacts
	authView *ui.AuthScreen
	modal    *ui.Modal

	width  int
	height int
	focus  Focus

	log      *slog.Logger
	stateLog *slog.Logger
}

// HelpShortcutTriggeredMsg is sent when a shortcut is picked from the help modal
type HelpShortcutTriggeredMsg struct {
	Key string
}

// New creates a new app model over a dataset. ids defaults to UUIDs.
func New(cfg *config.Config, ds seed.Dataset, verifier auth.Verifier, ids auth.IDGenerator) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}
	if ids == nil {
		ids = auth.UUIDGenerator{}
	}

	m := &Model{
		config:   cfg,
		verifier: verifier,
		ids:      ids,
		now:      time.Now,
		st:       state.New(cfg.GetVariant(), ds, cfg.GetDelivery()),
		header:   ui.NewHeader(),
		footer:   ui.NewFooter(),
		sidebar:  ui.NewSidebar(),
		chat:     ui.NewChat(state.Emojis()),
		contacts: ui.NewContacts(),
		authView: ui.NewAuthScreen(authHint(cfg)),
		modal:    ui.NewModal(),
		focus:    FocusSidebar,
		log:      logger.WithComponent("app"),
		stateLog: logger.WithComponent("state"),
	}

	m.chat.SetSocial(m.st.Variant == model.VariantSocial)
	m.chat.SetTimeFormat(cfg.GetTimeFormat())
	m.sidebar.SetFocused(true)
	m.syncAll()

	m.log.Info("model created", "variant", string(m.st.Variant), "delivery", string(m.st.Delivery),
		"users", len(m.st.Users), "chats", len(m.st.Chats))
	return m
}

// authHint is the demo credentials line under the auth card.
func authHint(cfg *config.Config) string {
	creds := cfg.AdminCredentials()
	switch {
	case creds.Email == "":
		return "Any email and password will sign you in"
	case creds.Password != "":
		return fmt.Sprintf("Admin: %s / %s", creds.Email, creds.Password)
	default:
		return "Admin: " + creds.Email
	}
}

// State returns the current view state.
func (m *Model) State() state.State {
	return m.st
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return m.authView.SetMode(m.st.AuthMode)
}

// apply stores a transition result and logs its effect. A status line in
// the effect becomes a warning flash.
func (m *Model) apply(s state.State, eff state.Effect) tea.Cmd {
	m.st = s
	eff.Log(m.stateLog)
	if eff.Status != "" {
		return m.ShowFlashWarning(eff.Status)
	}
	return nil
}

// syncAll pushes the view state into every component.
func (m *Model) syncAll() {
	m.syncHeader()
	m.syncSidebar()
	m.syncChat()
	m.contacts.SetUsers(state.OnlineRoster(m.st.Users, m.st.Session))
}

func (m *Model) syncHeader() {
	if u, ok := m.st.SessionUser(); ok {
		m.header.SetUser(u.Name, u.Presence())
		return
	}
	m.header.SetUser("", "")
}

func (m *Model) syncSidebar() {
	m.sidebar.SetChats(state.FilteredChats(m.st.Chats, m.st.Search))
	m.sidebar.SetStories(m.st.Stories, m.st.Users)
}

func (m *Model) syncChat() {
	m.chat.SetHasChats(len(m.st.Chats) > 0)
	c, ok := m.st.Active()
	if !ok {
		m.chat.ClearChat()
		return
	}
	m.chat.SetChat(c, m.st.Users)
	m.chat.SetEmojiPicker(m.st.EmojiPicker)
}

// setFocus moves focus between the chat list and the thread.
func (m *Model) setFocus(f Focus) {
	if f == FocusChat && !m.chat.HasChat() {
		f = FocusSidebar
	}
	if m.focus != f {
		m.log.Debug("focus changed", "from", m.focus.String(), "to", f.String())
	}
	m.focus = f
	m.sidebar.SetFocused(f == FocusSidebar)
	m.chat.SetFocused(f == FocusChat)
}

// toggleFocus switches between sidebar and thread
func (m *Model) toggleFocus() {
	if m.focus == FocusSidebar {
		m.setFocus(FocusChat)
		return
	}
	m.leaveThread()
}

// leaveThread is the back button: collapse fullscreen, close the picker and
// focus the chat list.
func (m *Model) leaveThread() {
	m.st = state.SetDraft(m.st, m.chat.GetInput())
	m.st = state.ExitFullscreen(m.st)
	m.chat.SetEmojiPicker(false)
	m.setFocus(FocusSidebar)
	m.updateSizes()
}

// openChat selects a chat and switches to its fullscreen thread.
func (m *Model) openChat(id string) tea.Cmd {
	cmd := m.apply(state.SelectChat(m.st, id))
	if m.st.ActiveChat != id {
		return cmd
	}
	m.syncChat()
	m.chat.SetInput(m.st.Draft)
	m.setFocus(FocusChat)
	m.updateSizes()
	return cmd
}

// notifyUnread sends the unread summary as a desktop notification.
func (m *Model) notifyUnread() tea.Cmd {
	if !m.config.GetNotificationsEnabled() {
		return nil
	}
	chats := m.st.Chats
	return func() tea.Msg {
		if _, err := notification.NotifyUnread(chats); err != nil {
			m.log.Warn("unread notification failed", "error", err)
		}
		return nil
	}
}
