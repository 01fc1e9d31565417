package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/murmur/internal/model"
	"github.com/zhubert/murmur/internal/state"
	"github.com/zhubert/murmur/internal/ui"
	"github.com/zhubert/murmur/internal/ui/modals"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key             string                              // The key binding (e.g., "p", "tab")
	DisplayKey      string                              // Display name in help (e.g., "Tab"); defaults to Key
	Description     string                              // Human-readable description
	Category        string                              // Section for help modal grouping
	RequiresChat    bool                                // Must have a chat open
	RequiresSidebar bool                                // Must not be in thread focus
	Handler         func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition       func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryNavigation = "Navigation"
	CategoryAccount    = "Account"
	CategorySocial     = "Social"
	CategoryThread     = "Thread (when focused)"
	CategoryGeneral    = "General"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryNavigation,
	CategoryAccount,
	CategorySocial,
	CategoryThread,
	CategoryGeneral,
}

// ShortcutRegistry is the central registry of all keyboard shortcuts.
// Add new shortcuts here and they will automatically appear in the help modal
// and be executable from both direct key presses and the help modal.
var ShortcutRegistry = []Shortcut{
	// Navigation
	{
		Key:          "tab",
		DisplayKey:   "Tab",
		Description:  "Switch between chat list and thread",
		Category:     CategoryNavigation,
		RequiresChat: true,
		Handler:      shortcutToggleFocus,
	},
	{
		Key:             "/",
		Description:     "Search chats",
		Category:        CategoryNavigation,
		RequiresSidebar: true,
		Handler:         shortcutSearch,
		Condition:       func(m *Model) bool { return !m.sidebar.IsSearchMode() },
	},

	// Account
	{
		Key:             "p",
		Description:     "Edit profile",
		Category:        CategoryAccount,
		RequiresSidebar: true,
		Handler:         shortcutProfile,
	},
	{
		Key:             "a",
		Description:     "Admin panel",
		Category:        CategoryAccount,
		RequiresSidebar: true,
		Handler:         shortcutAdmin,
		Condition: func(m *Model) bool {
			return m.st.Variant == model.VariantAdmin && m.st.IsAdmin()
		},
	},
	{
		Key:             "t",
		Description:     "Change theme",
		Category:        CategoryAccount,
		RequiresSidebar: true,
		Handler:         shortcutTheme,
	},

	// Social
	{
		Key:             "s",
		Description:     "View next story",
		Category:        CategorySocial,
		RequiresSidebar: true,
		Handler:         shortcutStory,
		Condition:       func(m *Model) bool { return m.st.Variant == model.VariantSocial },
	},

	// General
	// Note: "?" (help) is handled specially in ExecuteShortcut to avoid init cycle
	{
		Key:             "q",
		Description:     "Quit application",
		Category:        CategoryGeneral,
		RequiresSidebar: true,
		Handler:         shortcutQuit,
	},
}

// helpShortcut is defined separately to avoid initialization cycle.
// It references ShortcutRegistry, so it can't be in the registry itself.
var helpShortcut = Shortcut{
	Key:             "?",
	Description:     "Show this help",
	Category:        CategoryGeneral,
	RequiresSidebar: true,
}

// DisplayOnlyShortcuts are shown in help but not executable from the help modal.
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "↑/↓ or j/k", Description: "Navigate chat list", Category: CategoryNavigation},
	{DisplayKey: "Enter", Description: "Open chat / Send message", Category: CategoryNavigation},
	{DisplayKey: "Esc", Description: "Back / Clear search", Category: CategoryNavigation},

	{DisplayKey: "ctrl-e", Description: "Emoji picker", Category: CategoryThread},
	{DisplayKey: "ctrl-v", Description: "Paste from clipboard", Category: CategoryThread},
	{DisplayKey: "ctrl-y", Description: "Copy last message", Category: CategoryThread},
	{DisplayKey: "PgUp/PgDn", Description: "Scroll history", Category: CategoryThread},
	{DisplayKey: "ctrl-p/ctrl-o", Description: "Voice / video call", Category: CategoryThread},
}

// isShortcutApplicable checks if a shortcut is applicable given the current model state.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if s.RequiresSidebar && m.focus == FocusChat {
		return false
	}
	if s.RequiresChat && !m.chat.HasChat() {
		return false
	}
	if s.Condition != nil && !s.Condition(m) {
		return false
	}
	return true
}

// ExecuteShortcut finds and executes a shortcut by key.
// It checks all guards (RequiresSidebar, RequiresChat, Condition) before executing.
// Returns (model, cmd, true) if the shortcut was found and executed.
// Returns (model, nil, false) if the shortcut was not found or guards failed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	// If sidebar is in search mode, don't process shortcuts - let keys go to search input
	if m.sidebar.IsSearchMode() {
		return m, nil, false
	}

	// Handle help shortcut specially (defined outside registry to avoid init cycle)
	if key == helpShortcut.Key {
		if !m.isShortcutApplicable(helpShortcut) {
			return m, nil, false
		}
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if !m.isShortcutApplicable(s) {
			m.log.Debug("shortcut guard failed", "key", key, "focus", m.focus.String())
			return m, nil, false
		}
		m.log.Debug("shortcut", "key", key)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// getApplicableHelpSections generates help modal sections from shortcuts that are
// applicable in the current application state.
func (m *Model) getApplicableHelpSections(registry []Shortcut, displayOnly []Shortcut) []modals.HelpSection {
	categories := make(map[string][]modals.HelpShortcut)

	for _, s := range registry {
		if !m.isShortcutApplicable(s) {
			continue
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  displayKey(s),
			Desc: s.Description,
		})
	}

	// Thread entries only matter once a chat is open
	for _, s := range displayOnly {
		if s.Category == CategoryThread && !m.chat.HasChat() {
			continue
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  displayKey(s),
			Desc: s.Description,
		})
	}

	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok && len(shortcuts) > 0 {
			sections = append(sections, modals.HelpSection{
				Title:     cat,
				Shortcuts: shortcuts,
			})
		}
	}
	return sections
}

func displayKey(s Shortcut) string {
	if s.DisplayKey != "" {
		return s.DisplayKey
	}
	return s.Key
}

// normalizeHelpDisplayKey converts help modal display keys to actual key values.
// Returns empty string for display-only shortcuts that shouldn't be executed.
func normalizeHelpDisplayKey(key string) string {
	for _, s := range DisplayOnlyShortcuts {
		if s.DisplayKey == key {
			return ""
		}
	}
	for _, s := range ShortcutRegistry {
		if displayKey(s) == key {
			return s.Key
		}
	}
	if key == helpShortcut.Key {
		return key
	}
	return strings.ToLower(key)
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutToggleFocus(m *Model) (tea.Model, tea.Cmd) {
	m.toggleFocus()
	return m, nil
}

func shortcutSearch(m *Model) (tea.Model, tea.Cmd) {
	return m, m.sidebar.EnterSearchMode()
}

func shortcutProfile(m *Model) (tea.Model, tea.Cmd) {
	m.st = state.OpenProfile(m.st)
	if !m.st.ProfileOpen {
		return m, nil
	}
	u, _ := m.st.SessionUser()
	f := m.st.ProfileForm
	joined := "today"
	if !u.JoinedAt.IsZero() {
		joined = u.JoinedAt.Format("Jan 2, 2006")
	}
	m.modal.Show(modals.NewProfileState(f.Name, f.Bio, f.Avatar, u.Email, joined))
	return m, nil
}

func shortcutAdmin(m *Model) (tea.Model, tea.Cmd) {
	cmd := m.apply(state.OpenAdmin(m.st))
	if !m.st.AdminOpen {
		return m, cmd
	}
	m.modal.Show(modals.NewAdminState(
		state.AdminRoster(m.st.Users, m.st.Session),
		state.ComputeStats(m.st.Users, m.st.Chats),
	))
	return m, cmd
}

func shortcutTheme(m *Model) (tea.Model, tea.Cmd) {
	names, displayNames := ui.ThemeChoices()
	m.modal.Show(modals.NewThemeState(names, displayNames, string(ui.CurrentThemeName())))
	return m, nil
}

func shortcutStory(m *Model) (tea.Model, tea.Cmd) {
	st, ok := state.NextUnseenStory(m.st.Stories)
	if !ok {
		return m, m.ShowFlashInfo("No new stories")
	}
	m.st = state.MarkStorySeen(m.st, st.UserID)
	m.stateLog.Debug("story seen", "userID", st.UserID)
	m.syncSidebar()

	name := st.UserID
	if u, ok := m.st.Users.Find(st.UserID); ok {
		name = u.Name
	}
	return m, m.ShowFlashInfo("Viewed " + name + "'s story")
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	// Include help shortcut in the registry for display purposes
	allShortcuts := append(append([]Shortcut{}, ShortcutRegistry...), helpShortcut)
	sections := m.getApplicableHelpSections(allShortcuts, DisplayOnlyShortcuts)
	m.modal.Show(modals.NewHelpState(sections))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
