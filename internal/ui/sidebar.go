package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/murmur/internal/keys"
	"github.com/zhubert/murmur/internal/model"
)

// sidebarRowHeight is the number of lines per chat row (name + preview)
const sidebarRowHeight = 2

// Sidebar represents the left panel with the chat list
type Sidebar struct {
	chats        model.Chats // Already filtered by the caller
	stories      model.Stories
	users        model.Users
	selectedIdx  int
	width        int
	height       int
	focused      bool
	scrollOffset int

	// Search mode
	searchMode  bool
	searchInput textinput.Model
}

// NewSidebar creates a new sidebar
func NewSidebar() *Sidebar {
	ti := textinput.New()
	ti.Placeholder = "search chats..."
	ti.CharLimit = SidebarSearchCharLimit

	return &Sidebar{searchInput: ti}
}

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height

	ctx := GetViewContext()
	ctx.Log("Sidebar.SetSize",
		"outerWidth", width,
		"outerHeight", height,
		"innerWidth", ctx.InnerWidth(width),
		"innerHeight", ctx.InnerHeight(height),
	)
}

// Width returns the sidebar width
func (s *Sidebar) Width() int {
	return s.width
}

// SetFocused sets the focus state
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// IsFocused returns the focus state
func (s *Sidebar) IsFocused() bool {
	return s.focused
}

// SetChats replaces the listed chats, keeping the selection on the same
// chat when it is still listed.
func (s *Sidebar) SetChats(chats model.Chats) {
	prev := s.SelectedChatID()
	s.chats = chats
	if prev != "" {
		if i := chats.Index(prev); i >= 0 {
			s.selectedIdx = i
			return
		}
	}
	s.clampSelection()
}

// SetStories sets the stories strip. users resolves initials.
func (s *Sidebar) SetStories(stories model.Stories, users model.Users) {
	s.stories = stories
	s.users = users
}

func (s *Sidebar) clampSelection() {
	if s.selectedIdx >= len(s.chats) {
		s.selectedIdx = len(s.chats) - 1
	}
	if s.selectedIdx < 0 {
		s.selectedIdx = 0
	}
}

// SelectedChatID returns the highlighted chat, or "" when the list is empty.
func (s *Sidebar) SelectedChatID() string {
	if s.selectedIdx < 0 || s.selectedIdx >= len(s.chats) {
		return ""
	}
	return s.chats[s.selectedIdx].ID
}

// SelectChat moves the highlight to a chat by ID.
func (s *Sidebar) SelectChat(id string) {
	if i := s.chats.Index(id); i >= 0 {
		s.selectedIdx = i
	}
}

// EnterSearchMode activates search mode
func (s *Sidebar) EnterSearchMode() tea.Cmd {
	s.searchMode = true
	return s.searchInput.Focus()
}

// ExitSearchMode deactivates search mode and clears the filter
func (s *Sidebar) ExitSearchMode() {
	s.searchMode = false
	s.searchInput.Blur()
	s.searchInput.SetValue("")
}

// StopSearchTyping leaves search mode but keeps the filter.
func (s *Sidebar) StopSearchTyping() {
	s.searchMode = false
	s.searchInput.Blur()
}

// IsSearchMode returns whether search mode is active
func (s *Sidebar) IsSearchMode() bool {
	return s.searchMode
}

// GetSearchQuery returns the current search query
func (s *Sidebar) GetSearchQuery() string {
	return s.searchInput.Value()
}

// Update handles messages
func (s *Sidebar) Update(msg tea.Msg) (*Sidebar, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !s.focused {
		return s, nil
	}

	if s.searchMode {
		switch keyMsg.String() {
		case keys.Escape:
			s.ExitSearchMode()
			return s, nil
		case keys.Enter:
			s.StopSearchTyping()
			return s, nil
		case keys.Up:
			if s.selectedIdx > 0 {
				s.selectedIdx--
			}
			return s, nil
		case keys.Down:
			if s.selectedIdx < len(s.chats)-1 {
				s.selectedIdx++
			}
			return s, nil
		default:
			var cmd tea.Cmd
			s.searchInput, cmd = s.searchInput.Update(msg)
			return s, cmd
		}
	}

	switch keyMsg.String() {
	case keys.Up, "k":
		if s.selectedIdx > 0 {
			s.selectedIdx--
		}
	case keys.Down, "j":
		if s.selectedIdx < len(s.chats)-1 {
			s.selectedIdx++
		}
	}
	return s, nil
}

func (s *Sidebar) showSearch() bool {
	return s.searchMode || s.searchInput.Value() != ""
}

// headerLines counts the lines above the first chat row.
func (s *Sidebar) headerLines() int {
	n := 1
	if len(s.stories) > 0 {
		n++
	}
	if s.showSearch() {
		n++
	}
	return n
}

// ChatAt returns the chat drawn at line y of the panel, counting the top
// border as line 0. Rows are resolved against the last rendered scroll
// offset. Returns "" outside the list.
func (s *Sidebar) ChatAt(y int) string {
	innerHeight := GetViewContext().InnerHeight(s.height)
	visibleHeight := max(1, innerHeight-s.headerLines())
	line := y - 1 - s.headerLines()
	if line < 0 || line >= visibleHeight {
		return ""
	}
	idx := (line + s.scrollOffset) / sidebarRowHeight
	if idx >= len(s.chats) {
		return ""
	}
	return s.chats[idx].ID
}

func (s *Sidebar) renderStories() string {
	if len(s.stories) == 0 {
		return ""
	}
	var parts []string
	for _, st := range s.stories {
		initial := "?"
		if u, ok := s.users.Find(st.UserID); ok {
			initial = u.Initial()
		}
		if st.Seen {
			parts = append(parts, StorySeenStyle.Render("○"+initial))
		} else {
			parts = append(parts, StoryUnseenStyle.Render("●"+initial))
		}
	}
	return strings.Join(parts, " ")
}

func (s *Sidebar) renderRow(c model.Chat, innerWidth int, selected bool) string {
	avatar := AvatarStyle.Render(model.Initial(c.Name))
	if c.Group {
		avatar = AvatarStyle.Render("#")
	}

	var badge string
	if c.Unread > 0 {
		badge = UnreadBadgeStyle.Render(fmt.Sprintf("%d", c.Unread))
	}

	// Item style pads one cell on each side
	rowWidth := innerWidth - 2
	nameWidth := rowWidth - lipgloss.Width(avatar) - 1 - lipgloss.Width(badge)
	name := truncateName(c.Name, nameWidth)
	gap := max(1, rowWidth-lipgloss.Width(avatar)-1-lipgloss.Width(name)-lipgloss.Width(badge))
	first := avatar + " " + name + strings.Repeat(" ", gap) + badge

	preview := "No messages yet"
	if c.LastMessage != nil {
		preview = c.LastMessage.Text
		if c.LastMessage.Sender.IsOwn() {
			preview = "You: " + preview
		}
	}
	indent := strings.Repeat(" ", lipgloss.Width(avatar)+1)
	second := indent + SidebarPreviewStyle.Render(truncatePreview(preview, rowWidth-len(indent)))

	style := SidebarItemStyle.Width(innerWidth)
	if selected {
		style = SidebarSelectedStyle.Width(innerWidth)
	}
	return style.Render(first + "\n" + second)
}

// View renders the sidebar
func (s *Sidebar) View() string {
	ctx := GetViewContext()

	style := PanelStyle
	if s.focused {
		style = PanelFocusedStyle
	}

	innerWidth := ctx.InnerWidth(s.width)
	innerHeight := ctx.InnerHeight(s.height)

	var header []string
	header = append(header, PanelTitleStyle.Render("Chats"))
	if strip := s.renderStories(); strip != "" {
		header = append(header, " "+strip)
	}
	if s.showSearch() {
		searchStyle := lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)
		s.searchInput.SetWidth(max(1, innerWidth-3)) // Leave room for "/ "
		header = append(header, searchStyle.Render("/")+" "+s.searchInput.View())
	}
	visibleHeight := max(1, innerHeight-s.headerLines())

	var content string
	if len(s.chats) == 0 {
		emptyMsg := "No chats yet."
		if s.searchInput.Value() != "" {
			emptyMsg = "No matches."
		}
		content = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render(emptyMsg)
	} else {
		var allLines []string
		for i, c := range s.chats {
			rendered := s.renderRow(c, innerWidth, i == s.selectedIdx)
			allLines = append(allLines, strings.Split(rendered, "\n")...)
		}

		// Keep the selected row on screen
		selectedStart := s.selectedIdx * sidebarRowHeight
		if selectedStart < s.scrollOffset {
			s.scrollOffset = selectedStart
		} else if selectedStart+sidebarRowHeight > s.scrollOffset+visibleHeight {
			s.scrollOffset = selectedStart + sidebarRowHeight - visibleHeight
		}
		maxScroll := max(0, len(allLines)-visibleHeight)
		s.scrollOffset = min(max(0, s.scrollOffset), maxScroll)

		allLines = allLines[s.scrollOffset:]
		if len(allLines) > visibleHeight {
			allLines = allLines[:visibleHeight]
		}
		content = strings.Join(allLines, "\n")
	}

	body := lipgloss.JoinVertical(lipgloss.Left, append(header, content)...)
	return style.Width(s.width).Height(s.height).Render(body)
}
