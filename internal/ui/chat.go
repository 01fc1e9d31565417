package ui

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/murmur/internal/model"
	"github.com/zhubert/murmur/internal/state"
)

// DefaultTimeFormat is used for message timestamps until SetTimeFormat is called.
const DefaultTimeFormat = "15:04"

// Chat represents the thread panel: message history and composer
type Chat struct {
	viewport viewport.Model
	input    textarea.Model
	picker   *EmojiPicker

	width   int
	height  int
	focused bool

	hasChat    bool
	hasChats   bool
	chat       model.Chat
	users      model.Users
	social     bool
	pickerOpen bool
	timeFormat string
}

// NewChat creates a new thread panel
func NewChat(glyphs []string) *Chat {
	ti := textarea.New()
	ti.Placeholder = "Type a message..."
	ti.CharLimit = 0
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		viewport:   vp,
		input:      ti,
		picker:     NewEmojiPicker(glyphs),
		timeFormat: DefaultTimeFormat,
	}
	c.updateContent()
	return c
}

// SetSize sets the thread panel dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	ctx := GetViewContext()

	threadPanelHeight := height - InputTotalHeight
	innerWidth := ctx.InnerWidth(width)
	viewportHeight := max(1, ctx.InnerHeight(threadPanelHeight)-ThreadTitleHeight)

	c.viewport.SetWidth(innerWidth)
	c.viewport.SetHeight(viewportHeight)
	c.input.SetWidth(max(1, ctx.InnerWidth(width)-InputPaddingWidth))

	ctx.Log("Chat.SetSize", "outerWidth", width, "outerHeight", height, "viewportHeight", viewportHeight)
	c.updateContent()
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetSocial enables call hints in the thread title.
func (c *Chat) SetSocial(social bool) {
	c.social = social
}

// SetTimeFormat sets the Go layout used for message timestamps.
func (c *Chat) SetTimeFormat(layout string) {
	if layout == "" {
		layout = DefaultTimeFormat
	}
	c.timeFormat = layout
	c.updateContent()
}

// SetHasChats tells the placeholder whether the chat list is empty.
func (c *Chat) SetHasChats(has bool) {
	c.hasChats = has
}

// SetChat shows a chat. users resolves peer names.
func (c *Chat) SetChat(chat model.Chat, users model.Users) {
	c.chat = chat
	c.users = users
	c.hasChat = true
	c.updateContent()
}

// ClearChat returns to the placeholder.
func (c *Chat) ClearChat() {
	c.chat = model.Chat{}
	c.hasChat = false
	c.pickerOpen = false
	c.updateContent()
}

// HasChat reports whether a chat is shown.
func (c *Chat) HasChat() bool {
	return c.hasChat
}

// ChatID returns the shown chat's ID, or "".
func (c *Chat) ChatID() string {
	if !c.hasChat {
		return ""
	}
	return c.chat.ID
}

// GetInput returns the composer text as typed.
func (c *Chat) GetInput() string {
	return c.input.Value()
}

// SetInput replaces the composer text.
func (c *Chat) SetInput(value string) {
	c.input.SetValue(value)
}

// ClearInput clears the composer.
func (c *Chat) ClearInput() {
	c.input.Reset()
}

// InsertText inserts text at the cursor, e.g. from the clipboard.
func (c *Chat) InsertText(s string) {
	c.input.InsertString(s)
}

// SetEmojiPicker opens or closes the picker overlay.
func (c *Chat) SetEmojiPicker(open bool) {
	if open && !c.pickerOpen {
		c.picker.Reset()
	}
	c.pickerOpen = open
}

// IsEmojiPickerOpen reports whether the picker overlay is shown.
func (c *Chat) IsEmojiPickerOpen() bool {
	return c.pickerOpen
}

// Picker returns the emoji picker.
func (c *Chat) Picker() *EmojiPicker {
	return c.picker
}

// LastMessageText returns the text of the newest message in the thread.
func (c *Chat) LastMessageText() (string, bool) {
	if !c.hasChat {
		return "", false
	}
	m, ok := c.chat.Messages.Last()
	if !ok {
		return "", false
	}
	return m.Text, true
}

func (c *Chat) senderName(m model.Message) string {
	if m.Sender.IsOwn() {
		return "You"
	}
	if u, ok := c.users.Find(m.Sender.UserID); ok {
		return u.Name
	}
	return m.Sender.UserID
}

func (c *Chat) renderMessage(m model.Message, innerWidth int) string {
	bubbleWidth := max(10, innerWidth*2/BubbleWidthRatio)

	text := renderMessageText(strings.TrimSpace(m.Text), bubbleWidth-2)
	style := ChatPeerStyle
	if state.MessageAlignment(m) == state.AlignRight {
		style = ChatOwnStyle
	}
	bubble := style.MaxWidth(bubbleWidth).Render(text)

	var meta []string
	if !m.SentAt.IsZero() {
		meta = append(meta, m.SentAt.Format(c.timeFormat))
	}
	if r := state.Receipt(m); r != "" {
		meta = append(meta, r)
	}

	var parts []string
	if c.chat.Group && !m.Sender.IsOwn() {
		parts = append(parts, ChatSenderStyle.Render(c.senderName(m)))
	}
	parts = append(parts, bubble)
	if len(meta) > 0 {
		parts = append(parts, ChatMetaStyle.Render(strings.Join(meta, " ")))
	}

	if state.MessageAlignment(m) == state.AlignRight {
		block := lipgloss.JoinVertical(lipgloss.Right, parts...)
		return lipgloss.PlaceHorizontal(innerWidth, lipgloss.Right, block)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (c *Chat) updateContent() {
	wrapWidth := c.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	var sb strings.Builder
	if !c.hasChat {
		sb.WriteString(renderNoChatMessage(c.hasChats))
	} else if len(c.chat.Messages) == 0 {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("No messages yet. Say hello!"))
	} else {
		for i, m := range c.chat.Messages {
			if i > 0 {
				sb.WriteString("\n\n")
			}
			sb.WriteString(c.renderMessage(m, wrapWidth))
		}
	}

	c.viewport.SetContent(sb.String())
	c.viewport.GotoBottom()
}

func (c *Chat) titleLine(innerWidth int) string {
	if !c.hasChat {
		return PanelTitleStyle.Render("Messages")
	}

	title := truncateName(c.chat.Name, max(1, innerWidth/2))
	var sub string
	switch {
	case c.chat.Group:
		sub = pluralize(len(c.chat.Participants), "member")
	case len(c.chat.Participants) == 1:
		if u, ok := c.users.Find(c.chat.Participants[0]); ok {
			sub = u.Presence()
		}
	}

	left := PanelTitleStyle.Render(title)
	if sub != "" {
		left += ChatMetaStyle.Render(sub)
	}
	if !c.social {
		return left
	}

	calls := FooterKeyStyle.Render("ctrl+p") + FooterDescStyle.Render(" voice  ") +
		FooterKeyStyle.Render("ctrl+o") + FooterDescStyle.Render(" video ")
	gap := innerWidth - lipgloss.Width(left) - lipgloss.Width(calls)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + calls
}

// Update handles messages
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	var cmds []tea.Cmd

	if c.focused && c.hasChat {
		if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
			switch keyMsg.String() {
			case "pgup", "pgdown", "ctrl+up", "ctrl+down", "home", "end":
				var cmd tea.Cmd
				c.viewport, cmd = c.viewport.Update(msg)
				return c, cmd
			}

			var cmd tea.Cmd
			c.input, cmd = c.input.Update(msg)
			return c, cmd
		}
	}

	// Non-key events (mouse wheel) scroll the history
	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return c, tea.Batch(cmds...)
}

// View renders the thread panel
func (c *Chat) View() string {
	panelStyle := PanelStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
	}
	innerWidth := GetViewContext().InnerWidth(c.width)

	if !c.hasChat {
		content := lipgloss.JoinVertical(lipgloss.Left, c.titleLine(innerWidth), renderNoChatMessage(c.hasChats))
		return panelStyle.Width(c.width).Height(c.height).Render(content)
	}

	threadPanelHeight := c.height - InputTotalHeight
	content := lipgloss.JoinVertical(lipgloss.Left, c.titleLine(innerWidth), c.viewport.View())
	threadPanel := panelStyle.Width(c.width).Height(threadPanelHeight).Render(content)

	if c.pickerOpen {
		threadPanel = c.picker.Overlay(threadPanel, c.width, threadPanelHeight, 1)
	}

	inputStyle := ChatInputStyle
	if c.focused {
		inputStyle = ChatInputFocusedStyle
	}
	inputArea := inputStyle.Width(c.width).Render(c.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, threadPanel, inputArea)
}
