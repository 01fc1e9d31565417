package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FooterMode selects which set of bindings the footer shows.
type FooterMode int

const (
	FooterAuth FooterMode = iota
	FooterSidebar
	FooterSearch
	FooterThread
	FooterEmoji
	FooterModal
)

// FlashType is the severity of a transient footer message.
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashWarning
	FlashError
)

// FlashDuration is how long a flash message stays in the footer.
const FlashDuration = 4 * time.Second

// FlashTickMsg clears an expired flash message.
type FlashTickMsg time.Time

// FlashTick returns a command that fires once the flash should be dismissed.
func FlashTick() tea.Cmd {
	return tea.Tick(FlashDuration, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width   int
	mode    FooterMode
	admin   bool // Session user may open the admin panel
	social  bool // Calls and stories are available
	hasChat bool // A chat is active

	flash     string
	flashType FlashType
	flashAt   time.Time
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(mode FooterMode, admin, social, hasChat bool) {
	f.mode = mode
	f.admin = admin
	f.social = social
	f.hasChat = hasChat
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetFlash shows a transient message ahead of the bindings.
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.flash = text
	f.flashType = flashType
	f.flashAt = time.Now()
}

// ClearFlashIfExpired drops the flash once FlashDuration has passed.
func (f *Footer) ClearFlashIfExpired(now time.Time) {
	if f.flash != "" && now.Sub(f.flashAt) >= FlashDuration {
		f.flash = ""
	}
}

// Flash returns the current flash message.
func (f *Footer) Flash() string {
	return f.flash
}

// Bindings returns the bindings for the current context.
func (f *Footer) Bindings() []KeyBinding {
	switch f.mode {
	case FooterAuth:
		return []KeyBinding{
			{Key: "tab", Desc: "next field"},
			{Key: "enter", Desc: "submit"},
			{Key: "ctrl+r", Desc: "login/register"},
			{Key: "esc", Desc: "quit"},
		}
	case FooterSearch:
		return []KeyBinding{
			{Key: "type", Desc: "filter"},
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "enter", Desc: "keep filter"},
			{Key: "esc", Desc: "clear"},
		}
	case FooterEmoji:
		return []KeyBinding{
			{Key: "←/→/↑/↓", Desc: "choose"},
			{Key: "enter", Desc: "insert"},
			{Key: "esc", Desc: "close"},
		}
	case FooterModal:
		return []KeyBinding{
			{Key: "enter", Desc: "confirm"},
			{Key: "esc", Desc: "close"},
		}
	case FooterThread:
		b := []KeyBinding{
			{Key: "enter", Desc: "send"},
			{Key: "ctrl+e", Desc: "emoji"},
			{Key: "ctrl+v", Desc: "paste"},
			{Key: "ctrl+y", Desc: "copy last"},
		}
		if f.social {
			b = append(b, KeyBinding{Key: "ctrl+p/o", Desc: "call"})
		}
		return append(b, KeyBinding{Key: "esc", Desc: "back"})
	}

	b := []KeyBinding{
		{Key: "j/k", Desc: "navigate"},
		{Key: "enter", Desc: "open"},
		{Key: "/", Desc: "search"},
	}
	if f.hasChat {
		b = append(b, KeyBinding{Key: "tab", Desc: "thread"})
	}
	if f.social {
		b = append(b, KeyBinding{Key: "s", Desc: "story"})
	}
	b = append(b, KeyBinding{Key: "p", Desc: "profile"})
	if f.admin {
		b = append(b, KeyBinding{Key: "a", Desc: "admin"})
	}
	return append(b,
		KeyBinding{Key: "?", Desc: "help"},
		KeyBinding{Key: "q", Desc: "quit"},
	)
}

// View renders the footer
func (f *Footer) View() string {
	var parts []string
	for _, b := range f.Bindings() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}
	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	if f.flash != "" {
		style := StatusInfoStyle
		switch f.flashType {
		case FlashWarning:
			style = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
		case FlashError:
			style = StatusErrorStyle
		}
		content = style.Render(f.flash) + "  " + content
	}

	return FooterStyle.Width(f.width).MaxHeight(FooterHeight).Render(content)
}
