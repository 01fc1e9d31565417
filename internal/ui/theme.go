// Package ui provides theme management for the application.
// Themes define the color palette used throughout the UI.
package ui

import "charm.land/lipgloss/v2"

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (used for focus, highlights, headers)
	Primary string
	// Secondary is the secondary accent color (used for key hints, peer names)
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSelected string // Selected item background (defaults to Primary if empty)

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Message bubbles
	Own  string // Own bubble background
	Peer string // Peer bubble background

	// Semantic colors
	Online  string // Presence dot, unseen stories
	Away    string // Away presence dot
	Warning string // Banned badge, warnings
	Error   string // Error messages

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused element borders (defaults to Primary if empty)

	// Code blocks inside messages
	CodeBg      string
	ChromaStyle string // chroma style name for fenced code
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeDarkPurple     ThemeName = "dark-purple"
	ThemeNord           ThemeName = "nord"
	ThemeDracula        ThemeName = "dracula"
	ThemeGruvbox        ThemeName = "gruvbox"
	ThemeTokyoNight     ThemeName = "tokyo-night"
	ThemeCatppuccin     ThemeName = "catppuccin"
	ThemeScienceFiction ThemeName = "science-fiction"
	ThemeLight          ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeDarkPurple

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDarkPurple: {
		Name:        "Dark Purple",
		Primary:     "#7C3AED",
		Secondary:   "#06B6D4",
		Bg:          "#1F2937",
		Text:        "#F9FAFB",
		TextMuted:   "#9CA3AF",
		TextInverse: "#1F2937",
		Own:         "#5B21B6",
		Peer:        "#374151",
		Online:      "#4ADE80",
		Away:        "#F59E0B",
		Warning:     "#F59E0B",
		Error:       "#EF4444",
		Border:      "#374151",
		CodeBg:      "#1E1E2E",
		ChromaStyle: "monokai",
	},
	ThemeNord: {
		Name:        "Nord",
		Primary:     "#88C0D0",
		Secondary:   "#81A1C1",
		Bg:          "#2E3440",
		Text:        "#ECEFF4",
		TextMuted:   "#D8DEE9",
		TextInverse: "#2E3440",
		Own:         "#5E81AC",
		Peer:        "#3B4252",
		Online:      "#A3BE8C",
		Away:        "#EBCB8B",
		Warning:     "#EBCB8B",
		Error:       "#BF616A",
		Border:      "#4C566A",
		CodeBg:      "#242933",
		ChromaStyle: "nord",
	},
	ThemeDracula: {
		Name:        "Dracula",
		Primary:     "#BD93F9",
		Secondary:   "#8BE9FD",
		Bg:          "#282A36",
		Text:        "#F8F8F2",
		TextMuted:   "#6272A4",
		TextInverse: "#282A36",
		Own:         "#6D4FA8",
		Peer:        "#44475A",
		Online:      "#50FA7B",
		Away:        "#FFB86C",
		Warning:     "#FFB86C",
		Error:       "#FF5555",
		Border:      "#44475A",
		CodeBg:      "#21222C",
		ChromaStyle: "dracula",
	},
	ThemeGruvbox: {
		Name:        "Gruvbox Dark",
		Primary:     "#FE8019",
		Secondary:   "#83A598",
		Bg:          "#282828",
		Text:        "#EBDBB2",
		TextMuted:   "#A89984",
		TextInverse: "#282828",
		Own:         "#AF3A03",
		Peer:        "#3C3836",
		Online:      "#B8BB26",
		Away:        "#FABD2F",
		Warning:     "#FE8019",
		Error:       "#FB4934",
		Border:      "#504945",
		CodeBg:      "#1D2021",
		ChromaStyle: "gruvbox",
	},
	ThemeTokyoNight: {
		Name:        "Tokyo Night",
		Primary:     "#7AA2F7",
		Secondary:   "#BB9AF7",
		Bg:          "#1A1B26",
		Text:        "#C0CAF5",
		TextMuted:   "#565F89",
		TextInverse: "#1A1B26",
		Own:         "#3D59A1",
		Peer:        "#292E42",
		Online:      "#9ECE6A",
		Away:        "#E0AF68",
		Warning:     "#E0AF68",
		Error:       "#F7768E",
		Border:      "#3B4261",
		CodeBg:      "#16161E",
		ChromaStyle: "tokyonight-night",
	},
	ThemeCatppuccin: {
		Name:        "Catppuccin Mocha",
		Primary:     "#CBA6F7",
		Secondary:   "#89DCEB",
		Bg:          "#1E1E2E",
		Text:        "#CDD6F4",
		TextMuted:   "#6C7086",
		TextInverse: "#1E1E2E",
		Own:         "#7F5AB6",
		Peer:        "#313244",
		Online:      "#A6E3A1",
		Away:        "#FAB387",
		Warning:     "#FAB387",
		Error:       "#F38BA8",
		Border:      "#313244",
		CodeBg:      "#181825",
		ChromaStyle: "catppuccin-mocha",
	},
	ThemeScienceFiction: {
		Name:        "Science Fiction",
		Primary:     "#E50914",
		Secondary:   "#8B0000",
		Bg:          "#0A0A0A",
		BgSelected:  "#2D0A0A",
		Text:        "#E8E8E8",
		TextMuted:   "#666666",
		TextInverse: "#0A0A0A",
		Own:         "#5C0000",
		Peer:        "#1F1F1F",
		Online:      "#00AA00",
		Away:        "#FF6600",
		Warning:     "#FF6600",
		Error:       "#FF0000",
		Border:      "#330000",
		BorderFocus: "#E50914",
		CodeBg:      "#1A0000",
		ChromaStyle: "monokai",
	},
	ThemeLight: {
		Name:        "Light",
		Primary:     "#6366F1",
		Secondary:   "#0891B2",
		Bg:          "#FFFFFF",
		BgSelected:  "#E0E7FF",
		Text:        "#1F2937",
		TextMuted:   "#6B7280",
		TextInverse: "#FFFFFF",
		Own:         "#C7D2FE",
		Peer:        "#F3F4F6",
		Online:      "#16A34A",
		Away:        "#D97706",
		Warning:     "#D97706",
		Error:       "#DC2626",
		Border:      "#D1D5DB",
		BorderFocus: "#6366F1",
		CodeBg:      "#F3F4F6",
		ChromaStyle: "github",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeDarkPurple,
		ThemeNord,
		ThemeDracula,
		ThemeGruvbox,
		ThemeTokyoNight,
		ThemeCatppuccin,
		ThemeScienceFiction,
		ThemeLight,
	}
}

// ThemeChoices returns parallel key and display-name slices for the theme picker.
func ThemeChoices() (names, displayNames []string) {
	for _, n := range ThemeNames() {
		names = append(names, string(n))
		displayNames = append(displayNames, BuiltinThemes[n].Name)
	}
	return names, displayNames
}

// GetTheme returns a theme by name, defaulting to DarkPurple if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// currentTheme holds the active theme
var (
	currentTheme     = BuiltinThemes[DefaultTheme]
	currentThemeName = DefaultTheme
)

func init() {
	regenerateStyles()
	RefreshModalStyles()
}

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	if _, ok := BuiltinThemes[name]; !ok {
		name = DefaultTheme
	}
	currentTheme = BuiltinThemes[name]
	currentThemeName = name
	regenerateStyles()
	RefreshModalStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	return currentThemeName
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	// Update color variables
	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorOwn = lipgloss.Color(t.Own)
	ColorPeer = lipgloss.Color(t.Peer)
	ColorOnline = lipgloss.Color(t.Online)
	ColorAway = lipgloss.Color(t.Away)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorError = lipgloss.Color(t.Error)

	// Header
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	// Footer
	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	// Panels
	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	// Chat list
	SidebarItemStyle = lipgloss.NewStyle().
		Padding(0, 1)

	SidebarSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(lipgloss.Color(t.Text)).
		Bold(true).
		Padding(0, 1)

	SidebarPreviewStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	AvatarStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorSecondary).
		Bold(true).
		Padding(0, 1)

	UnreadBadgeStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	StoryUnseenStyle = lipgloss.NewStyle().
		Foreground(ColorOnline).
		Bold(true)

	StorySeenStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	// Thread
	ChatOwnStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorOwn).
		Padding(0, 1)

	ChatPeerStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorPeer).
		Padding(0, 1)

	ChatSenderStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	ChatMetaStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	ChatInputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	ChatInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	CodeBlockStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.CodeBg)).
		Padding(0, 1)

	// Emoji picker
	EmojiPickerStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Background(ColorBg).
		Padding(0, 1)

	EmojiCellStyle = lipgloss.NewStyle().
		Padding(0, 1)

	EmojiSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Padding(0, 1)

	// Contacts
	AdminBadgeStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorWarning).
		Bold(true).
		Padding(0, 1)

	// Auth
	AuthCardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(AuthCardWidth)

	AuthLabelStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	AuthLabelFocusedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	// Modals
	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	// Status
	StatusInfoStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
}
