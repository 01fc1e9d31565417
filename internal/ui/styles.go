package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/murmur/internal/ui/modals"
)

// Color palette, assigned from the active theme by regenerateStyles
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorOwn         color.Color
	ColorPeer        color.Color
	ColorOnline      color.Color
	ColorAway        color.Color
	ColorWarning     color.Color
	ColorError       color.Color
)

// Header and footer styles
var (
	HeaderStyle     lipgloss.Style
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// Chat list styles
var (
	SidebarItemStyle     lipgloss.Style
	SidebarSelectedStyle lipgloss.Style
	SidebarPreviewStyle  lipgloss.Style
	AvatarStyle          lipgloss.Style
	UnreadBadgeStyle     lipgloss.Style
	StoryUnseenStyle     lipgloss.Style
	StorySeenStyle       lipgloss.Style
)

// Thread styles
var (
	ChatOwnStyle          lipgloss.Style
	ChatPeerStyle         lipgloss.Style
	ChatSenderStyle       lipgloss.Style
	ChatMetaStyle         lipgloss.Style
	ChatInputStyle        lipgloss.Style
	ChatInputFocusedStyle lipgloss.Style
	CodeBlockStyle        lipgloss.Style

	EmojiPickerStyle   lipgloss.Style
	EmojiCellStyle     lipgloss.Style
	EmojiSelectedStyle lipgloss.Style
)

// Contacts and auth styles
var (
	AdminBadgeStyle       lipgloss.Style
	AuthCardStyle         lipgloss.Style
	AuthLabelStyle        lipgloss.Style
	AuthLabelFocusedStyle lipgloss.Style
)

// Modal and status styles
var (
	ModalStyle       lipgloss.Style
	ModalTitleStyle  lipgloss.Style
	ModalHelpStyle   lipgloss.Style
	StatusInfoStyle  lipgloss.Style
	StatusErrorStyle lipgloss.Style
)

// RefreshModalStyles pushes the current styles into the modals package.
func RefreshModalStyles() {
	modals.SetStyles(
		ModalTitleStyle, ModalHelpStyle, SidebarItemStyle, SidebarSelectedStyle, StatusErrorStyle,
		ColorPrimary, ColorSecondary, ColorText, ColorTextMuted, ColorTextInverse, ColorOnline, ColorWarning,
		ModalInputWidth, ModalInputCharLimit, ModalWidth, ModalWidthWide, HelpModalMaxVisible,
	)
}
