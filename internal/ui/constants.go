// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// SidebarWidthRatio is the denominator for the chat list width (1/4 of total width)
	SidebarWidthRatio = 4

	// MinSidebarWidth keeps chat names readable on narrow terminals
	MinSidebarWidth = 24

	// ContactsWidth is the fixed width of the contacts panel
	ContactsWidth = 28

	// TextareaHeight is the number of lines for the composer textarea
	TextareaHeight = 3

	// TextareaBorderHeight is the border size around the textarea
	TextareaBorderHeight = 2

	// InputPaddingWidth is the horizontal padding inside the input area (Padding(0, 1) = 1 left + 1 right)
	InputPaddingWidth = 2

	// InputTotalHeight is the total height of the input area (textarea + borders)
	InputTotalHeight = TextareaHeight + TextareaBorderHeight

	// ThreadTitleHeight is the chat name line above the message viewport
	ThreadTitleHeight = 1

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80

	// BubbleWidthRatio caps a message bubble at 2/3 of the thread width
	BubbleWidthRatio = 3

	// MinTerminalWidth and MinTerminalHeight clamp the layout
	MinTerminalWidth  = 60
	MinTerminalHeight = 16

	// SidebarSearchCharLimit is the character limit for the chat filter
	SidebarSearchCharLimit = 64
)

// Emoji picker layout
const (
	// EmojiColumns is the number of glyphs per picker row
	EmojiColumns = 6
)

// Auth screen
const (
	// AuthCardWidth is the width of the sign-in card
	AuthCardWidth = 46

	// AuthInputCharLimit is the character limit for auth inputs
	AuthInputCharLimit = 128
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalWidthWide is used by the admin panel
	ModalWidthWide = 90

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 256

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50

	// HelpModalMaxVisible is the number of help rows shown at once
	HelpModalMaxVisible = 14
)
