package ui

import (
	"sync"

	"github.com/zhubert/murmur/internal/logger"
)

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int
	SidebarWidth  int
	ThreadWidth   int
	ContactsWidth int

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
		}
		logger.WithComponent("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// Log writes a debug message with structured attributes.
func (v *ViewContext) Log(msg string, args ...interface{}) {
	logger.WithComponent("ui").Debug(msg, args...)
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
// The chat list takes a quarter of the width, contacts a fixed column and the
// thread the rest.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Validate dimensions to prevent negative layout values
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight

	v.SidebarWidth = max(width/SidebarWidthRatio, MinSidebarWidth)
	v.ContactsWidth = ContactsWidth
	v.ThreadWidth = width - v.SidebarWidth - v.ContactsWidth

	v.Log("Terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"sidebarWidth", v.SidebarWidth,
		"threadWidth", v.ThreadWidth,
		"contactsWidth", v.ContactsWidth,
	)
}

// PanelWidths returns the chat list, thread and contacts widths. In
// fullscreen the side panels collapse to zero and the thread takes the
// whole terminal.
func (v *ViewContext) PanelWidths(fullscreen bool) (sidebar, thread, contacts int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if fullscreen {
		return 0, v.TerminalWidth, 0
	}
	return v.SidebarWidth, v.ThreadWidth, v.ContactsWidth
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return max(0, panelWidth-BorderSize)
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return max(0, panelHeight-BorderSize)
}
