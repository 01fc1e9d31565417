package ui

import (
	"sync"
	"testing"
)

func TestGetViewContext_Singleton(t *testing.T) {
	if GetViewContext() != GetViewContext() {
		t.Error("GetViewContext should return the same instance")
	}
}

func TestViewContext_UpdateTerminalSize(t *testing.T) {
	ctx := GetViewContext()
	ctx.UpdateTerminalSize(120, 40)

	if ctx.TerminalWidth != 120 || ctx.TerminalHeight != 40 {
		t.Errorf("terminal = %dx%d, want 120x40", ctx.TerminalWidth, ctx.TerminalHeight)
	}

	expectedContent := 40 - HeaderHeight - FooterHeight
	if ctx.ContentHeight != expectedContent {
		t.Errorf("ContentHeight = %d, want %d", ctx.ContentHeight, expectedContent)
	}

	expectedSidebar := 120 / SidebarWidthRatio
	if ctx.SidebarWidth != expectedSidebar {
		t.Errorf("SidebarWidth = %d, want %d", ctx.SidebarWidth, expectedSidebar)
	}
	if ctx.ContactsWidth != ContactsWidth {
		t.Errorf("ContactsWidth = %d, want %d", ctx.ContactsWidth, ContactsWidth)
	}
	if got := ctx.SidebarWidth + ctx.ThreadWidth + ctx.ContactsWidth; got != 120 {
		t.Errorf("panels sum to %d, want 120", got)
	}
}

func TestViewContext_MinimumSize(t *testing.T) {
	ctx := GetViewContext()
	ctx.UpdateTerminalSize(10, 5)

	if ctx.TerminalWidth != MinTerminalWidth || ctx.TerminalHeight != MinTerminalHeight {
		t.Errorf("terminal = %dx%d, want clamped to %dx%d",
			ctx.TerminalWidth, ctx.TerminalHeight, MinTerminalWidth, MinTerminalHeight)
	}
	if ctx.SidebarWidth != MinSidebarWidth {
		t.Errorf("SidebarWidth = %d, want %d", ctx.SidebarWidth, MinSidebarWidth)
	}
}

func TestViewContext_PanelWidths(t *testing.T) {
	ctx := GetViewContext()
	ctx.UpdateTerminalSize(120, 40)

	sidebar, thread, contacts := ctx.PanelWidths(false)
	if sidebar != ctx.SidebarWidth || thread != ctx.ThreadWidth || contacts != ctx.ContactsWidth {
		t.Errorf("PanelWidths(false) = %d,%d,%d", sidebar, thread, contacts)
	}

	sidebar, thread, contacts = ctx.PanelWidths(true)
	if sidebar != 0 || contacts != 0 || thread != 120 {
		t.Errorf("PanelWidths(true) = %d,%d,%d, want 0,120,0", sidebar, thread, contacts)
	}
}

func TestViewContext_InnerDimensions(t *testing.T) {
	ctx := GetViewContext()

	tests := []struct {
		panel int
		want  int
	}{
		{100, 98},
		{50, 48},
		{2, 0},
		{1, 0},
	}
	for _, tt := range tests {
		if got := ctx.InnerWidth(tt.panel); got != tt.want {
			t.Errorf("InnerWidth(%d) = %d, want %d", tt.panel, got, tt.want)
		}
		if got := ctx.InnerHeight(tt.panel); got != tt.want {
			t.Errorf("InnerHeight(%d) = %d, want %d", tt.panel, got, tt.want)
		}
	}
}

func TestViewContext_ConcurrentAccess(t *testing.T) {
	ctx := GetViewContext()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			ctx.UpdateTerminalSize(100+n, 30+n)
			ctx.PanelWidths(n%2 == 0)
		}(i)
	}
	wg.Wait()
}
