package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

func TestRenderMessageText_CodeBlock(t *testing.T) {
	in := "fix:\n```go\nif name == \"\" {\n\treturn \"U\"\n}\n```\ndone"
	out := renderMessageText(in, 40)

	if strings.Contains(out, "```") {
		t.Error("fences should be removed")
	}
	if out == ansi.Strip(out) {
		t.Error("code block should carry highlighting escapes")
	}
	plain := ansi.Strip(out)
	for _, want := range []string{"fix:", "return", "done"} {
		if !strings.Contains(plain, want) {
			t.Errorf("missing %q in %q", want, plain)
		}
	}
}

func TestRenderMessageText_UnterminatedFence(t *testing.T) {
	out := ansi.Strip(renderMessageText("```\nx := 1", 40))
	if !strings.Contains(out, "x := 1") {
		t.Errorf("unterminated code should still render, got %q", out)
	}
}

func TestRenderMessageText_Wraps(t *testing.T) {
	out := renderMessageText("one two three four five six seven eight nine ten", 12)
	for _, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w > 12 {
			t.Errorf("line %q is %d wide", line, w)
		}
	}
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Anna", 10, "Anna"},
		{"Anna Petrova", 6, "Anna …"},
		{"Дмитрий", 4, "Дми…"},
		{"Anna", 0, ""},
	}
	for _, tt := range tests {
		got := truncateName(tt.in, tt.width)
		if got != tt.want {
			t.Errorf("truncateName(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
		if runewidth.StringWidth(got) > tt.width {
			t.Errorf("truncateName(%q, %d) is too wide", tt.in, tt.width)
		}
	}
}

func TestTruncatePreview(t *testing.T) {
	styled := ChatOwnStyle.Render("a fairly long preview line")
	got := truncatePreview(styled, 10)
	if w := ansi.StringWidth(got); w > 10 {
		t.Errorf("preview width = %d, want <= 10", w)
	}
	if got := ansi.Strip(truncatePreview("two\nlines", 20)); got != "two lines" {
		t.Errorf("newlines should be flattened, got %q", got)
	}
}

func TestPluralize(t *testing.T) {
	if got := pluralize(1, "member"); got != "1 member" {
		t.Errorf("got %q", got)
	}
	if got := pluralize(3, "member"); got != "3 members" {
		t.Errorf("got %q", got)
	}
}
