package textutil

import (
	"strings"
	"testing"
)

func TestSanitizeTerminalText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"safe input untouched", "safe-file.txt", "safe-file.txt"},
		{"escape sequence neutralised", "bad\x1b[31m\npath", "bad?[31m path"},
		{"tab becomes space", "a\tb", "a b"},
		{"delete char", "x\x7fy", "x?y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeTerminalText(tt.input); got != tt.want {
				t.Fatalf("SanitizeTerminalText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeTerminalTextLabelsBidiOverrides(t *testing.T) {
	input := "invoice" + string(rune(0x202E)) + "fdp.exe"
	got := SanitizeTerminalText(input)
	if strings.ContainsRune(got, 0x202E) {
		t.Fatalf("override rune left in output: %q", got)
	}
	if !strings.Contains(got, "⟪RLO⟫") {
		t.Fatalf("expected RLO label, got %q", got)
	}
}

func TestSanitizeTerminalTextLabelsZeroWidthSeparators(t *testing.T) {
	tests := []struct {
		r    rune
		want string
	}{
		{0x2028, "⟪LSEP⟫"},
		{0x2029, "⟪PSEP⟫"},
		{0x00AD, "⟪SHY⟫"},
		{0x2060, "⟪WJ⟫"},
		{0x061C, "⟪ALM⟫"},
		{0x206F, "⟪NODS⟫"},
	}

	for _, tt := range tests {
		got := SanitizeTerminalText("a" + string(tt.r) + "b")
		if want := "a" + tt.want + "b"; got != want {
			t.Errorf("SanitizeTerminalText(%U) = %q, want %q", tt.r, got, want)
		}
	}
}

func TestExpandTabs(t *testing.T) {
	tests := []struct {
		input    string
		tabWidth int
		want     string
	}{
		{"\tx", 4, "    x"},
		{"ab\tc", 4, "ab  c"},
		{"abcd\te", 4, "abcd    e"},
		{"no tabs", 4, "no tabs"},
		{"\tx", 0, "\tx"},
		{"你\tx", 4, "你  x"},
	}

	for _, tt := range tests {
		if got := ExpandTabs(tt.input, tt.tabWidth); got != tt.want {
			t.Errorf("ExpandTabs(%q, %d) = %q, want %q", tt.input, tt.tabWidth, got, tt.want)
		}
	}
}

func TestDisplayWidth(t *testing.T) {
	if got := DisplayWidth("abc"); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := DisplayWidth("你好"); got != 4 {
		t.Fatalf("expected 4 for wide runes, got %d", got)
	}
}
