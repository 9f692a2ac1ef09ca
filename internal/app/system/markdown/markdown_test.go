package markdown

import (
	"strings"
	"testing"
)

func TestRenderBasicFormatting(t *testing.T) {
	out, err := Render("# Heading\n\nSome **bold** text.")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "<h1") {
		t.Errorf("output should contain <h1>, got %q", s)
	}
	if !strings.Contains(s, "<strong>bold</strong>") {
		t.Errorf("output should contain bold text, got %q", s)
	}
}

func TestRenderEmpty(t *testing.T) {
	out, err := Render("   \n  ")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out != "" {
		t.Errorf("Render(blank) = %q, want empty", out)
	}
}

func TestRenderStripsRawScript(t *testing.T) {
	out, err := Render("hello\n\n<script>alert('xss')</script>")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	s := string(out)
	if strings.Contains(s, "<script>") {
		t.Errorf("output should not contain script tags, got %q", s)
	}
	if !strings.Contains(s, "hello") {
		t.Errorf("output should keep surrounding text, got %q", s)
	}
}

func TestRenderList(t *testing.T) {
	out, err := Render("- one\n- two\n")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "<ul>") || !strings.Contains(s, "<li>one</li>") {
		t.Errorf("output should contain a list, got %q", s)
	}
}

func TestRenderOrEscapeNeverEmptyForText(t *testing.T) {
	out := RenderOrEscape("plain text body")
	if !strings.Contains(string(out), "plain text body") {
		t.Errorf("RenderOrEscape() lost content: %q", out)
	}
}
