package markdown

import (
	"strings"
	"testing"
)

type panicRenderer struct{}

func (panicRenderer) Render(string) (string, error) {
	panic("boom")
}

func withRenderer(t *testing.T, width int, r renderer) {
	t.Helper()

	rendererMu.Lock()
	prev, hadPrev := renderers[width]
	renderers[width] = r
	rendererMu.Unlock()

	t.Cleanup(func() {
		rendererMu.Lock()
		if hadPrev {
			renderers[width] = prev
		} else {
			delete(renderers, width)
		}
		rendererMu.Unlock()
	})
}

func TestRender_RecoversFromRendererPanic(t *testing.T) {
	withRenderer(t, 20, panicRenderer{})

	out := Render(20, 0, "hello\n")
	if out != "hello" {
		t.Fatalf("expected fallback to original text, got %q", out)
	}
}

func TestRender_BlankInput(t *testing.T) {
	for _, input := range []string{"", "\n\n", "   "} {
		if out := Render(40, 2, input); out != "" {
			t.Errorf("Render(%q) = %q, want empty", input, out)
		}
	}
}

func TestRender_WrapsAndIndents(t *testing.T) {
	out := Render(24, 4, "two liters of oat milk from the corner store")

	if out == "" {
		t.Fatal("expected rendered output")
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, "    ") {
			t.Errorf("line %q is not indented", line)
		}
	}
	if !strings.Contains(out, "oat") || !strings.Contains(out, "corner") {
		t.Errorf("rendered output lost words: %q", out)
	}
}

func TestPlain_WrapsWords(t *testing.T) {
	got := Plain(10, "walk the dog twice\r\n")

	if got != "walk the\ndog twice" {
		t.Fatalf("Plain = %q", got)
	}
}
