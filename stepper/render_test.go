package stepper

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/numspin/numeric"
)

func wantView(t *testing.T, m Model, want string) {
	t.Helper()
	if got := m.View(); got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}

func TestView_RightAlignsValue(t *testing.T) {
	m, _ := newTestModel(t, nil)
	wantView(t, m, "  5   ")

	m, _ = newTestModel(t, func(c *Config) { c.Flags.ShowButtons = true })
	wantView(t, m, "  5 +-")
}

func TestView_AutoWidthFollowsBounds(t *testing.T) {
	m, _ := newTestModel(t, func(c *Config) {
		a := numeric.DefaultAttrs()
		a.Min, a.Max, a.Value, a.Digits = -50, 50, 1.5, 1
		c.Attrs = &a
		c.Units = " kg"
	})
	wantView(t, m, "  1.5 kg   ")
}

func TestView_TruncatesToFixedWidth(t *testing.T) {
	m, _ := newTestModel(t, func(c *Config) {
		a := numeric.DefaultAttrs()
		a.Value = 12345
		c.Attrs = &a
		c.Width = 2
	})
	wantView(t, m, "1…   ")
}

func TestView_EditText(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = m.Focus()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	wantView(t, m, "5   yn")

	// The cursor cell follows the text.
	m = typeText(m, "7")
	wantView(t, m, "7   yn")
}

func TestView_EditTextScrollsToCursor(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = m.Focus()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(m, "12345")

	if got := m.View(); !strings.HasPrefix(got, "45 ") {
		t.Fatalf("view: got %q, want prefix %q", got, "45 ")
	}
}

func TestView_Styles(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	st := Style{
		Text:         r.NewStyle(),
		Invalid:      r.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		Cursor:       r.NewStyle().Reverse(true),
		Control:      r.NewStyle(),
		ControlHover: r.NewStyle().Underline(true),
	}
	m, _ := newTestModel(t, func(c *Config) { c.Style = st })

	m, _ = m.Update(motion(1, 0))
	m, _ = m.Update(motion(4, 0))
	if got, want := m.View(), st.ControlHover.Render("+"); !strings.Contains(got, want) {
		t.Fatalf("hovered view: got %q, want it to contain %q", got, want)
	}

	m = m.Focus()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(m, "x")
	got := m.View()
	for _, want := range []string{st.Invalid.Render("x"), st.Cursor.Render(" ")} {
		if !strings.Contains(got, want) {
			t.Fatalf("edit view: got %q, want it to contain %q", got, want)
		}
	}
}
