package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanzi/internal/ui/theme"
)

// Selector is a labelled single-choice field cycled with left/right.
type Selector struct {
	Label    string
	Options  []string
	Selected int
	Disabled bool

	// Format renders an option for display. Nil shows the raw value.
	Format func(string) string
}

// NewSelector creates a selector with value preselected when present.
func NewSelector(label string, options []string, value string) Selector {
	s := Selector{Label: label}
	s.SetOptions(options, value)
	return s
}

// SetOptions replaces the options and selects value, falling back to the
// first option.
func (s *Selector) SetOptions(options []string, value string) {
	s.Options = options
	s.Selected = 0
	for i, o := range options {
		if o == value {
			s.Selected = i
			break
		}
	}
}

// Value returns the selected option, or "" when there are none.
func (s Selector) Value() string {
	if s.Selected < 0 || s.Selected >= len(s.Options) {
		return ""
	}
	return s.Options[s.Selected]
}

// Update moves the selection. The second result reports whether the value
// changed.
func (s Selector) Update(msg tea.Msg) (Selector, bool) {
	if s.Disabled || len(s.Options) == 0 {
		return s, false
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, false
	}

	prev := s.Selected
	switch kmsg.String() {
	case "left", "h":
		s.Selected = (s.Selected - 1 + len(s.Options)) % len(s.Options)
	case "right", "l":
		s.Selected = (s.Selected + 1) % len(s.Options)
	}
	return s, s.Selected != prev
}

// View renders the selector on one line.
func (s Selector) View(focused bool) string {
	value := s.Value()
	if s.Format != nil {
		value = s.Format(value)
	}
	label := fmt.Sprintf("%-12s", s.Label)

	if s.Disabled {
		return theme.Disabled.Render("  " + label + "  " + value)
	}
	if focused {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ "+label) +
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(" ◂ "+value+" ▸")
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render("  "+label) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("   "+value)
}
