package flashcard

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/hanzi/internal/ui/layout"
)

type keyMap struct {
	Reveal     key.Binding
	Prev       key.Binding
	Next       key.Binding
	Incorrect  key.Binding
	Correct    key.Binding
	Shuffle    key.Binding
	Reset      key.Binding
	Regenerate key.Binding
	Yes        key.Binding
	No         key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Reveal: key.NewBinding(
			key.WithKeys("space", "enter"),
			key.WithHelp("Space", "Reveal"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Prev"),
		),
		Next: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Skip"),
		),
		Incorrect: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Incorrect"),
		),
		Correct: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Got it"),
		),
		Shuffle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Shuffle"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reset"),
		),
		Regenerate: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "New sentences"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "Confirm"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "Cancel"),
		),
	}
}

func hints(bindings ...key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return out
}
