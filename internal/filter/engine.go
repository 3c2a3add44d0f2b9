// Package filter derives the cascading level → book → lesson selection over
// the vocabulary list.
package filter

import (
	"strings"

	"github.com/abhisek/hanzi/internal/lesson"
	"github.com/abhisek/hanzi/internal/vocab"
)

// All is the sentinel selection that matches every value.
const All = "all"

// Selection is the current value of the three selectors.
type Selection struct {
	Level  string
	Book   string
	Lesson string
}

// Key identifies the selection for caching derived data.
func (s Selection) Key() string {
	return s.Level + "\x1f" + s.Book + "\x1f" + s.Lesson
}

// Engine owns the selection state and derives option lists and filtered
// subsets from it. The zero value is not usable; use New.
type Engine struct {
	entries []vocab.Entry
	sel     Selection
	levels  []string
}

// New creates an engine over entries with every selector set to All.
func New(entries []vocab.Entry) *Engine {
	e := &Engine{
		entries: entries,
		sel:     Selection{Level: All, Book: All, Lesson: All},
	}
	values := make([]string, len(entries))
	for i, w := range entries {
		values[i] = w.Level
	}
	e.levels = lesson.UniqueSorted(values)
	return e
}

// Selection returns the current selection.
func (e *Engine) Selection() Selection { return e.sel }

// Entries returns the full vocabulary list the engine filters.
func (e *Engine) Entries() []vocab.Entry { return e.entries }

// SetLevel selects a level and resets book and lesson, even when the level
// did not change.
func (e *Engine) SetLevel(level string) {
	e.sel = Selection{Level: level, Book: All, Lesson: All}
}

// SetBook selects a book and resets lesson.
func (e *Engine) SetBook(book string) {
	e.sel.Book = book
	e.sel.Lesson = All
}

// SetLesson selects a lesson.
func (e *Engine) SetLesson(l string) {
	e.sel.Lesson = l
}

// LevelOptions returns every distinct level in collation order.
func (e *Engine) LevelOptions() []string {
	out := make([]string, len(e.levels))
	copy(out, e.levels)
	return out
}

// BookOptions returns the books under the selected level, or nothing when
// no level is selected.
func (e *Engine) BookOptions() []string {
	if e.sel.Level == All {
		return []string{}
	}
	var books []string
	for _, w := range e.entries {
		if w.Level == e.sel.Level {
			books = append(books, w.Book)
		}
	}
	return lesson.UniqueSorted(books)
}

// LessonOptions returns the lessons under the selected level and book.
// When that pair has no lessons it falls back to every lesson of the level,
// so the list may offer lessons that match nothing for the chosen book.
func (e *Engine) LessonOptions() []string {
	if e.sel.Level == All || e.sel.Book == All {
		return []string{}
	}
	var exact, levelWide []string
	for _, w := range e.entries {
		if w.Level != e.sel.Level {
			continue
		}
		levelWide = append(levelWide, w.Lesson)
		if w.Book == e.sel.Book {
			exact = append(exact, w.Lesson)
		}
	}
	if len(exact) > 0 {
		return lesson.UniqueSorted(exact)
	}
	return lesson.UniqueSorted(levelWide)
}

// BookEnabled reports whether the book selector accepts input.
func (e *Engine) BookEnabled() bool { return e.sel.Level != All }

// LessonEnabled reports whether the lesson selector accepts input.
func (e *Engine) LessonEnabled() bool {
	return e.sel.Level != All && e.sel.Book != All
}

// Filtered returns the entries matching all three selectors.
func (e *Engine) Filtered() []vocab.Entry {
	out := []vocab.Entry{}
	for _, w := range e.entries {
		if e.matchesLevelBook(w) && matches(e.sel.Lesson, w.Lesson) {
			out = append(out, w)
		}
	}
	return out
}

// AvailableUpToLesson returns the entries of the selected level and book
// whose lesson ranks at or before the selected lesson. This is the pool a
// learner has been exposed to so far.
func (e *Engine) AvailableUpToLesson() []vocab.Entry {
	cutoff := lesson.MaxRank
	limited := e.sel.Lesson != All
	if limited {
		cutoff = lesson.Rank(e.sel.Lesson)
	}
	out := []vocab.Entry{}
	for _, w := range e.entries {
		if !e.matchesLevelBook(w) {
			continue
		}
		if limited && lesson.Rank(w.Lesson) > cutoff {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Summary describes the current selection in both languages.
func (e *Engine) Summary() string {
	if e.sel.Level == All {
		return "All Levels 所有程度"
	}
	parts := []string{"Level " + e.sel.Level + " 程度"}

	if e.sel.Book != All {
		parts = append(parts, "Book "+e.sel.Book+" 冊")
	} else if len(e.BookOptions()) > 0 {
		parts = append(parts, "All Books 所有冊別")
	}

	if e.sel.Lesson != All {
		parts = append(parts, lesson.FormatLabel(e.sel.Lesson))
	} else if len(e.LessonOptions()) > 0 {
		parts = append(parts, "All Lessons 所有課程")
	}
	return strings.Join(parts, " • ")
}

func (e *Engine) matchesLevelBook(w vocab.Entry) bool {
	return matches(e.sel.Level, w.Level) && matches(e.sel.Book, w.Book)
}

func matches(selected, value string) bool {
	return selected == All || selected == value
}
