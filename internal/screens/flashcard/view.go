package flashcard

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanzi/internal/lesson"
	"github.com/abhisek/hanzi/internal/study"
	"github.com/abhisek/hanzi/internal/ui/components"
	"github.com/abhisek/hanzi/internal/ui/theme"
)

// NoCardsMessage is shown when the selection has nothing to study.
const NoCardsMessage = "尚未找到符合條件的卡片，請選擇其他課程。"

func (s *FlashcardScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	sess := s.deck.Session()

	card, ok := sess.Current()
	if !ok {
		body := lipgloss.NewStyle().Foreground(theme.Secondary).Render(NoCardsMessage) + "\n\n" +
			theme.Hint.Render("No cards match the current filters.")
		return components.CenterFrame(components.CardBox(body, cw, false), width, height)
	}

	var sections []string
	sections = append(sections, s.renderProgress(cw))

	var b strings.Builder
	b.WriteString(theme.Hanzi.Render(card.Characters))
	b.WriteString("\n\n")
	if sess.ShowAnswer() {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(card.Pinyin))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(card.English))
		b.WriteString("\n\n")
		b.WriteString(s.renderAnswerLine())
	} else {
		b.WriteString(theme.Hint.Render("Space to reveal pinyin & meaning • 顯示拼音和含義"))
	}
	sections = append(sections, components.CardBox(b.String(), cw, sess.ShowAnswer()))

	if line := renderStats(sess.Stats()); line != "" {
		sections = append(sections, line)
	}

	if !s.kidMode {
		if details := s.renderDetails(); details != "" {
			sections = append(sections, details)
		}
	}

	if s.confirming {
		sections = append(sections, theme.Incorrect.Render(study.ResetPrompt+" (y/n)"))
	}

	return components.CenterFrame(strings.Join(sections, "\n\n"), width, height)
}

func (s *FlashcardScreen) renderProgress(cw int) string {
	sess := s.deck.Session()
	pos, total := sess.Position()

	mode := "Sequential 順序"
	if sess.Mode() == study.Random {
		mode = "Random 隨機"
	}
	label := fmt.Sprintf("Card %d of %d • %s", pos+1, total, mode)

	pct := 0
	if total > 0 {
		pct = (pos + 1) * 100 / total
	}
	bar := components.NewProgressBar("", pct, false, cw).View()
	return theme.Subtitle.Render(label) + "\n" + bar
}

func (s *FlashcardScreen) renderAnswerLine() string {
	switch s.feedback {
	case feedbackCorrect:
		return theme.Correct.Render("✓ Got it!")
	case feedbackIncorrect:
		return theme.Incorrect.Render("✗ Incorrect")
	}
	return theme.Incorrect.Render("1 ✗ Incorrect") + "    " + theme.Correct.Render("2 ✓ Got It!")
}

// renderStats formats the score line, or "" before any answer.
func renderStats(st study.Stats) string {
	if st.Total == 0 {
		return ""
	}
	return theme.Body.Render(fmt.Sprintf("Study Progress: %d/%d correct ", st.Correct, st.Total)) +
		theme.Correct.Render(fmt.Sprintf("(%d%%)", st.Percent()))
}

func (s *FlashcardScreen) renderDetails() string {
	e, ok := s.deck.CurrentDetails()
	if !ok {
		return ""
	}
	rows := []string{
		"Lesson  " + lesson.FormatLabel(e.Lesson),
		"Book    " + e.Book,
		"Level   " + e.Level,
		fmt.Sprintf("Chars   %d", utf8.RuneCountInString(e.Characters)),
	}
	return theme.Hint.Render(strings.Join(rows, "\n"))
}
