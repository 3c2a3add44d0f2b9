// Package lesson ranks and formats lesson labels such as "L3" or "Test1".
package lesson

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MaxRank is the rank of any label that is neither L<n> nor Test<n>.
// It sorts after every parseable lesson.
const MaxRank = math.MaxInt

// testOffset places tests after regular lessons.
const testOffset = 100

var (
	lessonPattern = regexp.MustCompile(`(?i)^L(\d+)$`)
	testPattern   = regexp.MustCompile(`(?i)^Test(\d+)$`)
)

// Rank converts a lesson label into a sortable integer.
// L<n> ranks as n, Test<n> as 100+n, anything else as MaxRank.
func Rank(label string) int {
	l := strings.TrimSpace(label)
	if m := lessonPattern.FindStringSubmatch(l); m != nil {
		return atoiOrMax(m[1], 0)
	}
	if m := testPattern.FindStringSubmatch(l); m != nil {
		return atoiOrMax(m[1], testOffset)
	}
	return MaxRank
}

func atoiOrMax(digits string, offset int) int {
	n, err := strconv.Atoi(digits)
	if err != nil || n > MaxRank-offset {
		return MaxRank
	}
	return n + offset
}

// FormatLabel returns the bilingual display label for a lesson.
func FormatLabel(label string) string {
	l := strings.TrimSpace(label)
	if m := lessonPattern.FindStringSubmatch(l); m != nil {
		return fmt.Sprintf("Lesson %s 第%s課", strings.ToUpper(l), m[1])
	}
	if m := testPattern.FindStringSubmatch(l); m != nil {
		return fmt.Sprintf("Test %s 測驗%s", m[1], m[1])
	}
	return l
}
