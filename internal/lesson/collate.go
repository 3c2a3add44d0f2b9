package lesson

import (
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/abhisek/hanzi/internal/vocab"
)

// Collator buffers are not safe for concurrent use.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.Und,
		collate.Numeric,
		collate.IgnoreCase,
		collate.IgnoreDiacritics,
		collate.IgnoreWidth,
	)
)

// Compare orders two option values the way a person would read them:
// digit runs compare numerically ("2" < "10") and case is ignored.
// Values that collate equal fall back to byte order so sorting stays deterministic.
func Compare(a, b string) int {
	collatorMu.Lock()
	c := collator.CompareString(a, b)
	collatorMu.Unlock()
	if c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// UniqueSorted returns the distinct values sorted with Compare.
func UniqueSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.SortFunc(out, Compare)
	return out
}

// SortEntries orders entries for the vocabulary overview: by lesson rank,
// then by pinyin. The input slice is not modified.
func SortEntries(entries []vocab.Entry) []vocab.Entry {
	out := make([]vocab.Entry, len(entries))
	for i, idx := range SortIndices(entries) {
		out[i] = entries[idx]
	}
	return out
}

// SortIndices returns the positions of entries in SortEntries order, so a
// row in the sorted view can be mapped back to the original slice.
func SortIndices(entries []vocab.Entry) []int {
	idx := make([]int, len(entries))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(x, y int) int {
		a, b := entries[x], entries[y]
		ra, rb := Rank(a.Lesson), Rank(b.Lesson)
		if ra != rb {
			if ra < rb {
				return -1
			}
			return 1
		}
		return Compare(a.Pinyin, b.Pinyin)
	})
	return idx
}
