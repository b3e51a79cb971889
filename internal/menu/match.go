// Package menu holds the selection engine: tiered matching, the line
// editor, window layout and the session state they share.
package menu

import (
	"slices"
	"strings"

	"github.com/slmenu/slmenu/internal/storage"
	"golang.org/x/text/cases"
)

// Tier is the class a candidate matched in.
type Tier int

const (
	TierNone Tier = iota
	TierExact
	TierPrefix
	TierSubstring
)

// Matcher filters the candidate store against a query.
type Matcher struct {
	store *storage.CandidateStore
	fold  func(string) string
}

// NewMatcher returns a matcher over store. With ignoreCase every comparison
// is made on Unicode case-folded text.
func NewMatcher(store *storage.CandidateStore, ignoreCase bool) *Matcher {
	m := &Matcher{store: store}
	if ignoreCase {
		caser := cases.Fold()
		m.fold = caser.String
		store.FoldWith(m.fold)
	}
	return m
}

// Fold returns q the way candidates are compared against it.
func (m *Matcher) Fold(q string) string {
	if m.fold == nil {
		return q
	}
	return m.fold(q)
}

// Classify reports the tier of text for an already folded query. Exact
// beats prefix beats substring.
func Classify(text, foldedQuery string) Tier {
	switch {
	case text == foldedQuery:
		return TierExact
	case strings.HasPrefix(text, foldedQuery):
		return TierPrefix
	case strings.Contains(text, foldedQuery):
		return TierSubstring
	}
	return TierNone
}

// Match runs a cold match of query against the whole store.
func (m *Matcher) Match(query string) []int {
	return m.partition(m.Fold(query), m.store.Len(), func(i int) int { return i })
}

// Refine matches query against a previous result only. It is sound when
// query contains the query prev was computed for. prev is scanned in store
// order, so the result equals Match(query).
func (m *Matcher) Refine(query string, prev []int) []int {
	src := slices.Clone(prev)
	slices.Sort(src)
	return m.partition(m.Fold(query), len(src), func(i int) int { return src[i] })
}

// partition is a stable three-way split into exact, prefix and substring
// runs.
func (m *Matcher) partition(fq string, n int, at func(int) int) []int {
	var exact, prefix, substr []int
	for i := 0; i < n; i++ {
		idx := at(i)
		switch Classify(m.store.At(idx).Folded(), fq) {
		case TierExact:
			exact = append(exact, idx)
		case TierPrefix:
			prefix = append(prefix, idx)
		case TierSubstring:
			substr = append(substr, idx)
		}
	}
	out := make([]int, 0, len(exact)+len(prefix)+len(substr))
	out = append(out, exact...)
	out = append(out, prefix...)
	return append(out, substr...)
}
