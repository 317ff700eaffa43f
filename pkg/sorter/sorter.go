// Package sorter orders strings the way a Russian reader would, ignoring
// whitespace, letter case and diacritics.
package sorter

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/computerscienceiscool/scriptkit/internal/errors"
)

// newCollator compares at base strength: "Е", "е" and "ё" are equal.
// Collators keep internal buffers, so each sort gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.Russian,
		collate.IgnoreCase,
		collate.IgnoreDiacritics,
		collate.IgnoreWidth,
	)
}

// stripSpaces drops every whitespace rune, including the BOM.
func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '\uFEFF' {
			return -1
		}
		return r
	}, s)
}

// scriptRank orders scripts the Russian way: digits, punctuation and symbols
// first, then Cyrillic, then every other script.
func scriptRank(r rune) int {
	switch {
	case unicode.Is(unicode.Cyrillic, r):
		return 1
	case unicode.IsLetter(r):
		return 2
	default:
		return 0
	}
}

type sortKey struct {
	text  string
	runes []rune
}

type comparer struct {
	col *collate.Collator
}

// key normalizes s for comparison. Runes that carry no weight at base
// strength, such as combining accents, are dropped from the rune form.
func (c comparer) key(s string) sortKey {
	text := norm.NFC.String(stripSpaces(s))
	runes := make([]rune, 0, len(text))
	for _, r := range text {
		if c.col.CompareString(string(r), "") == 0 {
			continue
		}
		runes = append(runes, r)
	}
	return sortKey{text: text, runes: runes}
}

// compare finds the first position where the keys differ at base strength.
// When the two runes there belong to different script groups the group
// decides; otherwise the collator does.
func (c comparer) compare(a, b sortKey) int {
	n := min(len(a.runes), len(b.runes))
	for i := 0; i < n; i++ {
		x, y := a.runes[i], b.runes[i]
		if x == y || c.col.CompareString(string(x), string(y)) == 0 {
			continue
		}
		if rx, ry := scriptRank(x), scriptRank(y); rx != ry {
			return cmp.Compare(rx, ry)
		}
		break
	}
	return c.col.CompareString(a.text, b.text)
}

// SortStringsIgnoringSpaces returns a sorted copy of items. Whitespace is
// removed before comparison and equal keys keep their input order. items
// itself is not modified.
func SortStringsIgnoringSpaces(items []string) []string {
	c := comparer{col: newCollator()}

	keys := make(map[string]sortKey, len(items))
	for _, s := range items {
		if _, ok := keys[s]; !ok {
			keys[s] = c.key(s)
		}
	}

	sorted := slices.Clone(items)
	if sorted == nil {
		sorted = []string{}
	}
	slices.SortStableFunc(sorted, func(a, b string) int {
		return c.compare(keys[a], keys[b])
	})
	return sorted
}

// Coerce converts a decoded value of unknown shape, such as the result of
// json.Unmarshal into an any, to strings without sorting them. Only
// sequences are accepted: []string as is, []any element by element with nil
// rendered as "null".
func Coerce(v any) ([]string, error) {
	switch items := v.(type) {
	case []string:
		return slices.Clone(items), nil
	case []any:
		strs := make([]string, len(items))
		for i, item := range items {
			if item == nil {
				strs[i] = "null"
				continue
			}
			strs[i] = fmt.Sprint(item)
		}
		return strs, nil
	default:
		return nil, &errors.ValidationError{
			Field: "items",
			Value: v,
			Err:   fmt.Errorf("%w: expected an array of strings, got %T", errors.ErrInvalidArgument, v),
		}
	}
}

// Sort coerces v with Coerce and sorts the result.
func Sort(v any) ([]string, error) {
	strs, err := Coerce(v)
	if err != nil {
		return nil, err
	}
	return SortStringsIgnoringSpaces(strs), nil
}
