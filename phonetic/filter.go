// Package phonetic implements the gatekeeper that rejects first-word pairs
// which are too phonetically dissimilar to bother scoring, and the Soundex
// coding used both by the filter and stored on prepared entity fields.
//
// Built around the exact-code English Soundex algorithm, using
// github.com/antzucaro/matchr for the Soundex code.
package phonetic

import (
	"strings"
	"unicode"

	"github.com/antzucaro/matchr"

	"github.com/watchman-screening/screen-core/normalize"
)

// equivalenceClasses groups first characters that commonly substitute for
// one another across transliteration and spelling conventions
// (Catherine/Katherine/Qatarina, Mohammad/Muhammad, phoneme substitutions).
// Each inner slice is one equivalence class; membership is checked by first
// character only.
var equivalenceClasses = [][]rune{
	{'c', 'k', 'q'},
	{'s', 'x'},
	{'j', 'g'},
	{'f'}, // "ph" handled separately below since it's two characters
	{'m'},
}

// phEquivalent returns true when a and b are both drawn from {"f", "ph"}
// in either order — the one equivalence class defined over a
// two-character prefix rather than a single leading rune.
func phEquivalent(a, b string) bool {
	isF := func(s string) bool { return len(s) >= 1 && s[0] == 'f' }
	isPh := func(s string) bool { return len(s) >= 2 && s[0] == 'p' && s[1] == 'h' }
	return (isF(a) && isPh(b)) || (isPh(a) && isF(b))
}

// Soundex returns the 4-character Soundex code for s:
// keep the first letter; map consonant classes to digits; drop vowels and
// H/W; collapse consecutive duplicate digits; pad or truncate to 4 runes.
func Soundex(s string) string {
	return matchr.Soundex(s)
}

// firstToken lower-cases and returns the first whitespace-delimited token
// of s, or "" when s has no tokens.
func firstToken(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// firstRuneNoAccent returns the first rune of s with diacritics stripped,
// or 0 when s is empty.
func firstRuneNoAccent(s string) rune {
	if s == "" {
		return 0
	}
	stripped := normalize.NormalizeText(s)
	for _, r := range stripped {
		return unicode.ToLower(r)
	}
	return 0
}

// sameEquivalenceClass reports whether a and b's first characters belong to
// the same configured equivalence class.
func sameEquivalenceClass(a, b rune) bool {
	if a == b {
		return true
	}
	for _, class := range equivalenceClasses {
		inA, inB := false, false
		for _, r := range class {
			if r == a {
				inA = true
			}
			if r == b {
				inB = true
			}
		}
		if inA && inB {
			return true
		}
	}
	return false
}

// Key is a precomputed phonetic key for one name string's first token —
// the "first-word phonetic keys" stored on a prepared
// entity so the filter doesn't recompute Soundex and accent-stripping on
// every query against every candidate.
type Key struct {
	FirstToken string
	FirstRune  rune
	Soundex    string
}

// PrepareKey computes the phonetic Key for s's first token. An empty or
// all-whitespace s yields the zero Key (FirstToken == "").
func PrepareKey(s string) Key {
	tok := firstToken(s)
	if tok == "" {
		return Key{}
	}
	return Key{
		FirstToken: tok,
		FirstRune:  firstRuneNoAccent(tok),
		Soundex:    Soundex(tok),
	}
}

// ShouldFilterKeys is the precomputed-key form of ShouldFilter, used when
// one or both sides already carry a prepared Key (entities do, via
// PrepareKey at insertion).
func ShouldFilterKeys(query, candidate Key, disabled bool) bool {
	if disabled {
		return false
	}
	if query.FirstToken == "" || candidate.FirstToken == "" {
		return false
	}

	if sameEquivalenceClass(query.FirstRune, candidate.FirstRune) {
		return false
	}
	if phEquivalent(query.FirstToken, candidate.FirstToken) {
		return false
	}
	if query.Soundex == candidate.Soundex {
		return false
	}

	return true
}

// ShouldFilter returns true iff comparing query and candidate should be
// skipped on phonetic grounds: their first tokens' leading characters
// differ, are not in the same equivalence class, and their full Soundex
// codes differ.
//
// ShouldFilter always returns false when filtering is disabled or when
// either input's first token is empty — an empty first token carries no
// phonetic signal to filter on.
func ShouldFilter(query, candidate string, disabled bool) bool {
	return ShouldFilterKeys(PrepareKey(query), PrepareKey(candidate), disabled)
}
