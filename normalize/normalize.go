// Package normalize implements the deterministic text-cleanup pipeline:
// Unicode normalization, punctuation removal, stopword handling,
// tokenization, and the identifier/phone/country normalizers.
//
// Every function here is pure: same input always yields the same output, no
// shared mutable state, no allocation beyond the return value. Nil input
// propagates to nil output; empty input yields empty output.
//
// Diacritic stripping uses golang.org/x/text/unicode/norm for NFD/NFC
// conversion.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/watchman-screening/screen-core/foundry"
)

// NormalizeText strips diacritical marks while preserving case, spacing, and
// non-Latin scripts (Cyrillic, Arabic, CJK pass through unchanged since they
// carry no Unicode combining marks in their base form).
//
// Algorithm: NFD decompose -> drop code points in category Mn (Nonspacing
// Mark) -> NFC recompose.
func NormalizeText(s string) string {
	decomposed := norm.NFD.String(s)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if !unicode.Is(unicode.Mn, r) {
			b.WriteRune(r)
		}
	}

	return norm.NFC.String(b.String())
}

// LowerAndRemovePunctuation applies NormalizeText, lower-cases the result,
// strips every character outside [a-z0-9 space], collapses runs of
// whitespace to a single space, and trims the ends.
func LowerAndRemovePunctuation(s string) string {
	cleaned := strings.ToLower(NormalizeText(s))

	var b strings.Builder
	b.Grow(len(cleaned))
	lastWasSpace := false
	for _, r := range cleaned {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastWasSpace = false
		case r == ' ', unicode.IsSpace(r):
			if !lastWasSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			lastWasSpace = true
		default:
			// punctuation and everything else is dropped
		}
	}

	return strings.TrimSpace(b.String())
}

// Tokenize splits s on whitespace. Empty input yields an empty (non-nil)
// slice.
func Tokenize(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	return strings.Fields(s)
}

// StripStopwords removes tokens found in the fixed stopword list unless
// keep is true, in which case tokens pass through unchanged.
func StripStopwords(tokens []string, keep bool) []string {
	if keep {
		return tokens
	}
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !IsStopword(t) {
			out = append(out, t)
		}
	}
	return out
}

// NormalizeID upper-cases s and removes every character that is not
// alphanumeric, so that identifiers compare equal regardless of separators
// or case ("A-123 456" and "a123456" both normalize to "A123456").
func NormalizeID(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(unicode.ToUpper(r))
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// phoneStripChars are the separator characters normalizePhone removes.
const phoneStripChars = "+-(). "

// NormalizePhone removes the separator characters '+', '-', ' ', '(', ')',
// '.'. An all-separator or empty input normalizes to "" (absent).
func NormalizePhone(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(phoneStripChars, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeCountry resolves an ISO 3166 alpha-2/alpha-3 code or a known
// sanctioned-screening alias to its preferred English display name. Input
// that matches neither the alias overrides nor the ISO catalog is returned
// trimmed, unchanged.
func NormalizeCountry(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return trimmed
	}

	if name, ok := foundry.PreferredScreeningName(trimmed); ok {
		return name
	}

	catalog := foundry.GetDefaultCatalog()

	if country, _ := catalog.GetCountry(trimmed); country != nil {
		if name, ok := foundry.PreferredScreeningName(country.Alpha2); ok {
			return name
		}
		return country.Name
	}
	if country, _ := catalog.GetCountryByAlpha3(trimmed); country != nil {
		if name, ok := foundry.PreferredScreeningName(country.Alpha2); ok {
			return name
		}
		return country.Name
	}

	return trimmed
}
