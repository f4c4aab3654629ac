package scoring

import (
	"strings"

	"github.com/watchman-screening/screen-core/screening"
)

// countryMismatchScore is the downgraded score awarded when two
// identifiers agree on the (normalized) identifier string and neither
// type conflicts, but the issuing countries are both set and differ.
const countryMismatchScore = 0.9

// CompareGovernmentId compares two government identifiers that arrive
// already comparison-normalized (screening.NewEntity normalizes
// Identifier/Type/IssuingCountry at construction). Identifiers that don't
// match at all score 0 — this comparer only distinguishes among pairs
// that do share an identifier string.
func CompareGovernmentId(query, candidate screening.GovernmentId) float64 {
	if query.Identifier == "" || candidate.Identifier == "" {
		return 0
	}
	if query.Identifier != candidate.Identifier {
		return 0
	}

	if query.Type != "" && candidate.Type != "" && query.Type != candidate.Type {
		return 0
	}

	if query.IssuingCountry != "" && candidate.IssuingCountry != "" && query.IssuingCountry != candidate.IssuingCountry {
		return countryMismatchScore
	}

	return 1.0
}

// CompareGovernmentIdLists returns the maximum CompareGovernmentId score
// over every query x candidate pair.
func CompareGovernmentIdLists(query, candidate []screening.GovernmentId) float64 {
	best := 0.0
	for _, q := range query {
		for _, c := range candidate {
			if s := CompareGovernmentId(q, c); s > best {
				best = s
			}
		}
	}
	return best
}

// CompareCrypto is a case-sensitive exact match between two crypto
// addresses.
func CompareCrypto(query, candidate screening.CryptoAddress) float64 {
	if query.Address == "" || candidate.Address == "" {
		return 0
	}
	if query.Address == candidate.Address {
		return 1.0
	}
	return 0.0
}

// CompareCryptoLists returns the maximum CompareCrypto score over every
// query x candidate pair.
func CompareCryptoLists(query, candidate []screening.CryptoAddress) float64 {
	best := 0.0
	for _, q := range query {
		for _, c := range candidate {
			if s := CompareCrypto(q, c); s > best {
				best = s
			}
		}
	}
	return best
}

// CompareContact matches on lower-cased trimmed email or normalized phone
// (both already normalized by screening.NewEntity); either one matching
// is enough for a perfect score.
func CompareContact(query, candidate *screening.ContactInfo) float64 {
	if query == nil || candidate == nil {
		return 0
	}

	if query.Email != "" && candidate.Email != "" && strings.EqualFold(query.Email, candidate.Email) {
		return 1.0
	}
	if query.Phone != "" && candidate.Phone != "" && query.Phone == candidate.Phone {
		return 1.0
	}
	return 0.0
}
