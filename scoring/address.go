package scoring

import (
	"strings"

	"github.com/watchman-screening/screen-core/screening"
	"github.com/watchman-screening/screen-core/similarity"
)

// addressListEarlyExit stops scanning query x candidate address pairs once
// a pair this good has been found; nothing scores higher often enough to
// be worth the remaining comparisons.
const addressListEarlyExit = 0.92

// CompareAddress weighs line1, line2, city, state, postal code, and
// country, skipping any field empty on either side, and returns the
// weighted average over the fields that were actually compared.
func CompareAddress(query, candidate screening.PreparedAddress, cfg similarity.Config) float64 {
	type weighted struct {
		weight float64
		score  float64
		skip   bool
	}

	fields := []weighted{
		{weight: 5, score: tokenField(candidate.Line1Tokens, query.Line1Tokens, cfg), skip: len(query.Line1Tokens) == 0 || len(candidate.Line1Tokens) == 0},
		{weight: 2, score: tokenField(candidate.Line2Tokens, query.Line2Tokens, cfg), skip: len(query.Line2Tokens) == 0 || len(candidate.Line2Tokens) == 0},
		{weight: 4, score: tokenField(candidate.CityTokens, query.CityTokens, cfg), skip: len(query.CityTokens) == 0 || len(candidate.CityTokens) == 0},
		{weight: 2, score: equalityField(query.State, candidate.State), skip: query.State == "" || candidate.State == ""},
		{weight: 3, score: equalityField(query.PostalCode, candidate.PostalCode), skip: query.PostalCode == "" || candidate.PostalCode == ""},
		{weight: 4, score: equalityField(query.Country, candidate.Country), skip: query.Country == "" || candidate.Country == ""},
	}

	var numerator, denominator float64
	for _, f := range fields {
		if f.skip {
			continue
		}
		numerator += f.score * f.weight
		denominator += f.weight
	}

	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// CompareAddressLists compares every query address against every
// candidate address, returning the maximum CompareAddress score, and
// exiting early the moment a sufficiently good pair is found.
func CompareAddressLists(query, candidate []screening.PreparedAddress, cfg similarity.Config) float64 {
	best := 0.0
	for _, q := range query {
		for _, c := range candidate {
			if s := CompareAddress(q, c, cfg); s > best {
				best = s
				if best >= addressListEarlyExit {
					return best
				}
			}
		}
	}
	return best
}

func tokenField(candidateTokens, queryTokens []string, cfg similarity.Config) float64 {
	return similarity.BestPair(candidateTokens, queryTokens, cfg)
}

func equalityField(a, b string) float64 {
	if strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b)) {
		return 1.0
	}
	return 0.0
}
