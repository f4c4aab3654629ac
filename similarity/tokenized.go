package similarity

import "github.com/watchman-screening/screen-core/normalize"

// TokenizedSimilarity normalizes and tokenizes both inputs, strips
// stopwords from the candidate (indexed) side unless cfg.KeepStopwords is
// set, and delegates to either the favoritism variant (favoritism true,
// used for primary/alt name comparisons) or plain best-pair (favoritism
// false; the address comparer calls BestPair directly instead).
//
// The query side is never stopword-stripped: a query that is itself just
// "the bank" should still be compared as typed, since only
// indexed records carry enough corporate boilerplate to be worth
// stripping.
func TokenizedSimilarity(candidate, query string, cfg Config, favoritism bool) float64 {
	candidateTokens := normalize.StripStopwords(normalize.Tokenize(normalize.LowerAndRemovePunctuation(candidate)), cfg.KeepStopwords)
	queryTokens := normalize.Tokenize(normalize.LowerAndRemovePunctuation(query))

	if len(candidateTokens) == 0 || len(queryTokens) == 0 {
		return 0.0
	}

	if favoritism {
		return BestPairFavoritism(candidateTokens, queryTokens, cfg)
	}
	return BestPair(candidateTokens, queryTokens, cfg)
}
