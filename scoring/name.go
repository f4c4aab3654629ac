package scoring

import (
	"github.com/watchman-screening/screen-core/similarity"
)

// earlyExitThreshold is the minimum CalculateNameScore result a candidate
// must clear before the orchestrator bothers computing the rest of the
// breakdown.
const earlyExitThreshold = 0.4

// NameInput is the minimal name shape the Name Scorer needs from either a
// query or a candidate: a primary name and zero or more alternates.
type NameInput struct {
	Primary    string
	Alternates []string
}

// CalculateNameScore blends a primary-name comparison and the best
// alternate-name comparison into one name score, following the favoritism
// variant of tokenized similarity (the same variant used throughout the
// Entity Scorer's name factors).
//
// fieldsCompared is 2 when both primary and at least one alternate pair
// were compared, 1 when only one side contributed, 0 when neither side
// has a primary name and neither has alternates to compare.
func CalculateNameScore(query, candidate NameInput, cfg similarity.Config) (score float64, fieldsCompared int) {
	havePrimary := query.Primary != "" && candidate.Primary != ""
	haveAlts := len(query.Alternates) > 0 && len(candidate.Alternates) > 0

	var primaryScore, altScore float64

	if havePrimary {
		primaryScore = similarity.TokenizedSimilarity(candidate.Primary, query.Primary, cfg, true)
	}

	if haveAlts {
		for _, qAlt := range query.Alternates {
			for _, cAlt := range candidate.Alternates {
				if s := similarity.TokenizedSimilarity(cAlt, qAlt, cfg, true); s > altScore {
					altScore = s
				}
			}
		}
	}

	switch {
	case havePrimary && haveAlts:
		return (primaryScore + altScore) / 2, 2
	case havePrimary:
		return primaryScore, 1
	case haveAlts:
		return altScore, 1
	default:
		return 0, 0
	}
}

// IsNameCloseEnough is the Name Scorer's early-exit gate: when either side
// lacks a primary name there is nothing decisive to gate on, so the
// candidate proceeds. Otherwise the candidate must clear
// earlyExitThreshold.
func IsNameCloseEnough(query, candidate NameInput, cfg similarity.Config) bool {
	if query.Primary == "" || candidate.Primary == "" {
		return true
	}
	score, _ := CalculateNameScore(query, candidate, cfg)
	return score >= earlyExitThreshold
}

// BestAlternateMatch compares queryName against every one of candidateAlts
// and returns the highest-scoring alternate along with its score; among
// tied alternates the earliest is kept. The Entity Scorer does not call
// it: Score and bestAltNamesScore run their own loops over the prepared
// alternate names.
func BestAlternateMatch(queryName string, candidateAlts []string, cfg similarity.Config) (bestAlt string, bestScore float64) {
	for _, alt := range candidateAlts {
		if s := similarity.TokenizedSimilarity(alt, queryName, cfg, true); s > bestScore {
			bestScore = s
			bestAlt = alt
		}
	}
	return bestAlt, bestScore
}
