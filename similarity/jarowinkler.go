// Package similarity implements the tuned Jaro-Winkler string distance, the
// best-pair multi-token comparator, and the favoritism-aware variant used
// for final name scoring.
//
// The tuning knobs (length-difference cutoff/penalty, different-letter
// penalty, prefix boost threshold, exact-match favoritism, unmatched-token
// weight) are carried in Config rather than hard-coded constants, so a
// caller can run the same comparator under multiple tunings without
// recompiling a fixed distance metric.
package similarity

import (
	"strings"
)

// Config holds the tunable parameters of the screening similarity engine.
// Zero-value Config is invalid; use DefaultConfig and override individual
// fields.
type Config struct {
	// JaroWinklerBoostThreshold is the minimum base Jaro score required
	// before the common-prefix boost is applied.
	JaroWinklerBoostThreshold float64

	// JaroWinklerPrefixSize caps how many leading matching runes count
	// toward the prefix boost.
	JaroWinklerPrefixSize int

	// LengthDifferenceCutoffFactor: comparisons where the shorter string is
	// less than long*factor in length score 0 outright.
	LengthDifferenceCutoffFactor float64

	// LengthDifferencePenaltyWeight scales the subtraction applied for the
	// relative length difference, (long-short)/long, between the two strings.
	LengthDifferencePenaltyWeight float64

	// DifferentLetterPenaltyWeight scales the transposition term of the
	// base Jaro score, penalizing strings that share few letters in the
	// same relative order.
	DifferentLetterPenaltyWeight float64

	// ExactMatchFavoritism is an additive boost applied in the favoritism
	// variant of best-pair similarity when an indexed token matches a
	// query token exactly.
	ExactMatchFavoritism float64

	// UnmatchedIndexTokenWeight penalizes each indexed (candidate-side)
	// token that best-pair selection leaves unmatched.
	UnmatchedIndexTokenWeight float64

	// PhoneticFilteringDisabled, when true, tells the phonetic gatekeeper
	// to never reject a candidate. Carried here because it travels with
	// the rest of the per-request similarity tuning in ResolvedConfig.
	PhoneticFilteringDisabled bool

	// KeepStopwords, when true, disables stopword stripping in the
	// tokenized similarity primitives.
	KeepStopwords bool
}

// adjacentSimilarityPositions is the maximum token-position distance the
// favoritism variant's position-awareness rule tolerates before treating a
// pair as "not adjacent" for tie-breaking purposes. Not exposed as a
// SimilarityConfig field: it is a fixed default of the
// favoritism algorithm, not a per-request tuning knob.
const adjacentSimilarityPositions = 3

// DefaultConfig returns the baseline SimilarityConfig values.
func DefaultConfig() Config {
	return Config{
		JaroWinklerBoostThreshold:     0.7,
		JaroWinklerPrefixSize:         4,
		LengthDifferenceCutoffFactor:  0.9,
		LengthDifferencePenaltyWeight: 0.3,
		DifferentLetterPenaltyWeight:  0.9,
		ExactMatchFavoritism:          0.0,
		UnmatchedIndexTokenWeight:     0.15,
		PhoneticFilteringDisabled:     false,
		KeepStopwords:                 false,
	}
}

// jaroMatches runs the standard Jaro matching pass over two rune slices and
// returns the match count and (un-halved) transposition count.
func jaroMatches(a, b []rune) (matches, transpositions int) {
	la, lb := len(a), len(b)
	if la == 0 || lb == 0 {
		return 0, 0
	}

	matchDistance := maxInt(la, lb)/2 - 1
	if matchDistance < 0 {
		matchDistance = 0
	}

	aMatched := make([]bool, la)
	bMatched := make([]bool, lb)

	for i := 0; i < la; i++ {
		start := maxInt(0, i-matchDistance)
		end := minInt(lb, i+matchDistance+1)
		for j := start; j < end; j++ {
			if bMatched[j] || a[i] != b[j] {
				continue
			}
			aMatched[i] = true
			bMatched[j] = true
			matches++
			break
		}
	}

	if matches == 0 {
		return 0, 0
	}

	k := 0
	for i := 0; i < la; i++ {
		if !aMatched[i] {
			continue
		}
		for !bMatched[k] {
			k++
		}
		if a[i] != b[k] {
			transpositions++
		}
		k++
	}

	return matches, transpositions
}

// tunedJaro computes the base Jaro score with the different-letter
// contribution scaled by w.
func tunedJaro(a, b []rune, w float64) float64 {
	matches, transpositions := jaroMatches(a, b)
	if matches == 0 {
		return 0.0
	}
	m := float64(matches)
	t := float64(transpositions) / 2.0
	return (m/float64(len(a)) + m/float64(len(b)) + w*(m-t)/m) / 3.0
}

// commonPrefixLength counts matching leading runes of a and b, up to max.
func commonPrefixLength(a, b []rune, max int) int {
	n := minInt(len(a), minInt(len(b), max))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// JaroWinkler computes the tuned Jaro-Winkler similarity between a and b
// comparing case-insensitively.
//
// Strings equal under case folding (strings.EqualFold) always score exactly 1.0
// regardless of config, so that similarity(s, s) = 1.0 holds even for
// tunings whose different-letter penalty would otherwise shave a fraction
// of a point off an all-matches, zero-transposition comparison.
func JaroWinkler(a, b string, cfg Config) float64 {
	if a == "" || b == "" {
		return 0.0
	}
	if strings.EqualFold(a, b) {
		return 1.0
	}

	ar := []rune(strings.ToLower(a))
	br := []rune(strings.ToLower(b))

	short, long := minInt(len(ar), len(br)), maxInt(len(ar), len(br))
	if float64(short) < float64(long)*cfg.LengthDifferenceCutoffFactor {
		return 0.0
	}

	j := tunedJaro(ar, br, cfg.DifferentLetterPenaltyWeight)

	j -= cfg.LengthDifferencePenaltyWeight * float64(long-short) / float64(long)

	if j >= cfg.JaroWinklerBoostThreshold {
		k := commonPrefixLength(ar, br, cfg.JaroWinklerPrefixSize)
		j += float64(k) * 0.1 * (1 - j)
	}

	return clamp01(j)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
