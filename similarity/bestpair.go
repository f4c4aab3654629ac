package similarity

import "sort"

// pairCell is one cell of the indexed x query similarity matrix used by
// both best-pair variants.
type pairCell struct {
	i, j  int
	score float64
}

// buildMatrix scores every indexed/query token pair with JaroWinkler and
// reports whether any pair scored an exact match.
func buildMatrix(indexed, query []string, cfg Config) (cells []pairCell, hasExact bool) {
	cells = make([]pairCell, 0, len(indexed)*len(query))
	for i, a := range indexed {
		for j, b := range query {
			s := JaroWinkler(a, b, cfg)
			if s >= 1.0 {
				hasExact = true
			}
			cells = append(cells, pairCell{i, j, s})
		}
	}
	return cells, hasExact
}

// greedySelect sorts cells by descending score and greedily assigns each
// indexed/query token to at most one partner, skipping cells whose row or
// column is already taken. less, when non-nil, overrides the tie-break
// comparator used for equal scores.
func greedySelect(cells []pairCell, less func(x, y pairCell) bool) (matched float64, pairs int, used []pairCell) {
	sorted := make([]pairCell, len(cells))
	copy(sorted, cells)
	sort.Slice(sorted, func(x, y int) bool {
		if sorted[x].score != sorted[y].score {
			return sorted[x].score > sorted[y].score
		}
		if less != nil {
			return less(sorted[x], sorted[y])
		}
		if sorted[x].i != sorted[y].i {
			return sorted[x].i < sorted[y].i
		}
		return sorted[x].j < sorted[y].j
	})

	var usedI, usedJ map[int]bool
	usedI = map[int]bool{}
	usedJ = map[int]bool{}
	for _, c := range sorted {
		if usedI[c.i] || usedJ[c.j] {
			continue
		}
		usedI[c.i] = true
		usedJ[c.j] = true
		matched += c.score
		pairs++
		used = append(used, c)
	}
	return matched, pairs, used
}

// BestPair computes the plain best-pair token similarity between indexed
// (candidate-side) and query-side token arrays.
//
// Each indexed token is greedily paired with its best available query
// token (without replacement); the aggregate score is the sum of the
// selected pairs' similarity scores, minus a penalty for each indexed
// token that was left unmatched, normalized by the larger of the two
// token counts. This is the variant used for address-field comparisons.
func BestPair(indexed, query []string, cfg Config) float64 {
	if len(indexed) == 0 || len(query) == 0 {
		return 0.0
	}

	cells, _ := buildMatrix(indexed, query, cfg)
	matched, pairs, _ := greedySelect(cells, nil)

	unmatched := len(indexed) - pairs
	denom := float64(maxInt(len(indexed), len(query)))
	score := (matched - cfg.UnmatchedIndexTokenWeight*float64(unmatched)) / denom
	return clamp01(score)
}

// BestPairFavoritism computes the favoritism-aware best-pair token
// similarity used for final name scoring.
//
// It differs from BestPair in five ways: a query of at most five tokens
// against a longer indexed name averages every indexed token's best score
// instead of greedy pairing; an additive boost is applied
// whenever some pair scores an exact match; ties in the greedy selection
// prefer pairs whose token positions are within adjacentSimilarityPositions
// of each other; a query much shorter than a multi-token indexed name is
// penalized by the token-count ratio; and a single-token indexed name can
// never outscore 0.9 against a multi-token query.
func BestPairFavoritism(indexed, query []string, cfg Config) float64 {
	if len(indexed) == 0 || len(query) == 0 {
		return 0.0
	}

	var score float64
	var hasExact bool

	if len(query) <= 5 && len(indexed) > len(query) {
		// Short query against a longer indexed name: average every
		// indexed token's best score rather than only the top len(query)
		// greedy pairs, so trailing indexed tokens with no good partner
		// don't get a free pass by going unmatched.
		sum := 0.0
		for _, a := range indexed {
			best := 0.0
			for _, b := range query {
				s := JaroWinkler(a, b, cfg)
				if s > best {
					best = s
				}
				if s >= 1.0 {
					hasExact = true
				}
			}
			sum += best
		}
		score = sum / float64(len(indexed))
	} else {
		cells, exact := buildMatrix(indexed, query, cfg)
		hasExact = exact
		matched, pairs, _ := greedySelect(cells, func(x, y pairCell) bool {
			dx, dy := absInt(x.i-x.j), absInt(y.i-y.j)
			adjX, adjY := dx <= adjacentSimilarityPositions, dy <= adjacentSimilarityPositions
			if adjX != adjY {
				return adjX
			}
			if dx != dy {
				return dx < dy
			}
			if x.i != y.i {
				return x.i < y.i
			}
			return x.j < y.j
		})
		unmatched := len(indexed) - pairs
		denom := float64(maxInt(len(indexed), len(query)))
		score = (matched - cfg.UnmatchedIndexTokenWeight*float64(unmatched)) / denom
	}

	if hasExact {
		score += cfg.ExactMatchFavoritism
	}
	score = clamp01(score)

	if len(indexed) > len(query) && len(indexed) > 3 && len(query) > 3 {
		score *= float64(len(query)) / float64(len(indexed))
	}

	if len(indexed) == 1 && len(query) > 1 && score > 0.9 {
		score = 0.9
	}

	return clamp01(score)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
