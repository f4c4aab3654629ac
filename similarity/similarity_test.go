package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJaroWinkler_SelfSimilarityIsOne(t *testing.T) {
	cfg := DefaultConfig()
	for _, s := range []string{"a", "Robert", "Al-Qaida Islamic Front", "José García"} {
		assert.Equal(t, 1.0, JaroWinkler(s, s, cfg), "self-similarity should be exactly 1.0 for %q", s)
	}
}

func TestJaroWinkler_EmptyStringIsZero(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 0.0, JaroWinkler("anything", "", cfg))
	assert.Equal(t, 0.0, JaroWinkler("", "anything", cfg))
	assert.Equal(t, 0.0, JaroWinkler("", "", cfg))
}

func TestJaroWinkler_Symmetric(t *testing.T) {
	cfg := DefaultConfig()
	pairs := [][2]string{
		{"Martha", "Marhta"},
		{"Dwayne", "Duane"},
		{"Dixon", "Dicksonx"},
		{"Robert", "Rupert"},
		{"Al Qaida", "Al-Qaeda"},
	}
	for _, p := range pairs {
		a := JaroWinkler(p[0], p[1], cfg)
		b := JaroWinkler(p[1], p[0], cfg)
		assert.InDelta(t, a, b, 1e-9, "%q vs %q should be symmetric", p[0], p[1])
	}
}

func TestJaroWinkler_PrefixBoostRewardsCommonPrefix(t *testing.T) {
	cfg := DefaultConfig()
	// 6 vs 7 runes falls below the default 0.9 length cutoff (6 < 6.3),
	// which scores both pairs 0; relax it so the prefix boost can show.
	cfg.LengthDifferenceCutoffFactor = 0.8
	withPrefix := JaroWinkler("MARTIN", "MARTINE", cfg)
	withoutPrefix := JaroWinkler("MARTIN", "ENITRAM", cfg)
	assert.Greater(t, withPrefix, withoutPrefix)
}

func TestJaroWinkler_LengthCutoffRejectsVeryDifferentLengths(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 0.0, JaroWinkler("a", "abcdefghij", cfg))
}

func TestJaroWinkler_Bounded(t *testing.T) {
	cfg := DefaultConfig()
	samples := [][2]string{
		{"Smith", "Smyth"},
		{"Zincum", "Zinc"},
		{"Catherine", "Qatarina"},
		{"abc", "xyz"},
	}
	for _, p := range samples {
		s := JaroWinkler(p[0], p[1], cfg)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestBestPair_IdenticalTokenSets(t *testing.T) {
	cfg := DefaultConfig()
	tokens := []string{"vladimir", "putin"}
	assert.Equal(t, 1.0, BestPair(tokens, tokens, cfg))
}

func TestBestPair_EmptySide(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 0.0, BestPair([]string{}, []string{"a"}, cfg))
	assert.Equal(t, 0.0, BestPair([]string{"a"}, []string{}, cfg))
}

func TestBestPair_UnmatchedIndexedTokensPenalized(t *testing.T) {
	cfg := DefaultConfig()
	short := BestPair([]string{"vladimir"}, []string{"vladimir"}, cfg)
	long := BestPair([]string{"vladimir", "extra", "tokens", "here"}, []string{"vladimir"}, cfg)
	assert.Less(t, long, short)
}

func TestBestPairFavoritism_SingleTokenCap(t *testing.T) {
	cfg := DefaultConfig()
	score := BestPairFavoritism([]string{"smith"}, []string{"smith", "family", "trust"}, cfg)
	assert.LessOrEqual(t, score, 0.9)
}

func TestBestPairFavoritism_QueryShorterPenalty(t *testing.T) {
	cfg := DefaultConfig()
	indexed := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	query := []string{"alpha", "beta", "gamma", "delta"}
	score := BestPairFavoritism(indexed, query, cfg)
	assert.Less(t, score, 1.0)
}

func TestTokenizedSimilarity_StripsCandidateStopwords(t *testing.T) {
	cfg := DefaultConfig()
	withStopwords := TokenizedSimilarity("The Central Bank of Kuwait", "Central Bank Kuwait", cfg, false)
	cfg.KeepStopwords = true
	withoutStripping := TokenizedSimilarity("The Central Bank of Kuwait", "Central Bank Kuwait", cfg, false)
	assert.GreaterOrEqual(t, withStopwords, withoutStripping)
}

func TestTokenizedSimilarity_EmptyInputsScoreZero(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 0.0, TokenizedSimilarity("", "anything", cfg, true))
	assert.Equal(t, 0.0, TokenizedSimilarity("anything", "", cfg, false))
}
