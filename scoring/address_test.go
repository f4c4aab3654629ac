package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/watchman-screening/screen-core/normalize"
	"github.com/watchman-screening/screen-core/screening"
	"github.com/watchman-screening/screen-core/similarity"
)

func prepared(t *testing.T, line1, city, state, postal, country string) screening.PreparedAddress {
	t.Helper()
	l1 := normalize.LowerAndRemovePunctuation(line1)
	c := normalize.LowerAndRemovePunctuation(city)
	return screening.PreparedAddress{
		Line1:       l1,
		Line1Tokens: normalize.Tokenize(l1),
		City:        c,
		CityTokens:  normalize.Tokenize(c),
		State:       state,
		PostalCode:  postal,
		Country:     normalize.NormalizeCountry(country),
	}
}

func TestCompareAddress_IdenticalAddressesScorePerfect(t *testing.T) {
	cfg := similarity.DefaultConfig()
	a := prepared(t, "123 Main Street", "Springfield", "il", "62704", "US")

	assert.InDelta(t, 1.0, CompareAddress(a, a, cfg), 0.001)
}

func TestCompareAddress_SkipsFieldsEmptyOnEitherSide(t *testing.T) {
	cfg := similarity.DefaultConfig()
	query := prepared(t, "123 Main Street", "Springfield", "", "", "")
	candidate := prepared(t, "123 Main St", "Springfield", "il", "62704", "US")

	score := CompareAddress(query, candidate, cfg)
	assert.Greater(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}

func TestCompareAddress_NoComparableFieldsScoresZero(t *testing.T) {
	cfg := similarity.DefaultConfig()
	query := screening.PreparedAddress{}
	candidate := prepared(t, "123 Main St", "Springfield", "il", "62704", "US")

	assert.Equal(t, 0.0, CompareAddress(query, candidate, cfg))
}

func TestCompareAddressLists_ReturnsBestPairAndExitsEarly(t *testing.T) {
	cfg := similarity.DefaultConfig()
	query := []screening.PreparedAddress{
		prepared(t, "999 Nowhere Ave", "Reno", "nv", "89501", "US"),
		prepared(t, "123 Main Street", "Springfield", "il", "62704", "US"),
	}
	candidate := []screening.PreparedAddress{
		prepared(t, "123 Main St", "Springfield", "il", "62704", "US"),
	}

	score := CompareAddressLists(query, candidate, cfg)
	assert.Greater(t, score, 0.9)
}
