package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/watchman-screening/screen-core/screening"
)

func date(y, m, d int) screening.PartialDate {
	return screening.PartialDate{Year: y, Month: m, Day: d}
}

func TestCompareDates_ExactMatch(t *testing.T) {
	d := date(1975, 6, 14)
	assert.Equal(t, 1.0, CompareDates(d, d))
}

func TestCompareDates_DayTranspositionScoresHigh(t *testing.T) {
	score := CompareDates(date(1975, 6, 12), date(1975, 6, 21))
	assert.Greater(t, score, 0.8)
}

func TestCompareDates_MonthTypoClassScoresHigh(t *testing.T) {
	score := CompareDates(date(1975, 1, 10), date(1975, 11, 10))
	assert.Greater(t, score, 0.7)
}

func TestCompareDates_UnrelatedDatesScoreLow(t *testing.T) {
	score := CompareDates(date(1940, 1, 1), date(1990, 7, 20))
	assert.Less(t, score, 0.4)
}

func TestComparePersonDates_AveragesBirthAndDeath(t *testing.T) {
	birth := date(1950, 3, 4)
	death := date(2010, 8, 9)
	query := screening.Dates{Birth: &birth, Death: &death}
	candidate := screening.Dates{Birth: &birth, Death: &death}

	score, present := ComparePersonDates(query, candidate)
	assert.True(t, present)
	assert.InDelta(t, 1.0, score, 0.001)
}

func TestComparePersonDates_ImplausibleLifespanIsHalved(t *testing.T) {
	queryBirth := date(1900, 1, 1)
	queryDeath := date(1910, 1, 1)
	candidateBirth := date(1900, 1, 1)
	candidateDeath := date(1990, 1, 1)

	query := screening.Dates{Birth: &queryBirth, Death: &queryDeath}
	candidate := screening.Dates{Birth: &candidateBirth, Death: &candidateDeath}

	withoutHalving := (CompareDates(queryBirth, candidateBirth) + CompareDates(queryDeath, candidateDeath)) / 2
	score, present := ComparePersonDates(query, candidate)

	assert.True(t, present)
	assert.InDelta(t, withoutHalving*0.5, score, 0.001)
}

func TestComparePersonDates_NoOverlapIsNotPresent(t *testing.T) {
	birth := date(1950, 1, 1)
	query := screening.Dates{Birth: &birth}
	candidate := screening.Dates{}

	score, present := ComparePersonDates(query, candidate)
	assert.False(t, present)
	assert.Equal(t, 0.0, score)
}

func TestCompareDatesForKind_DispatchesByKind(t *testing.T) {
	built := date(1999, 5, 5)
	query := screening.Dates{Built: &built}
	candidate := screening.Dates{Built: &built}

	score, present := CompareDatesForKind(screening.KindVessel, query, candidate)
	assert.True(t, present)
	assert.InDelta(t, 1.0, score, 0.001)

	_, present = CompareDatesForKind(screening.KindUnknown, query, candidate)
	assert.False(t, present)
}

func TestAreDatesLogical_BirthAfterDeathIsIllogical(t *testing.T) {
	birth := date(2000, 1, 1)
	death := date(1990, 1, 1)
	otherBirth := date(1950, 1, 1)
	otherDeath := date(2000, 1, 1)

	assert.False(t, AreDatesLogical(&birth, &death, &otherBirth, &otherDeath))
}

func TestAreDatesLogical_MissingDatesAreUninformative(t *testing.T) {
	birth := date(1950, 1, 1)
	assert.True(t, AreDatesLogical(&birth, nil, nil, nil))
}
