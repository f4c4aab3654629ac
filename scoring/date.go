package scoring

import (
	"github.com/watchman-screening/screen-core/screening"
)

// dateMatchThreshold is a 0.7 cutoff for a compared date pair's score.
// Nothing reads it: the Entity Scorer includes the date factor whenever
// both sides carry a comparable date, whatever that date's score.
const dateMatchThreshold = 0.7

// lifespanLogicRatio bounds how different two entities' (death-birth)
// lifespans may be before they're treated as mutually implausible.
const lifespanLogicRatio = 1.21

// CompareDates scores one pair of dates as a weighted blend of year,
// month, and day agreement, tolerant of small drifts and common
// transposition typos.
func CompareDates(a, b screening.PartialDate) float64 {
	return 0.4*yearScore(a.Year, b.Year) + 0.3*monthScore(a.Month, b.Month) + 0.3*dayScore(a.Day, b.Day)
}

func yearScore(y1, y2 int) float64 {
	diff := absInt(y1 - y2)
	switch {
	case diff == 0:
		return 1.0
	case diff <= 5:
		return 1.0 - 0.1*float64(diff)
	default:
		return 0.2
	}
}

func monthScore(m1, m2 int) float64 {
	if m1 == m2 {
		return 1.0
	}
	if isAdjacentMonth(m1, m2) {
		return 0.9
	}
	if isMonthTypo(m1, m2) {
		return 0.7
	}
	return 0.3
}

func isAdjacentMonth(m1, m2 int) bool {
	diff := absInt(m1 - m2)
	return diff == 1 || diff == 11 // wraps December/January
}

// isMonthTypo catches the {1, 10, 11, 12} confusion class: a leading "1"
// typed or dropped turns January into October, November, or December and
// vice versa.
func isMonthTypo(m1, m2 int) bool {
	typoPartner := func(m int) bool { return m == 10 || m == 11 || m == 12 }
	return (m1 == 1 && typoPartner(m2)) || (m2 == 1 && typoPartner(m1))
}

func dayScore(d1, d2 int) float64 {
	if d1 == d2 {
		return 1.0
	}
	diff := absInt(d1 - d2)
	if diff > 0 && diff <= 3 {
		return 0.95 - 0.05*float64(diff)/3
	}
	if isDigitSimilarDay(d1, d2) {
		return 0.7
	}
	return 0.3
}

// isDigitSimilarDay catches the common data-entry slips between day
// values: digit reversal (12 <-> 21), a dropped/added leading "1" (1 <->
// 11), and two values that are each a single digit repeated (11, 22).
func isDigitSimilarDay(d1, d2 int) bool {
	if reverseDigits(d1) == d2 || reverseDigits(d2) == d1 {
		return true
	}
	if (d1 == 1 && d2 == 11) || (d2 == 1 && d1 == 11) {
		return true
	}
	return isRepeatedDigit(d1) && isRepeatedDigit(d2)
}

func reverseDigits(d int) int {
	if d < 10 || d > 31 {
		return d
	}
	tens, ones := d/10, d%10
	return ones*10 + tens
}

func isRepeatedDigit(d int) bool {
	return d >= 11 && d <= 31 && d%11 == 0
}

// ordinal gives a rough day-count for a PartialDate, sufficient for
// lifespan-ratio comparisons; it is not a calendar-accurate day count.
func ordinal(d screening.PartialDate) int {
	return d.Year*365 + (d.Month-1)*30 + (d.Day - 1)
}

// AreDatesLogical reports whether two entities' birth/death pairs are
// mutually plausible: neither birth may fall after its own death, and
// the two lifespans may not differ by more than lifespanLogicRatio.
// Missing dates on either side are treated as uninformative, not
// disqualifying.
func AreDatesLogical(birth1, death1, birth2, death2 *screening.PartialDate) bool {
	if birth1 == nil || death1 == nil || birth2 == nil || death2 == nil {
		return true
	}

	if ordinal(*death1) < ordinal(*birth1) {
		return false
	}
	if ordinal(*death2) < ordinal(*birth2) {
		return false
	}

	span1 := ordinal(*death1) - ordinal(*birth1)
	span2 := ordinal(*death2) - ordinal(*birth2)
	if span1 == 0 || span2 == 0 {
		return true
	}

	longer, shorter := float64(span1), float64(span2)
	if shorter > longer {
		longer, shorter = shorter, longer
	}
	return longer/shorter <= lifespanLogicRatio
}

// ComparePersonDates averages the birth and death comparisons present on
// both sides, halving the result when the two lifespans are mutually
// implausible. present reports whether at least one of birth/death had
// data on both sides to compare.
func ComparePersonDates(query, candidate screening.Dates) (score float64, present bool) {
	var total float64
	var count int

	if query.Birth != nil && candidate.Birth != nil {
		total += CompareDates(*query.Birth, *candidate.Birth)
		count++
	}
	if query.Death != nil && candidate.Death != nil {
		total += CompareDates(*query.Death, *candidate.Death)
		count++
	}

	if count == 0 {
		return 0, false
	}

	score = total / float64(count)
	if !AreDatesLogical(query.Birth, query.Death, candidate.Birth, candidate.Death) {
		score *= 0.5
	}
	return score, true
}

// CompareOrganizationDates is the business/org analogue of
// ComparePersonDates, averaging over Created and Dissolved.
func CompareOrganizationDates(query, candidate screening.Dates) (score float64, present bool) {
	var total float64
	var count int

	if query.Created != nil && candidate.Created != nil {
		total += CompareDates(*query.Created, *candidate.Created)
		count++
	}
	if query.Dissolved != nil && candidate.Dissolved != nil {
		total += CompareDates(*query.Dissolved, *candidate.Dissolved)
		count++
	}

	if count == 0 {
		return 0, false
	}
	return total / float64(count), true
}

// CompareAssetDates is the vessel/aircraft analogue, comparing the single
// Built date when both sides have one.
func CompareAssetDates(query, candidate screening.Dates) (score float64, present bool) {
	if query.Built == nil || candidate.Built == nil {
		return 0, false
	}
	return CompareDates(*query.Built, *candidate.Built), true
}

// CompareDatesForKind dispatches to the date comparison appropriate for
// an entity kind: person (birth/death), business (created/dissolved), or
// vessel/aircraft (built). Unknown-kind entities never have a date factor
// to compare.
func CompareDatesForKind(kind screening.EntityKind, query, candidate screening.Dates) (score float64, present bool) {
	switch kind {
	case screening.KindPerson:
		return ComparePersonDates(query, candidate)
	case screening.KindBusiness:
		return CompareOrganizationDates(query, candidate)
	case screening.KindVessel, screening.KindAircraft:
		return CompareAssetDates(query, candidate)
	default:
		return 0, false
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
