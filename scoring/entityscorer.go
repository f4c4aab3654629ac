package scoring

import (
	"github.com/watchman-screening/screen-core/screening"
	"github.com/watchman-screening/screen-core/scoreconfig"
	"github.com/watchman-screening/screen-core/similarity"
	"github.com/watchman-screening/screen-core/tracing"
)

// criticalMatchThreshold is the factor score at or above which a critical
// identifier (government ID, crypto address, or contact channel) counts as
// an exact match for the purposes of the critical-match shortcut formula.
const criticalMatchThreshold = 0.99

// Score is the name-only entry point: given a typed query name and a
// candidate entity, it returns the best of the primary-name comparison and
// the best-matching alternate name, ignoring every other factor, plus the
// matching alternate name in its original adapter-supplied form when the
// alternate path won. Used by callers that only have a free-text name to
// search with.
func Score(queryName string, candidate *screening.Entity, cfg similarity.Config) (score float64, matchedAlias string) {
	if candidate == nil || queryName == "" {
		return 0, ""
	}

	var primaryScore float64
	if candidate.PreparedPrimaryName != "" {
		primaryScore = similarity.TokenizedSimilarity(candidate.PreparedPrimaryName, queryName, cfg, true)
	}

	var altScore float64
	var altMatch string
	for i, alt := range candidate.PreparedAlternateNames {
		if s := similarity.TokenizedSimilarity(alt, queryName, cfg, true); s > altScore {
			altScore = s
			altMatch = rawAlternateName(candidate, i)
		}
	}

	if altScore > primaryScore {
		return altScore, altMatch
	}
	return primaryScore, ""
}

// ScoreEntity runs the full Entity Scorer: it compares query against
// candidate on every enabled factor, combines them per the critical-match
// shortcut or the weighted-sum formula, and returns the per-factor
// breakdown alongside the final score. trace may be nil or disabled; when
// it is, every Record call underneath is a no-op.
func ScoreEntity(query, candidate *screening.Entity, cfg scoreconfig.ResolvedConfig, trace *tracing.ScoringContext) ScoreBreakdown {
	trace.Record(tracing.PhaseNormalization, "prepared-fields", nil)

	if query.SourceID != "" && candidate.SourceID != "" && query.SourceID == candidate.SourceID {
		trace.Record(tracing.PhaseAggregation, "source-id-exact-match", func() map[string]any {
			return map[string]any{"sourceId": candidate.SourceID}
		})
		return ScoreBreakdown{Name: 1, AltName: 1, Address: 1, GovId: 1, Crypto: 1, Contact: 1, Date: 1, Final: 1}
	}

	var numerator, denominator float64

	var nameScore, altNamesScore float64

	if cfg.Scoring.NameEnabled {
		nameInput := NameInput{Primary: query.PreparedPrimaryName}
		candInput := NameInput{Primary: candidate.PreparedPrimaryName}
		nameScore, _ = CalculateNameScore(nameInput, candInput, cfg.Similarity)
		trace.Record(tracing.PhaseNameComparison, "primary-name", func() map[string]any {
			return map[string]any{"score": nameScore}
		})
	}

	var matchedAlias string
	if cfg.Scoring.AltNameEnabled {
		var altMatch string
		altNamesScore, altMatch = bestAltNamesScore(query, candidate, cfg.Similarity)
		trace.Record(tracing.PhaseAltNameComparison, "alt-names", func() map[string]any {
			return map[string]any{"score": altNamesScore, "matchedAlias": altMatch}
		})
		if altNamesScore > nameScore {
			matchedAlias = altMatch
		}
	}

	bestNameScore := nameScore
	if altNamesScore > bestNameScore {
		bestNameScore = altNamesScore
	}
	if cfg.Scoring.NameEnabled || cfg.Scoring.AltNameEnabled {
		numerator += bestNameScore * cfg.Scoring.NameWeight
		denominator += cfg.Scoring.NameWeight
	}

	var addressScore float64
	if cfg.Scoring.AddressEnabled && len(query.PreparedAddresses) > 0 && len(candidate.PreparedAddresses) > 0 {
		addressScore = CompareAddressLists(query.PreparedAddresses, candidate.PreparedAddresses, cfg.Similarity)
		trace.Record(tracing.PhaseAddressComparison, "address", func() map[string]any {
			return map[string]any{"score": addressScore}
		})
		numerator += addressScore * cfg.Scoring.AddressWeight
		denominator += cfg.Scoring.AddressWeight
	}

	var govIdScore float64
	if cfg.Scoring.GovIdEnabled && len(query.GovernmentIds) > 0 && len(candidate.GovernmentIds) > 0 {
		govIdScore = CompareGovernmentIdLists(query.GovernmentIds, candidate.GovernmentIds)
		trace.Record(tracing.PhaseGovIdComparison, "government-id", func() map[string]any {
			return map[string]any{"score": govIdScore}
		})
		numerator += govIdScore * cfg.Scoring.CriticalIdWeight
		denominator += cfg.Scoring.CriticalIdWeight
	}

	var cryptoScore float64
	if cfg.Scoring.CryptoEnabled && len(query.CryptoAddresses) > 0 && len(candidate.CryptoAddresses) > 0 {
		cryptoScore = CompareCryptoLists(query.CryptoAddresses, candidate.CryptoAddresses)
		trace.Record(tracing.PhaseCryptoComparison, "crypto-address", func() map[string]any {
			return map[string]any{"score": cryptoScore}
		})
		numerator += cryptoScore * cfg.Scoring.CriticalIdWeight
		denominator += cfg.Scoring.CriticalIdWeight
	}

	var contactScore float64
	if cfg.Scoring.ContactEnabled && query.Contact != nil && candidate.Contact != nil {
		contactScore = CompareContact(query.Contact, candidate.Contact)
		trace.Record(tracing.PhaseContactComparison, "contact", func() map[string]any {
			return map[string]any{"score": contactScore}
		})
		numerator += contactScore * cfg.Scoring.CriticalIdWeight
		denominator += cfg.Scoring.CriticalIdWeight
	}

	var dateScore float64
	if cfg.Scoring.DateEnabled {
		if s, present := CompareDatesForKind(candidate.Kind, query.Dates, candidate.Dates); present {
			dateScore = s
			trace.Record(tracing.PhaseDateComparison, "date", func() map[string]any {
				return map[string]any{"score": dateScore}
			})
			numerator += dateScore * cfg.Scoring.SupportingInfoWeight
			denominator += cfg.Scoring.SupportingInfoWeight
		}
	}

	if query.SourceID != "" && candidate.SourceID != "" && query.SourceID != candidate.SourceID {
		denominator += cfg.Scoring.CriticalIdWeight
	}

	hasExactCriticalMatch := govIdScore >= criticalMatchThreshold ||
		cryptoScore >= criticalMatchThreshold ||
		contactScore >= criticalMatchThreshold

	var final float64
	switch {
	case hasExactCriticalMatch:
		final = 0.7 + 0.3*bestNameScore
	case denominator > 0:
		final = numerator / denominator
	default:
		final = 0
	}

	trace.Record(tracing.PhaseAggregation, "final-score", func() map[string]any {
		return map[string]any{"final": final, "criticalMatch": hasExactCriticalMatch}
	})

	return ScoreBreakdown{
		Name:         nameScore,
		AltName:      altNamesScore,
		Address:      addressScore,
		GovId:        govIdScore,
		Crypto:       cryptoScore,
		Contact:      contactScore,
		Date:         dateScore,
		Final:        final,
		MatchedAlias: matchedAlias,
	}
}

// candidateNameSlot pairs a prepared (lower/punctuation-stripped) candidate
// name with the raw, adapter-supplied alias string it came from, if it came
// from an alternate name at all. rawAlias is empty for the primary-name
// slot.
type candidateNameSlot struct {
	prepared string
	rawAlias string
}

// rawAlternateName resolves a candidate's i'th prepared alternate name back
// to its original-casing form. Falls back to the prepared form itself if
// the raw and prepared alternate-name slices have drifted out of sync.
func rawAlternateName(candidate *screening.Entity, i int) string {
	if i < len(candidate.AlternateNames) {
		return candidate.AlternateNames[i]
	}
	return candidate.PreparedAlternateNames[i]
}

// bestAltNamesScore compares every query name (primary and alternates)
// against every candidate name (primary and alternates) and returns the
// maximum, along with the candidate's raw alternate name that produced it
// when the winner came from an alternate (empty when the primary name won).
// This is a superset of the primary-vs-primary comparison already captured
// by nameScore, so taking max(nameScore, altNamesScore) upstream is always
// just altNamesScore when it runs — the outer max is a consistency guard,
// not a meaningful branch.
func bestAltNamesScore(query, candidate *screening.Entity, cfg similarity.Config) (float64, string) {
	queryNames := make([]string, 0, 1+len(query.PreparedAlternateNames))
	if query.PreparedPrimaryName != "" {
		queryNames = append(queryNames, query.PreparedPrimaryName)
	}
	queryNames = append(queryNames, query.PreparedAlternateNames...)

	candidateNames := make([]candidateNameSlot, 0, 1+len(candidate.PreparedAlternateNames))
	if candidate.PreparedPrimaryName != "" {
		candidateNames = append(candidateNames, candidateNameSlot{prepared: candidate.PreparedPrimaryName})
	}
	for i, alt := range candidate.PreparedAlternateNames {
		candidateNames = append(candidateNames, candidateNameSlot{prepared: alt, rawAlias: rawAlternateName(candidate, i)})
	}

	best := 0.0
	var matchedAlias string
	for _, q := range queryNames {
		for _, c := range candidateNames {
			if s := similarity.TokenizedSimilarity(c.prepared, q, cfg, true); s > best {
				best = s
				matchedAlias = c.rawAlias
			}
		}
	}
	return best, matchedAlias
}
