// Package scoring implements the Name Scorer, the per-field comparers
// (address, government ID, crypto, contact, date), and the Entity Scorer
// that combines them into a weighted final score.
package scoring

// ScoreBreakdown is the per-factor result of scoring one candidate
// against a query, each component in [0.0, 1.0].
type ScoreBreakdown struct {
	Name    float64
	AltName float64
	Address float64
	GovId   float64
	Crypto  float64
	Contact float64
	Date    float64
	Final   float64

	// MatchedAlias is the candidate's alternate name that produced AltName,
	// in its original adapter-supplied form, when AltName is what drove
	// the best name score. Empty when the match came through the primary
	// name instead, or when there was no alternate-name comparison at all.
	MatchedAlias string
}
