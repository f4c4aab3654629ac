// Package scoreconfig resolves per-request scoring configuration by
// overlaying an optional override on top of fixed defaults, field by
// field, using typed structs with pointer fields rather than a
// map[string]any merge, and validating the result against fixed bounds.
package scoreconfig

import (
	"fmt"

	"github.com/watchman-screening/screen-core/errors"
	"github.com/watchman-screening/screen-core/similarity"
)

// SimilarityConfig is an alias for similarity.Config: the tunable knobs of
// the similarity engine are defined once, in the package that consumes
// them, and referenced here rather than duplicated.
type SimilarityConfig = similarity.Config

// ScoringConfig holds the per-factor weights and enable flags the Entity
// Scorer uses to combine factor scores into a final weighted score.
type ScoringConfig struct {
	NameWeight           float64
	AddressWeight        float64
	CriticalIdWeight     float64
	SupportingInfoWeight float64

	NameEnabled           bool
	AltNameEnabled        bool
	AddressEnabled        bool
	GovIdEnabled          bool
	CryptoEnabled         bool
	ContactEnabled        bool
	DateEnabled           bool
}

// SearchParams holds the orchestrator-level knobs that govern which
// candidates are kept and how many are returned.
type SearchParams struct {
	MinMatch float64
	Limit    int
}

// ResolvedConfig is the fully merged, validated configuration for one
// query: SimilarityConfig, ScoringConfig, and SearchParams, produced by
// Resolve from a default plus an optional override.
type ResolvedConfig struct {
	Similarity SimilarityConfig
	Scoring    ScoringConfig
	Search     SearchParams
}

// DefaultSimilarityConfig returns the baseline similarity tuning.
func DefaultSimilarityConfig() SimilarityConfig {
	return similarity.DefaultConfig()
}

// DefaultScoringConfig returns the baseline factor weights, all factors
// enabled.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		NameWeight:           35,
		AddressWeight:        25,
		CriticalIdWeight:     50,
		SupportingInfoWeight: 15,
		NameEnabled:          true,
		AltNameEnabled:       true,
		AddressEnabled:       true,
		GovIdEnabled:         true,
		CryptoEnabled:        true,
		ContactEnabled:       true,
		DateEnabled:          true,
	}
}

// DefaultSearchParams returns the baseline search threshold and limit.
func DefaultSearchParams() SearchParams {
	return SearchParams{
		MinMatch: 0.88,
		Limit:    10,
	}
}

// DefaultResolvedConfig returns the fully-defaulted ResolvedConfig, as
// Resolve(nil) would.
func DefaultResolvedConfig() ResolvedConfig {
	return ResolvedConfig{
		Similarity: DefaultSimilarityConfig(),
		Scoring:    DefaultScoringConfig(),
		Search:     DefaultSearchParams(),
	}
}

// SimilarityOverride carries per-request overrides for SimilarityConfig.
// A nil field means "inherit the default".
type SimilarityOverride struct {
	JaroWinklerBoostThreshold     *float64 `yaml:"jaroWinklerBoostThreshold,omitempty"`
	JaroWinklerPrefixSize         *int     `yaml:"jaroWinklerPrefixSize,omitempty"`
	LengthDifferenceCutoffFactor  *float64 `yaml:"lengthDifferenceCutoffFactor,omitempty"`
	LengthDifferencePenaltyWeight *float64 `yaml:"lengthDifferencePenaltyWeight,omitempty"`
	DifferentLetterPenaltyWeight  *float64 `yaml:"differentLetterPenaltyWeight,omitempty"`
	ExactMatchFavoritism          *float64 `yaml:"exactMatchFavoritism,omitempty"`
	UnmatchedIndexTokenWeight     *float64 `yaml:"unmatchedIndexTokenWeight,omitempty"`
	PhoneticFilteringDisabled     *bool    `yaml:"phoneticFilteringDisabled,omitempty"`
	KeepStopwords                 *bool    `yaml:"keepStopwords,omitempty"`
}

// ScoringOverride carries per-request overrides for ScoringConfig.
type ScoringOverride struct {
	NameWeight           *float64 `yaml:"nameWeight,omitempty"`
	AddressWeight        *float64 `yaml:"addressWeight,omitempty"`
	CriticalIdWeight     *float64 `yaml:"criticalIdWeight,omitempty"`
	SupportingInfoWeight *float64 `yaml:"supportingInfoWeight,omitempty"`

	NameEnabled    *bool `yaml:"nameEnabled,omitempty"`
	AltNameEnabled *bool `yaml:"altNameEnabled,omitempty"`
	AddressEnabled *bool `yaml:"addressEnabled,omitempty"`
	GovIdEnabled   *bool `yaml:"govIdEnabled,omitempty"`
	CryptoEnabled  *bool `yaml:"cryptoEnabled,omitempty"`
	ContactEnabled *bool `yaml:"contactEnabled,omitempty"`
	DateEnabled    *bool `yaml:"dateEnabled,omitempty"`
}

// SearchOverride carries per-request overrides for SearchParams.
type SearchOverride struct {
	MinMatch *float64 `yaml:"minMatch,omitempty"`
	Limit    *int     `yaml:"limit,omitempty"`
}

// Override is the top-level per-request configuration override. Any
// sub-override, or any field within one, may be omitted, meaning
// "inherit the default".
type Override struct {
	Similarity *SimilarityOverride `yaml:"similarity,omitempty"`
	Scoring    *ScoringOverride    `yaml:"scoring,omitempty"`
	Search     *SearchOverride     `yaml:"search,omitempty"`
}

// Resolve overlays override on the defaults, field by field, and
// validates the result. A nil override resolves to pure defaults.
func Resolve(override *Override) (ResolvedConfig, error) {
	resolved := DefaultResolvedConfig()

	if override == nil {
		return resolved, nil
	}

	if override.Similarity != nil {
		applySimilarityOverride(&resolved.Similarity, override.Similarity)
	}
	if override.Scoring != nil {
		applyScoringOverride(&resolved.Scoring, override.Scoring)
	}
	if override.Search != nil {
		applySearchOverride(&resolved.Search, override.Search)
	}

	if err := validate(resolved); err != nil {
		return ResolvedConfig{}, err
	}

	return resolved, nil
}

func applySimilarityOverride(cfg *SimilarityConfig, o *SimilarityOverride) {
	if o.JaroWinklerBoostThreshold != nil {
		cfg.JaroWinklerBoostThreshold = *o.JaroWinklerBoostThreshold
	}
	if o.JaroWinklerPrefixSize != nil {
		cfg.JaroWinklerPrefixSize = *o.JaroWinklerPrefixSize
	}
	if o.LengthDifferenceCutoffFactor != nil {
		cfg.LengthDifferenceCutoffFactor = *o.LengthDifferenceCutoffFactor
	}
	if o.LengthDifferencePenaltyWeight != nil {
		cfg.LengthDifferencePenaltyWeight = *o.LengthDifferencePenaltyWeight
	}
	if o.DifferentLetterPenaltyWeight != nil {
		cfg.DifferentLetterPenaltyWeight = *o.DifferentLetterPenaltyWeight
	}
	if o.ExactMatchFavoritism != nil {
		cfg.ExactMatchFavoritism = *o.ExactMatchFavoritism
	}
	if o.UnmatchedIndexTokenWeight != nil {
		cfg.UnmatchedIndexTokenWeight = *o.UnmatchedIndexTokenWeight
	}
	if o.PhoneticFilteringDisabled != nil {
		cfg.PhoneticFilteringDisabled = *o.PhoneticFilteringDisabled
	}
	if o.KeepStopwords != nil {
		cfg.KeepStopwords = *o.KeepStopwords
	}
}

func applyScoringOverride(cfg *ScoringConfig, o *ScoringOverride) {
	if o.NameWeight != nil {
		cfg.NameWeight = *o.NameWeight
	}
	if o.AddressWeight != nil {
		cfg.AddressWeight = *o.AddressWeight
	}
	if o.CriticalIdWeight != nil {
		cfg.CriticalIdWeight = *o.CriticalIdWeight
	}
	if o.SupportingInfoWeight != nil {
		cfg.SupportingInfoWeight = *o.SupportingInfoWeight
	}
	if o.NameEnabled != nil {
		cfg.NameEnabled = *o.NameEnabled
	}
	if o.AltNameEnabled != nil {
		cfg.AltNameEnabled = *o.AltNameEnabled
	}
	if o.AddressEnabled != nil {
		cfg.AddressEnabled = *o.AddressEnabled
	}
	if o.GovIdEnabled != nil {
		cfg.GovIdEnabled = *o.GovIdEnabled
	}
	if o.CryptoEnabled != nil {
		cfg.CryptoEnabled = *o.CryptoEnabled
	}
	if o.ContactEnabled != nil {
		cfg.ContactEnabled = *o.ContactEnabled
	}
	if o.DateEnabled != nil {
		cfg.DateEnabled = *o.DateEnabled
	}
}

func applySearchOverride(cfg *SearchParams, o *SearchOverride) {
	if o.MinMatch != nil {
		cfg.MinMatch = *o.MinMatch
	}
	if o.Limit != nil {
		cfg.Limit = *o.Limit
	}
}

// validate checks the resolved configuration against fixed bounds,
// returning errors.NewInvalidConfig for the first violation found.
func validate(cfg ResolvedConfig) error {
	s := cfg.Similarity
	if err := unitRange("similarity.jaroWinklerBoostThreshold", s.JaroWinklerBoostThreshold); err != nil {
		return err
	}
	if s.JaroWinklerPrefixSize < 0 {
		return errors.NewInvalidConfig("similarity.jaroWinklerPrefixSize", "must be >= 0")
	}
	if err := unitRange("similarity.lengthDifferenceCutoffFactor", s.LengthDifferenceCutoffFactor); err != nil {
		return err
	}
	if err := unitRange("similarity.lengthDifferencePenaltyWeight", s.LengthDifferencePenaltyWeight); err != nil {
		return err
	}
	if err := unitRange("similarity.differentLetterPenaltyWeight", s.DifferentLetterPenaltyWeight); err != nil {
		return err
	}
	if s.ExactMatchFavoritism < 0 {
		return errors.NewInvalidConfig("similarity.exactMatchFavoritism", "must be >= 0")
	}
	if s.UnmatchedIndexTokenWeight < 0 {
		return errors.NewInvalidConfig("similarity.unmatchedIndexTokenWeight", "must be >= 0")
	}

	sc := cfg.Scoring
	if sc.NameWeight < 0 {
		return errors.NewInvalidConfig("scoring.nameWeight", "must be >= 0")
	}
	if sc.AddressWeight < 0 {
		return errors.NewInvalidConfig("scoring.addressWeight", "must be >= 0")
	}
	if sc.CriticalIdWeight < 0 {
		return errors.NewInvalidConfig("scoring.criticalIdWeight", "must be >= 0")
	}
	if sc.SupportingInfoWeight < 0 {
		return errors.NewInvalidConfig("scoring.supportingInfoWeight", "must be >= 0")
	}

	sp := cfg.Search
	if err := unitRange("search.minMatch", sp.MinMatch); err != nil {
		return err
	}
	if sp.Limit < 1 {
		return errors.NewInvalidConfig("search.limit", "must be >= 1")
	}

	return nil
}

func unitRange(field string, value float64) error {
	if value < 0 || value > 1 {
		return errors.NewInvalidConfig(field, fmt.Sprintf("must be in [0, 1], got %v", value))
	}
	return nil
}
