// Package tracing implements the opt-in per-phase scoring trace: a
// ScoringContext that the Entity Scorer reports into, producing a
// ScoringTrace the caller can inspect after a query completes. The
// similarity functions take no ScoringContext and record nothing.
//
// When a ScoringContext is disabled (the zero value, or constructed with
// enabled=false), every Record call is a constant-time no-op that does not
// invoke its lazy data supplier — this is load-bearing for production
// queries that never enable tracing.
package tracing

// Phase tags one ScoringEvent to the pipeline stage that produced it.
type Phase string

const (
	PhaseNormalization      Phase = "normalization"
	PhaseNameComparison     Phase = "name_comparison"
	PhaseAltNameComparison  Phase = "alt_name_comparison"
	PhaseAddressComparison  Phase = "address_comparison"
	PhaseGovIdComparison    Phase = "gov_id_comparison"
	PhaseCryptoComparison   Phase = "crypto_comparison"
	PhaseContactComparison  Phase = "contact_comparison"
	PhaseDateComparison     Phase = "date_comparison"
	PhaseAggregation        Phase = "aggregation"
	PhaseTokenization       Phase = "tokenization"
)

// ScoringEvent is one recorded step of a trace: a phase tag, a short
// label, and an optional key/value payload produced lazily (only ever
// materialized when the context is enabled).
type ScoringEvent struct {
	SequenceNum int64
	Phase       Phase
	Label       string
	Data        map[string]any
}

// ScoringTrace is the ordered record of a single query's scoring phases.
// Breakdown is whatever the caller passes to Finish: the search
// orchestrator passes its kept []search.Result (nil for an empty index),
// and a direct scoring.ScoreEntity caller may pass the ScoreBreakdown. It
// is typed as `any` so this package never imports either package.
type ScoringTrace struct {
	SessionID string
	Events    []ScoringEvent
	Breakdown any
}

// ScoringContext is passed explicitly into scoring.ScoreEntity; the
// similarity functions do not take one.
// A nil *ScoringContext, or one with Enabled=false, behaves as a complete
// no-op: Record never evaluates its data supplier and the underlying
// ScoringTrace is never mutated.
type ScoringContext struct {
	Enabled   bool
	sessionID string
	events    []ScoringEvent
	seq       int64
}

// New constructs an enabled ScoringContext for sessionID.
func New(sessionID string) *ScoringContext {
	return &ScoringContext{Enabled: true, sessionID: sessionID}
}

// Disabled returns a ScoringContext whose Record calls are no-ops. Safe to
// share across goroutines since it never mutates state.
func Disabled() *ScoringContext {
	return &ScoringContext{Enabled: false}
}

// Record appends an event to the trace, tagging it with phase and label.
// data is a lazy supplier invoked only when the context is enabled — when
// disabled, data is never called, so callers may pass an expensive
// closure without a branch at every call site.
func (c *ScoringContext) Record(phase Phase, label string, data func() map[string]any) {
	if c == nil || !c.Enabled {
		return
	}
	c.seq++
	var payload map[string]any
	if data != nil {
		payload = data()
	}
	c.events = append(c.events, ScoringEvent{
		SequenceNum: c.seq,
		Phase:       phase,
		Label:       label,
		Data:        payload,
	})
}

// Finish produces the ScoringTrace for this context, attaching breakdown
// (the search orchestrator passes its kept results) as the final result.
// Called once per request, after scoring completes. Returns nil when the
// context is disabled: there is nothing to retrieve.
func (c *ScoringContext) Finish(breakdown any) *ScoringTrace {
	if c == nil || !c.Enabled {
		return nil
	}
	return &ScoringTrace{
		SessionID: c.sessionID,
		Events:    c.events,
		Breakdown: breakdown,
	}
}

// Merge appends another context's events after c's own, keeping each
// context's recorded order; SequenceNum values are not renumbered, so they
// restart with each merged context's events. Used to combine per-worker ScoringContexts after
// parallel candidate scoring.
func (c *ScoringContext) Merge(other *ScoringContext) {
	if c == nil || !c.Enabled || other == nil || len(other.events) == 0 {
		return
	}
	c.events = append(c.events, other.events...)
}
