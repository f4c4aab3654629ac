package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledContext_RecordIsNoOp(t *testing.T) {
	ctx := Disabled()
	called := false
	ctx.Record(PhaseNameComparison, "primary", func() map[string]any {
		called = true
		return map[string]any{"x": 1}
	})

	assert.False(t, called, "disabled context must not evaluate the lazy data supplier")
	assert.Nil(t, ctx.Finish(nil))
}

func TestNilContext_RecordIsNoOp(t *testing.T) {
	var ctx *ScoringContext
	assert.NotPanics(t, func() {
		ctx.Record(PhaseAggregation, "final", nil)
	})
	assert.Nil(t, ctx.Finish(nil))
}

func TestEnabledContext_RecordsEventsInOrder(t *testing.T) {
	ctx := New("session-1")
	ctx.Record(PhaseTokenization, "query", func() map[string]any { return map[string]any{"tokens": 3} })
	ctx.Record(PhaseNameComparison, "primary", func() map[string]any { return map[string]any{"score": 0.92} })

	trace := ctx.Finish("breakdown-placeholder")
	require.NotNil(t, trace)
	assert.Equal(t, "session-1", trace.SessionID)
	require.Len(t, trace.Events, 2)
	assert.Equal(t, PhaseTokenization, trace.Events[0].Phase)
	assert.Equal(t, PhaseNameComparison, trace.Events[1].Phase)
	assert.Equal(t, "breakdown-placeholder", trace.Breakdown)
}

func TestMerge_CombinesEventsFromWorkerContext(t *testing.T) {
	main := New("session-2")
	main.Record(PhaseAggregation, "start", nil)

	worker := New("session-2-worker")
	worker.Record(PhaseNameComparison, "candidate-1", nil)

	main.Merge(worker)

	trace := main.Finish(nil)
	require.Len(t, trace.Events, 2)
	assert.Equal(t, "start", trace.Events[0].Label)
	assert.Equal(t, "candidate-1", trace.Events[1].Label)
}

func TestMerge_DisabledMainIgnoresWorker(t *testing.T) {
	main := Disabled()
	worker := New("worker")
	worker.Record(PhaseAggregation, "ignored", nil)

	main.Merge(worker)
	assert.Nil(t, main.Finish(nil))
}
