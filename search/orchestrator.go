package search

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/watchman-screening/screen-core/logging"
	"github.com/watchman-screening/screen-core/phonetic"
	"github.com/watchman-screening/screen-core/scoreconfig"
	"github.com/watchman-screening/screen-core/scoring"
	"github.com/watchman-screening/screen-core/screening"
	"github.com/watchman-screening/screen-core/tracing"
)

// maxWorkers bounds how many goroutines the orchestrator fans candidate
// scoring across, matching the snapshot size when it's smaller.
const maxWorkers = 8

// Orchestrator runs queries against an Index, turning a Query plus a
// configuration override into an ordered list of Results.
type Orchestrator struct {
	index *screening.Index
	log   *logging.Logger
}

// New builds an Orchestrator over index. log may be nil, in which case
// query execution is silent.
func New(index *screening.Index, log *logging.Logger) *Orchestrator {
	return &Orchestrator{index: index, log: log}
}

func (o *Orchestrator) logf() *logging.Logger {
	if o.log == nil {
		return nil
	}
	return o.log
}

// Search resolves override against defaults, walks the current index
// snapshot applying the phonetic and name-closeness filters, scores
// surviving candidates, and returns the kept results in descending score
// order (ties broken by entity id ascending), truncated to the resolved
// limit. ctx is checked between candidates; a cancelled context yields the
// partial top-K computed from candidates already scored.
//
// When trace is enabled, the merged trace is returned as the second value;
// otherwise it is nil.
func (o *Orchestrator) Search(ctx context.Context, query Query, override *scoreconfig.Override, trace *tracing.ScoringContext) ([]Result, *tracing.ScoringTrace, error) {
	cfg, err := scoreconfig.Resolve(override)
	if err != nil {
		return nil, nil, err
	}

	snapshot := o.index.Snapshot()
	candidates := snapshot.All()
	if len(candidates) == 0 {
		return nil, trace.Finish(nil), nil
	}

	queryKey := phonetic.PrepareKey(query.queryName())
	queryNameInput := scoring.NameInput{Primary: normalizedName(query)}

	results, mergedTrace := o.scoreParallel(ctx, candidates, query, cfg, queryKey, queryNameInput, trace)

	kept := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Breakdown.Final >= cfg.Search.MinMatch {
			kept = append(kept, r)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Breakdown.Final != kept[j].Breakdown.Final {
			return kept[i].Breakdown.Final > kept[j].Breakdown.Final
		}
		return kept[i].Entity.ID < kept[j].Entity.ID
	})

	if cfg.Search.Limit > 0 && len(kept) > cfg.Search.Limit {
		kept = kept[:cfg.Search.Limit]
	}

	if log := o.logf(); log != nil {
		log.Debug("search completed", zap.Int("candidates", len(candidates)), zap.Int("kept", len(kept)))
	}

	return kept, mergedTrace.Finish(kept), nil
}

// normalizedName extracts the prepared primary name the Name Scorer should
// compare against, for either query mode.
func normalizedName(q Query) string {
	if q.Subject != nil {
		return q.Subject.PreparedPrimaryName
	}
	return normalizePlain(q.Name)
}

// normalizePlain mirrors the lower/punctuation-stripped normalization
// screening.NewEntity applies to a candidate's primary name, so a name-only
// query is compared on equal footing.
func normalizePlain(name string) string {
	return screening.NewEntity(screening.EntityInput{PrimaryName: name}).PreparedPrimaryName
}

// scoreParallel fans candidates across worker goroutines, each owning a
// disjoint slice of the snapshot and its own ScoringContext, then merges
// per-worker results and traces in a deterministic order.
func (o *Orchestrator) scoreParallel(
	ctx context.Context,
	candidates []*screening.Entity,
	query Query,
	cfg scoreconfig.ResolvedConfig,
	queryKey phonetic.Key,
	queryNameInput scoring.NameInput,
	trace *tracing.ScoringContext,
) ([]Result, *tracing.ScoringContext) {
	workers := maxWorkers
	if n := runtime.NumCPU(); n < workers {
		workers = n
	}
	if workers > len(candidates) {
		workers = len(candidates)
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (len(candidates) + workers - 1) / workers

	var wg sync.WaitGroup
	perWorker := make([][]Result, workers)
	perWorkerTrace := make([]*tracing.ScoringContext, workers)

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		if start >= len(candidates) {
			break
		}
		end := start + chunkSize
		if end > len(candidates) {
			end = len(candidates)
		}

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()

			workerTrace := trace
			if trace != nil && trace.Enabled {
				workerTrace = tracing.New(query.Name)
			}

			local := make([]Result, 0, end-start)
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					perWorker[w] = local
					perWorkerTrace[w] = workerTrace
					return
				default:
				}

				candidate := candidates[i]
				if phonetic.ShouldFilterKeys(queryKey, candidate.PhoneticKey, cfg.Similarity.PhoneticFilteringDisabled) {
					continue
				}

				candidateNameInput := scoring.NameInput{
					Primary:    candidate.PreparedPrimaryName,
					Alternates: candidate.PreparedAlternateNames,
				}
				if !scoring.IsNameCloseEnough(queryNameInput, candidateNameInput, cfg.Similarity) {
					continue
				}

				breakdown := o.scoreCandidate(query, queryNameInput.Primary, candidate, cfg, workerTrace)
				local = append(local, Result{Entity: candidate, Breakdown: breakdown})
			}
			perWorker[w] = local
			perWorkerTrace[w] = workerTrace
		}(w, start, end)
	}
	wg.Wait()

	var merged []Result
	for _, r := range perWorker {
		merged = append(merged, r...)
	}

	if trace != nil && trace.Enabled {
		for _, t := range perWorkerTrace {
			trace.Merge(t)
		}
	}

	return merged, trace
}

// scoreCandidate dispatches to the name-only or full-entity scoring path
// depending on the query's mode. normalizedQueryName is the precomputed,
// already-normalized query name used by the name-only path.
func (o *Orchestrator) scoreCandidate(query Query, normalizedQueryName string, candidate *screening.Entity, cfg scoreconfig.ResolvedConfig, trace *tracing.ScoringContext) scoring.ScoreBreakdown {
	if query.Subject == nil {
		score, matchedAlias := scoring.Score(normalizedQueryName, candidate, cfg.Similarity)
		return scoring.ScoreBreakdown{Name: score, Final: score, MatchedAlias: matchedAlias}
	}
	return scoring.ScoreEntity(query.Subject, candidate, cfg, trace)
}
