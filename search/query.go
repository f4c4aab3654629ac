// Package search implements the orchestrator: it resolves per-request
// configuration, walks an index snapshot applying the phonetic and
// name-closeness filters, scores surviving candidates with the Entity
// Scorer, and returns the kept results sorted and truncated.
package search

import (
	"github.com/watchman-screening/screen-core/scoring"
	"github.com/watchman-screening/screen-core/screening"
)

// Query is either a bare name (Subject nil) or a partially populated
// Entity serving as the query subject (Subject set). Unset fields on a
// full-entity query simply don't contribute to scoring.
type Query struct {
	Name    string
	Subject *screening.Entity
}

// NameQuery builds a name-only Query.
func NameQuery(name string) Query {
	return Query{Name: name}
}

// EntityQuery builds a full-entity Query from adapter input. The subject is
// run through the same construction path (screening.NewEntity) real
// candidates go through, so its prepared fields and phonetic keys are
// computed once, up front.
func EntityQuery(in screening.EntityInput) Query {
	subject := screening.NewEntity(in)
	return Query{Name: in.PrimaryName, Subject: subject}
}

// queryName returns the raw name the phonetic filter keys on, regardless
// of query mode; the name-closeness gate uses normalizedName instead.
func (q Query) queryName() string {
	if q.Subject != nil {
		return q.Subject.PrimaryName
	}
	return q.Name
}

// Result pairs one kept candidate with its score breakdown.
type Result struct {
	Entity    *screening.Entity
	Breakdown scoring.ScoreBreakdown
}
