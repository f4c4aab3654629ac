package screening

import (
	"sort"
	"sync"
)

// Index is a concurrency-safe in-memory container of prepared entities.
// Insert and Clear swap in a new underlying map under the write lock, so a
// Snapshot acquired before a mutation continues to observe the entities as
// they were at acquisition time — copy-on-write rather than a shared
// mutable map.
type Index struct {
	mu       sync.Mutex
	entities map[string]*Entity
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{entities: map[string]*Entity{}}
}

// Insert adds or replaces entities by id.
func (idx *Index) Insert(entities ...*Entity) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	next := make(map[string]*Entity, len(idx.entities)+len(entities))
	for id, e := range idx.entities {
		next[id] = e
	}
	for _, e := range entities {
		next[e.ID] = e
	}
	idx.entities = next
}

// Clear removes every entity from the index.
func (idx *Index) Clear() {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.entities = map[string]*Entity{}
}

// Size returns the number of entities currently in the index.
func (idx *Index) Size() int {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return len(idx.entities)
}

// Get returns the entity with the given id, if present.
func (idx *Index) Get(id string) (*Entity, bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	e, ok := idx.entities[id]
	return e, ok
}

// Snapshot is an immutable, point-in-time view of the index, sorted by
// entity id for reproducible iteration order.
type Snapshot struct {
	all      []*Entity
	byKind   map[EntityKind][]*Entity
	bySource map[SourceList][]*Entity
}

// Snapshot acquires a read-only view of the index's current contents.
// Subsequent Insert/Clear calls do not affect a snapshot already acquired.
func (idx *Index) Snapshot() *Snapshot {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	all := make([]*Entity, 0, len(idx.entities))
	for _, e := range idx.entities {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	byKind := make(map[EntityKind][]*Entity)
	bySource := make(map[SourceList][]*Entity)
	for _, e := range all {
		byKind[e.Kind] = append(byKind[e.Kind], e)
		bySource[e.Source] = append(bySource[e.Source], e)
	}

	return &Snapshot{all: all, byKind: byKind, bySource: bySource}
}

// All returns every entity in the snapshot, in stable id order.
func (s *Snapshot) All() []*Entity { return s.all }

// ByKind returns the entities of the given kind, in stable id order.
func (s *Snapshot) ByKind(kind EntityKind) []*Entity { return s.byKind[kind] }

// BySource returns the entities from the given source list, in stable id
// order.
func (s *Snapshot) BySource(source SourceList) []*Entity { return s.bySource[source] }

// Size returns the number of entities in the snapshot.
func (s *Snapshot) Size() int { return len(s.all) }
