package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex_InsertGetSizeClear(t *testing.T) {
	idx := NewIndex()
	assert.Equal(t, 0, idx.Size())

	e1 := NewEntity(EntityInput{ID: "A", Kind: KindPerson, Source: SourceUSOFAC})
	e2 := NewEntity(EntityInput{ID: "B", Kind: KindBusiness, Source: SourceEUCSL})
	idx.Insert(e1, e2)
	assert.Equal(t, 2, idx.Size())

	got, ok := idx.Get("A")
	assert.True(t, ok)
	assert.Same(t, e1, got)

	_, ok = idx.Get("missing")
	assert.False(t, ok)

	idx.Clear()
	assert.Equal(t, 0, idx.Size())
}

func TestIndex_InsertReplacesById(t *testing.T) {
	idx := NewIndex()
	idx.Insert(NewEntity(EntityInput{ID: "A", PrimaryName: "first"}))
	idx.Insert(NewEntity(EntityInput{ID: "A", PrimaryName: "second"}))

	assert.Equal(t, 1, idx.Size())
	e, _ := idx.Get("A")
	assert.Equal(t, "second", e.PrimaryName)
}

func TestIndex_SnapshotIsolatedFromLaterMutation(t *testing.T) {
	idx := NewIndex()
	idx.Insert(NewEntity(EntityInput{ID: "A"}))

	snap := idx.Snapshot()
	assert.Equal(t, 1, snap.Size())

	idx.Insert(NewEntity(EntityInput{ID: "B"}))
	idx.Clear()

	assert.Equal(t, 1, snap.Size(), "snapshot should not observe mutations after acquisition")
}

func TestIndex_SnapshotStableOrderAndViews(t *testing.T) {
	idx := NewIndex()
	idx.Insert(
		NewEntity(EntityInput{ID: "C", Kind: KindPerson, Source: SourceUSOFAC}),
		NewEntity(EntityInput{ID: "A", Kind: KindBusiness, Source: SourceEUCSL}),
		NewEntity(EntityInput{ID: "B", Kind: KindPerson, Source: SourceUSOFAC}),
	)

	snap := idx.Snapshot()
	ids := make([]string, 0, 3)
	for _, e := range snap.All() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"A", "B", "C"}, ids)

	persons := snap.ByKind(KindPerson)
	assert.Len(t, persons, 2)
	assert.Equal(t, "B", persons[0].ID)
	assert.Equal(t, "C", persons[1].ID)

	ofac := snap.BySource(SourceUSOFAC)
	assert.Len(t, ofac, 2)
}
