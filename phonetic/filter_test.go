package phonetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSoundex(t *testing.T) {
	// Canonical Soundex examples; matchr.Soundex implements the standard
	// American Soundex algorithm.
	assert.Equal(t, "R163", Soundex("Robert"))
	assert.Equal(t, "R163", Soundex("Rupert"))
}

func TestShouldFilter_EquivalenceClasses(t *testing.T) {
	tests := []struct {
		name   string
		a, b   string
		filter bool
	}{
		{"c/k equivalence", "Catherine Smith", "Katherine Smith", false},
		{"c/q equivalence", "Catherine Smith", "Qatarina Smith", false},
		{"m/m mohammed variants", "Mohammad Ali", "Muhammad Ali", false},
		{"clearly different", "zincum llc", "easy verification inc", true},
		{"soundex match", "Robert Jones", "Rupert Jones", false},
		{"identical first token", "Jose Garcia", "Jose Martinez", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.filter, ShouldFilter(tt.a, tt.b, false))
		})
	}
}

func TestShouldFilter_DisabledOrEmpty(t *testing.T) {
	assert.False(t, ShouldFilter("zincum llc", "easy verification inc", true))
	assert.False(t, ShouldFilter("", "anything", false))
	assert.False(t, ShouldFilter("anything", "", false))
}

func TestShouldFilter_DependsOnlyOnFirstTokens(t *testing.T) {
	a1, a2 := "Zincum Resources Group", "Zincum Other Words Entirely"
	b := "Easy Verification Inc"
	assert.Equal(t, ShouldFilter(a1, b, false), ShouldFilter(a2, b, false))
}
