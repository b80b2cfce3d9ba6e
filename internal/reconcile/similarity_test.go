package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityReflexive(t *testing.T) {
	for _, s := range []string{"Hello", "FC Bayern München", "x", ""} {
		assert.Equal(t, 1.0, Similarity(s, s))
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"Champions League", "UEFA Champions League"},
		{"Arsenal", "Arsenal FC"},
		{"altogether", "nevermind"},
		{"Bayern", "FC Bayern München"},
	}
	for _, p := range pairs {
		assert.Equal(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]))
	}
}

func TestSimilarityStopwordInsensitive(t *testing.T) {
	assert.GreaterOrEqual(t, Similarity("Champions League", "UEFA Champions League"), 0.9)
	// Stopwords are whole tokens; "FC" inside a word must survive.
	assert.Equal(t, 1.0, Similarity("Arsenal FC", "Arsenal"))
	assert.Less(t, Similarity("Fulchester", "ulchester"), 1.0)
}

func TestSimilarityDissimilarFloor(t *testing.T) {
	assert.LessOrEqual(t, Similarity("altogether", "nevermind"), 0.5)
}

func TestSimilarityContainmentTier(t *testing.T) {
	// Shorter cleaned name contained in the longer one scores 0.99.
	assert.Equal(t, 0.99, Similarity("Bayern", "Bayern München"))
	// Regex metacharacters in names must not break the tier.
	assert.Equal(t, 0.99, Similarity("Brighton & Hove Albion", "Brighton & Hove Albion (W)"))
}

func TestNameContainsDirection(t *testing.T) {
	assert.True(t, nameContains("FC Bayern München", "Bayern"))
	assert.True(t, nameContains("TSG 1899 Hoffenheim", "Hoffenheim"))
	assert.False(t, nameContains("Bayern", ""))
	assert.False(t, nameContains("Everton", "Everton Reserves"))
}

func TestTransliterate(t *testing.T) {
	assert.Equal(t, "Sergio Aguero", Transliterate("Sergio Agüero"))
	assert.Equal(t, "N'Golo Kante", Transliterate("N'Golo Kanté"))
	assert.Equal(t, "plain", Transliterate("plain"))
}
