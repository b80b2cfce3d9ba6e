package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMatchWeekWindow(t *testing.T) {
	kickoff := time.Date(2018, 8, 24, 18, 30, 0, 0, time.UTC)
	w := MatchWeekWindow(kickoff)

	assert.Equal(t, kickoff, w.From)
	assert.Equal(t, time.Date(2018, 8, 28, 18, 30, 0, 0, time.UTC), w.To)
}
