package fantasy

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalNameAliases(t *testing.T) {
	assert.Equal(t, "Tottenham Hotspur", canonicalName("Spurs"))
	assert.Equal(t, "Wolverhampton Wanderers", canonicalName("Wolves"))
	assert.Equal(t, "Manchester United", canonicalName("Man Utd"))
	// Names without an alias pass through untouched.
	assert.Equal(t, "Arsenal", canonicalName("Arsenal"))
}

func TestFloatNumberDecodesQuotedDecimals(t *testing.T) {
	var v struct {
		Form     floatNumber `json:"form"`
		ICTIndex floatNumber `json:"ict_index"`
	}
	err := json.Unmarshal([]byte(`{"form": "4.5", "ict_index": 12.3}`), &v)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, float64(v.Form), 1e-9)
	assert.InDelta(t, 12.3, float64(v.ICTIndex), 1e-9)
}

func TestFloatNumberNull(t *testing.T) {
	var v struct {
		Form floatNumber `json:"form"`
	}
	err := json.Unmarshal([]byte(`{"form": null}`), &v)
	require.NoError(t, err)
	assert.Zero(t, float64(v.Form))
}

func TestFplTimeNull(t *testing.T) {
	var f fplFixture
	err := json.Unmarshal([]byte(`{"id": 1, "kickoff_time": null}`), &f)
	require.NoError(t, err)
	assert.True(t, f.KickoffTime.IsZero())
}

func TestConvertFixture(t *testing.T) {
	raw := []byte(`{
		"id": 7,
		"code": 987654,
		"event": 3,
		"kickoff_time": "2019-08-24T14:00:00Z",
		"team_h": 17,
		"team_a": 11,
		"team_h_score": 2,
		"team_a_score": 2,
		"team_h_difficulty": 4,
		"team_a_difficulty": 3,
		"stats": [
			{
				"identifier": "goals_scored",
				"h": [{"value": 2, "element": 220}],
				"a": [{"value": 1, "element": 191}, {"value": 1, "element": 192}]
			}
		]
	}`)
	var f fplFixture
	require.NoError(t, json.Unmarshal(raw, &f))

	m := convertFixture(f)

	assert.Equal(t, 7, m.FantasyMatchID)
	assert.Equal(t, 987654, m.FantasyMatchCode)
	assert.Equal(t, 3, m.FantasyGameWeek)
	assert.Equal(t, time.Date(2019, 8, 24, 14, 0, 0, 0, time.UTC), m.UTCDate)
	assert.Equal(t, 17, m.FantasyHomeTeamID)
	assert.Equal(t, 11, m.FantasyAwayTeamID)
	assert.Equal(t, 4, m.HomeTeamDifficulty)
	require.NotNil(t, m.FullTimeHome)
	assert.Equal(t, 2, *m.FullTimeHome)

	require.Len(t, m.Events, 3)
	assert.Equal(t, "goals_scored", m.Events[0].Stat)
	assert.Equal(t, 220, m.Events[0].PlayerCode)
	assert.Equal(t, "home", m.Events[0].Side)
	assert.Equal(t, "away", m.Events[1].Side)
}

func TestConvertElement(t *testing.T) {
	e := fplElement{
		ID:         191,
		Code:       54694,
		FirstName:  "Raheem",
		SecondName: "Sterling",
		WebName:    "Sterling",
		Team:       11,
		TeamCode:   43,
		TypeID:     3,
		NowCost:    122,
		Form:       6.2,
		GoalsScored: 17,
	}
	positions := map[int]string{3: "Midfielder"}

	p := convertElement(e, positions, 12)

	assert.Equal(t, "Raheem Sterling", p.Name)
	assert.Equal(t, "Midfielder", p.Position)
	assert.Equal(t, 191, p.FantasyID)
	assert.Equal(t, 11, p.FantasyTeamID)
	assert.Equal(t, 122, p.Price)
	assert.InDelta(t, 6.2, p.Form, 1e-9)
	assert.Equal(t, 17, p.Goals)
	assert.Equal(t, 12, p.GameWeek)
}

func TestFallbackTeamNamesCoverAllTwenty(t *testing.T) {
	assert.Len(t, fallbackTeamNames, 20)
	assert.Equal(t, "Arsenal", fallbackTeamNames[1])
	assert.Equal(t, "Wolverhampton Wanderers", fallbackTeamNames[20])
}
