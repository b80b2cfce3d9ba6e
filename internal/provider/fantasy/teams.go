package fantasy

// teamAliases rewrites the fantasy API's colloquial club names to the full
// names the structured provider uses, so cross-source name matching works
// without lowering the similarity threshold.
var teamAliases = map[string]string{
	"Brighton":      "Brighton & Hove Albion",
	"Leicester":     "Leicester City",
	"Man City":      "Manchester City",
	"Man Utd":       "Manchester United",
	"Newcastle":     "Newcastle United",
	"Norwich":       "Norwich City",
	"Sheffield Utd": "Sheffield United",
	"Spurs":         "Tottenham Hotspur",
	"West Ham":      "West Ham United",
	"Wolves":        "Wolverhampton Wanderers",
}

// fallbackTeamNames maps fantasy team IDs to names for the current Premier
// League season. Used only when the bootstrap endpoint is unavailable.
var fallbackTeamNames = map[int]string{
	1:  "Arsenal",
	2:  "Aston Villa",
	3:  "Bournemouth",
	4:  "Brighton & Hove Albion",
	5:  "Burnley",
	6:  "Chelsea",
	7:  "Crystal Palace",
	8:  "Everton",
	9:  "Leicester City",
	10: "Liverpool",
	11: "Manchester City",
	12: "Manchester United",
	13: "Newcastle United",
	14: "Norwich City",
	15: "Sheffield United",
	16: "Southampton",
	17: "Tottenham Hotspur",
	18: "Watford",
	19: "West Ham United",
	20: "Wolverhampton Wanderers",
}

// canonicalName applies the alias table.
func canonicalName(name string) string {
	if full, ok := teamAliases[name]; ok {
		return full
	}
	return name
}
