package model

// StatPolicy says how a stat key is combined across seasons when building a
// career total: counting stats add up, rate stats are averaged weighted by
// games played.
type StatPolicy int

const (
	PolicySum StatPolicy = iota
	PolicyWeightedAverage
)

// StatPolicyTable maps stat keys to aggregation policies. Keys not present
// in the table are summed.
type StatPolicyTable map[string]StatPolicy

func (t StatPolicyTable) PolicyFor(key string) StatPolicy {
	if p, ok := t[key]; ok {
		return p
	}
	return PolicySum
}

// The rate-stat keys per sport. Everything not listed is a counting stat.
var (
	cfbStatPolicies = StatPolicyTable{
		"passerRating":      PolicyWeightedAverage,
		"puntAverage":       PolicyWeightedAverage,
		"kickoffAverage":    PolicyWeightedAverage,
		"yardsPerCarry":     PolicyWeightedAverage,
		"yardsPerReception": PolicyWeightedAverage,
		"sacksPerGame":      PolicyWeightedAverage,
	}

	maddenStatPolicies = StatPolicyTable{
		"passerRating":      PolicyWeightedAverage,
		"puntAverage":       PolicyWeightedAverage,
		"yardsPerCarry":     PolicyWeightedAverage,
		"yardsPerReception": PolicyWeightedAverage,
		"sacksPerGame":      PolicyWeightedAverage,
	}
)

// StatPoliciesFor returns the aggregation table for a sport. Unknown sports
// get an empty table, meaning every key is summed.
func StatPoliciesFor(sport Sport) StatPolicyTable {
	switch sport {
	case SPORT_CFB:
		return cfbStatPolicies
	case SPORT_MADDEN, SPORT_NFL2K:
		return maddenStatPolicies
	default:
		return StatPolicyTable{}
	}
}

// LeaderboardEntry is one row of a single-season or career leaderboard.
type LeaderboardEntry struct {
	PlayerID string  `json:"playerId"`
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Value    float64 `json:"value"`
	// Year is set for single-season leaders, Seasons for career leaders.
	Year    int `json:"year,omitempty"`
	Seasons int `json:"seasons,omitempty"`
}
