package model

// GameLine is one game as shown in a head-to-head breakdown, most recent
// first. Score is formatted "teamScore-opponentScore".
type GameLine struct {
	Year   int    `json:"year"`
	Week   int    `json:"week"`
	Result Result `json:"result"`
	Score  string `json:"score"`
}

// Streak is the current run of identical results against one opponent.
// Type is the result of the most recent game and Count is how many games
// back that result repeats uninterrupted.
type Streak struct {
	Type  Result `json:"type"`
	Count int    `json:"count"`
}

// HeadToHeadRecord is the aggregate history against one opponent name.
type HeadToHeadRecord struct {
	Opponent   string `json:"opponent"`
	Wins       int    `json:"wins"`
	Losses     int    `json:"losses"`
	Ties       int    `json:"ties"`
	TotalGames int    `json:"totalGames"`
	// WinPct is a percentage with one decimal, 0 when no games.
	WinPct float64    `json:"winPct"`
	Streak Streak     `json:"streak"`
	Games  []GameLine `json:"games"`
}
