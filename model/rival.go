package model

import "time"

// Rival marks an opponent name as a tracked rivalry for a dynasty. At most
// one rival per (dynasty, opponent) pair; the controller enforces that with
// a duplicate check before inserting.
//
// Opponent must match Game.Opponent exactly for the head-to-head join to
// find the rivalry's games.
type Rival struct {
	ID        string `json:"id"`
	DynastyID string `json:"dynastyId"`
	Opponent  string `json:"opponent"`
	Label     string `json:"label"`

	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

// KeyMoment is a free-text annotation on a rivalry, independent of any game
// record. Listed newest year first.
type KeyMoment struct {
	ID          string `json:"id"`
	RivalID     string `json:"rivalId"`
	Year        int    `json:"year"`
	Description string `json:"description"`

	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

// ScoutingNote is a freeform tendency note about one opponent, upserted by
// (dynastyId, opponent).
type ScoutingNote struct {
	ID        string `json:"id"`
	DynastyID string `json:"dynastyId"`
	Opponent  string `json:"opponent"`
	Note      string `json:"note"`

	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

// RivalrySummary pairs a rival with its head-to-head record and the derived
// intensity and momentum scores.
type RivalrySummary struct {
	Rival     Rival             `json:"rival"`
	Record    *HeadToHeadRecord `json:"record,omitempty"`
	Intensity int               `json:"intensity"`
	Momentum  float64           `json:"momentum"`
	Moments   []KeyMoment       `json:"moments"`
}
