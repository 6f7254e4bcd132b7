package model

import (
	"fmt"
	"time"
)

// Season is one year of a dynasty. The win/loss and conference fields are
// derived: they are recomputed from the season's games after every game
// mutation and are never set directly by callers.
type Season struct {
	ID        string `json:"id"`
	DynastyID string `json:"dynastyId"`
	Year      int    `json:"year"`

	Wins       int `json:"wins"`
	Losses     int `json:"losses"`
	ConfWins   int `json:"confWins"`
	ConfLosses int `json:"confLosses"`

	FinalRanking  *int   `json:"finalRanking,omitempty"`
	BowlGame      string `json:"bowlGame,omitempty"`
	BowlResult    string `json:"bowlResult,omitempty"`
	PlayoffResult string `json:"playoffResult,omitempty"`
	Notes         string `json:"notes,omitempty"`

	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

// Record renders the season as "W-L (CW-CL)".
func (s *Season) Record() string {
	return fmt.Sprintf("%d-%d (%d-%d)", s.Wins, s.Losses, s.ConfWins, s.ConfLosses)
}
