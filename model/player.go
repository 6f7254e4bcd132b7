package model

import (
	"fmt"
	"strings"
	"time"
)

type PlayerStatus string

const (
	STATUS_ACTIVE      PlayerStatus = "active"
	STATUS_GRADUATED   PlayerStatus = "graduated"
	STATUS_TRANSFERRED PlayerStatus = "transferred"
	STATUS_DRAFTED     PlayerStatus = "drafted"
	STATUS_INJURED     PlayerStatus = "injured"
	STATUS_OTHER       PlayerStatus = "other"
)

func ParsePlayerStatus(s string) PlayerStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return STATUS_ACTIVE
	case "graduated":
		return STATUS_GRADUATED
	case "transferred":
		return STATUS_TRANSFERRED
	case "drafted":
		return STATUS_DRAFTED
	case "injured":
		return STATUS_INJURED
	default:
		return STATUS_OTHER
	}
}

// Player is a roster member of a dynasty. Position is free text because the
// valid set differs per sport and game version.
type Player struct {
	ID        string       `json:"id"`
	DynastyID string       `json:"dynastyId"`
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	Position  string       `json:"position"`
	Status    PlayerStatus `json:"status"`

	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

func (p *Player) FullName() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", p.FirstName, p.LastName))
}

// PlayerSeason is one player's stat line for one season. Stats is an open
// key to value mapping; which keys exist is up to the sport and the user,
// the engines only need the per-key aggregation policy from StatPoliciesFor.
type PlayerSeason struct {
	ID        string             `json:"id"`
	DynastyID string             `json:"dynastyId"`
	PlayerID  string             `json:"playerId"`
	SeasonID  string             `json:"seasonId"`
	Stats     map[string]float64 `json:"stats"`

	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

// StatGamesPlayed is the key used as the weight for weighted-average stats.
const StatGamesPlayed = "gamesPlayed"
