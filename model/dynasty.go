package model

import (
	"strings"
	"time"
)

type Sport string

const (
	SPORT_UNKNOWN Sport = ""
	SPORT_CFB     Sport = "cfb"
	SPORT_MADDEN  Sport = "madden"
	SPORT_NFL2K   Sport = "nfl2k"
)

func ParseSport(s string) Sport {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cfb", "ncaa":
		return SPORT_CFB
	case "madden":
		return SPORT_MADDEN
	case "nfl2k", "2k":
		return SPORT_NFL2K
	default:
		return SPORT_UNKNOWN
	}
}

// Dynasty is a long running save file for one team: the root entity that
// seasons, rosters and rivalries hang off of.
type Dynasty struct {
	ID          string `json:"id"`
	Sport       Sport  `json:"sport"`
	Team        string `json:"team"`
	Coach       string `json:"coach"`
	StartYear   int    `json:"startYear"`
	CurrentYear int    `json:"currentYear"`
	GameVersion string `json:"gameVersion"`

	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}
