package model

import (
	"strings"
	"time"
)

type Result string

const (
	RESULT_UNKNOWN Result = ""
	RESULT_WIN     Result = "W"
	RESULT_LOSS    Result = "L"
	RESULT_TIE     Result = "T"
)

func ParseResult(s string) Result {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "W", "WIN":
		return RESULT_WIN
	case "L", "LOSS":
		return RESULT_LOSS
	case "T", "TIE":
		return RESULT_TIE
	default:
		return RESULT_UNKNOWN
	}
}

type Location string

const (
	LOC_HOME    Location = "home"
	LOC_AWAY    Location = "away"
	LOC_NEUTRAL Location = "neutral"
)

func ParseLocation(s string) Location {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "home":
		return LOC_HOME
	case "away":
		return LOC_AWAY
	default:
		return LOC_NEUTRAL
	}
}

type GameType string

const (
	GAME_REGULAR    GameType = "regular"
	GAME_CONFERENCE GameType = "conference"
	GAME_BOWL       GameType = "bowl"
	GAME_PLAYOFF    GameType = "playoff"
	GAME_EXHIBITION GameType = "exhibition"
)

func ParseGameType(s string) GameType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "conference":
		return GAME_CONFERENCE
	case "bowl":
		return GAME_BOWL
	case "playoff":
		return GAME_PLAYOFF
	case "exhibition":
		return GAME_EXHIBITION
	default:
		return GAME_REGULAR
	}
}

// Game is a single played game. Opponent is a free-text team name; the
// head-to-head and rivalry engines group games by exact opponent string, so
// "Ohio State" and "ohio state" are tracked as different opponents.
type Game struct {
	ID        string `json:"id"`
	DynastyID string `json:"dynastyId"`
	SeasonID  string `json:"seasonId"`

	Week          int      `json:"week"`
	Opponent      string   `json:"opponent"`
	TeamScore     int      `json:"teamScore"`
	OpponentScore int      `json:"opponentScore"`
	Result        Result   `json:"result"`
	Location      Location `json:"location"`
	GameType      GameType `json:"gameType"`
	Overtime      bool     `json:"overtime"`

	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}
