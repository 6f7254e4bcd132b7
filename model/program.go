package model

import (
	"strings"
	"time"
)

// PrestigeRating is one (dynasty, year) program-strength sample. The UI
// upserts by year, so there is at most one row per year per dynasty.
type PrestigeRating struct {
	ID             string `json:"id"`
	DynastyID      string `json:"dynastyId"`
	Year           int    `json:"year"`
	Rating         int    `json:"rating"` // 1-100
	RecruitingRank *int   `json:"recruitingRank,omitempty"`

	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

type TransferType string

const (
	TRANSFER_ARRIVAL   TransferType = "arrival"
	TRANSFER_DEPARTURE TransferType = "departure"
)

func ParseTransferType(t string) TransferType {
	if strings.ToLower(strings.TrimSpace(t)) == "departure" {
		return TRANSFER_DEPARTURE
	}
	return TRANSFER_ARRIVAL
}

// TransferPortalEntry is one arrival or departure for a season. Arrivals
// carry a star rating and the origin school, departures the destination.
type TransferPortalEntry struct {
	ID         string       `json:"id"`
	DynastyID  string       `json:"dynastyId"`
	SeasonID   string       `json:"seasonId"`
	PlayerName string       `json:"playerName"`
	Position   string       `json:"position"`
	EntryType  TransferType `json:"entryType"`
	StarRating *int         `json:"starRating,omitempty"`
	School     string       `json:"school"`

	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}
