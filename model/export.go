package model

// DynastyExport is the JSON document produced by exporting one dynasty with
// all of its children. Importing re-creates everything under fresh ids with
// foreign keys remapped, so a file can be imported more than once or moved
// between installs.
type DynastyExport struct {
	Version  int                   `json:"version"`
	Dynasty  Dynasty               `json:"dynasty"`
	Seasons  []Season              `json:"seasons"`
	Games    []Game                `json:"games"`
	Players  []Player              `json:"players"`
	Stats    []PlayerSeason        `json:"stats"`
	Rivals   []Rival               `json:"rivals"`
	Moments  []KeyMoment           `json:"moments"`
	Notes    []ScoutingNote        `json:"notes"`
	Prestige []PrestigeRating      `json:"prestige"`
	Portal   []TransferPortalEntry `json:"portal"`
}

// ExportVersion is written into every export and checked on import.
const ExportVersion = 1
