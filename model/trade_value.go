package model

// TradeValueInput is what the Madden trade calculator works from.
type TradeValueInput struct {
	Position          string `json:"position"`
	OverallRating     int    `json:"overallRating"` // 50-99
	Age               int    `json:"age"`
	ContractYearsLeft int    `json:"contractYearsLeft"` // 0-7
}

// TradeValueBreakdown shows how the total was built up. The components are
// rounded independently for display, so they do not re-multiply to the
// exact total.
type TradeValueBreakdown struct {
	PositionBase  float64 `json:"positionBase"`
	RatingFactor  float64 `json:"ratingFactor"`
	BaseValue     float64 `json:"baseValue"`
	AgePenalty    float64 `json:"agePenalty"`
	ContractBonus float64 `json:"contractBonus"`
}

// TradeValue is the scored result: a 0-150 value and a coarse grade.
type TradeValue struct {
	TotalValue int                 `json:"totalValue"`
	Grade      string              `json:"grade"`
	Breakdown  TradeValueBreakdown `json:"breakdown"`
}
