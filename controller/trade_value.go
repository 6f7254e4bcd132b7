package controller

import (
	"math"

	"github.com/miraclmoore/dynasty-os-sub001/model"
)

// Base trade values per position. Positions missing from the table, or from
// sports that don't use these codes, fall back to 60.
var positionBaseValues = map[string]float64{
	"QB":   100,
	"WR":   85,
	"HB":   80,
	"RB":   80,
	"LT":   75,
	"EDGE": 75,
	"LE":   72,
	"RE":   72,
	"CB":   72,
	"TE":   65,
	"DT":   65,
	"S":    62,
	"FS":   62,
	"SS":   62,
	"LB":   62,
	"MLB":  62,
	"LOLB": 60,
	"ROLB": 60,
	"RT":   65,
	"LG":   58,
	"RG":   58,
	"C":    58,
	"K":    40,
	"P":    35,
	"FB":   40,
}

const defaultPositionBase = 60

// CalculateTradeValue scores a Madden player's trade value from position,
// overall rating, age and contract. Pure arithmetic: no storage, no clock.
func (c *controller) CalculateTradeValue(in model.TradeValueInput) model.TradeValue {
	basePos, found := positionBaseValues[in.Position]
	if !found {
		basePos = defaultPositionBase
	}

	ratingFactor := float64(in.OverallRating-50) / 50
	base := basePos * (1 + ratingFactor)

	// Uncapped on purpose; the final clamp absorbs extreme ages.
	agePenalty := math.Max(0, float64(in.Age-30)) * 0.08

	contractBonus := math.Min(0.2, float64(in.ContractYearsLeft-1)*0.05)

	total := math.Round(base * (1 - agePenalty) * (1 + contractBonus))
	if total < 0 {
		total = 0
	}
	if total > 150 {
		total = 150
	}

	return model.TradeValue{
		TotalValue: int(total),
		Grade:      tradeGrade(int(total)),
		Breakdown: model.TradeValueBreakdown{
			PositionBase:  basePos,
			RatingFactor:  math.Round(ratingFactor*100) / 100,
			BaseValue:     math.Round(base),
			AgePenalty:    math.Round(agePenalty*100) / 100,
			ContractBonus: math.Round(contractBonus*100) / 100,
		},
	}
}

func tradeGrade(total int) string {
	switch {
	case total >= 100:
		return "Elite"
	case total >= 70:
		return "High"
	case total >= 40:
		return "Average"
	case total >= 10:
		return "Low"
	default:
		return "Untradeable"
	}
}
