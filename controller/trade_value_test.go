package controller

import (
	"testing"

	"github.com/miraclmoore/dynasty-os-sub001/model"
)

func TestCalculateTradeValue_eliteQuarterback(t *testing.T) {
	c := &controller{}

	tv := c.CalculateTradeValue(model.TradeValueInput{
		Position:          "QB",
		OverallRating:     99,
		Age:               25,
		ContractYearsLeft: 3,
	})

	// 100 * 1.98 * 1.10 = 217.8, clamped to 150.
	if tv.TotalValue != 150 {
		t.Errorf("expected total 150, got %d", tv.TotalValue)
	}
	if tv.Grade != "Elite" {
		t.Errorf("expected Elite grade, got %s", tv.Grade)
	}
	if tv.Breakdown.PositionBase != 100 {
		t.Errorf("expected position base 100, got %v", tv.Breakdown.PositionBase)
	}
	if tv.Breakdown.RatingFactor != 0.98 {
		t.Errorf("expected rating factor 0.98, got %v", tv.Breakdown.RatingFactor)
	}
	if tv.Breakdown.AgePenalty != 0 {
		t.Errorf("expected no age penalty at 25, got %v", tv.Breakdown.AgePenalty)
	}
	if tv.Breakdown.ContractBonus != 0.1 {
		t.Errorf("expected contract bonus 0.1, got %v", tv.Breakdown.ContractBonus)
	}
}

func TestCalculateTradeValue_agePenalty(t *testing.T) {
	c := &controller{}

	young := c.CalculateTradeValue(model.TradeValueInput{
		Position: "HB", OverallRating: 85, Age: 24, ContractYearsLeft: 2,
	})
	old := c.CalculateTradeValue(model.TradeValueInput{
		Position: "HB", OverallRating: 85, Age: 33, ContractYearsLeft: 2,
	})

	if old.TotalValue >= young.TotalValue {
		t.Errorf("expected age to shrink value: young %d, old %d", young.TotalValue, old.TotalValue)
	}
	// 3 years past 30 at 0.08 per year.
	if old.Breakdown.AgePenalty != 0.24 {
		t.Errorf("expected age penalty 0.24, got %v", old.Breakdown.AgePenalty)
	}
}

func TestCalculateTradeValue_ancientPlayerFloorsAtZero(t *testing.T) {
	c := &controller{}

	tv := c.CalculateTradeValue(model.TradeValueInput{
		Position: "QB", OverallRating: 70, Age: 45, ContractYearsLeft: 1,
	})
	if tv.TotalValue != 0 {
		t.Errorf("expected value floored at 0, got %d", tv.TotalValue)
	}
	if tv.Grade != "Untradeable" {
		t.Errorf("expected Untradeable, got %s", tv.Grade)
	}
}

func TestCalculateTradeValue_contractBonusCapped(t *testing.T) {
	c := &controller{}

	tv := c.CalculateTradeValue(model.TradeValueInput{
		Position: "WR", OverallRating: 80, Age: 25, ContractYearsLeft: 9,
	})
	if tv.Breakdown.ContractBonus != 0.2 {
		t.Errorf("expected bonus capped at 0.2, got %v", tv.Breakdown.ContractBonus)
	}
}

func TestCalculateTradeValue_unknownPositionDefaults(t *testing.T) {
	c := &controller{}

	tv := c.CalculateTradeValue(model.TradeValueInput{
		Position: "LS", OverallRating: 75, Age: 26, ContractYearsLeft: 1,
	})
	if tv.Breakdown.PositionBase != 60 {
		t.Errorf("expected default base 60, got %v", tv.Breakdown.PositionBase)
	}
}

func TestTradeGrade(t *testing.T) {
	tests := []struct {
		total int
		want  string
	}{
		{150, "Elite"},
		{100, "Elite"},
		{99, "High"},
		{70, "High"},
		{69, "Average"},
		{40, "Average"},
		{39, "Low"},
		{10, "Low"},
		{9, "Untradeable"},
		{0, "Untradeable"},
	}
	for _, tc := range tests {
		if got := tradeGrade(tc.total); got != tc.want {
			t.Errorf("tradeGrade(%d) = %s, want %s", tc.total, got, tc.want)
		}
	}
}
