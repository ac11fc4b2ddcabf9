package pricing

import (
	"errors"
	"testing"
	"time"

	"campsite-market-server/models"
)

// 2025-06-02 is a Monday.
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return monday.AddDate(0, 0, offset)
}

func rule(start, end time.Time, dayOfWeek string, extra float64) models.PricingRule {
	return models.PricingRule{
		Name:        "test rule",
		StartDate:   start,
		EndDate:     end,
		DayOfWeek:   dayOfWeek,
		ExtraCharge: extra,
	}
}

func TestComputeStayCostNoMatchingRules(t *testing.T) {
	// Rule range ends before the stay starts.
	rules := []models.PricingRule{rule(day(-10), day(-5), "", 9999)}

	total, err := ComputeStayCost(50000, 3, monday, rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 150000 {
		t.Errorf("expected base price only (150000), got %v", total)
	}
}

func TestComputeStayCostSingleRuleEveryNight(t *testing.T) {
	rules := []models.PricingRule{rule(day(0), day(2), "", 10000)}

	total, err := ComputeStayCost(50000, 3, monday, rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 180000 {
		t.Errorf("expected (50000+10000)*3 = 180000, got %v", total)
	}
}

func TestComputeStayCostOverlappingRulesStack(t *testing.T) {
	rules := []models.PricingRule{
		rule(day(0), day(0), "", 10000),
		rule(day(0), day(2), "", 5000),
	}

	total, err := ComputeStayCost(50000, 1, monday, rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Both rules fire on the same night.
	if total != 65000 {
		t.Errorf("expected 50000+10000+5000 = 65000, got %v", total)
	}
}

func TestComputeStayCostWeekendMask(t *testing.T) {
	// Mask 5,6 = Saturday and Sunday; a Mon-Tue-Wed stay never matches.
	rules := []models.PricingRule{rule(day(0), day(2), "5,6", 10000)}

	total, err := ComputeStayCost(50000, 3, monday, rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 150000 {
		t.Errorf("expected 150000 for weekday stay with weekend rule, got %v", total)
	}
}

func TestComputeStayCostMaskMatchesCorrectNights(t *testing.T) {
	// Friday-Saturday-Sunday stay; 4=Friday and 5=Saturday match, 6=Sunday does not.
	friday := day(4)
	rules := []models.PricingRule{rule(friday, friday.AddDate(0, 0, 2), "4,5", 20000)}

	total, err := ComputeStayCost(50000, 3, friday, rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 190000 {
		t.Errorf("expected 50000*3 + 20000*2 = 190000, got %v", total)
	}
}

func TestComputeStayCostInvalidNights(t *testing.T) {
	for _, nights := range []int{0, -1, -10} {
		_, err := ComputeStayCost(50000, nights, monday, nil)
		if !errors.Is(err, ErrInvalidDateRange) {
			t.Errorf("nights=%d: expected ErrInvalidDateRange, got %v", nights, err)
		}
	}
}

func TestComputeStayCostMalformedMaskSkipsRule(t *testing.T) {
	reported := 0
	orig := AnomalyReporter
	AnomalyReporter = func(models.PricingRule, string) { reported++ }
	defer func() { AnomalyReporter = orig }()

	rules := []models.PricingRule{
		rule(day(0), day(2), "weekend", 10000), // non-numeric token
		rule(day(0), day(2), "7", 10000),       // out of range
		rule(day(0), day(2), "", 5000),         // valid
	}

	total, err := ComputeStayCost(50000, 2, monday, rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 110000 {
		t.Errorf("expected malformed rules skipped, (50000+5000)*2 = 110000, got %v", total)
	}
	if reported != 2 {
		t.Errorf("expected 2 anomaly reports, got %d", reported)
	}
}

func TestComputeStayCostInclusiveRangeBounds(t *testing.T) {
	// Rule covers exactly the first night; second night is outside.
	rules := []models.PricingRule{rule(day(0), day(0), "", 10000)}

	total, err := ComputeStayCost(50000, 2, monday, rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 110000 {
		t.Errorf("expected 60000+50000 = 110000, got %v", total)
	}
}

func TestStayNights(t *testing.T) {
	cases := []struct {
		checkIn, checkOut time.Time
		want              int
	}{
		{monday, day(3), 3},
		{monday, monday, 0},
		{day(2), monday, -2},
		// Time-of-day must not affect the night count.
		{monday.Add(15 * time.Hour), day(2).Add(11 * time.Hour), 2},
	}
	for _, c := range cases {
		if got := StayNights(c.checkIn, c.checkOut); got != c.want {
			t.Errorf("StayNights(%v, %v) = %d, want %d", c.checkIn, c.checkOut, got, c.want)
		}
	}
}

func TestWeekdayIndexConvention(t *testing.T) {
	// 0=Monday ... 6=Sunday
	for offset, want := range []int{0, 1, 2, 3, 4, 5, 6} {
		if got := weekdayIndex(day(offset)); got != want {
			t.Errorf("weekdayIndex(%v) = %d, want %d", day(offset), got, want)
		}
	}
}
