package pricing

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"campsite-market-server/models"
)

// ErrInvalidDateRange is returned when a stay resolves to zero or negative nights.
var ErrInvalidDateRange = errors.New("stay must cover at least one night")

// AnomalyReporter is called when a rule's day-of-week mask cannot be parsed.
// The rule is skipped for every night; price computation continues. Replace
// this to route anomalies somewhere other than the process log.
var AnomalyReporter = func(rule models.PricingRule, reason string) {
	log.Printf("pricing: skipping rule %d (%q): %s", rule.ID, rule.Name, reason)
}

// StayNights returns the number of nights between check-in and check-out,
// counting whole calendar days.
func StayNights(checkIn, checkOut time.Time) int {
	return int(dateOnly(checkOut).Sub(dateOnly(checkIn)).Hours() / 24)
}

// ComputeStayCost prices a stay of stayNights nights starting on arrival.
// Every pricing rule whose date range covers a night, and whose day-of-week
// mask (if any) includes that night's weekday, adds its extra charge on top
// of the base price. Overlapping rules all apply.
func ComputeStayCost(basePricePerNight float64, stayNights int, arrival time.Time, rules []models.PricingRule) (float64, error) {
	if stayNights <= 0 {
		return 0, ErrInvalidDateRange
	}

	type compiledRule struct {
		rule models.PricingRule
		days dayMask
	}

	compiled := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		days, err := parseDayMask(rule.DayOfWeek)
		if err != nil {
			AnomalyReporter(rule, err.Error())
			continue
		}
		// Normalize to calendar dates so time-of-day and zone never affect
		// the inclusive range check.
		rule.StartDate = dateOnly(rule.StartDate)
		rule.EndDate = dateOnly(rule.EndDate)
		compiled = append(compiled, compiledRule{rule: rule, days: days})
	}

	total := 0.0
	night := dateOnly(arrival)
	for n := 0; n < stayNights; n++ {
		charge := basePricePerNight
		weekday := weekdayIndex(night)
		for _, c := range compiled {
			if !c.rule.StartDate.After(night) && !c.rule.EndDate.Before(night) && c.days.contains(weekday) {
				charge += c.rule.ExtraCharge
			}
		}
		total += charge
		night = night.AddDate(0, 0, 1)
	}

	return total, nil
}

// dayMask is a weekday set; nil means every day.
type dayMask []bool

func (m dayMask) contains(weekday int) bool {
	if m == nil {
		return true
	}
	return m[weekday]
}

func parseDayMask(spec string) (dayMask, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}
	mask := make(dayMask, 7)
	for _, token := range strings.Split(spec, ",") {
		day, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			return nil, errors.New("day_of_week contains a non-numeric token: " + token)
		}
		if day < 0 || day > 6 {
			return nil, errors.New("day_of_week value out of range: " + token)
		}
		mask[day] = true
	}
	return mask, nil
}

// weekdayIndex maps time.Weekday (Sunday=0) onto the stored convention,
// 0=Monday through 6=Sunday.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
