package models

import (
	"time"

	"gorm.io/gorm"
)

// PricingRule adds a surcharge on top of a site's base price for every night
// that falls inside [StartDate, EndDate] (inclusive). DayOfWeek optionally
// narrows the rule to a comma-separated set of weekday indexes, 0=Monday
// through 6=Sunday; empty means every day in range. Overlapping rules stack
// additively.
type PricingRule struct {
	gorm.Model
	CampsiteID  uint      `json:"campsiteID" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"not null"` // e.g. weekend / peak season
	StartDate   time.Time `json:"startDate" gorm:"not null"`
	EndDate     time.Time `json:"endDate" gorm:"not null"`
	DayOfWeek   string    `json:"dayOfWeek"`
	ExtraCharge float64   `json:"extraCharge" gorm:"not null;check:extra_charge >= 0"`
}
