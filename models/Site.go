package models

import "gorm.io/gorm"

// Site is a single bookable pitch inside a campsite, e.g. "A1".
type Site struct {
	gorm.Model
	CampsiteID uint    `json:"campsiteID" gorm:"not null;index"`
	Name       string  `json:"name" gorm:"not null"`
	CampType   string  `json:"campType"` // auto camping, glamping, ...
	BasePrice  float64 `json:"basePrice" gorm:"not null;check:base_price >= 0"`
}
