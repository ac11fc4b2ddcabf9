package models

import "gorm.io/gorm"

// Policy holds the house rules of a campsite. Exactly one per campsite.
// Times are stored as "15:04" strings, matching what clients submit.
type Policy struct {
	gorm.Model
	CampsiteID      uint   `json:"campsiteID" gorm:"uniqueIndex;not null"`
	CheckInTime     string `json:"checkInTime" gorm:"not null"`
	CheckOutTime    string `json:"checkOutTime" gorm:"not null"`
	MannerTimeStart string `json:"mannerTimeStart"` // quiet hours start
	MannerTimeEnd   string `json:"mannerTimeEnd"`
}
