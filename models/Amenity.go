package models

import "gorm.io/gorm"

// Amenity is a global catalog entry shared across campsites.
type Amenity struct {
	gorm.Model
	Name    string `json:"name" gorm:"uniqueIndex;not null"`
	IconURL string `json:"iconURL"`
}
