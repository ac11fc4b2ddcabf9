package models

import "gorm.io/gorm"

type CampsiteImage struct {
	gorm.Model
	CampsiteID   uint   `json:"campsiteID" gorm:"not null;index"`
	CloudflareID string `json:"-" gorm:"not null"`
	Order        uint   `json:"order" gorm:"default:0"`
}
