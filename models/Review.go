package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	UserID     uint     `json:"userID" gorm:"not null;index;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CampsiteID uint     `json:"campsiteID" gorm:"not null;index;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	User       User     `json:"user" gorm:"foreignKey:UserID"`
	Campsite   Campsite `json:"campsite,omitempty" gorm:"foreignKey:CampsiteID"`
	Rating     int      `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Content    string   `json:"content" gorm:"type:text"`
}
