package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Campsite struct {
	gorm.Model
	OwnerID           uint            `json:"ownerID" gorm:"not null;index"`
	Owner             User            `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name              string          `json:"name" gorm:"not null"`
	Address           string          `json:"address" gorm:"not null"`
	Description       string          `json:"description" gorm:"type:text"`
	PhoneNumber       string          `json:"phoneNumber"`
	BlogURL           string          `json:"blogURL"`
	LayoutImageURL    string          `json:"layoutImageURL"` // site layout map
	ThumbnailImageURL string          `json:"thumbnailImageURL"`
	Keywords          datatypes.JSON  `json:"keywords"`
	Sites             []Site          `json:"sites,omitempty" gorm:"foreignKey:CampsiteID;constraint:OnDelete:CASCADE;"`
	Images            []CampsiteImage `json:"images,omitempty" gorm:"foreignKey:CampsiteID;constraint:OnDelete:CASCADE;"`
	PricingRules      []PricingRule   `json:"pricingRules,omitempty" gorm:"foreignKey:CampsiteID;constraint:OnDelete:CASCADE;"`
	Policy            *Policy         `json:"policy,omitempty" gorm:"foreignKey:CampsiteID;constraint:OnDelete:CASCADE;"`
	Amenities         []Amenity       `json:"amenities,omitempty" gorm:"many2many:campsite_amenities;"`
	Reviews           []Review        `json:"reviews,omitempty" gorm:"foreignKey:CampsiteID;constraint:OnDelete:CASCADE;"`
}
