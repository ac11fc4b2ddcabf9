package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username    string         `json:"username"`
	Email       string         `json:"email" gorm:"uniqueIndex;not null"`
	Password    string         `json:"-"`
	PhoneNumber string         `json:"phoneNumber"`
	Points      uint           `json:"points" gorm:"default:0"`
	IsStaff     bool           `json:"isStaff" gorm:"default:false;index"`
	IsActive    bool           `json:"isActive" gorm:"default:true"`
	IsHost      bool           `json:"isHost" gorm:"default:false"`
	Gender      string         `json:"gender"`   // male, female
	Language    string         `json:"language"` // kr, en
	Currency    string         `json:"currency"` // won, usd
	AvatarURL   string         `json:"avatarURL"`
	PushTokens  datatypes.JSON `json:"pushTokens"`
	Campsites   []Campsite     `json:"campsites,omitempty" gorm:"foreignKey:OwnerID;references:ID"`
	Reviews     []Review       `json:"reviews,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

// MarshalJSON renders PushTokens as a plain string slice instead of raw JSON bytes.
func (u *User) MarshalJSON() ([]byte, error) {
	type Alias User
	aux := &struct {
		PushTokens []string `json:"pushTokens,omitempty"`
		*Alias
	}{
		PushTokens: []string{},
		Alias:      (*Alias)(u),
	}

	if u.PushTokens != nil {
		var tokens []string
		if err := json.Unmarshal(u.PushTokens, &tokens); err == nil {
			aux.PushTokens = tokens
		}
	}

	return json.Marshal(aux)
}
