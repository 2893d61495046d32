package model

import (
	"encoding/json"
	"time"
)

type UserRole string

const (
	Member UserRole = "member"
	Guest  UserRole = "guest"
	Admin  UserRole = "admin"
)

type User struct {
	BaseModel
	Name         string          `gorm:"size:100;not null" json:"name"`
	Email        string          `gorm:"size:100;unique;not null" json:"email"`
	Password     string          `gorm:"size:100;not null" json:"-"`
	Role         UserRole        `gorm:"type:enum('member','guest','admin');default:'member'" json:"role"`
	Demographics json.RawMessage `gorm:"type:json" json:"demographics,omitempty"` // JSON: UserDemographics
	Disabled     bool            `gorm:"default:false" json:"disabled"`
	LastLogin    time.Time       `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen     time.Time       `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
