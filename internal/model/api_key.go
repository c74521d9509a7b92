package model

import (
	"time"
)

// ApiKey is a shared-secret credential for the internal sync endpoints.
// The token is generated server-side and checked verbatim on every request.
type ApiKey struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Token     string    `gorm:"size:64;uniqueIndex;not null" json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

func (ApiKey) TableName() string {
	return "api_keys"
}
