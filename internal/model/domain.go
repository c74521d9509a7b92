package model

import (
	"time"
)

// Domain is a registered hostname under which shortened paths resolve.
type Domain struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Hostname  string    `gorm:"size:255;uniqueIndex;not null" json:"hostname"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Domain) TableName() string {
	return "domains"
}
