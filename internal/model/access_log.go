package model

import (
	"time"
)

// AccessLog is one recorded visit of a short path, pushed in bulk by the
// edge service. Rows are append-only.
type AccessLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	PathID    uint      `gorm:"not null;index" json:"path_id"`
	IPAddress string    `gorm:"size:45" json:"ip_address"`
	UserAgent string    `gorm:"type:text" json:"user_agent"`
	Country   string    `gorm:"size:100" json:"country"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
	CreatedAt time.Time `json:"created_at"`

	Path Path `gorm:"foreignKey:PathID" json:"-"`
}

func (AccessLog) TableName() string {
	return "access_logs"
}
