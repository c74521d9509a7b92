package model

import (
	"time"
)

// Path maps a short path to its original URL, scoped to one domain.
// The (domain_id, short_path) pair is unique; uniqueness is enforced by
// the database, not in application code.
type Path struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	DomainID    uint      `gorm:"not null;uniqueIndex:idx_domain_short_path" json:"domain_id"`
	ShortPath   string    `gorm:"size:255;not null;uniqueIndex:idx_domain_short_path" json:"short_path"`
	OriginalURL string    `gorm:"type:text;not null" json:"original_url"`
	IsActive    bool      `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Domain Domain `gorm:"foreignKey:DomainID" json:"-"`
}

func (Path) TableName() string {
	return "paths"
}
