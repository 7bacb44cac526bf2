// Package model holds the GORM table mappings for the postgres adapter.
package model

import "time"

// BusinessModel is the GORM-specific struct for the 'businesses' table.
type BusinessModel struct {
	ID             int64   `gorm:"primaryKey;autoIncrement"`
	UserID         string  `gorm:"type:varchar(255);not null;uniqueIndex:businesses_user_id_key"`
	Name           string  `gorm:"type:varchar(100);not null"`
	Slug           string  `gorm:"type:varchar(50);not null;uniqueIndex:businesses_slug_key"`
	Description    *string `gorm:"type:text"`
	LogoURL        *string `gorm:"type:text"`
	WhatsAppNumber string  `gorm:"column:whatsapp_number;type:varchar(20);not null"`
	Plan           string  `gorm:"type:varchar(20);not null;default:'free'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}

// Unique index names, matched against constraint violations.
const (
	BusinessUserIDKey = "businesses_user_id_key"
	BusinessSlugKey   = "businesses_slug_key"
)
