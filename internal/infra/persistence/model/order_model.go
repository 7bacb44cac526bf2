package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// business_id carries no foreign key so the public log endpoint stays write-only.
type OrderModel struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	BusinessID    int64           `gorm:"not null;index:orders_business_created_idx,priority:1"`
	CustomerNote  *string         `gorm:"type:text"`
	TotalPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ItemsSummary  string          `gorm:"type:text;not null"`
	PaymentStatus string          `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt     time.Time       `gorm:"index:orders_business_created_idx,priority:2,sort:desc"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// ProfileModel is the GORM-specific struct for the 'profiles' table.
type ProfileModel struct {
	UserID              string `gorm:"type:varchar(255);primaryKey"`
	OnboardingCompleted bool   `gorm:"not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (ProfileModel) TableName() string {
	return "profiles"
}

// All lists every table for auto-migration.
func All() []any {
	return []any{
		&BusinessModel{},
		&CategoryModel{},
		&ProductModel{},
		&ServiceModel{},
		&OrderModel{},
		&ProfileModel{},
	}
}
