package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	BusinessID int64  `gorm:"not null;index"`
	Name       string `gorm:"type:varchar(50);not null"`
	CreatedAt  time.Time
}

func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	BusinessID int64           `gorm:"not null;index"`
	CategoryID *int64          `gorm:"index"`
	Name       string          `gorm:"type:varchar(50);not null"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ImageURL   *string         `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (ProductModel) TableName() string {
	return "products"
}

// ServiceModel is the GORM-specific struct for the 'services' table.
type ServiceModel struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	BusinessID    int64           `gorm:"not null;index"`
	Name          string          `gorm:"type:varchar(50);not null"`
	StartingPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ServiceModel) TableName() string {
	return "services"
}
