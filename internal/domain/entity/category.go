package entity

import "time"

// Category groups products within one Business.
type Category struct {
	ID         int64     `json:"id"`
	BusinessID int64     `json:"business_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewCategory validates the name and returns a Category for the business.
func NewCategory(businessID int64, rawName string) (*Category, error) {
	name, err := ParseCategoryName(rawName)
	if err != nil {
		return nil, err
	}

	return &Category{BusinessID: businessID, Name: name}, nil
}
