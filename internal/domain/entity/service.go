package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a bookable offering quoted from a starting price.
type Service struct {
	ID            int64           `json:"id"`
	BusinessID    int64           `json:"business_id"`
	Name          string          `json:"name"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ServiceFields is the raw owner input for a service.
type ServiceFields struct {
	Name          string
	StartingPrice float64
}

// NewService validates the fields.
func NewService(businessID int64, fields ServiceFields) (*Service, error) {
	s := &Service{BusinessID: businessID}
	if err := s.ApplyUpdate(fields); err != nil {
		return nil, err
	}

	return s, nil
}

// ApplyUpdate replaces name and starting price.
func (s *Service) ApplyUpdate(fields ServiceFields) error {
	name, err := ParseItemName(fields.Name)
	if err != nil {
		return err
	}

	price, err := ParsePrice("startingPrice", fields.StartingPrice)
	if err != nil {
		return err
	}

	s.Name = name
	s.StartingPrice = price

	return nil
}
