package entity

import "time"

// Business is a tenant: one owner's storefront and catalog.
type Business struct {
	ID             int64     `json:"id"`
	OwnerID        string    `json:"user_id"` // Identity subject of the owner
	Name           string    `json:"name"`
	Slug           string    `json:"slug"` // Public page identifier, immutable
	Description    *string   `json:"description"`
	LogoURL        *string   `json:"logo_url"`
	WhatsAppNumber string    `json:"whatsapp_number"` // Digits only
	Plan           Plan      `json:"plan"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BusinessFields is the raw owner input for creating or updating a Business.
type BusinessFields struct {
	Name           string
	Slug           string
	WhatsAppNumber string
	Description    *string
	LogoURL        *string
}

// NewBusiness validates the fields and returns a Business on the free plan.
// An empty slug is derived from the name.
func NewBusiness(ownerID string, fields BusinessFields) (*Business, error) {
	name, err := ParseBusinessName(fields.Name)
	if err != nil {
		return nil, err
	}

	rawSlug := fields.Slug
	if rawSlug == "" {
		rawSlug = SlugFromName(name)
	}
	slug, err := ParseSlug(rawSlug)
	if err != nil {
		return nil, err
	}

	number, err := ParseWhatsAppNumber(fields.WhatsAppNumber)
	if err != nil {
		return nil, err
	}

	return &Business{
		OwnerID:        ownerID,
		Name:           name,
		Slug:           slug,
		Description:    OptionalText(fields.Description),
		LogoURL:        OptionalText(fields.LogoURL),
		WhatsAppNumber: number,
		Plan:           PlanFree,
	}, nil
}

// ApplyUpdate replaces the editable fields. Description and logo are cleared
// when omitted; the slug never changes.
func (b *Business) ApplyUpdate(fields BusinessFields) error {
	name, err := ParseBusinessName(fields.Name)
	if err != nil {
		return err
	}

	number, err := ParseWhatsAppNumber(fields.WhatsAppNumber)
	if err != nil {
		return err
	}

	b.Name = name
	b.WhatsAppNumber = number
	b.Description = OptionalText(fields.Description)
	b.LogoURL = OptionalText(fields.LogoURL)

	return nil
}

// PublicBusiness is the storefront projection of a Business.
type PublicBusiness struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Slug           string  `json:"slug"`
	Description    *string `json:"description"`
	LogoURL        *string `json:"logo_url"`
	WhatsAppNumber string  `json:"whatsapp_number"`
}

// Public returns the fields a customer may see.
func (b *Business) Public() PublicBusiness {
	return PublicBusiness{
		ID:             b.ID,
		Name:           b.Name,
		Slug:           b.Slug,
		Description:    b.Description,
		LogoURL:        b.LogoURL,
		WhatsAppNumber: b.WhatsAppNumber,
	}
}
