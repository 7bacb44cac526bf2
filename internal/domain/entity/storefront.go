package entity

// Storefront is the public catalog snapshot served for a slug.
// Products and services are newest first, categories alphabetical.
type Storefront struct {
	Business   PublicBusiness `json:"business"`
	Products   []*Product     `json:"products"`
	Services   []*Service     `json:"services"`
	Categories []*Category    `json:"categories"`
}

// FindProduct looks up a product of this storefront by id.
func (s *Storefront) FindProduct(id int64) (*Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}

	return nil, false
}
