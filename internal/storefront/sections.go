package storefront

import (
	"whatsorder/internal/domain/constants"
	"whatsorder/internal/domain/entity"
)

// Section is a titled group of products as shown on the storefront page.
type Section struct {
	Title    string
	Products []*entity.Product
}

// GroupByCategory groups products under their category names in category
// order. Uncategorized products, or products whose category is gone, come
// last under "All Products". Empty categories are omitted.
func GroupByCategory(sf *entity.Storefront) []Section {
	byCategory := make(map[int64][]*entity.Product, len(sf.Categories))
	known := make(map[int64]struct{}, len(sf.Categories))
	for _, c := range sf.Categories {
		known[c.ID] = struct{}{}
	}

	var loose []*entity.Product
	for _, p := range sf.Products {
		if p.CategoryID != nil {
			if _, ok := known[*p.CategoryID]; ok {
				byCategory[*p.CategoryID] = append(byCategory[*p.CategoryID], p)

				continue
			}
		}
		loose = append(loose, p)
	}

	sections := make([]Section, 0, len(sf.Categories)+1)
	for _, c := range sf.Categories {
		if products := byCategory[c.ID]; len(products) > 0 {
			sections = append(sections, Section{Title: c.Name, Products: products})
		}
	}
	if len(loose) > 0 {
		sections = append(sections, Section{Title: constants.UncategorizedLabel, Products: loose})
	}

	return sections
}
