package products

// ToView projects a Product onto its wire representation.
func ToView(p Product) View {
	return View{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       Price(p.Price),
		Stock:       p.Stock,
	}
}

// ToViews projects a slice of Products, never returning nil so empty lists
// serialize as [].
func ToViews(list []Product) []View {
	views := make([]View, 0, len(list))
	for _, p := range list {
		views = append(views, ToView(p))
	}
	return views
}

// ToEntity builds a draft Product from a validated create request. The
// store assigns id and createdAt.
func ToEntity(req CreateRequest) Product {
	p := Product{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	return p
}

// MergeUpdate overlays the patch onto the existing product. Nil patch
// fields keep the stored value; an omitted field is never nulled out.
func MergeUpdate(existing Product, patch UpdateRequest) Product {
	if patch.Name != nil {
		existing.Name = *patch.Name
	}
	if patch.Description != nil {
		existing.Description = patch.Description
	}
	if patch.Price != nil {
		existing.Price = *patch.Price
	}
	if patch.Stock != nil {
		existing.Stock = *patch.Stock
	}
	return existing
}
