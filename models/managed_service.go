package models

import "github.com/shopspring/decimal"

// ManagedService is a listing owned by the current user. It is independent of
// the browse-side Service type.
type ManagedService struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"categoryId"`
	Image       string          `json:"image"`
}

// ManagedServiceInput is the create/update payload. Nil fields are left untouched on update.
type ManagedServiceInput struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	CategoryID  *string          `json:"categoryId,omitempty"`
	Image       *string          `json:"image,omitempty"`
}

// Apply copies the set fields of in onto s.
func (s *ManagedService) Apply(in *ManagedServiceInput) {
	if in == nil {
		return
	}
	if in.Title != nil {
		s.Title = *in.Title
	}
	if in.Description != nil {
		s.Description = *in.Description
	}
	if in.Price != nil {
		s.Price = *in.Price
	}
	if in.CategoryID != nil {
		s.CategoryID = *in.CategoryID
	}
	if in.Image != nil {
		s.Image = *in.Image
	}
}
