package models

// Category groups services in the browse screens. Categories are immutable once
// fetched and replaced wholesale on refetch.
type Category struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Icon          string `json:"icon"`
	Accent        string `json:"accent"`
	ServicesCount *int   `json:"servicesCount,omitempty"`
}

// HasServices reports whether the list endpoint advertised at least one service.
// A missing count is treated as unknown and reported as true.
func (c *Category) HasServices() bool {
	if c.ServicesCount == nil {
		return true
	}
	return *c.ServicesCount > 0
}
