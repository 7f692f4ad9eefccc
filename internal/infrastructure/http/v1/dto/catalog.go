package dto

import (
	"time"

	"invoicer/internal/core/id"
	"invoicer/internal/core/types"
	"invoicer/internal/domain/catalogs/client"
	"invoicer/internal/domain/catalogs/product"
	"invoicer/internal/domain/catalogs/serviceitem"
)

// --- Clients ---

// ClientRequest is the create/replace body of a client.
type ClientRequest struct {
	Name    string  `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	TaxID   *string `json:"tax_id"`
}

// ClientResponse is the wire form of a client.
type ClientResponse struct {
	ID        id.ID     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	TaxID     *string   `json:"tax_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ApplyClient writes the request onto c, replacing every field.
func ApplyClient(r ClientRequest, c *client.Client) *client.Client {
	if c == nil {
		c = &client.Client{}
	}
	c.Name = r.Name
	c.Email = r.Email
	c.Phone = r.Phone
	c.Address = r.Address
	c.TaxID = r.TaxID
	return c
}

// FromClient converts a domain client.
func FromClient(c *client.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		TaxID:     c.TaxID,
		CreatedAt: c.CreatedAt,
	}
}

// --- Products ---

// ProductRequest is the create/replace body of a product.
type ProductRequest struct {
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Price       *Amount          `json:"price"`
	Category    *string          `json:"category"`
}

// ProductResponse is the wire form of a product.
type ProductResponse struct {
	ID          id.ID     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       string    `json:"price"`
	Category    *string   `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// ApplyProduct writes the request onto p. A missing price is zero.
func ApplyProduct(r ProductRequest, p *product.Product) *product.Product {
	if p == nil {
		p = &product.Product{}
	}
	p.Name = r.Name
	p.Description = r.Description
	p.Price = moneyOrZero(r.Price)
	p.Category = r.Category
	return p
}

// FromProduct converts a domain product.
func FromProduct(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       types.FormatMoney(p.Price),
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
	}
}

// --- Services ---

// ServiceRequest is the create/replace body of a billable service.
type ServiceRequest struct {
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Amount      *Amount          `json:"amount"`
	Category    *string          `json:"category"`
}

// ServiceResponse is the wire form of a billable service.
type ServiceResponse struct {
	ID          id.ID     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Amount      string    `json:"amount"`
	Category    *string   `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// ApplyService writes the request onto s. A missing amount is zero.
func ApplyService(r ServiceRequest, s *serviceitem.ServiceItem) *serviceitem.ServiceItem {
	if s == nil {
		s = &serviceitem.ServiceItem{}
	}
	s.Name = r.Name
	s.Description = r.Description
	s.Amount = moneyOrZero(r.Amount)
	s.Category = r.Category
	return s
}

// FromService converts a domain service item.
func FromService(s *serviceitem.ServiceItem) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Amount:      types.FormatMoney(s.Amount),
		Category:    s.Category,
		CreatedAt:   s.CreatedAt,
	}
}

func moneyOrZero(a *Amount) types.Money {
	if a == nil {
		return types.Zero()
	}
	return a.Money
}
