package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (req *CategoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}

type SupplierRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (req *SupplierRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 150)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Phone, validation.Length(0, 15)),
	)
}

type CreateProductRequest struct {
	Name       string `json:"name"`
	CategoryID uint   `json:"category_id"`
	SupplierID *uint  `json:"supplier_id"`
	Price      string `json:"price"`
	Quantity   int    `json:"quantity"`
}

func (req *CreateProductRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.CategoryID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Price, validation.Required, is.Float),
		validation.Field(&req.Quantity, validation.Min(0)),
	)
}

// UpdateProductRequest carries no quantity. Quantity changes go through
// the stock endpoints only.
type UpdateProductRequest struct {
	Name       string `json:"name"`
	CategoryID uint   `json:"category_id"`
	SupplierID *uint  `json:"supplier_id"`
	Price      string `json:"price"`
}

func (req *UpdateProductRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.CategoryID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Price, validation.Required, is.Float),
	)
}
