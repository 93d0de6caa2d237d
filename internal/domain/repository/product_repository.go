package repository

import "github.com/gstbillpro/gstbill-api/internal/domain/entity"

// ProductRepository persistence port for products.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
}
