package repository

import "github.com/gstbillpro/gstbill-api/internal/domain/entity"

// PartyRepository persistence port for customers/suppliers.
type PartyRepository interface {
	Create(party *entity.Party) error
	GetByID(id string) (*entity.Party, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Party, error)
	Update(party *entity.Party) error
	Delete(id string) error
}
