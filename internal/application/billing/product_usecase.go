package billing

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gstbillpro/gstbill-api/internal/application/dto"
	"github.com/gstbillpro/gstbill-api/internal/domain"
	"github.com/gstbillpro/gstbill-api/internal/domain/entity"
	"github.com/gstbillpro/gstbill-api/internal/domain/repository"
)

// ProductUseCase manages the product catalog used to default invoice lines.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// CreateProduct registers a product.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, companyID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.SalePrice.IsNegative() || in.TaxRatePercent.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = "PCS"
	}

	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		Name:           strings.TrimSpace(in.Name),
		HSNCode:        strings.TrimSpace(in.HSNCode),
		Unit:           unit,
		SalePrice:      in.SalePrice,
		MRP:            in.MRP,
		TaxRatePercent: in.TaxRatePercent,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetProduct loads one product scoped to the company.
func (uc *ProductUseCase) GetProduct(ctx context.Context, companyID, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil || product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return toProductResponse(product), nil
}

// ListProducts returns the company's catalog.
func (uc *ProductUseCase) ListProducts(ctx context.Context, companyID string, page dto.PageRequest) ([]*dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.productRepo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		CompanyID:      p.CompanyID,
		Name:           p.Name,
		HSNCode:        p.HSNCode,
		Unit:           p.Unit,
		SalePrice:      p.SalePrice,
		MRP:            p.MRP,
		TaxRatePercent: p.TaxRatePercent,
	}
}
