package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gstbillpro/gstbill-api/internal/application/dto"
	"github.com/gstbillpro/gstbill-api/internal/domain"
	"github.com/gstbillpro/gstbill-api/internal/domain/entity"
	"github.com/gstbillpro/gstbill-api/internal/domain/repository"
	"github.com/gstbillpro/gstbill-api/pkg/gstin"
)

// CompanyUseCase manages the seller profiles.
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyUseCase builds the use case.
func NewCompanyUseCase(companyRepo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo}
}

// CreateCompany registers a company. A GST-regime company must carry a valid
// GSTIN; a blank state is filled in from the GSTIN prefix.
func (uc *CompanyUseCase) CreateCompany(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}

	taxType := strings.ToUpper(strings.TrimSpace(in.TaxType))
	if taxType == "" {
		taxType = entity.TaxTypeGST
	}
	if taxType != entity.TaxTypeGST && taxType != entity.TaxTypeNonGST {
		return nil, domain.ErrInvalidInput
	}

	state := strings.TrimSpace(in.State)
	gst := gstin.Normalize(in.GSTIN)
	if taxType == entity.TaxTypeGST || gst != "" {
		if err := gstin.Validate(gst); err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
		}
		if state == "" {
			if name, ok := gstin.StateFromGSTIN(gst); ok {
				state = name
			}
		}
	}

	now := time.Now()
	company := &entity.Company{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		GSTIN:       gst,
		Mobile:      in.Mobile,
		Email:       in.Email,
		Address:     in.Address,
		State:       state,
		TaxType:     taxType,
		FYStart:     in.FYStart,
		FYEnd:       in.FYEnd,
		BankName:    in.BankName,
		BankAccount: in.BankAccount,
		BankIFSC:    in.BankIFSC,
		Terms:       in.Terms,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetCompany loads one company.
func (uc *CompanyUseCase) GetCompany(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(id)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// ListCompanies lists registered companies.
func (uc *CompanyUseCase) ListCompanies(ctx context.Context, page dto.PageRequest) ([]*dto.CompanyResponse, error) {
	page.DefaultPage()
	companies, err := uc.companyRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, toCompanyResponse(c))
	}
	return out, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		GSTIN:       c.GSTIN,
		Mobile:      c.Mobile,
		Email:       c.Email,
		Address:     c.Address,
		State:       c.State,
		TaxType:     c.TaxType,
		FYStart:     c.FYStart,
		FYEnd:       c.FYEnd,
		BankName:    c.BankName,
		BankAccount: c.BankAccount,
		BankIFSC:    c.BankIFSC,
		Terms:       c.Terms,
	}
}
