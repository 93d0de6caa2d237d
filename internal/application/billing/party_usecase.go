package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gstbillpro/gstbill-api/internal/application/dto"
	"github.com/gstbillpro/gstbill-api/internal/domain"
	"github.com/gstbillpro/gstbill-api/internal/domain/entity"
	"github.com/gstbillpro/gstbill-api/internal/domain/repository"
	"github.com/gstbillpro/gstbill-api/pkg/gstin"
)

// PartyUseCase manages the customer/supplier master.
type PartyUseCase struct {
	partyRepo repository.PartyRepository
}

// NewPartyUseCase builds the use case.
func NewPartyUseCase(partyRepo repository.PartyRepository) *PartyUseCase {
	return &PartyUseCase{partyRepo: partyRepo}
}

// CreateParty registers a party. A supplied GSTIN must validate; when it does
// and the state field is blank, the state is filled in from the GSTIN prefix.
func (uc *PartyUseCase) CreateParty(ctx context.Context, companyID string, in dto.CreatePartyRequest) (*dto.PartyResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}

	partyType := in.PartyType
	if partyType == "" {
		partyType = entity.PartyTypeCustomer
	}
	if partyType != entity.PartyTypeCustomer && partyType != entity.PartyTypeSupplier {
		return nil, domain.ErrInvalidInput
	}

	state := strings.TrimSpace(in.State)
	gst := gstin.Normalize(in.GSTIN)
	if gst != "" {
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
	party := &entity.Party{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		Name:           strings.TrimSpace(in.Name),
		Mobile:         in.Mobile,
		Email:          in.Email,
		PartyType:      partyType,
		GSTIN:          gst,
		PAN:            strings.ToUpper(strings.TrimSpace(in.PAN)),
		Address:        in.Address,
		City:           in.City,
		State:          state,
		Pincode:        in.Pincode,
		OpeningBalance: decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.partyRepo.Create(party); err != nil {
		return nil, err
	}
	return toPartyResponse(party), nil
}

// GetParty loads one party scoped to the company.
func (uc *PartyUseCase) GetParty(ctx context.Context, companyID, id string) (*dto.PartyResponse, error) {
	party, err := uc.partyRepo.GetByID(id)
	if err != nil || party == nil {
		return nil, domain.ErrNotFound
	}
	if party.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return toPartyResponse(party), nil
}

// ListParties returns the company's parties.
func (uc *PartyUseCase) ListParties(ctx context.Context, companyID string, page dto.PageRequest) ([]*dto.PartyResponse, error) {
	page.DefaultPage()
	parties, err := uc.partyRepo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PartyResponse, 0, len(parties))
	for _, p := range parties {
		out = append(out, toPartyResponse(p))
	}
	return out, nil
}

func toPartyResponse(p *entity.Party) *dto.PartyResponse {
	return &dto.PartyResponse{
		ID:        p.ID,
		CompanyID: p.CompanyID,
		Name:      p.Name,
		Mobile:    p.Mobile,
		Email:     p.Email,
		PartyType: p.PartyType,
		GSTIN:     p.GSTIN,
		PAN:       p.PAN,
		Address:   p.Address,
		City:      p.City,
		State:     p.State,
		Pincode:   p.Pincode,
	}
}
