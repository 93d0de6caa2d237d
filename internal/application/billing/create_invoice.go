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
	"github.com/gstbillpro/gstbill-api/internal/domain/tax"
	"github.com/gstbillpro/gstbill-api/pkg/gstin"
)

const requestDateLayout = "2006-01-02"

// CreateInvoiceUseCase computes and persists a sales invoice: line resolution
// against the product catalog, validation, tax aggregation and transactional
// storage of the header plus its lines.
type CreateInvoiceUseCase struct {
	txRunner    BillingTxRunner
	partyRepo   repository.PartyRepository
	companyRepo repository.CompanyRepository
	productRepo repository.ProductRepository
	invoiceRepo repository.InvoiceRepository
	aggregator  *tax.Aggregator
}

// NewCreateInvoiceUseCase builds the use case.
func NewCreateInvoiceUseCase(
	txRunner BillingTxRunner,
	partyRepo repository.PartyRepository,
	companyRepo repository.CompanyRepository,
	productRepo repository.ProductRepository,
	invoiceRepo repository.InvoiceRepository,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		txRunner:    txRunner,
		partyRepo:   partyRepo,
		companyRepo: companyRepo,
		productRepo: productRepo,
		invoiceRepo: invoiceRepo,
		aggregator:  tax.NewAggregator(),
	}
}

// CreateInvoice validates the request, runs the tax engine over the lines and
// saves header + lines in one transaction. The stored monetary fields are the
// engine's results verbatim, so the printed document can be rebuilt later.
func (uc *CreateInvoiceUseCase) CreateInvoice(ctx context.Context, companyID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.PartyID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	party, err := uc.partyRepo.GetByID(in.PartyID)
	if err != nil || party == nil {
		return nil, domain.ErrNotFound
	}
	if party.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}

	taxType := strings.ToUpper(strings.TrimSpace(in.TaxType))
	if taxType == "" {
		taxType = company.TaxType
	}
	if taxType != entity.TaxTypeGST && taxType != entity.TaxTypeNonGST {
		return nil, domain.ErrInvalidInput
	}

	billType := strings.ToUpper(strings.TrimSpace(in.BillType))
	if billType == "" {
		billType = entity.BillTypeCash
	}
	if billType != entity.BillTypeCash && billType != entity.BillTypeCredit {
		return nil, domain.ErrInvalidInput
	}

	date := time.Now()
	if in.Date != "" {
		date, err = time.Parse(requestDateLayout, in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	lines, productIDs, units, err := uc.resolveLines(companyID, in.Items, taxType)
	if err != nil {
		return nil, err
	}

	mode := tax.Mode{
		GST:        taxType == entity.TaxTypeGST,
		InterState: isInterState(company, party),
	}

	if err := tax.ValidateInvoice(lines, tax.DocumentContext{
		Mode:         mode,
		CompanyGSTIN: company.GSTIN,
		PartyGSTIN:   party.GSTIN,
		PartyState:   party.State,
	}); err != nil {
		return nil, err
	}

	agg := uc.aggregator.Aggregate(lines, mode)

	now := time.Now()
	invoiceNo := strings.TrimSpace(in.InvoiceNo)
	if invoiceNo == "" {
		invoiceNo = fmt.Sprintf("INV-%d", now.Unix())
	}

	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		PartyID:       party.ID,
		InvoiceNo:     invoiceNo,
		Date:          date,
		TaxType:       taxType,
		BillType:      billType,
		IsInterState:  mode.InterState,
		RefNo:         in.RefNo,
		VehicleNo:     in.VehicleNo,
		Transport:     in.Transport,
		TotalQuantity: agg.Totals.TotalQuantity,
		Subtotal:      agg.Totals.Subtotal,
		TotalDiscount: agg.Totals.TotalDiscount,
		CGST:          agg.Totals.TotalCGST,
		SGST:          agg.Totals.TotalSGST,
		IGST:          agg.Totals.TotalIGST,
		RoundOff:      agg.Totals.RoundOff,
		GrandTotal:    agg.Totals.NetAmount,
		BalanceDue:    agg.Totals.NetAmount,
		Status:        entity.InvoiceStatusUnpaid,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if billType == entity.BillTypeCash {
		inv.BalanceDue = decimal.Zero
		inv.Status = entity.InvoiceStatusPaid
	}

	items := make([]*entity.InvoiceItem, 0, len(agg.Lines))
	for i, l := range agg.Lines {
		items = append(items, &entity.InvoiceItem{
			ID:              uuid.New().String(),
			InvoiceID:       inv.ID,
			ProductID:       productIDs[i],
			Description:     l.Item.Description,
			HSNCode:         l.Item.HSNCode,
			Unit:            units[i],
			Quantity:        l.Item.Quantity,
			Rate:            l.Item.Rate,
			MRP:             l.Item.MRP,
			DiscountPercent: l.Item.DiscountPercent,
			TaxRatePercent:  l.Item.TaxRatePercent,
			DiscountAmount:  l.DiscountAmount,
			TaxableAmount:   l.TaxableAmount,
			CGSTAmount:      l.CGSTAmount,
			SGSTAmount:      l.SGSTAmount,
			IGSTAmount:      l.IGSTAmount,
			LineTotal:       l.LineTotal,
		})
	}

	err = uc.txRunner.RunBilling(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for _, item := range items {
			if err := invoiceRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.toResponse(inv, party.Name, items), nil
}

// resolveLines maps request items to engine lines, pulling description, HSN,
// rate, MRP and tax rate from the product when a ProductID is given and the
// request leaves them blank. A non-GST invoice forces every tax rate to zero.
func (uc *CreateInvoiceUseCase) resolveLines(companyID string, reqItems []dto.InvoiceItemRequest, taxType string) ([]tax.LineItem, []string, []string, error) {
	lines := make([]tax.LineItem, 0, len(reqItems))
	productIDs := make([]string, 0, len(reqItems))
	units := make([]string, 0, len(reqItems))

	for _, it := range reqItems {
		line := tax.LineItem{
			Description:     it.Description,
			HSNCode:         it.HSNCode,
			Quantity:        it.Quantity,
			Rate:            it.Rate,
			MRP:             it.MRP,
			DiscountPercent: it.DiscountPercent,
			TaxRatePercent:  it.TaxRatePercent,
		}
		unit := "PCS"

		if it.ProductID != "" {
			product, err := uc.productRepo.GetByID(it.ProductID)
			if err != nil || product == nil {
				return nil, nil, nil, domain.ErrNotFound
			}
			if product.CompanyID != companyID {
				return nil, nil, nil, domain.ErrForbidden
			}
			if line.Description == "" {
				line.Description = product.Name
			}
			if line.HSNCode == "" {
				line.HSNCode = product.HSNCode
			}
			if line.Rate.IsZero() {
				line.Rate = product.SalePrice
			}
			if line.MRP.IsZero() {
				line.MRP = product.MRP
			}
			if line.TaxRatePercent.IsZero() {
				line.TaxRatePercent = product.TaxRatePercent
			}
			if product.Unit != "" {
				unit = product.Unit
			}
		}
		if line.Description == "" {
			return nil, nil, nil, domain.ErrInvalidInput
		}
		if taxType == entity.TaxTypeNonGST {
			line.TaxRatePercent = decimal.Zero
		}

		lines = append(lines, line)
		productIDs = append(productIDs, it.ProductID)
		units = append(units, unit)
	}
	return lines, productIDs, units, nil
}

// isInterState compares the place of supply. GSTIN state codes are
// authoritative when both sides carry one; free-text states decide otherwise.
func isInterState(company *entity.Company, party *entity.Party) bool {
	companyCode, okC := gstin.StateCode(company.GSTIN)
	partyCode, okP := gstin.StateCode(party.GSTIN)
	if okC && okP {
		return companyCode != partyCode
	}
	if company.State != "" && party.State != "" {
		return !strings.EqualFold(strings.TrimSpace(company.State), strings.TrimSpace(party.State))
	}
	return false
}

func (uc *CreateInvoiceUseCase) toResponse(inv *entity.Invoice, partyName string, items []*entity.InvoiceItem) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:            inv.ID,
		CompanyID:     inv.CompanyID,
		PartyID:       inv.PartyID,
		PartyName:     partyName,
		InvoiceNo:     inv.InvoiceNo,
		Date:          inv.Date.Format(requestDateLayout),
		TaxType:       inv.TaxType,
		BillType:      inv.BillType,
		IsInterState:  inv.IsInterState,
		TotalQuantity: inv.TotalQuantity,
		Subtotal:      inv.Subtotal,
		TotalDiscount: inv.TotalDiscount,
		CGST:          inv.CGST,
		SGST:          inv.SGST,
		IGST:          inv.IGST,
		RoundOff:      inv.RoundOff,
		GrandTotal:    inv.GrandTotal,
		Status:        inv.Status,
		Items:         make([]dto.InvoiceItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:              it.ID,
			ProductID:       it.ProductID,
			Description:     it.Description,
			HSNCode:         it.HSNCode,
			Quantity:        it.Quantity,
			Rate:            it.Rate,
			DiscountPercent: it.DiscountPercent,
			DiscountAmount:  it.DiscountAmount,
			TaxableAmount:   it.TaxableAmount,
			TaxRatePercent:  it.TaxRatePercent,
			CGSTAmount:      it.CGSTAmount,
			SGSTAmount:      it.SGSTAmount,
			IGSTAmount:      it.IGSTAmount,
			LineTotal:       it.LineTotal,
		})
	}
	return resp
}

// GetInvoice loads one invoice with its lines.
func (uc *CreateInvoiceUseCase) GetInvoice(ctx context.Context, companyID, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	partyName := ""
	if party, _ := uc.partyRepo.GetByID(inv.PartyID); party != nil {
		partyName = party.Name
	}
	return uc.toResponse(inv, partyName, items), nil
}

// ListInvoices returns the company's invoices, newest first, without lines.
func (uc *CreateInvoiceUseCase) ListInvoices(ctx context.Context, companyID string, page dto.PageRequest) ([]*dto.InvoiceResponse, error) {
	page.DefaultPage()
	invoices, err := uc.invoiceRepo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, uc.toResponse(inv, "", nil))
	}
	return out, nil
}
