package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbillpro/gstbill-api/internal/application/billing"
	"github.com/gstbillpro/gstbill-api/internal/application/dto"
	"github.com/gstbillpro/gstbill-api/internal/domain"
	"github.com/gstbillpro/gstbill-api/internal/domain/entity"
	"github.com/gstbillpro/gstbill-api/internal/domain/repository"
	"github.com/gstbillpro/gstbill-api/internal/domain/tax"
)

const (
	testCompanyID = "company-1"
	testPartyID   = "party-1"
	testProductID = "product-1"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type memCompanyRepo struct{ companies map[string]*entity.Company }

func (r *memCompanyRepo) Create(c *entity.Company) error { r.companies[c.ID] = c; return nil }
func (r *memCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.companies[id], nil
}
func (r *memCompanyRepo) List(limit, offset int) ([]*entity.Company, error) { return nil, nil }
func (r *memCompanyRepo) Update(c *entity.Company) error                    { return nil }

type memPartyRepo struct{ parties map[string]*entity.Party }

func (r *memPartyRepo) Create(p *entity.Party) error             { r.parties[p.ID] = p; return nil }
func (r *memPartyRepo) GetByID(id string) (*entity.Party, error) { return r.parties[id], nil }
func (r *memPartyRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Party, error) {
	return nil, nil
}
func (r *memPartyRepo) Update(p *entity.Party) error { return nil }
func (r *memPartyRepo) Delete(id string) error       { return nil }

type memProductRepo struct{ products map[string]*entity.Product }

func (r *memProductRepo) Create(p *entity.Product) error             { r.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) { return r.products[id], nil }
func (r *memProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) Update(p *entity.Product) error { return nil }

type memInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	items    []*entity.InvoiceItem
	failNext error
}

func (r *memInvoiceRepo) Create(inv *entity.Invoice) error {
	if r.failNext != nil {
		return r.failNext
	}
	r.invoices[inv.ID] = inv
	return nil
}
func (r *memInvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	r.items = append(r.items, item)
	return nil
}
func (r *memInvoiceRepo) GetByID(id string) (*entity.Invoice, error) { return r.invoices[id], nil }
func (r *memInvoiceRepo) GetByCompanyAndNumber(companyID, invoiceNo string) (*entity.Invoice, error) {
	return nil, nil
}
func (r *memInvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	var out []*entity.InvoiceItem
	for _, it := range r.items {
		if it.InvoiceID == invoiceID {
			out = append(out, it)
		}
	}
	return out, nil
}
func (r *memInvoiceRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error) {
	return nil, nil
}
func (r *memInvoiceRepo) ListByPeriod(companyID string, from, to time.Time) ([]*entity.Invoice, error) {
	return nil, nil
}
func (r *memInvoiceRepo) Update(inv *entity.Invoice) error { return nil }

// stubTxRunner runs the billing function inline against the in-memory repo.
type stubTxRunner struct{ repo *memInvoiceRepo }

func (s *stubTxRunner) RunBilling(ctx context.Context, fn func(repository.InvoiceRepository) error) error {
	return fn(s.repo)
}

type fixture struct {
	uc        *billing.CreateInvoiceUseCase
	company   *entity.Company
	party     *entity.Party
	invoices  *memInvoiceRepo
	companies *memCompanyRepo
	parties   *memPartyRepo
}

func newFixture() *fixture {
	company := &entity.Company{
		ID:      testCompanyID,
		Name:    "Shree Traders",
		GSTIN:   "24AADPP6173E1ZT",
		State:   "Gujarat",
		TaxType: entity.TaxTypeGST,
	}
	party := &entity.Party{
		ID:        testPartyID,
		CompanyID: testCompanyID,
		Name:      "Patel Enterprises",
		GSTIN:     "24AAACB1234F1Z5",
		State:     "Gujarat",
	}
	product := &entity.Product{
		ID:             testProductID,
		CompanyID:      testCompanyID,
		Name:           "PVC Pipe",
		HSNCode:        "3917",
		Unit:           "NOS",
		SalePrice:      dec("100"),
		MRP:            dec("120"),
		TaxRatePercent: dec("18"),
	}

	invoices := &memInvoiceRepo{invoices: map[string]*entity.Invoice{}}
	parties := &memPartyRepo{parties: map[string]*entity.Party{party.ID: party}}
	companies := &memCompanyRepo{companies: map[string]*entity.Company{company.ID: company}}
	uc := billing.NewCreateInvoiceUseCase(
		&stubTxRunner{repo: invoices},
		parties,
		companies,
		&memProductRepo{products: map[string]*entity.Product{product.ID: product}},
		invoices,
	)
	return &fixture{
		uc: uc, company: company, party: party,
		invoices: invoices, companies: companies, parties: parties,
	}
}

func TestCreateInvoice_GSTIntraState(t *testing.T) {
	f := newFixture()
	resp, err := f.uc.CreateInvoice(context.Background(), testCompanyID, dto.CreateInvoiceRequest{
		PartyID:   testPartyID,
		InvoiceNo: "INV-1",
		Date:      "2024-03-15",
		Items: []dto.InvoiceItemRequest{
			{Description: "Widget", Quantity: dec("2"), Rate: dec("100"), TaxRatePercent: dec("18")},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "INV-1", resp.InvoiceNo)
	assert.Equal(t, entity.TaxTypeGST, resp.TaxType)
	assert.False(t, resp.IsInterState, "same GSTIN state code means intra-state")
	assert.True(t, resp.Subtotal.Equal(dec("200.00")), "subtotal %s", resp.Subtotal)
	assert.True(t, resp.CGST.Equal(dec("18.00")), "CGST %s", resp.CGST)
	assert.True(t, resp.SGST.Equal(dec("18.00")), "SGST %s", resp.SGST)
	assert.True(t, resp.IGST.IsZero())
	assert.True(t, resp.GrandTotal.Equal(dec("236")), "grand total %s", resp.GrandTotal)

	require.Len(t, f.invoices.items, 1, "one line must be persisted")
	assert.True(t, f.invoices.items[0].LineTotal.Equal(dec("236.00")))
}

func TestCreateInvoice_InterStateFromGSTIN(t *testing.T) {
	f := newFixture()
	// Maharashtra GSTIN against the Gujarat company.
	f.party.GSTIN = "27AAACB1234F1Z5"
	f.party.State = "Maharashtra"

	resp, err := f.uc.CreateInvoice(context.Background(), testCompanyID, dto.CreateInvoiceRequest{
		PartyID: testPartyID,
		Items: []dto.InvoiceItemRequest{
			{Description: "Widget", Quantity: dec("2"), Rate: dec("100"), TaxRatePercent: dec("18")},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.IsInterState)
	assert.True(t, resp.IGST.Equal(dec("36.00")), "IGST %s", resp.IGST)
	assert.True(t, resp.CGST.IsZero())
	assert.True(t, resp.SGST.IsZero())
}

// Lines referencing a product inherit its description, HSN, rate, MRP, tax
// rate and unit when the request leaves them blank.
func TestCreateInvoice_ProductDefaults(t *testing.T) {
	f := newFixture()
	resp, err := f.uc.CreateInvoice(context.Background(), testCompanyID, dto.CreateInvoiceRequest{
		PartyID: testPartyID,
		Items: []dto.InvoiceItemRequest{
			{ProductID: testProductID, Quantity: dec("3")},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	it := resp.Items[0]
	assert.Equal(t, "PVC Pipe", it.Description)
	assert.Equal(t, "3917", it.HSNCode)
	assert.True(t, it.Rate.Equal(dec("100")))
	assert.True(t, it.TaxRatePercent.Equal(dec("18")))
	assert.Equal(t, "NOS", f.invoices.items[0].Unit)
}

func TestCreateInvoice_NonGSTForcesZeroTaxRate(t *testing.T) {
	f := newFixture()
	resp, err := f.uc.CreateInvoice(context.Background(), testCompanyID, dto.CreateInvoiceRequest{
		PartyID: testPartyID,
		TaxType: entity.TaxTypeNonGST,
		Items: []dto.InvoiceItemRequest{
			// Product carries 18% but the non-GST invoice must zero it.
			{ProductID: testProductID, Quantity: dec("3"), Rate: dec("99.99"), DiscountPercent: dec("10")},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.CGST.IsZero())
	assert.True(t, resp.SGST.IsZero())
	assert.True(t, resp.IGST.IsZero())
	assert.True(t, resp.Subtotal.Equal(dec("269.97")), "subtotal %s", resp.Subtotal)
	assert.True(t, resp.GrandTotal.Equal(dec("270")), "grand total %s", resp.GrandTotal)
	assert.True(t, resp.RoundOff.Equal(dec("0.03")), "round off %s", resp.RoundOff)
}

func TestCreateInvoice_CashBillIsPaid(t *testing.T) {
	f := newFixture()
	resp, err := f.uc.CreateInvoice(context.Background(), testCompanyID, dto.CreateInvoiceRequest{
		PartyID:  testPartyID,
		BillType: entity.BillTypeCash,
		Items: []dto.InvoiceItemRequest{
			{Description: "Widget", Quantity: dec("1"), Rate: dec("100"), TaxRatePercent: dec("18")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.InvoiceStatusPaid, resp.Status)
	stored := f.invoices.invoices[resp.ID]
	require.NotNil(t, stored)
	assert.True(t, stored.BalanceDue.IsZero(), "cash bills carry no balance due")
}

func TestCreateInvoice_CreditBillIsUnpaid(t *testing.T) {
	f := newFixture()
	resp, err := f.uc.CreateInvoice(context.Background(), testCompanyID, dto.CreateInvoiceRequest{
		PartyID:  testPartyID,
		BillType: entity.BillTypeCredit,
		Items: []dto.InvoiceItemRequest{
			{Description: "Widget", Quantity: dec("1"), Rate: dec("100"), TaxRatePercent: dec("18")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.InvoiceStatusUnpaid, resp.Status)
	stored := f.invoices.invoices[resp.ID]
	assert.True(t, stored.BalanceDue.Equal(stored.GrandTotal))
}

func TestCreateInvoice_ValidationErrorsPropagate(t *testing.T) {
	f := newFixture()
	_, err := f.uc.CreateInvoice(context.Background(), testCompanyID, dto.CreateInvoiceRequest{
		PartyID: testPartyID,
		Items: []dto.InvoiceItemRequest{
			{Description: "Widget", Quantity: dec("-1"), Rate: dec("100"), TaxRatePercent: dec("18")},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, tax.ErrInvalidInvoice))
	assert.Empty(t, f.invoices.invoices, "nothing must be persisted on validation failure")
}

func TestCreateInvoice_MissingPartyOrItems(t *testing.T) {
	f := newFixture()

	_, err := f.uc.CreateInvoice(context.Background(), testCompanyID, dto.CreateInvoiceRequest{
		Items: []dto.InvoiceItemRequest{{Description: "X", Quantity: dec("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "missing party id")

	_, err = f.uc.CreateInvoice(context.Background(), testCompanyID, dto.CreateInvoiceRequest{
		PartyID: testPartyID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "missing items")
}

func TestCreateInvoice_UnknownParty(t *testing.T) {
	f := newFixture()
	_, err := f.uc.CreateInvoice(context.Background(), testCompanyID, dto.CreateInvoiceRequest{
		PartyID: "missing",
		Items:   []dto.InvoiceItemRequest{{Description: "X", Quantity: dec("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateInvoice_ForeignPartyRejected(t *testing.T) {
	f := newFixture()
	f.party.CompanyID = "someone-else"
	_, err := f.uc.CreateInvoice(context.Background(), testCompanyID, dto.CreateInvoiceRequest{
		PartyID: testPartyID,
		Items:   []dto.InvoiceItemRequest{{Description: "X", Quantity: dec("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateInvoice_BlankDescriptionRejected(t *testing.T) {
	f := newFixture()
	_, err := f.uc.CreateInvoice(context.Background(), testCompanyID, dto.CreateInvoiceRequest{
		PartyID: testPartyID,
		Items:   []dto.InvoiceItemRequest{{Quantity: dec("1"), Rate: dec("100")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateInvoice_BadDateRejected(t *testing.T) {
	f := newFixture()
	_, err := f.uc.CreateInvoice(context.Background(), testCompanyID, dto.CreateInvoiceRequest{
		PartyID: testPartyID,
		Date:    "15/03/2024",
		Items:   []dto.InvoiceItemRequest{{Description: "X", Quantity: dec("1"), TaxRatePercent: dec("18")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateInvoice_RepoErrorAborts(t *testing.T) {
	f := newFixture()
	f.invoices.failNext = errors.New("insert failed")
	_, err := f.uc.CreateInvoice(context.Background(), testCompanyID, dto.CreateInvoiceRequest{
		PartyID: testPartyID,
		Items: []dto.InvoiceItemRequest{
			{Description: "Widget", Quantity: dec("1"), Rate: dec("100"), TaxRatePercent: dec("18")},
		},
	})
	assert.EqualError(t, err, "insert failed")
}

func TestCreateInvoice_GeneratesInvoiceNumber(t *testing.T) {
	f := newFixture()
	resp, err := f.uc.CreateInvoice(context.Background(), testCompanyID, dto.CreateInvoiceRequest{
		PartyID: testPartyID,
		Items: []dto.InvoiceItemRequest{
			{Description: "Widget", Quantity: dec("1"), Rate: dec("100"), TaxRatePercent: dec("18")},
		},
	})
	require.NoError(t, err)
	assert.Regexp(t, `^INV-\d+$`, resp.InvoiceNo)
}
