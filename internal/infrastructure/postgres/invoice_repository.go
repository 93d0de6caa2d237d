package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gstbillpro/gstbill-api/internal/domain"
	"github.com/gstbillpro/gstbill-api/internal/domain/entity"
	"github.com/gstbillpro/gstbill-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo InvoiceRepository over PostgreSQL (usable with pool or tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter. Pass a pool or a tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persists the invoice header.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (id, company_id, party_id, invoice_no, date, tax_type, bill_type, is_inter_state,
		                      ref_no, vehicle_no, transport, total_quantity, subtotal, total_discount,
		                      cgst, sgst, igst, round_off, grand_total, balance_due, status, notes,
		                      created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CompanyID, invoice.PartyID, invoice.InvoiceNo, invoice.Date,
		invoice.TaxType, invoice.BillType, invoice.IsInterState,
		nullIfEmpty(invoice.RefNo), nullIfEmpty(invoice.VehicleNo), nullIfEmpty(invoice.Transport),
		invoice.TotalQuantity, invoice.Subtotal, invoice.TotalDiscount,
		invoice.CGST, invoice.SGST, invoice.IGST, invoice.RoundOff, invoice.GrandTotal,
		invoice.BalanceDue, invoice.Status, nullIfEmpty(invoice.Notes),
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateItem persists one invoice line.
func (r *InvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoice_items (id, invoice_id, product_id, description, hsn_code, unit,
		                           quantity, rate, mrp, discount_percent, tax_rate_percent,
		                           discount_amount, taxable_amount, cgst_amount, sgst_amount, igst_amount, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.InvoiceID, nullIfEmpty(item.ProductID), item.Description, nullIfEmpty(item.HSNCode), item.Unit,
		item.Quantity, item.Rate, item.MRP, item.DiscountPercent, item.TaxRatePercent,
		item.DiscountAmount, item.TaxableAmount, item.CGSTAmount, item.SGSTAmount, item.IGSTAmount, item.LineTotal,
	)
	if err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

const invoiceColumns = `id, company_id, party_id, invoice_no, date, tax_type, bill_type, is_inter_state,
	       COALESCE(ref_no, ''), COALESCE(vehicle_no, ''), COALESCE(transport, ''),
	       total_quantity, subtotal, total_discount, cgst, sgst, igst, round_off, grand_total,
	       balance_due, status, COALESCE(notes, ''), created_at, updated_at`

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.CompanyID, &inv.PartyID, &inv.InvoiceNo, &inv.Date,
		&inv.TaxType, &inv.BillType, &inv.IsInterState,
		&inv.RefNo, &inv.VehicleNo, &inv.Transport,
		&inv.TotalQuantity, &inv.Subtotal, &inv.TotalDiscount,
		&inv.CGST, &inv.SGST, &inv.IGST, &inv.RoundOff, &inv.GrandTotal,
		&inv.BalanceDue, &inv.Status, &inv.Notes, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetByID loads one invoice header.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// GetByCompanyAndNumber loads one invoice header by its number.
func (r *InvoiceRepo) GetByCompanyAndNumber(companyID, invoiceNo string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE company_id = $1 AND invoice_no = $2`
	inv, err := scanInvoice(r.q.QueryRow(context.Background(), query, companyID, invoiceNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice by number: %w", err)
	}
	return inv, nil
}

// GetItemsByInvoiceID loads every line of one invoice in insertion order.
func (r *InvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, COALESCE(product_id, ''), description, COALESCE(hsn_code, ''), unit,
		       quantity, rate, mrp, discount_percent, tax_rate_percent,
		       discount_amount, taxable_amount, cgst_amount, sgst_amount, igst_amount, line_total
		FROM invoice_items WHERE invoice_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceItem
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(
			&it.ID, &it.InvoiceID, &it.ProductID, &it.Description, &it.HSNCode, &it.Unit,
			&it.Quantity, &it.Rate, &it.MRP, &it.DiscountPercent, &it.TaxRatePercent,
			&it.DiscountAmount, &it.TaxableAmount, &it.CGSTAmount, &it.SGSTAmount, &it.IGSTAmount, &it.LineTotal,
		); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ListByCompany lists invoice headers, newest first.
func (r *InvoiceRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + `
		FROM invoices WHERE company_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	return collectInvoices(rows)
}

// ListByPeriod lists invoice headers dated within [from, to] inclusive.
func (r *InvoiceRepo) ListByPeriod(companyID string, from, to time.Time) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + `
		FROM invoices WHERE company_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date, invoice_no`
	rows, err := r.q.Query(context.Background(), query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list invoices by period: %w", err)
	}
	defer rows.Close()
	return collectInvoices(rows)
}

func collectInvoices(rows pgx.Rows) ([]*entity.Invoice, error) {
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// Update rewrites the mutable header fields (payment state and notes).
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET balance_due = $2,
		    status      = $3,
		    notes       = $4,
		    updated_at  = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.BalanceDue, invoice.Status, nullIfEmpty(invoice.Notes), invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
