package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gstbillpro/gstbill-api/internal/domain"
	"github.com/gstbillpro/gstbill-api/internal/domain/entity"
	"github.com/gstbillpro/gstbill-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo CompanyRepository over PostgreSQL (usable with pool or tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository builds the adapter. Pass a pool or a tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persists a new company.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, gstin, mobile, email, address, state, tax_type,
		                       fy_start, fy_end, bank_name, bank_account, bank_ifsc, terms,
		                       created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, nullIfEmpty(company.GSTIN), nullIfEmpty(company.Mobile),
		nullIfEmpty(company.Email), nullIfEmpty(company.Address), nullIfEmpty(company.State),
		company.TaxType, nullIfEmpty(company.FYStart), nullIfEmpty(company.FYEnd),
		nullIfEmpty(company.BankName), nullIfEmpty(company.BankAccount), nullIfEmpty(company.BankIFSC),
		nullIfEmpty(company.Terms), company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

const companyColumns = `id, name, COALESCE(gstin, ''), COALESCE(mobile, ''), COALESCE(email, ''),
	       COALESCE(address, ''), COALESCE(state, ''), tax_type,
	       COALESCE(fy_start, ''), COALESCE(fy_end, ''),
	       COALESCE(bank_name, ''), COALESCE(bank_account, ''), COALESCE(bank_ifsc, ''),
	       COALESCE(terms, ''), created_at, updated_at`

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.GSTIN, &c.Mobile, &c.Email,
		&c.Address, &c.State, &c.TaxType,
		&c.FYStart, &c.FYEnd,
		&c.BankName, &c.BankAccount, &c.BankIFSC,
		&c.Terms, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID loads one company.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	c, err := scanCompany(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// List lists companies by name.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update rewrites the company profile.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies
		SET name = $2, gstin = $3, mobile = $4, email = $5, address = $6, state = $7,
		    tax_type = $8, fy_start = $9, fy_end = $10,
		    bank_name = $11, bank_account = $12, bank_ifsc = $13, terms = $14, updated_at = $15
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, nullIfEmpty(company.GSTIN), nullIfEmpty(company.Mobile),
		nullIfEmpty(company.Email), nullIfEmpty(company.Address), nullIfEmpty(company.State),
		company.TaxType, nullIfEmpty(company.FYStart), nullIfEmpty(company.FYEnd),
		nullIfEmpty(company.BankName), nullIfEmpty(company.BankAccount), nullIfEmpty(company.BankIFSC),
		nullIfEmpty(company.Terms), company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}
