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

var _ repository.PartyRepository = (*PartyRepo)(nil)

// PartyRepo PartyRepository over PostgreSQL (usable with pool or tx).
type PartyRepo struct {
	q Querier
}

// NewPartyRepository builds the adapter. Pass a pool or a tx (Querier).
func NewPartyRepository(q Querier) *PartyRepo {
	return &PartyRepo{q: q}
}

// Create persists a new party.
func (r *PartyRepo) Create(party *entity.Party) error {
	query := `
		INSERT INTO parties (id, company_id, name, mobile, email, party_type, gstin, pan,
		                     address, city, state, pincode, opening_balance, balance_type,
		                     created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		party.ID, party.CompanyID, party.Name, nullIfEmpty(party.Mobile), nullIfEmpty(party.Email),
		party.PartyType, nullIfEmpty(party.GSTIN), nullIfEmpty(party.PAN),
		nullIfEmpty(party.Address), nullIfEmpty(party.City), nullIfEmpty(party.State), nullIfEmpty(party.Pincode),
		party.OpeningBalance, nullIfEmpty(party.BalanceType),
		party.CreatedAt, party.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert party: %w", err)
	}
	return nil
}

const partyColumns = `id, company_id, name, COALESCE(mobile, ''), COALESCE(email, ''), party_type,
	       COALESCE(gstin, ''), COALESCE(pan, ''), COALESCE(address, ''), COALESCE(city, ''),
	       COALESCE(state, ''), COALESCE(pincode, ''), opening_balance, COALESCE(balance_type, ''),
	       created_at, updated_at`

func scanParty(row pgx.Row) (*entity.Party, error) {
	var p entity.Party
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.Name, &p.Mobile, &p.Email, &p.PartyType,
		&p.GSTIN, &p.PAN, &p.Address, &p.City,
		&p.State, &p.Pincode, &p.OpeningBalance, &p.BalanceType,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID loads one party.
func (r *PartyRepo) GetByID(id string) (*entity.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE id = $1`
	p, err := scanParty(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get party: %w", err)
	}
	return p, nil
}

// ListByCompany lists the company's parties by name.
func (r *PartyRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Party, error) {
	query := `SELECT ` + partyColumns + `
		FROM parties WHERE company_id = $1
		ORDER BY name
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list parties: %w", err)
	}
	defer rows.Close()
	var list []*entity.Party
	for rows.Next() {
		p, err := scanParty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan party: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update rewrites the party's master data.
func (r *PartyRepo) Update(party *entity.Party) error {
	query := `
		UPDATE parties
		SET name = $2, mobile = $3, email = $4, party_type = $5, gstin = $6, pan = $7,
		    address = $8, city = $9, state = $10, pincode = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		party.ID, party.Name, nullIfEmpty(party.Mobile), nullIfEmpty(party.Email), party.PartyType,
		nullIfEmpty(party.GSTIN), nullIfEmpty(party.PAN), nullIfEmpty(party.Address),
		nullIfEmpty(party.City), nullIfEmpty(party.State), nullIfEmpty(party.Pincode), party.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update party: %w", err)
	}
	return nil
}

// Delete removes a party.
func (r *PartyRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM parties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete party: %w", err)
	}
	return nil
}
