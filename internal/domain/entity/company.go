package entity

import "time"

// Tax regimes an invoice (or a company default) can use.
const (
	TaxTypeGST    = "GST"
	TaxTypeNonGST = "NON-GST"
)

// Company represents the selling organization. Bank details are optional; the
// document assembler substitutes configured defaults when they are empty.
type Company struct {
	ID          string
	Name        string
	GSTIN       string
	Mobile      string
	Email       string
	Address     string
	State       string // seller state, used for the inter-state decision
	TaxType     string // default regime for new invoices: TaxTypeGST or TaxTypeNonGST
	FYStart     string // financial year bounds, YYYY-MM-DD
	FYEnd       string
	BankName    string
	BankAccount string
	BankIFSC    string
	Terms       string // footer terms line on printed invoices
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
