package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Party kinds.
const (
	PartyTypeCustomer = "Customer"
	PartyTypeSupplier = "Supplier"
)

// Party represents a customer or supplier of the company.
type Party struct {
	ID             string
	CompanyID      string
	Name           string
	Mobile         string
	Email          string
	PartyType      string // PartyTypeCustomer or PartyTypeSupplier
	GSTIN          string // empty for unregistered (B2C) parties
	PAN            string
	Address        string
	City           string
	State          string
	Pincode        string
	OpeningBalance decimal.Decimal
	BalanceType    string // "dr" or "cr"
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
