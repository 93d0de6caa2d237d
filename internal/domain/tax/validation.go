package tax

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gstbillpro/gstbill-api/pkg/gstin"
	"github.com/shopspring/decimal"
)

// ErrInvalidInvoice is the root of every validation failure from this package.
var ErrInvalidInvoice = errors.New("invalid invoice data")

// StandardRates are the GST slabs accepted on a line.
var StandardRates = []decimal.Decimal{
	decimal.NewFromInt(0),
	decimal.NewFromInt(5),
	decimal.NewFromInt(12),
	decimal.NewFromInt(18),
	decimal.NewFromInt(28),
}

// DocumentContext is the party/company data validation needs beyond the lines.
type DocumentContext struct {
	Mode         Mode
	CompanyGSTIN string
	PartyGSTIN   string
	PartyState   string
}

// ValidateInvoice checks every line and the mode consistency of the document
// before any totals are computed. All offending lines are reported in one
// joined error (errors.Is(err, ErrInvalidInvoice)), so the caller can show
// every issue at once. Zero quantity or rate is not an error.
func ValidateInvoice(items []LineItem, ctx DocumentContext) error {
	var errs []error

	for i, item := range items {
		if item.Quantity.IsNegative() {
			errs = append(errs, fmt.Errorf("line %d: quantity must not be negative", i+1))
		}
		if item.Rate.IsNegative() {
			errs = append(errs, fmt.Errorf("line %d: rate must not be negative", i+1))
		}
		if item.DiscountPercent.IsNegative() || item.DiscountPercent.GreaterThan(hundred) {
			errs = append(errs, fmt.Errorf("line %d: discount percent must be between 0 and 100", i+1))
		}
		if ctx.Mode.GST {
			if !isStandardRate(item.TaxRatePercent) {
				errs = append(errs, fmt.Errorf("line %d: unrecognized GST rate %s%%", i+1, item.TaxRatePercent.String()))
			}
		} else if !item.TaxRatePercent.IsZero() {
			errs = append(errs, fmt.Errorf("line %d: non-GST invoice must not carry a tax rate", i+1))
		}
	}

	if ctx.Mode.GST {
		if err := gstin.Validate(ctx.CompanyGSTIN); err != nil {
			errs = append(errs, fmt.Errorf("company: %w", err))
		}
		if err := gstin.Validate(ctx.PartyGSTIN); err != nil {
			errs = append(errs, fmt.Errorf("party: %w", err))
		} else if state, ok := gstin.StateFromGSTIN(ctx.PartyGSTIN); ok && ctx.PartyState != "" && !strings.EqualFold(state, strings.TrimSpace(ctx.PartyState)) {
			errs = append(errs, fmt.Errorf("party: state %q does not match GSTIN state %q", ctx.PartyState, state))
		}
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidInvoice}, errs...)...)
	}
	return nil
}

func isStandardRate(rate decimal.Decimal) bool {
	for _, r := range StandardRates {
		if rate.Equal(r) {
			return true
		}
	}
	return false
}
