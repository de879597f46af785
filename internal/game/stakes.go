package game

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Stakes holds the fixed amounts the table plays for
type Stakes struct {
	// BaseUnit is the value of one point in a settled hand
	BaseUnit decimal.Decimal
	// PotContribution is what each player pays into the pot on a pass, and
	// what each sitter pays when a wagered pot is lost
	PotContribution decimal.Decimal
	// KingsUnit is what every other player pays the holder of three kings
	KingsUnit decimal.Decimal
	// ShareUnit is the coin size used when splitting a pot between picker and partner
	ShareUnit decimal.Decimal
}

var quarter = decimal.New(25, -2)

// DefaultStakes returns quarter stakes for every amount
func DefaultStakes() Stakes {
	return Stakes{
		BaseUnit:        quarter,
		PotContribution: quarter,
		KingsUnit:       quarter,
		ShareUnit:       quarter,
	}
}

// Validate ensures every amount is positive
func (s Stakes) Validate() error {
	checks := []struct {
		name  string
		value decimal.Decimal
	}{
		{"base unit", s.BaseUnit},
		{"pot contribution", s.PotContribution},
		{"kings unit", s.KingsUnit},
		{"share unit", s.ShareUnit},
	}
	var errs []error
	for _, c := range checks {
		if !c.value.IsPositive() {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", c.name, c.value))
		}
	}
	return errors.Join(errs...)
}
