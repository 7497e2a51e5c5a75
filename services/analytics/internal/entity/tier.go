package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Tier string

const (
	TierBronze  Tier = "BRONZE"
	TierSilver  Tier = "SILVER"
	TierGold    Tier = "GOLD"
	TierDiamond Tier = "DIAMOND"
)

var tierPrices = map[Tier]decimal.Decimal{
	TierBronze:  decimal.RequireFromString("4.99"),
	TierSilver:  decimal.RequireFromString("7.49"),
	TierGold:    decimal.RequireFromString("9.99"),
	TierDiamond: decimal.RequireFromString("17.49"),
}

// Price is the fixed monthly price of the tier.
func (t Tier) Price() (decimal.Decimal, error) {
	price, ok := tierPrices[t]
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown tier %q", string(t))
	}
	return price, nil
}

func (t Tier) Valid() bool {
	_, ok := tierPrices[t]
	return ok
}
