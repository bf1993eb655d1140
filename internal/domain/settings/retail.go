package settings

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// PriceFor returns the retail price of a variant under this pricing.
// Markup prices are rounded to cents and never fall below MinimumPrice.
// ok is false when a fixed price list has no entry for the SKU.
func (p Pricing) PriceFor(sku string, baseCost decimal.Decimal) (decimal.Decimal, bool) {
	var price decimal.Decimal
	switch p.Strategy {
	case StrategyFixed:
		found := false
		for _, rp := range p.RetailPrices {
			if rp.SKU == sku {
				price, found = rp.Price, true
				break
			}
		}
		if !found {
			return decimal.Zero, false
		}
	case StrategyMarkup:
		if p.MarkupPercent == nil {
			return decimal.Zero, false
		}
		factor := decimal.NewFromInt(1).Add(p.MarkupPercent.Div(hundred))
		price = baseCost.Mul(factor).Round(2)
	default:
		return decimal.Zero, false
	}

	if p.MinimumPrice != nil && price.LessThan(*p.MinimumPrice) {
		price = *p.MinimumPrice
	}
	return price, true
}
