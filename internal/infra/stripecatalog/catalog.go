package stripecatalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	stripe "github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/price"
	"github.com/stripe/stripe-go/v75/product"
)

var ErrNotConfigured = errors.New("stripe key not configured")

type CatalogItem struct {
	// ProductID reuses a product created by an earlier, interrupted sync.
	ProductID string

	SKU         string
	Name        string
	Description string
	ImageURL    string
	Amount      decimal.Decimal
	Currency    string
}

type SyncedItem struct {
	SKU       string `json:"sku"`
	ProductID string `json:"stripe_product_id"`
	PriceID   string `json:"stripe_price_id,omitempty"`
	Amount    int64  `json:"unit_amount"`
}

// ToMinorUnits converts a price to cents, rounding half away from zero.
func ToMinorUnits(d decimal.Decimal) int64 {
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func createProduct(artistID string, it CatalogItem) (string, error) {
	pp := &stripe.ProductParams{
		Name: stripe.String(it.Name),
	}
	if it.Description != "" {
		pp.Description = stripe.String(it.Description)
	}
	if it.ImageURL != "" {
		pp.Images = stripe.StringSlice([]string{it.ImageURL})
	}
	pp.AddMetadata("artist_id", artistID)
	pp.AddMetadata("sku", it.SKU)

	prod, err := product.New(pp)
	if err != nil {
		return "", err
	}
	return prod.ID, nil
}

// SyncCatalog creates one Stripe product with a single one-off price per item.
// It stops at the first failure and returns what was created so far; an item
// whose product exists but whose price failed comes back without a PriceID.
func SyncCatalog(key, artistID string, items []CatalogItem) ([]SyncedItem, error) {
	if key == "" {
		return nil, ErrNotConfigured
	}
	stripe.Key = key

	out := make([]SyncedItem, 0, len(items))
	for _, it := range items {
		productID := it.ProductID
		if productID == "" {
			id, err := createProduct(artistID, it)
			if err != nil {
				return out, fmt.Errorf("create product %s: %w", it.SKU, err)
			}
			productID = id
		}

		amount := ToMinorUnits(it.Amount)
		prParams := &stripe.PriceParams{
			Product:    stripe.String(productID),
			Currency:   stripe.String(strings.ToLower(it.Currency)),
			UnitAmount: stripe.Int64(amount),
		}
		prParams.AddMetadata("sku", it.SKU)

		pr, err := price.New(prParams)
		if err != nil {
			out = append(out, SyncedItem{SKU: it.SKU, ProductID: productID, Amount: amount})
			return out, fmt.Errorf("create price %s: %w", it.SKU, err)
		}

		out = append(out, SyncedItem{SKU: it.SKU, ProductID: productID, PriceID: pr.ID, Amount: amount})
	}
	return out, nil
}
