package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductVariant struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ArtistID string `gorm:"type:uuid;not null;index" json:"artist_id"`

	SortIndex   int             `gorm:"not null;default:0" json:"sort_index"`
	ProductType string          `gorm:"not null" json:"product_type"`
	Size        string          `gorm:"not null" json:"size"`
	Material    string          `json:"material,omitempty"`
	SKU         string          `gorm:"column:sku;not null;index" json:"sku"`
	BaseCost    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"base_cost"`

	// filled once the catalog is pushed to Stripe
	StripeProductID *string `json:"stripe_product_id,omitempty"`
	StripePriceID   *string `json:"stripe_price_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
