package settings

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StrategyMarkup = "markup"
	StrategyFixed  = "fixed"
)

type Pricing struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ArtistID string `gorm:"type:uuid;not null;uniqueIndex:idx_pricing_artist" json:"artist_id"`

	Strategy      string           `gorm:"type:varchar(20);not null" json:"strategy"`
	MarkupPercent *decimal.Decimal `gorm:"type:numeric(6,2)" json:"markup_percent,omitempty"`
	Currency      string           `gorm:"type:varchar(3);not null" json:"currency"`
	MinimumPrice  *decimal.Decimal `gorm:"type:numeric(10,2)" json:"minimum_price,omitempty"`

	RetailPrices []RetailPrice `gorm:"foreignKey:PricingID;constraint:OnDelete:CASCADE;" json:"retail_prices,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Pricing) TableName() string { return "pricing" }

type RetailPrice struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	PricingID uint            `gorm:"not null;uniqueIndex:idx_retail_prices_sku,priority:1" json:"-"`
	SKU       string          `gorm:"column:sku;not null;uniqueIndex:idx_retail_prices_sku,priority:2" json:"sku"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
}
