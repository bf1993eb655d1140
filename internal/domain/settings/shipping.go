package settings

import (
	"time"

	"github.com/shopspring/decimal"
)

type Shipping struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ArtistID string `gorm:"type:uuid;not null;uniqueIndex:idx_shipping_artist" json:"artist_id"`

	ShipsFromCountry      string           `gorm:"not null" json:"ships_from_country"`
	ProcessingDays        int              `gorm:"not null" json:"processing_days"`
	DomesticRate          *decimal.Decimal `gorm:"type:numeric(10,2)" json:"domestic_rate"`
	ShipsInternationally  bool             `gorm:"not null;default:false" json:"ships_internationally"`
	InternationalRate     *decimal.Decimal `gorm:"type:numeric(10,2)" json:"international_rate,omitempty"`
	FreeShippingThreshold *decimal.Decimal `gorm:"type:numeric(10,2)" json:"free_shipping_threshold,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Shipping) TableName() string { return "shipping_configs" }
