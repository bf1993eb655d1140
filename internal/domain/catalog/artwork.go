package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

type Artwork struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ArtistID string `gorm:"type:uuid;not null;index:idx_artworks_artist_sort,priority:1" json:"artist_id"`

	SortIndex int `gorm:"not null;default:0;index:idx_artworks_artist_sort,priority:2" json:"sort_index"`

	Title       string           `gorm:"not null" json:"title"`
	ImageURL    string           `gorm:"not null" json:"image_url"`
	Medium      string           `json:"medium"`
	WidthCM     *decimal.Decimal `gorm:"column:width_cm;type:numeric(8,2)" json:"width_cm,omitempty"`
	HeightCM    *decimal.Decimal `gorm:"column:height_cm;type:numeric(8,2)" json:"height_cm,omitempty"`
	Year        int              `json:"year,omitempty"`
	Description string           `gorm:"type:text" json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
