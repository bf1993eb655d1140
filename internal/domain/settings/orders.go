package settings

import "time"

const (
	FulfillmentPlatform = "platform"
	FulfillmentArtist   = "artist"
)

type OrderSettings struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ArtistID string `gorm:"type:uuid;not null;uniqueIndex:idx_order_settings_artist" json:"artist_id"`

	FulfillmentMethod   string `gorm:"type:varchar(20);not null" json:"fulfillment_method"`
	NotificationEmail   string `gorm:"not null" json:"notification_email"`
	AcceptsCustomOrders bool   `gorm:"not null;default:false" json:"accepts_custom_orders"`
	MaxOrdersPerWeek    int    `gorm:"not null;default:0" json:"max_orders_per_week"`
	ReturnPolicy        string `gorm:"type:text;not null" json:"return_policy"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (OrderSettings) TableName() string { return "order_settings" }
