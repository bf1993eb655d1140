package settings

import (
	"time"

	"gorm.io/datatypes"
)

type Marketing struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ArtistID string `gorm:"type:uuid;not null;uniqueIndex:idx_marketing_artist" json:"artist_id"`

	InstagramHandle string                      `json:"instagram_handle,omitempty"`
	NewsletterOptIn bool                        `gorm:"not null;default:false" json:"newsletter_opt_in"`
	Channels        datatypes.JSONSlice[string] `json:"channels"`
	Hashtags        datatypes.JSONSlice[string] `json:"hashtags"`
	LaunchDate      *time.Time                  `json:"launch_date,omitempty"`
	FeaturedConsent bool                        `gorm:"not null;default:false" json:"featured_consent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Marketing) TableName() string { return "marketing_settings" }
