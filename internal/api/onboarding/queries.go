package onboarding

import (
	"onboarding-app/internal/domain/artists"
	"onboarding-app/internal/domain/onboarding"
	"onboarding-app/internal/domain/settings"

	"gorm.io/gorm"
)

// findByArtist loads the one-per-artist settings row, nil when absent.
func findByArtist[T any](db *gorm.DB, artistID string) (*T, error) {
	var row T
	res := db.Where("artist_id = ?", artistID).Limit(1).Find(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

// LoadRecords reads every row stored for an artist.
// Returns gorm.ErrRecordNotFound when the artist does not exist.
func LoadRecords(db *gorm.DB, artistID string) (onboarding.Records, error) {
	var r onboarding.Records
	if err := db.First(&r.Artist, "id = ?", artistID).Error; err != nil {
		return r, err
	}

	if err := db.Where("artist_id = ?", artistID).Order("sort_index ASC").Find(&r.Artworks).Error; err != nil {
		return r, err
	}
	if err := db.Where("artist_id = ?", artistID).Order("sort_index ASC").Find(&r.Variants).Error; err != nil {
		return r, err
	}

	var err error
	withPrices := db.Preload("RetailPrices", func(db *gorm.DB) *gorm.DB { return db.Order("sku ASC") })
	if r.Pricing, err = findByArtist[settings.Pricing](withPrices, artistID); err != nil {
		return r, err
	}
	if r.Shipping, err = findByArtist[settings.Shipping](db, artistID); err != nil {
		return r, err
	}
	if r.Marketing, err = findByArtist[settings.Marketing](db, artistID); err != nil {
		return r, err
	}
	if r.Orders, err = findByArtist[settings.OrderSettings](db, artistID); err != nil {
		return r, err
	}
	return r, nil
}

func findArtistByEmail(db *gorm.DB, email string) (*artists.Artist, error) {
	var a artists.Artist
	res := db.Where("email = ?", email).Limit(1).Find(&a)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &a, nil
}
