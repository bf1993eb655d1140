package onboarding

import (
	"fmt"

	"onboarding-app/internal/domain/artists"
	"onboarding-app/internal/domain/catalog"
	"onboarding-app/internal/domain/onboarding"
	"onboarding-app/internal/domain/settings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var artistIDConflict = clause.OnConflict{
	Columns:   []clause.Column{{Name: "artist_id"}},
	UpdateAll: true,
}

// upsertArtistByEmail inserts the artist or, when the email is taken,
// overwrites only the given columns. Returns the stored row.
func upsertArtistByEmail(tx *gorm.DB, a *artists.Artist, columns []string) (artists.Artist, error) {
	var stored artists.Artist

	update := make([]string, 0, len(columns)+1)
	for _, col := range columns {
		if col != "email" {
			update = append(update, col)
		}
	}
	update = append(update, "updated_at")

	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns(update),
	}).Create(a).Error; err != nil {
		return stored, err
	}

	err := tx.Where("email = ?", a.Email).First(&stored).Error
	return stored, err
}

func upsertByArtist(tx *gorm.DB, row interface{}) error {
	return tx.Omit(clause.Associations).Clauses(artistIDConflict).Create(row).Error
}

func updateArtistColumns(tx *gorm.DB, artistID string, a artists.Artist, columns []string) error {
	return tx.Model(&artists.Artist{}).
		Where("id = ?", artistID).
		Select(columns).
		Updates(&a).Error
}

func replaceArtworks(tx *gorm.DB, artistID string, rows []catalog.Artwork) error {
	if err := tx.Where("artist_id = ?", artistID).Delete(&catalog.Artwork{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func replaceVariants(tx *gorm.DB, artistID string, rows []catalog.ProductVariant) error {
	if err := tx.Where("artist_id = ?", artistID).Delete(&catalog.ProductVariant{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func upsertPricing(tx *gorm.DB, p settings.Pricing) error {
	retail := p.RetailPrices
	p.RetailPrices = nil

	if err := upsertByArtist(tx, &p); err != nil {
		return err
	}

	var stored settings.Pricing
	if err := tx.Select("id").Where("artist_id = ?", p.ArtistID).First(&stored).Error; err != nil {
		return err
	}

	if err := tx.Where("pricing_id = ?", stored.ID).Delete(&settings.RetailPrice{}).Error; err != nil {
		return err
	}
	if len(retail) == 0 {
		return nil
	}
	for i := range retail {
		retail[i].ID = 0
		retail[i].PricingID = stored.ID
	}
	return tx.Create(&retail).Error
}

// writeSection persists one section of the form for an existing artist.
func writeSection(tx *gorm.DB, f onboarding.Form, sec onboarding.Section, artistID string) error {
	switch sec {
	case onboarding.SectionProfile:
		return updateArtistColumns(tx, artistID, f.ToArtist(), onboarding.ProfileColumns)
	case onboarding.SectionAbout:
		return updateArtistColumns(tx, artistID, f.ToArtist(), onboarding.AboutColumns)
	case onboarding.SectionArtworks:
		return replaceArtworks(tx, artistID, f.ToArtworks(artistID))
	case onboarding.SectionProducts:
		return replaceVariants(tx, artistID, f.ToVariants(artistID))
	case onboarding.SectionPricing:
		return upsertPricing(tx, f.ToPricing(artistID))
	case onboarding.SectionShipping:
		row := f.ToShipping(artistID)
		return upsertByArtist(tx, &row)
	case onboarding.SectionMarketing:
		row := f.ToMarketing(artistID)
		return upsertByArtist(tx, &row)
	case onboarding.SectionOrders:
		row := f.ToOrderSettings(artistID)
		return upsertByArtist(tx, &row)
	}
	return fmt.Errorf("%w: %q", onboarding.ErrUnknownSection, sec)
}
