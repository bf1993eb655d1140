package admin

import (
	"errors"
	"fmt"
	"net/http"

	"onboarding-app/config"
	"onboarding-app/database"
	onboardingapi "onboarding-app/internal/api/onboarding"
	"onboarding-app/internal/app/http/response"
	"onboarding-app/internal/domain/artists"
	"onboarding-app/internal/domain/catalog"
	"onboarding-app/internal/domain/onboarding"
	"onboarding-app/internal/infra/stripecatalog"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// catalogItems prices the variants of an approved artist that do not have
// a Stripe price yet. A product left over from an interrupted sync is reused.
func catalogItems(r onboarding.Records) ([]stripecatalog.CatalogItem, error) {
	if r.Pricing == nil {
		return nil, errors.New("pricing is not configured")
	}
	if len(r.Variants) == 0 {
		return nil, errors.New("no product variants to sync")
	}

	var image string
	if len(r.Artworks) > 0 {
		image = r.Artworks[0].ImageURL
	}

	items := make([]stripecatalog.CatalogItem, 0, len(r.Variants))
	for _, v := range r.Variants {
		if deref(v.StripePriceID) != "" {
			continue
		}
		price, ok := r.Pricing.PriceFor(v.SKU, v.BaseCost)
		if !ok {
			return nil, fmt.Errorf("no retail price for sku %s", v.SKU)
		}
		items = append(items, stripecatalog.CatalogItem{
			ProductID:   deref(v.StripeProductID),
			SKU:         v.SKU,
			Name:        fmt.Sprintf("%s %s (%s)", v.ProductType, v.Size, r.Artist.FullName()),
			Description: v.Material,
			ImageURL:    image,
			Amount:      price,
			Currency:    r.Pricing.Currency,
		})
	}
	return items, nil
}

// SyncStripeCatalog publishes an approved artist's variants as Stripe products.
func SyncStripeCatalog(c *gin.Context) {
	id := c.Param("id")

	records, err := onboardingapi.LoadRecords(database.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(c, "Artist not found")
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if records.Artist.Status != artists.StatusApproved {
		response.Conflict(c, "Only approved artists can be synced")
		return
	}

	items, err := catalogItems(records)
	if err != nil {
		response.Conflict(c, err.Error())
		return
	}

	if len(items) == 0 {
		response.Success(c, http.StatusOK, []stripecatalog.SyncedItem{})
		return
	}

	synced, err := stripecatalog.SyncCatalog(config.STRIPE_SECRET_KEY, id, items)
	if errors.Is(err, stripecatalog.ErrNotConfigured) {
		response.Error(c, http.StatusServiceUnavailable, "Stripe is not configured")
		return
	}

	// keep the ids of whatever was created, even on a partial failure
	if saveErr := database.DB.Transaction(func(tx *gorm.DB) error {
		for _, s := range synced {
			ids := map[string]interface{}{"stripe_product_id": s.ProductID}
			if s.PriceID != "" {
				ids["stripe_price_id"] = s.PriceID
			}
			if err := tx.Model(&catalog.ProductVariant{}).
				Where("artist_id = ? AND sku = ?", id, s.SKU).
				Updates(ids).Error; err != nil {
				return err
			}
		}
		return nil
	}); saveErr != nil {
		log.Error().Err(saveErr).Str("artist_id", id).Msg("store stripe ids")
		response.InternalError(c, saveErr)
		return
	}

	if err != nil {
		log.Error().Err(err).Str("artist_id", id).Int("synced", len(synced)).Msg("stripe catalog sync")
		response.Error(c, http.StatusBadGateway, err.Error())
		return
	}

	log.Info().Str("artist_id", id).Int("products", len(synced)).Msg("stripe catalog synced")
	response.Success(c, http.StatusOK, synced)
}
