package admin

import (
	"time"

	"onboarding-app/internal/domain/artists"
	"onboarding-app/internal/domain/onboarding"

	"github.com/shopspring/decimal"
)

type ArtistRow struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Country     string         `json:"country"`
	City        string         `json:"city"`
	Status      artists.Status `json:"status"`
	CurrentStep int            `json:"current_step"`
	SubmittedAt *time.Time     `json:"submitted_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

type PricePreview struct {
	SKU         string           `json:"sku"`
	BaseCost    decimal.Decimal  `json:"base_cost"`
	RetailPrice *decimal.Decimal `json:"retail_price"`
	Currency    string           `json:"currency,omitempty"`
}

type ArtistDetail struct {
	onboarding.Records
	Progress onboarding.Progress `json:"progress"`
	Prices   []PricePreview      `json:"prices"`
}

type StatusRequest struct {
	Status artists.Status `json:"status"`
	Note   string         `json:"note"`
}

type Stats struct {
	Total               int64                    `json:"total"`
	ByStatus            map[artists.Status]int64 `json:"by_status"`
	SubmittedLast30Days int64                    `json:"submitted_last_30_days"`
}

func toArtistRow(a artists.Artist) ArtistRow {
	return ArtistRow{
		ID:          a.ID,
		Name:        a.FullName(),
		Email:       a.Email,
		Country:     a.Country,
		City:        a.City,
		Status:      a.Status,
		CurrentStep: a.CurrentStep,
		SubmittedAt: a.SubmittedAt,
		CreatedAt:   a.CreatedAt,
	}
}

func pricePreview(r onboarding.Records) []PricePreview {
	out := make([]PricePreview, 0, len(r.Variants))
	for _, v := range r.Variants {
		pp := PricePreview{SKU: v.SKU, BaseCost: v.BaseCost}
		if r.Pricing != nil {
			pp.Currency = r.Pricing.Currency
			if price, ok := r.Pricing.PriceFor(v.SKU, v.BaseCost); ok {
				pp.RetailPrice = &price
			}
		}
		out = append(out, pp)
	}
	return out
}
