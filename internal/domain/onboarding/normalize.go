package onboarding

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Input is cleaned once, right after decoding, into the exact form the
// tables hold. Validation then judges what will be stored, and a section
// reads back from the database the way it went in.

// money columns are numeric(_,2)
const moneyScale = 2

func roundMoney(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	r := d.Round(moneyScale)
	return &r
}

func (s *ProfileSection) normalize() {
	s.FirstName = strings.TrimSpace(s.FirstName)
	s.LastName = strings.TrimSpace(s.LastName)
	s.Email = normalizeEmail(s.Email)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Country = strings.TrimSpace(s.Country)
	s.City = strings.TrimSpace(s.City)
	s.Website = strings.TrimSpace(s.Website)
}

func (s *AboutSection) normalize() {
	s.ArtisticStyle = strings.TrimSpace(s.ArtisticStyle)
}

func (s ArtworksSection) normalize() {
	for i := range s {
		a := &s[i]
		a.Title = strings.TrimSpace(a.Title)
		a.ImageURL = strings.TrimSpace(a.ImageURL)
		a.Medium = strings.TrimSpace(a.Medium)
		a.WidthCM = roundMoney(a.WidthCM)
		a.HeightCM = roundMoney(a.HeightCM)
	}
}

func (s ProductsSection) normalize() {
	for i := range s {
		v := &s[i]
		v.ProductType = strings.TrimSpace(v.ProductType)
		v.Size = strings.TrimSpace(v.Size)
		v.Material = strings.TrimSpace(v.Material)
		v.SKU = strings.TrimSpace(v.SKU)
		v.BaseCost = v.BaseCost.Round(moneyScale)
	}
}

func (s *PricingSection) normalize() {
	s.Strategy = strings.TrimSpace(s.Strategy)
	s.Currency = strings.ToUpper(strings.TrimSpace(s.Currency))
	s.MarkupPercent = roundMoney(s.MarkupPercent)
	s.MinimumPrice = roundMoney(s.MinimumPrice)

	if s.RetailPrices == nil {
		return
	}
	prices := make(map[string]decimal.Decimal, len(s.RetailPrices))
	for sku, p := range s.RetailPrices {
		prices[strings.TrimSpace(sku)] = p.Round(moneyScale)
	}
	s.RetailPrices = prices
}

func (s *ShippingSection) normalize() {
	s.ShipsFromCountry = strings.TrimSpace(s.ShipsFromCountry)
	s.DomesticRate = roundMoney(s.DomesticRate)
	s.InternationalRate = roundMoney(s.InternationalRate)
	s.FreeShippingThreshold = roundMoney(s.FreeShippingThreshold)
	if !s.ShipsInternationally {
		s.InternationalRate = nil
	}
}

func (s *MarketingSection) normalize() {
	s.InstagramHandle = strings.TrimPrefix(strings.TrimSpace(s.InstagramHandle), "@")
	for i, tag := range s.Hashtags {
		s.Hashtags[i] = strings.TrimPrefix(strings.TrimSpace(tag), "#")
	}
	s.LaunchDate = strings.TrimSpace(s.LaunchDate)
}

func (s *OrdersSection) normalize() {
	s.FulfillmentMethod = strings.TrimSpace(s.FulfillmentMethod)
	s.NotificationEmail = normalizeEmail(s.NotificationEmail)
	s.ReturnPolicy = strings.TrimSpace(s.ReturnPolicy)
}

// Normalize cleans every section. Apply already does this for the section
// it decodes; call Normalize after assigning sections directly.
func (f *Form) Normalize() {
	f.Profile.normalize()
	f.About.normalize()
	f.Artworks.normalize()
	f.Products.normalize()
	f.Pricing.normalize()
	f.Shipping.normalize()
	f.Marketing.normalize()
	f.Orders.normalize()
}
