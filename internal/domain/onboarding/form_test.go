package onboarding

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboarding-app/internal/domain/artists"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func completeForm() Form {
	return Form{
		Profile: ProfileSection{
			FirstName: "Ada",
			LastName:  "Lovegood",
			Email:     "ada@example.com",
			Phone:     "+49 30 1234567",
			Country:   "DE",
			City:      "Berlin",
			Website:   "https://ada.example.com",
		},
		About: AboutSection{
			Bio:           strings.Repeat("b", MinBioLength),
			ArtisticStyle: "Abstract watercolour",
			YearsActive:   7,
			SocialLinks:   map[string]string{"instagram": "https://instagram.com/ada"},
		},
		Artworks: ArtworksSection{{
			Title:    "Blue Hour",
			ImageURL: "https://cdn.example.com/blue-hour.jpg",
			Medium:   "Watercolour",
			WidthCM:  dec("30"),
			HeightCM: dec("40"),
			Year:     2023,
		}},
		Products: ProductsSection{
			{ProductType: "print", Size: "A4", Material: "matte", SKU: "BH-A4", BaseCost: *dec("12.50")},
			{ProductType: "print", Size: "A3", Material: "matte", SKU: "BH-A3", BaseCost: *dec("18")},
		},
		Pricing: PricingSection{Strategy: "markup", MarkupPercent: dec("60"), Currency: "eur"},
		Shipping: ShippingSection{
			ShipsFromCountry: "DE",
			ProcessingDays:   3,
			DomesticRate:     dec("4.90"),
		},
		Marketing: MarketingSection{
			InstagramHandle: "@ada.paints",
			Channels:        []string{"instagram", "newsletter"},
			Hashtags:        []string{"#watercolour", "art"},
			LaunchDate:      "2026-11-01",
		},
		Orders: OrdersSection{
			FulfillmentMethod: "platform",
			NotificationEmail: "orders@example.com",
			MaxOrdersPerWeek:  20,
			ReturnPolicy:      "Returns accepted within 14 days.",
		},
	}
}

func TestCompleteFormValidates(t *testing.T) {
	f := completeForm()
	require.NoError(t, f.Validate())

	p := f.Progress()
	assert.Equal(t, 8, p.Total)
	assert.Equal(t, 8, p.Completed)
	assert.Equal(t, 100, p.Percent)
	assert.Equal(t, 8, p.CurrentStep)
	assert.True(t, p.CanSubmit)
}

func TestBioLengthBoundary(t *testing.T) {
	f := completeForm()

	f.About.Bio = strings.Repeat("x", MinBioLength-1)
	assert.False(t, f.Complete(SectionAbout), "49 characters must not complete the section")

	f.About.Bio = strings.Repeat("x", MinBioLength)
	assert.True(t, f.Complete(SectionAbout), "50 characters completes the section")

	// runes, not bytes
	f.About.Bio = strings.Repeat("é", MinBioLength-1)
	assert.False(t, f.Complete(SectionAbout))
}

func TestProfileRequiresEmail(t *testing.T) {
	f := completeForm()
	f.Profile.Email = ""
	err := f.ValidateSection(SectionProfile)
	require.Error(t, err)

	var fields validation.Errors
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "email")

	f.Profile.Email = "not-an-email"
	assert.False(t, f.Complete(SectionProfile))
}

func TestArtworksNeedAtLeastOne(t *testing.T) {
	f := completeForm()
	f.Artworks = nil
	assert.False(t, f.Complete(SectionArtworks))

	f.Artworks = ArtworksSection{{Title: "Untitled", ImageURL: "nope", Medium: "Oil"}}
	err := f.ValidateSection(SectionArtworks)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "image")
}

func TestProductsRejectDuplicateSKU(t *testing.T) {
	f := completeForm()
	f.Products[1].SKU = f.Products[0].SKU
	err := f.ValidateSection(SectionProducts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestProductsRequirePositiveCost(t *testing.T) {
	f := completeForm()
	f.Products[0].BaseCost = decimal.Zero
	assert.False(t, f.Complete(SectionProducts))
}

func TestPricingRules(t *testing.T) {
	f := completeForm()

	f.Pricing.MarkupPercent = nil
	assert.False(t, f.Complete(SectionPricing), "markup strategy needs a percentage")

	f.Pricing.MarkupPercent = dec("500.01")
	assert.False(t, f.Complete(SectionPricing))

	f.Pricing.MarkupPercent = dec("500")
	assert.True(t, f.Complete(SectionPricing))

	f.Pricing = PricingSection{
		Strategy:     "fixed",
		Currency:     "EUR",
		RetailPrices: map[string]decimal.Decimal{"BH-A4": *dec("30")},
	}
	err := f.ValidateSection(SectionPricing)
	require.Error(t, err, "fixed pricing must cover BH-A3")
	assert.Contains(t, err.Error(), "BH-A3")

	f.Pricing.RetailPrices["BH-A3"] = *dec("45")
	assert.True(t, f.Complete(SectionPricing))

	f.Pricing.Currency = "EURO"
	assert.False(t, f.Complete(SectionPricing))
}

func TestShippingInternationalRate(t *testing.T) {
	f := completeForm()
	f.Shipping.ShipsInternationally = true
	assert.False(t, f.Complete(SectionShipping))

	f.Shipping.InternationalRate = dec("15")
	assert.True(t, f.Complete(SectionShipping))

	f.Shipping.DomesticRate = nil
	assert.False(t, f.Complete(SectionShipping))

	f.Shipping.DomesticRate = dec("0")
	assert.True(t, f.Complete(SectionShipping), "free domestic shipping is allowed")

	f.Shipping.ProcessingDays = 0
	assert.False(t, f.Complete(SectionShipping))
}

func TestMarketingRules(t *testing.T) {
	f := completeForm()
	f.Marketing.Channels = []string{"billboard"}
	assert.False(t, f.Complete(SectionMarketing))

	f.Marketing.Channels = []string{"tiktok"}
	f.Marketing.LaunchDate = "01/11/2026"
	assert.False(t, f.Complete(SectionMarketing))
}

func TestOrdersRules(t *testing.T) {
	f := completeForm()
	f.Orders.FulfillmentMethod = "dropship"
	assert.False(t, f.Complete(SectionOrders))

	f.Orders.FulfillmentMethod = "artist"
	f.Orders.ReturnPolicy = ""
	assert.False(t, f.Complete(SectionOrders))
}

func TestApplyReplacesSection(t *testing.T) {
	f := completeForm()

	err := f.Apply(SectionProfile, json.RawMessage(`{"first_name":"Grace","email":"grace@example.com"}`))
	require.NoError(t, err)

	assert.Equal(t, "Grace", f.Profile.FirstName)
	assert.Empty(t, f.Profile.LastName, "missing fields are reset")
	assert.Equal(t, "Watercolour", f.Artworks[0].Medium, "other sections untouched")
}

func TestApplyRejectsBadPayload(t *testing.T) {
	f := completeForm()
	err := f.Apply(SectionShipping, json.RawMessage(`{"processing_days":"soon"}`))
	require.Error(t, err)
	assert.Equal(t, 3, f.Shipping.ProcessingDays, "failed decode leaves the section alone")

	err = f.Apply(Section("gallery"), json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestApplyAllOrdersSections(t *testing.T) {
	var f Form
	applied, err := f.ApplyAll(map[string]json.RawMessage{
		"orders":  json.RawMessage(`{"fulfillment_method":"artist"}`),
		"Profile": json.RawMessage(`{"first_name":"Ada"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, []Section{SectionProfile, SectionOrders}, applied)

	_, err = f.ApplyAll(map[string]json.RawMessage{"bogus": json.RawMessage(`{}`)})
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestProgressCurrentStep(t *testing.T) {
	var f Form
	p := f.Progress()
	assert.Equal(t, 0, p.Completed)
	assert.Equal(t, 1, p.CurrentStep)
	assert.False(t, p.CanSubmit)

	f = completeForm()
	f.Products = nil
	p = f.Progress()
	assert.Equal(t, 4, p.CurrentStep)
	assert.False(t, p.Sections[3].Complete)
	assert.NotNil(t, p.Sections[3].Errors)
	// fixed pricing is not in use, so pricing does not depend on products here
	assert.True(t, p.Sections[4].Complete)
	assert.Equal(t, 7, p.Completed)
}

func TestMarkSubmitted(t *testing.T) {
	f := completeForm()
	f.Status = artists.StatusDraft
	require.NoError(t, f.MarkSubmitted())
	assert.Equal(t, artists.StatusSubmitted, f.Status)

	err := f.MarkSubmitted()
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	g := completeForm()
	g.Orders = OrdersSection{}
	err = g.MarkSubmitted()
	assert.ErrorIs(t, err, ErrIncomplete)

	var fields validation.Errors
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "orders")
}

func TestParseSection(t *testing.T) {
	sec, err := ParseSection(" Pricing ")
	require.NoError(t, err)
	assert.Equal(t, SectionPricing, sec)
	assert.Equal(t, 5, sec.Step())

	_, err = ParseSection("gallery")
	assert.ErrorIs(t, err, ErrUnknownSection)
}
