package onboarding

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"onboarding-app/internal/domain/artists"
	"onboarding-app/internal/domain/catalog"
	"onboarding-app/internal/domain/settings"
)

// Column sets written by the two artist-backed sections.
var (
	ProfileColumns = []string{"first_name", "last_name", "email", "phone", "country", "city", "website"}
	AboutColumns   = []string{"bio", "artistic_style", "years_active", "social_links"}
)

// Records is everything stored for one applicant.
type Records struct {
	Artist    artists.Artist           `json:"artist"`
	Artworks  []catalog.Artwork        `json:"artworks"`
	Variants  []catalog.ProductVariant `json:"product_variants"`
	Pricing   *settings.Pricing        `json:"pricing"`
	Shipping  *settings.Shipping       `json:"shipping"`
	Marketing *settings.Marketing      `json:"marketing"`
	Orders    *settings.OrderSettings  `json:"order_settings"`
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ToArtist maps the profile and about sections onto an artist row.
// ID, status and timestamps are left to the caller.
func (f Form) ToArtist() artists.Artist {
	a := artists.Artist{
		FirstName:     strings.TrimSpace(f.Profile.FirstName),
		LastName:      strings.TrimSpace(f.Profile.LastName),
		Email:         normalizeEmail(f.Profile.Email),
		Phone:         strings.TrimSpace(f.Profile.Phone),
		Country:       strings.TrimSpace(f.Profile.Country),
		City:          strings.TrimSpace(f.Profile.City),
		Website:       strings.TrimSpace(f.Profile.Website),
		Bio:           f.About.Bio,
		ArtisticStyle: strings.TrimSpace(f.About.ArtisticStyle),
		YearsActive:   f.About.YearsActive,
	}
	if len(f.About.SocialLinks) > 0 {
		a.SocialLinks = datatypes.JSONMap{}
		for k, v := range f.About.SocialLinks {
			a.SocialLinks[k] = v
		}
	}
	return a
}

func (f Form) ToArtworks(artistID string) []catalog.Artwork {
	out := make([]catalog.Artwork, 0, len(f.Artworks))
	for i, in := range f.Artworks {
		out = append(out, catalog.Artwork{
			ArtistID:    artistID,
			SortIndex:   i,
			Title:       strings.TrimSpace(in.Title),
			ImageURL:    strings.TrimSpace(in.ImageURL),
			Medium:      strings.TrimSpace(in.Medium),
			WidthCM:     in.WidthCM,
			HeightCM:    in.HeightCM,
			Year:        in.Year,
			Description: in.Description,
		})
	}
	return out
}

func (f Form) ToVariants(artistID string) []catalog.ProductVariant {
	out := make([]catalog.ProductVariant, 0, len(f.Products))
	for i, in := range f.Products {
		out = append(out, catalog.ProductVariant{
			ArtistID:    artistID,
			SortIndex:   i,
			ProductType: strings.TrimSpace(in.ProductType),
			Size:        strings.TrimSpace(in.Size),
			Material:    strings.TrimSpace(in.Material),
			SKU:         strings.TrimSpace(in.SKU),
			BaseCost:    in.BaseCost,
		})
	}
	return out
}

// ToPricing maps the pricing section. Retail prices come out sorted by SKU.
func (f Form) ToPricing(artistID string) settings.Pricing {
	p := settings.Pricing{
		ArtistID:      artistID,
		Strategy:      f.Pricing.Strategy,
		MarkupPercent: f.Pricing.MarkupPercent,
		Currency:      strings.ToUpper(strings.TrimSpace(f.Pricing.Currency)),
		MinimumPrice:  f.Pricing.MinimumPrice,
	}

	skus := make([]string, 0, len(f.Pricing.RetailPrices))
	for sku := range f.Pricing.RetailPrices {
		skus = append(skus, sku)
	}
	sort.Strings(skus)
	for _, sku := range skus {
		p.RetailPrices = append(p.RetailPrices, settings.RetailPrice{SKU: sku, Price: f.Pricing.RetailPrices[sku]})
	}
	return p
}

func (f Form) ToShipping(artistID string) settings.Shipping {
	s := settings.Shipping{
		ArtistID:              artistID,
		ShipsFromCountry:      strings.TrimSpace(f.Shipping.ShipsFromCountry),
		ProcessingDays:        f.Shipping.ProcessingDays,
		ShipsInternationally:  f.Shipping.ShipsInternationally,
		DomesticRate:          f.Shipping.DomesticRate,
		FreeShippingThreshold: f.Shipping.FreeShippingThreshold,
	}
	if f.Shipping.ShipsInternationally {
		s.InternationalRate = f.Shipping.InternationalRate
	}
	return s
}

func (f Form) ToMarketing(artistID string) settings.Marketing {
	m := settings.Marketing{
		ArtistID:        artistID,
		InstagramHandle: strings.TrimPrefix(strings.TrimSpace(f.Marketing.InstagramHandle), "@"),
		NewsletterOptIn: f.Marketing.NewsletterOptIn,
		Channels:        datatypes.JSONSlice[string](f.Marketing.Channels),
		FeaturedConsent: f.Marketing.FeaturedConsent,
	}
	for _, tag := range f.Marketing.Hashtags {
		m.Hashtags = append(m.Hashtags, strings.TrimPrefix(strings.TrimSpace(tag), "#"))
	}
	if d, err := time.Parse(launchDateLayout, f.Marketing.LaunchDate); err == nil {
		m.LaunchDate = &d
	}
	return m
}

func (f Form) ToOrderSettings(artistID string) settings.OrderSettings {
	return settings.OrderSettings{
		ArtistID:            artistID,
		FulfillmentMethod:   f.Orders.FulfillmentMethod,
		NotificationEmail:   normalizeEmail(f.Orders.NotificationEmail),
		AcceptsCustomOrders: f.Orders.AcceptsCustomOrders,
		MaxOrdersPerWeek:    f.Orders.MaxOrdersPerWeek,
		ReturnPolicy:        strings.TrimSpace(f.Orders.ReturnPolicy),
	}
}

// FormFromRecords rebuilds the wizard state from stored rows.
func FormFromRecords(r Records) Form {
	a := r.Artist
	f := Form{
		ArtistID: a.ID,
		Status:   a.Status,
		Profile: ProfileSection{
			FirstName: a.FirstName,
			LastName:  a.LastName,
			Email:     a.Email,
			Phone:     a.Phone,
			Country:   a.Country,
			City:      a.City,
			Website:   a.Website,
		},
		About: AboutSection{
			Bio:           a.Bio,
			ArtisticStyle: a.ArtisticStyle,
			YearsActive:   a.YearsActive,
		},
	}
	if len(a.SocialLinks) > 0 {
		f.About.SocialLinks = make(map[string]string, len(a.SocialLinks))
		for k, v := range a.SocialLinks {
			if s, ok := v.(string); ok {
				f.About.SocialLinks[k] = s
			}
		}
	}

	for _, aw := range r.Artworks {
		f.Artworks = append(f.Artworks, ArtworkInput{
			Title:       aw.Title,
			ImageURL:    aw.ImageURL,
			Medium:      aw.Medium,
			WidthCM:     aw.WidthCM,
			HeightCM:    aw.HeightCM,
			Year:        aw.Year,
			Description: aw.Description,
		})
	}
	for _, v := range r.Variants {
		f.Products = append(f.Products, VariantInput{
			ProductType: v.ProductType,
			Size:        v.Size,
			Material:    v.Material,
			SKU:         v.SKU,
			BaseCost:    v.BaseCost,
		})
	}

	if p := r.Pricing; p != nil {
		f.Pricing = PricingSection{
			Strategy:      p.Strategy,
			MarkupPercent: p.MarkupPercent,
			Currency:      p.Currency,
			MinimumPrice:  p.MinimumPrice,
		}
		if len(p.RetailPrices) > 0 {
			f.Pricing.RetailPrices = make(map[string]decimal.Decimal, len(p.RetailPrices))
			for _, rp := range p.RetailPrices {
				f.Pricing.RetailPrices[rp.SKU] = rp.Price
			}
		}
	}

	if s := r.Shipping; s != nil {
		f.Shipping = ShippingSection{
			ShipsFromCountry:      s.ShipsFromCountry,
			ProcessingDays:        s.ProcessingDays,
			DomesticRate:          s.DomesticRate,
			ShipsInternationally:  s.ShipsInternationally,
			InternationalRate:     s.InternationalRate,
			FreeShippingThreshold: s.FreeShippingThreshold,
		}
	}

	if m := r.Marketing; m != nil {
		f.Marketing = MarketingSection{
			InstagramHandle: m.InstagramHandle,
			NewsletterOptIn: m.NewsletterOptIn,
			Channels:        []string(m.Channels),
			Hashtags:        []string(m.Hashtags),
			FeaturedConsent: m.FeaturedConsent,
		}
		if m.LaunchDate != nil {
			f.Marketing.LaunchDate = m.LaunchDate.UTC().Format(launchDateLayout)
		}
	}

	if o := r.Orders; o != nil {
		f.Orders = OrdersSection{
			FulfillmentMethod:   o.FulfillmentMethod,
			NotificationEmail:   o.NotificationEmail,
			AcceptsCustomOrders: o.AcceptsCustomOrders,
			MaxOrdersPerWeek:    o.MaxOrdersPerWeek,
			ReturnPolicy:        o.ReturnPolicy,
		}
	}

	return f
}
