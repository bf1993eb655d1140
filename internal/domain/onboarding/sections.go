package onboarding

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"

	"onboarding-app/internal/domain/settings"
)

var (
	phoneRe     = regexp.MustCompile(`^\+?[0-9 ()\-]{7,20}$`)
	currencyRe  = regexp.MustCompile(`^[A-Za-z]{3}$`)
	instagramRe = regexp.MustCompile(`^@?[A-Za-z0-9._]{1,30}$`)
	hashtagRe   = regexp.MustCompile(`^#?[\p{L}\p{N}_]+$`)
)

// Channels the marketing team can promote an artist on.
var MarketingChannels = []interface{}{"instagram", "facebook", "tiktok", "pinterest", "newsletter", "website"}

const (
	launchDateLayout = "2006-01-02"

	MinBioLength = 50
	MaxBioLength = 2000
	MaxArtworks  = 50
	MaxVariants  = 100
	MaxHashtags  = 30
)

/* ---------- 1. profile ---------- */

type ProfileSection struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Country   string `json:"country"`
	City      string `json:"city"`
	Website   string `json:"website"`
}

func (s ProfileSection) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.FirstName, validation.Required.Error("first name is required"), validation.Length(1, 100)),
		validation.Field(&s.LastName, validation.Required.Error("last name is required"), validation.Length(1, 100)),
		validation.Field(&s.Email,
			validation.Required.Error("email is required"),
			is.EmailFormat.Error("invalid email format"),
			validation.Length(5, 255),
		),
		validation.Field(&s.Phone, validation.When(s.Phone != "",
			validation.Match(phoneRe).Error("invalid phone number"),
		)),
		validation.Field(&s.Country, validation.Required.Error("country is required"), validation.Length(2, 56)),
		validation.Field(&s.City, validation.Length(0, 100)),
		validation.Field(&s.Website, validation.When(s.Website != "", is.URL.Error("website must be a valid URL"))),
	)
}

/* ---------- 2. about ---------- */

type AboutSection struct {
	Bio           string            `json:"bio"`
	ArtisticStyle string            `json:"artistic_style"`
	YearsActive   int               `json:"years_active"`
	SocialLinks   map[string]string `json:"social_links,omitempty"`
}

func (s AboutSection) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Bio,
			validation.Required.Error("bio is required"),
			validation.Length(MinBioLength, MaxBioLength).Error("bio must be between 50 and 2000 characters"),
		),
		validation.Field(&s.ArtisticStyle, validation.Required.Error("artistic style is required"), validation.Length(1, 120)),
		validation.Field(&s.YearsActive, validation.Min(0), validation.Max(100)),
		validation.Field(&s.SocialLinks, validation.Each(is.URL.Error("must be a valid URL"))),
	)
}

/* ---------- 3. artworks ---------- */

type ArtworkInput struct {
	Title       string           `json:"title"`
	ImageURL    string           `json:"image_url"`
	Medium      string           `json:"medium"`
	WidthCM     *decimal.Decimal `json:"width_cm,omitempty"`
	HeightCM    *decimal.Decimal `json:"height_cm,omitempty"`
	Year        int              `json:"year,omitempty"`
	Description string           `json:"description,omitempty"`
}

func (a ArtworkInput) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Title, validation.Required.Error("title is required"), validation.Length(1, 200)),
		validation.Field(&a.ImageURL, validation.Required.Error("image is required"), is.URL.Error("image must be a valid URL")),
		validation.Field(&a.Medium, validation.Required.Error("medium is required")),
		validation.Field(&a.WidthCM, validation.By(optionalPositive)),
		validation.Field(&a.HeightCM, validation.By(optionalPositive)),
		validation.Field(&a.Year, validation.When(a.Year != 0, validation.Min(1800), validation.Max(2100))),
		validation.Field(&a.Description, validation.Length(0, 2000)),
	)
}

type ArtworksSection []ArtworkInput

func (s ArtworksSection) Validate() error {
	return validation.Validate([]ArtworkInput(s),
		validation.Required.Error("at least one artwork is required"),
		validation.Length(1, MaxArtworks),
	)
}

/* ---------- 4. products ---------- */

type VariantInput struct {
	ProductType string          `json:"product_type"`
	Size        string          `json:"size"`
	Material    string          `json:"material,omitempty"`
	SKU         string          `json:"sku"`
	BaseCost    decimal.Decimal `json:"base_cost"`
}

func (v VariantInput) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.ProductType, validation.Required.Error("product type is required")),
		validation.Field(&v.Size, validation.Required.Error("size is required")),
		validation.Field(&v.SKU, validation.Required.Error("sku is required"), validation.Length(1, 64)),
		validation.Field(&v.BaseCost, validation.By(positive)),
	)
}

type ProductsSection []VariantInput

func (s ProductsSection) Validate() error {
	if err := validation.Validate([]VariantInput(s),
		validation.Required.Error("at least one product variant is required"),
		validation.Length(1, MaxVariants),
	); err != nil {
		return err
	}

	seen := make(map[string]int, len(s))
	errs := validation.Errors{}
	for i, v := range s {
		if first, dup := seen[strings.TrimSpace(v.SKU)]; dup {
			errs[itoa(i)] = validation.Errors{"sku": validation.NewError("validation_sku_duplicate", "duplicate of variant "+itoa(first))}
			continue
		}
		seen[strings.TrimSpace(v.SKU)] = i
	}
	return errs.Filter()
}

// SKUs returns the variant SKUs in form order.
func (s ProductsSection) SKUs() []string {
	out := make([]string, 0, len(s))
	for _, v := range s {
		out = append(out, v.SKU)
	}
	return out
}

/* ---------- 5. pricing ---------- */

type PricingSection struct {
	Strategy      string                     `json:"strategy"`
	MarkupPercent *decimal.Decimal           `json:"markup_percent,omitempty"`
	Currency      string                     `json:"currency"`
	MinimumPrice  *decimal.Decimal           `json:"minimum_price,omitempty"`
	RetailPrices  map[string]decimal.Decimal `json:"retail_prices,omitempty"`
}

func (s PricingSection) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Strategy,
			validation.Required.Error("pricing strategy is required"),
			validation.In(settings.StrategyMarkup, settings.StrategyFixed).Error("strategy must be markup or fixed"),
		),
		validation.Field(&s.MarkupPercent,
			validation.When(s.Strategy == settings.StrategyMarkup, validation.NotNil.Error("markup percent is required")),
			validation.By(markupRange),
		),
		validation.Field(&s.Currency,
			validation.Required.Error("currency is required"),
			validation.Match(currencyRe).Error("currency must be a 3-letter ISO code"),
		),
		validation.Field(&s.MinimumPrice, validation.By(optionalNonNegative)),
		validation.Field(&s.RetailPrices, validation.Each(validation.By(positive))),
	)
}

// validateAgainst checks that a fixed price list covers every product SKU.
func (s PricingSection) validateAgainst(products ProductsSection) error {
	if s.Strategy != settings.StrategyFixed {
		return nil
	}
	errs := validation.Errors{}
	for _, sku := range products.SKUs() {
		if _, ok := s.RetailPrices[sku]; !ok {
			errs[sku] = validation.NewError("validation_price_missing", "retail price is required")
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return validation.Errors{"retail_prices": errs}
}

/* ---------- 6. shipping ---------- */

type ShippingSection struct {
	ShipsFromCountry      string           `json:"ships_from_country"`
	ProcessingDays        int              `json:"processing_days"`
	DomesticRate          *decimal.Decimal `json:"domestic_rate"`
	ShipsInternationally  bool             `json:"ships_internationally"`
	InternationalRate     *decimal.Decimal `json:"international_rate,omitempty"`
	FreeShippingThreshold *decimal.Decimal `json:"free_shipping_threshold,omitempty"`
}

func (s ShippingSection) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.ShipsFromCountry, validation.Required.Error("origin country is required")),
		validation.Field(&s.ProcessingDays,
			validation.Required.Error("processing time is required"),
			validation.Min(1), validation.Max(60),
		),
		validation.Field(&s.DomesticRate, validation.NotNil.Error("domestic rate is required"), validation.By(optionalNonNegative)),
		validation.Field(&s.InternationalRate,
			validation.When(s.ShipsInternationally, validation.NotNil.Error("international rate is required")),
			validation.By(optionalNonNegative),
		),
		validation.Field(&s.FreeShippingThreshold, validation.By(optionalPositive)),
	)
}

/* ---------- 7. marketing ---------- */

type MarketingSection struct {
	InstagramHandle string   `json:"instagram_handle,omitempty"`
	NewsletterOptIn bool     `json:"newsletter_opt_in"`
	Channels        []string `json:"channels"`
	Hashtags        []string `json:"hashtags,omitempty"`
	LaunchDate      string   `json:"launch_date,omitempty"` // YYYY-MM-DD
	FeaturedConsent bool     `json:"featured_consent"`
}

func (s MarketingSection) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.InstagramHandle, validation.When(s.InstagramHandle != "",
			validation.Match(instagramRe).Error("invalid instagram handle"),
		)),
		validation.Field(&s.Channels,
			validation.Required.Error("pick at least one promotion channel"),
			validation.Each(validation.In(MarketingChannels...).Error("unknown channel")),
		),
		validation.Field(&s.Hashtags,
			validation.Length(0, MaxHashtags),
			validation.Each(validation.Match(hashtagRe).Error("invalid hashtag")),
		),
		validation.Field(&s.LaunchDate, validation.When(s.LaunchDate != "",
			validation.Date(launchDateLayout).Error("launch date must be YYYY-MM-DD"),
		)),
	)
}

/* ---------- 8. orders ---------- */

type OrdersSection struct {
	FulfillmentMethod   string `json:"fulfillment_method"`
	NotificationEmail   string `json:"notification_email"`
	AcceptsCustomOrders bool   `json:"accepts_custom_orders"`
	MaxOrdersPerWeek    int    `json:"max_orders_per_week"`
	ReturnPolicy        string `json:"return_policy"`
}

func (s OrdersSection) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.FulfillmentMethod,
			validation.Required.Error("fulfillment method is required"),
			validation.In(settings.FulfillmentPlatform, settings.FulfillmentArtist).Error("fulfillment must be platform or artist"),
		),
		validation.Field(&s.NotificationEmail,
			validation.Required.Error("notification email is required"),
			is.EmailFormat.Error("invalid email format"),
		),
		validation.Field(&s.MaxOrdersPerWeek, validation.Min(0), validation.Max(1000)),
		validation.Field(&s.ReturnPolicy,
			validation.Required.Error("return policy is required"),
			validation.Length(10, 2000),
		),
	)
}
