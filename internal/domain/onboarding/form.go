package onboarding

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"onboarding-app/internal/domain/artists"
	"onboarding-app/internal/domain/settings"
)

var (
	ErrUnknownSection   = errors.New("unknown section")
	ErrAlreadySubmitted = errors.New("application already submitted")
	ErrIncomplete       = errors.New("application is incomplete")
)

type Section string

const (
	SectionProfile   Section = "profile"
	SectionAbout     Section = "about"
	SectionArtworks  Section = "artworks"
	SectionProducts  Section = "products"
	SectionPricing   Section = "pricing"
	SectionShipping  Section = "shipping"
	SectionMarketing Section = "marketing"
	SectionOrders    Section = "orders"
)

// Sections lists the wizard steps in display order. Step numbers are 1-based.
var Sections = []Section{
	SectionProfile,
	SectionAbout,
	SectionArtworks,
	SectionProducts,
	SectionPricing,
	SectionShipping,
	SectionMarketing,
	SectionOrders,
}

func ParseSection(s string) (Section, error) {
	key := Section(strings.ToLower(strings.TrimSpace(s)))
	for _, sec := range Sections {
		if sec == key {
			return sec, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
}

func (s Section) Step() int {
	for i, sec := range Sections {
		if sec == s {
			return i + 1
		}
	}
	return 0
}

// Form is the whole onboarding application as the wizard holds it.
type Form struct {
	ArtistID string         `json:"artist_id,omitempty"`
	Status   artists.Status `json:"status,omitempty"`

	Profile   ProfileSection   `json:"profile"`
	About     AboutSection     `json:"about"`
	Artworks  ArtworksSection  `json:"artworks"`
	Products  ProductsSection  `json:"products"`
	Pricing   PricingSection   `json:"pricing"`
	Shipping  ShippingSection  `json:"shipping"`
	Marketing MarketingSection `json:"marketing"`
	Orders    OrdersSection    `json:"orders"`
}

// Apply replaces one section with the decoded and normalized payload.
// Fields missing from the payload are reset, not merged.
func (f *Form) Apply(section Section, raw json.RawMessage) error {
	var err error
	switch section {
	case SectionProfile:
		var v ProfileSection
		if err = json.Unmarshal(raw, &v); err == nil {
			v.normalize()
			f.Profile = v
		}
	case SectionAbout:
		var v AboutSection
		if err = json.Unmarshal(raw, &v); err == nil {
			v.normalize()
			f.About = v
		}
	case SectionArtworks:
		var v ArtworksSection
		if err = json.Unmarshal(raw, &v); err == nil {
			v.normalize()
			f.Artworks = v
		}
	case SectionProducts:
		var v ProductsSection
		if err = json.Unmarshal(raw, &v); err == nil {
			v.normalize()
			f.Products = v
		}
	case SectionPricing:
		var v PricingSection
		if err = json.Unmarshal(raw, &v); err == nil {
			v.normalize()
			f.Pricing = v
		}
	case SectionShipping:
		var v ShippingSection
		if err = json.Unmarshal(raw, &v); err == nil {
			v.normalize()
			f.Shipping = v
		}
	case SectionMarketing:
		var v MarketingSection
		if err = json.Unmarshal(raw, &v); err == nil {
			v.normalize()
			f.Marketing = v
		}
	case SectionOrders:
		var v OrdersSection
		if err = json.Unmarshal(raw, &v); err == nil {
			v.normalize()
			f.Orders = v
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", section, err)
	}
	return nil
}

// ApplyAll applies every section present in patch and returns them in wizard order.
func (f *Form) ApplyAll(patch map[string]json.RawMessage) ([]Section, error) {
	applied := make(map[Section]bool, len(patch))
	for key, raw := range patch {
		sec, err := ParseSection(key)
		if err != nil {
			return nil, err
		}
		if err := f.Apply(sec, raw); err != nil {
			return nil, err
		}
		applied[sec] = true
	}

	out := make([]Section, 0, len(applied))
	for _, sec := range Sections {
		if applied[sec] {
			out = append(out, sec)
		}
	}
	return out, nil
}

func (f Form) ValidateSection(section Section) error {
	switch section {
	case SectionProfile:
		return f.Profile.Validate()
	case SectionAbout:
		return f.About.Validate()
	case SectionArtworks:
		return f.Artworks.Validate()
	case SectionProducts:
		return f.Products.Validate()
	case SectionPricing:
		if err := f.Pricing.Validate(); err != nil {
			return err
		}
		return f.Pricing.validateAgainst(f.Products)
	case SectionShipping:
		return f.Shipping.Validate()
	case SectionMarketing:
		return f.Marketing.Validate()
	case SectionOrders:
		return f.Orders.Validate()
	}
	return fmt.Errorf("%w: %q", ErrUnknownSection, section)
}

// Validate checks every section and keys the failures by section name.
func (f Form) Validate() error {
	errs := validation.Errors{}
	for _, sec := range Sections {
		if err := f.ValidateSection(sec); err != nil {
			errs[string(sec)] = err
		}
	}
	return errs.Filter()
}

// ValidateDraft checks what a draft must satisfy even while incomplete:
// the email identifies the artist, and values the tables cannot hold as
// entered are rejected instead of being dropped on save.
func (f Form) ValidateDraft(secs []Section) error {
	errs := validation.Errors{}
	for _, sec := range secs {
		var err error
		switch sec {
		case SectionProfile:
			err = validation.Errors{
				"email": validation.Validate(f.Profile.Email, validation.Required.Error("email is required"), is.EmailFormat.Error("invalid email format")),
			}.Filter()
		case SectionPricing:
			err = validation.Errors{
				"strategy": validation.Validate(f.Pricing.Strategy, validation.In(settings.StrategyMarkup, settings.StrategyFixed).Error("strategy must be markup or fixed")),
				"currency": validation.Validate(f.Pricing.Currency, validation.Match(currencyRe).Error("currency must be a 3-letter ISO code")),
			}.Filter()
		case SectionMarketing:
			err = validation.Errors{
				"launch_date": validation.Validate(f.Marketing.LaunchDate, validation.Date(launchDateLayout).Error("launch date must be YYYY-MM-DD")),
			}.Filter()
		case SectionOrders:
			err = validation.Errors{
				"fulfillment_method": validation.Validate(f.Orders.FulfillmentMethod, validation.In(settings.FulfillmentPlatform, settings.FulfillmentArtist).Error("fulfillment must be platform or artist")),
			}.Filter()
		}
		if err != nil {
			errs[string(sec)] = err
		}
	}
	return errs.Filter()
}

// MarkSubmitted moves a complete draft to submitted.
func (f *Form) MarkSubmitted() error {
	if !f.Status.Editable() {
		return fmt.Errorf("%w (status %s)", ErrAlreadySubmitted, f.Status)
	}
	if err := f.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrIncomplete, err)
	}
	f.Status = artists.StatusSubmitted
	return nil
}
