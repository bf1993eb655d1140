package artists

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Editable reports whether section saves may still change the record.
func (s Status) Editable() bool {
	return s == "" || s == StatusDraft
}

type Artist struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	// profile
	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `gorm:"not null" json:"last_name"`
	Email     string `gorm:"not null;uniqueIndex:idx_artists_email" json:"email"`
	Phone     string `json:"phone"`
	Country   string `gorm:"index" json:"country"`
	City      string `json:"city"`
	Website   string `json:"website"`

	// about
	Bio           string            `gorm:"type:text" json:"bio"`
	ArtisticStyle string            `json:"artistic_style"`
	YearsActive   int               `json:"years_active"`
	SocialLinks   datatypes.JSONMap `json:"social_links"`

	Status      Status     `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	CurrentStep int        `gorm:"not null;default:1" json:"current_step"`
	SubmittedAt *time.Time `gorm:"index" json:"submitted_at,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	ReviewNote  string     `json:"review_note,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Artist) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = StatusDraft
	}
	return nil
}

func (a Artist) FullName() string {
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}
