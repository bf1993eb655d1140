package onboarding

import (
	"encoding/json"
	"time"

	"onboarding-app/internal/domain/artists"
	"onboarding-app/internal/domain/onboarding"
)

// ArtistRequest is the body of POST /artists and PUT /artists/:id.
// About is optional so step one can be saved on its own.
type ArtistRequest struct {
	Profile onboarding.ProfileSection `json:"profile"`
	About   *json.RawMessage          `json:"about,omitempty"`
}

// DraftRequest carries any subset of sections keyed by section name,
// in the same shape the full form uses.
type DraftRequest map[string]json.RawMessage

type ArtistDTO struct {
	ID          string         `json:"id"`
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	Email       string         `json:"email"`
	Country     string         `json:"country"`
	Status      artists.Status `json:"status"`
	CurrentStep int            `json:"current_step"`
	SubmittedAt *time.Time     `json:"submitted_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type ApplicationDTO struct {
	Artist   ArtistDTO           `json:"artist"`
	Form     onboarding.Form     `json:"form"`
	Progress onboarding.Progress `json:"progress"`
}

type SectionSavedDTO struct {
	ArtistID string               `json:"artist_id"`
	Saved    []onboarding.Section `json:"saved"`
	Progress onboarding.Progress  `json:"progress"`
}

type SubmittedDTO struct {
	ArtistID    string         `json:"artist_id"`
	Status      artists.Status `json:"status"`
	SubmittedAt *time.Time     `json:"submitted_at"`
}

func toArtistDTO(a artists.Artist) ArtistDTO {
	return ArtistDTO{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Email:       a.Email,
		Country:     a.Country,
		Status:      a.Status,
		CurrentStep: a.CurrentStep,
		SubmittedAt: a.SubmittedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toApplicationDTO(r onboarding.Records) ApplicationDTO {
	form := onboarding.FormFromRecords(r)
	return ApplicationDTO{
		Artist:   toArtistDTO(r.Artist),
		Form:     form,
		Progress: form.Progress(),
	}
}
