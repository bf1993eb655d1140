package onboarding

import (
	"errors"
	"net/http"
	"time"

	"onboarding-app/database"
	"onboarding-app/internal/app/http/response"
	"onboarding-app/internal/domain/artists"
	"onboarding-app/internal/domain/onboarding"
	"onboarding-app/internal/infra/mailer"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var submitColumns = []string{"status", "submitted_at", "current_step"}

// ------------------------------
// POST /api/onboarding/submit
// ------------------------------

// Submit takes the whole form in one payload and stores it as submitted.
// An existing draft with the same email is overwritten (200), otherwise 201.
func Submit(c *gin.Context) {
	var form onboarding.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	form.ArtistID = ""
	form.Status = artists.StatusDraft
	form.Normalize()

	if err := form.MarkSubmitted(); err != nil {
		response.ValidationError(c, "Application is incomplete", onboarding.ErrorDetails(err))
		return
	}

	artist := form.ToArtist()
	existing, err := findArtistByEmail(database.DB, artist.Email)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if existing != nil && !existing.Status.Editable() {
		response.Conflict(c, "Application already submitted")
		return
	}

	now := time.Now().UTC()
	artist.Status = artists.StatusSubmitted
	artist.SubmittedAt = &now
	artist.CurrentStep = len(onboarding.Sections)

	columns := append([]string{}, onboarding.ProfileColumns...)
	columns = append(columns, onboarding.AboutColumns...)
	columns = append(columns, submitColumns...)

	var stored artists.Artist
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		if stored, err = upsertArtistByEmail(tx, &artist, columns); err != nil {
			return err
		}
		for _, sec := range onboarding.Sections {
			if sec == onboarding.SectionProfile || sec == onboarding.SectionAbout {
				continue
			}
			if err := writeSection(tx, form, sec, stored.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("email", artist.Email).Msg("submit application")
		response.InternalError(c, err)
		return
	}

	log.Info().Str("artist_id", stored.ID).Msg("application submitted")
	mailer.NotifySubmitted(stored)

	status := http.StatusCreated
	if existing != nil {
		status = http.StatusOK
	}
	response.Success(c, status, SubmittedDTO{
		ArtistID:    stored.ID,
		Status:      stored.Status,
		SubmittedAt: stored.SubmittedAt,
	})
}

// ------------------------------
// POST /api/onboarding/artists/:id/submit
// ------------------------------

// SubmitStored submits whatever has been saved section by section.
func SubmitStored(c *gin.Context) {
	id := c.Param("id")

	records, err := LoadRecords(database.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(c, "Artist not found")
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}

	form := onboarding.FormFromRecords(records)
	if err := form.MarkSubmitted(); err != nil {
		if errors.Is(err, onboarding.ErrAlreadySubmitted) {
			response.Conflict(c, "Application already submitted")
			return
		}
		response.ValidationError(c, "Application is incomplete", onboarding.ErrorDetails(err))
		return
	}

	now := time.Now().UTC()
	res := database.DB.Model(&artists.Artist{}).
		Where("id = ? AND status = ?", id, artists.StatusDraft).
		Updates(map[string]interface{}{
			"status":       artists.StatusSubmitted,
			"submitted_at": now,
			"current_step": len(onboarding.Sections),
		})
	if res.Error != nil {
		response.InternalError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		response.Conflict(c, "Application already submitted")
		return
	}

	artist := records.Artist
	artist.Status = artists.StatusSubmitted
	artist.SubmittedAt = &now

	log.Info().Str("artist_id", id).Msg("application submitted")
	mailer.NotifySubmitted(artist)

	response.Success(c, http.StatusOK, SubmittedDTO{
		ArtistID:    id,
		Status:      artist.Status,
		SubmittedAt: artist.SubmittedAt,
	})
}
