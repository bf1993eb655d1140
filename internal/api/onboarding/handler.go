package onboarding

import (
	"errors"
	"fmt"
	"net/http"

	"onboarding-app/database"
	"onboarding-app/internal/app/http/response"
	"onboarding-app/internal/domain/artists"
	"onboarding-app/internal/domain/onboarding"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// validateSections runs the rules of each section and keys failures by section.
func validateSections(form onboarding.Form, secs []onboarding.Section) error {
	errs := validation.Errors{}
	for _, sec := range secs {
		if err := form.ValidateSection(sec); err != nil {
			errs[string(sec)] = err
		}
	}
	return errs.Filter()
}

// loadEditable writes the error response itself when the artist is missing
// or no longer a draft.
func loadEditable(c *gin.Context, artistID string) (onboarding.Records, bool) {
	r, err := LoadRecords(database.DB, artistID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(c, "Artist not found")
		return r, false
	}
	if err != nil {
		response.InternalError(c, err)
		return r, false
	}
	if !r.Artist.Status.Editable() {
		response.Conflict(c, "Application already submitted")
		return r, false
	}
	return r, true
}

// emailTaken reports whether another artist already owns email.
func emailTaken(c *gin.Context, email, artistID string) bool {
	other, err := findArtistByEmail(database.DB, email)
	if err != nil {
		response.InternalError(c, err)
		return true
	}
	if other != nil && other.ID != artistID {
		response.Conflict(c, "Email already registered")
		return true
	}
	return false
}

// persistSections writes the given sections and the new current step in one
// transaction, then answers with the progress of what was stored.
func persistSections(c *gin.Context, form onboarding.Form, saved []onboarding.Section) {
	var progress onboarding.Progress

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for _, sec := range saved {
			if err := writeSection(tx, form, sec, form.ArtistID); err != nil {
				return fmt.Errorf("save %s: %w", sec, err)
			}
		}

		stored, err := LoadRecords(tx, form.ArtistID)
		if err != nil {
			return err
		}
		progress = onboarding.FormFromRecords(stored).Progress()

		return tx.Model(&artists.Artist{}).
			Where("id = ?", form.ArtistID).
			Update("current_step", progress.CurrentStep).Error
	})
	if err != nil {
		log.Error().Err(err).Str("artist_id", form.ArtistID).Msg("save sections")
		response.InternalError(c, err)
		return
	}

	response.Success(c, http.StatusOK, SectionSavedDTO{
		ArtistID: form.ArtistID,
		Saved:    saved,
		Progress: progress,
	})
}

// ------------------------------
// POST /api/onboarding/artists
// ------------------------------
func CreateArtist(c *gin.Context) {
	var req ArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	form := onboarding.Form{Profile: req.Profile}
	form.Normalize()
	saved := []onboarding.Section{onboarding.SectionProfile}
	columns := append([]string{}, onboarding.ProfileColumns...)
	if req.About != nil {
		if err := form.Apply(onboarding.SectionAbout, *req.About); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		saved = append(saved, onboarding.SectionAbout)
		columns = append(columns, onboarding.AboutColumns...)
	}
	if err := validateSections(form, saved); err != nil {
		response.ValidationError(c, "Validation failed", onboarding.ErrorDetails(err))
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

	var records onboarding.Records
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		stored, err := upsertArtistByEmail(tx, &artist, columns)
		if err != nil {
			return err
		}
		if records, err = LoadRecords(tx, stored.ID); err != nil {
			return err
		}
		step := onboarding.FormFromRecords(records).Progress().CurrentStep
		records.Artist.CurrentStep = step
		return tx.Model(&artists.Artist{}).Where("id = ?", stored.ID).Update("current_step", step).Error
	})
	if err != nil {
		log.Error().Err(err).Str("email", artist.Email).Msg("upsert artist")
		response.InternalError(c, err)
		return
	}

	status := http.StatusOK
	if existing == nil {
		status = http.StatusCreated
		log.Info().Str("artist_id", records.Artist.ID).Msg("artist registered")
	}
	response.Success(c, status, toApplicationDTO(records))
}

// ------------------------------
// PUT /api/onboarding/artists/:id
// ------------------------------
func UpdateArtist(c *gin.Context) {
	id := c.Param("id")

	var req ArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	records, ok := loadEditable(c, id)
	if !ok {
		return
	}

	form := onboarding.FormFromRecords(records)
	form.Profile = req.Profile
	form.Normalize()
	saved := []onboarding.Section{onboarding.SectionProfile}
	if req.About != nil {
		if err := form.Apply(onboarding.SectionAbout, *req.About); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		saved = append(saved, onboarding.SectionAbout)
	}
	if err := validateSections(form, saved); err != nil {
		response.ValidationError(c, "Validation failed", onboarding.ErrorDetails(err))
		return
	}
	if emailTaken(c, form.ToArtist().Email, id) {
		return
	}

	persistSections(c, form, saved)
}

// ------------------------------
// PUT /api/onboarding/artists/:id/<section>
// ------------------------------

// SaveSection replaces one section of an existing draft.
func SaveSection(sec onboarding.Section) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		raw, err := c.GetRawData()
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		if len(raw) == 0 {
			response.BadRequest(c, "Request body is required")
			return
		}

		records, ok := loadEditable(c, id)
		if !ok {
			return
		}

		form := onboarding.FormFromRecords(records)
		if err := form.Apply(sec, raw); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		if err := validateSections(form, []onboarding.Section{sec}); err != nil {
			response.ValidationError(c, "Validation failed", onboarding.ErrorDetails(err))
			return
		}

		persistSections(c, form, []onboarding.Section{sec})
	}
}

// ------------------------------
// GET /api/onboarding/artists/:id
// ------------------------------
func GetApplication(c *gin.Context) {
	records, err := LoadRecords(database.DB, c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(c, "Artist not found")
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toApplicationDTO(records))
}

// ------------------------------
// POST /api/onboarding/artists/:id/draft
// ------------------------------

// SaveDraft stores any subset of sections without requiring them to be complete.
func SaveDraft(c *gin.Context) {
	id := c.Param("id")

	var req DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if len(req) == 0 {
		response.BadRequest(c, "No sections to save")
		return
	}

	records, ok := loadEditable(c, id)
	if !ok {
		return
	}

	form := onboarding.FormFromRecords(records)
	saved, err := form.ApplyAll(req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := form.ValidateDraft(saved); err != nil {
		response.ValidationError(c, "Validation failed", onboarding.ErrorDetails(err))
		return
	}
	for _, sec := range saved {
		if sec == onboarding.SectionProfile && emailTaken(c, form.ToArtist().Email, id) {
			return
		}
	}

	persistSections(c, form, saved)
}
