package admin

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"onboarding-app/database"
	onboardingapi "onboarding-app/internal/api/onboarding"
	"onboarding-app/internal/app/http/response"
	"onboarding-app/internal/domain/artists"
	"onboarding-app/internal/domain/onboarding"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ListArtists serves the admin table:
// ?page=&limit=&status=&search=&country=&sort=
func ListArtists(c *gin.Context) {
	pr := ParsePage(c.Query("page"), c.Query("limit"))

	order, ok := orderClause(c.Query("sort"))
	if !ok {
		response.BadRequest(c, "Invalid sort")
		return
	}

	q := database.DB.Model(&artists.Artist{})

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !artists.Status(status).Valid() {
			response.BadRequest(c, "Invalid status")
			return
		}
		q = q.Where("status = ?", status)
	}
	if country := strings.TrimSpace(c.Query("country")); country != "" {
		q = q.Where("LOWER(country) = ?", strings.ToLower(country))
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("(LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?)", like, like, like)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		response.InternalError(c, err)
		return
	}

	var rows []artists.Artist
	if err := q.Order(order).Offset(pr.Offset).Limit(pr.Limit).Find(&rows).Error; err != nil {
		response.InternalError(c, err)
		return
	}

	out := make([]ArtistRow, 0, len(rows))
	for _, a := range rows {
		out = append(out, toArtistRow(a))
	}
	response.SuccessWithPagination(c, out, response.NewPagination(pr.Page, pr.Limit, total))
}

func GetArtist(c *gin.Context) {
	records, err := onboardingapi.LoadRecords(database.DB, c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(c, "Artist not found")
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ArtistDetail{
		Records:  records,
		Progress: onboarding.FormFromRecords(records).Progress(),
		Prices:   pricePreview(records),
	})
}

// UpdateStatus approves or rejects a submitted application.
func UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.Status,
			validation.Required,
			validation.In(artists.StatusApproved, artists.StatusRejected).Error("status must be approved or rejected"),
		),
		validation.Field(&req.Note, validation.Length(0, 2000)),
	); err != nil {
		response.ValidationError(c, "Validation failed", err)
		return
	}

	var artist artists.Artist
	if err := database.DB.First(&artist, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Artist not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	if artist.Status != artists.StatusSubmitted {
		response.Conflict(c, "Only submitted applications can be reviewed")
		return
	}

	now := time.Now().UTC()
	res := database.DB.Model(&artists.Artist{}).
		Where("id = ? AND status = ?", id, artists.StatusSubmitted).
		Updates(map[string]interface{}{
			"status":      req.Status,
			"reviewed_at": now,
			"review_note": strings.TrimSpace(req.Note),
		})
	if res.Error != nil {
		response.InternalError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		response.Conflict(c, "Only submitted applications can be reviewed")
		return
	}

	log.Info().
		Str("artist_id", id).
		Str("status", string(req.Status)).
		Str("admin", c.GetString("email")).
		Msg("application reviewed")

	artist.Status = req.Status
	artist.ReviewedAt = &now
	artist.ReviewNote = strings.TrimSpace(req.Note)
	response.Success(c, http.StatusOK, toArtistRow(artist))
}

func GetStats(c *gin.Context) {
	stats := Stats{ByStatus: map[artists.Status]int64{
		artists.StatusDraft:     0,
		artists.StatusSubmitted: 0,
		artists.StatusApproved:  0,
		artists.StatusRejected:  0,
	}}

	type statusCount struct {
		Status artists.Status
		Count  int64
	}
	var counts []statusCount
	if err := database.DB.Model(&artists.Artist{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error; err != nil {
		response.InternalError(c, err)
		return
	}
	for _, sc := range counts {
		stats.ByStatus[sc.Status] = sc.Count
		stats.Total += sc.Count
	}

	thirtyDaysAgo := time.Now().UTC().AddDate(0, 0, -30)
	if err := database.DB.Model(&artists.Artist{}).
		Where("submitted_at >= ?", thirtyDaysAgo).
		Count(&stats.SubmittedLast30Days).Error; err != nil {
		response.InternalError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}
