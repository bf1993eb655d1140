package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"onboarding-app/config"
	"onboarding-app/internal/domain/artists"
	"onboarding-app/internal/domain/catalog"
	"onboarding-app/internal/domain/settings"
	"onboarding-app/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter() *gin.Engine {
	r := gin.New()
	g := r.Group("/api/admin")
	g.GET("/artists", ListArtists)
	g.GET("/artists/:id", GetArtist)
	g.PATCH("/artists/:id/status", UpdateStatus)
	g.POST("/artists/:id/stripe-sync", SyncStripeCatalog)
	g.GET("/stats", GetStats)
	return r
}

func seedArtist(t *testing.T, db *gorm.DB, a artists.Artist) artists.Artist {
	t.Helper()
	if a.LastName == "" {
		a.LastName = "Tester"
	}
	if a.Country == "" {
		a.Country = "DE"
	}
	require.NoError(t, db.Create(&a).Error)
	return a
}

func TestListArtistsPaginates(t *testing.T) {
	db := testutil.SetupDB(t)
	r := newRouter()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		seedArtist(t, db, artists.Artist{
			FirstName: fmt.Sprintf("Artist%02d", i),
			Email:     fmt.Sprintf("artist%02d@example.com", i),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	w := testutil.PerformRequest(r, http.MethodGet, "/api/admin/artists?page=2&limit=10", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	env := testutil.Decode(t, w)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 2, env.Pagination.Page)
	assert.Equal(t, 10, env.Pagination.Limit)
	assert.EqualValues(t, 25, env.Pagination.Total)
	assert.Equal(t, 3, env.Pagination.TotalPages)

	var rows []ArtistRow
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 10)
	// newest first: page 2 starts at the 11th newest
	assert.Equal(t, "artist14@example.com", rows[0].Email)

	w = testutil.PerformRequest(r, http.MethodGet, "/api/admin/artists?page=3&limit=10&sort=created_at", nil)
	require.NoError(t, json.Unmarshal(testutil.Decode(t, w).Data, &rows))
	require.Len(t, rows, 5)
	assert.Equal(t, "artist24@example.com", rows[4].Email)

	w = testutil.PerformRequest(r, http.MethodGet, "/api/admin/artists?page=9", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(testutil.Decode(t, w).Data, &rows))
	assert.Empty(t, rows)
}

func TestListArtistsFilters(t *testing.T) {
	db := testutil.SetupDB(t)
	r := newRouter()

	seedArtist(t, db, artists.Artist{FirstName: "Ada", Email: "ada@example.com", Status: artists.StatusSubmitted})
	seedArtist(t, db, artists.Artist{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com", Country: "US"})
	seedArtist(t, db, artists.Artist{FirstName: "Hedy", Email: "hedy@studio.at", Country: "AT", Status: artists.StatusSubmitted})

	cases := []struct {
		query string
		want  []string
	}{
		{"status=submitted&sort=name", []string{"ada@example.com", "hedy@studio.at"}},
		{"search=HOPPER", []string{"grace@example.com"}},
		{"search=studio", []string{"hedy@studio.at"}},
		{"country=de", []string{"ada@example.com"}},
		{"status=draft&country=us", []string{"grace@example.com"}},
		{"status=approved", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			w := testutil.PerformRequest(r, http.MethodGet, "/api/admin/artists?"+tc.query, nil)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			env := testutil.Decode(t, w)
			var rows []ArtistRow
			require.NoError(t, json.Unmarshal(env.Data, &rows))

			emails := make([]string, 0, len(rows))
			for _, row := range rows {
				emails = append(emails, row.Email)
			}
			assert.ElementsMatch(t, tc.want, emails)
			assert.EqualValues(t, len(tc.want), env.Pagination.Total)
		})
	}

	w := testutil.PerformRequest(r, http.MethodGet, "/api/admin/artists?status=pending", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = testutil.PerformRequest(r, http.MethodGet, "/api/admin/artists?sort=password", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetArtistDetail(t *testing.T) {
	db := testutil.SetupDB(t)
	r := newRouter()

	a := seedArtist(t, db, artists.Artist{FirstName: "Ada", Email: "ada@example.com"})
	require.NoError(t, db.Create(&[]catalog.ProductVariant{
		{ArtistID: a.ID, SKU: "BH-A4", ProductType: "print", Size: "A4", BaseCost: decimal.RequireFromString("12.50")},
		{ArtistID: a.ID, SKU: "BH-A3", ProductType: "print", Size: "A3", BaseCost: decimal.RequireFromString("18"), SortIndex: 1},
	}).Error)
	markup := decimal.NewFromInt(60)
	require.NoError(t, db.Create(&settings.Pricing{ArtistID: a.ID, Strategy: settings.StrategyMarkup, MarkupPercent: &markup, Currency: "EUR"}).Error)

	w := testutil.PerformRequest(r, http.MethodGet, "/api/admin/artists/"+a.ID, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var detail ArtistDetail
	require.NoError(t, json.Unmarshal(testutil.Decode(t, w).Data, &detail))
	assert.Equal(t, "ada@example.com", detail.Artist.Email)
	require.Len(t, detail.Prices, 2)
	require.NotNil(t, detail.Prices[0].RetailPrice)
	assert.Equal(t, "20", detail.Prices[0].RetailPrice.String())
	assert.Equal(t, "28.8", detail.Prices[1].RetailPrice.String())
	assert.Equal(t, "EUR", detail.Prices[1].Currency)
	assert.Equal(t, 8, detail.Progress.Total)

	w = testutil.PerformRequest(r, http.MethodGet, "/api/admin/artists/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateStatus(t *testing.T) {
	db := testutil.SetupDB(t)
	r := newRouter()

	draft := seedArtist(t, db, artists.Artist{FirstName: "Ada", Email: "ada@example.com"})
	submitted := seedArtist(t, db, artists.Artist{FirstName: "Grace", Email: "grace@example.com", Status: artists.StatusSubmitted})

	w := testutil.PerformRequest(r, http.MethodPatch, "/api/admin/artists/"+draft.ID+"/status", map[string]string{"status": "approved"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = testutil.PerformRequest(r, http.MethodPatch, "/api/admin/artists/"+submitted.ID+"/status", map[string]string{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "approved or rejected")

	w = testutil.PerformRequest(r, http.MethodPatch, "/api/admin/artists/"+submitted.ID+"/status", map[string]string{
		"status": "rejected",
		"note":   " Portfolio too small ",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored artists.Artist
	require.NoError(t, db.First(&stored, "id = ?", submitted.ID).Error)
	assert.Equal(t, artists.StatusRejected, stored.Status)
	assert.Equal(t, "Portfolio too small", stored.ReviewNote)
	assert.NotNil(t, stored.ReviewedAt)

	w = testutil.PerformRequest(r, http.MethodPatch, "/api/admin/artists/"+submitted.ID+"/status", map[string]string{"status": "approved"})
	assert.Equal(t, http.StatusConflict, w.Code, "a decision is final")

	w = testutil.PerformRequest(r, http.MethodPatch, "/api/admin/artists/missing/status", map[string]string{"status": "approved"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetStats(t *testing.T) {
	db := testutil.SetupDB(t)
	r := newRouter()

	recent := time.Now().UTC().AddDate(0, 0, -2)
	old := time.Now().UTC().AddDate(0, -3, 0)
	seedArtist(t, db, artists.Artist{FirstName: "A", Email: "a@example.com"})
	seedArtist(t, db, artists.Artist{FirstName: "B", Email: "b@example.com", Status: artists.StatusSubmitted, SubmittedAt: &recent})
	seedArtist(t, db, artists.Artist{FirstName: "C", Email: "c@example.com", Status: artists.StatusApproved, SubmittedAt: &old})

	w := testutil.PerformRequest(r, http.MethodGet, "/api/admin/stats", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stats Stats
	require.NoError(t, json.Unmarshal(testutil.Decode(t, w).Data, &stats))
	assert.EqualValues(t, 3, stats.Total)
	assert.EqualValues(t, 1, stats.ByStatus[artists.StatusDraft])
	assert.EqualValues(t, 1, stats.ByStatus[artists.StatusApproved])
	assert.EqualValues(t, 0, stats.ByStatus[artists.StatusRejected])
	assert.EqualValues(t, 1, stats.SubmittedLast30Days)
}

func TestSyncStripeCatalogGuards(t *testing.T) {
	db := testutil.SetupDB(t)
	r := newRouter()

	prev := config.STRIPE_SECRET_KEY
	config.STRIPE_SECRET_KEY = ""
	t.Cleanup(func() { config.STRIPE_SECRET_KEY = prev })

	draft := seedArtist(t, db, artists.Artist{FirstName: "Ada", Email: "ada@example.com"})
	w := testutil.PerformRequest(r, http.MethodPost, "/api/admin/artists/"+draft.ID+"/stripe-sync", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	approved := seedArtist(t, db, artists.Artist{FirstName: "Grace", Email: "grace@example.com", Status: artists.StatusApproved})
	w = testutil.PerformRequest(r, http.MethodPost, "/api/admin/artists/"+approved.ID+"/stripe-sync", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "pricing is not configured", testutil.Decode(t, w).Error)

	require.NoError(t, db.Create(&catalog.ProductVariant{ArtistID: approved.ID, SKU: "GH-A4", ProductType: "print", Size: "A4", BaseCost: decimal.NewFromInt(10)}).Error)
	require.NoError(t, db.Create(&settings.Pricing{ArtistID: approved.ID, Strategy: settings.StrategyFixed, Currency: "EUR"}).Error)
	w = testutil.PerformRequest(r, http.MethodPost, "/api/admin/artists/"+approved.ID+"/stripe-sync", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, testutil.Decode(t, w).Error, "GH-A4")

	require.NoError(t, db.Model(&settings.Pricing{}).Where("artist_id = ?", approved.ID).Updates(map[string]interface{}{
		"strategy":       settings.StrategyMarkup,
		"markup_percent": decimal.NewFromInt(50),
	}).Error)
	w = testutil.PerformRequest(r, http.MethodPost, "/api/admin/artists/"+approved.ID+"/stripe-sync", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
