package status

import (
	"context"
	"net/http"
	"time"

	"onboarding-app/config"
	"onboarding-app/database"
	"onboarding-app/internal/app/http/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const serviceName = "artist-onboarding"

var startedAt = time.Now()

type Report struct {
	Service   string `json:"service"`
	Env       string `json:"env"`
	Uptime    string `json:"uptime"`
	Database  string `json:"database"`
	DBLatency string `json:"db_latency,omitempty"`
}

// GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /api/status
func Status(c *gin.Context) {
	report := Report{
		Service:  serviceName,
		Env:      config.APP_ENV,
		Uptime:   time.Since(startedAt).Round(time.Second).String(),
		Database: "ok",
	}

	latency, err := pingDB(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("database ping failed")
		report.Database = "unreachable"
		c.JSON(http.StatusServiceUnavailable, response.Envelope{
			Success: false,
			Data:    report,
			Error:   err.Error(),
		})
		return
	}
	report.DBLatency = latency.String()

	response.Success(c, http.StatusOK, report)
}

func pingDB(ctx context.Context) (time.Duration, error) {
	sqlDB, err := database.DB.DB()
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	if err := sqlDB.PingContext(ctx); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}
