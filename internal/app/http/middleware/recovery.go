package middleware

import (
	"net/http"

	"onboarding-app/internal/app/http/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Interface("error", err).
					Msg("Panic recovered")

				response.AbortError(c, http.StatusInternalServerError, "Internal server error")
			}
		}()

		c.Next()
	}
}
