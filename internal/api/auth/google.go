package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"onboarding-app/config"
	"onboarding-app/database"
	"onboarding-app/internal/app/http/response"
	"onboarding-app/internal/domain/admins"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

const stateCookie = "admin_oauth_state"

var errNotAllowed = errors.New("google account is not an administrator")

func googleOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     config.GOOGLE_CLIENT_ID,
		ClientSecret: config.GOOGLE_CLIENT_SECRET,
		RedirectURL:  config.GOOGLE_REDIRECT_URL,
		Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

func randomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func googleEnabled(c *gin.Context) bool {
	if config.GOOGLE_CLIENT_ID == "" {
		response.Error(c, http.StatusNotFound, "Google sign-in is not enabled")
		return false
	}
	return true
}

// GET /api/admin/auth/google
func GoogleStart(c *gin.Context) {
	if !googleEnabled(c) {
		return
	}

	state, err := randomState()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	c.SetCookie(stateCookie, state, 300, "/", "", config.IsProduction(), true)

	c.Redirect(http.StatusFound, googleOAuthConfig().AuthCodeURL(state, oauth2.AccessTypeOnline))
}

// GET /api/admin/auth/google/callback
func GoogleCallback(c *gin.Context) {
	if !googleEnabled(c) {
		return
	}

	state := c.Query("state")
	code := c.Query("code")
	if code == "" || state == "" {
		response.BadRequest(c, "missing code/state")
		return
	}
	cookieState, err := c.Cookie(stateCookie)
	if err != nil || cookieState != state {
		response.BadRequest(c, "invalid oauth state")
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", config.IsProduction(), true)

	ctx := c.Request.Context()
	tok, err := googleOAuthConfig().Exchange(ctx, code)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "failed to exchange code")
		return
	}
	rawIDToken, ok := tok.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		response.Error(c, http.StatusUnauthorized, "missing id_token")
		return
	}

	claims, err := verifyGoogleIDToken(ctx, rawIDToken)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	admin, err := findOrLinkGoogleAdmin(database.DB, claims)
	if errors.Is(err, errNotAllowed) {
		log.Warn().Str("email", claims.Email).Msg("google sign-in refused")
		response.Error(c, http.StatusForbidden, err.Error())
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}

	out, err := touchLogin(&admin)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	redirect := config.GOOGLE_FRONTEND_REDIRECT
	if redirect == "" {
		response.Success(c, http.StatusOK, out)
		return
	}
	c.Redirect(http.StatusFound, redirect+"?token="+url.QueryEscape(out.Token))
}

type googleIDClaims struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

func verifyGoogleIDToken(ctx context.Context, rawIDToken string) (*googleIDClaims, error) {
	provider, err := oidc.NewProvider(ctx, "https://accounts.google.com")
	if err != nil {
		return nil, errors.New("failed to init google oidc provider")
	}

	idToken, err := provider.Verifier(&oidc.Config{ClientID: config.GOOGLE_CLIENT_ID}).Verify(ctx, rawIDToken)
	if err != nil {
		return nil, errors.New("invalid id_token")
	}

	var claims googleIDClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, errors.New("failed to decode token claims")
	}
	if claims.Email == "" || claims.Sub == "" {
		return nil, errors.New("token missing required claims")
	}
	if !claims.EmailVerified {
		return nil, errors.New("google email is not verified")
	}
	return &claims, nil
}

func allowedGoogleEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, allowed := range config.ADMIN_GOOGLE_EMAILS {
		if allowed == email {
			return true
		}
	}
	return false
}

// findOrLinkGoogleAdmin resolves the admin for a verified Google identity.
// Only allow-listed emails get an account; existing admins are linked by email.
func findOrLinkGoogleAdmin(db *gorm.DB, gc *googleIDClaims) (admins.Admin, error) {
	var admin admins.Admin
	email := strings.ToLower(gc.Email)

	res := db.Where("google_sub = ?", gc.Sub).Limit(1).Find(&admin)
	if res.Error != nil {
		return admin, res.Error
	}
	if res.RowsAffected > 0 {
		return admin, nil
	}

	if !allowedGoogleEmail(email) {
		return admin, errNotAllowed
	}

	res = db.Where("email = ?", email).Limit(1).Find(&admin)
	if res.Error != nil {
		return admin, res.Error
	}
	sub := gc.Sub
	if res.RowsAffected > 0 {
		admin.GoogleSub = &sub
		return admin, db.Model(&admin).Update("google_sub", sub).Error
	}

	admin = admins.Admin{
		Name:         gc.Name,
		Email:        email,
		AuthProvider: "google",
		GoogleSub:    &sub,
		Role:         RoleAdmin,
	}
	return admin, db.Create(&admin).Error
}
