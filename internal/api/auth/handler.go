package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"onboarding-app/config"
	"onboarding-app/database"
	"onboarding-app/internal/app/http/response"
	"onboarding-app/internal/domain/admins"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	tokenTTL  = 24 * time.Hour
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Password, validation.Required),
	)
}

type AdminDTO struct {
	ID           uint       `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	AuthProvider string     `json:"auth_provider"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

type TokenDTO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Admin     AdminDTO  `json:"admin"`
}

func toAdminDTO(a admins.Admin) AdminDTO {
	return AdminDTO{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Role:         a.Role,
		AuthProvider: a.AuthProvider,
		LastLoginAt:  a.LastLoginAt,
	}
}

func issueAdminJWT(a admins.Admin) (string, time.Time, error) {
	exp := time.Now().Add(tokenTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": a.ID,
		"email":    a.Email,
		"role":     a.Role,
		"exp":      exp.Unix(),
	})
	s, err := t.SignedString([]byte(config.JWT_SECRET))
	return s, exp, err
}

// touchLogin stamps the last login and returns a signed token for a.
func touchLogin(a *admins.Admin) (TokenDTO, error) {
	now := time.Now().UTC()
	if err := database.DB.Model(a).Update("last_login_at", now).Error; err != nil {
		return TokenDTO{}, err
	}
	a.LastLoginAt = &now

	token, exp, err := issueAdminJWT(*a)
	if err != nil {
		return TokenDTO{}, err
	}
	return TokenDTO{Token: token, ExpiresAt: exp, Admin: toAdminDTO(*a)}, nil
}

// POST /api/admin/login
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := req.Validate(); err != nil {
		response.ValidationError(c, "Validation failed", err)
		return
	}

	var admin admins.Admin
	err := database.DB.Where("email = ?", req.Email).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}

	// google-only accounts have no password
	if admin.Password == nil {
		response.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*admin.Password), []byte(req.Password)); err != nil {
		log.Warn().Str("email", req.Email).Str("ip", c.ClientIP()).Msg("admin login failed")
		response.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	out, err := touchLogin(&admin)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	log.Info().Uint("admin_id", admin.ID).Msg("admin logged in")
	response.Success(c, http.StatusOK, out)
}

// GET /api/admin/me
func Me(c *gin.Context) {
	var admin admins.Admin
	if err := database.DB.First(&admin, c.GetUint("admin_id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusUnauthorized, "Admin not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toAdminDTO(admin))
}

// EnsureBootstrapAdmin creates or re-keys the account named by
// ADMIN_EMAIL / ADMIN_PASSWORD. Does nothing when either is unset.
func EnsureBootstrapAdmin(db *gorm.DB) error {
	email := strings.ToLower(strings.TrimSpace(config.ADMIN_EMAIL))
	if email == "" || config.ADMIN_PASSWORD == "" {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(config.ADMIN_PASSWORD), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	pw := string(hashed)

	var admin admins.Admin
	res := db.Where("email = ?", email).Limit(1).Find(&admin)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		if admin.Password != nil && bcrypt.CompareHashAndPassword([]byte(*admin.Password), []byte(config.ADMIN_PASSWORD)) == nil {
			return nil
		}
		return db.Model(&admin).Update("password", pw).Error
	}

	admin = admins.Admin{
		Name:         "Administrator",
		Email:        email,
		Password:     &pw,
		AuthProvider: "local",
		Role:         RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Info().Str("email", email).Msg("bootstrap admin created")
	return nil
}
