// Package auth issues and refreshes the JWT pair used by the API. Access
// tokens are short-lived and stateless; refresh tokens are persisted on the
// user row and must match exactly on refresh.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/YuliaVladimirov/Home-and-Garden-Online-Shop/models"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 30 * 24 * time.Hour
)

// ErrAuth covers every authentication failure: unknown user, wrong password,
// invalid or stale refresh token. Handlers map it to 401 without
// distinguishing the cause.
var ErrAuth = errors.New("authentication failed")

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type JwtResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// Login verifies the password and issues a fresh token pair, persisting the
// refresh token.
func Login(db *gorm.DB, email, password string) (*JwtResponse, error) {
	var user models.User
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found: %w", ErrAuth)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("wrong password: %w", ErrAuth)
	}

	return issuePair(db, &user)
}

// Refresh validates the refresh token against the stored one and rotates the
// whole pair.
func Refresh(db *gorm.DB, refreshToken string) (*JwtResponse, error) {
	user, err := userForRefreshToken(db, refreshToken)
	if err != nil {
		return nil, err
	}
	return issuePair(db, user)
}

// AccessToken validates the refresh token and issues a new access token only.
func AccessToken(db *gorm.DB, refreshToken string) (*JwtResponse, error) {
	user, err := userForRefreshToken(db, refreshToken)
	if err != nil {
		return nil, err
	}

	access, err := GenerateAccessToken(*user)
	if err != nil {
		return nil, err
	}
	return &JwtResponse{AccessToken: access}, nil
}

func issuePair(db *gorm.DB, user *models.User) (*JwtResponse, error) {
	access, err := GenerateAccessToken(*user)
	if err != nil {
		return nil, err
	}
	refresh, err := generateRefreshToken(*user)
	if err != nil {
		return nil, err
	}

	if err := db.Model(user).Update("refresh_token", refresh).Error; err != nil {
		return nil, err
	}
	return &JwtResponse{AccessToken: access, RefreshToken: refresh}, nil
}

func userForRefreshToken(db *gorm.DB, refreshToken string) (*models.User, error) {
	email, err := parseToken(refreshToken, refreshSecret())
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", ErrAuth)
	}

	var user models.User
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found: %w", ErrAuth)
		}
		return nil, err
	}
	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, fmt.Errorf("refresh token is stale: %w", ErrAuth)
	}
	return &user, nil
}

// GenerateAccessToken signs the short-lived token the middleware checks on
// every request.
func GenerateAccessToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.Email,
		"role": string(user.Role),
		"exp":  time.Now().Add(accessTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(accessSecret())
}

func generateRefreshToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.Email,
		"exp": time.Now().Add(refreshTokenTTL).Unix(),
		// Unique id so a rotated token never collides with its predecessor.
		"jti": uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(refreshSecret())
}

func parseToken(tokenString string, secret []byte) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrAuth
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrAuth
	}
	email, _ := claims["sub"].(string)
	if email == "" {
		return "", ErrAuth
	}
	return email, nil
}

func accessSecret() []byte {
	return []byte(os.Getenv("JWT_ACCESS_SECRET"))
}

func refreshSecret() []byte {
	return []byte(os.Getenv("JWT_REFRESH_SECRET"))
}

// -------- Handlers --------

// POST /auth/login
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resp, err := Login(db, req.Email, req.Password)
		if err != nil {
			respondAuthError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// POST /auth/refresh
func RefreshHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resp, err := Refresh(db, req.RefreshToken)
		if err != nil {
			respondAuthError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// POST /auth/access
func AccessTokenHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resp, err := AccessToken(db, req.RefreshToken)
		if err != nil {
			respondAuthError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func respondAuthError(c *gin.Context, err error) {
	if errors.Is(err, ErrAuth) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
