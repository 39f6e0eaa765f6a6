package auth

import (
	"errors"
	"os"
	"time"

	"github.com/ApiPlusReactOrganization/PCComponentsAPI/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// IssueAccessToken signs a short-lived JWT carrying the user id and role
// names.
func IssueAccessToken(user *models.User) (string, error) {
	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, r.ID)
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"roles":   roles,
		"exp":     time.Now().Add(accessTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// IssueRefreshToken stores and returns a new refresh token row for the
// user.
func IssueRefreshToken(db *gorm.DB, userID string) (*models.RefreshToken, error) {
	token := &models.RefreshToken{
		ID:        uuid.NewString(),
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := db.Create(token).Error; err != nil {
		return nil, err
	}
	return token, nil
}

// ParseAccessToken validates the signature and expiry and returns the
// claims.
func ParseAccessToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
