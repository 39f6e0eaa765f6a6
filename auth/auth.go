package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/ApiPlusReactOrganization/PCComponentsAPI/apperrors"
	"github.com/ApiPlusReactOrganization/PCComponentsAPI/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SignUpInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	Password string `json:"password" binding:"required,min=8"`
}

type SignInInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshInput struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type TokenPair struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// SignUp registers a user with a bcrypt-hashed password and the default
// User role.
func SignUp(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignUpInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			apperrors.Respond(c, apperrors.Unknown("failed to hash password", err))
			return
		}

		user := models.User{
			ID:           uuid.NewString(),
			Email:        input.Email,
			Name:         input.Name,
			PasswordHash: string(hash),
			Roles:        []models.Role{{ID: models.RoleUser}},
		}

		if err := db.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				apperrors.Respond(c, apperrors.EmailAlreadyExists(input.Email))
				return
			}
			apperrors.Respond(c, apperrors.Unknown("failed to create user", err))
			return
		}

		pair, appErr := issuePair(db, &user)
		if appErr != nil {
			apperrors.Respond(c, appErr)
			return
		}
		c.JSON(http.StatusCreated, pair)
	}
}

// SignInUser is the credential check behind the handler: look the user up
// by email, verify the password hash, issue a token pair. Unknown email
// and wrong password return the same failure.
func SignInUser(db *gorm.DB, email, password string) (*TokenPair, *apperrors.Error) {
	var user models.User
	if err := db.Preload("Roles").Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.EmailOrPasswordIncorrect()
		}
		return nil, apperrors.Unknown("failed to look up user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.EmailOrPasswordIncorrect()
	}

	return issuePair(db, &user)
}

// POST /auth/signin
func SignIn(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignInInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		pair, appErr := SignInUser(db, input.Email, input.Password)
		if appErr != nil {
			apperrors.Respond(c, appErr)
			return
		}
		c.JSON(http.StatusOK, pair)
	}
}

// Refresh rotates a stored refresh token into a fresh pair. The old token
// is revoked; invalid, expired and revoked tokens all answer 401.
func Refresh(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RefreshInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var stored models.RefreshToken
		if err := db.Where("token = ?", input.RefreshToken).First(&stored).Error; err != nil {
			apperrors.Respond(c, apperrors.InvalidRefreshToken())
			return
		}
		if !stored.Usable(time.Now()) {
			apperrors.Respond(c, apperrors.InvalidRefreshToken())
			return
		}

		var user models.User
		if err := db.Preload("Roles").First(&user, "id = ?", stored.UserID).Error; err != nil {
			apperrors.Respond(c, apperrors.InvalidRefreshToken())
			return
		}

		if err := db.Model(&stored).Update("revoked", true).Error; err != nil {
			apperrors.Respond(c, apperrors.AuthenticationUnknown(user.ID, err))
			return
		}

		pair, appErr := issuePair(db, &user)
		if appErr != nil {
			apperrors.Respond(c, appErr)
			return
		}
		c.JSON(http.StatusOK, pair)
	}
}

func issuePair(db *gorm.DB, user *models.User) (*TokenPair, *apperrors.Error) {
	access, err := IssueAccessToken(user)
	if err != nil {
		return nil, apperrors.AuthenticationUnknown(user.ID, err)
	}
	refresh, err := IssueRefreshToken(db, user.ID)
	if err != nil {
		return nil, apperrors.AuthenticationUnknown(user.ID, err)
	}
	return &TokenPair{Token: access, RefreshToken: refresh.Token}, nil
}
