package controllers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"hostel/dto"
	"hostel/models"
	"hostel/response"
	"hostel/services"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

const tokenExpiryMinutes = 7 * 24 * 60

type AuthController struct {
	db          *gorm.DB
	authService *services.AuthService
}

func NewAuthController(db *gorm.DB, authService *services.AuthService) *AuthController {
	return &AuthController{
		db:          db,
		authService: authService,
	}
}

func (ctrl *AuthController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := ctrl.authService.Register(models.User{
		Name:           input.Name,
		Email:          input.Email,
		Password:       input.Password,
		PhoneNumber:    input.PhoneNumber,
		Role:           input.Role,
		RoomPreference: input.RoomPreference,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	token, err := services.GenerateToken(services.UserInfo{UserId: user.ID, Role: user.Role}, tokenExpiryMinutes)
	if err != nil {
		response.ServerError(c)
		return
	}
	services.SetTokenCookie(c, token)

	response.Created(c, gin.H{
		"user":        user,
		"accessToken": token,
	})
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := ctrl.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	token, err := services.GenerateToken(services.UserInfo{UserId: user.ID, Role: user.Role}, tokenExpiryMinutes)
	if err != nil {
		response.ServerError(c)
		return
	}
	services.SetTokenCookie(c, token)

	response.Success(c, gin.H{
		"user":        user,
		"accessToken": token,
	})
}

func (ctrl *AuthController) Logout(c *gin.Context) {
	services.ClearTokenCookie(c)
	response.SuccessWithMessage(c, "Logged out successfully", nil)
}

// Me returns the authenticated account with the assigned room loaded.
func (ctrl *AuthController) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := ctrl.db.Preload("AssignedRoom").First(&user, userID).Error; err != nil {
		response.NotFoundMessage(c, "User not found")
		return
	}

	c.Header("Cache-Control", "no-store")
	response.Success(c, user)
}

// AuthGoogle signs a user in with a Google ID token, provisioning a
// verified Resident account on first use.
func (ctrl *AuthController) AuthGoogle(c *gin.Context) {
	var token struct {
		TokenId string `json:"tokenId"`
	}

	if err := c.ShouldBindJSON(&token); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payload, err := verifyGoogleIDToken(c.Request.Context(), token.TokenId)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	googleUser, err := googleUserFromClaims(payload.Claims)
	if err != nil {
		response.BadRequest(c, "Google token is missing the email claim")
		return
	}
	if !googleUser.VerifiedEmail {
		response.BadRequest(c, "Email has not been verified")
		return
	}

	var user models.User
	result := ctrl.db.Where("email = ?", googleUser.Email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		user, err = ctrl.authService.CreateGoogleUser(googleUser.Name, googleUser.Email, googleUser.Picture)
		if err != nil {
			response.ServerError(c)
			return
		}
	} else if result.Error != nil {
		response.ServerError(c)
		return
	}

	accessToken, err := services.GenerateToken(services.UserInfo{UserId: user.ID, Role: user.Role}, tokenExpiryMinutes)
	if err != nil {
		response.ServerError(c)
		return
	}
	services.SetTokenCookie(c, accessToken)

	response.Success(c, gin.H{
		"user":        user,
		"accessToken": accessToken,
	})
}

func verifyGoogleIDToken(ctx context.Context, tokenId string) (*idtoken.Payload, error) {
	return idtoken.Validate(ctx, tokenId, os.Getenv("GOOGLE_CLIENT_ID"))
}

// googleUserFromClaims reads the profile claims without assuming any of
// them is present; only the email is mandatory.
func googleUserFromClaims(claims map[string]interface{}) (dto.GoogleUser, error) {
	email, _ := claims["email"].(string)
	if email == "" {
		return dto.GoogleUser{}, fmt.Errorf("email claim missing")
	}

	name, _ := claims["name"].(string)
	if name == "" {
		name = email
	}
	verified, _ := claims["email_verified"].(bool)
	picture, _ := claims["picture"].(string)

	return dto.GoogleUser{
		Name:          name,
		Email:         email,
		VerifiedEmail: verified,
		Picture:       picture,
	}, nil
}
