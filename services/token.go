package services

import (
	"os"
	"time"

	"hostel/errors"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// secretKey is read per call so the .env file loaded in main is honored.
func secretKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey())
}

// GetUserIDFromToken verifies the token and returns userID and role.
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Unexpected signing method", nil)
		}
		return secretKey(), nil
	})
	if err != nil {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Token is not valid", err)
	}
	if !token.Valid {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Token is not valid", nil)
	}

	if claims.UserInfo.UserId == 0 {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "User info missing from token", nil)
	}

	return claims.UserInfo.UserId, claims.UserInfo.Role, nil
}

// SetTokenCookie mirrors the token into an httpOnly cookie so browser
// clients that do not keep the Authorization header still stay signed in.
func SetTokenCookie(c *gin.Context, accessToken string) {
	c.SetCookie(
		"access_token",
		accessToken,
		7*24*60*60,
		"/",
		"",
		true,
		true,
	)
}

func ClearTokenCookie(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", true, true)
}
