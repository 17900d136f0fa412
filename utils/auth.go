// utils/auth.go
package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// The stylist session is an HttpOnly cookie holding an HMAC-signed JWT whose
// subject is the stylist's verified email. A plain email string in the cookie
// would be trivially forgeable.
const (
	StylistSessionCookie = "stylist_email"
	sessionMaxAge        = 365 * 24 * 3600 // 1 year
)

// Generate session secret key (run once initially)
func GenerateSessionSecret() string {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic("failed to generate session secret")
	}
	return base64.StdEncoding.EncodeToString(key)
}

// SignSessionToken issues the session JWT for a stylist email.
func SignSessionToken(email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": email,
		"exp": time.Now().Add(sessionMaxAge * time.Second).Unix(),
		"iat": time.Now().Unix(),
	})

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return "", errors.New("SESSION_SECRET not set")
	}

	return token.SignedString([]byte(secret))
}

// VerifySessionToken validates the session JWT and returns the stylist email.
func VerifySessionToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(os.Getenv("SESSION_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid session claims")
	}
	email, _ := claims["sub"].(string)
	if email == "" {
		return "", errors.New("session has no subject")
	}
	return email, nil
}

// SetStylistSession sets the session cookie identifying the stylist.
func SetStylistSession(c *gin.Context, email string) error {
	token, err := SignSessionToken(email)
	if err != nil {
		return err
	}

	c.SetCookie(
		StylistSessionCookie,
		token,
		sessionMaxAge,
		"/",
		"",
		os.Getenv("SESSION_COOKIE_SECURE") != "false",
		true,
	)
	return nil
}

// StylistEmailFromSession reads and verifies the session cookie. The second
// return is false when no valid session exists.
func StylistEmailFromSession(c *gin.Context) (string, bool) {
	cookie, err := c.Cookie(StylistSessionCookie)
	if err != nil || cookie == "" {
		return "", false
	}
	email, err := VerifySessionToken(cookie)
	if err != nil {
		return "", false
	}
	return email, true
}
