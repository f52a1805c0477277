package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var errNoActiveProfile = errors.New("no active profile")

type sessionClaims struct {
	ProfileID string `json:"pid"`
	jwt.RegisteredClaims
}

func (handler *Handler) buildSessionToken(profileID string) (string, error) {
	now := handler.now()
	claims := sessionClaims{
		ProfileID: profileID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profileID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(handler.tokenKey)
}

func (handler *Handler) parseSessionToken(tokenValue string) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenValue, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.tokenKey, nil
	}, jwt.WithTimeFunc(handler.now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", errNoActiveProfile
	}
	profileID := strings.TrimSpace(claims.ProfileID)
	if profileID == "" {
		return "", errNoActiveProfile
	}
	return profileID, nil
}

func (handler *Handler) setSessionCookie(c *fiber.Ctx, profileID string) error {
	token, err := handler.buildSessionToken(profileID)
	if err != nil {
		return err
	}
	sealed, err := handler.cookieCodec.seal(sessionCookiePurpose, []byte(token))
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    sealed,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  handler.now().Add(sessionTokenTTL),
	})
	return nil
}

func (handler *Handler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}

// sessionProfileID unseals the session cookie and returns the profile id it carries.
func (handler *Handler) sessionProfileID(c *fiber.Ctx) (string, error) {
	raw := strings.TrimSpace(c.Cookies(sessionCookieName))
	if raw == "" {
		return "", errNoActiveProfile
	}
	token, err := handler.cookieCodec.open(sessionCookiePurpose, raw)
	if err != nil {
		return "", errNoActiveProfile
	}
	return handler.parseSessionToken(string(token))
}
