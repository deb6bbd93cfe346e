package web

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"todoapp/internal/model"
)

const viewerKey = "viewer"

type claims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// signToken issues a bearer token for the authenticated user.
func (h *Handler) signToken(user model.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Login,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.tokenTTL)),
		},
	})
	signed, err := token.SignedString(h.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// authMiddleware validates the bearer token and loads the viewer, whose
// time-zone setting governs timestamp display downstream.
func (h *Handler) authMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing token"})
		}

		var cl claims
		token, err := jwt.ParseWithClaims(raw, &cl, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return h.secret, nil
		})
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
		}

		viewer, ok := h.users.FindByID(c.Request().Context(), cl.UserID)
		if !ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
		}
		c.Set(viewerKey, viewer)
		return next(c)
	}
}

func viewerFrom(c echo.Context) model.User {
	viewer, _ := c.Get(viewerKey).(model.User)
	return viewer
}
