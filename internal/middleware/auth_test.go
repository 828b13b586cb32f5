package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"creatorhub/internal/config"
	"creatorhub/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-for-middleware"

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validToken(t *testing.T, userID string, role models.UserRole) string {
	return signToken(t, jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}, testSecret)
}

func TestAuthRequired(t *testing.T) {
	InitMiddleware(&config.Config{JWTSecret: testSecret})

	app := fiber.New()
	app.Get("/protected", AuthRequired, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals("userID"),
			"role":    c.Locals("userRole"),
		})
	})

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{
			name:           "Valid token",
			authHeader:     "Bearer " + validToken(t, "42", models.RoleCreator),
			expectedStatus: fiber.StatusOK,
		},
		{
			name:           "Missing header",
			authHeader:     "",
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:           "Malformed header",
			authHeader:     "NotBearer abc",
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:           "Garbage token",
			authHeader:     "Bearer not.a.jwt",
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name: "Expired token",
			authHeader: "Bearer " + signToken(t, jwt.MapClaims{
				"sub":  "42",
				"role": "creator",
				"exp":  time.Now().Add(-time.Hour).Unix(),
			}, testSecret),
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name: "Wrong secret",
			authHeader: "Bearer " + signToken(t, jwt.MapClaims{
				"sub": "42",
				"exp": time.Now().Add(time.Hour).Unix(),
			}, "some-other-secret"),
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name: "Missing subject",
			authHeader: "Bearer " + signToken(t, jwt.MapClaims{
				"role": "creator",
				"exp":  time.Now().Add(time.Hour).Unix(),
			}, testSecret),
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name: "Non-numeric subject",
			authHeader: "Bearer " + signToken(t, jwt.MapClaims{
				"sub": "not-a-number",
				"exp": time.Now().Add(time.Hour).Unix(),
			}, testSecret),
			expectedStatus: fiber.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestWebSocketAuthRequired(t *testing.T) {
	InitMiddleware(&config.Config{JWTSecret: testSecret})

	app := fiber.New()
	app.Get("/ws", WebSocketAuthRequired, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run("Token via query param", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ws?token="+validToken(t, "7", models.RoleBrand), nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Token via header fallback", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ws", nil)
		req.Header.Set("Authorization", "Bearer "+validToken(t, "7", models.RoleBrand))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("No token anywhere", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ws", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRequireRoles(t *testing.T) {
	newApp := func(role interface{}, handler fiber.Handler) *fiber.App {
		app := fiber.New()
		app.Get("/gated", func(c *fiber.Ctx) error {
			if role != nil {
				c.Locals("userRole", role)
			}
			return c.Next()
		}, handler, func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})
		return app
	}

	tests := []struct {
		name           string
		role           interface{}
		allowed        []models.UserRole
		expectedStatus int
	}{
		{
			name:           "Allowed role",
			role:           models.RoleBrand,
			allowed:        []models.UserRole{models.RoleBrand, models.RoleAdmin},
			expectedStatus: fiber.StatusOK,
		},
		{
			name:           "Disallowed role",
			role:           models.RoleCreator,
			allowed:        []models.UserRole{models.RoleBrand},
			expectedStatus: fiber.StatusForbidden,
		},
		{
			name:           "Role local missing",
			role:           nil,
			allowed:        []models.UserRole{models.RoleAdmin},
			expectedStatus: fiber.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(tt.role, RequireRoles(tt.allowed...))
			resp, err := app.Test(httptest.NewRequest("GET", "/gated", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}
