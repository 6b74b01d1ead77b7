package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestLogout(t *testing.T) {
	app := fiber.New()
	ctrl := &AuthController{}
	app.Post("/api/auth/logout", ctrl.Logout)

	t.Run("expires auth cookies", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: "stale"})

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}

		cleared := false
		for _, sc := range resp.Header.Values("Set-Cookie") {
			if strings.HasPrefix(sc, "access_token=") {
				cleared = true
				if !strings.Contains(sc, "expires=") && !strings.Contains(sc, "Expires=") {
					t.Errorf("access_token cookie not expired: %s", sc)
				}
			}
		}
		if !cleared {
			t.Error("no Set-Cookie clearing access_token")
		}
	})

	t.Run("idempotent without a session", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
	})
}
