package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"hospital-portal-server/internal/config"
	"hospital-portal-server/internal/models"
	"hospital-portal-server/internal/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret",
		JWTExpirationDays: 1,
	}
}

func protectedRouter(cfg *config.Config, roles ...models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{AuthMiddleware(cfg)}
	if len(roles) > 0 {
		handlers = append(handlers, RoleAuthMiddleware(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})
	r.GET("/protected", handlers...)
	return r
}

func signedToken(t *testing.T, cfg *config.Config, id string, role models.Role) string {
	t.Helper()
	user := &models.User{BaseModel: models.BaseModel{ID: id}, Role: role}
	token, err := utils.GenerateToken(user, cfg)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	cfg := testConfig()
	r := protectedRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, cfg, "user-1", models.RolePatient))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
}

func TestAuthMiddleware_RoleCookies(t *testing.T) {
	cfg := testConfig()
	r := protectedRouter(cfg)

	cases := []struct {
		cookie string
		role   models.Role
	}{
		{"adminToken", models.RoleAdmin},
		{"patientToken", models.RolePatient},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: tc.cookie, Value: signedToken(t, cfg, "user-1", tc.role)})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", tc.cookie, rec.Code)
		}
	}
}

func TestAuthMiddleware_MissingOrBadToken(t *testing.T) {
	cfg := testConfig()
	r := protectedRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", rec.Code)
	}

	// Token signed with a different secret is rejected.
	otherCfg := &config.Config{JWTSecret: "other-secret", JWTExpirationDays: 1}
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, otherCfg, "user-1", models.RoleAdmin))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong secret: status = %d, want 401", rec.Code)
	}
}

func TestRoleAuthMiddleware(t *testing.T) {
	cfg := testConfig()
	r := protectedRouter(cfg, models.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, cfg, "admin-1", models.RoleAdmin))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("admin: status = %d, want 200", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, cfg, "pat-1", models.RolePatient))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("patient on admin route: status = %d, want 403", rec.Code)
	}
}
