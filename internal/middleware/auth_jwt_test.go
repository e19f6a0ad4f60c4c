package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"barkmart/internal/config"
	"barkmart/internal/middleware"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func mustMakeJWT(t *testing.T, secret string, userID int64, role string, method jwt.SigningMethod) string {
	t.Helper()

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	}

	tok := jwt.NewWithClaims(method, claims)
	raw, err := tok.SignedString([]byte(secret))
	assert.NoError(t, err)
	return raw
}

func runRequest(t *testing.T, e *echo.Echo, method string, path string, authz string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

type mwErrorBody struct {
	Error string `json:"error"`
}

func decodeMWError(t *testing.T, rec *httptest.ResponseRecorder) mwErrorBody {
	t.Helper()
	var r mwErrorBody
	_ = json.NewDecoder(rec.Body).Decode(&r)
	return r
}

func protectedEcho(cfg config.Config) *echo.Echo {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		userID, _ := c.Get(middleware.CtxUserIDKey).(int64)
		role, _ := c.Get(middleware.CtxUserRoleKey).(string)
		return c.JSON(http.StatusOK, map[string]interface{}{
			"user_id": userID,
			"role":    role,
		})
	}, middleware.AuthJWT(cfg))
	return e
}

// Authorizationなし => 401
func TestAuthJWT_Unauthorized_NoHeader(t *testing.T) {
	e := protectedEcho(config.Config{JWTSecret: "test-secret"})

	rec := runRequest(t, e, http.MethodGet, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", decodeMWError(t, rec).Error)
}

// Bearer形式じゃない => 401
func TestAuthJWT_Unauthorized_BadScheme(t *testing.T) {
	e := protectedEcho(config.Config{JWTSecret: "test-secret"})

	rec := runRequest(t, e, http.MethodGet, "/protected", "Token abc.def.ghi")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// 署名違い => 401
func TestAuthJWT_Unauthorized_BadSignature(t *testing.T) {
	e := protectedEcho(config.Config{JWTSecret: "correct-secret"})

	raw := mustMakeJWT(t, "wrong-secret", 1, "USER", jwt.SigningMethodHS256)

	rec := runRequest(t, e, http.MethodGet, "/protected", "Bearer "+raw)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// アルゴリズム違い（HS512）=> 401
func TestAuthJWT_Unauthorized_WrongAlg(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}
	e := protectedEcho(cfg)

	raw := mustMakeJWT(t, cfg.JWTSecret, 1, "USER", jwt.SigningMethodHS512)

	rec := runRequest(t, e, http.MethodGet, "/protected", "Bearer "+raw)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// 正常：ctxに値が入る
func TestAuthJWT_Success_SetsContext(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}
	e := protectedEcho(cfg)

	raw := mustMakeJWT(t, cfg.JWTSecret, 123, "USER", jwt.SigningMethodHS256)

	rec := runRequest(t, e, http.MethodGet, "/protected", "Bearer "+raw)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		UserID int64  `json:"user_id"`
		Role   string `json:"role"`
	}
	_ = json.NewDecoder(rec.Body).Decode(&body)
	assert.Equal(t, int64(123), body.UserID)
	assert.Equal(t, "USER", body.Role)
}

// =====================
// AdminRoleGuard
// =====================

func adminEcho(cfg config.Config) *echo.Echo {
	e := echo.New()
	e.GET("/admin/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	}, middleware.AuthJWT(cfg), middleware.AdminRoleGuard())
	return e
}

// USERは403
func TestAdminRoleGuard_Forbidden_ForUser(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}
	e := adminEcho(cfg)

	raw := mustMakeJWT(t, cfg.JWTSecret, 1, "USER", jwt.SigningMethodHS256)

	rec := runRequest(t, e, http.MethodGet, "/admin/ping", "Bearer "+raw)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "admin only", decodeMWError(t, rec).Error)
}

// ADMINは通る
func TestAdminRoleGuard_Allows_Admin(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}
	e := adminEcho(cfg)

	raw := mustMakeJWT(t, cfg.JWTSecret, 1, "ADMIN", jwt.SigningMethodHS256)

	rec := runRequest(t, e, http.MethodGet, "/admin/ping", "Bearer "+raw)
	assert.Equal(t, http.StatusOK, rec.Code)
}
