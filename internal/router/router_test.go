package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"yalla-server/internal/config"
	"yalla-server/internal/service"
	"yalla-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.InitConfig("")
	testutils.SetupDB(t)
	service.InitializeSettings()
	service.ClearCache()
	t.Cleanup(service.ClearCache)

	r := gin.New()
	Init(r)
	return r
}

// 测试内容：验证路由注册后 ping 与公开接口可访问。
func TestInit_PublicRoutes(t *testing.T) {
	r := setupRouter(t)

	for _, path := range []string{"/api/ping", "/api/webinfo", "/api/features", "/api/cuisines", "/api/restaurants"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("%s 期望 200，实际为 %d", path, w.Code)
		}
	}
}

// 测试内容：验证用户路由与管理路由未认证时返回 401。
func TestInit_ProtectedRoutesRequireAuth(t *testing.T) {
	r := setupRouter(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/user/me"},
		{http.MethodPost, "/api/user/restaurants"},
		{http.MethodGet, "/api/admin/stats"},
		{http.MethodGet, "/api/admin/users"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s 期望 401，实际为 %d", tc.method, tc.path, w.Code)
		}
	}
}

// 测试内容：验证未知 API 路径返回 404（安全标头已附加）。
func TestInit_SecurityHeaders(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("期望 nosniff，实际为 %q", got)
	}
	if got := w.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Fatalf("期望 DENY，实际为 %q", got)
	}
}
