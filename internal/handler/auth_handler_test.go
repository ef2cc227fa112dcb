package handler

import (
	"net/http"
	"testing"

	"yalla-server/internal/consts"
	"yalla-server/internal/service"

	"github.com/gin-gonic/gin"
)

func authTestRouter() *gin.Engine {
	r := gin.New()
	r.POST("/api/auth/register", Register)
	r.POST("/api/auth/login", Login)
	return r
}

// 测试内容：验证注册登录的完整流程返回 Token。
func TestRegisterThenLogin(t *testing.T) {
	setupTestDB(t)
	r := authTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"username": "amal",
		"password": "passw0rd1",
		"email":    "amal@example.com",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("注册期望 200，实际为 %d (body=%s)", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "amal",
		"password": "passw0rd1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("登录期望 200，实际为 %d (body=%s)", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if token, _ := body["token"].(string); token == "" {
		t.Fatal("期望返回 Token")
	}
}

// 测试内容：验证错误密码登录返回 401，注册冲突返回 409。
func TestAuthErrorMapping(t *testing.T) {
	setupTestDB(t)
	r := authTestRouter()

	doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"username": "amal",
		"password": "passw0rd1",
		"email":    "amal@example.com",
	})

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "amal",
		"password": "wrongpass1",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401，实际为 %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"username": "amal",
		"password": "passw0rd1",
		"email":    "other@example.com",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("期望 409，实际为 %d", w.Code)
	}
}

// 测试内容：验证注册开关关闭时注册接口返回 403。
func TestRegister_DisabledReturns403(t *testing.T) {
	setupTestDB(t)
	if err := service.SetSetting(consts.ConfigAllowRegister, "false"); err != nil {
		t.Fatalf("关闭注册失败: %v", err)
	}
	r := authTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"username": "amal",
		"password": "passw0rd1",
		"email":    "amal@example.com",
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("期望 403，实际为 %d", w.Code)
	}
}
