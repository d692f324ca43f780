package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// mockAdminChecker はテスト用のAdminChecker実装。
type mockAdminChecker struct {
	isAdminFn func(token string) bool
}

func (m *mockAdminChecker) IsAdmin(token string) bool {
	if m.isAdminFn != nil {
		return m.isAdminFn(token)
	}
	return false
}

func TestAdminGuardMiddleware_AllowsValidAdminSession(t *testing.T) {
	checker := &mockAdminChecker{
		isAdminFn: func(token string) bool {
			return token == "valid-admin-token"
		},
	}

	mw := NewAdminGuardMiddleware(checker)

	handlerCalled := false
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "valid-admin-token"})
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if !handlerCalled {
		t.Error("expected handler to be called")
	}
	if w.Result().StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusOK)
	}
}

func TestAdminGuardMiddleware_MissingCookie_Returns401(t *testing.T) {
	checker := &mockAdminChecker{}

	mw := NewAdminGuardMiddleware(checker)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called without cookie")
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}

	// ボディはプレーンテキストの "Unauthorized"
	body, _ := io.ReadAll(resp.Body)
	if strings.TrimSpace(string(body)) != "Unauthorized" {
		t.Errorf("body = %q, want %q", strings.TrimSpace(string(body)), "Unauthorized")
	}
}

func TestAdminGuardMiddleware_UnknownToken_Returns401(t *testing.T) {
	checker := &mockAdminChecker{
		isAdminFn: func(token string) bool {
			return false
		},
	}

	mw := NewAdminGuardMiddleware(checker)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called with unknown token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "unknown-token"})
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusUnauthorized)
	}
}

func TestAdminGuardMiddleware_EmptyCookieValue_Returns401(t *testing.T) {
	checker := &mockAdminChecker{
		isAdminFn: func(token string) bool {
			t.Fatal("IsAdmin should not be called for empty token")
			return false
		},
	}

	mw := NewAdminGuardMiddleware(checker)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called with empty token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: ""})
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusUnauthorized)
	}
}
