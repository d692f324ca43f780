// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"net/http"
)

// SessionCookieName はセッショントークンを運ぶCookieの名前。
const SessionCookieName = "session_token"

// AdminChecker はセッションの管理者権限判定に必要なインターフェース。
// session.Managerの部分集合として定義する。
type AdminChecker interface {
	IsAdmin(token string) bool
}

// NewAdminGuardMiddleware はCookieのセッショントークンを検証し、
// 管理者セッションを持たないリクエストを401で拒否するミドルウェアを返す。
// Cookieの欠如・不明トークン・期限切れはすべて同じ401になる。
// リダイレクトや再試行の誘導は行わない。
func NewAdminGuardMiddleware(checker AdminChecker) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if !checker.IsAdmin(cookie.Value) {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
