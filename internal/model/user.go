// Package model はドメインモデルを定義する。
package model

import "time"

// User は管理画面にログインできるユーザーを表す。
// レコードはuseraddサブコマンドで事前に作成され、通常運用中は読み取り専用。
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcryptダイジェスト（ソルト込み）
	CreatedAt    time.Time
}

// Session はログイン成功時に発行される認可状態を表す。
// トークンはCookieで運ばれる不透明な識別子。プロセスメモリ上にのみ保持され、
// プロセス再起動で全セッションが破棄される。
type Session struct {
	Token     string
	IsAdmin   bool
	CreatedAt time.Time
	ExpiresAt time.Time // CreatedAt + TTL（固定）
}

// Expired は指定時刻においてセッションが期限切れかどうかを返す。
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
