// Package session はプロセス内セッション管理を提供する。
// トークンから認可フラグ（isAdmin）への対応をメモリ上に保持し、
// 固定TTLで期限切れとする。永続化は行わず、再起動で全セッションが消える。
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hitoshi/stockman/internal/model"
)

// MetricsRecorder はセッションメトリクス収集のインターフェース。
// nilの場合は記録しない。
type MetricsRecorder interface {
	RecordSessionCreated()
	RecordSessionsExpired(count int)
	SetActiveSessions(n int)
}

// Manager はセッションの発行・検証・破棄を行う。
// mapへのアクセスは単一のRWMutexで直列化する。想定負荷では
// キー単位のロック分割は不要で、粗いロックで正しさを優先する。
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session

	ttl     time.Duration
	now     func() time.Time
	metrics MetricsRecorder
}

// Option はManagerの生成オプション。
type Option func(*Manager)

// WithClock は現在時刻の取得関数を差し替える。TTLのテスト用。
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// WithMetrics はメトリクス記録先を設定する。
func WithMetrics(rec MetricsRecorder) Option {
	return func(m *Manager) {
		m.metrics = rec
	}
}

// NewManager はManagerを生成する。ttlはセッションの絶対有効期間。
func NewManager(ttl time.Duration, opts ...Option) *Manager {
	m := &Manager{
		sessions: make(map[string]*model.Session),
		ttl:      ttl,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create は新しいセッションを発行して返す。
// トークンは暗号的に安全な乱数から生成される。
func (m *Manager) Create(isAdmin bool) (*model.Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	now := m.now()
	sess := &model.Session{
		Token:     token,
		IsAdmin:   isAdmin,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	m.mu.Lock()
	m.sessions[token] = sess
	active := len(m.sessions)
	m.mu.Unlock()

	if m.metrics != nil {
		m.metrics.RecordSessionCreated()
		m.metrics.SetActiveSessions(active)
	}

	return sess, nil
}

// IsAdmin はトークンが管理者権限を持つ生きたセッションを指すかを返す。
// トークンの欠如・不明・期限切れはすべてfalseになる（fail-open to unauthorized）。
// 期限切れエントリは参照時に遅延削除する。
func (m *Manager) IsAdmin(token string) bool {
	if token == "" {
		return false
	}

	m.mu.RLock()
	sess, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return false
	}

	if sess.Expired(m.now()) {
		m.evict(token)
		return false
	}

	return sess.IsAdmin
}

// Destroy は指定トークンのセッションを破棄する。存在しないトークンは無視する。
func (m *Manager) Destroy(token string) {
	m.evict(token)
}

// Len は生存中（期限切れ含む未掃き出し）のセッション数を返す。
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep は期限切れセッションをまとめて削除し、削除件数を返す。
// 遅延削除の補助であり、正しさには必須ではない。
func (m *Manager) Sweep() int {
	now := m.now()

	m.mu.Lock()
	removed := 0
	for token, sess := range m.sessions {
		if sess.Expired(now) {
			delete(m.sessions, token)
			removed++
		}
	}
	active := len(m.sessions)
	m.mu.Unlock()

	if m.metrics != nil && removed > 0 {
		m.metrics.RecordSessionsExpired(removed)
		m.metrics.SetActiveSessions(active)
	}

	return removed
}

// StartSweeper は指定間隔でSweepを実行するバックグラウンドループを開始する。
// ctxのキャンセルで停止する。呼び出し側がgoroutineとして起動すること。
func (m *Manager) StartSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := m.Sweep(); removed > 0 {
				slog.Info("expired sessions swept",
					slog.Int("removed", removed),
					slog.Int("active", m.Len()),
				)
			}
		}
	}
}

func (m *Manager) evict(token string) {
	m.mu.Lock()
	_, ok := m.sessions[token]
	if ok {
		delete(m.sessions, token)
	}
	active := len(m.sessions)
	m.mu.Unlock()

	if m.metrics != nil && ok {
		m.metrics.SetActiveSessions(active)
	}
}

// generateToken は暗号的に安全なセッショントークンを生成する。
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
