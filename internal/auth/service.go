// Package auth は資格情報の検証とセッション発行、ユーザー作成を提供する。
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hitoshi/stockman/internal/model"
	"github.com/hitoshi/stockman/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials は資格情報の不一致を表す。
// ユーザー不在とパスワード不一致は区別せず、どちらもこのエラーになる。
// ストア障害とは別のエラークラスであり、呼び出し側は401と500を区別できる。
var ErrInvalidCredentials = errors.New("invalid credentials")

// dummyPasswordHash は存在しないユーザーに対する比較用のbcryptダイジェスト。
// ユーザー不在時にも同等コストの比較を行い、応答時間からユーザー名の
// 存在を推測されにくくする。どの実パスワードとも対応しない値。
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// SessionCreator はログイン成功時のセッション発行に必要なインターフェース。
// session.Managerの部分集合として定義する。
type SessionCreator interface {
	Create(isAdmin bool) (*model.Session, error)
}

// MetricsRecorder はログイン結果のメトリクス記録インターフェース。nil可。
type MetricsRecorder interface {
	RecordLoginSuccess()
	RecordLoginFailure()
}

// Service は認証に関するビジネスロジックを提供する。
type Service struct {
	users    repository.UserRepository
	sessions SessionCreator
	metrics  MetricsRecorder
}

// NewService はServiceを生成する。metricsはnilでもよい。
func NewService(users repository.UserRepository, sessions SessionCreator, metrics MetricsRecorder) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		metrics:  metrics,
	}
}

// Login はユーザー名とパスワードを検証し、成功時にセッションを発行する。
//
// 空のユーザー名・パスワードは専用のバリデーションを設けず、どのユーザーにも
// 一致しない照合として扱う。資格情報の不一致はErrInvalidCredentials、
// ストア障害はラップされたエラーとして返り、両者は呼び出し側で区別できる。
//
// ログはユーザー不在とパスワード不一致で同一の1行のみを出力する。
// 別々のメッセージを出すとログ経由でユーザー名の存在が漏れるため。
func (s *Service) Login(ctx context.Context, username, password string) (*model.Session, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user == nil {
		// 不在時にも同等コストの比較を行う
		_ = bcrypt.CompareHashAndPassword([]byte(dummyPasswordHash), []byte(password))
		s.recordFailure()
		slog.Warn("login failed", slog.String("username", username))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.recordFailure()
		slog.Warn("login failed", slog.String("username", username))
		return nil, ErrInvalidCredentials
	}

	session, err := s.sessions.Create(true)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordLoginSuccess()
	}
	slog.Info("login succeeded", slog.String("username", username))

	return session, nil
}

// CreateUser はユーザーを新規作成する。useraddサブコマンドから使用される。
// パスワードはbcrypt（DefaultCost）でハッシュ化して保存する。
func (s *Service) CreateUser(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("user created", slog.String("user_id", user.ID), slog.String("username", username))
	return user, nil
}

func (s *Service) recordFailure() {
	if s.metrics != nil {
		s.metrics.RecordLoginFailure()
	}
}
