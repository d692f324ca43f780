package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/stockman/internal/middleware"
)

// Pinger はヘルスチェックが必要とするデータストア疎通確認のインターフェース。
// *sql.DBがそのまま満たす。
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	Logger            *slog.Logger
	StatusRecorder    middleware.HTTPStatusRecorder
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter
	AdminChecker      middleware.AdminChecker

	// 認証
	AuthService AuthServiceInterface
	AuthConfig  AuthHandlerConfig

	// 商品カタログ
	ProductStore ProductStoreInterface
	Sanitizer    NameSanitizer

	// 静的ページ
	Static *StaticHandler

	// 運用系
	DB             Pinger
	MetricsHandler http.Handler
}

// NewRouter は全エンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	CORSMiddleware → SecurityHeadersMiddleware → LoggingMiddleware → RecoveryMiddleware
//
// /api/loginにはIP別レート制限、/adminには管理者ガードを追加で適用する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewLoggingMiddleware(deps.Logger, deps.StatusRecorder))
	r.Use(middleware.NewRecoveryMiddleware())

	authHandler := NewAuthHandler(deps.AuthService, deps.AuthConfig)
	productHandler := NewProductHandler(deps.ProductStore, deps.Sanitizer)

	// --- 認証 ---
	r.With(deps.RateLimiter.LoginMiddleware()).Post("/api/login", authHandler.Login)

	// --- 商品カタログ ---
	// 観測された外部契約に合わせて認証は要求しない
	r.Route("/api/products", func(r chi.Router) {
		r.Post("/", productHandler.AddProduct)
		r.Get("/", productHandler.ListProducts)
		r.Delete("/{id}", productHandler.DeleteProduct)
	})

	// --- 管理画面 ---
	r.With(middleware.NewAdminGuardMiddleware(deps.AdminChecker)).Get("/admin", deps.Static.Admin)

	// --- 運用系 ---
	r.Get("/health", NewHealthHandler(deps.DB))
	if deps.MetricsHandler != nil {
		r.Handle("/metrics", deps.MetricsHandler)
	}

	// --- 静的ページ ---
	r.Get("/", deps.Static.Index)
	r.Handle("/*", deps.Static.Assets())

	return r
}

// NewHealthHandler はデータストアへの疎通を確認するヘルスチェックハンドラーを返す。
// GET /health
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			slog.Error("healthcheck failed", slog.String("error", err.Error()))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"status": "unhealthy"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
