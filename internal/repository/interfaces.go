// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/hitoshi/stockman/internal/model"
)

// UserRepository はユーザーデータの永続化インターフェース。
// ユーザーはuseraddで事前作成され、サーバー稼働中は参照のみ行われる。
type UserRepository interface {
	// FindByUsername は指定ユーザー名のユーザーを取得する。見つからない場合はnilを返す。
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// Create はユーザーを作成する。ユーザー名の重複は一意制約違反として返る。
	Create(ctx context.Context, user *model.User) error
}

// ProductRepository は商品データの永続化インターフェース。
type ProductRepository interface {
	// Create は商品を1件挿入する。ID重複は一意制約違反として返る。
	Create(ctx context.Context, product *model.Product) error

	// ListAll は全商品を返す。順序は保証しない。
	ListAll(ctx context.Context) ([]model.Product, error)

	// DeleteByID は指定IDの商品を削除する。
	// 存在しないIDの削除はエラーにならない（冪等削除）。
	DeleteByID(ctx context.Context, id string) error

	// SeedDefaults は初期商品セットを挿入する。既存IDとの競合は無視する。
	SeedDefaults(ctx context.Context) error
}
