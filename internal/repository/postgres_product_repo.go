package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/stockman/internal/model"
)

// defaultProducts は起動時に投入する初期商品セット。
// 既存のIDと競合した場合は挿入をスキップする。
var defaultProducts = []model.Product{
	{ID: "1", Name: "Coffee", Price: 10000},
	{ID: "2", Name: "Tea", Price: 8000},
	{ID: "3", Name: "Sandwich", Price: 15000},
}

// PostgresProductRepo はPostgreSQLを使用した商品リポジトリ。
type PostgresProductRepo struct {
	db *sql.DB
}

// NewPostgresProductRepo はPostgresProductRepoを生成する。
func NewPostgresProductRepo(db *sql.DB) *PostgresProductRepo {
	return &PostgresProductRepo{db: db}
}

// Create は商品を1件挿入する。ID重複は一意制約違反として返る。
func (r *PostgresProductRepo) Create(ctx context.Context, product *model.Product) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO products (id, name, price) VALUES ($1, $2, $3)`,
		product.ID, product.Name, product.Price,
	)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

// ListAll は全商品を返す。順序は保証しない。
func (r *PostgresProductRepo) ListAll(ctx context.Context) ([]model.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, price FROM products`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// DeleteByID は指定IDの商品を削除する。存在しないIDでもエラーにならない。
func (r *PostgresProductRepo) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM products WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// SeedDefaults は初期商品セットを挿入する。
// ON CONFLICT DO NOTHINGにより再起動時の重複投入を無視する。
func (r *PostgresProductRepo) SeedDefaults(ctx context.Context) error {
	for _, p := range defaultProducts {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO products (id, name, price) VALUES ($1, $2, $3)
			 ON CONFLICT (id) DO NOTHING`,
			p.ID, p.Name, p.Price,
		)
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.ID, err)
		}
	}
	return nil
}

// compile-time interface check
var _ ProductRepository = (*PostgresProductRepo)(nil)
