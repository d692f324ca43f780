package repository

import (
	"testing"
)

// PostgresUserRepoはUserRepositoryインターフェースを満たすことを検証
func TestPostgresUserRepo_ImplementsInterface(t *testing.T) {
	var _ UserRepository = (*PostgresUserRepo)(nil)
}

// PostgresProductRepoはProductRepositoryインターフェースを満たすことを検証
func TestPostgresProductRepo_ImplementsInterface(t *testing.T) {
	var _ ProductRepository = (*PostgresProductRepo)(nil)
}

// NewPostgresUserRepoが正しく初期化されることを検証
func TestNewPostgresUserRepo_Initializes(t *testing.T) {
	repo := NewPostgresUserRepo(nil)
	if repo == nil {
		t.Fatal("expected non-nil repo")
	}
}

// NewPostgresProductRepoが正しく初期化されることを検証
func TestNewPostgresProductRepo_Initializes(t *testing.T) {
	repo := NewPostgresProductRepo(nil)
	if repo == nil {
		t.Fatal("expected non-nil repo")
	}
}

// 初期商品セットの内容が固定の3件であることを検証
func TestDefaultProducts_FixedSeedSet(t *testing.T) {
	if len(defaultProducts) != 3 {
		t.Fatalf("len(defaultProducts) = %d, want 3", len(defaultProducts))
	}

	want := map[string]struct {
		name  string
		price int64
	}{
		"1": {"Coffee", 10000},
		"2": {"Tea", 8000},
		"3": {"Sandwich", 15000},
	}

	for _, p := range defaultProducts {
		w, ok := want[p.ID]
		if !ok {
			t.Errorf("unexpected seed product id %q", p.ID)
			continue
		}
		if p.Name != w.name {
			t.Errorf("seed product %s name = %q, want %q", p.ID, p.Name, w.name)
		}
		if p.Price != w.price {
			t.Errorf("seed product %s price = %d, want %d", p.ID, p.Price, w.price)
		}
	}
}
