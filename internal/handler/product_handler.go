package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/stockman/internal/middleware"
	"github.com/hitoshi/stockman/internal/model"
)

// ProductStoreInterface は商品ハンドラーが必要とするストアインターフェース。
type ProductStoreInterface interface {
	// Create は商品を1件挿入する。
	Create(ctx context.Context, product *model.Product) error
	// ListAll は全商品を返す。順序は保証しない。
	ListAll(ctx context.Context) ([]model.Product, error)
	// DeleteByID は指定IDの商品を削除する。存在しないIDもエラーにならない。
	DeleteByID(ctx context.Context, id string) error
}

// NameSanitizer は商品名のサニタイズインターフェース。
type NameSanitizer interface {
	Sanitize(name string) string
}

// ProductHandler は商品カタログのHTTPハンドラー。
type ProductHandler struct {
	store     ProductStoreInterface
	sanitizer NameSanitizer
}

// NewProductHandler はProductHandlerを生成する。
func NewProductHandler(store ProductStoreInterface, sanitizer NameSanitizer) *ProductHandler {
	return &ProductHandler{
		store:     store,
		sanitizer: sanitizer,
	}
}

// addProductRequest は商品追加リクエストのボディ。
type addProductRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// AddProduct は商品を追加する。
// POST /api/products
func (h *ProductHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var req addProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteErrorResponse(w, http.StatusBadRequest,
			model.NewInvalidRequestError("invalid JSON body"))
		return
	}

	if req.ID == "" {
		middleware.WriteErrorResponse(w, http.StatusBadRequest,
			model.NewInvalidRequestError("id is required"))
		return
	}
	if req.Price < 0 {
		middleware.WriteErrorResponse(w, http.StatusBadRequest,
			model.NewInvalidRequestError("price must be non-negative"))
		return
	}

	product := &model.Product{
		ID:    req.ID,
		Name:  h.sanitizer.Sanitize(req.Name),
		Price: req.Price,
	}

	if err := h.store.Create(r.Context(), product); err != nil {
		slog.Error("failed to add product",
			slog.String("product_id", req.ID),
			slog.String("error", err.Error()),
		)
		middleware.WriteServerError(w, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messageResponse{Message: "Product added successfully"})
}

// ListProducts は全商品を返す。
// GET /api/products
//
// レスポンスは商品オブジェクトの素のJSON配列。商品が無い場合は空配列を返す。
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.ListAll(r.Context())
	if err != nil {
		slog.Error("failed to list products", slog.String("error", err.Error()))
		middleware.WriteServerError(w, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// DeleteProduct は指定IDの商品を削除する。
// DELETE /api/products/{id}
//
// 存在しないIDの削除も成功として扱う（冪等削除）。
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.store.DeleteByID(r.Context(), id); err != nil {
		slog.Error("failed to delete product",
			slog.String("product_id", id),
			slog.String("error", err.Error()),
		)
		middleware.WriteServerError(w, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messageResponse{Message: "Product deleted successfully"})
}
