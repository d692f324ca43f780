package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/hitoshi/stockman/internal/model"
)

// ErrorResponseBody はAPIエラーレスポンスの統一フォーマット。
// ボディは常に単一の "error" フィールドを持つJSONオブジェクト。
type ErrorResponseBody struct {
	Error string `json:"error"`
}

// WriteErrorResponse は統一エラーフォーマットでHTTPエラーレスポンスを書き込む。
// すべてのAPIエンドポイントで一貫したエラーレスポンスを提供する。
func WriteErrorResponse(w http.ResponseWriter, statusCode int, apiErr *model.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponseBody{
		Error: apiErr.Message,
	})
}

// WriteServerError はデータストア障害の統一レスポンスを書き込む。
// messageはストアから返ったエラーメッセージをそのまま載せる。
func WriteServerError(w http.ResponseWriter, message string) {
	WriteErrorResponse(w, http.StatusInternalServerError, model.NewStoreFailureError(message))
}
