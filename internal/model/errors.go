package model

import "fmt"

// APIError はHTTPレスポンスに変換されるエラーを表す。
// レスポンスボディには `{"error": Message}` の形でMessageのみが載る。
type APIError struct {
	Code    string // エラーコード（ログ用）
	Message string // クライアントに返すメッセージ
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInvalidRequest     = "INVALID_REQUEST"
	ErrCodeStoreFailure       = "STORE_FAILURE"
)

// NewInvalidCredentialsError は認証失敗エラーを生成する。
// ユーザー不在とパスワード不一致のどちらでも同一のメッセージを返し、
// ユーザー名の存在をレスポンスから推測できないようにする。
func NewInvalidCredentialsError() *APIError {
	return &APIError{
		Code:    ErrCodeInvalidCredentials,
		Message: "Invalid credentials",
	}
}

// NewUnauthorizedError は認可なしエラーを生成する。
// セッションの欠如・期限切れ・不明トークンはすべてこのエラーに畳み込まれる。
func NewUnauthorizedError() *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: "Unauthorized",
	}
}

// NewInvalidRequestError はリクエスト形式エラーを生成する。
func NewInvalidRequestError(reason string) *APIError {
	return &APIError{
		Code:    ErrCodeInvalidRequest,
		Message: reason,
	}
}

// NewStoreFailureError はデータストア障害エラーを生成する。
// messageはそのままクライアントに返る（内部ツール前提の簡略化。公開時は開示リスク）。
func NewStoreFailureError(message string) *APIError {
	return &APIError{
		Code:    ErrCodeStoreFailure,
		Message: message,
	}
}
