// Package security はアプリケーションのセキュリティ機能を提供する。
//
// NameSanitizerService は商品名をストア境界でサニタイズし、
// 管理画面で一覧表示される際のXSSを防ぐ。bluemondayの
// StrictPolicyですべてのマークアップを除去する。
package security

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// NameSanitizerService は商品名サニタイズのインターフェースを定義する。
// 商品の保存前に使用される。
type NameSanitizerService interface {
	// Sanitize は商品名からHTMLタグ等のマークアップをすべて除去し、
	// 前後の空白を取り除いた文字列を返す。
	// 同一入力に対して常に同一出力を返す（冪等）。
	Sanitize(name string) string
}

// nameSanitizer はNameSanitizerServiceの実装。
// bluemondayのポリシーを保持し、スレッドセーフにサニタイズ処理を行う。
type nameSanitizer struct {
	policy *bluemonday.Policy
}

// NewNameSanitizer はNameSanitizerServiceの新しいインスタンスを生成する。
// StrictPolicyはタグと属性を一切許可しない。商品名はプレーンテキストのみを想定する。
func NewNameSanitizer() *nameSanitizer {
	return &nameSanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// Sanitize は商品名をサニタイズして返す。
func (s *nameSanitizer) Sanitize(name string) string {
	return strings.TrimSpace(s.policy.Sanitize(name))
}
