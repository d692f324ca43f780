package model

// Product はカタログの商品を表す。
// IDは呼び出し側が指定する文字列で、ストア側の一意制約のみが重複を防ぐ。
// Priceは最小通貨単位の非負整数。
type Product struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}
