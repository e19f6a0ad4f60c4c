package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 購入時点の商品名・価格を非正規化して持つ。
// 後から商品価格が変わっても過去の注文は変わらない
type OrderItem struct {
	ID           int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID      int64           `gorm:"not null;index" json:"order_id"`
	ProductID    int64           `gorm:"not null;index" json:"product_id"`
	ProductName  string          `gorm:"type:varchar(255);not null" json:"product_name"`
	ProductPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"product_price"`
	Quantity     int64           `gorm:"not null" json:"quantity"`

	//price × quantity。作成後に再計算しない
	Subtotal  decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"subtotal"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
