package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// statusとして許される値か（遷移順は制約しない）
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// 確定時点のスナップショット。status以外は変更しない
type Order struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"not null;index" json:"user_id"`

	//公開用の注文番号。URLでは内部IDではなくこちらを使う
	OrderNumber string      `gorm:"type:varchar(50);not null;uniqueIndex" json:"order_number"`
	Status      OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`

	//確定時に計算した合計。明細subtotalの和と常に一致する
	TotalAmount decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_amount"`

	ShippingAddressID int64     `gorm:"not null" json:"shipping_address_id"`
	PaymentMethod     string    `gorm:"type:varchar(50);not null" json:"payment_method"`
	Notes             string    `gorm:"type:text" json:"notes"`
	CreatedAt         time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
