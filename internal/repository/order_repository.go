package repository

import (
	"context"
	"time"

	"barkmart/internal/domain/model"
)

type AdminOrderListFilter struct {
	Page   int
	Limit  int
	Status string
	UserID *int64
	From   *time.Time
	To     *time.Time
}

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)

	//確定画面は公開注文番号で引く
	FindByOrderNumber(ctx context.Context, orderNumber string) (model.Order, error)

	ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Order, int64, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error

	//管理者用の注文一覧
	ListAdmin(ctx context.Context, f AdminOrderListFilter) ([]model.Order, int64, error)

	//ダッシュボード用
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.OrderStatus) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]model.Order, error)
}
