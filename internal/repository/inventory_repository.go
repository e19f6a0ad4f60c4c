package repository

import "context"

type InventoryRepository interface {
	// 在庫の現在値を設定（管理者編集用）
	SetStock(ctx context.Context, productID int64, newStock int64) error

	// 在庫が足りるときだけ減算。条件付きUPDATE一発で行い、
	// 同時注文で在庫が負になる競合を防ぐ
	DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error)

	// 在庫戻し（キャンセルなど）
	IncreaseStock(ctx context.Context, productID int64, qty int64) error
}
