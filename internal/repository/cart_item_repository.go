package repository

import (
	"context"

	"barkmart/internal/domain/model"
)

type CartItemRepository interface {
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error)

	// (cart, product) の重複は挿入前にこの検索で避ける
	FindByCartAndProduct(ctx context.Context, cartID int64, productID int64) (model.CartItem, error)

	FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error)
	Create(ctx context.Context, item model.CartItem) (model.CartItem, error)
	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error
	DeleteByID(ctx context.Context, cartItemID int64) error

	//カートを空にする（カート行自体は残す）
	DeleteByCartID(ctx context.Context, cartID int64) error

	IsOwnedByUser(ctx context.Context, cartItemID int64, userID int64) (bool, error)
}
