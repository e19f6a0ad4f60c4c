package repository

import (
	"context"

	"barkmart/internal/domain/model"
)

type CartRepository interface {
	//無ければ空カートを作って返す
	GetOrCreateByUserID(ctx context.Context, userID int64) (model.Cart, error)
	FindByUserID(ctx context.Context, userID int64) (model.Cart, error)
}
