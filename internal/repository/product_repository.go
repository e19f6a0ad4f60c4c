package repository

import (
	"context"
	"errors"

	"barkmart/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 公開一覧の検索条件
type ProductListQuery struct {
	Page       int
	Limit      int
	CategoryID *int64
	Search     string
	Sort       string
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	ListPublic(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	ListAdmin(ctx context.Context, page int, limit int) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	//公開ページはIDではなくslugで引く
	FindBySlug(ctx context.Context, slug string) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	SoftDelete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
