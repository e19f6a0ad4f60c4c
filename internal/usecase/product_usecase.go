package usecase

import (
	"context"
	"errors"
	"strings"

	"barkmart/internal/domain/model"
	"barkmart/internal/pagination"
	repo "barkmart/internal/repository"
)

// 公開カタログの業務ロジック
type ProductUsecase struct {
	productRepo  repo.ProductRepository
	categoryRepo repo.CategoryRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, categoryRepo repo.CategoryRepository) *ProductUsecase {
	return &ProductUsecase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// GET /productsの入力
type ListProductsInput struct {
	Page     int
	Category string // カテゴリのslug
	Search   string
	Sort     string // newest / price_asc / price_desc / name
}

type ProductListOutput struct {
	Items      []model.Product       `json:"items"`
	Categories []model.Category      `json:"categories"`
	Pagination pagination.Pagination `json:"pagination"`
}

// 1ページあたりの件数は固定
const productPageSize = 12

func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if len(in.Search) > 100 {
		return ProductListOutput{}, NewValidationError("search too long")
	}
	switch in.Sort {
	case "", "newest", "price_asc", "price_desc", "name":
	default:
		return ProductListOutput{}, NewValidationError("invalid sort")
	}

	q := repo.ProductListQuery{
		Page:   in.Page,
		Limit:  productPageSize,
		Search: strings.TrimSpace(in.Search),
		Sort:   in.Sort,
	}

	//カテゴリはslugで絞り込む。未知のslugは絞り込みなし扱い
	if in.Category != "" {
		cat, err := u.categoryRepo.FindBySlug(ctx, in.Category)
		if err == nil {
			q.CategoryID = &cat.ID
		} else if !errors.Is(err, repo.ErrNotFound) {
			return ProductListOutput{}, newPersistenceError(err)
		}
	}

	items, total, err := u.productRepo.ListPublic(ctx, q)
	if err != nil {
		return ProductListOutput{}, newPersistenceError(err)
	}

	categories, err := u.categoryRepo.ListAll(ctx)
	if err != nil {
		return ProductListOutput{}, newPersistenceError(err)
	}

	return ProductListOutput{
		Items:      items,
		Categories: categories,
		Pagination: pagination.Paginate(in.Page, productPageSize, total),
	}, nil
}

// GetProductBySlug は公開商品をslugで引く。非公開は存在しない扱い
func (u *ProductUsecase) GetProductBySlug(ctx context.Context, slug string) (model.Product, error) {
	if strings.TrimSpace(slug) == "" {
		return model.Product{}, NewValidationError("invalid slug")
	}

	p, err := u.productRepo.FindBySlug(ctx, slug)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, &NotFoundError{Resource: "product"}
	}
	if err != nil {
		return model.Product{}, newPersistenceError(err)
	}
	if !p.IsActive {
		return model.Product{}, &NotFoundError{Resource: "product"}
	}

	return p, nil
}
