package usecase

import (
	"context"
	"errors"
	"io"
	"strings"

	"barkmart/internal/domain/model"
	"barkmart/internal/infra/storage"
	"barkmart/internal/pagination"
	repo "barkmart/internal/repository"
	"barkmart/internal/slug"

	"github.com/shopspring/decimal"
)

// 管理者の商品管理
type AdminProductUsecase struct {
	productRepo  repo.ProductRepository
	categoryRepo repo.CategoryRepository
	images       storage.ImageStorage
}

// DI
func NewAdminProductUsecase(
	productRepo repo.ProductRepository,
	categoryRepo repo.CategoryRepository,
	images storage.ImageStorage,
) *AdminProductUsecase {
	return &AdminProductUsecase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		images:       images,
	}
}

// アップロードされた商品画像
type ImageUpload struct {
	Filename string
	Data     io.Reader
}

type AdminProductInput struct {
	CategoryID    int64
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int64
	IsActive      bool
	Image         *ImageUpload
}

func (in AdminProductInput) validate() error {
	if in.CategoryID <= 0 {
		return NewValidationError("invalid category_id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return NewValidationError("name is required")
	}
	if in.Price.IsNegative() {
		return NewValidationError("price must be >= 0")
	}
	if in.StockQuantity < 0 {
		return NewValidationError("stock_quantity must be >= 0")
	}
	return nil
}

type AdminProductListOutput struct {
	Items      []model.Product       `json:"items"`
	Pagination pagination.Pagination `json:"pagination"`
}

const adminProductPageSize = 20

func (u *AdminProductUsecase) List(ctx context.Context, page int) (AdminProductListOutput, error) {
	if page < 1 {
		page = 1
	}

	items, total, err := u.productRepo.ListAdmin(ctx, page, adminProductPageSize)
	if err != nil {
		return AdminProductListOutput{}, newPersistenceError(err)
	}

	return AdminProductListOutput{
		Items:      items,
		Pagination: pagination.Paginate(page, adminProductPageSize, total),
	}, nil
}

func (u *AdminProductUsecase) Get(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewValidationError("invalid id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, &NotFoundError{Resource: "product"}
	}
	if err != nil {
		return model.Product{}, newPersistenceError(err)
	}
	return p, nil
}

// Create は商品を作成する。slugは名前から生成する
func (u *AdminProductUsecase) Create(ctx context.Context, in AdminProductInput) (model.Product, error) {
	if err := in.validate(); err != nil {
		return model.Product{}, err
	}

	if _, err := u.categoryRepo.FindByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, &NotFoundError{Resource: "category"}
		}
		return model.Product{}, newPersistenceError(err)
	}

	imageURL := ""
	if in.Image != nil {
		url, err := u.images.Save(in.Image.Filename, in.Image.Data)
		if err != nil {
			return model.Product{}, newPersistenceError(err)
		}
		imageURL = url
	}

	created, err := u.productRepo.Create(ctx, model.Product{
		CategoryID:    in.CategoryID,
		Name:          in.Name,
		Slug:          slug.Make(in.Name),
		Description:   in.Description,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
		ImageURL:      imageURL,
		IsActive:      in.IsActive,
	})
	if err != nil {
		return model.Product{}, newPersistenceError(err)
	}
	return created, nil
}

// Update は商品を更新する。名前が変わったらslugも作り直す。
// 在庫はここで直接セットされる（管理者編集）
func (u *AdminProductUsecase) Update(ctx context.Context, productID int64, in AdminProductInput) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewValidationError("invalid id")
	}
	if err := in.validate(); err != nil {
		return model.Product{}, err
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, &NotFoundError{Resource: "product"}
	}
	if err != nil {
		return model.Product{}, newPersistenceError(err)
	}

	if _, err := u.categoryRepo.FindByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, &NotFoundError{Resource: "category"}
		}
		return model.Product{}, newPersistenceError(err)
	}

	p.CategoryID = in.CategoryID
	if p.Name != in.Name {
		p.Slug = slug.Make(in.Name)
	}
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.StockQuantity = in.StockQuantity
	p.IsActive = in.IsActive

	if in.Image != nil {
		url, err := u.images.Save(in.Image.Filename, in.Image.Data)
		if err != nil {
			return model.Product{}, newPersistenceError(err)
		}
		p.ImageURL = url
	}

	if err := u.productRepo.Update(ctx, p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, &NotFoundError{Resource: "product"}
		}
		return model.Product{}, newPersistenceError(err)
	}

	return p, nil
}

func (u *AdminProductUsecase) Delete(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return NewValidationError("invalid id")
	}

	if err := u.productRepo.SoftDelete(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return &NotFoundError{Resource: "product"}
		}
		return newPersistenceError(err)
	}
	return nil
}
