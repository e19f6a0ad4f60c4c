package usecase_test

import (
	"context"
	"strings"
	"testing"

	"barkmart/internal/domain/model"
	repo "barkmart/internal/repository"
	"barkmart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Repository mocks
// =====================

type CatalogProductRepoMock struct{ mock.Mock }

func (m *CatalogProductRepoMock) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *CatalogProductRepoMock) ListAdmin(ctx context.Context, page int, limit int) ([]model.Product, int64, error) {
	panic("not used in ProductUsecase tests")
}

func (m *CatalogProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	panic("not used in ProductUsecase tests")
}

func (m *CatalogProductRepoMock) FindBySlug(ctx context.Context, slug string) (model.Product, error) {
	args := m.Called(ctx, slug)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *CatalogProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	panic("not used in ProductUsecase tests")
}

func (m *CatalogProductRepoMock) Update(ctx context.Context, p model.Product) error {
	panic("not used in ProductUsecase tests")
}

func (m *CatalogProductRepoMock) SoftDelete(ctx context.Context, id int64) error {
	panic("not used in ProductUsecase tests")
}

func (m *CatalogProductRepoMock) Count(ctx context.Context) (int64, error) {
	panic("not used in ProductUsecase tests")
}

type CatalogCategoryRepoMock struct{ mock.Mock }

func (m *CatalogCategoryRepoMock) ListAll(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]model.Category)
	return cats, args.Error(1)
}

func (m *CatalogCategoryRepoMock) FindByID(ctx context.Context, id int64) (model.Category, error) {
	panic("not used in ProductUsecase tests")
}

func (m *CatalogCategoryRepoMock) FindBySlug(ctx context.Context, slug string) (model.Category, error) {
	args := m.Called(ctx, slug)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func newProductUsecaseWithMocks() (*usecase.ProductUsecase, *CatalogProductRepoMock, *CatalogCategoryRepoMock) {
	products := new(CatalogProductRepoMock)
	categories := new(CatalogCategoryRepoMock)
	return usecase.NewProductUsecase(products, categories), products, categories
}

// =====================
// ListProducts tests
// =====================

func TestProductUsecase_List_InvalidSort(t *testing.T) {
	uc, _, _ := newProductUsecaseWithMocks()

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Page: 1, Sort: "cheapest"})

	var ve *usecase.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestProductUsecase_List_SearchTooLong(t *testing.T) {
	uc, _, _ := newProductUsecaseWithMocks()

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{
		Page:   1,
		Search: strings.Repeat("x", 101),
	})

	var ve *usecase.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestProductUsecase_List_CategoryBySlug(t *testing.T) {
	uc, products, categories := newProductUsecaseWithMocks()

	categories.On("FindBySlug", mock.Anything, "toys").Return(model.Category{ID: 3, Slug: "toys"}, nil)
	products.On("ListPublic", mock.Anything, mock.MatchedBy(func(q repo.ProductListQuery) bool {
		return q.CategoryID != nil && *q.CategoryID == 3 && q.Page == 1 && q.Limit == 12
	})).Return([]model.Product{{ID: 1, Name: "Chew Toy"}}, int64(1), nil)
	categories.On("ListAll", mock.Anything).Return([]model.Category{{ID: 3, Slug: "toys"}}, nil)

	out, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Page: 1, Category: "toys"})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out.Items))
	assert.Equal(t, 1, out.Pagination.TotalPages)
}

// 未知のカテゴリslugは絞り込みなし扱い
func TestProductUsecase_List_UnknownCategory_Ignored(t *testing.T) {
	uc, products, categories := newProductUsecaseWithMocks()

	categories.On("FindBySlug", mock.Anything, "nope").Return(model.Category{}, repo.ErrNotFound)
	products.On("ListPublic", mock.Anything, mock.MatchedBy(func(q repo.ProductListQuery) bool {
		return q.CategoryID == nil
	})).Return([]model.Product{}, int64(0), nil)
	categories.On("ListAll", mock.Anything).Return([]model.Category{}, nil)

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Page: 1, Category: "nope"})
	assert.NoError(t, err)
}

// =====================
// GetProductBySlug tests
// =====================

func TestProductUsecase_GetBySlug_Inactive_NotFound(t *testing.T) {
	uc, products, _ := newProductUsecaseWithMocks()

	products.On("FindBySlug", mock.Anything, "old-toy").Return(model.Product{
		ID: 1, Slug: "old-toy", IsActive: false,
	}, nil)

	_, err := uc.GetProductBySlug(context.Background(), "old-toy")

	var nf *usecase.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestProductUsecase_GetBySlug_Success(t *testing.T) {
	uc, products, _ := newProductUsecaseWithMocks()

	products.On("FindBySlug", mock.Anything, "dog-bed").Return(model.Product{
		ID: 1, Slug: "dog-bed", Name: "Dog Bed", IsActive: true,
	}, nil)

	out, err := uc.GetProductBySlug(context.Background(), "dog-bed")
	assert.NoError(t, err)
	assert.Equal(t, "Dog Bed", out.Name)
}
