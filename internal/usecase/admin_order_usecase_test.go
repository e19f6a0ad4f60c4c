package usecase_test

import (
	"context"
	"testing"

	"barkmart/internal/domain/model"
	repo "barkmart/internal/repository"
	"barkmart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// =====================
// Repository mocks（Admin向け）
// =====================

type AdminOrderRepoMock struct{ mock.Mock }

func (m *AdminOrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *AdminOrderRepoMock) FindByOrderNumber(ctx context.Context, orderNumber string) (model.Order, error) {
	panic("not used in AdminOrderUsecase tests")
}

func (m *AdminOrderRepoMock) ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Order, int64, error) {
	panic("not used in AdminOrderUsecase tests")
}

func (m *AdminOrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	panic("not used in AdminOrderUsecase tests")
}

func (m *AdminOrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *AdminOrderRepoMock) ListAdmin(ctx context.Context, f repo.AdminOrderListFilter) ([]model.Order, int64, error) {
	args := m.Called(ctx, f)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *AdminOrderRepoMock) Count(ctx context.Context) (int64, error) {
	panic("not used in AdminOrderUsecase tests")
}

func (m *AdminOrderRepoMock) CountByStatus(ctx context.Context, status model.OrderStatus) (int64, error) {
	panic("not used in AdminOrderUsecase tests")
}

func (m *AdminOrderRepoMock) ListRecent(ctx context.Context, limit int) ([]model.Order, error) {
	panic("not used in AdminOrderUsecase tests")
}

func newAdminOrderFixture() (*usecase.AdminOrderUsecase, *CheckoutTxManagerMock, *AdminOrderRepoMock, *CheckoutOrderItemRepoMock) {
	tx := new(CheckoutTxManagerMock)
	orders := new(AdminOrderRepoMock)
	items := new(CheckoutOrderItemRepoMock)
	tx.Repos = &CheckoutTxReposMock{orders: orders, orderItems: items}
	return usecase.NewAdminOrderUsecase(tx, zap.NewNop()), tx, orders, items
}

// =====================
// List tests
// =====================

func TestAdminOrderUsecase_List_InvalidStatus(t *testing.T) {
	uc, _, _, _ := newAdminOrderFixture()

	_, err := uc.List(context.Background(), usecase.AdminOrderListInput{Page: 1, Limit: 20, Status: "paid"})

	var ve *usecase.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestAdminOrderUsecase_List_Success_CallsItemsPerOrder(t *testing.T) {
	uc, tx, orders, items := newAdminOrderFixture()
	tx.On("WithinTx", mock.Anything).Return(nil)

	orders.On("ListAdmin", mock.Anything, mock.MatchedBy(func(f repo.AdminOrderListFilter) bool {
		return f.Page == 1 && f.Limit == 20 && f.Status == "pending"
	})).Return([]model.Order{
		{ID: 10, Status: model.OrderStatusPending},
		{ID: 11, Status: model.OrderStatusShipped},
	}, int64(2), nil)

	items.On("ListByOrderID", mock.Anything, int64(10)).Return([]model.OrderItem{}, nil)
	items.On("ListByOrderID", mock.Anything, int64(11)).Return([]model.OrderItem{}, nil)

	out, err := uc.List(context.Background(), usecase.AdminOrderListInput{Page: 1, Limit: 20, Status: "pending"})
	assert.NoError(t, err)
	assert.Equal(t, 2, len(out.Orders))
	assert.Equal(t, int64(2), out.Pagination.TotalItems)

	orders.AssertExpectations(t)
	items.AssertExpectations(t)
}

// =====================
// UpdateStatus tests
// =====================

func TestAdminOrderUsecase_UpdateStatus_InvalidStatus(t *testing.T) {
	uc, _, orders, _ := newAdminOrderFixture()

	_, err := uc.UpdateStatus(context.Background(), 1, "PAID")

	var ve *usecase.ValidationError
	assert.ErrorAs(t, err, &ve)
	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminOrderUsecase_UpdateStatus_NotFound(t *testing.T) {
	uc, tx, orders, _ := newAdminOrderFixture()
	tx.On("WithinTx", mock.Anything).Return(nil)

	orders.On("UpdateStatus", mock.Anything, int64(99), model.OrderStatusShipped).Return(repo.ErrNotFound)

	_, err := uc.UpdateStatus(context.Background(), 99, "shipped")

	var nf *usecase.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

// 状態の値は検証するが、遷移順は制約しない
func TestAdminOrderUsecase_UpdateStatus_AnyTransitionAllowed(t *testing.T) {
	uc, tx, orders, items := newAdminOrderFixture()
	tx.On("WithinTx", mock.Anything).Return(nil)

	//delivered -> pending への巻き戻しも許す
	orders.On("UpdateStatus", mock.Anything, int64(1), model.OrderStatusPending).Return(nil)
	orders.On("FindByID", mock.Anything, int64(1)).Return(model.Order{
		ID: 1, Status: model.OrderStatusPending,
	}, nil)
	items.On("ListByOrderID", mock.Anything, int64(1)).Return([]model.OrderItem{}, nil)

	out, err := uc.UpdateStatus(context.Background(), 1, "pending")
	assert.NoError(t, err)
	assert.Equal(t, "pending", out.Status)

	orders.AssertExpectations(t)
}
