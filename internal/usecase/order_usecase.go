package usecase

import (
	"context"
	"errors"
	"time"

	"barkmart/internal/domain/model"
	"barkmart/internal/pagination"
	repo "barkmart/internal/repository"

	"github.com/shopspring/decimal"
)

// 購入者向けの注文照会
type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type OrderItemOutput struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type OrderOutput struct {
	ID          int64             `json:"id"`
	OrderNumber string            `json:"order_number"`
	UserID      int64             `json:"user_id"`
	Status      string            `json:"status"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	CreatedAt   time.Time         `json:"created_at"`
	Items       []OrderItemOutput `json:"items"`
}

type OrderListOutput struct {
	Orders     []OrderOutput         `json:"orders"`
	Pagination pagination.Pagination `json:"pagination"`
}

// 注文履歴は1ページ10件
const orderPageSize = 10

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64, page int) (OrderListOutput, error) {
	if userID <= 0 {
		return OrderListOutput{}, ErrUnauthorized
	}
	if page < 1 {
		page = 1
	}

	var out OrderListOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, total, err := r.Orders().ListByUserID(ctx, userID, page, orderPageSize)
		if err != nil {
			return newPersistenceError(err)
		}

		outs := make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return newPersistenceError(err)
			}
			outs = append(outs, toOrderOutput(o, items))
		}

		out = OrderListOutput{
			Orders:     outs,
			Pagination: pagination.Paginate(page, orderPageSize, total),
		}
		return nil
	})

	if err != nil {
		return OrderListOutput{}, err
	}
	return out, nil
}

func (u *OrderUsecase) GetMyOrder(ctx context.Context, userID int64, orderID int64) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, ErrUnauthorized
	}
	if orderID <= 0 {
		return OrderOutput{}, NewValidationError("invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return &NotFoundError{Resource: "order"}
		}
		if err != nil {
			return newPersistenceError(err)
		}
		if o.UserID != userID {
			//他人の注文は「存在しない扱い」にする
			return &NotFoundError{Resource: "order"}
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return newPersistenceError(err)
		}

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Price:       it.ProductPrice,
			Quantity:    it.Quantity,
			Subtotal:    it.Subtotal,
		})
	}

	return OrderOutput{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		UserID:      o.UserID,
		Status:      string(o.Status),
		TotalAmount: o.TotalAmount,
		CreatedAt:   o.CreatedAt,
		Items:       outItems,
	}
}
