package usecase

import (
	"context"
	"errors"
	"time"

	"barkmart/internal/domain/model"
	"barkmart/internal/pagination"
	repo "barkmart/internal/repository"

	"go.uber.org/zap"
)

// 管理者の注文管理
type AdminOrderUsecase struct {
	tx  repo.TransactionManager
	log *zap.Logger
}

func NewAdminOrderUsecase(tx repo.TransactionManager, log *zap.Logger) *AdminOrderUsecase {
	return &AdminOrderUsecase{tx: tx, log: log}
}

type AdminOrderListInput struct {
	Page   int
	Limit  int
	Status string
	UserID *int64
	From   *time.Time
	To     *time.Time
}

type AdminOrderListOutput struct {
	Orders     []OrderOutput         `json:"orders"`
	Pagination pagination.Pagination `json:"pagination"`
}

func (u *AdminOrderUsecase) List(ctx context.Context, in AdminOrderListInput) (AdminOrderListOutput, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 || in.Limit > 100 {
		in.Limit = 50
	}
	if in.Status != "" && !model.OrderStatus(in.Status).Valid() {
		return AdminOrderListOutput{}, NewValidationError("invalid status")
	}

	var out AdminOrderListOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, total, err := r.Orders().ListAdmin(ctx, repo.AdminOrderListFilter{
			Page:   in.Page,
			Limit:  in.Limit,
			Status: in.Status,
			UserID: in.UserID,
			From:   in.From,
			To:     in.To,
		})
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

		out = AdminOrderListOutput{
			Orders:     outs,
			Pagination: pagination.Paginate(in.Page, in.Limit, total),
		}
		return nil
	})

	if err != nil {
		return AdminOrderListOutput{}, err
	}
	return out, nil
}

func (u *AdminOrderUsecase) Get(ctx context.Context, orderID int64) (OrderOutput, error) {
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

// UpdateStatus はstatusを更新する。
// 値は固定の集合に限るが、遷移順は制約しない
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, orderID int64, status string) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewValidationError("invalid id")
	}

	st := model.OrderStatus(status)
	if !st.Valid() {
		return OrderOutput{}, NewValidationError("invalid status")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Orders().UpdateStatus(ctx, orderID, st); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return &NotFoundError{Resource: "order"}
			}
			return newPersistenceError(err)
		}

		o, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return newPersistenceError(err)
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

	u.log.Info("order status updated",
		zap.Int64("order_id", orderID),
		zap.String("status", status),
	)

	return out, nil
}
