package usecase

import (
	"context"
	"errors"

	"barkmart/internal/domain/model"
	"barkmart/internal/pagination"
	repo "barkmart/internal/repository"
)

// 管理画面トップの集計とユーザー一覧
type AdminDashboardUsecase struct {
	productRepo repo.ProductRepository
	orderRepo   repo.OrderRepository
	userRepo    repo.UserRepository
}

// DI
func NewAdminDashboardUsecase(
	productRepo repo.ProductRepository,
	orderRepo repo.OrderRepository,
	userRepo repo.UserRepository,
) *AdminDashboardUsecase {
	return &AdminDashboardUsecase{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
	}
}

type DashboardStats struct {
	TotalProducts int64 `json:"total_products"`
	TotalOrders   int64 `json:"total_orders"`
	TotalUsers    int64 `json:"total_users"`
	PendingOrders int64 `json:"pending_orders"`
}

type RecentOrder struct {
	Order     model.Order `json:"order"`
	UserEmail string      `json:"user_email"`
}

type DashboardOutput struct {
	Stats        DashboardStats `json:"stats"`
	RecentOrders []RecentOrder  `json:"recent_orders"`
}

const dashboardRecentOrders = 10

func (u *AdminDashboardUsecase) Dashboard(ctx context.Context) (DashboardOutput, error) {
	totalProducts, err := u.productRepo.Count(ctx)
	if err != nil {
		return DashboardOutput{}, newPersistenceError(err)
	}

	totalOrders, err := u.orderRepo.Count(ctx)
	if err != nil {
		return DashboardOutput{}, newPersistenceError(err)
	}

	totalUsers, err := u.userRepo.Count(ctx)
	if err != nil {
		return DashboardOutput{}, newPersistenceError(err)
	}

	pendingOrders, err := u.orderRepo.CountByStatus(ctx, model.OrderStatusPending)
	if err != nil {
		return DashboardOutput{}, newPersistenceError(err)
	}

	recent, err := u.orderRepo.ListRecent(ctx, dashboardRecentOrders)
	if err != nil {
		return DashboardOutput{}, newPersistenceError(err)
	}

	recentOut := make([]RecentOrder, 0, len(recent))
	for _, o := range recent {
		email := ""
		user, err := u.userRepo.FindByID(ctx, o.UserID)
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return DashboardOutput{}, newPersistenceError(err)
		}
		if user != nil {
			email = user.Email
		}
		recentOut = append(recentOut, RecentOrder{Order: o, UserEmail: email})
	}

	return DashboardOutput{
		Stats: DashboardStats{
			TotalProducts: totalProducts,
			TotalOrders:   totalOrders,
			TotalUsers:    totalUsers,
			PendingOrders: pendingOrders,
		},
		RecentOrders: recentOut,
	}, nil
}

type AdminUserListOutput struct {
	Users      []UserDTO             `json:"users"`
	Pagination pagination.Pagination `json:"pagination"`
}

const adminUserPageSize = 20

func (u *AdminDashboardUsecase) ListUsers(ctx context.Context, page int) (AdminUserListOutput, error) {
	if page < 1 {
		page = 1
	}

	users, total, err := u.userRepo.List(ctx, page, adminUserPageSize)
	if err != nil {
		return AdminUserListOutput{}, newPersistenceError(err)
	}

	outs := make([]UserDTO, 0, len(users))
	for i := range users {
		outs = append(outs, toUserDTO(&users[i]))
	}

	return AdminUserListOutput{
		Users:      outs,
		Pagination: pagination.Paginate(page, adminUserPageSize, total),
	}, nil
}
