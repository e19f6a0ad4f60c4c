package usecase

import (
	"context"
	"errors"

	"barkmart/internal/domain/model"
	repo "barkmart/internal/repository"

	"github.com/shopspring/decimal"
)

// CartUsecase は /cart の業務ロジックです。
// 注文確定と違い、ここは複数行にまたがる原子性を要求しない
type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

// price は現在の商品価格。カートはスナップショットを持たない
type CartItemResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

type AddCartInput struct {
	ProductID int64
	Quantity  int64
}

type UpdateCartItemInput struct {
	Quantity int64
}

// GetCart はカート取得（無ければ空カートを作って返す）。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, ErrUnauthorized
	}

	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, newPersistenceError(err)
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// AddItem はカートに追加（同一商品は数量加算）。
// 既存数量＋追加数量が在庫を超えたら失敗する
func (u *CartUsecase) AddItem(ctx context.Context, userID int64, in AddCartInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, ErrUnauthorized
	}
	if in.ProductID <= 0 {
		return CartResponse{}, NewValidationError("invalid product_id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewValidationError("invalid quantity")
	}

	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, newPersistenceError(err)
	}

	// 商品チェック（公開のみ）
	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, &NotFoundError{Resource: "product"}
	}
	if err != nil {
		return CartResponse{}, newPersistenceError(err)
	}
	if !p.IsActive {
		return CartResponse{}, &NotFoundError{Resource: "product"}
	}

	// 重複行は作らない。挿入前に既存行を探す
	existing, err := u.cartItemRepo.FindByCartAndProduct(ctx, cart.ID, in.ProductID)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, newPersistenceError(err)
	}

	var existingQty int64 = 0
	if err == nil {
		existingQty = existing.Quantity
	}

	newQty := existingQty + in.Quantity
	if newQty > p.StockQuantity {
		return CartResponse{}, &InsufficientStockError{
			ProductID:   p.ID,
			ProductName: p.Name,
			Requested:   newQty,
			Available:   p.StockQuantity,
		}
	}

	if existingQty > 0 {
		if err := u.cartItemRepo.UpdateQuantity(ctx, existing.ID, newQty); err != nil {
			return CartResponse{}, newPersistenceError(err)
		}
	} else {
		if _, err := u.cartItemRepo.Create(ctx, model.CartItem{
			CartID:    cart.ID,
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
		}); err != nil {
			return CartResponse{}, newPersistenceError(err)
		}
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// UpdateItem は数量の絶対値更新（所有チェック＋在庫チェック）。
func (u *CartUsecase) UpdateItem(ctx context.Context, userID int64, cartItemID int64, in UpdateCartItemInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, ErrUnauthorized
	}
	if cartItemID <= 0 {
		return CartResponse{}, NewValidationError("invalid id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewValidationError("invalid quantity")
	}

	owned, err := u.cartItemRepo.IsOwnedByUser(ctx, cartItemID, userID)
	if err != nil {
		return CartResponse{}, newPersistenceError(err)
	}
	if !owned {
		return CartResponse{}, &NotFoundError{Resource: "cart item"}
	}

	item, err := u.cartItemRepo.FindByID(ctx, cartItemID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, &NotFoundError{Resource: "cart item"}
	}
	if err != nil {
		return CartResponse{}, newPersistenceError(err)
	}

	//商品の在庫チェック
	p, err := u.productRepo.FindByID(ctx, item.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, &NotFoundError{Resource: "product"}
	}
	if err != nil {
		return CartResponse{}, newPersistenceError(err)
	}
	if in.Quantity > p.StockQuantity {
		return CartResponse{}, &InsufficientStockError{
			ProductID:   p.ID,
			ProductName: p.Name,
			Requested:   in.Quantity,
			Available:   p.StockQuantity,
		}
	}

	if err := u.cartItemRepo.UpdateQuantity(ctx, cartItemID, in.Quantity); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CartResponse{}, &NotFoundError{Resource: "cart item"}
		}
		return CartResponse{}, newPersistenceError(err)
	}

	return u.buildCartResponse(ctx, item.CartID)
}

// RemoveItem は明細を1行削除
func (u *CartUsecase) RemoveItem(ctx context.Context, userID int64, cartItemID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, ErrUnauthorized
	}
	if cartItemID <= 0 {
		return CartResponse{}, NewValidationError("invalid id")
	}

	owned, err := u.cartItemRepo.IsOwnedByUser(ctx, cartItemID, userID)
	if err != nil {
		return CartResponse{}, newPersistenceError(err)
	}
	if !owned {
		return CartResponse{}, &NotFoundError{Resource: "cart item"}
	}

	if err := u.cartItemRepo.DeleteByID(ctx, cartItemID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CartResponse{}, &NotFoundError{Resource: "cart item"}
		}
		return CartResponse{}, newPersistenceError(err)
	}

	cart, err := u.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, newPersistenceError(err)
	}
	return u.buildCartResponse(ctx, cart.ID)
}

// Clear は明細を全削除する。カート行自体は残る
func (u *CartUsecase) Clear(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, ErrUnauthorized
	}

	cart, err := u.cartRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		//カートが無ければ空を返すだけ
		return CartResponse{Items: []CartItemResponse{}, Total: decimal.Zero}, nil
	}
	if err != nil {
		return CartResponse{}, newPersistenceError(err)
	}

	if err := u.cartItemRepo.DeleteByCartID(ctx, cart.ID); err != nil {
		return CartResponse{}, newPersistenceError(err)
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// cartIDの明細をまとめてCartResponseを作る。
func (u *CartUsecase) buildCartResponse(ctx context.Context, cartID int64) (CartResponse, error) {
	items, err := u.cartItemRepo.ListByCartID(ctx, cartID)
	if err != nil {
		return CartResponse{}, newPersistenceError(err)
	}

	respItems := make([]CartItemResponse, 0, len(items))
	total := decimal.Zero

	for _, it := range items {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if err != nil {
			continue
		}
		if !p.IsActive {
			continue
		}

		subtotal := p.Price.Mul(decimal.NewFromInt(it.Quantity))
		respItems = append(respItems, CartItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  it.Quantity,
			Subtotal:  subtotal,
		})

		total = total.Add(subtotal)
	}

	return CartResponse{Items: respItems, Total: total}, nil
}
