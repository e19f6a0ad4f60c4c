package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"barkmart/internal/domain/model"
	repo "barkmart/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// 注文確定（チェックアウト）の業務ロジック。
// 書き込みは全て1トランザクションで行い、途中失敗は全て巻き戻す
type CheckoutUsecase struct {
	tx  repo.TransactionManager
	log *zap.Logger
}

func NewCheckoutUsecase(tx repo.TransactionManager, log *zap.Logger) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx, log: log}
}

// チェックアウト中に新規作成する住所
type NewAddressInput struct {
	StreetAddress string
	City          string
	State         string
	ZipCode       string
	Country       string
}

type PlaceOrderInput struct {
	//既存住所を使う場合のID
	AddressID int64

	//新規住所を同時作成する場合。指定があればAddressIDより優先
	NewAddress *NewAddressInput

	PaymentMethod string
	Notes         string
}

type PlacedOrderItem struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type PlacedOrderOutput struct {
	OrderNumber       string            `json:"order_number"`
	Status            string            `json:"status"`
	TotalAmount       decimal.Decimal   `json:"total_amount"`
	ShippingAddressID int64             `json:"shipping_address_id"`
	PaymentMethod     string            `json:"payment_method"`
	Items             []PlacedOrderItem `json:"items"`
	CreatedAt         time.Time         `json:"created_at"`
}

// PlaceOrder はカートの中身から注文を作る。
// 住所作成・注文・明細・在庫減算・カートクリアは全て同一トランザクション
func (u *CheckoutUsecase) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (PlacedOrderOutput, error) {
	if userID <= 0 {
		return PlacedOrderOutput{}, ErrUnauthorized
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		return PlacedOrderOutput{}, NewValidationError("payment method is required")
	}

	var out PlacedOrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//配送先の解決。新規住所は同じトランザクション内で作る
		addressID := in.AddressID
		if in.NewAddress != nil {
			na := *in.NewAddress
			if na.Country == "" {
				na.Country = "USA"
			}
			created, err := r.Addresses().Create(ctx, model.Address{
				UserID:        userID,
				StreetAddress: na.StreetAddress,
				City:          na.City,
				State:         na.State,
				ZipCode:       na.ZipCode,
				Country:       na.Country,
				IsDefault:     false,
			})
			if err != nil {
				return newPersistenceError(err)
			}
			addressID = created.ID
		} else if addressID > 0 {
			addr, err := r.Addresses().FindByID(ctx, addressID)
			if errors.Is(err, repo.ErrNotFound) {
				return &NotFoundError{Resource: "address"}
			}
			if err != nil {
				return newPersistenceError(err)
			}
			//他人の住所は存在しない扱い
			if addr.UserID != userID {
				return &NotFoundError{Resource: "address"}
			}
		} else {
			return NewValidationError("no shipping address")
		}

		//カートと明細を取得
		cart, err := r.Carts().FindByUserID(ctx, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return &EmptyCartError{}
		}
		if err != nil {
			return newPersistenceError(err)
		}

		cartItems, err := r.CartItems().ListByCartID(ctx, cart.ID)
		if err != nil {
			return newPersistenceError(err)
		}
		if len(cartItems) == 0 {
			return &EmptyCartError{}
		}

		//まず全明細を在庫チェックしつつ、確定時点の価格で合計とスナップショットを作る。
		//最初の在庫不足で全体を失敗させる（部分的な注文は作らない）
		orderItems := make([]model.OrderItem, 0, len(cartItems))
		total := decimal.Zero

		for _, ci := range cartItems {
			p, err := r.Products().FindByID(ctx, ci.ProductID)
			if errors.Is(err, repo.ErrNotFound) {
				return &NotFoundError{Resource: "product"}
			}
			if err != nil {
				return newPersistenceError(err)
			}

			if p.StockQuantity < ci.Quantity {
				return &InsufficientStockError{
					ProductID:   p.ID,
					ProductName: p.Name,
					Requested:   ci.Quantity,
					Available:   p.StockQuantity,
				}
			}

			subtotal := p.Price.Mul(decimal.NewFromInt(ci.Quantity))
			orderItems = append(orderItems, model.OrderItem{
				ProductID:    p.ID,
				ProductName:  p.Name,
				ProductPrice: p.Price,
				Quantity:     ci.Quantity,
				Subtotal:     subtotal,
			})

			total = total.Add(subtotal)
		}

		//注文作成（pending）
		orderNumber := newOrderNumber()
		now := time.Now()
		orderID, err := r.Orders().Create(ctx, model.Order{
			UserID:            userID,
			OrderNumber:       orderNumber,
			Status:            model.OrderStatusPending,
			TotalAmount:       total,
			ShippingAddressID: addressID,
			PaymentMethod:     in.PaymentMethod,
			Notes:             in.Notes,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
		if err != nil {
			return newPersistenceError(err)
		}

		//注文明細一括作成
		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return newPersistenceError(err)
		}

		//在庫減算。事前チェック後に他の注文が在庫を取っている可能性があるので、
		//条件付きUPDATEで再検証し、弾かれたら全体をロールバックする
		for i, ci := range cartItems {
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, ci.ProductID, ci.Quantity)
			if err != nil {
				return newPersistenceError(err)
			}
			if !ok {
				it := orderItems[i]
				return &InsufficientStockError{
					ProductID:   it.ProductID,
					ProductName: it.ProductName,
					Requested:   ci.Quantity,
				}
			}
		}

		//カートを空にする（カート行は残す）
		if err := r.CartItems().DeleteByCartID(ctx, cart.ID); err != nil {
			return newPersistenceError(err)
		}

		out = PlacedOrderOutput{
			OrderNumber:       orderNumber,
			Status:            string(model.OrderStatusPending),
			TotalAmount:       total,
			ShippingAddressID: addressID,
			PaymentMethod:     in.PaymentMethod,
			Items:             toPlacedItems(orderItems),
			CreatedAt:         now,
		}
		return nil
	})

	if err != nil {
		return PlacedOrderOutput{}, err
	}

	u.log.Info("order placed",
		zap.String("order_number", out.OrderNumber),
		zap.Int64("user_id", userID),
		zap.String("total_amount", out.TotalAmount.StringFixed(2)),
		zap.Int("items", len(out.Items)),
	)

	return out, nil
}

type OrderConfirmation struct {
	Order   PlacedOrderOutput `json:"order"`
	Address model.Address     `json:"address"`
}

// GetOrderByNumber は確定画面用に、公開注文番号で自分の注文を引く
func (u *CheckoutUsecase) GetOrderByNumber(ctx context.Context, userID int64, orderNumber string) (OrderConfirmation, error) {
	if userID <= 0 {
		return OrderConfirmation{}, ErrUnauthorized
	}
	if strings.TrimSpace(orderNumber) == "" {
		return OrderConfirmation{}, NewValidationError("invalid order number")
	}

	var out OrderConfirmation

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByOrderNumber(ctx, orderNumber)
		if errors.Is(err, repo.ErrNotFound) {
			return &NotFoundError{Resource: "order"}
		}
		if err != nil {
			return newPersistenceError(err)
		}
		//他人の注文は存在しない扱い
		if o.UserID != userID {
			return &NotFoundError{Resource: "order"}
		}

		items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
		if err != nil {
			return newPersistenceError(err)
		}

		addr, err := r.Addresses().FindByID(ctx, o.ShippingAddressID)
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return newPersistenceError(err)
		}

		out = OrderConfirmation{
			Order: PlacedOrderOutput{
				OrderNumber:       o.OrderNumber,
				Status:            string(o.Status),
				TotalAmount:       o.TotalAmount,
				ShippingAddressID: o.ShippingAddressID,
				PaymentMethod:     o.PaymentMethod,
				Items:             toPlacedItems(items),
				CreatedAt:         o.CreatedAt,
			},
			Address: addr,
		}
		return nil
	})

	if err != nil {
		return OrderConfirmation{}, err
	}
	return out, nil
}

func toPlacedItems(items []model.OrderItem) []PlacedOrderItem {
	out := make([]PlacedOrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, PlacedOrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Price:       it.ProductPrice,
			Quantity:    it.Quantity,
			Subtotal:    it.Subtotal,
		})
	}
	return out
}

// 公開用の注文番号。ORD-日付-uuid先頭8桁（大文字）
func newOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "ORD-" + time.Now().Format("20060102") + "-" + suffix
}
