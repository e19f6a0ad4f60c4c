package usecase

import (
	"errors"
	"fmt"
)

// 認証済みユーザーが解決できていない
var ErrUnauthorized = errors.New("unauthorized")

// 入力不足・不正（例: 配送先住所が無い）
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// 空カートでのチェックアウト
type EmptyCartError struct{}

func (e *EmptyCartError) Error() string {
	return "cart is empty"
}

// 在庫不足。どの商品かを必ず持ち回る
type InsufficientStockError struct {
	ProductID   int64
	ProductName string
	Requested   int64
	Available   int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s", e.ProductName)
}

// 対象が存在しない、または他人のもの
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// ストレージ層の予期しない失敗。元エラーを包んで保持する
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "persistence error: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func newPersistenceError(err error) error {
	return &PersistenceError{Err: err}
}
