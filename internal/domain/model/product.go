package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID int64  `gorm:"not null;index" json:"category_id"`
	Name       string `gorm:"type:varchar(255);not null" json:"name"`

	//URLで使う一意な識別子
	Slug        string `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description"`

	//価格は固定小数点（numeric(10,2)）で保持する
	Price decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`

	//在庫数。購入での減算と管理者編集でのみ変わる
	StockQuantity int64 `gorm:"not null;default:0" json:"stock_quantity"`

	ImageURL  string         `gorm:"type:varchar(500)" json:"image_url"`
	IsActive  bool           `gorm:"not null;default:false" json:"is_active"`
	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
