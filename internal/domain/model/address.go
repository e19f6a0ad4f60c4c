package model

import "time"

// 配送先住所
type Address struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"not null;index" json:"user_id"`

	//番地・通り
	StreetAddress string `gorm:"type:varchar(255);not null" json:"street_address"`

	//市
	City string `gorm:"type:varchar(100);not null" json:"city"`

	//州
	State string `gorm:"type:varchar(100);not null" json:"state"`

	//郵便番号
	ZipCode string `gorm:"type:varchar(20);not null" json:"zip_code"`

	Country string `gorm:"type:varchar(100);not null;default:'USA'" json:"country"`

	//このユーザーのデフォルト住所か
	IsDefault bool `gorm:"not null;default:false" json:"is_default"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
