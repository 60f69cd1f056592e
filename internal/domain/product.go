package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string          `json:"name" gorm:"size:255;not null"`
	Slug        string          `json:"slug" gorm:"size:255;uniqueIndex;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Image       string          `json:"image" gorm:"size:255"`
	Category    string          `json:"category" gorm:"size:100;index"`
	InStock     bool            `json:"in_stock" gorm:"default:true"`
	Featured    bool            `json:"featured" gorm:"default:false"`
	CreatedAt   time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}
