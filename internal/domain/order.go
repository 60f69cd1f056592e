package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusInProgress OrderStatus = "in_progress"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID          uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	ClientName  string          `json:"client_name" gorm:"size:255;not null"`
	ClientEmail string          `json:"client_email" gorm:"size:255;not null"`
	ClientPhone string          `json:"client_phone" gorm:"size:50;not null"`
	Status      OrderStatus     `json:"status" gorm:"type:enum('pending','in_progress','delivered','cancelled');default:'pending'"`
	Total       decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null"`
	Lines       []OrderLine     `json:"produits" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// OrderLine is one product entry of an order. Price is snapshotted at
// placement time and never re-read from the product row.
type OrderLine struct {
	OrderID   uint64          `json:"-" gorm:"primaryKey;autoIncrement:false"`
	ProductID uint64          `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`

	// Identity fields resolved from the current product row on reads.
	Name  string `json:"name" gorm:"-"`
	Slug  string `json:"slug" gorm:"-"`
	Image string `json:"image" gorm:"-"`
}

func (OrderLine) TableName() string {
	return "order_lines"
}

func (l OrderLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
