package http

import (
	"github.com/shopspring/decimal"
)

type orderItemDTO struct {
	ID       uint64 `json:"id"`
	Quantity int    `json:"quantity"`
}

type createOrderRequest struct {
	ClientName  string         `json:"client_name"`
	ClientEmail string         `json:"client_email"`
	ClientPhone string         `json:"client_phone"`
	Produits    []orderItemDTO `json:"produits"`
}

type updateOrderRequest struct {
	Status string `json:"status"`
}

type createProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	InStock     *bool           `json:"in_stock"`
	Featured    *bool           `json:"featured"`
}

type updateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Image       *string          `json:"image"`
	Category    *string          `json:"category"`
	InStock     *bool            `json:"in_stock"`
	Featured    *bool            `json:"featured"`
}

type createPortfolioRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Featured    bool   `json:"featured"`
	Date        string `json:"date"`
}

type updatePortfolioRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Category    *string `json:"category"`
	Featured    *bool   `json:"featured"`
	Date        *string `json:"date"`
}

type createContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Service string `json:"service"`
}

type markReadRequest struct {
	IsRead *bool `json:"is_read"`
}

type loginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	DeviceName string `json:"device_name"`
}

type trackViewRequest struct {
	PageName string `json:"page_name"`
}
