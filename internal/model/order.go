package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderLine is one entry of an order's item list.
type OrderLine struct {
	Name     string          `json:"name" validate:"required,max=255"`
	Quantity int             `json:"quantity" validate:"required,min=1"`
	Price    decimal.Decimal `json:"price"`
}

// Order is a customer order placed with a restaurant.
type Order struct {
	Owned
	UserName string                         `json:"userName" gorm:"size:255;not null"`
	Items    datatypes.JSONSlice[OrderLine] `json:"items"`
	Total    decimal.Decimal                `json:"total" gorm:"type:decimal(12,2);not null"`
	Method   string                         `json:"method" gorm:"size:32;not null"`
}
