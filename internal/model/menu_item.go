package model

import "github.com/shopspring/decimal"

// MenuItem is a dish offered by a restaurant.
type MenuItem struct {
	Owned
	Name  string          `json:"name" gorm:"size:255;not null"`
	Price decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Img   string          `json:"img" gorm:"size:512"`
}
