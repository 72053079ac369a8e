package model

import "github.com/shopspring/decimal"

// Income is a revenue entry recorded by the restaurant owner.
type Income struct {
	Owned
	Amount decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
}
