package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// Prices and amounts travel as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Owned carries the identity and restaurant reference shared by every
// record that belongs to a restaurant.
type Owned struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	RestaurantID uuid.UUID `json:"restaurant" gorm:"type:char(36);not null;index"`
	CreatedAt    time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AssignRestaurant scopes the record to a restaurant.
func (o *Owned) AssignRestaurant(id uuid.UUID) {
	o.RestaurantID = id
}

// BeforeCreate sets a time-ordered UUID before creating the record, so ID
// orders records that share a created_at value.
func (o *Owned) BeforeCreate(tx *gorm.DB) error {
	if o.ID != uuid.Nil {
		return nil
	}
	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	o.ID = id
	return nil
}
