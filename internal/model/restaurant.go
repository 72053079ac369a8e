package model

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Restaurant is the aggregate root for menus, tables, bookings, orders,
// feedback and incomes. Child lists are loaded from the child tables.
type Restaurant struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null;index"`
	Logo      string    `json:"logo" gorm:"size:512"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Menu     []MenuItem `json:"menu" gorm:"foreignKey:RestaurantID"`
	Tables   []Table    `json:"tables" gorm:"foreignKey:RestaurantID"`
	Bookings []Booking  `json:"bookings" gorm:"foreignKey:RestaurantID"`
	Orders   []Order    `json:"orders" gorm:"foreignKey:RestaurantID"`
	Feedback []Feedback `json:"feedback" gorm:"foreignKey:RestaurantID"`
	Incomes  []Income   `json:"incomes" gorm:"foreignKey:RestaurantID"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID != uuid.Nil {
		return nil
	}
	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	r.ID = id
	return nil
}

// RestaurantSummary is the listing projection: menu and tables only.
type RestaurantSummary struct {
	ID     uuid.UUID  `json:"id"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Logo   string     `json:"logo"`
	Menu   []MenuItem `json:"menu"`
	Tables []Table    `json:"tables"`
}

// Summary returns the listing projection of r.
func (r *Restaurant) Summary() RestaurantSummary {
	menu, tables := r.Menu, r.Tables
	if menu == nil {
		menu = []MenuItem{}
	}
	if tables == nil {
		tables = []Table{}
	}
	return RestaurantSummary{
		ID:     r.ID,
		Name:   r.Name,
		Email:  r.Email,
		Logo:   r.Logo,
		Menu:   menu,
		Tables: tables,
	}
}

// AvatarURL builds the generated logo used for newly registered restaurants.
func AvatarURL(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=101827&color=fff", url.QueryEscape(name))
}
