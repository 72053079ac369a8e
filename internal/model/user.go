package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserType distinguishes diners from restaurant owners.
type UserType string

const (
	UserTypeUser       UserType = "user"
	UserTypeRestaurant UserType = "restaurant"
)

// User represents an authenticated user in the system.
type User struct {
	ID           uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Name         string     `json:"name" gorm:"size:255;not null"`
	Type         UserType   `json:"type" gorm:"type:varchar(20);not null;default:'user'"`
	RestaurantID *uuid.UUID `json:"restaurantId" gorm:"type:char(36);index"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`

	Restaurant *Restaurant `json:"-" gorm:"foreignKey:RestaurantID"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID != uuid.Nil {
		return nil
	}
	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	u.ID = id
	return nil
}

// PublicUser is the projection of a User that is safe to return to clients.
type PublicUser struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Type         UserType   `json:"type"`
	RestaurantID *uuid.UUID `json:"restaurantId"`
}

// Public returns the client-facing projection of u.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Type:         u.Type,
		RestaurantID: u.RestaurantID,
	}
}
