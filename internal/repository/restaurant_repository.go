package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rms/internal/model"
)

// RestaurantRepository defines restaurant persistence operations. Child lists
// are resolved from the child tables rather than stored on the restaurant row.
type RestaurantRepository interface {
	List(ctx context.Context) ([]model.Restaurant, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository creates a new restaurant repository.
func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

// insertionOrder sorts by creation time. IDs are UUIDv7, so they break ties
// left by timestamp precision.
func insertionOrder(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC, id ASC")
}

// List returns every restaurant with its menu and tables.
func (r *restaurantRepository) List(ctx context.Context) ([]model.Restaurant, error) {
	var restaurants []model.Restaurant
	err := r.db.WithContext(ctx).
		Preload("Menu", insertionOrder).
		Preload("Tables", insertionOrder).
		Scopes(insertionOrder).
		Find(&restaurants).Error
	if err != nil {
		return nil, err
	}
	return restaurants, nil
}

// FindByID returns one restaurant with all child lists.
func (r *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	err := r.db.WithContext(ctx).
		Preload("Menu", insertionOrder).
		Preload("Tables", insertionOrder).
		Preload("Bookings", insertionOrder).
		Preload("Orders", insertionOrder).
		Preload("Feedback", insertionOrder).
		Preload("Incomes", insertionOrder).
		Where("id = ?", id).
		First(&restaurant).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// Exists reports whether a restaurant with the given ID is stored.
func (r *restaurantRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Restaurant{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
