package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rms/internal/model"
)

// ChildRepository defines persistence for records scoped to a restaurant.
// Inserting a record is what adds it to the restaurant's lists.
type ChildRepository[T any] interface {
	Create(ctx context.Context, record *T) error
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]T, error)
}

type childRepository[T any] struct {
	db *gorm.DB
}

// NewChildRepository creates a repository for one child collection.
func NewChildRepository[T any](db *gorm.DB) ChildRepository[T] {
	return &childRepository[T]{db: db}
}

// Create inserts the record.
func (r *childRepository[T]) Create(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// ListByRestaurant returns the restaurant's records in insertion order.
func (r *childRepository[T]) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]T, error) {
	records := make([]T, 0)
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Scopes(insertionOrder).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// BookingRepository adds time-window queries to the booking collection.
type BookingRepository interface {
	ChildRepository[model.Booking]
	FindOverlapping(ctx context.Context, restaurantID uuid.UUID, tableNum int, start, end time.Time) ([]model.Booking, error)
}

type bookingRepository struct {
	ChildRepository[model.Booking]
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{
		ChildRepository: NewChildRepository[model.Booking](db),
		db:              db,
	}
}

// FindOverlapping returns bookings on the same table whose window intersects [start, end).
func (r *bookingRepository) FindOverlapping(ctx context.Context, restaurantID uuid.UUID, tableNum int, start, end time.Time) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND table_num = ?", restaurantID, tableNum).
		Where("starts_at < ? AND ends_at > ?", end, start).
		Order("starts_at ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
