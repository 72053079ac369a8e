package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"rms/internal/cache"
	apperrors "rms/internal/errors"
	"rms/internal/repository"
)

// RestaurantChild is satisfied by pointers to records that embed model.Owned.
type RestaurantChild[T any] interface {
	*T
	AssignRestaurant(id uuid.UUID)
}

// ChildService creates and lists one kind of restaurant-scoped record.
type ChildService[T any] interface {
	Create(ctx context.Context, restaurantID uuid.UUID, record *T) (*T, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]T, error)
}

type childService[T any, PT RestaurantChild[T]] struct {
	kind        string
	restaurants repository.RestaurantRepository
	repo        repository.ChildRepository[T]
	cache       *cache.Client
}

// NewChildService builds the service for one child collection. kind names the
// collection in logs and errors.
func NewChildService[T any, PT RestaurantChild[T]](
	kind string,
	restaurants repository.RestaurantRepository,
	repo repository.ChildRepository[T],
	cache *cache.Client,
) ChildService[T] {
	return &childService[T, PT]{
		kind:        kind,
		restaurants: restaurants,
		repo:        repo,
		cache:       cache,
	}
}

// Create scopes the record to an existing restaurant and stores it.
func (s *childService[T, PT]) Create(ctx context.Context, restaurantID uuid.UUID, record *T) (*T, error) {
	exists, err := s.restaurants.Exists(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("check restaurant: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrRestaurantNotFound
	}

	PT(record).AssignRestaurant(restaurantID)
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create %s: %w", s.kind, err)
	}

	// Retire the cached aggregate, including any fill racing with this write.
	if _, err := s.cache.Incr(ctx, RestaurantVersionKey(restaurantID)); err != nil {
		logrus.WithError(err).WithField("restaurant_id", restaurantID).Warn("failed to bump restaurant cache version")
	}

	logrus.WithFields(logrus.Fields{
		"restaurant_id": restaurantID,
		"kind":          s.kind,
	}).Debug("child record created")

	return record, nil
}

// ListByRestaurant returns the restaurant's records in insertion order.
func (s *childService[T, PT]) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]T, error) {
	records, err := s.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.kind, err)
	}
	return records, nil
}
