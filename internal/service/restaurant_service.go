package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rms/internal/cache"
	apperrors "rms/internal/errors"
	"rms/internal/model"
	"rms/internal/repository"
)

const restaurantCacheTTL = time.Minute

// RestaurantCacheKey is the cache entry holding a fully expanded restaurant
// as of the given version.
func RestaurantCacheKey(id uuid.UUID, version int64) string {
	return fmt.Sprintf("restaurant:%s:v%d", id.String(), version)
}

// RestaurantVersionKey is the counter bumped whenever a restaurant's child
// lists change. Entries cached under an older version are never read again.
func RestaurantVersionKey(id uuid.UUID) string {
	return fmt.Sprintf("restaurant:%s:version", id.String())
}

// RestaurantService exposes restaurant read operations.
type RestaurantService interface {
	List(ctx context.Context) ([]model.RestaurantSummary, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Restaurant, error)
}

type restaurantService struct {
	repo  repository.RestaurantRepository
	cache *cache.Client
}

// NewRestaurantService creates a new restaurant service.
func NewRestaurantService(repo repository.RestaurantRepository, cache *cache.Client) RestaurantService {
	return &restaurantService{repo: repo, cache: cache}
}

// List returns all restaurants with menu and tables expanded.
func (s *restaurantService) List(ctx context.Context) ([]model.RestaurantSummary, error) {
	restaurants, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	summaries := make([]model.RestaurantSummary, 0, len(restaurants))
	for i := range restaurants {
		summaries = append(summaries, restaurants[i].Summary())
	}
	return summaries, nil
}

// Get retrieves a restaurant with every child list, using the cache when warm.
func (s *restaurantService) Get(ctx context.Context, id uuid.UUID) (*model.Restaurant, error) {
	// The version is read before the database so a write that lands during
	// the query moves readers to a new key.
	version, verr := s.cache.Counter(ctx, RestaurantVersionKey(id))
	if verr == nil {
		if data, _ := s.cache.Get(ctx, RestaurantCacheKey(id, version)); data != nil {
			var cached model.Restaurant
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	restaurant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("find restaurant: %w", err)
	}

	if verr != nil {
		return restaurant, nil
	}
	if payload, err := json.Marshal(restaurant); err == nil {
		_ = s.cache.Set(ctx, RestaurantCacheKey(id, version), payload, restaurantCacheTTL)
	}
	return restaurant, nil
}
