package auth

import "rms/internal/model"

// IsOwner reports whether the token holder owns the given restaurant.
func IsOwner(claims *Claims, restaurantID string) bool {
	if claims == nil || restaurantID == "" {
		return false
	}
	return claims.Type == model.UserTypeRestaurant && claims.RestaurantID == restaurantID
}
