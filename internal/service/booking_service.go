package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"rms/internal/cache"
	"rms/internal/model"
	"rms/internal/repository"
)

type bookingService struct {
	ChildService[model.Booking]
	bookings repository.BookingRepository
}

// NewBookingService builds the booking collection service. Overlapping
// bookings are accepted and reported in the log.
func NewBookingService(restaurants repository.RestaurantRepository, bookings repository.BookingRepository, cache *cache.Client) ChildService[model.Booking] {
	return &bookingService{
		ChildService: NewChildService[model.Booking]("booking", restaurants, bookings, cache),
		bookings:     bookings,
	}
}

func (s *bookingService) Create(ctx context.Context, restaurantID uuid.UUID, booking *model.Booking) (*model.Booking, error) {
	booking.Start = booking.Start.UTC()
	booking.End = booking.End.UTC()

	overlapping, err := s.bookings.FindOverlapping(ctx, restaurantID, booking.TableNum, booking.Start, booking.End)
	if err != nil {
		logrus.WithError(err).WithField("restaurant_id", restaurantID).Warn("booking overlap check failed")
	} else if len(overlapping) > 0 {
		logrus.WithFields(logrus.Fields{
			"restaurant_id": restaurantID,
			"table_num":     booking.TableNum,
			"start":         booking.Start,
			"end":           booking.End,
			"conflicts":     len(overlapping),
		}).Warn("booking overlaps existing bookings")
	}

	return s.ChildService.Create(ctx, restaurantID, booking)
}
