package handler

import (
	"github.com/labstack/echo/v4"

	"rms/internal/model"
	"rms/internal/service"
)

// FeedbackHandler handles feedback endpoints.
type FeedbackHandler struct {
	feedback service.ChildService[model.Feedback]
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(feedback service.ChildService[model.Feedback]) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

// CreateFeedbackRequest represents a guest review. Ratings range from 1 to 5.
type CreateFeedbackRequest struct {
	UserName      string `json:"userName" validate:"required,max=255"`
	Text          string `json:"text" validate:"max=4000"`
	FoodRating    int    `json:"foodRating" validate:"required,min=1,max=5"`
	ServiceRating int    `json:"serviceRating" validate:"required,min=1,max=5"`
}

// CreateFeedback godoc
// @Summary Leave feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param request body CreateFeedbackRequest true "Feedback"
// @Success 201 {object} model.Feedback
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /restaurants/{restaurantId}/feedback [post]
func (h *FeedbackHandler) CreateFeedback(c echo.Context) error {
	var req CreateFeedbackRequest
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}

	return createChild(c, h.feedback, &model.Feedback{
		UserName:      req.UserName,
		Text:          req.Text,
		FoodRating:    req.FoodRating,
		ServiceRating: req.ServiceRating,
	})
}

// ListFeedback godoc
// @Summary List a restaurant's feedback
// @Tags feedback
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Success 200 {array} model.Feedback
// @Failure 500 {object} errors.ErrorResponse
// @Router /restaurants/{restaurantId}/feedback [get]
func (h *FeedbackHandler) ListFeedback(c echo.Context) error {
	return listChildren(c, h.feedback)
}
