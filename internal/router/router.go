package router

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"

	"rms/docs"
	"rms/internal/auth"
	"rms/internal/config"
	"rms/internal/handler"
	"rms/internal/middleware"
)

// Handlers groups the HTTP handlers and the token dependencies the routes need.
type Handlers struct {
	Health      *handler.HealthHandler
	Auth        *handler.AuthHandler
	Restaurants *handler.RestaurantHandler
	Menu        *handler.MenuHandler
	Tables      *handler.TableHandler
	Bookings    *handler.BookingHandler
	Orders      *handler.OrderHandler
	Feedback    *handler.FeedbackHandler
	Incomes     *handler.IncomeHandler

	JWTService *auth.JWTService
	TokenStore auth.TokenStoreInterface
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, log *logrus.Logger, h Handlers) {
	e.Use(echomw.RequestID())
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(log))
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = NewValidator()

	if cfg.SwaggerHost != "" {
		host := strings.TrimPrefix(cfg.SwaggerHost, "https://")
		docs.SwaggerInfo.Host = strings.TrimPrefix(host, "http://")
	}

	e.GET("/healthz", h.Health.Healthz)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	api.GET("/test", h.Health.Status)

	requireToken := middleware.RequireToken(h.JWTService, h.TokenStore)
	owner := middleware.RestaurantOwner("restaurantId")

	// Auth routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/logout", h.Auth.Logout, requireToken)

	// Restaurant routes
	api.GET("/restaurants", h.Restaurants.ListRestaurants)
	api.GET("/restaurants/:restaurantId", h.Restaurants.GetRestaurant)

	restaurant := api.Group("/restaurants/:restaurantId")

	restaurant.POST("/menu", h.Menu.CreateMenuItem, requireToken, owner)
	restaurant.GET("/menu", h.Menu.ListMenu)

	restaurant.POST("/tables", h.Tables.CreateTable, requireToken, owner)
	restaurant.GET("/tables", h.Tables.ListTables)

	restaurant.POST("/bookings", h.Bookings.CreateBooking)
	restaurant.GET("/bookings", h.Bookings.ListBookings)

	restaurant.POST("/orders", h.Orders.CreateOrder)
	restaurant.GET("/orders", h.Orders.ListOrders)

	restaurant.POST("/feedback", h.Feedback.CreateFeedback)
	restaurant.GET("/feedback", h.Feedback.ListFeedback)

	restaurant.POST("/incomes", h.Incomes.CreateIncome, requireToken, owner)
	restaurant.GET("/incomes", h.Incomes.ListIncomes, requireToken, owner)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator returns a validator that reports fields by their JSON names.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
