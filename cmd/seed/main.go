package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"

	"rms/internal/auth"
	"rms/internal/config"
	"rms/internal/db"
	apperrors "rms/internal/errors"
	"rms/internal/model"
	"rms/internal/repository"
	"rms/internal/service"
)

// SeedRestaurant is one demo restaurant with its owner account.
type SeedRestaurant struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Name     string         `json:"name"`
	Menu     []SeedMenuItem `json:"menu"`
	Tables   []SeedTable    `json:"tables"`
}

// SeedMenuItem is a demo dish.
type SeedMenuItem struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Img   string          `json:"img"`
}

// SeedTable is a demo table.
type SeedTable struct {
	Num    int               `json:"num"`
	Status model.TableStatus `json:"status"`
}

// seeder registers owners and fills their restaurants through the services.
type seeder struct {
	auth   service.AuthService
	menu   service.ChildService[model.MenuItem]
	tables service.ChildService[model.Table]
}

func main() {
	source := flag.String("source", "cmd/seed/restaurants.json", "path or http(s) URL of the demo restaurants JSON")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("Starting seed script...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}

	// Connect to database
	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN, gormlogger.Warn)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close(gormDB) }()

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB, false); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	restaurants, err := loadRestaurants(*source)
	if err != nil {
		logrus.Fatalf("Failed to load restaurants: %v", err)
	}
	logrus.Infof("Loaded %d restaurants from %s", len(restaurants), *source)

	restaurantRepo := repository.NewRestaurantRepository(gormDB)
	s := &seeder{
		auth: service.NewAuthService(
			repository.NewUserRepository(gormDB),
			auth.NewJWTService(cfg.JWTSecret),
			auth.NewTokenStore(nil),
		),
		menu:   service.NewChildService[model.MenuItem]("menu item", restaurantRepo, repository.NewChildRepository[model.MenuItem](gormDB), nil),
		tables: service.NewChildService[model.Table]("table", restaurantRepo, repository.NewChildRepository[model.Table](gormDB), nil),
	}

	seeded, skipped, err := s.seed(context.Background(), restaurants)
	if err != nil {
		logrus.Fatalf("Failed to seed restaurants: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"created": seeded,
		"skipped": skipped,
	}).Info("Seed completed successfully!")
}

// loadRestaurants reads the seed document from a local file or an HTTP URL.
func loadRestaurants(source string) ([]SeedRestaurant, error) {
	var r io.ReadCloser
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch seed data: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("seed source returned status code: %d", resp.StatusCode)
		}
		r = resp.Body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, err
		}
		r = f
	}
	defer r.Close()

	return decodeRestaurants(r)
}

func decodeRestaurants(r io.Reader) ([]SeedRestaurant, error) {
	var restaurants []SeedRestaurant
	if err := json.NewDecoder(r).Decode(&restaurants); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return restaurants, nil
}

// seed creates each restaurant that is not registered yet. Existing owner
// accounts are left untouched.
func (s *seeder) seed(ctx context.Context, restaurants []SeedRestaurant) (seeded int, skipped int, err error) {
	for _, r := range restaurants {
		owner, err := s.auth.Register(ctx, service.RegisterInput{
			Email:    r.Email,
			Password: r.Password,
			Name:     r.Name,
			Type:     model.UserTypeRestaurant,
		})
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			logrus.WithField("email", r.Email).Info("restaurant already seeded, skipping")
			skipped++
			continue
		}
		if err != nil {
			return seeded, skipped, fmt.Errorf("error registering %s: %w", r.Email, err)
		}

		restaurantID := *owner.RestaurantID
		for _, item := range r.Menu {
			if _, err := s.menu.Create(ctx, restaurantID, &model.MenuItem{Name: item.Name, Price: item.Price, Img: item.Img}); err != nil {
				return seeded, skipped, fmt.Errorf("error adding menu item %q to %s: %w", item.Name, r.Name, err)
			}
		}
		for _, table := range r.Tables {
			status := table.Status
			if status == "" {
				status = model.TableStatusAvailable
			}
			if _, err := s.tables.Create(ctx, restaurantID, &model.Table{Num: table.Num, Status: status}); err != nil {
				return seeded, skipped, fmt.Errorf("error adding table %d to %s: %w", table.Num, r.Name, err)
			}
		}
		seeded++
	}

	return seeded, skipped, nil
}
