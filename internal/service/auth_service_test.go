package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rms/internal/auth"
	apperrors "rms/internal/errors"
	"rms/internal/model"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		input         RegisterInput
		setupMock     func(*MockUserRepository)
		expectedError error
		wantOwner     bool
	}{
		{
			name:  "successful diner registration",
			input: RegisterInput{Email: "Diner@Example.com ", Password: "password123", Name: " Dana ", Type: model.UserTypeUser},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "diner@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:  "restaurant registration creates the restaurant",
			input: RegisterInput{Email: "owner@bistro.test", Password: "password123", Name: "Le Bistro", Type: model.UserTypeRestaurant},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "owner@bistro.test").Return(nil, gorm.ErrRecordNotFound)
				m.On("CreateWithRestaurant", mock.Anything, mock.AnythingOfType("*model.User"), mock.MatchedBy(func(r *model.Restaurant) bool {
					return r.Name == "Le Bistro" &&
						r.Email == "owner@bistro.test" &&
						r.Logo == "https://ui-avatars.com/api/?name=Le+Bistro&background=101827&color=fff"
				})).Run(func(args mock.Arguments) {
					user := args.Get(1).(*model.User)
					id := uuid.New()
					user.RestaurantID = &id
				}).Return(nil)
			},
			wantOwner: true,
		},
		{
			name:  "user already exists",
			input: RegisterInput{Email: "existing@example.com", Password: "password123", Name: "Existing", Type: model.UserTypeRestaurant},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: apperrors.ErrUserAlreadyExists,
		},
		{
			name:  "unique index race",
			input: RegisterInput{Email: "race@example.com", Password: "password123", Name: "Racer", Type: model.UserTypeUser},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "race@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), new(MockTokenStore))
			user, err := service.Register(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, NormalizeEmail(tt.input.Email), user.Email)
				assert.NotEqual(t, tt.input.Password, user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.input.Password)))
				assert.Equal(t, tt.wantOwner, user.RestaurantID != nil)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register_StoreFailure(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "a@b.co").Return(nil, errors.New("connection reset"))

	service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), new(MockTokenStore))
	_, err := service.Register(context.Background(), RegisterInput{Email: "a@b.co", Password: "secret1", Name: "A", Type: model.UserTypeUser})

	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrUserAlreadyExists)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	restaurantID := uuid.New()
	stored := &model.User{
		ID:           uuid.New(),
		Email:        "owner@bistro.test",
		Name:         "Bistro",
		PasswordHash: string(hashedPassword),
		Type:         model.UserTypeRestaurant,
		RestaurantID: &restaurantID,
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "Owner@Bistro.test",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "owner@bistro.test").Return(stored, nil)
			},
		},
		{
			name:     "invalid credentials - wrong password",
			email:    "owner@bistro.test",
			password: "wrong-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "owner@bistro.test").Return(stored, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "invalid credentials - user not found",
			email:    "notfound@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	jwtService := auth.NewJWTService("test-secret")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAuthService(mockRepo, jwtService, new(MockTokenStore))
			token, user, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, stored, user)
				claims, err := jwtService.ValidateToken(token)
				require.NoError(t, err)
				assert.Equal(t, restaurantID.String(), claims.RestaurantID)
				assert.Equal(t, model.UserTypeRestaurant, claims.Type)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	token, err := jwtService.GenerateAccessToken(&model.User{ID: uuid.New(), Email: "a@b.co", Type: model.UserTypeUser})
	require.NoError(t, err)
	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)

	mockStore := new(MockTokenStore)
	mockStore.On("RevokeAccessToken", mock.Anything, claims.ID, mock.MatchedBy(func(ttl time.Duration) bool {
		return ttl > 23*time.Hour && ttl <= 24*time.Hour
	})).Return(nil)

	service := NewAuthService(new(MockUserRepository), jwtService, mockStore)

	require.NoError(t, service.Logout(context.Background(), claims))
	assert.ErrorIs(t, service.Logout(context.Background(), nil), auth.ErrInvalidToken)
	mockStore.AssertExpectations(t)
}

func TestAuthService_LogoutStoreFailure(t *testing.T) {
	claims := &auth.Claims{}
	claims.ID = "jti"
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Hour))

	mockStore := new(MockTokenStore)
	mockStore.On("RevokeAccessToken", mock.Anything, "jti", mock.Anything).Return(errors.New("connection refused"))

	err := NewAuthService(new(MockUserRepository), auth.NewJWTService("test-secret"), mockStore).
		Logout(context.Background(), claims)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "revoke token")
}
