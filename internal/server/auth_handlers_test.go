package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"creatorhub/internal/config"
	"creatorhub/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, role models.UserRole, limit, offset int) ([]models.User, error) {
	args := m.Called(ctx, role, limit, offset)
	return args.Get(0).([]models.User), args.Error(1)
}

func TestSignup(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockUserRepository)

	s := &Server{
		config:   &config.Config{JWTSecret: "test_secret"},
		userRepo: mockRepo,
	}

	app.Post("/signup", s.Signup)

	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "Creator success",
			body: map[string]string{
				"username": "testcreator",
				"email":    "creator@example.com",
				"password": "Password123!",
				"role":     "creator",
			},
			mockSetup: func() {
				mockRepo.On("GetByEmail", mock.Anything, "creator@example.com").Return(nil, nil).Once()
				mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
					return u.Role == models.RoleCreator && u.Status == models.UserStatusActive
				})).Return(nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Brand success",
			body: map[string]string{
				"username": "acmebrand",
				"email":    "brand@example.com",
				"password": "Password123!",
				"role":     "brand",
			},
			mockSetup: func() {
				mockRepo.On("GetByEmail", mock.Anything, "brand@example.com").Return(nil, nil).Once()
				mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
					return u.Role == models.RoleBrand
				})).Return(nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Admin role rejected",
			body: map[string]string{
				"username": "sneaky",
				"email":    "sneaky@example.com",
				"password": "Password123!",
				"role":     "admin",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Missing fields",
			body: map[string]string{
				"username": "nopassword",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Weak password",
			body: map[string]string{
				"username": "weakling",
				"email":    "weak@example.com",
				"password": "short",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Duplicate email",
			body: map[string]string{
				"username": "dupe",
				"email":    "dupe@example.com",
				"password": "Password123!",
			},
			mockSetup: func() {
				mockRepo.On("GetByEmail", mock.Anything, "dupe@example.com").
					Return(&models.User{ID: 7, Email: "dupe@example.com"}, nil).Once()
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			payload, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
	mockRepo.AssertExpectations(t)
}

func TestLogin(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockUserRepository)

	s := &Server{
		config:   &config.Config{JWTSecret: "test_secret"},
		userRepo: mockRepo,
	}

	app.Post("/login", s.Login)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.DefaultCost)
	activeUser := &models.User{
		ID:       1,
		Username: "creator",
		Email:    "creator@example.com",
		Password: string(hashed),
		Role:     models.RoleCreator,
		Status:   models.UserStatusActive,
	}
	suspendedUser := &models.User{
		ID:       2,
		Username: "banned",
		Email:    "banned@example.com",
		Password: string(hashed),
		Role:     models.RoleCreator,
		Status:   models.UserStatusSuspended,
	}

	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{"email": "creator@example.com", "password": "Password123!"},
			mockSetup: func() {
				mockRepo.On("GetByEmail", mock.Anything, "creator@example.com").Return(activeUser, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Wrong password",
			body: map[string]string{"email": "creator@example.com", "password": "nope"},
			mockSetup: func() {
				mockRepo.On("GetByEmail", mock.Anything, "creator@example.com").Return(activeUser, nil).Once()
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Unknown user",
			body: map[string]string{"email": "ghost@example.com", "password": "Password123!"},
			mockSetup: func() {
				mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil).Once()
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Suspended account",
			body: map[string]string{"email": "banned@example.com", "password": "Password123!"},
			mockSetup: func() {
				mockRepo.On("GetByEmail", mock.Anything, "banned@example.com").Return(suspendedUser, nil).Once()
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			payload, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
	mockRepo.AssertExpectations(t)
}

func TestLoginTokenCarriesRole(t *testing.T) {
	s := &Server{config: &config.Config{JWTSecret: "test_secret"}}

	token, err := s.generateToken(42, "brandco", models.RoleBrand)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}
