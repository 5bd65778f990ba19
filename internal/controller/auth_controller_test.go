package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lingua_edu_backend/internal/config"
	"lingua_edu_backend/internal/model"
	"lingua_edu_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memoryUserStore struct {
	byEmail map[string]*model.User
	nextID  uint
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{byEmail: map[string]*model.User{}}
}

func (s *memoryUserStore) Create(user *model.User) error {
	s.nextID++
	user.ID = s.nextID
	s.byEmail[user.Email] = user
	return nil
}

func (s *memoryUserStore) FindByID(id uint) (*model.User, error) {
	for _, user := range s.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memoryUserStore) FindByEmail(email string) (*model.User, error) {
	user, ok := s.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "controller-test-secret", ExpireTime: time.Hour},
	}
	authService := service.NewAuthService(newMemoryUserStore(), cfg)
	authController := NewAuthController(authService)

	r := gin.New()
	r.POST("/register/", authController.Register)
	r.POST("/login/", authController.Login)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterCreatesUserAndReturnsToken(t *testing.T) {
	r := newAuthRouter()

	w := postJSON(r, "/register/", `{"first_name":"Ivan","last_name":"Petrov","email":"ivan@example.com","password":"secret123"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		User struct {
			ID        uint   `json:"id"`
			Email     string `json:"email"`
			FirstName string `json:"first_name"`
		} `json:"user"`
		Token   string `json:"token"`
		Success bool   `json:"success"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "ivan@example.com", body.User.Email)
	assert.Equal(t, "Ivan", body.User.FirstName)
	assert.NotZero(t, body.User.ID)
}

func TestRegisterDuplicateEmailFieldError(t *testing.T) {
	r := newAuthRouter()

	w := postJSON(r, "/register/", `{"email":"ivan@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/register/", `{"email":"ivan@example.com","password":"other456"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "already_registered", body["email"])
}

func TestRegisterMissingFields(t *testing.T) {
	r := newAuthRouter()

	w := postJSON(r, "/register/", `{"first_name":"Ivan"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "missing_required_field", body["email"])
	assert.Equal(t, "missing_required_field", body["password"])
}

func TestLoginReturnsTokenForValidCredentials(t *testing.T) {
	r := newAuthRouter()

	w := postJSON(r, "/register/", `{"email":"ivan@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/login/", `{"email":"ivan@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Token   string `json:"token"`
		Success bool   `json:"success"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Token)
}

func TestLoginFailureShapeIsUniform(t *testing.T) {
	r := newAuthRouter()

	w := postJSON(r, "/register/", `{"email":"ivan@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	wrongPassword := postJSON(r, "/login/", `{"email":"ivan@example.com","password":"nope"}`)
	unknownEmail := postJSON(r, "/login/", `{"email":"nobody@example.com","password":"secret123"}`)

	for _, w := range []*httptest.ResponseRecorder{wrongPassword, unknownEmail} {
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body struct {
			Success bool              `json:"success"`
			Detail  map[string]string `json:"detail"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "invalid_credentials", body.Detail["auth"])
	}
}
