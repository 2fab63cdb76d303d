package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"app/internal/domain/model"
	"app/internal/middleware"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func signToken(t *testing.T, secret string, userID int64, ttl time.Duration) string {
	t.Helper()

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   "alice@example.com",
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func doRequest(users *MockUserRepository, authz string) (*httptest.ResponseRecorder, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	h := middleware.AuthJWT(testSecret, users)(func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	})

	_ = h(c)
	return rec, nextCalled
}

func TestAuthJWTValidToken(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByID", mock.Anything, int64(7)).
		Return(&model.User{ID: 7, Name: "Alice", Email: "alice@example.com"}, nil)

	token := signToken(t, testSecret, 7, time.Hour)
	rec, nextCalled := doRequest(users, "Bearer "+token)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthJWTMissingHeader(t *testing.T) {
	users := new(MockUserRepository)

	rec, nextCalled := doRequest(users, "")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Access token required")
}

func TestAuthJWTWrongSecret(t *testing.T) {
	users := new(MockUserRepository)

	token := signToken(t, "other-secret", 7, time.Hour)
	rec, nextCalled := doRequest(users, "Bearer "+token)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}

// 期限切れも署名不正と同じレスポンス（どちらかを外に漏らさない）。
func TestAuthJWTExpiredToken(t *testing.T) {
	users := new(MockUserRepository)

	token := signToken(t, testSecret, 7, -time.Hour)
	rec, nextCalled := doRequest(users, "Bearer "+token)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}

// トークンが有効でもユーザーが消えていれば通さない。
func TestAuthJWTUserDeleted(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByID", mock.Anything, int64(7)).Return(nil, nil)

	token := signToken(t, testSecret, 7, time.Hour)
	rec, nextCalled := doRequest(users, "Bearer "+token)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")
}
