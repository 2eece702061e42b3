package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/platform/config"
	"github.com/campushire/platform/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(jwtService *JWTService) *gin.Engine {
	router := gin.New()
	router.Use(OptionalIdentity(jwtService))
	router.GET("/open", func(c *gin.Context) {
		c.String(http.StatusOK, "user=%s", UserID(c))
	})
	router.GET("/private", RequireIdentity("/login"), func(c *gin.Context) {
		c.String(http.StatusOK, "hello %s", UserID(c))
	})
	return router
}

// signToken issues a token the way the auth service does
func signToken(t *testing.T, svc *JWTService, userID, email string, ttl time.Duration) string {
	t.Helper()
	claims := &Claims{
		UserID: models.FlexibleID(userID),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "campushire",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.secretKey)
	require.NoError(t, err)
	return token
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(&config.Config{JWTSecret: "secret"})

	token := signToken(t, svc, "42", "ada@example.com", time.Hour)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UserID.String())
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := NewJWTService(&config.Config{JWTSecret: "secret"})
	other := NewJWTService(&config.Config{JWTSecret: "other"})

	expired := signToken(t, svc, "1", "", -time.Minute)
	_, err := svc.ValidateToken(expired)
	assert.Error(t, err)

	foreign := signToken(t, other, "1", "", time.Hour)
	_, err = svc.ValidateToken(foreign)
	assert.Error(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "x"}).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = svc.ValidateToken(noUser)
	assert.Error(t, err)
}

func TestJWTService_NumericUserID(t *testing.T) {
	svc := NewJWTService(&config.Config{JWTSecret: "secret"})
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"userId": 17}).SignedString([]byte("secret"))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "17", claims.UserID.String())
}

func TestOptionalIdentity(t *testing.T) {
	svc := NewJWTService(&config.Config{JWTSecret: "secret"})
	router := newTestRouter(svc)
	token := signToken(t, svc, "7", "", time.Hour)

	tests := []struct {
		name  string
		setup func(r *http.Request)
		want  string
	}{
		{name: "anonymous", setup: func(r *http.Request) {}, want: "user="},
		{name: "bearer", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }, want: "user=7"},
		{name: "cookie", setup: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: TokenCookie, Value: token}) }, want: "user=7"},
		{name: "garbage", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, want: "user="},
		{name: "wrong scheme", setup: func(r *http.Request) { r.Header.Set("Authorization", "Basic "+token) }, want: "user="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/open", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

func TestRequireIdentity(t *testing.T) {
	svc := NewJWTService(&config.Config{JWTSecret: "secret"})
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/private?tab=cv", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?next=%2Fprivate%3Ftab%3Dcv", w.Header().Get("Location"))

	token := signToken(t, svc, "7", "", time.Hour)
	req = httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello 7", w.Body.String())
}
