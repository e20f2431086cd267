package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tourist-registry-api/internal/application/ports"
	"tourist-registry-api/internal/application/services"
	"tourist-registry-api/internal/interface/api/rest/dto/auth"
)

type fakeAuthService struct {
	LoginFunc func(ctx context.Context, email, password string) (string, error)
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, error) {
	if f.LoginFunc == nil {
		return "", errors.New("not used")
	}
	return f.LoginFunc(ctx, email, password)
}

func newAuthRouter(t *testing.T, as ports.Auth) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	ac := &AuthController{
		logger:      zap.NewNop(),
		authService: as,
	}
	r.POST("/login", ac.LoginHandler)
	return r
}

func doPOST(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var b []byte
	switch v := body.(type) {
	case string:
		b = []byte(v)
	default:
		var err error
		b, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func validLogin() auth.LoginRequest {
	return auth.LoginRequest{
		Email:    "user@example.com",
		Password: "VeryStrongPassw0rd!",
	}
}

func TestAuthController_LoginHandler(t *testing.T) {
	tests := []struct {
		name        string
		body        any
		login       func(ctx context.Context, email, password string) (string, error)
		wantStatus  int
		jsonEq      map[string]any
		jsonHasKeys []string
	}{
		{
			name:        "400 invalid JSON",
			body:        "{bad json",
			wantStatus:  http.StatusBadRequest,
			jsonEq:      map[string]any{"error": "invalid json"},
			jsonHasKeys: []string{"error"},
		},
		{
			name:        "400 validation error",
			body:        auth.LoginRequest{Email: "not-an-email", Password: ""},
			wantStatus:  http.StatusBadRequest,
			jsonHasKeys: []string{"error", "details"},
		},
		{
			name: "401 invalid credentials",
			body: validLogin(),
			login: func(ctx context.Context, email, password string) (string, error) {
				return "", services.ErrInvalidCredentials
			},
			wantStatus:  http.StatusUnauthorized,
			jsonEq:      map[string]any{"error": "invalid credentials"},
			jsonHasKeys: []string{"error"},
		},
		{
			name: "500 service error",
			body: validLogin(),
			login: func(ctx context.Context, email, password string) (string, error) {
				return "", errors.New("db error")
			},
			wantStatus:  http.StatusInternalServerError,
			jsonEq:      map[string]any{"error": "failed to log in"},
			jsonHasKeys: []string{"error"},
		},
		{
			name: "200 success",
			body: validLogin(),
			login: func(ctx context.Context, email, password string) (string, error) {
				assert.Equal(t, "user@example.com", email)
				return "tok_123", nil
			},
			wantStatus:  http.StatusOK,
			jsonEq:      map[string]any{"access_token": "tok_123", "token_type": "Bearer"},
			jsonHasKeys: []string{"access_token", "token_type"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := newAuthRouter(t, &fakeAuthService{LoginFunc: tt.login})
			rr := doPOST(t, r, "/login", tt.body)

			require.Equal(t, tt.wantStatus, rr.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			for k, v := range tt.jsonEq {
				assert.Equal(t, v, resp[k], "field %q mismatch", k)
			}
			for _, k := range tt.jsonHasKeys {
				assert.Contains(t, resp, k, "expected key %q", k)
			}
		})
	}
}
