package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/constants"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/mocks"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/business"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testSecret = []byte("dashboard-test-secret")

func testKeyfunc(*jwt.Token) (interface{}, error) {
	return testSecret, nil
}

func signToken(t *testing.T, claims SessionClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	return token
}

func validClaims(now time.Time) SessionClaims {
	return SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-test-123",
			Issuer:    "stytch.com/project-test-abc",
			Audience:  jwt.ClaimStrings{"project-test-abc"},
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
}

func TestSessionClaims_Authenticator(t *testing.T) {
	claims := validClaims(time.Now())
	assert.Equal(t, "project-test-abc.user-test-123", claims.Authenticator())

	claims.Audience = nil
	assert.Equal(t, "", claims.Authenticator())
}

func TestAuthClient_ParseSession(t *testing.T) {
	now := time.Now()
	config := Config{Issuer: "stytch.com/project-test-abc", Audience: "project-test-abc"}

	tests := []struct {
		name    string
		mutate  func(c *SessionClaims)
		token   string
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(c *SessionClaims) {},
		},
		{
			name: "expired",
			mutate: func(c *SessionClaims) {
				c.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))
			},
			wantErr: ErrTokenExpired,
		},
		{
			name: "wrong issuer",
			mutate: func(c *SessionClaims) {
				c.Issuer = "someone-else"
			},
			wantErr: ErrInvalidIssuer,
		},
		{
			name: "wrong audience",
			mutate: func(c *SessionClaims) {
				c.Audience = jwt.ClaimStrings{"other-project"}
			},
			wantErr: ErrInvalidAudience,
		},
		{
			name: "missing subject",
			mutate: func(c *SessionClaims) {
				c.Subject = ""
			},
			wantErr: ErrInvalidToken,
		},
		{
			name:    "garbage",
			token:   "not.a.jwt",
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewAuthClientWithKeyfunc(config, testKeyfunc)

			token := tt.token
			if token == "" {
				claims := validClaims(now)
				tt.mutate(&claims)
				token = signToken(t, claims)
			}

			claims, err := client.ParseSession(token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user-test-123", claims.Subject)
		})
	}
}

func TestAuthClient_ParseSession_NoKeys(t *testing.T) {
	client := NewAuthClientWithKeyfunc(Config{}, nil)
	_, err := client.ParseSession("anything")
	assert.ErrorIs(t, err, ErrJWKSUnavailable)
}

func TestAuthClient_VerifySession(t *testing.T) {
	now := time.Now()
	client := NewAuthClientWithKeyfunc(Config{}, testKeyfunc)

	session, err := client.VerifySession(context.Background(), signToken(t, validClaims(now)))
	require.NoError(t, err)
	assert.Equal(t, "project-test-abc.user-test-123", session.Authenticator)
	assert.Equal(t, "user-test-123", session.Subject)
	assert.WithinDuration(t, now.Add(time.Hour), session.ExpiresAt, time.Second)
}

func TestNewAuthClient_RequiresURL(t *testing.T) {
	_, err := NewAuthClient(Config{})
	assert.Error(t, err)
}

func TestAttachSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	session := &business.Session{Authenticator: "aud.sub"}

	tests := []struct {
		name          string
		setupRequest  func(r *http.Request)
		setupMocks    func(v *mocks.MockSessionVerifier)
		wantAuth      string
		wantErrorText string
	}{
		{
			name:         "no token",
			setupRequest: func(r *http.Request) {},
			setupMocks:   func(v *mocks.MockSessionVerifier) {},
		},
		{
			name: "bearer token",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer good-token")
			},
			setupMocks: func(v *mocks.MockSessionVerifier) {
				v.EXPECT().VerifySession(gomock.Any(), "good-token").Return(session, nil)
			},
			wantAuth: "aud.sub",
		},
		{
			name: "cookie token",
			setupRequest: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: constants.SessionJWTCookieName, Value: "cookie-token"})
			},
			setupMocks: func(v *mocks.MockSessionVerifier) {
				v.EXPECT().VerifySession(gomock.Any(), "cookie-token").Return(session, nil)
			},
			wantAuth: "aud.sub",
		},
		{
			name: "rejected token",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer stale")
			},
			setupMocks: func(v *mocks.MockSessionVerifier) {
				v.EXPECT().VerifySession(gomock.Any(), "stale").Return(nil, errors.New("session expired, please sign in again"))
			},
			wantErrorText: "session expired, please sign in again",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			verifier := mocks.NewMockSessionVerifier(ctrl)
			tt.setupMocks(verifier)

			var gotAuth, gotErr string
			router := gin.New()
			router.Use(AttachSession(verifier))
			router.GET("/", func(c *gin.Context) {
				gotAuth = Authenticator(c)
				gotErr = SessionErrorFromContext(c)
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setupRequest(req)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantAuth, gotAuth)
			assert.Equal(t, tt.wantErrorText, gotErr)
		})
	}
}
