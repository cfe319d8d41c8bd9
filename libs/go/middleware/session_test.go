package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/constants"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	existing := uuid.New().String()

	tests := []struct {
		name          string
		cookie        string
		wantReuse     bool
		wantSetCookie bool
	}{
		{name: "issues new session", wantSetCookie: true},
		{name: "reuses valid session", cookie: existing, wantReuse: true},
		{name: "replaces malformed session", cookie: "not-a-uuid", wantSetCookie: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(SessionMiddleware(true))

			var got string
			router.GET("/", func(c *gin.Context) {
				got = GetSessionID(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.NoError(t, uuid.Validate(got))
			if tt.wantReuse {
				assert.Equal(t, existing, got)
			}

			cookies := w.Result().Cookies()
			if !tt.wantSetCookie {
				assert.Empty(t, cookies)
				return
			}
			require.Len(t, cookies, 1)
			assert.Equal(t, constants.SessionCookieName, cookies[0].Name)
			assert.Equal(t, got, cookies[0].Value)
			assert.True(t, cookies[0].HttpOnly)
			assert.True(t, cookies[0].Secure)
		})
	}
}
