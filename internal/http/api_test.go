package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"eventhub/internal/auth"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "bearer scheme", header: "Bearer abc123", want: "abc123"},
		{name: "extra whitespace", header: "  Bearer   abc123  ", want: "abc123"},
		{name: "no scheme", header: "abc123", want: ""},
		{name: "scheme only", header: "Bearer", want: ""},
		{name: "empty", header: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, bearerToken(tt.header))
		})
	}
}

func TestSessionMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	var sess *auth.Session
	router.POST("/graphql", sessionMiddleware(), func(c *gin.Context) {
		sess = auth.SessionFrom(c.Request.Context())
		c.Status(nethttp.StatusOK)
	})

	req := httptest.NewRequest(nethttp.MethodPost, "/graphql", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	router.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, sess)
	require.Equal(t, "tok-1", sess.Token())

	// No header still yields a session; gates decide whether that matters.
	sess = nil
	req = httptest.NewRequest(nethttp.MethodPost, "/graphql", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, sess)
	require.Empty(t, sess.Token())
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(corsMiddleware())
	router.POST("/graphql", func(c *gin.Context) { c.Status(nethttp.StatusOK) })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodOptions, "/graphql", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, nethttp.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
