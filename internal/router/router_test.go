package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rktclgh/fairplay-booth/internal/handler"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

func denyAll(c *ginext.Context) {
	c.AbortWithStatus(http.StatusUnauthorized)
}

func passThrough(c *ginext.Context) {
	c.Next()
}

func TestInitRouter(t *testing.T) {
	r := InitRouter("test", handler.NewHandler(handler.Services{}), Auth{Required: denyAll, Optional: passThrough})

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api/experiences/not-a-uuid", http.StatusBadRequest},
		{http.MethodPost, "/api/attendees", http.StatusBadRequest},
		{http.MethodPost, "/api/experiences", http.StatusUnauthorized},
		{http.MethodPost, "/api/checkpoint/check-in", http.StatusUnauthorized},
		{http.MethodGet, "/api/subscribe", http.StatusUnauthorized},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
