package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
	}{
		{name: "passes through 200", status: http.StatusOK, body: "ok", wantStatus: http.StatusOK},
		{name: "passes through 404", status: http.StatusNotFound, body: "missing", wantStatus: http.StatusNotFound},
		{name: "passes through 204", status: http.StatusNoContent, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					w.Write([]byte(tt.body)) //nolint:errcheck
				}
			})

			req := httptest.NewRequest(http.MethodGet, "/messages", nil)
			rec := httptest.NewRecorder()

			Middleware(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}
