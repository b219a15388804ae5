package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-habit-tracker/internal/config"
	"github.com/MKhiriev/go-habit-tracker/internal/logger"
	"github.com/MKhiriev/go-habit-tracker/internal/service"
)

func TestVersion(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.4.0")

	rr := doRequest(t, router, http.MethodGet, "/api/version/", "", false)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "1.4.0", rr.Body.String())
}

func TestRouter_Fallbacks(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantDetail string
	}{
		{"unknown path", http.MethodGet, "/habit/unknown/", http.StatusNotFound, "Not found."},
		{"missing trailing slash", http.MethodGet, "/api/version", http.StatusNotFound, "Not found."},
		{"wrong method", http.MethodDelete, "/user/login/", http.StatusMethodNotAllowed, `Method "DELETE" not allowed.`},
		{"put on collection", http.MethodPut, "/habit/habits/", http.StatusMethodNotAllowed, `Method "PUT" not allowed.`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t)

			rr := doRequest(t, router, tt.method, tt.target, "", true)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantDetail, detailOf(t, rr))
		})
	}
}

func TestRouter_CORS(t *testing.T) {
	cfg := config.Server{CORSAllowedOrigins: []string{"http://localhost:3000"}}
	router := NewHandler(&service.Services{}, cfg, logger.Nop()).Init()

	req := newJSONRequest(http.MethodOptions, "/user/login/", "")
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := serve(router, req)

	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "http://evil.example")
	rr = serve(router, req)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_SetsTraceID(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("dev")

	req := newJSONRequest(http.MethodGet, "/api/version/", "")
	req.Header.Set(traceIDHeader, "abc")
	rr := serve(router, req)

	assert.Equal(t, "abc", rr.Header().Get(traceIDHeader))
}
