package httpx

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Every(time.Hour), 2)
	h := RateLimitMiddleware(limiter)(okHandler())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/rounds", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// A different client has its own bucket.
	req := httptest.NewRequest(http.MethodGet, "/api/rounds", nil)
	req.RemoteAddr = "10.0.0.2:5555"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIPRateLimiterPrunesIdleClients(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(1), 1)
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return start }

	for i := 0; i <= cleanupThreshold; i++ {
		limiter.GetLimiter(fmt.Sprintf("10.1.%d.%d", i/256, i%256))
	}
	require.Equal(t, cleanupThreshold+1, limiter.Len())

	limiter.now = func() time.Time { return start.Add(maxIdleAge + time.Minute) }
	limiter.GetLimiter("192.168.0.1")
	assert.Equal(t, 1, limiter.Len())
}

func TestCORSMiddleware(t *testing.T) {
	h := CORSMiddleware([]string{"https://scores.example.com"})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/rounds", nil)
	req.Header.Set("Origin", "https://scores.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "https://scores.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/rounds", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/rounds", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDecodeJSON(t *testing.T) {
	var body struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Metropolitan"}`))
	require.NoError(t, DecodeJSON(req, &body))
	assert.Equal(t, "Metropolitan", body.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.EqualError(t, DecodeJSON(req, &body), "request body is empty")

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.Error(t, DecodeJSON(req, &body))
}

func TestURLParams(t *testing.T) {
	id := uuid.New()
	r := chi.NewRouter()
	r.Get("/rounds/{roundID}/holes/{hole}", func(w http.ResponseWriter, r *http.Request) {
		gotID, err := UUIDParam(r, "roundID")
		require.NoError(t, err)
		assert.Equal(t, id, gotID)

		hole, err := IntParam(r, "hole")
		require.NoError(t, err)
		assert.Equal(t, 7, hole)
		WriteJSON(w, http.StatusOK, map[string]int{"hole": hole})
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rounds/"+id.String()+"/holes/7", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"hole":7}`, rec.Body.String())

	rec = httptest.NewRecorder()
	r2 := chi.NewRouter()
	r2.Get("/rounds/{roundID}", func(w http.ResponseWriter, r *http.Request) {
		_, err := UUIDParam(r, "roundID")
		assert.Error(t, err)
		WriteError(w, http.StatusBadRequest, err.Error())
	})
	r2.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rounds/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
