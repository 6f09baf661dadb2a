package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travelapp/internal/config"
	"travelapp/internal/domain/models"
	"travelapp/internal/repositories"
	"travelapp/internal/routegen"
	"travelapp/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, confirmDelay time.Duration) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := config.Env{
		JWTSecret:   "test-secret",
		CORSOrigins: []string{"http://localhost:3000"},
	}

	store := repositories.NewMemoryStore()
	sessions, err := services.NewSessionService(store, 0)
	require.NoError(t, err)

	scheduler := services.NewConfirmScheduler(confirmDelay)
	t.Cleanup(scheduler.Stop)

	bookings := services.NewBookingService(store, sessions, scheduler)
	return NewRouter(env, sessions, bookings, routegen.NewSeeded(7))
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, time.Minute)

	w := doJSON(t, r, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestLocationsArePublic(t *testing.T) {
	r := newTestRouter(t, time.Minute)

	w := doJSON(t, r, http.MethodGet, "/api/locations?q=mumbai", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Locations []models.Location `json:"locations"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.Locations, 1)
	require.Equal(t, "MUM", resp.Locations[0].Code)

	w = doJSON(t, r, http.MethodGet, "/api/locations/99", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	r := newTestRouter(t, time.Minute)

	for _, path := range []string{
		"/api/routes?from=1&to=2",
		"/api/bookings",
	} {
		w := doJSON(t, r, http.MethodGet, path, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestBookingFlow(t *testing.T) {
	r := newTestRouter(t, time.Minute)

	// sign up and land in an active session
	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", gin.H{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "secret123",
		"phone":    "9876543210",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var signup struct {
		Token string            `json:"token"`
		User  models.PublicUser `json:"user"`
	}
	decodeBody(t, w, &signup)
	require.NotEmpty(t, signup.Token)
	require.NotEmpty(t, signup.User.ID)

	// search routes for the booking
	w = doJSON(t, r, http.MethodGet, "/api/routes?from=1&to=2&mode=flight", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var search struct {
		Routes []models.Route `json:"routes"`
	}
	decodeBody(t, w, &search)
	require.Len(t, search.Routes, 4)
	for _, rt := range search.Routes {
		require.Equal(t, models.ModeFlight, rt.Mode)
	}

	// book the first result for two passengers
	w = doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"route": search.Routes[0],
		"passengers": []gin.H{
			{"name": "Asha", "age": 30, "gender": "female"},
			{"name": "Ravi", "age": 32, "gender": "male"},
		},
		"contactEmail":  "asha@example.com",
		"contactPhone":  "9876543210",
		"paymentMethod": "upi",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Booking models.Booking `json:"booking"`
	}
	decodeBody(t, w, &created)
	booking := created.Booking
	require.Equal(t, models.StatusPending, booking.Status)
	require.Equal(t, signup.User.ID, booking.UserID)
	require.Equal(t, search.Routes[0].Price*2, booking.TotalCost)
	require.Len(t, booking.PNR, 12)

	// it shows up in the list
	w = doJSON(t, r, http.MethodGet, "/api/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Bookings []models.Booking `json:"bookings"`
	}
	decodeBody(t, w, &list)
	require.Len(t, list.Bookings, 1)
	require.Equal(t, booking.ID, list.Bookings[0].ID)

	// the e-ticket renders as a PDF
	w = doJSON(t, r, http.MethodGet, "/api/bookings/"+booking.ID+"/e-ticket", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	require.NotZero(t, w.Body.Len())

	// cancel and read the updated status back
	w = doJSON(t, r, http.MethodPost, "/api/bookings/"+booking.ID+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cancelled struct {
		Booking models.Booking `json:"booking"`
	}
	decodeBody(t, w, &cancelled)
	require.Equal(t, models.StatusCancelled, cancelled.Booking.Status)
}

func TestLogoutEndsSession(t *testing.T) {
	r := newTestRouter(t, time.Minute)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", gin.H{
		"name":     "Ravi",
		"email":    "ravi@example.com",
		"password": "secret123",
		"phone":    "9000000000",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/bookings", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouteSearchValidation(t *testing.T) {
	r := newTestRouter(t, time.Minute)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", gin.H{
		"name":     "Meera",
		"email":    "meera@example.com",
		"password": "secret123",
		"phone":    "9111111111",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/routes?from=1", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/routes?from=1&to=2&mode=boat", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// unknown location pairs degrade to an empty result
	w = doJSON(t, r, http.MethodGet, "/api/routes?from=404&to=405", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var search struct {
		Routes []models.Route `json:"routes"`
	}
	decodeBody(t, w, &search)
	require.Empty(t, search.Routes)
}
