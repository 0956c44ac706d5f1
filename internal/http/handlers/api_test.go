package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	intconfig "opentrip/internal/config"
	"opentrip/internal/domain"
	router "opentrip/internal/http"
	"opentrip/internal/storage"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	env := intconfig.Env{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}
	stores := router.Stores{
		Users:        storage.NewMemory[domain.User]("user"),
		Trips:        storage.NewMemory[domain.Trip]("trip"),
		Bookings:     storage.NewMemory[domain.Booking]("booking"),
		Transactions: storage.NewMemory[domain.Transaction]("transaction"),
	}
	return router.NewRouter(env, stores)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func registerAndLogin(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "wanda",
		"email":    "wanda@example.com",
		"password": "rahasia123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register status %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "wanda",
		"password": "rahasia123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status %d: %s", w.Code, w.Body.String())
	}
	token, _ := decode(t, w)["token"].(string)
	if token == "" {
		t.Fatalf("login returned no token")
	}
	return token
}

func TestAuthFlow(t *testing.T) {
	r := newTestRouter()
	token := registerAndLogin(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me status %d: %s", w.Code, w.Body.String())
	}
	if decode(t, w)["username"] != "wanda" {
		t.Fatalf("unexpected me payload: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("me without token should be 401, got %d", w.Code)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	r := newTestRouter()
	registerAndLogin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "wanda",
		"email":    "other@example.com",
		"password": "rahasia123",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register should be 400, got %d", w.Code)
	}
}

func TestTripMutationRequiresAuth(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodPost, "/api/opentrip/trips", "", gin.H{
		"destination": "Bromo",
		"capacity":    5,
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func createTrip(t *testing.T, r *gin.Engine, token string, capacity int) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/opentrip/trips", token, gin.H{
		"destination": "Bromo",
		"description": "sunrise trip",
		"capacity":    capacity,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create trip status %d: %s", w.Code, w.Body.String())
	}
	id, _ := decode(t, w)["trip_id"].(string)
	if id == "" {
		t.Fatalf("trip response has no id: %s", w.Body.String())
	}
	return id
}

func TestTripLifecycleEndpoints(t *testing.T) {
	r := newTestRouter()
	token := registerAndLogin(t, r)
	tripID := createTrip(t, r, token, 5)

	w := doJSON(t, r, http.MethodPost, "/api/opentrip/trips/"+tripID+"/schedule", token, gin.H{
		"departure": "2026-09-10",
		"return":    "2026-09-12",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("schedule status %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/opentrip/trips/"+tripID+"/schedule", token, gin.H{
		"departure": "2026-09-10",
		"return":    "2026-09-08",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("inverted schedule should be 400, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, "/api/opentrip/trips/"+tripID+"/itinerary", token, gin.H{
		"activities": []string{"hiking", "sunrise point"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("itinerary status %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/opentrip/trips/"+tripID, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get trip status %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/opentrip/trips/missing", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing trip should be 404, got %d", w.Code)
	}
}

func TestBookingCapacityConflictMapsTo409(t *testing.T) {
	r := newTestRouter()
	token := registerAndLogin(t, r)
	tripID := createTrip(t, r, token, 2)

	w := doJSON(t, r, http.MethodPost, "/api/opentrip/bookings", "", gin.H{
		"trip_id":      tripID,
		"participants": 2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("booking A status %d: %s", w.Code, w.Body.String())
	}
	bookingID, _ := decode(t, w)["booking_id"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/opentrip/bookings", "", gin.H{
		"trip_id":      tripID,
		"participants": 1,
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("over-capacity booking should be 409, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/opentrip/bookings/%s/cancel", bookingID), "", gin.H{
		"reason": "batal berangkat",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("cancel status %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/opentrip/bookings", "", gin.H{
		"trip_id":      tripID,
		"participants": 1,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("retry after cancel should succeed, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPaymentFlowOverHTTP(t *testing.T) {
	r := newTestRouter()
	token := registerAndLogin(t, r)
	tripID := createTrip(t, r, token, 4)

	w := doJSON(t, r, http.MethodPost, "/api/opentrip/bookings", "", gin.H{
		"trip_id":      tripID,
		"participants": 2,
	})
	bookingID, _ := decode(t, w)["booking_id"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/opentrip/transactions", token, gin.H{
		"booking_id":     bookingID,
		"amount":         300000,
		"payment_method": "bank_transfer",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create transaction status %d: %s", w.Code, w.Body.String())
	}
	txnID, _ := decode(t, w)["transaction_id"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/opentrip/transactions/"+txnID+"/validate", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("validate status %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/opentrip/transactions/"+txnID+"/confirm", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("confirm status %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/opentrip/bookings/"+bookingID, "", nil)
	if got := decode(t, w)["status"]; got != "CONFIRMED" {
		t.Fatalf("booking should be CONFIRMED after settlement, got %v", got)
	}

	w = doJSON(t, r, http.MethodPost, "/api/opentrip/transactions/"+txnID+"/confirm", "", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("double settlement should be 409, got %d", w.Code)
	}
}

func TestBookingETicketPDF(t *testing.T) {
	r := newTestRouter()
	token := registerAndLogin(t, r)
	tripID := createTrip(t, r, token, 4)

	w := doJSON(t, r, http.MethodPost, "/api/opentrip/bookings", "", gin.H{
		"trip_id":      tripID,
		"participants": 2,
	})
	bookingID, _ := decode(t, w)["booking_id"].(string)

	w = doJSON(t, r, http.MethodGet, "/api/opentrip/bookings/"+bookingID+"/e-ticket", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("e-ticket status %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected pdf content type, got %s", ct)
	}
	if w.Body.Len() == 0 {
		t.Fatalf("empty pdf body")
	}
}
