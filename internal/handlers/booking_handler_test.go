package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/navalhaapps/barbershop-api/internal/httperr"
)

func TestWriteBookingErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		code   string
		status int
	}{
		{"invalid_date", http.StatusBadRequest},
		{"barber_not_found", http.StatusNotFound},
		{"service_not_found", http.StatusNotFound},
		{"booking_not_found", http.StatusNotFound},
		{"slot_taken", http.StatusConflict},
		{"cancel_forbidden", http.StatusForbidden},
		{"already_cancelled", http.StatusBadRequest},
		{"past_booking", http.StatusBadRequest},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		writeBookingError(c, httperr.ErrBusiness(tc.code))

		if w.Code != tc.status {
			t.Errorf("%s: status = %d, want %d", tc.code, w.Code, tc.status)
		}
	}
}

// Infrastructure failures never leak their business-less error out as
// anything but a 500.
func TestWriteBookingErrorInternal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	writeBookingError(c, errFake)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

var errFake = errTest("storage down")

type errTest string

func (e errTest) Error() string { return string(e) }
