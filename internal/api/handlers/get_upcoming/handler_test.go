package get_upcoming

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingsService "github.com/GabrielEscala/Proyecto-Salas/internal/service/bookings"
	"github.com/GabrielEscala/Proyecto-Salas/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	resp *models.BookingListResponse
	err  error

	date, currentTime, roomID string
}

func (s *stubService) ListUpcoming(_ context.Context, date, currentTime, roomID string) (*models.BookingListResponse, error) {
	s.date, s.currentTime, s.roomID = date, currentTime, roomID
	return s.resp, s.err
}

func get(t *testing.T, h *Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &stubService{resp: &models.BookingListResponse{
		Bookings: []models.BookingResponse{{ID: "id-1", Time: "14:00"}},
	}}
	h := NewHandler(svc, nopLogger{})

	rec := get(t, h, "/api/v1/bookings/upcoming?date=2026-03-20&currentTime=13:30&roomId=r1")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "2026-03-20", svc.date)
	assert.Equal(t, "13:30", svc.currentTime)
	assert.Equal(t, "r1", svc.roomID)

	var resp models.BookingListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "14:00", resp.Bookings[0].Time)
}

func TestHandle_MissingParams(t *testing.T) {
	h := NewHandler(&stubService{}, nopLogger{})

	rec := get(t, h, "/api/v1/bookings/upcoming?date=2026-03-20")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, h, "/api/v1/bookings/upcoming?currentTime=13:30")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	h := NewHandler(&stubService{err: bookingsService.ErrInvalidInput}, nopLogger{})
	rec := get(t, h, "/api/v1/bookings/upcoming?date=2026-03-20&currentTime=nope")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	h = NewHandler(&stubService{err: assert.AnError}, nopLogger{})
	rec = get(t, h, "/api/v1/bookings/upcoming?date=2026-03-20&currentTime=13:30")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
