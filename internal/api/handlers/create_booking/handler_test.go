package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/ptr"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
	createBooking "github.com/GabrielEscala/Proyecto-Salas/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.got = req
	return s.resp, s.err
}

func post(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{resp: &createBooking.Response{
		Rows: []createBooking.Row{
			{ID: "id-1", RoomID: "r1", RoomName: "Sala Caracas", Date: "2026-03-20", Time: "09:00", EndTime: "09:30"},
		},
		CancelCode:  "CXL-TESTCODE",
		CancelURL:   "https://salas.example.com/manage/CXL-TESTCODE",
		TimeRange:   "9:00 a. m. – 9:30 a. m.",
		Storage:     "postgres",
		EmailStatus: "sent",
	}}
	h := NewHandler(uc, nopLogger{})

	rec := post(t, h, `{"roomId":"r1","date":"2026-03-20","times":["09:00"],"firstName":"Ana","lastName":"Pérez"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "CXL-TESTCODE", resp.CancelCode)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "09:00", resp.Bookings[0].Time)

	require.NotNil(t, uc.got)
	assert.Equal(t, []types.TimeString{"09:00"}, uc.got.Times)
}

func TestHandle_SingleTimeAlternative(t *testing.T) {
	uc := &stubUseCase{resp: &createBooking.Response{CancelCode: "CXL-TESTCODE"}}
	h := NewHandler(uc, nopLogger{})

	rec := post(t, h, `{"roomId":"r1","date":"2026-03-20","time":"09:00","firstName":"Ana","lastName":"Pérez"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.got)
	assert.Equal(t, []types.TimeString{"09:00"}, uc.got.Times)
}

func TestHandle_ConflictPayload(t *testing.T) {
	uc := &stubUseCase{err: &domain.SlotConflictError{
		RoomID: "r1",
		Date:   "2026-03-20",
		Conflicts: []domain.SlotConflict{
			{FirstName: "Luis", LastName: "Rojas", Time: "09:00"},
			{FirstName: "Luis", LastName: "Rojas", Time: "09:30"},
		},
		Suggestion: ptr.Ptr(types.TimeString("10:00")),
	}}
	h := NewHandler(uc, nopLogger{})

	rec := post(t, h, `{"roomId":"r1","date":"2026-03-20","times":["09:00","09:30"],"firstName":"Ana","lastName":"Pérez"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	var body struct {
		Error struct {
			Code      string `json:"code"`
			Conflicts []struct {
				FirstName string `json:"first_name"`
				LastName  string `json:"last_name"`
				Time      string `json:"time"`
			} `json:"conflicts"`
			Suggestion *string `json:"suggestion"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "slot_conflict", body.Error.Code)
	require.Len(t, body.Error.Conflicts, 2)
	assert.Equal(t, "09:00", body.Error.Conflicts[0].Time)
	assert.Equal(t, "Luis", body.Error.Conflicts[0].FirstName)
	assert.Equal(t, "Rojas", body.Error.Conflicts[0].LastName)
	require.NotNil(t, body.Error.Suggestion)
	assert.Equal(t, "10:00", *body.Error.Suggestion)
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{createBooking.ErrRoomNotFound, http.StatusNotFound, "room_not_found"},
		{createBooking.ErrInvalidDate, http.StatusUnprocessableEntity, "invalid_date"},
		{createBooking.ErrInvalidTimeSlot, http.StatusUnprocessableEntity, "off_grid"},
		{createBooking.ErrSlotInPast, http.StatusUnprocessableEntity, "slot_in_past"},
		{createBooking.ErrInvalidInput, http.StatusBadRequest, "invalid_request"},
		{assert.AnError, http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		h := NewHandler(&stubUseCase{err: tc.err}, nopLogger{})
		rec := post(t, h, `{"roomId":"r1","date":"2026-03-20","times":["09:00"],"firstName":"Ana","lastName":"Pérez"}`)
		assert.Equal(t, tc.status, rec.Code, tc.code)

		var body struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, tc.code, body.Error.Code)
	}
}

func TestHandle_BadJSON(t *testing.T) {
	h := NewHandler(&stubUseCase{}, nopLogger{})

	rec := post(t, h, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// unknown fields are rejected
	rec = post(t, h, `{"roomId":"r1","surprise":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// malformed time fails before the use case runs
	rec = post(t, h, `{"roomId":"r1","date":"2026-03-20","times":["9am"],"firstName":"Ana","lastName":"Pérez"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
