package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	bookingRepo "github.com/GabrielEscala/Proyecto-Salas/internal/infra/storage/booking"
	"github.com/GabrielEscala/Proyecto-Salas/internal/infra/storage/failover"
	"github.com/GabrielEscala/Proyecto-Salas/internal/integrations/mailer"
	roomsService "github.com/GabrielEscala/Proyecto-Salas/internal/service/rooms"
	"github.com/GabrielEscala/Proyecto-Salas/internal/timeslots"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

var caracas = time.FixedZone("VET", -4*60*60)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type stubStore struct {
	existing  []*domain.Booking
	createErr error
	created   []*domain.Booking
}

func (s *stubStore) CreateGroup(_ context.Context, rows []*domain.Booking) ([]*domain.Booking, failover.Storage, error) {
	if s.createErr != nil {
		return nil, failover.StoragePrimary, s.createErr
	}
	s.created = rows
	out := make([]*domain.Booking, len(rows))
	for i, r := range rows {
		c := *r
		c.ID = "id-" + string(r.Time)
		out[i] = &c
	}
	return out, failover.StoragePrimary, nil
}

func (s *stubStore) GetByRoomAndDate(context.Context, string, string) ([]*domain.Booking, error) {
	return s.existing, nil
}

type stubRooms struct {
	room *domain.Room
	err  error
}

func (s stubRooms) ResolveRoomID(context.Context, string) (*domain.Room, error) {
	return s.room, s.err
}

func (s stubRooms) GoverningZone(domain.RoomGroup) *time.Location { return caracas }

type stubMailer struct {
	sent   []mailer.Confirmation
	status mailer.Status
}

func (m *stubMailer) SendBookingConfirmation(_ context.Context, conf mailer.Confirmation) mailer.Status {
	m.sent = append(m.sent, conf)
	if m.status == "" {
		return mailer.StatusSent
	}
	return m.status
}

func wallClock(date string, hour, min int) time.Time {
	d, _ := time.ParseInLocation("2006-01-02", date, caracas)
	return d.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func newTestUseCase(store *stubStore, rooms RoomService, mail Mailer, now time.Time) *UseCase {
	uc := NewUseCase(store, rooms, mail, timeslots.DefaultGrid(), "https://salas.example.com/", nopLogger{})
	uc.timeProvider = fixedTime{now}
	uc.generateCode = func() string { return "CXL-TESTCODE" }
	return uc
}

func validRequest() *Request {
	return &Request{
		RoomID:    "r1",
		Date:      "2026-03-20",
		Times:     []types.TimeString{"09:30", "09:00"},
		FirstName: "Ana",
		LastName:  "Pérez",
		Email:     "ana@example.com",
		Company:   "Acme C.A.",
		Clients:   "Luis",
	}
}

func TestExecute_CreatesGroup(t *testing.T) {
	store := &stubStore{}
	mail := &stubMailer{}
	rooms := stubRooms{room: &domain.Room{ID: "r1", Name: "Sala Caracas", Group: domain.GroupStandard}}
	uc := newTestUseCase(store, rooms, mail, wallClock("2026-03-15", 10, 0))

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// rows sorted chronologically, one per requested slot
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, types.TimeString("09:00"), resp.Rows[0].Time)
	assert.Equal(t, types.TimeString("09:30"), resp.Rows[0].EndTime)
	assert.Equal(t, types.TimeString("09:30"), resp.Rows[1].Time)

	assert.Equal(t, "CXL-TESTCODE", resp.CancelCode)
	assert.Equal(t, "https://salas.example.com/manage/CXL-TESTCODE", resp.CancelURL)
	assert.Equal(t, "9:00 a. m. – 10:00 a. m.", resp.TimeRange)
	assert.Equal(t, "postgres", resp.Storage)
	assert.Equal(t, "sent", resp.EmailStatus)

	// every stored row carries the shared code and composed notes
	for _, r := range store.created {
		assert.Equal(t, "CXL-TESTCODE", r.CancelCode)
		require.NotNil(t, r.Notes)
		assert.Equal(t, "Acme C.A.\nClientes: Luis", *r.Notes)
	}

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "ana@example.com", mail.sent[0].To)
	assert.Equal(t, "CXL-TESTCODE", mail.sent[0].CancelCode)
}

func TestExecute_DuplicateTimesCollapse(t *testing.T) {
	store := &stubStore{}
	rooms := stubRooms{room: &domain.Room{ID: "r1", Name: "Sala Caracas", Group: domain.GroupStandard}}
	uc := newTestUseCase(store, rooms, &stubMailer{}, wallClock("2026-03-15", 10, 0))

	req := validRequest()
	req.Times = []types.TimeString{"09:00", "09:00", "09:00"}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, resp.Rows, 1)
}

func TestExecute_ConflictReturnsStructuredError(t *testing.T) {
	store := &stubStore{existing: []*domain.Booking{
		{RoomID: "r1", Date: "2026-03-20", Time: "09:30", FirstName: "Luis", LastName: "Rojas", CancelCode: "CXL-OTHERONE"},
		{RoomID: "r1", Date: "2026-03-20", Time: "10:00", FirstName: "Luis", LastName: "Rojas", CancelCode: "CXL-OTHERONE"},
	}}
	rooms := stubRooms{room: &domain.Room{ID: "r1", Name: "Sala Caracas", Group: domain.GroupStandard}}
	uc := newTestUseCase(store, rooms, &stubMailer{}, wallClock("2026-03-15", 10, 0))

	req := validRequest()
	req.Times = []types.TimeString{"09:30", "10:00", "09:00"}

	_, err := uc.Execute(context.Background(), req)

	var conflict *domain.SlotConflictError
	require.ErrorAs(t, err, &conflict)
	require.Len(t, conflict.Conflicts, 2)
	assert.Equal(t, types.TimeString("09:30"), conflict.Conflicts[0].Time)
	assert.Equal(t, types.TimeString("10:00"), conflict.Conflicts[1].Time)
	// the response names who holds each slot
	assert.Equal(t, "Luis", conflict.Conflicts[0].FirstName)
	assert.Equal(t, "Rojas", conflict.Conflicts[0].LastName)

	// suggestion skips both occupied slots: first free after 09:30 is 10:30
	require.NotNil(t, conflict.Suggestion)
	assert.Equal(t, types.TimeString("10:30"), *conflict.Suggestion)

	// nothing was written
	assert.Nil(t, store.created)
}

func TestExecute_LostRaceBecomesConflict(t *testing.T) {
	store := &stubStore{createErr: bookingRepo.ErrSlotTaken}
	rooms := stubRooms{room: &domain.Room{ID: "r1", Name: "Sala Caracas", Group: domain.GroupStandard}}
	uc := newTestUseCase(store, rooms, &stubMailer{}, wallClock("2026-03-15", 10, 0))

	_, err := uc.Execute(context.Background(), validRequest())

	var conflict *domain.SlotConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestExecute_RejectsPast(t *testing.T) {
	store := &stubStore{}
	rooms := stubRooms{room: &domain.Room{ID: "r1", Name: "Sala Caracas", Group: domain.GroupStandard}}
	now := wallClock("2026-03-15", 10, 0)
	uc := newTestUseCase(store, rooms, &stubMailer{}, now)

	req := validRequest()
	req.Date = "2026-03-14"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)

	// today, slot already started
	req = validRequest()
	req.Date = "2026-03-15"
	req.Times = []types.TimeString{"09:00"}
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotInPast)

	// today, slot still ahead
	req.Times = []types.TimeString{"10:30"}
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)

	// today, slot starting at this very minute is still bookable
	req.Times = []types.TimeString{"10:00"}
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_RejectsOffGrid(t *testing.T) {
	store := &stubStore{}
	rooms := stubRooms{room: &domain.Room{ID: "r1", Name: "Sala Caracas", Group: domain.GroupStandard}}
	uc := newTestUseCase(store, rooms, &stubMailer{}, wallClock("2026-03-15", 10, 0))

	req := validRequest()
	req.Times = []types.TimeString{"09:15"}
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	req.Times = []types.TimeString{"20:30"}
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_RoomNotFound(t *testing.T) {
	store := &stubStore{}
	rooms := stubRooms{err: roomsService.ErrRoomNotFound}
	uc := newTestUseCase(store, rooms, &stubMailer{}, wallClock("2026-03-15", 10, 0))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_NoEmailSkipsConfirmation(t *testing.T) {
	store := &stubStore{}
	mail := &stubMailer{}
	rooms := stubRooms{room: &domain.Room{ID: "r1", Name: "Sala Caracas", Group: domain.GroupStandard}}
	uc := newTestUseCase(store, rooms, mail, wallClock("2026-03-15", 10, 0))

	req := validRequest()
	req.Email = ""
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "skipped", resp.EmailStatus)
	assert.Empty(t, mail.sent)
}

func TestExecute_MailFailureDoesNotFailBooking(t *testing.T) {
	store := &stubStore{}
	mail := &stubMailer{status: mailer.StatusError}
	rooms := stubRooms{room: &domain.Room{ID: "r1", Name: "Sala Caracas", Group: domain.GroupStandard}}
	uc := newTestUseCase(store, rooms, mail, wallClock("2026-03-15", 10, 0))

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "error", resp.EmailStatus)
	assert.Len(t, store.created, 2)
}

func TestValidateRequest(t *testing.T) {
	req := validRequest()
	req.FirstName = " "
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest()
	req.Date = "15-03-2026"
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest()
	req.Times = nil
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest()
	req.Email = "not-an-email"
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	assert.NoError(t, validateRequest(validRequest()))
}

func TestExecute_UnexpectedStoreError(t *testing.T) {
	store := &stubStore{createErr: errors.New("disk on fire")}
	rooms := stubRooms{room: &domain.Room{ID: "r1", Name: "Sala Caracas", Group: domain.GroupStandard}}
	uc := newTestUseCase(store, rooms, &stubMailer{}, wallClock("2026-03-15", 10, 0))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
