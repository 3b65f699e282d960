package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	"github.com/GabrielEscala/Proyecto-Salas/internal/infra/storage/failover"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/ptr"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubStore struct {
	group   []*domain.Booking
	storage failover.Storage
	rows    []*domain.Booking

	byRoomID       string
	upcomingFilter domain.UpcomingFilter
}

func (s *stubStore) GetGroup(context.Context, string) ([]*domain.Booking, failover.Storage, error) {
	return s.group, s.storage, nil
}

func (s *stubStore) GetByDate(context.Context, string) ([]*domain.Booking, error) {
	return s.rows, nil
}

func (s *stubStore) GetByRoomAndDate(_ context.Context, roomID, _ string) ([]*domain.Booking, error) {
	s.byRoomID = roomID
	return s.rows, nil
}

func (s *stubStore) GetUpcoming(_ context.Context, filter domain.UpcomingFilter) ([]*domain.Booking, error) {
	s.upcomingFilter = filter
	return s.rows, nil
}

func (s *stubStore) GetByRange(context.Context, domain.HistoryFilter) ([]*domain.Booking, error) {
	return s.rows, nil
}

func newTestService(store *stubStore) *Service {
	return NewService(store, 30, nopLogger{})
}

func sampleRow(t types.TimeString, code string) *domain.Booking {
	return &domain.Booking{
		ID:         "id-" + string(t),
		RoomID:     "r1",
		RoomName:   "Sala Caracas",
		Date:       "2026-03-20",
		Time:       t,
		FirstName:  "Ana",
		LastName:   "Pérez",
		Notes:      ptr.Ptr("Acme C.A.\nClientes: Luis"),
		CancelCode: code,
	}
}

func TestListByDate(t *testing.T) {
	store := &stubStore{rows: []*domain.Booking{sampleRow("09:00", "CXL-AAAAAAAA")}}
	svc := newTestService(store)

	resp, err := svc.ListByDate(context.Background(), "2026-03-20", "")
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)

	b := resp.Bookings[0]
	assert.Equal(t, "09:00", b.Time)
	assert.Equal(t, "09:30", b.EndTime)
	// company and clients come out of the flat notes text
	assert.Equal(t, "Acme C.A.", b.Company)
	assert.Equal(t, "Luis", b.Clients)

	_, err = svc.ListByDate(context.Background(), "20-03-2026", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListByDate_RoomFilter(t *testing.T) {
	store := &stubStore{rows: []*domain.Booking{sampleRow("09:00", "CXL-AAAAAAAA")}}
	svc := newTestService(store)

	_, err := svc.ListByDate(context.Background(), "2026-03-20", "r1")
	require.NoError(t, err)
	assert.Equal(t, "r1", store.byRoomID)
}

func TestListByCode(t *testing.T) {
	store := &stubStore{
		group:   []*domain.Booking{sampleRow("09:00", "CXL-AAAAAAAA")},
		storage: failover.StorageMemory,
	}
	svc := newTestService(store)

	resp, err := svc.ListByCode(context.Background(), "CXL-AAAAAAAA")
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	_, err = svc.ListByCode(context.Background(), "malformed")
	assert.ErrorIs(t, err, ErrInvalidInput)

	store.group = nil
	_, err = svc.ListByCode(context.Background(), "CXL-BBBBBBBB")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListUpcoming(t *testing.T) {
	store := &stubStore{rows: []*domain.Booking{sampleRow("14:00", "CXL-AAAAAAAA")}}
	svc := newTestService(store)

	resp, err := svc.ListUpcoming(context.Background(), "2026-03-20", "13:30", "r1")
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	assert.Equal(t, "2026-03-20", store.upcomingFilter.Date)
	assert.Equal(t, types.TimeString("13:30"), store.upcomingFilter.FromTime)
	require.NotNil(t, store.upcomingFilter.RoomID)
	assert.Equal(t, "r1", *store.upcomingFilter.RoomID)
}

func TestListUpcoming_NormalizesSecondsAndValidates(t *testing.T) {
	store := &stubStore{}
	svc := newTestService(store)

	_, err := svc.ListUpcoming(context.Background(), "2026-03-20", "13:30:00", "")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("13:30"), store.upcomingFilter.FromTime)
	assert.Nil(t, store.upcomingFilter.RoomID)

	_, err = svc.ListUpcoming(context.Background(), "20/03/2026", "13:30", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ListUpcoming(context.Background(), "2026-03-20", "1pm", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHistory(t *testing.T) {
	store := &stubStore{rows: []*domain.Booking{sampleRow("09:00", "CXL-AAAAAAAA")}}
	svc := newTestService(store)

	resp, sources, err := svc.History(context.Background(), domain.HistoryFilter{
		FromDate: "2026-03-01", ToDate: "2026-03-31",
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
	assert.Equal(t, "postgres+memory", sources)

	_, _, err = svc.History(context.Background(), domain.HistoryFilter{FromDate: "2026-03-31", ToDate: "2026-03-01"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = svc.History(context.Background(), domain.HistoryFilter{FromDate: "bad"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBlocks(t *testing.T) {
	store := &stubStore{rows: []*domain.Booking{
		sampleRow("09:00", "CXL-AAAAAAAA"),
		sampleRow("09:30", "CXL-AAAAAAAA"),
	}}
	svc := newTestService(store)

	resp, err := svc.Blocks(context.Background(), "2026-03-20")
	require.NoError(t, err)
	require.Len(t, resp.Blocks, 1)

	bl := resp.Blocks[0]
	assert.Equal(t, "09:00", bl.StartTime)
	assert.Equal(t, "10:00", bl.EndTime)
	assert.Equal(t, "9:00 a. m. – 10:00 a. m.", bl.TimeRange)
	assert.Equal(t, []string{"09:00", "09:30"}, bl.Times)

	_, err = svc.Blocks(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
