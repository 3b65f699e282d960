package failover

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	"github.com/GabrielEscala/Proyecto-Salas/internal/infra/storage/booking"
	"github.com/GabrielEscala/Proyecto-Salas/internal/infra/storage/memstore"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var errDown = errors.New("connection refused")

// brokenStorage fails every call with an infrastructure error
type brokenStorage struct{}

func (brokenStorage) CreateGroup(context.Context, []*domain.Booking) ([]*domain.Booking, error) {
	return nil, errDown
}
func (brokenStorage) ReplaceGroup(context.Context, string, []*domain.Booking) ([]*domain.Booking, error) {
	return nil, errDown
}
func (brokenStorage) GetByCancelCode(context.Context, string) ([]*domain.Booking, error) {
	return nil, errDown
}
func (brokenStorage) GetByRoomAndDate(context.Context, string, string) ([]*domain.Booking, error) {
	return nil, errDown
}
func (brokenStorage) GetByDate(context.Context, string) ([]*domain.Booking, error) {
	return nil, errDown
}
func (brokenStorage) GetUpcoming(context.Context, domain.UpcomingFilter) ([]*domain.Booking, error) {
	return nil, errDown
}
func (brokenStorage) GetByRange(context.Context, domain.HistoryFilter) ([]*domain.Booking, error) {
	return nil, errDown
}
func (brokenStorage) GetByPersonAndSlot(context.Context, string, string, string, types.TimeString) ([]*domain.Booking, error) {
	return nil, errDown
}
func (brokenStorage) DeleteByCancelCode(context.Context, string) (int64, error) {
	return 0, errDown
}

func groupRow(room, date string, t types.TimeString, code string) *domain.Booking {
	return &domain.Booking{
		RoomID:     room,
		Date:       date,
		Time:       t,
		FirstName:  "Ana",
		LastName:   "Pérez",
		CancelCode: code,
	}
}

func TestStore_CreateGroup_DegradesToMemory(t *testing.T) {
	mem := memstore.NewBookingStore()
	s := New(brokenStorage{}, mem, nopLogger{})
	ctx := context.Background()

	created, storage, err := s.CreateGroup(ctx, []*domain.Booking{groupRow("r1", "2026-03-15", "09:00", "CXL-AAAAAAAA")})
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, storage)
	assert.Len(t, created, 1)

	// the group is now findable through the failover view
	rows, storage, err := s.GetGroup(ctx, "CXL-AAAAAAAA")
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, storage)
	assert.Len(t, rows, 1)
}

func TestStore_CreateGroup_BusinessErrorDoesNotDegrade(t *testing.T) {
	primary := memstore.NewBookingStore()
	mem := memstore.NewBookingStore()
	s := New(primary, mem, nopLogger{})
	ctx := context.Background()

	_, _, err := s.CreateGroup(ctx, []*domain.Booking{groupRow("r1", "2026-03-15", "09:00", "CXL-AAAAAAAA")})
	require.NoError(t, err)

	// conflict in the primary surfaces as a conflict, nothing lands in memory
	_, storage, err := s.CreateGroup(ctx, []*domain.Booking{groupRow("r1", "2026-03-15", "09:00", "CXL-BBBBBBBB")})
	assert.ErrorIs(t, err, booking.ErrSlotTaken)
	assert.Equal(t, StoragePrimary, storage)

	memRows, err := mem.GetByRoomAndDate(ctx, "r1", "2026-03-15")
	require.NoError(t, err)
	assert.Empty(t, memRows)
}

func TestStore_NilPrimaryUsesMemoryOnly(t *testing.T) {
	mem := memstore.NewBookingStore()
	s := New(nil, mem, nopLogger{})
	ctx := context.Background()

	_, storage, err := s.CreateGroup(ctx, []*domain.Booking{groupRow("r1", "2026-03-15", "09:00", "CXL-AAAAAAAA")})
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, storage)
}

func TestStore_MergedReadsSeeBothStores(t *testing.T) {
	primary := memstore.NewBookingStore()
	mem := memstore.NewBookingStore()
	s := New(primary, mem, nopLogger{})
	ctx := context.Background()

	_, err := primary.CreateGroup(ctx, []*domain.Booking{groupRow("r1", "2026-03-15", "09:00", "CXL-AAAAAAAA")})
	require.NoError(t, err)
	_, err = mem.CreateGroup(ctx, []*domain.Booking{groupRow("r1", "2026-03-15", "10:00", "CXL-BBBBBBBB")})
	require.NoError(t, err)

	rows, err := s.GetByRoomAndDate(ctx, "r1", "2026-03-15")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, types.TimeString("09:00"), rows[0].Time)
	assert.Equal(t, types.TimeString("10:00"), rows[1].Time)
}

func TestStore_MergedReadsDedupe(t *testing.T) {
	primary := memstore.NewBookingStore()
	mem := memstore.NewBookingStore()
	s := New(primary, mem, nopLogger{})
	ctx := context.Background()

	// the same row visible in both stores counts once
	r := groupRow("r1", "2026-03-15", "09:00", "CXL-AAAAAAAA")
	_, err := primary.CreateGroup(ctx, []*domain.Booking{r})
	require.NoError(t, err)
	_, err = mem.CreateGroup(ctx, []*domain.Booking{groupRow("r1", "2026-03-15", "09:00", "CXL-AAAAAAAA")})
	require.NoError(t, err)

	rows, err := s.GetByDate(ctx, "2026-03-15")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestStore_GetGroup_EmptyPrimaryFallsThrough(t *testing.T) {
	primary := memstore.NewBookingStore()
	mem := memstore.NewBookingStore()
	s := New(primary, mem, nopLogger{})
	ctx := context.Background()

	_, err := mem.CreateGroup(ctx, []*domain.Booking{groupRow("r1", "2026-03-15", "09:00", "CXL-AAAAAAAA")})
	require.NoError(t, err)

	rows, storage, err := s.GetGroup(ctx, "CXL-AAAAAAAA")
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, storage)
	assert.Len(t, rows, 1)
}

func TestStore_GroupWritesTargetFoundStorage(t *testing.T) {
	primary := memstore.NewBookingStore()
	mem := memstore.NewBookingStore()
	s := New(primary, mem, nopLogger{})
	ctx := context.Background()

	_, err := mem.CreateGroup(ctx, []*domain.Booking{groupRow("r1", "2026-03-15", "09:00", "CXL-AAAAAAAA")})
	require.NoError(t, err)
	_, storage, err := s.GetGroup(ctx, "CXL-AAAAAAAA")
	require.NoError(t, err)

	n, err := s.DeleteGroup(ctx, storage, "CXL-AAAAAAAA")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	// primary untouched, memory emptied
	memRows, _ := mem.GetByCancelCode(ctx, "CXL-AAAAAAAA")
	assert.Empty(t, memRows)
}

func TestStore_DeleteGroup_UnknownStorage(t *testing.T) {
	s := New(nil, memstore.NewBookingStore(), nopLogger{})

	_, err := s.DeleteGroup(context.Background(), Storage("tape"), "CXL-AAAAAAAA")
	assert.ErrorIs(t, err, ErrUnknownStorage)

	// primary label without a configured primary is also rejected
	_, err = s.DeleteGroup(context.Background(), StoragePrimary, "CXL-AAAAAAAA")
	assert.ErrorIs(t, err, ErrUnknownStorage)
}
