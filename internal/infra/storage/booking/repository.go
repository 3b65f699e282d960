package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/psqlbuilder"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

// pgUniqueViolation код PostgreSQL для нарушения уникального ограничения.
// Уникальный индекс (room_id, date, time) — последний рубеж против гонки
// двух одновременных бронирований одного слота.
const pgUniqueViolation = "23505"

// Колонки бронирования с именем зала из rooms.
// LEFT JOIN: бронь с удалённым залом остаётся видимой в истории.
var bookingColumns = []string{
	"b.id",
	"b.room_id",
	"COALESCE(r.name, '') AS room_name",
	"b.date",
	"b.time",
	"b.first_name",
	"b.last_name",
	"b.email",
	"b.notes",
	"b.cancel_code",
	"b.created_at",
}

// Repository репозиторий бронирований поверх PostgreSQL
type Repository struct {
	db DB
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

// CreateGroup атомарно создаёт все строки одной группы бронирования.
// Все строки разделяют один cancel_code; при конфликте слота не
// записывается ни одна строка и возвращается ErrSlotTaken.
func (r *Repository) CreateGroup(ctx context.Context, rows []*domain.Booking) ([]*domain.Booking, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: CreateGroup - empty group", ErrExecQuery)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateGroup - begin: %v", ErrTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	created, err := r.insertRows(ctx, tx, rows)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: CreateGroup - commit: %v", ErrTransaction, err)
	}
	return created, nil
}

// ReplaceGroup атомарно заменяет все строки группы cancelCode новыми.
// Новые строки наследуют тот же cancel_code: ссылка на управление
// бронированием переживает редактирование.
func (r *Repository) ReplaceGroup(ctx context.Context, cancelCode string, rows []*domain.Booking) ([]*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceGroup - begin: %v", ErrTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"cancel_code": cancelCode}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceGroup - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: ReplaceGroup - execute delete: %v", ErrExecQuery, err)
	}

	created, err := r.insertRows(ctx, tx, rows)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: ReplaceGroup - commit: %v", ErrTransaction, err)
	}
	return created, nil
}

// insertRows вставляет строки группы внутри транзакции
func (r *Repository) insertRows(ctx context.Context, tx TxExecutor, rows []*domain.Booking) ([]*domain.Booking, error) {
	created := make([]*domain.Booking, 0, len(rows))
	for _, b := range rows {
		query, args, err := psqlbuilder.Insert("bookings").
			Columns("room_id", "date", "time", "first_name", "last_name", "email", "notes", "cancel_code").
			Values(b.RoomID, b.Date, b.Time.WithSeconds(), b.FirstName, b.LastName, b.Email, b.Notes, b.CancelCode).
			Suffix("RETURNING id, created_at").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: insertRows - build insert query: %v", ErrBuildQuery, err)
		}

		row := *b
		err = tx.QueryRowContext(ctx, query, args...).Scan(&row.ID, &row.CreatedAt)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
				return nil, fmt.Errorf("%w: %s %s", ErrSlotTaken, b.Date, b.Time)
			}
			return nil, fmt.Errorf("%w: insertRows - execute insert: %v", ErrExecQuery, err)
		}
		created = append(created, &row)
	}
	return created, nil
}

// GetByCancelCode возвращает все строки группы бронирования
func (r *Repository) GetByCancelCode(ctx context.Context, cancelCode string) ([]*domain.Booking, error) {
	builder := r.selectBookings().
		Where(squirrel.Eq{"b.cancel_code": cancelCode}).
		OrderBy("b.date ASC", "b.time ASC")
	return r.queryBookings(ctx, "GetByCancelCode", builder)
}

// GetByRoomAndDate возвращает брони зала на дату, по возрастанию времени
func (r *Repository) GetByRoomAndDate(ctx context.Context, roomID, date string) ([]*domain.Booking, error) {
	builder := r.selectBookings().
		Where(squirrel.Eq{"b.room_id": roomID, "b.date": date}).
		OrderBy("b.time ASC")
	return r.queryBookings(ctx, "GetByRoomAndDate", builder)
}

// GetByDate возвращает все брони на дату по всем залам
func (r *Repository) GetByDate(ctx context.Context, date string) ([]*domain.Booking, error) {
	builder := r.selectBookings().
		Where(squirrel.Eq{"b.date": date}).
		OrderBy("b.time ASC")
	return r.queryBookings(ctx, "GetByDate", builder)
}

// GetUpcoming возвращает брони даты начиная со времени filter.FromTime,
// опционально по одному залу
func (r *Repository) GetUpcoming(ctx context.Context, filter domain.UpcomingFilter) ([]*domain.Booking, error) {
	builder := r.selectBookings().
		Where(squirrel.Eq{"b.date": filter.Date}).
		Where(squirrel.GtOrEq{"b.time": filter.FromTime.WithSeconds()})
	if filter.RoomID != nil {
		builder = builder.Where(squirrel.Eq{"b.room_id": *filter.RoomID})
	}
	builder = builder.OrderBy("b.time ASC")
	return r.queryBookings(ctx, "GetUpcoming", builder)
}

// GetByRange возвращает брони за период с опциональным фильтром по залу.
// Сортировка: дата по убыванию, внутри даты время по возрастанию.
func (r *Repository) GetByRange(ctx context.Context, filter domain.HistoryFilter) ([]*domain.Booking, error) {
	builder := r.selectBookings()
	if filter.FromDate != "" {
		builder = builder.Where(squirrel.GtOrEq{"b.date": filter.FromDate})
	}
	if filter.ToDate != "" {
		builder = builder.Where(squirrel.LtOrEq{"b.date": filter.ToDate})
	}
	if filter.RoomID != nil {
		builder = builder.Where(squirrel.Eq{"b.room_id": *filter.RoomID})
	}
	builder = builder.OrderBy("b.date DESC", "b.time ASC")
	return r.queryBookings(ctx, "GetByRange", builder)
}

// GetByPersonAndSlot ищет строку по имени и слоту.
// Фолбэк отмены для пользователей, потерявших код бронирования.
func (r *Repository) GetByPersonAndSlot(ctx context.Context, firstName, lastName, date string, t types.TimeString) ([]*domain.Booking, error) {
	builder := r.selectBookings().
		Where(squirrel.Eq{
			"LOWER(b.first_name)": normalizeName(firstName),
			"LOWER(b.last_name)":  normalizeName(lastName),
			"b.date":              date,
			"b.time":              t.WithSeconds(),
		})
	return r.queryBookings(ctx, "GetByPersonAndSlot", builder)
}

// DeleteByCancelCode удаляет все строки группы, возвращает число удалённых
func (r *Repository) DeleteByCancelCode(ctx context.Context, cancelCode string) (int64, error) {
	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"cancel_code": cancelCode}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByCancelCode - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByCancelCode - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByCancelCode - get rows affected: %v", ErrExecQuery, err)
	}
	if deleted == 0 {
		return 0, ErrNotFound
	}
	return deleted, nil
}

// normalizeName приводит имя к форме сравнения без регистра и пробелов
func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (r *Repository) selectBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		LeftJoin("rooms r ON r.id = b.room_id")
}

func (r *Repository) queryBookings(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.Booking, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	return r.scanBookings(op, rows)
}

// scanBookings сканирует результаты запроса в слайс бронирований.
// Время хранится как "HH:MM:SS" и усекается до канонических "HH:MM".
func (r *Repository) scanBookings(op string, rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var rawTime string
		var createdAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.RoomID,
			&b.RoomName,
			&b.Date,
			&rawTime,
			&b.FirstName,
			&b.LastName,
			&b.Email,
			&b.Notes,
			&b.CancelCode,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		b.Time, err = types.NewTimeStringFromString(rawTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - parse time %q: %v", ErrScanRow, op, rawTime, err)
		}
		b.CreatedAt = createdAt.Time

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return bookings, nil
}
