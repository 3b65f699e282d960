package rooms

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/dbmetrics"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

// Repository репозиторий каталога залов поверх PostgreSQL
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория залов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll возвращает все залы, отсортированные по имени
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Room, error) {
	query, args, err := psqlbuilder.Select("id", "name", "group_tag").
		From("rooms").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		var group string
		if err := rows.Scan(&room.ID, &room.Name, &group); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		room.Group = domain.ParseRoomGroup(group)
		result = append(result, &room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}
	return result, nil
}

// GetByID возвращает зал по идентификатору
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByName возвращает зал по отображаемому имени
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Room, error) {
	return r.getOne(ctx, "GetByName", squirrel.Eq{"name": name})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Room, error) {
	query, args, err := psqlbuilder.Select("id", "name", "group_tag").
		From("rooms").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var room domain.Room
	var group string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&room.ID, &room.Name, &group)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan room: %v", ErrScanRow, op, err)
	}
	room.Group = domain.ParseRoomGroup(group)
	return &room, nil
}

// Create создает зал и возвращает строку с присвоенным id
func (r *Repository) Create(ctx context.Context, name string, group domain.RoomGroup) (*domain.Room, error) {
	query, args, err := psqlbuilder.Insert("rooms").
		Columns("name", "group_tag").
		Values(name, string(group)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	room := domain.Room{Name: name, Group: group}
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&room.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return &room, nil
}

// Rename переименовывает зал. Брони продолжают ссылаться на ту же строку.
func (r *Repository) Rename(ctx context.Context, id, newName string) error {
	query, args, err := psqlbuilder.Update("rooms").
		Set("name", newName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Rename - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: %q", ErrDuplicateName, newName)
		}
		return fmt.Errorf("%w: Rename - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Rename - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateGroup проставляет группу каталога.
// Одноразовая миграция строк, созданных до появления колонки group_tag.
func (r *Repository) UpdateGroup(ctx context.Context, id string, group domain.RoomGroup) error {
	query, args, err := psqlbuilder.Update("rooms").
		Set("group_tag", string(group)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateGroup - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateGroup - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateGroup - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
