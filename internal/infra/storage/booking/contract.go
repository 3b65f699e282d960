package booking

import (
	"context"
	"database/sql"

	"github.com/GabrielEscala/Proyecto-Salas/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// DB исполнитель запросов с поддержкой транзакций.
// Ему удовлетворяет *dbmetrics.DB.
type DB interface {
	DBExecutor
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
