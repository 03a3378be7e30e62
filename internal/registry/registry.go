package registry

import (
	"context"
	"database/sql"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/iurnickita/orderbridge/internal/registry/config"
)

// Registry хранит идентификаторы заказов, уже отправленных на склад.
// Записи только добавляются, удаления нет
type Registry interface {
	// Add атомарно добавляет идентификатор и сообщает, был ли он новым
	Add(ctx context.Context, orderID string) (bool, error)
	Has(ctx context.Context, orderID string) (bool, error)
}

// NewRegistry выбирает реализацию: Postgres при заданном DSN, иначе память
func NewRegistry(cfg config.Config) (Registry, error) {
	if cfg.DatabaseDSN != "" {
		return newPostgresRegistry(cfg.DatabaseDSN)
	}
	return NewMemoryRegistry(), nil
}

// Реестр в памяти. Перезапуск процесса сбрасывает его -
// дедупликация действует в пределах жизни процесса

type memoryRegistry struct {
	mutex sync.Mutex
	sent  map[string]struct{}
}

func NewMemoryRegistry() Registry {
	return &memoryRegistry{sent: make(map[string]struct{})}
}

func (r *memoryRegistry) Add(_ context.Context, orderID string) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.sent[orderID]; ok {
		return false, nil
	}
	r.sent[orderID] = struct{}{}
	return true, nil
}

func (r *memoryRegistry) Has(_ context.Context, orderID string) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	_, ok := r.sent[orderID]
	return ok, nil
}

// Реестр в Postgres. Переживает перезапуск процесса

type postgresRegistry struct {
	database *sql.DB
}

func newPostgresRegistry(dsn string) (Registry, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// Таблица отправленных заказов
	_, err = db.Exec(
		"CREATE TABLE IF NOT EXISTS sent_order (" +
			" order_id VARCHAR (40) PRIMARY KEY," +
			" pushed_at TIMESTAMP NOT NULL" +
			" );")
	if err != nil {
		return nil, err
	}

	return &postgresRegistry{database: db}, nil
}

func (r *postgresRegistry) Add(ctx context.Context, orderID string) (bool, error) {
	result, err := r.database.ExecContext(ctx,
		"INSERT INTO sent_order (order_id, pushed_at)"+
			" VALUES ($1, $2)"+
			" ON CONFLICT (order_id) DO NOTHING",
		orderID,
		time.Now())
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *postgresRegistry) Has(ctx context.Context, orderID string) (bool, error) {
	row := r.database.QueryRowContext(ctx,
		"SELECT order_id FROM sent_order"+
			" WHERE order_id = $1",
		orderID)

	var id string
	err := row.Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
