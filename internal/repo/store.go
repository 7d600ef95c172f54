package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-api/internal/config"
)

// Store bundles the repositories of one backend with its lifecycle.
type Store struct {
	ToDos ToDoRepository
	Users UserRepository

	ping  func(ctx context.Context) error
	close func()
}

func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

func NewMemoryStore() *Store {
	return &Store{
		ToDos: NewMemoryToDoRepo(),
		Users: NewMemoryUserRepo(),
	}
}

func NewPostgresStore(pool *pgxpool.Pool) *Store {
	return &Store{
		ToDos: NewPostgresToDoRepo(pool),
		Users: NewPostgresUserRepo(pool),
		ping:  pool.Ping,
		close: pool.Close,
	}
}

// Open connects to the backend named by cfg.Driver. With migrate set the
// schema is brought up to date before the store is returned.
func Open(ctx context.Context, cfg config.StoreConfig, migrate bool, logger *zap.Logger) (*Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return NewMemoryStore(), nil

	case config.DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL) // Создаем новое соединение к БД
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("ping database: %w", err)
		}
		if migrate {
			if err := Migrate(ctx, pool, logger); err != nil {
				pool.Close()
				return nil, err
			}
		}
		return NewPostgresStore(pool), nil

	case config.DriverSQLite:
		// AutoMigrate is idempotent, so SQLite is always migrated on open.
		db, err := OpenSQLite(cfg.SQLitePath, logger.Core().Enabled(zap.DebugLevel))
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		return &Store{
			ToDos: NewSQLiteToDoRepo(db),
			Users: NewSQLiteUserRepo(db),
			ping:  sqlDB.PingContext,
			close: func() { sqlDB.Close() },
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
