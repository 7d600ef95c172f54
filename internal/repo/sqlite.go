package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

// sqliteDriverName is go-sqlite3 with a casefold() SQL function. SQLite's
// own lower() only folds ASCII; casefold uses the same folding as the
// memory store.
const sqliteDriverName = "sqlite3_todoapi"

func init() {
	sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("casefold", strings.ToLower, true)
		},
	})
}

// todoRow and userRow are the gorm table mappings. The autoincrement id
// keeps SQLite from reusing the id of a deleted last row.
type todoRow struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"size:100;not null;index"`
	Description string `gorm:"size:250;not null"`
	Status      bool   `gorm:"not null;default:false"`
}

func (todoRow) TableName() string {
	return "todos"
}

type userRow struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"not null"`
	Email   string `gorm:"not null;uniqueIndex"`
	Address string `gorm:"not null"`
}

func (userRow) TableName() string {
	return "users"
}

// OpenSQLite opens (or creates) the database at path and migrates the
// schema. Use ":memory:" for a throwaway database.
func OpenSQLite(path string, debug bool) (*gorm.DB, error) {
	logLevel := logger.Silent
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: sqliteDriverName, DSN: path}), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// SQLite allows one writer; a single connection also keeps ":memory:"
	// databases from splitting across pooled connections.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := MigrateSQLite(db); err != nil {
		return nil, err
	}
	return db, nil
}

func MigrateSQLite(db *gorm.DB) error {
	if err := db.AutoMigrate(&todoRow{}, &userRow{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func mapGormError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrorNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrorConflict
	default:
		return err
	}
}

type SQLiteToDoRepo struct {
	db *gorm.DB
}

func NewSQLiteToDoRepo(db *gorm.DB) *SQLiteToDoRepo {
	return &SQLiteToDoRepo{db: db}
}

func (r *SQLiteToDoRepo) Create(ctx context.Context, t model.ToDo) (model.ToDo, error) {
	row := todoRow{Title: t.Title, Description: t.Description, Status: t.Status}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return model.ToDo{}, mapGormError(err)
	}
	return row.model(), nil
}

func (r *SQLiteToDoRepo) Get(ctx context.Context, id int64) (model.ToDo, error) {
	var row todoRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return model.ToDo{}, mapGormError(err)
	}
	return row.model(), nil
}

func (r *SQLiteToDoRepo) List(ctx context.Context, q model.ToDoQuery) ([]model.ToDo, error) {
	tx := r.db.WithContext(ctx).Model(&todoRow{})
	if q.Title != "" {
		tx = tx.Where("instr(casefold(title), casefold(?)) > 0", q.Title)
	}
	if q.Status != nil {
		tx = tx.Where("status = ?", *q.Status)
	}

	var rows []todoRow
	err := tx.Order(todoOrder(sqliteToDoOrder, q)).
		Offset(q.Offset()).
		Limit(q.Size).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	todos := make([]model.ToDo, 0, len(rows))
	for _, row := range rows {
		todos = append(todos, row.model())
	}
	return todos, nil
}

func (r *SQLiteToDoRepo) Update(ctx context.Context, t model.ToDo) (model.ToDo, error) {
	result := r.db.WithContext(ctx).Model(&todoRow{}).Where("id = ?", t.ID).Updates(map[string]any{
		"title":       t.Title,
		"description": t.Description,
		"status":      t.Status,
	})
	if err := result.Error; err != nil {
		return model.ToDo{}, mapGormError(err)
	}
	if result.RowsAffected == 0 {
		return model.ToDo{}, ErrorNotFound
	}
	return t, nil
}

func (r *SQLiteToDoRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&todoRow{}, id)
	if err := result.Error; err != nil {
		return err
	}
	if result.RowsAffected == 0 {
		return ErrorNotFound
	}
	return nil
}

func (row todoRow) model() model.ToDo {
	return model.ToDo{ID: row.ID, Title: row.Title, Description: row.Description, Status: row.Status}
}

type SQLiteUserRepo struct {
	db *gorm.DB
}

func NewSQLiteUserRepo(db *gorm.DB) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: db}
}

func (r *SQLiteUserRepo) Create(ctx context.Context, u model.User) (model.User, error) {
	row := userRow{Name: u.Name, Email: u.Email, Address: u.Address}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return model.User{}, mapGormError(err)
	}
	return row.model(), nil
}

func (r *SQLiteUserRepo) Get(ctx context.Context, id int64) (model.User, error) {
	var row userRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return model.User{}, mapGormError(err)
	}
	return row.model(), nil
}

func (r *SQLiteUserRepo) List(ctx context.Context, q model.UserQuery) ([]model.User, error) {
	tx := r.db.WithContext(ctx).Model(&userRow{})
	if q.Name != "" {
		tx = tx.Where("instr(casefold(name), casefold(?)) > 0", q.Name)
	}
	if q.Email != "" {
		tx = tx.Where("instr(casefold(email), casefold(?)) > 0", q.Email)
	}
	if q.Address != "" {
		tx = tx.Where("instr(casefold(address), casefold(?)) > 0", q.Address)
	}

	var rows []userRow
	err := tx.Order(userOrder(sqliteUserOrder, q)).
		Offset(q.Offset()).
		Limit(q.Size).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	users := make([]model.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.model())
	}
	return users, nil
}

func (r *SQLiteUserRepo) Update(ctx context.Context, u model.User) (model.User, error) {
	result := r.db.WithContext(ctx).Model(&userRow{}).Where("id = ?", u.ID).Updates(map[string]any{
		"name":    u.Name,
		"email":   u.Email,
		"address": u.Address,
	})
	if err := result.Error; err != nil {
		return model.User{}, mapGormError(err)
	}
	if result.RowsAffected == 0 {
		return model.User{}, ErrorNotFound
	}
	return u, nil
}

func (r *SQLiteUserRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&userRow{}, id)
	if err := result.Error; err != nil {
		return err
	}
	if result.RowsAffected == 0 {
		return ErrorNotFound
	}
	return nil
}

func (row userRow) model() model.User {
	return model.User{ID: row.ID, Name: row.Name, Email: row.Email, Address: row.Address}
}
